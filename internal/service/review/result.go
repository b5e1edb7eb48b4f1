package review

import (
	"github.com/google/uuid"

	"github.com/flashdeck/backend/internal/domain"
)

// CardView is the slice of a card a session snapshot exposes. The back text
// is withheld in flip mode until the card is turned over.
type CardView struct {
	ID       uuid.UUID
	Front    string
	Back     *string
	ImageURL *string
	Starred  bool
}

// SessionState is a client-facing snapshot of a review session.
type SessionState struct {
	SessionID uuid.UUID
	DeckID    uuid.UUID
	Mode      domain.ReviewMode
	Shuffled  bool
	Phase     domain.ReviewPhase

	Position int // 1-based position of the current card
	Total    int
	Face     domain.CardFace
	Current  *CardView
	Options  []string // populated in choice mode

	Correct        int
	Incorrect      int
	Score          int
	RetryAvailable bool

	Message string // set for empty decks
}

// snapshot renders the session for the client, hiding the back text of an
// unflipped card in flip mode and attaching choice options in choice mode.
func (s *Service) snapshot(sess *Session) *SessionState {
	state := &SessionState{
		SessionID:      sess.ID,
		DeckID:         sess.DeckID,
		Mode:           sess.Mode,
		Shuffled:       sess.Shuffled,
		Phase:          sess.Phase,
		Total:          len(sess.Cards),
		Face:           sess.Face,
		Correct:        sess.Correct,
		Incorrect:      sess.Incorrect,
		Score:          sess.Score(),
		RetryAvailable: sess.Phase == domain.ReviewPhaseFinished && len(sess.IncorrectIDs) > 0,
	}

	if sess.Phase == domain.ReviewPhaseEmpty {
		state.Message = NoCardsMessage
		return state
	}

	current, ok := sess.Current()
	if !ok {
		return state
	}

	state.Position = sess.Index + 1
	view := &CardView{
		ID:       current.ID,
		Front:    current.FrontText,
		ImageURL: current.ImageURL,
		Starred:  current.Starred,
	}

	switch sess.Mode {
	case domain.ReviewModeFlip:
		if sess.Face == domain.CardFaceBack {
			back := current.BackText
			view.Back = &back
		}
	case domain.ReviewModeChoice:
		state.Options = buildChoiceOptions(sess.Cards, current, s.cfg.ChoiceOptions)
	}

	state.Current = view
	return state
}
