package review

import (
	"time"

	"github.com/google/uuid"

	"github.com/flashdeck/backend/internal/domain"
)

// Session is the in-memory state of one review run. It lives only in the
// session store and is never persisted; card counters are written through
// the card repository as answers come in.
//
// All mutating methods assume the caller holds the store's lock.
type Session struct {
	ID     uuid.UUID
	UserID uuid.UUID
	DeckID uuid.UUID

	Mode     domain.ReviewMode
	Shuffled bool

	Cards []domain.Card // review order
	Index int
	Face  domain.CardFace
	Phase domain.ReviewPhase

	Correct      int
	Incorrect    int
	IncorrectIDs []uuid.UUID

	UpdatedAt time.Time
}

// newSession starts a run over the given cards in the given order.
func newSession(userID, deckID uuid.UUID, mode domain.ReviewMode, shuffled bool, cards []domain.Card) *Session {
	s := &Session{
		ID:       uuid.New(),
		UserID:   userID,
		DeckID:   deckID,
		Mode:     mode,
		Shuffled: shuffled,
	}
	s.reset(cards)
	return s
}

// reset starts the run over with a new card list. Mode and shuffle flag are
// untouched.
func (s *Session) reset(cards []domain.Card) {
	s.Cards = cards
	s.Index = 0
	s.Face = domain.CardFaceFront
	s.Correct = 0
	s.Incorrect = 0
	s.IncorrectIDs = nil
	if len(cards) == 0 {
		s.Phase = domain.ReviewPhaseEmpty
	} else {
		s.Phase = domain.ReviewPhaseActive
	}
}

// Current returns the card under review. ok is false when the run is empty
// or finished.
func (s *Session) Current() (domain.Card, bool) {
	if s.Phase != domain.ReviewPhaseActive || s.Index >= len(s.Cards) {
		return domain.Card{}, false
	}
	return s.Cards[s.Index], true
}

// flip turns the current card over (and back).
// Only meaningful in flip mode on an active run.
func (s *Session) flip() error {
	if s.Phase != domain.ReviewPhaseActive {
		return domain.ErrConflict
	}
	if s.Face == domain.CardFaceFront {
		s.Face = domain.CardFaceBack
	} else {
		s.Face = domain.CardFaceFront
	}
	return nil
}

// applyAnswer records a graded answer against the current card and advances.
// Exactly one of the session counters moves; the card id is remembered when
// the answer was wrong so the run can be retried over misses.
func (s *Session) applyAnswer(correct bool) error {
	current, ok := s.Current()
	if !ok {
		return domain.ErrConflict
	}

	if correct {
		s.Correct++
	} else {
		s.Incorrect++
		s.IncorrectIDs = append(s.IncorrectIDs, current.ID)
	}

	s.Index++
	s.Face = domain.CardFaceFront
	if s.Index >= len(s.Cards) {
		s.Phase = domain.ReviewPhaseFinished
	}
	return nil
}

// retryIncorrect starts a new run over the cards missed in the finished run,
// in their original review order.
func (s *Session) retryIncorrect() error {
	if s.Phase != domain.ReviewPhaseFinished {
		return domain.ErrConflict
	}
	if len(s.IncorrectIDs) == 0 {
		return domain.ErrConflict
	}

	missed := make(map[uuid.UUID]bool, len(s.IncorrectIDs))
	for _, id := range s.IncorrectIDs {
		missed[id] = true
	}

	retry := make([]domain.Card, 0, len(s.IncorrectIDs))
	for _, c := range s.Cards {
		if missed[c.ID] {
			retry = append(retry, c)
		}
	}

	s.reset(retry)
	return nil
}

// Score returns the percentage of correct answers so far.
func (s *Session) Score() int {
	return domain.Score(s.Correct, s.Incorrect)
}

// updateCard refreshes the stored copy of a card after a write-through
// (counter bump, starring) so later snapshots reflect it.
func (s *Session) updateCard(updated domain.Card) {
	for i := range s.Cards {
		if s.Cards[i].ID == updated.ID {
			s.Cards[i] = updated
			return
		}
	}
}
