package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/flashdeck/backend/internal/domain"
	"github.com/flashdeck/backend/pkg/ctxutil"
)

// Start opens a review session over a deck. An empty deck still yields a
// session snapshot, in the EMPTY phase with a user-facing message, so the
// client renders the state rather than an error.
func (s *Service) Start(ctx context.Context, input StartInput) (*SessionState, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.decks.GetByID(ctx, userID, input.DeckID); err != nil {
		return nil, fmt.Errorf("get deck: %w", err)
	}

	cards, err := s.cards.ListByDeck(ctx, userID, input.DeckID)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}

	if input.Shuffle {
		cards = shuffledCopy(cards)
	}

	sess := newSession(userID, input.DeckID, input.Mode, input.Shuffle, cards)
	s.store.Put(sess)

	s.log.InfoContext(ctx, "review session started",
		slog.String("user_id", userID.String()),
		slog.String("deck_id", input.DeckID.String()),
		slog.String("session_id", sess.ID.String()),
		slog.String("mode", sess.Mode.String()),
		slog.Int("cards", len(cards)),
	)

	return s.snapshot(sess), nil
}

// Flip turns the current card over in flip mode.
func (s *Service) Flip(ctx context.Context, input SessionInput) (*SessionState, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var state *SessionState
	err := s.store.Update(input.SessionID, userID, func(sess *Session) error {
		if sess.Mode != domain.ReviewModeFlip {
			return domain.ErrConflict
		}
		if err := sess.flip(); err != nil {
			return err
		}
		state = s.snapshot(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return state, nil
}

// Finish closes a session and returns its final snapshot.
func (s *Service) Finish(ctx context.Context, input SessionInput) (*SessionState, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var state *SessionState
	err := s.store.Update(input.SessionID, userID, func(sess *Session) error {
		state = s.snapshot(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.store.Delete(input.SessionID, userID)
	return state, nil
}
