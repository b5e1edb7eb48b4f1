package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/flashdeck/backend/internal/domain"
	"github.com/flashdeck/backend/pkg/ctxutil"
)

// ToggleShuffle flips the session's shuffle setting and restarts the run:
// the deck is re-fetched, ordered or shuffled per the new setting, and all
// progress resets.
func (s *Service) ToggleShuffle(ctx context.Context, input SessionInput) (*SessionState, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var state *SessionState
	err := s.store.Update(input.SessionID, userID, func(sess *Session) error {
		cards, listErr := s.cards.ListByDeck(ctx, userID, sess.DeckID)
		if listErr != nil {
			return fmt.Errorf("list cards: %w", listErr)
		}

		sess.Shuffled = !sess.Shuffled
		if sess.Shuffled {
			cards = shuffledCopy(cards)
		}
		sess.reset(cards)

		state = s.snapshot(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "review shuffle toggled",
		slog.String("user_id", userID.String()),
		slog.String("session_id", input.SessionID.String()),
	)

	return state, nil
}

// SetMode switches between flip and multiple-choice. Progress resets but
// the card order is kept, so the user resumes the same walk through the
// deck in the other mode.
func (s *Service) SetMode(ctx context.Context, input ModeInput) (*SessionState, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var state *SessionState
	err := s.store.Update(input.SessionID, userID, func(sess *Session) error {
		sess.Mode = input.Mode
		sess.reset(sess.Cards)

		state = s.snapshot(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return state, nil
}

// Restart starts the run over with the same cards in the same order.
func (s *Service) Restart(ctx context.Context, input SessionInput) (*SessionState, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var state *SessionState
	err := s.store.Update(input.SessionID, userID, func(sess *Session) error {
		sess.reset(sess.Cards)
		state = s.snapshot(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return state, nil
}

// RetryIncorrect starts a new run over the cards missed in the finished
// run. Only legal on a finished session with at least one miss.
func (s *Service) RetryIncorrect(ctx context.Context, input SessionInput) (*SessionState, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var state *SessionState
	err := s.store.Update(input.SessionID, userID, func(sess *Session) error {
		if err := sess.retryIncorrect(); err != nil {
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
