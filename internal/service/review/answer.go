package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/flashdeck/backend/internal/domain"
	"github.com/flashdeck/backend/pkg/ctxutil"
)

// Answer grades the current card. In flip mode the card must be showing its
// back; in choice mode the submitted option is compared to the back text.
// The card's lifetime counters are bumped atomically in the database first;
// only then does the session advance, so a failed write never desynchronizes
// the stored counters from the run.
func (s *Service) Answer(ctx context.Context, input AnswerInput) (*SessionState, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var state *SessionState
	err := s.store.Update(input.SessionID, userID, func(sess *Session) error {
		current, ok := sess.Current()
		if !ok {
			return domain.ErrConflict
		}

		var correct bool
		switch sess.Mode {
		case domain.ReviewModeFlip:
			// grading an unflipped card makes no sense
			if sess.Face != domain.CardFaceBack {
				return domain.ErrConflict
			}
			correct = input.Correct
		case domain.ReviewModeChoice:
			if input.Selected == nil {
				return domain.NewValidationError("selected", "required")
			}
			correct = *input.Selected == current.BackText
		}

		updated, recErr := s.cards.RecordReview(ctx, userID, current.ID, correct)
		if recErr != nil {
			return fmt.Errorf("record review: %w", recErr)
		}
		sess.updateCard(*updated)

		if err := sess.applyAnswer(correct); err != nil {
			return err
		}

		state = s.snapshot(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "card answered",
		slog.String("user_id", userID.String()),
		slog.String("session_id", input.SessionID.String()),
	)

	return state, nil
}

// StarCurrent toggles the starred flag on the card under review, persisting
// it immediately so the flag survives the session.
func (s *Service) StarCurrent(ctx context.Context, input SessionInput) (*SessionState, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var state *SessionState
	err := s.store.Update(input.SessionID, userID, func(sess *Session) error {
		current, ok := sess.Current()
		if !ok {
			return domain.ErrConflict
		}

		updated, starErr := s.cards.SetStarred(ctx, userID, current.ID, !current.Starred)
		if starErr != nil {
			return fmt.Errorf("set starred: %w", starErr)
		}
		sess.updateCard(*updated)

		state = s.snapshot(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return state, nil
}
