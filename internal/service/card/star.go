package card

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/flashdeck/backend/internal/domain"
	"github.com/flashdeck/backend/pkg/ctxutil"
)

// SetStarred persists the card's starred flag and returns the updated card.
func (s *Service) SetStarred(ctx context.Context, cardID uuid.UUID, starred bool) (*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if cardID == uuid.Nil {
		return nil, domain.NewValidationError("card_id", "required")
	}

	c, err := s.cards.SetStarred(ctx, userID, cardID, starred)
	if err != nil {
		return nil, fmt.Errorf("set starred: %w", err)
	}

	s.log.DebugContext(ctx, "card starred flag set",
		slog.String("user_id", userID.String()),
		slog.String("card_id", cardID.String()),
		slog.Bool("starred", starred),
	)

	return c, nil
}

// ToggleStarred flips the card's starred flag and returns the updated card.
func (s *Service) ToggleStarred(ctx context.Context, cardID uuid.UUID) (*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if cardID == uuid.Nil {
		return nil, domain.NewValidationError("card_id", "required")
	}

	current, err := s.cards.GetByID(ctx, userID, cardID)
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}

	return s.SetStarred(ctx, cardID, !current.Starred)
}
