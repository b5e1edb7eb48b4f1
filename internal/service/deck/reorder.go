package deck

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/flashdeck/backend/internal/domain"
	"github.com/flashdeck/backend/pkg/ctxutil"
)

// ReorderDecks moves the deck at position From to position To within the
// user's current ordering and persists the whole ordering in one batch
// write, so every deck ends up with a dense position 0..n-1.
func (s *Service) ReorderDecks(ctx context.Context, input ReorderInput) ([]domain.Deck, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	decks, err := s.decks.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}

	ids := make([]uuid.UUID, len(decks))
	for i, d := range decks {
		ids[i] = d.ID
	}

	moved, err := domain.MoveID(ids, input.From, input.To)
	if err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if posErr := s.decks.UpdatePositions(txCtx, userID, moved); posErr != nil {
			return fmt.Errorf("update deck positions: %w", posErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	reordered, err := s.decks.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list decks after reorder: %w", err)
	}

	s.log.InfoContext(ctx, "decks reordered",
		slog.String("user_id", userID.String()),
		slog.Int("from", input.From),
		slog.Int("to", input.To),
	)

	return reordered, nil
}
