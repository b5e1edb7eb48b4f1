package card

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/flashdeck/backend/internal/domain"
	"github.com/flashdeck/backend/pkg/ctxutil"
)

// ReorderCards moves the card at position From to position To within the
// deck's current ordering and persists the whole ordering in one batch
// write, so every card ends up with a dense position 0..n-1.
func (s *Service) ReorderCards(ctx context.Context, input ReorderCardsInput) ([]domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	cards, err := s.cards.ListByDeck(ctx, userID, input.DeckID)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}

	ids := make([]uuid.UUID, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}

	moved, err := domain.MoveID(ids, input.From, input.To)
	if err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if posErr := s.cards.UpdatePositions(txCtx, userID, input.DeckID, moved); posErr != nil {
			return fmt.Errorf("update card positions: %w", posErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	reordered, err := s.cards.ListByDeck(ctx, userID, input.DeckID)
	if err != nil {
		return nil, fmt.Errorf("list cards after reorder: %w", err)
	}

	s.log.InfoContext(ctx, "cards reordered",
		slog.String("user_id", userID.String()),
		slog.String("deck_id", input.DeckID.String()),
		slog.Int("from", input.From),
		slog.Int("to", input.To),
	)

	return reordered, nil
}
