package deck

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/flashdeck/backend/internal/domain"
	"github.com/flashdeck/backend/pkg/ctxutil"
)

// BulkDeleteDecks removes the selected decks in one transaction. Ids that do
// not exist or belong to another user are skipped; the returned count covers
// decks actually removed.
func (s *Service) BulkDeleteDecks(ctx context.Context, input BulkDeleteInput) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return 0, err
	}

	var deleted int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var delErr error
		deleted, delErr = s.decks.DeleteByIDs(txCtx, userID, input.DeckIDs)
		if delErr != nil {
			return fmt.Errorf("bulk delete decks: %w", delErr)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "decks bulk deleted",
		slog.String("user_id", userID.String()),
		slog.Int("selected", len(input.DeckIDs)),
		slog.Int("deleted", deleted),
	)

	return deleted, nil
}
