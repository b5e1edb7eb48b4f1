package deck

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/flashdeck/backend/internal/domain"
	"github.com/flashdeck/backend/pkg/ctxutil"
)

// importFile accepts both export formats: the flat single-deck document and
// the per-deck bundle from a zip export.
type importFile struct {
	Title       *string      `json:"title"`
	Description *string      `json:"description"`
	Deck        *importMeta  `json:"deck"`
	Cards       []importCard `json:"cards"`
}

type importMeta struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type importCard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// ImportDeck creates a deck plus its cards from a JSON export, all in one
// transaction. Malformed JSON and missing titles are reported as validation
// errors with user-facing messages.
func (s *Service) ImportDeck(ctx context.Context, input ImportInput) (*ImportResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var doc importFile
	if err := json.Unmarshal(input.Data, &doc); err != nil {
		return nil, domain.NewValidationError("file", "Invalid JSON file.")
	}

	title, description := doc.Title, doc.Description
	if doc.Deck != nil {
		title, description = doc.Deck.Title, doc.Deck.Description
	}
	if title == nil || strings.TrimSpace(*title) == "" {
		return nil, domain.NewValidationError("title", `JSON must include a "title" for the deck.`)
	}
	if len(doc.Cards) > s.cfg.ImportMaxCards {
		return nil, domain.NewValidationError("cards",
			fmt.Sprintf("max %d cards per import", s.cfg.ImportMaxCards))
	}
	for i, c := range doc.Cards {
		if strings.TrimSpace(c.Front) == "" || strings.TrimSpace(c.Back) == "" {
			return nil, domain.NewValidationError(
				fmt.Sprintf("cards[%d]", i), "front and back are required")
		}
	}

	now := time.Now().UTC()
	deckID := uuid.New()
	cards := make([]domain.Card, len(doc.Cards))
	for i, c := range doc.Cards {
		cards[i] = domain.Card{
			ID:        uuid.New(),
			DeckID:    deckID,
			FrontText: strings.TrimSpace(c.Front),
			BackText:  strings.TrimSpace(c.Back),
			// spread creation times so the listing order matches the file
			CreatedAt: now.Add(time.Duration(i) * time.Microsecond),
		}
	}

	var result *ImportResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		deck, createErr := s.decks.Create(txCtx, &domain.Deck{
			ID:          deckID,
			UserID:      userID,
			Title:       strings.TrimSpace(*title),
			Description: trimOrNil(description),
			CreatedAt:   now,
		})
		if createErr != nil {
			return fmt.Errorf("create deck: %w", createErr)
		}

		inserted, bulkErr := s.cards.BulkCreate(txCtx, cards)
		if bulkErr != nil {
			return fmt.Errorf("import cards: %w", bulkErr)
		}

		result = &ImportResult{Deck: deck, CardsImported: inserted}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "deck imported",
		slog.String("user_id", userID.String()),
		slog.String("deck_id", deckID.String()),
		slog.Int("cards", result.CardsImported),
	)

	return result, nil
}
