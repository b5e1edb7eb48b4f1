package card

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/flashdeck/backend/internal/domain"
	"github.com/flashdeck/backend/pkg/ctxutil"
)

// ListCards returns the deck's cards, placed cards first in position order,
// then the rest oldest first.
func (s *Service) ListCards(ctx context.Context, deckID uuid.UUID) ([]domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if deckID == uuid.Nil {
		return nil, domain.NewValidationError("deck_id", "required")
	}

	// surface a missing deck as ErrNotFound instead of an empty list
	if _, err := s.decks.GetByID(ctx, userID, deckID); err != nil {
		return nil, fmt.Errorf("get deck: %w", err)
	}

	cards, err := s.cards.ListByDeck(ctx, userID, deckID)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}

	return cards, nil
}

// SearchCards filters a deck's cards by a case-insensitive substring match
// on front and back text, optionally narrowed to starred cards. The filter
// runs in memory over the deck's full listing.
func (s *Service) SearchCards(ctx context.Context, input SearchCardsInput) ([]domain.Card, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	cards, err := s.ListCards(ctx, input.DeckID)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(input.Query))

	matched := make([]domain.Card, 0, len(cards))
	for _, c := range cards {
		if input.StarredOnly && !c.Starred {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(c.FrontText), q) &&
			!strings.Contains(strings.ToLower(c.BackText), q) {
			continue
		}
		matched = append(matched, c)
	}

	return matched, nil
}

// GetCard returns one card by id.
func (s *Service) GetCard(ctx context.Context, cardID uuid.UUID) (*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if cardID == uuid.Nil {
		return nil, domain.NewValidationError("card_id", "required")
	}

	c, err := s.cards.GetByID(ctx, userID, cardID)
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}

	return c, nil
}
