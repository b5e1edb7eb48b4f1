package deck

import (
	"context"
	"fmt"
	"strings"

	"github.com/flashdeck/backend/internal/domain"
	"github.com/flashdeck/backend/pkg/ctxutil"
)

// ListDecks returns the authenticated user's decks, placed decks first in
// position order, then the rest newest first.
func (s *Service) ListDecks(ctx context.Context) ([]domain.Deck, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	decks, err := s.decks.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}

	return decks, nil
}

// SearchDecks filters the user's decks by a case-insensitive substring match
// on title and description. An empty query returns everything.
func (s *Service) SearchDecks(ctx context.Context, query string) ([]domain.Deck, error) {
	decks, err := s.ListDecks(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return decks, nil
	}

	matched := make([]domain.Deck, 0, len(decks))
	for _, d := range decks {
		if strings.Contains(strings.ToLower(d.Title), q) {
			matched = append(matched, d)
			continue
		}
		if d.Description != nil && strings.Contains(strings.ToLower(*d.Description), q) {
			matched = append(matched, d)
		}
	}

	return matched, nil
}

// GetDeck returns one deck by id.
func (s *Service) GetDeck(ctx context.Context, input DeleteDeckInput) (*domain.Deck, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	deck, err := s.decks.GetByID(ctx, userID, input.DeckID)
	if err != nil {
		return nil, fmt.Errorf("get deck: %w", err)
	}

	return deck, nil
}
