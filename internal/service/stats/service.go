// Package stats computes per-deck review statistics from the cards'
// lifetime counters.
package stats

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/flashdeck/backend/internal/domain"
	"github.com/flashdeck/backend/pkg/ctxutil"
)

type cardRepo interface {
	ListByDeck(ctx context.Context, userID, deckID uuid.UUID) ([]domain.Card, error)
}

type deckRepo interface {
	GetByID(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error)
}

// Service provides deck statistics operations.
type Service struct {
	cards cardRepo
	decks deckRepo
	log   *slog.Logger
}

// NewService creates a new Stats service.
func NewService(log *slog.Logger, cards cardRepo, decks deckRepo) *Service {
	return &Service{
		cards: cards,
		decks: decks,
		log:   log.With("service", "stats"),
	}
}

// DeckStatsResult pairs a deck with its aggregated statistics.
type DeckStatsResult struct {
	Deck  domain.Deck
	Stats domain.DeckStats
}

// GetDeckStats aggregates the lifetime review counters of one deck. Deck and
// cards are fetched concurrently; an unknown or foreign deck yields
// domain.ErrNotFound.
func (s *Service) GetDeckStats(ctx context.Context, deckID uuid.UUID) (*DeckStatsResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if deckID == uuid.Nil {
		return nil, domain.NewValidationError("deck_id", "required")
	}

	var (
		deck  *domain.Deck
		cards []domain.Card
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		deck, err = s.decks.GetByID(gctx, userID, deckID)
		if err != nil {
			return fmt.Errorf("get deck: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		cards, err = s.cards.ListByDeck(gctx, userID, deckID)
		if err != nil {
			return fmt.Errorf("list cards: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &DeckStatsResult{
		Deck:  *deck,
		Stats: Aggregate(cards),
	}, nil
}
