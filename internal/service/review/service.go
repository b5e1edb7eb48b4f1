// Package review runs study sessions over a deck: flip and multiple-choice
// modes, shuffling, retrying misses, and write-through of per-card counters.
//
// Sessions are held server-side in an in-memory store; only the card
// counters survive a restart.
package review

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/flashdeck/backend/internal/config"
	"github.com/flashdeck/backend/internal/domain"
)

// NoCardsMessage is shown when a review is started on an empty deck.
const NoCardsMessage = "No cards to review in this deck."

type cardRepo interface {
	ListByDeck(ctx context.Context, userID, deckID uuid.UUID) ([]domain.Card, error)
	RecordReview(ctx context.Context, userID, cardID uuid.UUID, correct bool) (*domain.Card, error)
	SetStarred(ctx context.Context, userID, cardID uuid.UUID, starred bool) (*domain.Card, error)
}

type deckRepo interface {
	GetByID(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error)
}

// Service provides review session operations.
type Service struct {
	cfg   config.ReviewConfig
	cards cardRepo
	decks deckRepo
	store *Store
	log   *slog.Logger
}

// NewService creates a new Review service.
func NewService(
	log *slog.Logger,
	cfg config.ReviewConfig,
	cards cardRepo,
	decks deckRepo,
	store *Store,
) *Service {
	return &Service{
		cfg:   cfg,
		cards: cards,
		decks: decks,
		store: store,
		log:   log.With("service", "review"),
	}
}
