// Package card implements card management inside a deck: CRUD with optional
// images, starring, manual ordering, and in-memory search.
package card

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/flashdeck/backend/internal/domain"
)

type cardRepo interface {
	GetByID(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error)
	ListByDeck(ctx context.Context, userID, deckID uuid.UUID) ([]domain.Card, error)
	Create(ctx context.Context, c *domain.Card) (*domain.Card, error)
	Update(ctx context.Context, userID, cardID uuid.UUID, frontText, backText string, imageURL *string) (*domain.Card, error)
	Delete(ctx context.Context, userID, cardID uuid.UUID) error
	SetStarred(ctx context.Context, userID, cardID uuid.UUID, starred bool) (*domain.Card, error)
	UpdatePositions(ctx context.Context, userID, deckID uuid.UUID, ids []uuid.UUID) error
}

type deckRepo interface {
	GetByID(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error)
}

type imageStore interface {
	Upload(ctx context.Context, deckID uuid.UUID, filename, contentType string, body io.Reader) (string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides card management operations.
type Service struct {
	cards  cardRepo
	decks  deckRepo
	images imageStore
	tx     txManager
	log    *slog.Logger
}

// NewService creates a new Card service.
func NewService(
	log *slog.Logger,
	cards cardRepo,
	decks deckRepo,
	images imageStore,
	tx txManager,
) *Service {
	return &Service{
		cards:  cards,
		decks:  decks,
		images: images,
		tx:     tx,
		log:    log.With("service", "card"),
	}
}
