// Package deck implements deck management: CRUD, search, manual ordering,
// bulk deletion, and JSON import/export.
package deck

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/flashdeck/backend/internal/config"
	"github.com/flashdeck/backend/internal/domain"
)

type deckRepo interface {
	GetByID(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Deck, error)
	Create(ctx context.Context, d *domain.Deck) (*domain.Deck, error)
	Update(ctx context.Context, userID, deckID uuid.UUID, title string, description *string) (*domain.Deck, error)
	Delete(ctx context.Context, userID, deckID uuid.UUID) error
	DeleteByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error)
	UpdatePositions(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error
}

type cardRepo interface {
	ListByDeck(ctx context.Context, userID, deckID uuid.UUID) ([]domain.Card, error)
	BulkCreate(ctx context.Context, cards []domain.Card) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides deck management operations.
type Service struct {
	cfg   config.DecksConfig
	decks deckRepo
	cards cardRepo
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new Deck service.
func NewService(
	log *slog.Logger,
	cfg config.DecksConfig,
	decks deckRepo,
	cards cardRepo,
	tx txManager,
) *Service {
	return &Service{
		cfg:   cfg,
		decks: decks,
		cards: cards,
		tx:    tx,
		log:   log.With("service", "deck"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
