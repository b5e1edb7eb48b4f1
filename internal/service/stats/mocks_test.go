package stats

import (
	"context"

	"github.com/google/uuid"

	"github.com/flashdeck/backend/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg stats . cardRepo deckRepo

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	ListByDeckFunc func(ctx context.Context, userID, deckID uuid.UUID) ([]domain.Card, error)
}

func (mock *cardRepoMock) ListByDeck(ctx context.Context, userID, deckID uuid.UUID) ([]domain.Card, error) {
	if mock.ListByDeckFunc == nil {
		panic("cardRepoMock.ListByDeckFunc: method is nil but cardRepo.ListByDeck was just called")
	}
	return mock.ListByDeckFunc(ctx, userID, deckID)
}

var _ deckRepo = &deckRepoMock{}

type deckRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error)
}

func (mock *deckRepoMock) GetByID(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error) {
	if mock.GetByIDFunc == nil {
		panic("deckRepoMock.GetByIDFunc: method is nil but deckRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, userID, deckID)
}
