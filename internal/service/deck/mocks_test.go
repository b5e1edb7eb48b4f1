package deck

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/flashdeck/backend/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg deck . deckRepo cardRepo txManager

var _ deckRepo = &deckRepoMock{}

type deckRepoMock struct {
	GetByIDFunc         func(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error)
	ListByUserFunc      func(ctx context.Context, userID uuid.UUID) ([]domain.Deck, error)
	CreateFunc          func(ctx context.Context, d *domain.Deck) (*domain.Deck, error)
	UpdateFunc          func(ctx context.Context, userID, deckID uuid.UUID, title string, description *string) (*domain.Deck, error)
	DeleteFunc          func(ctx context.Context, userID, deckID uuid.UUID) error
	DeleteByIDsFunc     func(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error)
	UpdatePositionsFunc func(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error

	calls struct {
		DeleteByIDs     []struct{ IDs []uuid.UUID }
		UpdatePositions []struct{ IDs []uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *deckRepoMock) GetByID(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error) {
	if mock.GetByIDFunc == nil {
		panic("deckRepoMock.GetByIDFunc: method is nil but deckRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, userID, deckID)
}

func (mock *deckRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Deck, error) {
	if mock.ListByUserFunc == nil {
		panic("deckRepoMock.ListByUserFunc: method is nil but deckRepo.ListByUser was just called")
	}
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *deckRepoMock) Create(ctx context.Context, d *domain.Deck) (*domain.Deck, error) {
	if mock.CreateFunc == nil {
		panic("deckRepoMock.CreateFunc: method is nil but deckRepo.Create was just called")
	}
	return mock.CreateFunc(ctx, d)
}

func (mock *deckRepoMock) Update(ctx context.Context, userID, deckID uuid.UUID, title string, description *string) (*domain.Deck, error) {
	if mock.UpdateFunc == nil {
		panic("deckRepoMock.UpdateFunc: method is nil but deckRepo.Update was just called")
	}
	return mock.UpdateFunc(ctx, userID, deckID, title, description)
}

func (mock *deckRepoMock) Delete(ctx context.Context, userID, deckID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("deckRepoMock.DeleteFunc: method is nil but deckRepo.Delete was just called")
	}
	return mock.DeleteFunc(ctx, userID, deckID)
}

func (mock *deckRepoMock) DeleteByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error) {
	if mock.DeleteByIDsFunc == nil {
		panic("deckRepoMock.DeleteByIDsFunc: method is nil but deckRepo.DeleteByIDs was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteByIDs = append(mock.calls.DeleteByIDs, struct{ IDs []uuid.UUID }{IDs: ids})
	mock.lock.Unlock()
	return mock.DeleteByIDsFunc(ctx, userID, ids)
}

func (mock *deckRepoMock) DeleteByIDsCalls() []struct{ IDs []uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteByIDs
}

func (mock *deckRepoMock) UpdatePositions(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error {
	if mock.UpdatePositionsFunc == nil {
		panic("deckRepoMock.UpdatePositionsFunc: method is nil but deckRepo.UpdatePositions was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdatePositions = append(mock.calls.UpdatePositions, struct{ IDs []uuid.UUID }{IDs: ids})
	mock.lock.Unlock()
	return mock.UpdatePositionsFunc(ctx, userID, ids)
}

func (mock *deckRepoMock) UpdatePositionsCalls() []struct{ IDs []uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdatePositions
}

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	ListByDeckFunc func(ctx context.Context, userID, deckID uuid.UUID) ([]domain.Card, error)
	BulkCreateFunc func(ctx context.Context, cards []domain.Card) (int, error)

	calls struct {
		BulkCreate []struct{ Cards []domain.Card }
	}
	lock sync.RWMutex
}

func (mock *cardRepoMock) ListByDeck(ctx context.Context, userID, deckID uuid.UUID) ([]domain.Card, error) {
	if mock.ListByDeckFunc == nil {
		panic("cardRepoMock.ListByDeckFunc: method is nil but cardRepo.ListByDeck was just called")
	}
	return mock.ListByDeckFunc(ctx, userID, deckID)
}

func (mock *cardRepoMock) BulkCreate(ctx context.Context, cards []domain.Card) (int, error) {
	if mock.BulkCreateFunc == nil {
		panic("cardRepoMock.BulkCreateFunc: method is nil but cardRepo.BulkCreate was just called")
	}
	mock.lock.Lock()
	mock.calls.BulkCreate = append(mock.calls.BulkCreate, struct{ Cards []domain.Card }{Cards: cards})
	mock.lock.Unlock()
	return mock.BulkCreateFunc(ctx, cards)
}

func (mock *cardRepoMock) BulkCreateCalls() []struct{ Cards []domain.Card } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.BulkCreate
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}
