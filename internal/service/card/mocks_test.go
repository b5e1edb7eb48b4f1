package card

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/flashdeck/backend/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg card . cardRepo deckRepo imageStore txManager

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	GetByIDFunc         func(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error)
	ListByDeckFunc      func(ctx context.Context, userID, deckID uuid.UUID) ([]domain.Card, error)
	CreateFunc          func(ctx context.Context, c *domain.Card) (*domain.Card, error)
	UpdateFunc          func(ctx context.Context, userID, cardID uuid.UUID, frontText, backText string, imageURL *string) (*domain.Card, error)
	DeleteFunc          func(ctx context.Context, userID, cardID uuid.UUID) error
	SetStarredFunc      func(ctx context.Context, userID, cardID uuid.UUID, starred bool) (*domain.Card, error)
	UpdatePositionsFunc func(ctx context.Context, userID, deckID uuid.UUID, ids []uuid.UUID) error

	calls struct {
		SetStarred      []struct{ Starred bool }
		UpdatePositions []struct{ IDs []uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *cardRepoMock) GetByID(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error) {
	if mock.GetByIDFunc == nil {
		panic("cardRepoMock.GetByIDFunc: method is nil but cardRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, userID, cardID)
}

func (mock *cardRepoMock) ListByDeck(ctx context.Context, userID, deckID uuid.UUID) ([]domain.Card, error) {
	if mock.ListByDeckFunc == nil {
		panic("cardRepoMock.ListByDeckFunc: method is nil but cardRepo.ListByDeck was just called")
	}
	return mock.ListByDeckFunc(ctx, userID, deckID)
}

func (mock *cardRepoMock) Create(ctx context.Context, c *domain.Card) (*domain.Card, error) {
	if mock.CreateFunc == nil {
		panic("cardRepoMock.CreateFunc: method is nil but cardRepo.Create was just called")
	}
	return mock.CreateFunc(ctx, c)
}

func (mock *cardRepoMock) Update(ctx context.Context, userID, cardID uuid.UUID, frontText, backText string, imageURL *string) (*domain.Card, error) {
	if mock.UpdateFunc == nil {
		panic("cardRepoMock.UpdateFunc: method is nil but cardRepo.Update was just called")
	}
	return mock.UpdateFunc(ctx, userID, cardID, frontText, backText, imageURL)
}

func (mock *cardRepoMock) Delete(ctx context.Context, userID, cardID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("cardRepoMock.DeleteFunc: method is nil but cardRepo.Delete was just called")
	}
	return mock.DeleteFunc(ctx, userID, cardID)
}

func (mock *cardRepoMock) SetStarred(ctx context.Context, userID, cardID uuid.UUID, starred bool) (*domain.Card, error) {
	if mock.SetStarredFunc == nil {
		panic("cardRepoMock.SetStarredFunc: method is nil but cardRepo.SetStarred was just called")
	}
	mock.lock.Lock()
	mock.calls.SetStarred = append(mock.calls.SetStarred, struct{ Starred bool }{Starred: starred})
	mock.lock.Unlock()
	return mock.SetStarredFunc(ctx, userID, cardID, starred)
}

func (mock *cardRepoMock) SetStarredCalls() []struct{ Starred bool } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SetStarred
}

func (mock *cardRepoMock) UpdatePositions(ctx context.Context, userID, deckID uuid.UUID, ids []uuid.UUID) error {
	if mock.UpdatePositionsFunc == nil {
		panic("cardRepoMock.UpdatePositionsFunc: method is nil but cardRepo.UpdatePositions was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdatePositions = append(mock.calls.UpdatePositions, struct{ IDs []uuid.UUID }{IDs: ids})
	mock.lock.Unlock()
	return mock.UpdatePositionsFunc(ctx, userID, deckID, ids)
}

func (mock *cardRepoMock) UpdatePositionsCalls() []struct{ IDs []uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdatePositions
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

var _ imageStore = &imageStoreMock{}

type imageStoreMock struct {
	UploadFunc func(ctx context.Context, deckID uuid.UUID, filename, contentType string, body io.Reader) (string, error)

	calls struct {
		Upload []struct {
			DeckID   uuid.UUID
			Filename string
		}
	}
	lock sync.RWMutex
}

func (mock *imageStoreMock) Upload(ctx context.Context, deckID uuid.UUID, filename, contentType string, body io.Reader) (string, error) {
	if mock.UploadFunc == nil {
		panic("imageStoreMock.UploadFunc: method is nil but imageStore.Upload was just called")
	}
	mock.lock.Lock()
	mock.calls.Upload = append(mock.calls.Upload, struct {
		DeckID   uuid.UUID
		Filename string
	}{DeckID: deckID, Filename: filename})
	mock.lock.Unlock()
	return mock.UploadFunc(ctx, deckID, filename, contentType, body)
}

func (mock *imageStoreMock) UploadCalls() []struct {
	DeckID   uuid.UUID
	Filename string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Upload
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
