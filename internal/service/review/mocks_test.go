package review

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/flashdeck/backend/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg review . cardRepo deckRepo

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	ListByDeckFunc   func(ctx context.Context, userID, deckID uuid.UUID) ([]domain.Card, error)
	RecordReviewFunc func(ctx context.Context, userID, cardID uuid.UUID, correct bool) (*domain.Card, error)
	SetStarredFunc   func(ctx context.Context, userID, cardID uuid.UUID, starred bool) (*domain.Card, error)

	calls struct {
		RecordReview []struct {
			CardID  uuid.UUID
			Correct bool
		}
		SetStarred []struct {
			CardID  uuid.UUID
			Starred bool
		}
	}
	lock sync.RWMutex
}

func (mock *cardRepoMock) ListByDeck(ctx context.Context, userID, deckID uuid.UUID) ([]domain.Card, error) {
	if mock.ListByDeckFunc == nil {
		panic("cardRepoMock.ListByDeckFunc: method is nil but cardRepo.ListByDeck was just called")
	}
	return mock.ListByDeckFunc(ctx, userID, deckID)
}

func (mock *cardRepoMock) RecordReview(ctx context.Context, userID, cardID uuid.UUID, correct bool) (*domain.Card, error) {
	if mock.RecordReviewFunc == nil {
		panic("cardRepoMock.RecordReviewFunc: method is nil but cardRepo.RecordReview was just called")
	}
	mock.lock.Lock()
	mock.calls.RecordReview = append(mock.calls.RecordReview, struct {
		CardID  uuid.UUID
		Correct bool
	}{CardID: cardID, Correct: correct})
	mock.lock.Unlock()
	return mock.RecordReviewFunc(ctx, userID, cardID, correct)
}

func (mock *cardRepoMock) RecordReviewCalls() []struct {
	CardID  uuid.UUID
	Correct bool
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RecordReview
}

func (mock *cardRepoMock) SetStarred(ctx context.Context, userID, cardID uuid.UUID, starred bool) (*domain.Card, error) {
	if mock.SetStarredFunc == nil {
		panic("cardRepoMock.SetStarredFunc: method is nil but cardRepo.SetStarred was just called")
	}
	mock.lock.Lock()
	mock.calls.SetStarred = append(mock.calls.SetStarred, struct {
		CardID  uuid.UUID
		Starred bool
	}{CardID: cardID, Starred: starred})
	mock.lock.Unlock()
	return mock.SetStarredFunc(ctx, userID, cardID, starred)
}

func (mock *cardRepoMock) SetStarredCalls() []struct {
	CardID  uuid.UUID
	Starred bool
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SetStarred
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
