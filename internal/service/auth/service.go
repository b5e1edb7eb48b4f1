// Package auth implements registration, login, and refresh token rotation.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/flashdeck/backend/internal/config"
	"github.com/flashdeck/backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
}

type tokenRepo interface {
	Create(ctx context.Context, token *domain.RefreshToken) error
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByID(ctx context.Context, id uuid.UUID) error
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	GenerateRefreshToken() (raw string, hash string, err error)
}

// Service provides authentication operations.
type Service struct {
	cfg    config.AuthConfig
	users  userRepo
	tokens tokenRepo
	tx     txManager
	jwt    jwtManager
	log    *slog.Logger
}

// NewService creates a new Auth service.
func NewService(
	log *slog.Logger,
	cfg config.AuthConfig,
	users userRepo,
	tokens tokenRepo,
	tx txManager,
	jwt jwtManager,
) *Service {
	return &Service{
		cfg:    cfg,
		users:  users,
		tokens: tokens,
		tx:     tx,
		jwt:    jwt,
		log:    log.With("service", "auth"),
	}
}
