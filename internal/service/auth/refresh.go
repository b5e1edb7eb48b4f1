package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/flashdeck/backend/internal/auth"
	"github.com/flashdeck/backend/internal/domain"
)

// Refresh rotates a refresh token: the presented token is revoked and a new
// access/refresh pair is issued. Returns domain.ErrUnauthorized if the token
// is unknown, revoked, or expired.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	stored, err := s.tokens.GetByHash(ctx, auth.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("find refresh token: %w", err)
	}

	user, err := s.users.GetByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	var result *AuthResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if revokeErr := s.tokens.RevokeByID(txCtx, stored.ID); revokeErr != nil {
			return fmt.Errorf("revoke refresh token: %w", revokeErr)
		}

		var issueErr error
		result, issueErr = s.issueTokens(txCtx, user)
		return issueErr
	})
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "refresh token rotated",
		slog.String("user_id", user.ID.String()),
	)

	return result, nil
}
