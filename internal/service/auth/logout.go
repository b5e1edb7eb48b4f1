package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/flashdeck/backend/internal/auth"
	"github.com/flashdeck/backend/internal/domain"
)

// Logout revokes the presented refresh token. With Everywhere set, all of
// the owning user's tokens are revoked instead.
// Logging out with an already-invalid token succeeds: the session is gone
// either way.
func (s *Service) Logout(ctx context.Context, input LogoutInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	stored, err := s.tokens.GetByHash(ctx, auth.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("find refresh token: %w", err)
	}

	if input.Everywhere {
		if err := s.tokens.RevokeAllByUser(ctx, stored.UserID); err != nil {
			return fmt.Errorf("revoke all tokens: %w", err)
		}
	} else {
		if err := s.tokens.RevokeByID(ctx, stored.ID); err != nil {
			return fmt.Errorf("revoke token: %w", err)
		}
	}

	s.log.InfoContext(ctx, "user logged out",
		slog.String("user_id", stored.UserID.String()),
		slog.Bool("everywhere", input.Everywhere),
	)

	return nil
}
