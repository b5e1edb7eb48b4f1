package auth

import "github.com/flashdeck/backend/internal/domain"

// AuthResult is returned by Register, Login and Refresh: the user plus a
// fresh token pair. RefreshToken is the raw value; only its hash is stored.
type AuthResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}
