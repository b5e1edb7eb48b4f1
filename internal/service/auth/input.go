package auth

import (
	"strings"

	"github.com/flashdeck/backend/internal/domain"
)

// RegisterInput holds the parameters for registering a new user.
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	email := strings.TrimSpace(i.Email)
	if email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if !strings.Contains(email, "@") || strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}
	if len(email) > 254 {
		errs = append(errs, domain.FieldError{Field: "email", Message: "max 254 characters"})
	}

	username := strings.TrimSpace(i.Username)
	if username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if len(username) < 3 {
		errs = append(errs, domain.FieldError{Field: "username", Message: "min 3 characters"})
	}
	if len(username) > 30 {
		errs = append(errs, domain.FieldError{Field: "username", Message: "max 30 characters"})
	}

	if len(i.Password) < 8 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "min 8 characters"})
	}
	if len(i.Password) > 72 { // bcrypt input limit
		errs = append(errs, domain.FieldError{Field: "password", Message: "max 72 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds the parameters for logging in.
// Login accepts either an email address or a username.
type LoginInput struct {
	Login    string
	Password string
}

// Validate checks all fields and collects all errors.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Login) == "" {
		errs = append(errs, domain.FieldError{Field: "login", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds the raw refresh token presented by the client.
type RefreshInput struct {
	RefreshToken string
}

// Validate checks all fields and collects all errors.
func (i RefreshInput) Validate() error {
	if strings.TrimSpace(i.RefreshToken) == "" {
		return domain.NewValidationError("refresh_token", "required")
	}
	return nil
}

// LogoutInput holds the raw refresh token to revoke.
type LogoutInput struct {
	RefreshToken string
	Everywhere   bool // revoke all of the user's sessions
}

// Validate checks all fields and collects all errors.
func (i LogoutInput) Validate() error {
	if strings.TrimSpace(i.RefreshToken) == "" {
		return domain.NewValidationError("refresh_token", "required")
	}
	return nil
}
