package review

import (
	"github.com/google/uuid"

	"github.com/flashdeck/backend/internal/domain"
)

// StartInput holds the parameters for starting a review session.
type StartInput struct {
	DeckID  uuid.UUID
	Mode    domain.ReviewMode
	Shuffle bool
}

// Validate checks all fields and collects all errors.
func (i StartInput) Validate() error {
	var errs []domain.FieldError
	if i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}
	if !i.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be FLIP or CHOICE"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SessionInput addresses an existing session.
type SessionInput struct {
	SessionID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i SessionInput) Validate() error {
	if i.SessionID == uuid.Nil {
		return domain.NewValidationError("session_id", "required")
	}
	return nil
}

// AnswerInput grades the current card of a session. In flip mode the client
// self-grades via Correct; in choice mode it submits the chosen option and
// the service grades it against the card's back text.
type AnswerInput struct {
	SessionID uuid.UUID
	Correct   bool
	Selected  *string
}

// Validate checks all fields and collects all errors.
func (i AnswerInput) Validate() error {
	if i.SessionID == uuid.Nil {
		return domain.NewValidationError("session_id", "required")
	}
	return nil
}

// ModeInput switches a session's review mode.
type ModeInput struct {
	SessionID uuid.UUID
	Mode      domain.ReviewMode
}

// Validate checks all fields and collects all errors.
func (i ModeInput) Validate() error {
	var errs []domain.FieldError
	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}
	if !i.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be FLIP or CHOICE"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
