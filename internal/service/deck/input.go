package deck

import (
	"strings"

	"github.com/google/uuid"

	"github.com/flashdeck/backend/internal/domain"
)

// CreateDeckInput holds the parameters for creating a deck.
type CreateDeckInput struct {
	Title       string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateDeckInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > 100 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 100 characters"})
	}
	if i.Description != nil && len(strings.TrimSpace(*i.Description)) > 500 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateDeckInput holds the parameters for updating a deck.
type UpdateDeckInput struct {
	DeckID      uuid.UUID
	Title       string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i UpdateDeckInput) Validate() error {
	var errs []domain.FieldError

	if i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}
	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > 100 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 100 characters"})
	}
	if i.Description != nil && len(strings.TrimSpace(*i.Description)) > 500 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteDeckInput holds the parameters for deleting a single deck.
type DeleteDeckInput struct {
	DeckID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteDeckInput) Validate() error {
	if i.DeckID == uuid.Nil {
		return domain.NewValidationError("deck_id", "required")
	}
	return nil
}

// BulkDeleteInput holds the deck ids selected for deletion.
type BulkDeleteInput struct {
	DeckIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i BulkDeleteInput) Validate() error {
	if len(i.DeckIDs) == 0 {
		return domain.NewValidationError("deck_ids", "No decks selected.")
	}
	return nil
}

// ReorderInput moves the deck at position From to position To within the
// user's current deck ordering.
type ReorderInput struct {
	From int
	To   int
}

// Validate checks all fields and collects all errors.
func (i ReorderInput) Validate() error {
	var errs []domain.FieldError
	if i.From < 0 {
		errs = append(errs, domain.FieldError{Field: "from", Message: "must be non-negative"})
	}
	if i.To < 0 {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ImportInput holds a raw JSON deck export to import.
type ImportInput struct {
	Data []byte
}

// Validate checks all fields and collects all errors.
func (i ImportInput) Validate() error {
	if len(i.Data) == 0 {
		return domain.NewValidationError("file", "Invalid JSON file.")
	}
	return nil
}

// ExportSelectedInput holds the deck ids selected for a zip export.
type ExportSelectedInput struct {
	DeckIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ExportSelectedInput) Validate() error {
	if len(i.DeckIDs) == 0 {
		return domain.NewValidationError("deck_ids", "No decks selected.")
	}
	return nil
}
