package card

import (
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/flashdeck/backend/internal/domain"
)

const maxCardTextLen = 2000

// ImageUpload is an optional image attached to a card.
type ImageUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// CreateCardInput holds the parameters for creating a card.
type CreateCardInput struct {
	DeckID    uuid.UUID
	FrontText string
	BackText  string
	Image     *ImageUpload
}

// Validate checks all fields and collects all errors.
func (i CreateCardInput) Validate() error {
	var errs []domain.FieldError

	if i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}
	errs = append(errs, validateTexts(i.FrontText, i.BackText)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCardInput holds the parameters for editing a card.
type UpdateCardInput struct {
	CardID    uuid.UUID
	FrontText string
	BackText  string
	Image     *ImageUpload // nil = keep the current image
}

// Validate checks all fields and collects all errors.
func (i UpdateCardInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	errs = append(errs, validateTexts(i.FrontText, i.BackText)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateTexts(front, back string) []domain.FieldError {
	var errs []domain.FieldError

	if strings.TrimSpace(front) == "" {
		errs = append(errs, domain.FieldError{Field: "front_text", Message: "required"})
	}
	if len(front) > maxCardTextLen {
		errs = append(errs, domain.FieldError{Field: "front_text", Message: "max 2000 characters"})
	}
	if strings.TrimSpace(back) == "" {
		errs = append(errs, domain.FieldError{Field: "back_text", Message: "required"})
	}
	if len(back) > maxCardTextLen {
		errs = append(errs, domain.FieldError{Field: "back_text", Message: "max 2000 characters"})
	}

	return errs
}

// SearchCardsInput filters a deck's cards in memory.
type SearchCardsInput struct {
	DeckID      uuid.UUID
	Query       string
	StarredOnly bool
}

// Validate checks all fields and collects all errors.
func (i SearchCardsInput) Validate() error {
	if i.DeckID == uuid.Nil {
		return domain.NewValidationError("deck_id", "required")
	}
	return nil
}

// ReorderCardsInput moves the card at position From to position To within
// the deck's current ordering.
type ReorderCardsInput struct {
	DeckID uuid.UUID
	From   int
	To     int
}

// Validate checks all fields and collects all errors.
func (i ReorderCardsInput) Validate() error {
	var errs []domain.FieldError
	if i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}
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
