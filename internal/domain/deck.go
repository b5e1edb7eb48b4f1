package domain

import (
	"time"

	"github.com/google/uuid"
)

// Deck is a named collection of flashcards owned by a single user.
// OrderIndex is nil for decks created before manual ordering existed;
// lists place those after explicitly ordered decks.
type Deck struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description *string
	OrderIndex  *int
	CreatedAt   time.Time
}
