package domain

import (
	"time"

	"github.com/google/uuid"
)

// Card is a single flashcard: a front/back text pair with an optional
// illustration and lifetime review counters.
//
// Counter invariant: Attempts == Correct + Incorrect. The repository
// increments all three atomically in one statement, so the invariant
// holds even under concurrent reviews.
type Card struct {
	ID         uuid.UUID
	DeckID     uuid.UUID
	FrontText  string
	BackText   string
	ImageURL   *string
	Starred    bool
	OrderIndex *int
	Attempts   int
	Correct    int
	Incorrect  int
	CreatedAt  time.Time
}

// Accuracy returns the lifetime share of correct answers in [0, 1].
// A card that was never answered has accuracy 0.
func (c *Card) Accuracy() float64 {
	if c.Attempts == 0 {
		return 0
	}
	return float64(c.Correct) / float64(c.Attempts)
}
