package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/flashdeck/backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a throwaway bcrypt-shaped password hash.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Username:     "testuser-" + suffix,
		PasswordHash: "$2a$10$" + suffix + "fakefakefakefakefakefakefakefakefakefakefakefak",
		CreatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.Username, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedDeck creates a deck for the given user. Title gets a unique suffix.
// orderIndex may be nil.
func SeedDeck(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, orderIndex *int) domain.Deck {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	desc := "Seeded deck " + suffix
	deck := domain.Deck{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       "Deck " + suffix,
		Description: &desc,
		OrderIndex:  orderIndex,
		CreatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO decks (id, user_id, title, description, order_index, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		deck.ID, deck.UserID, deck.Title, deck.Description, deck.OrderIndex, deck.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDeck insert deck: %v", err)
	}

	return deck
}

// SeedCard creates a card in the given deck with zeroed review counters.
func SeedCard(t *testing.T, pool *pgxpool.Pool, deckID uuid.UUID) domain.Card {
	t.Helper()
	return SeedCardWithCounters(t, pool, deckID, 0, 0)
}

// SeedCardWithCounters creates a card with the given correct/incorrect
// counters; attempts is their sum, keeping the counter invariant.
func SeedCardWithCounters(t *testing.T, pool *pgxpool.Pool, deckID uuid.UUID, correct, incorrect int) domain.Card {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	card := domain.Card{
		ID:        uuid.New(),
		DeckID:    deckID,
		FrontText: "front " + suffix,
		BackText:  "back " + suffix,
		Attempts:  correct + incorrect,
		Correct:   correct,
		Incorrect: incorrect,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO cards (id, deck_id, front_text, back_text, starred, attempts, correct, incorrect, created_at)
		 VALUES ($1, $2, $3, $4, false, $5, $6, $7, $8)`,
		card.ID, card.DeckID, card.FrontText, card.BackText, card.Attempts, card.Correct, card.Incorrect, card.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCardWithCounters insert card: %v", err)
	}

	return card
}
