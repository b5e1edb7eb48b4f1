// Command seeder creates a demo user with a few sample decks and cards.
// It is meant for local development and demo environments, not production.
//
// Usage:
//
//	seeder [--email=demo@flashdeck.app] [--password=demo1234]
//
// Requires DATABASE_DSN environment variable to be set.
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	cardrepo "github.com/flashdeck/backend/internal/adapter/postgres/card"
	deckrepo "github.com/flashdeck/backend/internal/adapter/postgres/deck"
	userrepo "github.com/flashdeck/backend/internal/adapter/postgres/user"
	"github.com/flashdeck/backend/internal/domain"
)

type seedCard struct {
	front, back string
}

type seedDeck struct {
	title       string
	description string
	cards       []seedCard
}

var demoDecks = []seedDeck{
	{
		title:       "Spanish Basics",
		description: "Everyday words to get started.",
		cards: []seedCard{
			{"hola", "hello"},
			{"adiós", "goodbye"},
			{"gracias", "thank you"},
			{"por favor", "please"},
			{"perro", "dog"},
			{"gato", "cat"},
		},
	},
	{
		title:       "World Capitals",
		description: "Countries and their capital cities.",
		cards: []seedCard{
			{"France", "Paris"},
			{"Japan", "Tokyo"},
			{"Australia", "Canberra"},
			{"Canada", "Ottawa"},
			{"Brazil", "Brasília"},
		},
	},
	{
		title:       "Go Interview Prep",
		description: "",
		cards: []seedCard{
			{"What does a nil map lookup return?", "The zero value of the element type."},
			{"How do you signal cancellation to a goroutine?", "Pass a context.Context and select on ctx.Done()."},
			{"What is the zero value of a slice?", "nil"},
		},
	},
}

func main() {
	email := flag.String("email", "demo@flashdeck.app", "demo user email")
	password := flag.String("password", "demo1234", "demo user password")
	flag.Parse()

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	if err := seed(ctx, pool, *email, *password); err != nil {
		log.Fatalf("seed: %v", err)
	}
}

func seed(ctx context.Context, pool *pgxpool.Pool, email, password string) error {
	users := userrepo.New(pool)
	decks := deckrepo.New(pool)
	cards := cardrepo.New(pool)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user, err := users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Email:        email,
		Username:     "demo",
		PasswordHash: string(hash),
		CreatedAt:    now,
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		return fmt.Errorf("user %s already exists, drop the database or pass a different --email", email)
	}
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	total := 0
	for di, sd := range demoDecks {
		deckIndex := di
		var desc *string
		if sd.description != "" {
			d := sd.description
			desc = &d
		}

		deck, err := decks.Create(ctx, &domain.Deck{
			ID:          uuid.New(),
			UserID:      user.ID,
			Title:       sd.title,
			Description: desc,
			OrderIndex:  &deckIndex,
			CreatedAt:   now,
		})
		if err != nil {
			return fmt.Errorf("create deck %q: %w", sd.title, err)
		}

		for ci, sc := range sd.cards {
			cardIndex := ci
			if _, err := cards.Create(ctx, &domain.Card{
				ID:         uuid.New(),
				DeckID:     deck.ID,
				FrontText:  sc.front,
				BackText:   sc.back,
				OrderIndex: &cardIndex,
				CreatedAt:  now,
			}); err != nil {
				return fmt.Errorf("create card %q: %w", sc.front, err)
			}
			total++
		}
	}

	fmt.Printf("Seeded user %s with %d decks and %d cards.\n", email, len(demoDecks), total)
	return nil
}
