// Package card implements the Card repository using PostgreSQL.
//
// All operations are scoped to the deck owner: queries join through decks
// so a card is only visible via its owner's user id.
package card

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/flashdeck/backend/internal/adapter/postgres"
	"github.com/flashdeck/backend/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides card persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new card repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const cardColumns = `c.id, c.deck_id, c.front_text, c.back_text, c.image_url,
	c.starred, c.order_index, c.attempts, c.correct, c.incorrect, c.created_at`

const getCardByIDSQL = `
SELECT ` + cardColumns + `
FROM cards c
JOIN decks d ON d.id = c.deck_id
WHERE c.id = $1 AND d.user_id = $2`

const createCardSQL = `
INSERT INTO cards (id, deck_id, front_text, back_text, image_url, starred, order_index, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, deck_id, front_text, back_text, image_url,
	starred, order_index, attempts, correct, incorrect, created_at`

const updateCardSQL = `
UPDATE cards c
SET front_text = $3, back_text = $4, image_url = $5
FROM decks d
WHERE c.id = $1 AND d.id = c.deck_id AND d.user_id = $2
RETURNING ` + cardColumns

const deleteCardSQL = `
DELETE FROM cards c
USING decks d
WHERE c.id = $1 AND d.id = c.deck_id AND d.user_id = $2`

const setStarredSQL = `
UPDATE cards c
SET starred = $3
FROM decks d
WHERE c.id = $1 AND d.id = c.deck_id AND d.user_id = $2
RETURNING ` + cardColumns

// recordReviewSQL bumps the review counters in a single statement so the
// attempts = correct + incorrect balance holds under concurrent answers.
const recordReviewSQL = `
UPDATE cards c
SET attempts  = c.attempts + 1,
    correct   = c.correct + CASE WHEN $3 THEN 1 ELSE 0 END,
    incorrect = c.incorrect + CASE WHEN $3 THEN 0 ELSE 1 END
FROM decks d
WHERE c.id = $1 AND d.id = c.deck_id AND d.user_id = $2
RETURNING ` + cardColumns

const updateCardPositionSQL = `
UPDATE cards c
SET order_index = $4
FROM decks d
WHERE c.id = $1 AND c.deck_id = $3 AND d.id = c.deck_id AND d.user_id = $2`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// GetByID returns a card by id, scoped to the deck owner.
func (r *Repo) GetByID(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCard(q.QueryRow(ctx, getCardByIDSQL, cardID, userID))
	if err != nil {
		return nil, mapError(err, "card", cardID)
	}

	return c, nil
}

// ListByDeck returns all cards in a deck owned by the user.
// Cards with an explicit position come first in position order; unplaced
// cards follow, oldest first.
func (r *Repo) ListByDeck(ctx context.Context, userID, deckID uuid.UUID) ([]domain.Card, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := psql.
		Select("c.id", "c.deck_id", "c.front_text", "c.back_text", "c.image_url",
			"c.starred", "c.order_index", "c.attempts", "c.correct", "c.incorrect", "c.created_at").
		From("cards c").
		Join("decks d ON d.id = c.deck_id").
		Where(squirrel.Eq{"c.deck_id": deckID, "d.user_id": userID}).
		OrderBy("c.order_index ASC NULLS LAST", "c.created_at ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list cards query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err, "card", uuid.Nil)
	}
	defer rows.Close()

	cards, err := scanCards(rows)
	if err != nil {
		return nil, mapError(err, "card", uuid.Nil)
	}

	return cards, nil
}

// Create inserts a new card and returns the persisted domain.Card.
// Counters start at zero.
func (r *Repo) Create(ctx context.Context, c *domain.Card) (*domain.Card, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanCard(q.QueryRow(ctx, createCardSQL,
		c.ID, c.DeckID, c.FrontText, c.BackText, c.ImageURL, c.Starred, c.OrderIndex, c.CreatedAt,
	))
	if err != nil {
		return nil, mapError(err, "card", c.ID)
	}

	return created, nil
}

// BulkCreate inserts many cards in one round trip. Used by deck import.
// Returns the number of cards inserted.
func (r *Repo) BulkCreate(ctx context.Context, cards []domain.Card) (int, error) {
	if len(cards) == 0 {
		return 0, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, c := range cards {
		batch.Queue(createCardSQL,
			c.ID, c.DeckID, c.FrontText, c.BackText, c.ImageURL, c.Starred, c.OrderIndex, c.CreatedAt,
		)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for i := range cards {
		if _, err := results.Exec(); err != nil {
			return 0, mapError(err, "card", cards[i].ID)
		}
	}

	if err := results.Close(); err != nil {
		return 0, mapError(err, "card", uuid.Nil)
	}

	return len(cards), nil
}

// Update changes a card's texts and image URL.
// Returns domain.ErrNotFound if the card does not exist or the deck belongs
// to another user.
func (r *Repo) Update(ctx context.Context, userID, cardID uuid.UUID, frontText, backText string, imageURL *string) (*domain.Card, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanCard(q.QueryRow(ctx, updateCardSQL,
		cardID, userID, frontText, backText, imageURL,
	))
	if err != nil {
		return nil, mapError(err, "card", cardID)
	}

	return updated, nil
}

// Delete removes a card.
// Returns domain.ErrNotFound if the card does not exist or the deck belongs
// to another user.
func (r *Repo) Delete(ctx context.Context, userID, cardID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteCardSQL, cardID, userID)
	if err != nil {
		return mapError(err, "card", cardID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card %s: %w", cardID, domain.ErrNotFound)
	}

	return nil
}

// SetStarred persists the starred flag.
// Returns domain.ErrNotFound if the card does not exist or the deck belongs
// to another user.
func (r *Repo) SetStarred(ctx context.Context, userID, cardID uuid.UUID, starred bool) (*domain.Card, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanCard(q.QueryRow(ctx, setStarredSQL, cardID, userID, starred))
	if err != nil {
		return nil, mapError(err, "card", cardID)
	}

	return updated, nil
}

// RecordReview atomically increments attempts and exactly one of
// correct/incorrect, returning the card with the new counters.
func (r *Repo) RecordReview(ctx context.Context, userID, cardID uuid.UUID, correct bool) (*domain.Card, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanCard(q.QueryRow(ctx, recordReviewSQL, cardID, userID, correct))
	if err != nil {
		return nil, mapError(err, "card", cardID)
	}

	return updated, nil
}

// UpdatePositions persists a new card ordering within a deck in one round
// trip. ids must hold the deck's cards in their final order; position i is
// written as order_index i.
func (r *Repo) UpdatePositions(ctx context.Context, userID, deckID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for pos, id := range ids {
		batch.Queue(updateCardPositionSQL, id, userID, deckID, pos)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for range ids {
		if _, err := results.Exec(); err != nil {
			return mapError(err, "card", uuid.Nil)
		}
	}

	return results.Close()
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanCard(row pgx.Row) (*domain.Card, error) {
	var c domain.Card
	err := row.Scan(
		&c.ID, &c.DeckID, &c.FrontText, &c.BackText, &c.ImageURL,
		&c.Starred, &c.OrderIndex, &c.Attempts, &c.Correct, &c.Incorrect, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanCards(rows pgx.Rows) ([]domain.Card, error) {
	var cards []domain.Card
	for rows.Next() {
		var c domain.Card
		err := rows.Scan(
			&c.ID, &c.DeckID, &c.FrontText, &c.BackText, &c.ImageURL,
			&c.Starred, &c.OrderIndex, &c.Attempts, &c.Correct, &c.Incorrect, &c.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if cards == nil {
		cards = []domain.Card{}
	}
	return cards, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		case "42P01": // undefined_table, schema was never provisioned
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotConfigured)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, id, err)
}
