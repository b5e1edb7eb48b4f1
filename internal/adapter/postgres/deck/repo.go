// Package deck implements the Deck repository using PostgreSQL.
package deck

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

// Repo provides deck persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new deck repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const deckColumns = `id, user_id, title, description, order_index, created_at`

const getDeckByIDSQL = `
SELECT ` + deckColumns + `
FROM decks
WHERE id = $1 AND user_id = $2`

const createDeckSQL = `
INSERT INTO decks (id, user_id, title, description, order_index, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + deckColumns

const updateDeckSQL = `
UPDATE decks
SET title = $3, description = $4
WHERE id = $1 AND user_id = $2
RETURNING ` + deckColumns

const deleteDeckSQL = `
DELETE FROM decks
WHERE id = $1 AND user_id = $2`

const updateDeckPositionSQL = `
UPDATE decks
SET order_index = $3
WHERE id = $1 AND user_id = $2`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// GetByID returns a deck by id, scoped to its owner.
func (r *Repo) GetByID(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	d, err := scanDeck(q.QueryRow(ctx, getDeckByIDSQL, deckID, userID))
	if err != nil {
		return nil, mapError(err, "deck", deckID)
	}

	return d, nil
}

// ListByUser returns all decks owned by the user.
// Decks with an explicit position come first in position order; unplaced
// decks follow, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Deck, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := psql.
		Select("id", "user_id", "title", "description", "order_index", "created_at").
		From("decks").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("order_index ASC NULLS LAST", "created_at DESC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list decks query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err, "deck", uuid.Nil)
	}
	defer rows.Close()

	decks, err := scanDecks(rows)
	if err != nil {
		return nil, mapError(err, "deck", uuid.Nil)
	}

	return decks, nil
}

// Create inserts a new deck and returns the persisted domain.Deck.
func (r *Repo) Create(ctx context.Context, d *domain.Deck) (*domain.Deck, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanDeck(q.QueryRow(ctx, createDeckSQL,
		d.ID, d.UserID, d.Title, d.Description, d.OrderIndex, d.CreatedAt,
	))
	if err != nil {
		return nil, mapError(err, "deck", d.ID)
	}

	return created, nil
}

// Update changes a deck's title and description.
// Returns domain.ErrNotFound if the deck does not exist or belongs to
// another user.
func (r *Repo) Update(ctx context.Context, userID, deckID uuid.UUID, title string, description *string) (*domain.Deck, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanDeck(q.QueryRow(ctx, updateDeckSQL, deckID, userID, title, description))
	if err != nil {
		return nil, mapError(err, "deck", deckID)
	}

	return updated, nil
}

// Delete removes a deck. Cards are removed by the cascade.
// Returns domain.ErrNotFound if the deck does not exist or belongs to
// another user.
func (r *Repo) Delete(ctx context.Context, userID, deckID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteDeckSQL, deckID, userID)
	if err != nil {
		return mapError(err, "deck", deckID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deck %s: %w", deckID, domain.ErrNotFound)
	}

	return nil
}

// DeleteByIDs removes the given decks, scoped to the owner.
// IDs that do not exist or belong to another user are skipped.
// Returns the number of decks actually deleted.
func (r *Repo) DeleteByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := psql.
		Delete("decks").
		Where(squirrel.Eq{"user_id": userID, "id": ids})

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build bulk delete query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, mapError(err, "deck", uuid.Nil)
	}

	return int(tag.RowsAffected()), nil
}

// UpdatePositions persists a new deck ordering in one round trip.
// ids must hold the owner's decks in their final order; position i is
// written as order_index i.
func (r *Repo) UpdatePositions(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for pos, id := range ids {
		batch.Queue(updateDeckPositionSQL, id, userID, pos)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for range ids {
		if _, err := results.Exec(); err != nil {
			return mapError(err, "deck", uuid.Nil)
		}
	}

	return results.Close()
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanDeck(row pgx.Row) (*domain.Deck, error) {
	var d domain.Deck
	err := row.Scan(&d.ID, &d.UserID, &d.Title, &d.Description, &d.OrderIndex, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func scanDecks(rows pgx.Rows) ([]domain.Deck, error) {
	var decks []domain.Deck
	for rows.Next() {
		var d domain.Deck
		err := rows.Scan(&d.ID, &d.UserID, &d.Title, &d.Description, &d.OrderIndex, &d.CreatedAt)
		if err != nil {
			return nil, err
		}
		decks = append(decks, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if decks == nil {
		decks = []domain.Deck{}
	}
	return decks, nil
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
