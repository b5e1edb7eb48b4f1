package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/flashdeck/backend/internal/adapter/postgres/testhelper"
	"github.com/flashdeck/backend/internal/adapter/postgres/user"
	"github.com/flashdeck/backend/internal/domain"
)

// newRepo is a test helper that sets up the DB and returns a ready Repo.
func newRepo(t *testing.T) (*user.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return user.New(pool), pool
}

func newUser() domain.User {
	suffix := uuid.New().String()[:8]
	return domain.User{
		ID:           uuid.New(),
		Email:        "user-" + suffix + "@example.com",
		Username:     "user-" + suffix,
		PasswordHash: "$2a$10$" + suffix + "fakefakefakefakefakefakefakefakefakefakefakefak",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}
}

func assertUserEqual(t *testing.T, want domain.User, got *domain.User) {
	t.Helper()
	if got == nil {
		t.Fatal("got nil user")
	}
	if got.ID != want.ID {
		t.Errorf("ID = %s, want %s", got.ID, want.ID)
	}
	if got.Email != want.Email {
		t.Errorf("Email = %q, want %q", got.Email, want.Email)
	}
	if got.Username != want.Username {
		t.Errorf("Username = %q, want %q", got.Username, want.Username)
	}
	if got.PasswordHash != want.PasswordHash {
		t.Errorf("PasswordHash = %q, want %q", got.PasswordHash, want.PasswordHash)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("CreatedAt = %s, want %s", got.CreatedAt, want.CreatedAt)
	}
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestRepo_Create_HappyPath(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	u := newUser()

	got, err := repo.Create(ctx, &u)
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	assertUserEqual(t, u, got)
}

func TestRepo_Create_DuplicateEmail(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	u1 := newUser()
	if _, err := repo.Create(ctx, &u1); err != nil {
		t.Fatalf("Create first user: %v", err)
	}

	u2 := newUser()
	u2.Email = u1.Email // same email

	_, err := repo.Create(ctx, &u2)
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("Create duplicate email: err = %v, want ErrAlreadyExists", err)
	}
}

func TestRepo_Create_DuplicateUsername(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	u1 := newUser()
	if _, err := repo.Create(ctx, &u1); err != nil {
		t.Fatalf("Create first user: %v", err)
	}

	u2 := newUser()
	u2.Username = u1.Username // same username

	_, err := repo.Create(ctx, &u2)
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("Create duplicate username: err = %v, want ErrAlreadyExists", err)
	}
}

// ---------------------------------------------------------------------------
// Lookups
// ---------------------------------------------------------------------------

func TestRepo_GetByID(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	seeded := testhelper.SeedUser(t, pool)

	got, err := repo.GetByID(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}

	assertUserEqual(t, seeded, got)
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByID missing: err = %v, want ErrNotFound", err)
	}
}

func TestRepo_GetByEmail(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	seeded := testhelper.SeedUser(t, pool)

	got, err := repo.GetByEmail(ctx, seeded.Email)
	if err != nil {
		t.Fatalf("GetByEmail: unexpected error: %v", err)
	}

	assertUserEqual(t, seeded, got)
}

func TestRepo_GetByEmail_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	_, err := repo.GetByEmail(ctx, "nobody-"+uuid.New().String()[:8]+"@example.com")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByEmail missing: err = %v, want ErrNotFound", err)
	}
}

func TestRepo_GetByUsername(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	seeded := testhelper.SeedUser(t, pool)

	got, err := repo.GetByUsername(ctx, seeded.Username)
	if err != nil {
		t.Fatalf("GetByUsername: unexpected error: %v", err)
	}

	assertUserEqual(t, seeded, got)
}

func TestRepo_GetByUsername_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	_, err := repo.GetByUsername(ctx, "nobody-"+uuid.New().String()[:8])
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByUsername missing: err = %v, want ErrNotFound", err)
	}
}
