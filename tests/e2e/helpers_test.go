//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/flashdeck/backend/internal/adapter/postgres"
	cardrepo "github.com/flashdeck/backend/internal/adapter/postgres/card"
	deckrepo "github.com/flashdeck/backend/internal/adapter/postgres/deck"
	"github.com/flashdeck/backend/internal/adapter/postgres/testhelper"
	tokenrepo "github.com/flashdeck/backend/internal/adapter/postgres/token"
	userrepo "github.com/flashdeck/backend/internal/adapter/postgres/user"
	authpkg "github.com/flashdeck/backend/internal/auth"
	"github.com/flashdeck/backend/internal/config"
	authsvc "github.com/flashdeck/backend/internal/service/auth"
	cardsvc "github.com/flashdeck/backend/internal/service/card"
	decksvc "github.com/flashdeck/backend/internal/service/deck"
	reviewsvc "github.com/flashdeck/backend/internal/service/review"
	statssvc "github.com/flashdeck/backend/internal/service/stats"
	"github.com/flashdeck/backend/internal/transport/middleware"
	"github.com/flashdeck/backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// memoryImageStore stands in for S3 in E2E tests. Uploads are not stored;
// only the returned URL matters to the flows under test.
type memoryImageStore struct{}

func (s *memoryImageStore) Upload(_ context.Context, deckID uuid.UUID, filename, _ string, body io.Reader) (string, error) {
	if _, err := io.Copy(io.Discard, body); err != nil {
		return "", err
	}
	return fmt.Sprintf("https://images.test/%s/%s", deckID, filename), nil
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	userRepo := userrepo.New(pool)
	tokenRepo := tokenrepo.New(pool)
	deckRepo := deckrepo.New(pool)
	cardRepo := cardrepo.New(pool)

	jwtMgr := authpkg.NewJWTManager(
		"test-secret-at-least-32-chars-long!!",
		"test-issuer",
		15*time.Minute,
	)

	authCfg := config.AuthConfig{
		JWTSecret:       "test-secret-at-least-32-chars-long!!",
		JWTIssuer:       "test-issuer",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 720 * time.Hour,
	}
	decksCfg := config.DecksConfig{ImportMaxCards: 1000, ExportMaxDecks: 100}
	reviewCfg := config.ReviewConfig{SessionTTL: 2 * time.Hour, ChoiceOptions: 4}

	sessions := reviewsvc.NewStore(reviewCfg.SessionTTL)

	authService := authsvc.NewService(logger, authCfg, userRepo, tokenRepo, txm, jwtMgr)
	deckService := decksvc.NewService(logger, decksCfg, deckRepo, cardRepo, txm)
	cardService := cardsvc.NewService(logger, cardRepo, deckRepo, &memoryImageStore{}, txm)
	reviewService := reviewsvc.NewService(logger, reviewCfg, cardRepo, deckRepo, sessions)
	statsService := statssvc.NewService(logger, cardRepo, deckRepo)

	handlers := rest.Handlers{
		Auth:   rest.NewAuthHandler(authService, logger),
		Deck:   rest.NewDeckHandler(deckService, logger),
		Card:   rest.NewCardHandler(cardService, logger),
		Review: rest.NewReviewHandler(reviewService, logger),
		Stats:  rest.NewStatsHandler(statsService, logger),
		Health: rest.NewHealthHandler(pool, "e2e-test"),
	}

	router := rest.NewRouter(handlers,
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Auth(jwtMgr),
	)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// ---------------------------------------------------------------------------
// HTTP helpers.
// ---------------------------------------------------------------------------

// doJSON sends a JSON request with an optional bearer token and decodes the
// response body into a generic map. A nil body sends no payload.
func (ts *testServer) doJSON(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var result map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &result), "body: %s", raw)
	}
	return resp.StatusCode, result
}

// doJSONList is doJSON for endpoints returning a JSON array.
func (ts *testServer) doJSONList(t *testing.T, method, path, token string, body any) (int, []map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var result []map[string]any
	if len(raw) > 0 && raw[0] == '[' {
		require.NoError(t, json.Unmarshal(raw, &result), "body: %s", raw)
	}
	return resp.StatusCode, result
}

// registerUser registers a fresh user and returns the access and refresh
// tokens. Email and username are unique per call.
func (ts *testServer) registerUser(t *testing.T) (accessToken, refreshToken string) {
	t.Helper()

	suffix := uuid.New().String()[:8]
	status, body := ts.doJSON(t, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"email":    "e2e-" + suffix + "@example.com",
		"username": "e2e-" + suffix,
		"password": "super-secret-1",
	})
	require.Equal(t, http.StatusCreated, status, "register: %v", body)

	accessToken, _ = body["accessToken"].(string)
	refreshToken, _ = body["refreshToken"].(string)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	return accessToken, refreshToken
}

// createDeck creates a deck and returns its ID.
func (ts *testServer) createDeck(t *testing.T, token, title string) string {
	t.Helper()

	status, body := ts.doJSON(t, http.MethodPost, "/api/v1/decks", token, map[string]any{
		"title": title,
	})
	require.Equal(t, http.StatusCreated, status, "create deck: %v", body)

	id, _ := body["id"].(string)
	require.NotEmpty(t, id)
	return id
}

// createCard creates a card in the deck and returns its ID.
func (ts *testServer) createCard(t *testing.T, token, deckID, front, back string) string {
	t.Helper()

	status, body := ts.doJSON(t, http.MethodPost, "/api/v1/decks/"+deckID+"/cards", token, map[string]any{
		"frontText": front,
		"backText":  back,
	})
	require.Equal(t, http.StatusCreated, status, "create card: %v", body)

	id, _ := body["id"].(string)
	require.NotEmpty(t, id)
	return id
}
