package rest

import (
	"net/http"

	"github.com/flashdeck/backend/internal/transport/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth   *AuthHandler
	Deck   *DeckHandler
	Card   *CardHandler
	Review *ReviewHandler
	Stats  *StatsHandler
	Health *HealthHandler
}

// NewRouter mounts all REST routes behind the middleware chain.
func NewRouter(h Handlers, mws ...middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.HandleFunc("POST /api/v1/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/v1/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/v1/auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /api/v1/auth/logout", h.Auth.Logout)

	mux.HandleFunc("GET /api/v1/decks", h.Deck.List)
	mux.HandleFunc("POST /api/v1/decks", h.Deck.Create)
	mux.HandleFunc("POST /api/v1/decks/bulk-delete", h.Deck.BulkDelete)
	mux.HandleFunc("POST /api/v1/decks/reorder", h.Deck.Reorder)
	mux.HandleFunc("POST /api/v1/decks/export", h.Deck.ExportSelected)
	mux.HandleFunc("POST /api/v1/decks/import", h.Deck.Import)
	mux.HandleFunc("GET /api/v1/decks/{deckID}", h.Deck.Get)
	mux.HandleFunc("PUT /api/v1/decks/{deckID}", h.Deck.Update)
	mux.HandleFunc("DELETE /api/v1/decks/{deckID}", h.Deck.Delete)
	mux.HandleFunc("GET /api/v1/decks/{deckID}/export", h.Deck.Export)
	mux.HandleFunc("GET /api/v1/decks/{deckID}/stats", h.Stats.Get)

	mux.HandleFunc("GET /api/v1/decks/{deckID}/cards", h.Card.List)
	mux.HandleFunc("POST /api/v1/decks/{deckID}/cards", h.Card.Create)
	mux.HandleFunc("POST /api/v1/decks/{deckID}/cards/reorder", h.Card.Reorder)
	mux.HandleFunc("GET /api/v1/cards/{cardID}", h.Card.Get)
	mux.HandleFunc("PUT /api/v1/cards/{cardID}", h.Card.Update)
	mux.HandleFunc("DELETE /api/v1/cards/{cardID}", h.Card.Delete)
	mux.HandleFunc("POST /api/v1/cards/{cardID}/star", h.Card.Star)

	mux.HandleFunc("POST /api/v1/reviews", h.Review.Start)
	mux.HandleFunc("POST /api/v1/reviews/{sessionID}/flip", h.Review.Flip)
	mux.HandleFunc("POST /api/v1/reviews/{sessionID}/answer", h.Review.Answer)
	mux.HandleFunc("POST /api/v1/reviews/{sessionID}/shuffle", h.Review.ToggleShuffle)
	mux.HandleFunc("PUT /api/v1/reviews/{sessionID}/mode", h.Review.SetMode)
	mux.HandleFunc("POST /api/v1/reviews/{sessionID}/star", h.Review.StarCurrent)
	mux.HandleFunc("POST /api/v1/reviews/{sessionID}/retry", h.Review.RetryIncorrect)
	mux.HandleFunc("POST /api/v1/reviews/{sessionID}/restart", h.Review.Restart)
	mux.HandleFunc("DELETE /api/v1/reviews/{sessionID}", h.Review.Finish)

	return middleware.Chain(mws...)(mux)
}
