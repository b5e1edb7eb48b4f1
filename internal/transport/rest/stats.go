package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/flashdeck/backend/internal/service/stats"
)

// statsService defines the minimal interface needed by StatsHandler.
type statsService interface {
	GetDeckStats(ctx context.Context, deckID uuid.UUID) (*stats.DeckStatsResult, error)
}

// StatsHandler serves deck statistics REST endpoints.
type StatsHandler struct {
	svc statsService
	log *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc statsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, log: logger.With("handler", "stats")}
}

type hardCardResponse struct {
	Card     cardResponse `json:"card"`
	Accuracy float64      `json:"accuracy"`
}

type deckStatsResponse struct {
	Deck         deckResponse       `json:"deck"`
	TotalCards   int                `json:"totalCards"`
	StarredCards int                `json:"starredCards"`
	Attempts     int                `json:"attempts"`
	Correct      int                `json:"correct"`
	Incorrect    int                `json:"incorrect"`
	Accuracy     int                `json:"accuracy"`
	Hardest      []hardCardResponse `json:"hardest"`
}

// Get handles GET /api/v1/decks/{deckID}/stats.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	deckID, err := pathUUID(r, "deckID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.GetDeckStats(r.Context(), deckID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := deckStatsResponse{
		Deck:         toDeckResponse(result.Deck),
		TotalCards:   result.Stats.TotalCards,
		StarredCards: result.Stats.StarredCards,
		Attempts:     result.Stats.Attempts,
		Correct:      result.Stats.Correct,
		Incorrect:    result.Stats.Incorrect,
		Accuracy:     result.Stats.Accuracy,
		Hardest:      make([]hardCardResponse, 0, len(result.Stats.Hardest)),
	}
	for _, hc := range result.Stats.Hardest {
		resp.Hardest = append(resp.Hardest, hardCardResponse{
			Card:     toCardResponse(hc.Card),
			Accuracy: hc.Accuracy,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}
