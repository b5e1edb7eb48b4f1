package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/flashdeck/backend/internal/domain"
	"github.com/flashdeck/backend/internal/service/review"
)

// reviewService defines the minimal interface needed by ReviewHandler.
type reviewService interface {
	Start(ctx context.Context, input review.StartInput) (*review.SessionState, error)
	Flip(ctx context.Context, input review.SessionInput) (*review.SessionState, error)
	Answer(ctx context.Context, input review.AnswerInput) (*review.SessionState, error)
	ToggleShuffle(ctx context.Context, input review.SessionInput) (*review.SessionState, error)
	SetMode(ctx context.Context, input review.ModeInput) (*review.SessionState, error)
	StarCurrent(ctx context.Context, input review.SessionInput) (*review.SessionState, error)
	RetryIncorrect(ctx context.Context, input review.SessionInput) (*review.SessionState, error)
	Restart(ctx context.Context, input review.SessionInput) (*review.SessionState, error)
	Finish(ctx context.Context, input review.SessionInput) (*review.SessionState, error)
}

// ReviewHandler serves review session REST endpoints.
type ReviewHandler struct {
	svc reviewService
	log *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, log: logger.With("handler", "review")}
}

type startReviewRequest struct {
	DeckID  uuid.UUID `json:"deckId"`
	Mode    string    `json:"mode"`
	Shuffle bool      `json:"shuffle"`
}

type answerRequest struct {
	Correct  bool    `json:"correct"`
	Selected *string `json:"selected"`
}

type modeRequest struct {
	Mode string `json:"mode"`
}

type currentCardResponse struct {
	ID       string  `json:"id"`
	Front    string  `json:"front"`
	Back     *string `json:"back,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
	Starred  bool    `json:"starred"`
}

type sessionResponse struct {
	SessionID      string               `json:"sessionId"`
	DeckID         string               `json:"deckId"`
	Mode           string               `json:"mode"`
	Shuffled       bool                 `json:"shuffled"`
	Phase          string               `json:"phase"`
	Position       int                  `json:"position,omitempty"`
	Total          int                  `json:"total"`
	Face           string               `json:"face"`
	Current        *currentCardResponse `json:"current,omitempty"`
	Options        []string             `json:"options,omitempty"`
	Correct        int                  `json:"correct"`
	Incorrect      int                  `json:"incorrect"`
	Score          int                  `json:"score"`
	RetryAvailable bool                 `json:"retryAvailable"`
	Message        string               `json:"message,omitempty"`
}

// Start handles POST /api/v1/reviews.
func (h *ReviewHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	state, err := h.svc.Start(r.Context(), review.StartInput{
		DeckID:  req.DeckID,
		Mode:    domain.ReviewMode(req.Mode),
		Shuffle: req.Shuffle,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSessionResponse(state))
}

// Flip handles POST /api/v1/reviews/{sessionID}/flip.
func (h *ReviewHandler) Flip(w http.ResponseWriter, r *http.Request) {
	h.sessionOp(w, r, h.svc.Flip)
}

// Answer handles POST /api/v1/reviews/{sessionID}/answer.
func (h *ReviewHandler) Answer(w http.ResponseWriter, r *http.Request) {
	sessionID, err := pathUUID(r, "sessionID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	state, err := h.svc.Answer(r.Context(), review.AnswerInput{
		SessionID: sessionID,
		Correct:   req.Correct,
		Selected:  req.Selected,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(state))
}

// ToggleShuffle handles POST /api/v1/reviews/{sessionID}/shuffle.
func (h *ReviewHandler) ToggleShuffle(w http.ResponseWriter, r *http.Request) {
	h.sessionOp(w, r, h.svc.ToggleShuffle)
}

// SetMode handles PUT /api/v1/reviews/{sessionID}/mode.
func (h *ReviewHandler) SetMode(w http.ResponseWriter, r *http.Request) {
	sessionID, err := pathUUID(r, "sessionID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req modeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	state, err := h.svc.SetMode(r.Context(), review.ModeInput{
		SessionID: sessionID,
		Mode:      domain.ReviewMode(req.Mode),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(state))
}

// StarCurrent handles POST /api/v1/reviews/{sessionID}/star.
func (h *ReviewHandler) StarCurrent(w http.ResponseWriter, r *http.Request) {
	h.sessionOp(w, r, h.svc.StarCurrent)
}

// RetryIncorrect handles POST /api/v1/reviews/{sessionID}/retry.
func (h *ReviewHandler) RetryIncorrect(w http.ResponseWriter, r *http.Request) {
	h.sessionOp(w, r, h.svc.RetryIncorrect)
}

// Restart handles POST /api/v1/reviews/{sessionID}/restart.
func (h *ReviewHandler) Restart(w http.ResponseWriter, r *http.Request) {
	h.sessionOp(w, r, h.svc.Restart)
}

// Finish handles DELETE /api/v1/reviews/{sessionID}.
func (h *ReviewHandler) Finish(w http.ResponseWriter, r *http.Request) {
	h.sessionOp(w, r, h.svc.Finish)
}

// sessionOp runs a body-less session operation and writes the new state.
func (h *ReviewHandler) sessionOp(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, input review.SessionInput) (*review.SessionState, error),
) {
	sessionID, err := pathUUID(r, "sessionID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	state, err := op(r.Context(), review.SessionInput{SessionID: sessionID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(state))
}

func toSessionResponse(state *review.SessionState) sessionResponse {
	resp := sessionResponse{
		SessionID:      state.SessionID.String(),
		DeckID:         state.DeckID.String(),
		Mode:           state.Mode.String(),
		Shuffled:       state.Shuffled,
		Phase:          state.Phase.String(),
		Position:       state.Position,
		Total:          state.Total,
		Face:           state.Face.String(),
		Options:        state.Options,
		Correct:        state.Correct,
		Incorrect:      state.Incorrect,
		Score:          state.Score,
		RetryAvailable: state.RetryAvailable,
		Message:        state.Message,
	}

	if state.Current != nil {
		resp.Current = &currentCardResponse{
			ID:       state.Current.ID.String(),
			Front:    state.Current.Front,
			Back:     state.Current.Back,
			ImageURL: state.Current.ImageURL,
			Starred:  state.Current.Starred,
		}
	}

	return resp
}
