package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/flashdeck/backend/internal/domain"
)

// notConfiguredMessage is shown when the deck tables were never provisioned.
const notConfiguredMessage = "Decks are not set up yet. Please contact the developer."

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

type errorResponse struct {
	Error  string       `json:"error"`
	Fields []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// handleError maps domain errors to HTTP responses. Validation messages are
// user-facing and pass through verbatim; everything else gets a generic body
// so internals never leak.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		resp := errorResponse{Error: vErr.Errors[0].Message}
		if len(vErr.Errors) > 1 {
			resp.Error = "validation failed"
			for _, fe := range vErr.Errors {
				resp.Fields = append(resp.Fields, fieldError{Field: fe.Field, Message: fe.Message})
			}
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	case errors.Is(err, domain.ErrNotConfigured):
		writeError(w, http.StatusServiceUnavailable, notConfiguredMessage)
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// pathUUID parses the named path segment as a UUID.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a valid UUID")
	}
	return id, nil
}

// ---------------------------------------------------------------------------
// Shared DTOs
// ---------------------------------------------------------------------------

type deckResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	OrderIndex  *int      `json:"orderIndex,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toDeckResponse(d domain.Deck) deckResponse {
	return deckResponse{
		ID:          d.ID.String(),
		Title:       d.Title,
		Description: d.Description,
		OrderIndex:  d.OrderIndex,
		CreatedAt:   d.CreatedAt,
	}
}

func toDeckResponses(decks []domain.Deck) []deckResponse {
	out := make([]deckResponse, len(decks))
	for i, d := range decks {
		out[i] = toDeckResponse(d)
	}
	return out
}

type cardResponse struct {
	ID         string    `json:"id"`
	DeckID     string    `json:"deckId"`
	FrontText  string    `json:"frontText"`
	BackText   string    `json:"backText"`
	ImageURL   *string   `json:"imageUrl,omitempty"`
	Starred    bool      `json:"starred"`
	OrderIndex *int      `json:"orderIndex,omitempty"`
	Attempts   int       `json:"attempts"`
	Correct    int       `json:"correct"`
	Incorrect  int       `json:"incorrect"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toCardResponse(c domain.Card) cardResponse {
	return cardResponse{
		ID:         c.ID.String(),
		DeckID:     c.DeckID.String(),
		FrontText:  c.FrontText,
		BackText:   c.BackText,
		ImageURL:   c.ImageURL,
		Starred:    c.Starred,
		OrderIndex: c.OrderIndex,
		Attempts:   c.Attempts,
		Correct:    c.Correct,
		Incorrect:  c.Incorrect,
		CreatedAt:  c.CreatedAt,
	}
}

func toCardResponses(cards []domain.Card) []cardResponse {
	out := make([]cardResponse, len(cards))
	for i, c := range cards {
		out[i] = toCardResponse(c)
	}
	return out
}
