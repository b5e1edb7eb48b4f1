package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/flashdeck/backend/internal/domain"
	"github.com/flashdeck/backend/internal/service/deck"
)

// maxImportBytes bounds the accepted size of an uploaded deck export.
const maxImportBytes = 10 << 20

// deckService defines the minimal interface needed by DeckHandler.
type deckService interface {
	ListDecks(ctx context.Context) ([]domain.Deck, error)
	SearchDecks(ctx context.Context, query string) ([]domain.Deck, error)
	GetDeck(ctx context.Context, input deck.DeleteDeckInput) (*domain.Deck, error)
	CreateDeck(ctx context.Context, input deck.CreateDeckInput) (*domain.Deck, error)
	UpdateDeck(ctx context.Context, input deck.UpdateDeckInput) (*domain.Deck, error)
	DeleteDeck(ctx context.Context, input deck.DeleteDeckInput) error
	BulkDeleteDecks(ctx context.Context, input deck.BulkDeleteInput) (int, error)
	ReorderDecks(ctx context.Context, input deck.ReorderInput) ([]domain.Deck, error)
	ExportDeck(ctx context.Context, deckID uuid.UUID) (*deck.ExportFile, error)
	ExportDecks(ctx context.Context, input deck.ExportSelectedInput) (*deck.ExportFile, error)
	ImportDeck(ctx context.Context, input deck.ImportInput) (*deck.ImportResult, error)
}

// DeckHandler serves deck REST endpoints.
type DeckHandler struct {
	svc deckService
	log *slog.Logger
}

// NewDeckHandler creates a DeckHandler.
func NewDeckHandler(svc deckService, logger *slog.Logger) *DeckHandler {
	return &DeckHandler{svc: svc, log: logger.With("handler", "deck")}
}

type deckRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

type deckIDsRequest struct {
	DeckIDs []uuid.UUID `json:"deckIds"`
}

type reorderRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// List handles GET /api/v1/decks. An optional ?q= filters by title and
// description.
func (h *DeckHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	var (
		decks []domain.Deck
		err   error
	)
	if query != "" {
		decks, err = h.svc.SearchDecks(r.Context(), query)
	} else {
		decks, err = h.svc.ListDecks(r.Context())
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDeckResponses(decks))
}

// Get handles GET /api/v1/decks/{deckID}.
func (h *DeckHandler) Get(w http.ResponseWriter, r *http.Request) {
	deckID, err := pathUUID(r, "deckID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	d, err := h.svc.GetDeck(r.Context(), deck.DeleteDeckInput{DeckID: deckID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDeckResponse(*d))
}

// Create handles POST /api/v1/decks.
func (h *DeckHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req deckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := h.svc.CreateDeck(r.Context(), deck.CreateDeckInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDeckResponse(*d))
}

// Update handles PUT /api/v1/decks/{deckID}.
func (h *DeckHandler) Update(w http.ResponseWriter, r *http.Request) {
	deckID, err := pathUUID(r, "deckID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req deckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := h.svc.UpdateDeck(r.Context(), deck.UpdateDeckInput{
		DeckID:      deckID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDeckResponse(*d))
}

// Delete handles DELETE /api/v1/decks/{deckID}.
func (h *DeckHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deckID, err := pathUUID(r, "deckID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteDeck(r.Context(), deck.DeleteDeckInput{DeckID: deckID}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// BulkDelete handles POST /api/v1/decks/bulk-delete.
func (h *DeckHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req deckIDsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	deleted, err := h.svc.BulkDeleteDecks(r.Context(), deck.BulkDeleteInput{DeckIDs: req.DeckIDs})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"deleted": deleted})
}

// Reorder handles POST /api/v1/decks/reorder and returns the full list in
// its new order.
func (h *DeckHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	decks, err := h.svc.ReorderDecks(r.Context(), deck.ReorderInput{From: req.From, To: req.To})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDeckResponses(decks))
}

// Export handles GET /api/v1/decks/{deckID}/export: a single-deck JSON
// download.
func (h *DeckHandler) Export(w http.ResponseWriter, r *http.Request) {
	deckID, err := pathUUID(r, "deckID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	file, err := h.svc.ExportDeck(r.Context(), deckID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeFile(w, file)
}

// ExportSelected handles POST /api/v1/decks/export: a zip of the selected
// decks.
func (h *DeckHandler) ExportSelected(w http.ResponseWriter, r *http.Request) {
	var req deckIDsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	file, err := h.svc.ExportDecks(r.Context(), deck.ExportSelectedInput{DeckIDs: req.DeckIDs})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeFile(w, file)
}

// Import handles POST /api/v1/decks/import. The body is either a multipart
// form with a "file" part or the raw JSON document itself.
func (h *DeckHandler) Import(w http.ResponseWriter, r *http.Request) {
	data, err := readImportPayload(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.ImportDeck(r.Context(), deck.ImportInput{Data: data})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"deck":          toDeckResponse(*result.Deck),
		"cardsImported": result.CardsImported,
	})
}

func readImportPayload(r *http.Request) ([]byte, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxImportBytes); err != nil {
			return nil, domain.NewValidationError("file", "Invalid JSON file.")
		}
		f, _, err := r.FormFile("file")
		if err != nil {
			return nil, domain.NewValidationError("file", "Invalid JSON file.")
		}
		defer f.Close()
		return io.ReadAll(io.LimitReader(f, maxImportBytes))
	}

	return io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
}

func writeFile(w http.ResponseWriter, file *deck.ExportFile) {
	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(file.Data) //nolint:errcheck
}
