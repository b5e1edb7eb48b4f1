package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/flashdeck/backend/internal/domain"
	"github.com/flashdeck/backend/internal/service/card"
)

// maxImageBytes bounds an uploaded card image.
const maxImageBytes = 5 << 20

// cardService defines the minimal interface needed by CardHandler.
type cardService interface {
	ListCards(ctx context.Context, deckID uuid.UUID) ([]domain.Card, error)
	SearchCards(ctx context.Context, input card.SearchCardsInput) ([]domain.Card, error)
	GetCard(ctx context.Context, cardID uuid.UUID) (*domain.Card, error)
	CreateCard(ctx context.Context, input card.CreateCardInput) (*domain.Card, error)
	UpdateCard(ctx context.Context, input card.UpdateCardInput) (*domain.Card, error)
	DeleteCard(ctx context.Context, cardID uuid.UUID) error
	SetStarred(ctx context.Context, cardID uuid.UUID, starred bool) (*domain.Card, error)
	ToggleStarred(ctx context.Context, cardID uuid.UUID) (*domain.Card, error)
	ReorderCards(ctx context.Context, input card.ReorderCardsInput) ([]domain.Card, error)
}

// CardHandler serves card REST endpoints.
type CardHandler struct {
	svc cardService
	log *slog.Logger
}

// NewCardHandler creates a CardHandler.
func NewCardHandler(svc cardService, logger *slog.Logger) *CardHandler {
	return &CardHandler{svc: svc, log: logger.With("handler", "card")}
}

// List handles GET /api/v1/decks/{deckID}/cards. Optional ?q= searches the
// front and back texts, ?starred=true keeps only starred cards.
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	deckID, err := pathUUID(r, "deckID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	query := r.URL.Query().Get("q")
	starred := r.URL.Query().Get("starred") == "true"

	var cards []domain.Card
	if query != "" || starred {
		cards, err = h.svc.SearchCards(r.Context(), card.SearchCardsInput{
			DeckID:      deckID,
			Query:       query,
			StarredOnly: starred,
		})
	} else {
		cards, err = h.svc.ListCards(r.Context(), deckID)
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponses(cards))
}

// Get handles GET /api/v1/cards/{cardID}.
func (h *CardHandler) Get(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathUUID(r, "cardID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.GetCard(r.Context(), cardID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(*c))
}

// Create handles POST /api/v1/decks/{deckID}/cards. The body is either JSON
// or, when an image is attached, a multipart form with front_text, back_text
// and an "image" part.
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	deckID, err := pathUUID(r, "deckID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	front, back, image, closeImage, err := readCardPayload(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	defer closeImage()

	c, err := h.svc.CreateCard(r.Context(), card.CreateCardInput{
		DeckID:    deckID,
		FrontText: front,
		BackText:  back,
		Image:     image,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCardResponse(*c))
}

// Update handles PUT /api/v1/cards/{cardID}. Same payload as Create; when no
// image part is sent the current image is kept.
func (h *CardHandler) Update(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathUUID(r, "cardID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	front, back, image, closeImage, err := readCardPayload(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	defer closeImage()

	c, err := h.svc.UpdateCard(r.Context(), card.UpdateCardInput{
		CardID:    cardID,
		FrontText: front,
		BackText:  back,
		Image:     image,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(*c))
}

// Delete handles DELETE /api/v1/cards/{cardID}.
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathUUID(r, "cardID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteCard(r.Context(), cardID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type starRequest struct {
	Starred *bool `json:"starred"`
}

// Star handles POST /api/v1/cards/{cardID}/star. With a {"starred": bool}
// body the flag is set explicitly; with an empty body it toggles.
func (h *CardHandler) Star(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathUUID(r, "cardID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req starRequest
	// empty body means toggle
	if decodeErr := json.NewDecoder(r.Body).Decode(&req); decodeErr != nil {
		req.Starred = nil
	}

	var c *domain.Card
	if req.Starred != nil {
		c, err = h.svc.SetStarred(r.Context(), cardID, *req.Starred)
	} else {
		c, err = h.svc.ToggleStarred(r.Context(), cardID)
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(*c))
}

// Reorder handles POST /api/v1/decks/{deckID}/cards/reorder and returns the
// deck's cards in their new order.
func (h *CardHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	deckID, err := pathUUID(r, "deckID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req reorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cards, err := h.svc.ReorderCards(r.Context(), card.ReorderCardsInput{
		DeckID: deckID,
		From:   req.From,
		To:     req.To,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponses(cards))
}

type cardRequest struct {
	FrontText string `json:"frontText"`
	BackText  string `json:"backText"`
}

// readCardPayload extracts the card texts and optional image from either a
// JSON body or a multipart form. closeImage is always safe to defer.
func readCardPayload(r *http.Request) (front, back string, image *card.ImageUpload, closeImage func(), err error) {
	closeImage = func() {}

	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		var req cardRequest
		if decodeErr := json.NewDecoder(r.Body).Decode(&req); decodeErr != nil {
			return "", "", nil, closeImage, domain.NewValidationError("body", "invalid request body")
		}
		return req.FrontText, req.BackText, nil, closeImage, nil
	}

	if parseErr := r.ParseMultipartForm(maxImageBytes); parseErr != nil {
		return "", "", nil, closeImage, domain.NewValidationError("body", "invalid multipart form")
	}

	front = r.FormValue("front_text")
	back = r.FormValue("back_text")

	file, header, fileErr := r.FormFile("image")
	if fileErr != nil {
		// no image part; texts alone are a valid payload
		return front, back, nil, closeImage, nil
	}

	image = &card.ImageUpload{
		Filename:    header.Filename,
		ContentType: imageContentType(header),
		Body:        file,
	}
	closeImage = func() { file.Close() } //nolint:errcheck

	return front, back, image, closeImage, nil
}

func imageContentType(header *multipart.FileHeader) string {
	if ct := header.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
