package deck

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/flashdeck/backend/internal/domain"
	"github.com/flashdeck/backend/pkg/ctxutil"
)

// ExportDeck produces a single-deck JSON download named <slug>_deck.json.
// The document round-trips through ImportDeck unchanged.
func (s *Service) ExportDeck(ctx context.Context, deckID uuid.UUID) (*ExportFile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if deckID == uuid.Nil {
		return nil, domain.NewValidationError("deck_id", "required")
	}

	deck, err := s.decks.GetByID(ctx, userID, deckID)
	if err != nil {
		return nil, fmt.Errorf("get deck: %w", err)
	}

	cards, err := s.cards.ListByDeck(ctx, userID, deckID)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}

	doc := exportSingle{
		Title:       deck.Title,
		Description: deck.Description,
		Cards:       toExportCards(cards),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal deck export: %w", err)
	}

	s.log.InfoContext(ctx, "deck exported",
		slog.String("user_id", userID.String()),
		slog.String("deck_id", deckID.String()),
		slog.Int("cards", len(cards)),
	)

	return &ExportFile{
		Filename:    slugify(deck.Title) + "_deck.json",
		ContentType: "application/json",
		Data:        data,
	}, nil
}

// ExportDecks produces a zip archive named decks_export.zip holding one
// <slug>_<id>.json bundle per selected deck. Selected ids the user does not
// own yield domain.ErrNotFound.
func (s *Service) ExportDecks(ctx context.Context, input ExportSelectedInput) (*ExportFile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if len(input.DeckIDs) > s.cfg.ExportMaxDecks {
		return nil, domain.NewValidationError("deck_ids",
			fmt.Sprintf("max %d decks per export", s.cfg.ExportMaxDecks))
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, deckID := range input.DeckIDs {
		deck, err := s.decks.GetByID(ctx, userID, deckID)
		if err != nil {
			return nil, fmt.Errorf("get deck %s: %w", deckID, err)
		}

		cards, err := s.cards.ListByDeck(ctx, userID, deckID)
		if err != nil {
			return nil, fmt.Errorf("list cards for deck %s: %w", deckID, err)
		}

		bundle := exportBundle{
			Deck: exportDeckMeta{
				ID:          deck.ID,
				Title:       deck.Title,
				Description: deck.Description,
				CreatedAt:   deck.CreatedAt,
			},
			Cards: toExportCards(cards),
		}

		data, err := json.MarshalIndent(bundle, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal deck %s: %w", deckID, err)
		}

		name := fmt.Sprintf("%s_%s.json", slugify(deck.Title), deck.ID)
		w, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("add %s to archive: %w", name, err)
		}
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("write %s to archive: %w", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}

	s.log.InfoContext(ctx, "decks exported",
		slog.String("user_id", userID.String()),
		slog.Int("decks", len(input.DeckIDs)),
	)

	return &ExportFile{
		Filename:    "decks_export.zip",
		ContentType: "application/zip",
		Data:        buf.Bytes(),
	}, nil
}

func toExportCards(cards []domain.Card) []exportCard {
	out := make([]exportCard, len(cards))
	for i, c := range cards {
		out[i] = exportCard{Front: c.FrontText, Back: c.BackText}
	}
	return out
}
