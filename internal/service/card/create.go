package card

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/flashdeck/backend/internal/domain"
	"github.com/flashdeck/backend/pkg/ctxutil"
)

// CreateCard adds a card to a deck. When an image is attached it is uploaded
// first; a card is never created with a dangling image reference.
func (s *Service) CreateCard(ctx context.Context, input CreateCardInput) (*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// ownership check before touching object storage
	if _, err := s.decks.GetByID(ctx, userID, input.DeckID); err != nil {
		return nil, fmt.Errorf("get deck: %w", err)
	}

	var imageURL *string
	if input.Image != nil {
		url, err := s.images.Upload(ctx, input.DeckID, input.Image.Filename, input.Image.ContentType, input.Image.Body)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		imageURL = &url
	}

	c, err := s.cards.Create(ctx, &domain.Card{
		ID:        uuid.New(),
		DeckID:    input.DeckID,
		FrontText: strings.TrimSpace(input.FrontText),
		BackText:  strings.TrimSpace(input.BackText),
		ImageURL:  imageURL,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}

	s.log.InfoContext(ctx, "card created",
		slog.String("user_id", userID.String()),
		slog.String("deck_id", input.DeckID.String()),
		slog.String("card_id", c.ID.String()),
		slog.Bool("has_image", imageURL != nil),
	)

	return c, nil
}

// UpdateCard edits a card's texts and optionally replaces its image. The
// previous image object is left in place; only the reference moves.
func (s *Service) UpdateCard(ctx context.Context, input UpdateCardInput) (*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.cards.GetByID(ctx, userID, input.CardID)
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}

	imageURL := current.ImageURL
	if input.Image != nil {
		url, upErr := s.images.Upload(ctx, current.DeckID, input.Image.Filename, input.Image.ContentType, input.Image.Body)
		if upErr != nil {
			return nil, fmt.Errorf("upload image: %w", upErr)
		}
		imageURL = &url
	}

	c, err := s.cards.Update(ctx, userID, input.CardID,
		strings.TrimSpace(input.FrontText), strings.TrimSpace(input.BackText), imageURL)
	if err != nil {
		return nil, fmt.Errorf("update card: %w", err)
	}

	s.log.InfoContext(ctx, "card updated",
		slog.String("user_id", userID.String()),
		slog.String("card_id", c.ID.String()),
	)

	return c, nil
}

// DeleteCard removes a card. Its image object, if any, stays in storage.
func (s *Service) DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if cardID == uuid.Nil {
		return domain.NewValidationError("card_id", "required")
	}

	if err := s.cards.Delete(ctx, userID, cardID); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}

	s.log.InfoContext(ctx, "card deleted",
		slog.String("user_id", userID.String()),
		slog.String("card_id", cardID.String()),
	)

	return nil
}
