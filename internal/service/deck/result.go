package deck

import (
	"time"

	"github.com/google/uuid"

	"github.com/flashdeck/backend/internal/domain"
)

// ExportFile is a downloadable artifact produced by the export operations.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ImportResult describes a completed deck import.
type ImportResult struct {
	Deck          *domain.Deck
	CardsImported int
}

// ---------------------------------------------------------------------------
// Export wire format
// ---------------------------------------------------------------------------

// exportCard is the card shape shared by both export formats.
type exportCard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// exportSingle is the single-deck export: a flat document the import
// operation accepts back unchanged.
type exportSingle struct {
	Title       string       `json:"title"`
	Description *string      `json:"description,omitempty"`
	Cards       []exportCard `json:"cards"`
}

// exportDeckMeta carries deck identity inside a multi-deck bundle.
type exportDeckMeta struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// exportBundle is one entry of the multi-deck zip export.
type exportBundle struct {
	Deck  exportDeckMeta `json:"deck"`
	Cards []exportCard   `json:"cards"`
}
