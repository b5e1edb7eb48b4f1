package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be positive (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.RefreshTokenTTL <= c.Auth.AccessTokenTTL {
		return fmt.Errorf("auth.refresh_token_ttl (%v) must exceed access_token_ttl (%v)",
			c.Auth.RefreshTokenTTL, c.Auth.AccessTokenTTL)
	}

	if c.Storage.Bucket == "" {
		return fmt.Errorf("storage.bucket must not be empty")
	}

	if err := c.Decks.validate(); err != nil {
		return fmt.Errorf("decks: %w", err)
	}
	if err := c.Review.validate(); err != nil {
		return fmt.Errorf("review: %w", err)
	}

	return nil
}

func (d *DecksConfig) validate() error {
	if d.ImportMaxCards <= 0 {
		return fmt.Errorf("import_max_cards must be > 0 (got %d)", d.ImportMaxCards)
	}
	if d.ExportMaxDecks <= 0 {
		return fmt.Errorf("export_max_decks must be > 0 (got %d)", d.ExportMaxDecks)
	}
	return nil
}

func (r *ReviewConfig) validate() error {
	if r.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be positive (got %v)", r.SessionTTL)
	}
	if r.ChoiceOptions < 2 {
		return fmt.Errorf("choice_options must be at least 2 (got %d)", r.ChoiceOptions)
	}
	return nil
}
