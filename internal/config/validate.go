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

	if c.Enrichment.Enabled && c.Enrichment.Timeout <= 0 {
		return fmt.Errorf("enrichment.timeout must be > 0 (got %v)", c.Enrichment.Timeout)
	}
	if c.Enrichment.MaxAttempts < 1 {
		return fmt.Errorf("enrichment.max_attempts must be >= 1 (got %d)", c.Enrichment.MaxAttempts)
	}

	if c.Lifecycle.MaxTitleLength <= 0 {
		return fmt.Errorf("lifecycle.max_title_length must be > 0 (got %d)", c.Lifecycle.MaxTitleLength)
	}
	if c.Lifecycle.MaxMessageLength <= 0 {
		return fmt.Errorf("lifecycle.max_message_length must be > 0 (got %d)", c.Lifecycle.MaxMessageLength)
	}

	return nil
}
