package nexperiment

import (
	"time"
)

// Config holds client settings that can be applied in one go with WithConfig.
//
// Credentials and the base URL are not part of Config: they are passed to
// Init by the host application.
type Config struct {
	// Timeout for each HTTP request. Zero leaves the transport default.
	Timeout time.Duration

	// UserAgent sent on every request
	UserAgent string
}

// DefaultConfig returns recommended default configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:   10 * time.Second,
		UserAgent: defaultUserAgent,
	}
}

// Validate validates the configuration
func (c Config) Validate() error {
	if c.Timeout < 0 {
		return &ConfigError{Field: "timeout", Message: "must not be negative"}
	}
	if c.UserAgent == "" {
		return &ConfigError{Field: "user_agent", Message: "cannot be empty"}
	}
	return nil
}
