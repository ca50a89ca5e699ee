package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config represents the CLI configuration
type Config struct {
	BaseURL   string        `env:"NEXPERIMENT_BASE_URL"`
	APIKey    string        `env:"NEXPERIMENT_API_KEY"`
	APISecret string        `env:"NEXPERIMENT_API_SECRET"`
	Timeout   time.Duration `env:"NEXPERIMENT_TIMEOUT" envDefault:"10s"`
	LogLevel  string        `env:"NEXPERIMENT_LOG_LEVEL" envDefault:"info"`
}

// Overrides are values given on the command line. Empty fields keep the
// environment value.
type Overrides struct {
	BaseURL   string
	APIKey    string
	APISecret string
	Verbose   bool
}

// LoadConfig reads the environment and applies the command-line overrides
func LoadConfig(o Overrides) (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	if o.BaseURL != "" {
		cfg.BaseURL = o.BaseURL
	}
	if o.APIKey != "" {
		cfg.APIKey = o.APIKey
	}
	if o.APISecret != "" {
		cfg.APISecret = o.APISecret
	}
	if o.Verbose {
		cfg.LogLevel = zerolog.LevelDebugValue
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that everything needed to call the service is set
func (c *Config) Validate() error {
	var errs []error
	if c.BaseURL == "" {
		errs = append(errs, errors.New("base URL not set (use --base-url or NEXPERIMENT_BASE_URL)"))
	}
	if c.APIKey == "" {
		errs = append(errs, errors.New("API key not set (use --api-key or NEXPERIMENT_API_KEY)"))
	}
	if c.APISecret == "" {
		errs = append(errs, errors.New("API secret not set (use --api-secret or NEXPERIMENT_API_SECRET)"))
	}
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout must not be negative, got %s", c.Timeout))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level parses LogLevel
func (c *Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
