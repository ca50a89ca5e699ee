package nexperiment

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/nexperiment/nexperiment-go/internal/logger"
	"github.com/nexperiment/nexperiment-go/internal/telemetry"
	"github.com/nexperiment/nexperiment-go/internal/transport"
)

// Option configures a Client.
type Option func(*clientConfig) error

// clientConfig holds internal configuration.
type clientConfig struct {
	timeout    time.Duration
	userAgent  string
	httpClient *http.Client

	logger *logger.Logger

	otelEnabled    bool
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

func defaultClientConfig() *clientConfig {
	return &clientConfig{
		userAgent: defaultUserAgent,
		logger:    logger.Nop(),
	}
}

// toTransportConfig converts clientConfig to transport configuration.
func (c *clientConfig) toTransportConfig() transport.Config {
	return transport.Config{
		Timeout:    c.timeout,
		UserAgent:  c.userAgent,
		HTTPClient: c.httpClient,
		Logger:     c.logger,
	}
}

// telemetryProvider builds the provider selected by the options.
func (c *clientConfig) telemetryProvider() (telemetry.Provider, error) {
	if !c.otelEnabled {
		return telemetry.NewNoOp(), nil
	}
	return telemetry.NewOTel(c.tracerProvider, c.meterProvider)
}

// WithTimeout sets the HTTP timeout for each request.
//
// Example: nexperiment.WithTimeout(5 * time.Second)
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) error {
		if timeout < 0 {
			return &ConfigError{Field: "timeout", Message: "must not be negative"}
		}
		c.timeout = timeout
		return nil
	}
}

// WithHTTPClient sets the *http.Client used for all requests.
// Use this to control TLS, proxies or connection pooling.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) error {
		if client == nil {
			return &ConfigError{Field: "http_client", Message: "cannot be nil"}
		}
		c.httpClient = client
		return nil
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *clientConfig) error {
		if userAgent == "" {
			return &ConfigError{Field: "user_agent", Message: "cannot be empty"}
		}
		c.userAgent = userAgent
		return nil
	}
}

// WithLogger sets the logger. By default the client does not log.
//
// Example:
//
//	client, err := nexperiment.New(
//	    nexperiment.WithLogger(zerolog.New(os.Stderr).Level(zerolog.DebugLevel)),
//	)
func WithLogger(l zerolog.Logger) Option {
	return func(c *clientConfig) error {
		c.logger = logger.New(l)
		return nil
	}
}

// WithOpenTelemetry enables spans and metrics for every operation.
// A nil provider falls back to the otel global provider.
func WithOpenTelemetry(tp trace.TracerProvider, mp metric.MeterProvider) Option {
	return func(c *clientConfig) error {
		c.otelEnabled = true
		c.tracerProvider = tp
		c.meterProvider = mp
		return nil
	}
}

// WithConfig applies a full Config struct.
// This is an alternative to using individual options.
func WithConfig(cfg Config) Option {
	return func(c *clientConfig) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		c.timeout = cfg.Timeout
		c.userAgent = cfg.UserAgent
		return nil
	}
}
