package transport

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/nexperiment/nexperiment-go/internal/logger"
	"github.com/nexperiment/nexperiment-go/internal/telemetry"
)

const (
	authPath          = "/v1/client/auth"
	featureTogglePath = "/v1/client/feature-toggle/{key}"
	remoteConfigPath  = "/v1/client/remote-config/{key}"

	// HeaderRequestID carries a per-request uuid for correlation with server logs
	HeaderRequestID = "X-Request-Id"

	evaluationContentType = "application/json; charset=UTF-8"
)

// Client is the wire-level API of the toggle service
type Client interface {
	// Authenticate exchanges credentials for a bearer token
	Authenticate(ctx context.Context, baseURL string, creds Credentials) (*AuthResponse, error)

	// FeatureToggle evaluates a boolean toggle for the given context
	FeatureToggle(ctx context.Context, target Target, key string, evalCtx map[string]any) (*ToggleResponse, error)

	// RemoteConfig evaluates a remote-config value for the given context
	RemoteConfig(ctx context.Context, target Target, key string, evalCtx map[string]any) (*ConfigResponse, error)
}

// Config configures the HTTP transport
type Config struct {
	// Timeout for each request; zero leaves the http.Client default
	Timeout time.Duration

	// UserAgent sent on every request
	UserAgent string

	// HTTPClient replaces the default *http.Client when set
	HTTPClient *http.Client

	// Logger receives request-level debug output
	Logger *logger.Logger

	// Telemetry records one request metric per exchange
	Telemetry telemetry.Provider
}

// HTTPClient implements Client on top of resty
type HTTPClient struct {
	client    *resty.Client
	log       *logger.Logger
	telemetry telemetry.Provider
}

// NewHTTPClient creates a transport. Retries stay disabled: every
// operation is a single request/response exchange.
func NewHTTPClient(config Config) *HTTPClient {
	log := config.Logger
	if log == nil {
		log = logger.Nop()
	}
	tel := config.Telemetry
	if tel == nil {
		tel = telemetry.NewNoOp()
	}

	var cli *resty.Client
	if config.HTTPClient != nil {
		cli = resty.NewWithClient(config.HTTPClient)
	} else {
		cli = resty.New()
	}

	cli.SetRetryCount(0).
		SetLogger(log.Resty())

	if config.Timeout > 0 {
		cli.SetTimeout(config.Timeout)
	}
	if config.UserAgent != "" {
		cli.SetHeader("User-Agent", config.UserAgent)
	}

	return &HTTPClient{client: cli, log: log, telemetry: tel}
}

// Authenticate posts an empty JSON object with the credential headers
func (c *HTTPClient) Authenticate(ctx context.Context, baseURL string, creds Credentials) (*AuthResponse, error) {
	headers := map[string]string{
		"Content-Type": "application/json",
		"x-api-key":    creds.APIKey,
		"x-api-secret": creds.APISecret,
	}

	body, err := c.doRequest(ctx, telemetry.OperationAuth, endpoint(baseURL, authPath), nil, headers, map[string]any{})
	if err != nil {
		return nil, err
	}

	obj, err := parseObject(body)
	if err != nil {
		return nil, err
	}

	resp := authFromObject(obj)
	return &resp, nil
}

// FeatureToggle evaluates a toggle
func (c *HTTPClient) FeatureToggle(ctx context.Context, target Target, key string, evalCtx map[string]any) (*ToggleResponse, error) {
	body, err := c.evaluate(ctx, telemetry.OperationToggle, target, featureTogglePath, key, evalCtx)
	if err != nil {
		return nil, err
	}

	obj, err := parseObject(body)
	if err != nil {
		return nil, err
	}

	resp := toggleFromObject(obj)
	return &resp, nil
}

// RemoteConfig evaluates a config value. The value is returned undecoded.
func (c *HTTPClient) RemoteConfig(ctx context.Context, target Target, key string, evalCtx map[string]any) (*ConfigResponse, error) {
	body, err := c.evaluate(ctx, telemetry.OperationConfig, target, remoteConfigPath, key, evalCtx)
	if err != nil {
		return nil, err
	}

	obj, err := parseObject(body)
	if err != nil {
		return nil, err
	}

	resp := configFromObject(obj)
	return &resp, nil
}

func (c *HTTPClient) evaluate(ctx context.Context, operation string, target Target, path, key string, evalCtx map[string]any) ([]byte, error) {
	if evalCtx == nil {
		evalCtx = map[string]any{}
	}

	headers := map[string]string{
		"Content-Type":  evaluationContentType,
		"Authorization": "bearer " + target.Token,
	}

	pathParams := map[string]string{"key": key}

	return c.doRequest(ctx, operation, endpoint(target.BaseURL, path), pathParams, headers, evaluationRequest{Context: evalCtx})
}

// doRequest performs a single POST and returns the body of a 2xx response
func (c *HTTPClient) doRequest(ctx context.Context, operation, url string, pathParams, headers map[string]string, body any) ([]byte, error) {
	requestID := uuid.NewString()
	start := time.Now()

	// path params are escaped by resty
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParams(pathParams).
		SetHeaders(headers).
		SetHeader(HeaderRequestID, requestID).
		SetBody(body).
		Post(url)
	duration := time.Since(start)

	if err != nil {
		c.telemetry.RecordRequest(ctx, operation, 0, duration)
		c.log.Debug().
			Str("operation", operation).
			Str("request_id", requestID).
			Str("url", url).
			Err(err).
			Msg("request failed")
		return nil, fmt.Errorf("request failed: %w", err)
	}

	c.telemetry.RecordRequest(ctx, operation, resp.StatusCode(), duration)
	c.log.Debug().
		Str("operation", operation).
		Str("request_id", requestID).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", duration).
		Msg("request completed")

	if !resp.IsSuccess() {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode(),
			Message:    strings.TrimSpace(string(resp.Body())),
		}
	}

	return resp.Body(), nil
}

func endpoint(baseURL, path string) string {
	return strings.TrimRight(baseURL, "/") + path
}
