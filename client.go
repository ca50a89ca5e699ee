// Package nexperiment is a client for the nexperiment feature-toggle and
// remote-config service.
//
// A Client authenticates once with an API key/secret pair, then fetches
// boolean toggles and typed remote-config values. Every fetch carries the
// client's evaluation context, which the server uses to pick the rule that
// applies.
package nexperiment

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/nexperiment/nexperiment-go/internal/logger"
	"github.com/nexperiment/nexperiment-go/internal/session"
	"github.com/nexperiment/nexperiment-go/internal/telemetry"
	"github.com/nexperiment/nexperiment-go/internal/transport"
)

// Version of the client, reported in the default User-Agent.
const Version = "0.1.0"

const defaultUserAgent = "nexperiment-go/" + Version

// operation names used in error messages
const (
	operationAuth   = "auth"
	operationToggle = "feature toggle"
	operationConfig = "remote config"
)

// Client is the main entry point.
//
// A Client is safe for concurrent use. Session state (base URL, token and
// evaluation context) is guarded by a lock, and each fetch works on a
// snapshot of it. A SetContext that races with an in-flight fetch only
// affects later fetches.
type Client struct {
	transport transport.Client
	session   *session.Session
	telemetry telemetry.Provider
	log       *logger.Logger
}

// New creates a new client with the given options.
// The client holds no token until Init succeeds.
//
// Example:
//
//	client, err := nexperiment.New(
//	    nexperiment.WithTimeout(5 * time.Second),
//	)
//	if err != nil {
//	    return err
//	}
//	if err := client.Init(ctx, "https://api.example.com", apiKey, apiSecret); err != nil {
//	    return err
//	}
func New(opts ...Option) (*Client, error) {
	cfg := defaultClientConfig()

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	tel, err := cfg.telemetryProvider()
	if err != nil {
		return nil, err
	}

	transportCfg := cfg.toTransportConfig()
	transportCfg.Telemetry = tel

	return &Client{
		transport: transport.NewHTTPClient(transportCfg),
		session:   session.New(),
		telemetry: tel,
		log:       cfg.logger,
	}, nil
}

// Init authenticates against baseURL and stores the returned bearer token.
//
// On success the base URL and token replace any previous values. On
// failure the session is left unchanged and an *AuthError is returned
// (or a *DecodeError if the server answered 2xx with a malformed body).
func (c *Client) Init(ctx context.Context, baseURL, apiKey, apiSecret string) error {
	if baseURL == "" {
		return &ConfigError{Field: "base_url", Message: "cannot be empty"}
	}
	baseURL = strings.TrimRight(baseURL, "/")

	ctx, span := c.telemetry.StartSpan(ctx, "nexperiment.auth",
		telemetry.WithAttributes(telemetry.String("server.url", baseURL)))
	defer span.End()

	resp, err := c.transport.Authenticate(ctx, baseURL, transport.Credentials{
		APIKey:    apiKey,
		APISecret: apiSecret,
	})
	if err != nil {
		if transport.IsResponseError(err) {
			return c.fail(ctx, span, telemetry.OperationAuth, "", &DecodeError{Operation: operationAuth, Err: err})
		}
		return c.fail(ctx, span, telemetry.OperationAuth, "", &AuthError{StatusCode: statusCode(err), Err: err})
	}

	c.session.Authenticated(baseURL, resp.Token)
	c.log.Debug().
		Str("base_url", baseURL).
		Bool("has_token", resp.Token != "").
		Msg("authenticated")

	return nil
}

// SetContext replaces the evaluation context wholesale; keys are not
// merged with the previous context. The map is copied, so mutating it
// afterwards has no effect on the client.
func (c *Client) SetContext(evalCtx EvaluationContext) {
	c.session.SetContext(evalCtx)
}

// Context returns a copy of the current evaluation context.
func (c *Client) Context() EvaluationContext {
	return c.session.Snapshot().Context
}

// BaseURL returns the base URL stored by the last successful Init.
func (c *Client) BaseURL() string {
	return c.session.Snapshot().BaseURL
}

// Token returns the bearer token stored by the last successful Init.
func (c *Client) Token() string {
	return c.session.Snapshot().Token
}

// GetToggle fetches the boolean toggle identified by key.
//
// Missing or mistyped fields in a successful response fall back to ""
// and false. A non-2xx response or a transport failure returns a
// *FetchError; a body that is not a JSON object returns a *DecodeError.
//
// The token is not checked client-side: calling GetToggle before Init
// sends an empty bearer token and surfaces the server's rejection.
func (c *Client) GetToggle(ctx context.Context, key string) (Toggle, error) {
	state := c.session.Snapshot()

	ctx, span := c.telemetry.StartSpan(ctx, "nexperiment.toggle",
		telemetry.WithAttributes(telemetry.String("toggle.key", key)))
	defer span.End()

	resp, err := c.transport.FeatureToggle(ctx, targetOf(state), key, state.Context)
	if err != nil {
		return Toggle{}, c.fail(ctx, span, telemetry.OperationToggle, key, fetchError(operationToggle, key, err))
	}

	span.SetAttributes(
		telemetry.Bool("toggle.value", resp.Value),
		telemetry.String("toggle.applied_rule_id", resp.AppliedRuleID),
	)

	return Toggle{
		ObjectID:      resp.ObjectID,
		AppliedRuleID: resp.AppliedRuleID,
		Value:         resp.Value,
	}, nil
}

// GetConfig fetches the remote config identified by key and decodes its
// value into T with encoding/json.
//
// The server embeds the value as a JSON document inside a string field;
// that string is what gets decoded. A missing value decodes from "" and
// fails for most T.
//
// Example:
//
//	limits, err := nexperiment.GetConfig[[]int](ctx, client, "limits")
func GetConfig[T any](ctx context.Context, c *Client, key string) (RemoteConfig[T], error) {
	return GetConfigFunc(ctx, c, key, decodeJSON[T])
}

// GetConfigFunc is like GetConfig but decodes the raw value with decode.
func GetConfigFunc[T any](ctx context.Context, c *Client, key string, decode func(raw string) (T, error)) (RemoteConfig[T], error) {
	if decode == nil {
		return RemoteConfig[T]{}, &ConfigError{Field: "decode", Message: "cannot be nil"}
	}

	state := c.session.Snapshot()

	ctx, span := c.telemetry.StartSpan(ctx, "nexperiment.config",
		telemetry.WithAttributes(telemetry.String("config.key", key)))
	defer span.End()

	resp, err := c.transport.RemoteConfig(ctx, targetOf(state), key, state.Context)
	if err != nil {
		return RemoteConfig[T]{}, c.fail(ctx, span, telemetry.OperationConfig, key, fetchError(operationConfig, key, err))
	}

	value, err := decode(resp.Value)
	if err != nil {
		return RemoteConfig[T]{}, c.fail(ctx, span, telemetry.OperationConfig, key,
			&DecodeError{Operation: operationConfig, Key: key, Err: err})
	}

	span.SetAttributes(telemetry.String("config.applied_rule_id", resp.AppliedRuleID))

	return RemoteConfig[T]{
		ObjectID:      resp.ObjectID,
		AppliedRuleID: resp.AppliedRuleID,
		Value:         value,
	}, nil
}

// Internal helpers

func decodeJSON[T any](raw string) (T, error) {
	var v T
	err := json.Unmarshal([]byte(raw), &v)
	return v, err
}

// fail records err on the span, metrics and log, then returns it
func (c *Client) fail(ctx context.Context, span telemetry.Span, operation, key string, err error) error {
	span.RecordError(err)
	c.telemetry.RecordError(ctx, operation, errorKind(err))
	c.log.Warn().
		Err(err).
		Str("operation", operation).
		Str("key", key).
		Msg("operation failed")
	return err
}

func fetchError(operation, key string, err error) error {
	if transport.IsResponseError(err) {
		return &DecodeError{Operation: operation, Key: key, Err: err}
	}
	return &FetchError{Operation: operation, Key: key, StatusCode: statusCode(err), Err: err}
}

func statusCode(err error) int {
	var httpErr *transport.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}

func errorKind(err error) string {
	switch {
	case IsAuthError(err):
		return "auth"
	case IsDecodeError(err):
		return "decode"
	case IsFetchError(err):
		return "fetch"
	default:
		return "other"
	}
}

func targetOf(state session.State) transport.Target {
	return transport.Target{BaseURL: state.BaseURL, Token: state.Token}
}
