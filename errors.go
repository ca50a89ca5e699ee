package nexperiment

import (
	"errors"
	"fmt"
)

// Error types that may be returned by client operations.
// None of them are retried by the client.

// AuthError indicates that Init could not obtain a token.
type AuthError struct {
	// StatusCode is the HTTP status of a non-2xx response, or 0 when the
	// request never got a response
	StatusCode int
	Err        error
}

func (e *AuthError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("authentication failed: status %d", e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("authentication failed: %v", e.Err)
	default:
		return "authentication failed"
	}
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// FetchError indicates a non-2xx response or a transport failure while
// fetching a toggle or remote config.
type FetchError struct {
	// Operation is "feature toggle" or "remote config"
	Operation string
	Key       string
	// StatusCode is 0 for transport failures
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	msg := "failed to fetch " + e.Operation
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: status %d", msg, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", msg, e.Err)
	default:
		return msg
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// DecodeError indicates a success response that could not be decoded:
// the body was not a JSON object, or a config value did not decode into
// the requested type.
type DecodeError struct {
	Operation string
	Key       string
	Err       error
}

func (e *DecodeError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("failed to decode %s response: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("failed to decode %s %q: %v", e.Operation, e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ConfigError indicates invalid configuration.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error [%s]: %s", e.Field, e.Message)
}

// IsAuthError reports whether err is or wraps an *AuthError.
func IsAuthError(err error) bool {
	var target *AuthError
	return errors.As(err, &target)
}

// IsFetchError reports whether err is or wraps a *FetchError.
func IsFetchError(err error) bool {
	var target *FetchError
	return errors.As(err, &target)
}

// IsDecodeError reports whether err is or wraps a *DecodeError.
func IsDecodeError(err error) bool {
	var target *DecodeError
	return errors.As(err, &target)
}

// IsConfigError reports whether err is or wraps a *ConfigError.
func IsConfigError(err error) bool {
	var target *ConfigError
	return errors.As(err, &target)
}
