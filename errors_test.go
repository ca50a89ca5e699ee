package nexperiment

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestAuthError_Error tests AuthError formatting
func TestAuthError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AuthError
		wantText string
	}{
		{
			name:     "with status",
			err:      &AuthError{StatusCode: 401, Err: errors.New("HTTP 401")},
			wantText: "authentication failed: status 401",
		},
		{
			name:     "transport failure",
			err:      &AuthError{Err: errors.New("connection refused")},
			wantText: "authentication failed: connection refused",
		},
		{
			name:     "bare",
			err:      &AuthError{},
			wantText: "authentication failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantText, tt.err.Error())
		})
	}
}

// TestFetchError_Error tests FetchError formatting
func TestFetchError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *FetchError
		wantText string
	}{
		{
			name:     "toggle with status",
			err:      &FetchError{Operation: operationToggle, Key: "x", StatusCode: 500},
			wantText: "failed to fetch feature toggle: status 500",
		},
		{
			name:     "config transport failure",
			err:      &FetchError{Operation: operationConfig, Key: "x", Err: errors.New("timeout")},
			wantText: "failed to fetch remote config: timeout",
		},
		{
			name:     "bare",
			err:      &FetchError{Operation: operationToggle},
			wantText: "failed to fetch feature toggle",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantText, tt.err.Error())
		})
	}
}

// TestDecodeError_Error tests DecodeError formatting
func TestDecodeError_Error(t *testing.T) {
	inner := errors.New("unexpected end of JSON input")

	withKey := &DecodeError{Operation: operationConfig, Key: "limits", Err: inner}
	assert.Equal(t, `failed to decode remote config "limits": unexpected end of JSON input`, withKey.Error())

	withoutKey := &DecodeError{Operation: operationAuth, Err: inner}
	assert.Equal(t, "failed to decode auth response: unexpected end of JSON input", withoutKey.Error())
}

// TestConfigError_Error tests ConfigError formatting
func TestConfigError_Error(t *testing.T) {
	err := &ConfigError{Field: "timeout", Message: "must not be negative"}
	assert.Equal(t, "configuration error [timeout]: must not be negative", err.Error())
}

// TestErrors_Unwrap tests error unwrapping
func TestErrors_Unwrap(t *testing.T) {
	inner := errors.New("inner error")

	assert.Equal(t, inner, (&AuthError{Err: inner}).Unwrap())
	assert.Equal(t, inner, (&FetchError{Err: inner}).Unwrap())
	assert.Equal(t, inner, (&DecodeError{Err: inner}).Unwrap())

	assert.Nil(t, (&AuthError{}).Unwrap())
	assert.ErrorIs(t, &FetchError{Err: inner}, inner)
}

// TestErrorPredicates tests the Is* helpers against wrapped errors
func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantAuth   bool
		wantFetch  bool
		wantDecode bool
		wantConfig bool
	}{
		{name: "auth", err: &AuthError{}, wantAuth: true},
		{name: "wrapped fetch", err: fmt.Errorf("outer: %w", &FetchError{}), wantFetch: true},
		{name: "decode", err: &DecodeError{}, wantDecode: true},
		{name: "config", err: &ConfigError{}, wantConfig: true},
		{name: "plain", err: errors.New("plain")},
		{name: "nil", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantAuth, IsAuthError(tt.err))
			assert.Equal(t, tt.wantFetch, IsFetchError(tt.err))
			assert.Equal(t, tt.wantDecode, IsDecodeError(tt.err))
			assert.Equal(t, tt.wantConfig, IsConfigError(tt.err))
		})
	}
}

// TestErrorKind tests the metric label for each error type
func TestErrorKind(t *testing.T) {
	assert.Equal(t, "auth", errorKind(&AuthError{}))
	assert.Equal(t, "fetch", errorKind(&FetchError{}))
	assert.Equal(t, "decode", errorKind(&DecodeError{}))
	assert.Equal(t, "other", errorKind(errors.New("x")))
}
