// Package telemetry records spans and request metrics for client operations.
package telemetry

import (
	"context"
	"time"
)

// Operation names used for spans and metric attributes
const (
	OperationAuth   = "auth"
	OperationToggle = "toggle"
	OperationConfig = "config"
)

// Provider defines the interface for telemetry providers
type Provider interface {
	// StartSpan opens a span around one client operation
	StartSpan(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)

	// RecordRequest records a completed HTTP exchange; statusCode is 0
	// when no response was received
	RecordRequest(ctx context.Context, operation string, statusCode int, duration time.Duration)

	// RecordError records a failed operation by error kind
	RecordError(ctx context.Context, operation string, kind string)

	// Shutdown releases provider resources
	Shutdown(ctx context.Context) error
}

// Span represents a trace span
type Span interface {
	End()
	SetAttributes(attrs ...Attribute)
	RecordError(err error)
}

// SpanOption configures span creation
type SpanOption func(*SpanConfig)

// SpanConfig holds span configuration
type SpanConfig struct {
	Attributes []Attribute
}

// Attribute represents a key-value attribute
type Attribute struct {
	Key   string
	Value interface{}
}

// WithAttributes adds attributes to a span
func WithAttributes(attrs ...Attribute) SpanOption {
	return func(c *SpanConfig) {
		c.Attributes = append(c.Attributes, attrs...)
	}
}

// String creates a string attribute
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int creates an int attribute
func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

// Bool creates a bool attribute
func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}
