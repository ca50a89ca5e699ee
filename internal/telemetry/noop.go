package telemetry

import (
	"context"
	"time"
)

// NoOpProvider is the default provider when telemetry is not configured
type NoOpProvider struct{}

// NewNoOp creates a new no-op telemetry provider
func NewNoOp() *NoOpProvider {
	return &NoOpProvider{}
}

func (n *NoOpProvider) StartSpan(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span) {
	return ctx, noOpSpan{}
}

func (n *NoOpProvider) RecordRequest(ctx context.Context, operation string, statusCode int, duration time.Duration) {
}

func (n *NoOpProvider) RecordError(ctx context.Context, operation string, kind string) {}

func (n *NoOpProvider) Shutdown(ctx context.Context) error {
	return nil
}

type noOpSpan struct{}

func (noOpSpan) End()                             {}
func (noOpSpan) SetAttributes(attrs ...Attribute) {}
func (noOpSpan) RecordError(err error)            {}
