package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/nexperiment/nexperiment-go"

// OTelProvider implements Provider using OpenTelemetry
type OTelProvider struct {
	tracer trace.Tracer
	meter  metric.Meter

	requests        metric.Int64Counter
	errors          metric.Int64Counter
	requestDuration metric.Float64Histogram
}

// NewOTel creates a provider on the given tracer and meter providers.
// A nil provider falls back to the otel global one.
func NewOTel(tp trace.TracerProvider, mp metric.MeterProvider) (*OTelProvider, error) {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	if mp == nil {
		mp = otel.GetMeterProvider()
	}

	provider := &OTelProvider{
		tracer: tp.Tracer(instrumentationName),
		meter:  mp.Meter(instrumentationName),
	}

	if err := provider.initMetrics(); err != nil {
		return nil, err
	}

	return provider, nil
}

func (o *OTelProvider) initMetrics() error {
	var err error

	o.requests, err = o.meter.Int64Counter(
		"nexperiment.requests",
		metric.WithDescription("Number of HTTP exchanges with the toggle service"),
	)
	if err != nil {
		return err
	}

	o.errors, err = o.meter.Int64Counter(
		"nexperiment.errors",
		metric.WithDescription("Number of failed client operations"),
	)
	if err != nil {
		return err
	}

	o.requestDuration, err = o.meter.Float64Histogram(
		"nexperiment.request.duration",
		metric.WithDescription("Duration of HTTP exchanges with the toggle service"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return err
	}

	return nil
}

// StartSpan creates a new trace span
func (o *OTelProvider) StartSpan(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span) {
	config := &SpanConfig{}
	for _, opt := range opts {
		opt(config)
	}

	ctx, span := o.tracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(convertAttributes(config.Attributes)...))

	return ctx, &OTelSpan{span: span}
}

// RecordRequest records a completed exchange
func (o *OTelProvider) RecordRequest(ctx context.Context, operation string, statusCode int, duration time.Duration) {
	o.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.Int("http.status_code", statusCode),
	))

	o.requestDuration.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(
		attribute.String("operation", operation),
	))
}

// RecordError records a failed operation
func (o *OTelProvider) RecordError(ctx context.Context, operation string, kind string) {
	o.errors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("error.kind", kind),
	))
}

// Shutdown is a no-op; the SDK providers are owned by the caller
func (o *OTelProvider) Shutdown(ctx context.Context) error {
	return nil
}

func convertAttributes(attrs []Attribute) []attribute.KeyValue {
	out := make([]attribute.KeyValue, len(attrs))
	for i, attr := range attrs {
		out[i] = convertAttribute(attr)
	}
	return out
}

func convertAttribute(attr Attribute) attribute.KeyValue {
	switch v := attr.Value.(type) {
	case string:
		return attribute.String(attr.Key, v)
	case int:
		return attribute.Int(attr.Key, v)
	case bool:
		return attribute.Bool(attr.Key, v)
	default:
		return attribute.String(attr.Key, "")
	}
}

// OTelSpan wraps an OpenTelemetry span
type OTelSpan struct {
	span trace.Span
}

// End completes the span
func (s *OTelSpan) End() {
	s.span.End()
}

// SetAttributes sets attributes on the span
func (s *OTelSpan) SetAttributes(attrs ...Attribute) {
	s.span.SetAttributes(convertAttributes(attrs)...)
}

// RecordError records err on the span and marks it failed
func (s *OTelSpan) RecordError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}
