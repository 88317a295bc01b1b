// Package telemetry exports counter actions as OpenTelemetry spans.
// Export is off unless OTEL_EXPORTER_OTLP_ENDPOINT is set.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const tracerName = "bjcounter/ui"

// Outcome describes what happened to a triggered action.
type Outcome string

const (
	OutcomeApplied   Outcome = "applied"
	OutcomeDebounced Outcome = "debounced"
	OutcomeEmpty     Outcome = "empty"
	OutcomeCancelled Outcome = "cancelled"
	OutcomeFailed    Outcome = "failed"
)

// ActionEvent is one triggered action and the counter state after handling it.
type ActionEvent struct {
	Action  string // logical action name, e.g. "increment"
	Label   string // history label when the action produced or removed an entry
	Total   int
	Presses int
	Outcome Outcome
	Err     error
}

// Observer receives action events. *Recorder implements it.
type Observer interface {
	RecordAction(ctx context.Context, ev ActionEvent)
}

// Recorder turns action events into spans.
type Recorder struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

var _ Observer = (*Recorder)(nil)

// NewOTLPRecorder creates a recorder exporting over OTLP/HTTP if
// OTEL_EXPORTER_OTLP_ENDPOINT is set. Returns nil when not configured.
func NewOTLPRecorder(ctx context.Context) (*Recorder, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "bjcounter"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return NewRecorder(sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)), nil
}

// NewRecorder wraps an existing tracer provider.
func NewRecorder(tp *sdktrace.TracerProvider) *Recorder {
	return &Recorder{
		provider: tp,
		tracer:   tp.Tracer(tracerName),
	}
}

// RecordAction emits a single span for ev. Safe on a nil Recorder.
func (r *Recorder) RecordAction(ctx context.Context, ev ActionEvent) {
	if r == nil {
		return
	}
	_, span := r.tracer.Start(ctx, "bjcounter."+ev.Action)
	span.SetAttributes(
		attribute.String("bjcounter.action", ev.Action),
		attribute.String("bjcounter.label", ev.Label),
		attribute.Int("bjcounter.total", ev.Total),
		attribute.Int("bjcounter.presses", ev.Presses),
		attribute.String("bjcounter.outcome", string(ev.Outcome)),
	)
	if ev.Err != nil {
		span.RecordError(ev.Err)
	}
	span.End()
}

// Shutdown flushes pending spans and stops the provider.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r == nil {
		return nil
	}
	return r.provider.Shutdown(ctx)
}
