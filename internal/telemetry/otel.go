package telemetry

import (
	"context"
	"encoding/base64"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/vitapulse/health-tracker/internal/langfuse"
)

// InitTracer wires the global OpenTelemetry tracer provider to Langfuse's
// OTLP endpoint so service spans land next to assistant traces. When
// Langfuse is not configured the default noop provider stays in place.
// The returned function flushes and shuts the provider down.
func InitTracer(ctx context.Context, cfg langfuse.Config, serviceName string) (func(context.Context) error, error) {
	if cfg.BaseURL == "" || cfg.PublicKey == "" || cfg.SecretKey == "" {
		return func(context.Context) error { return nil }, nil
	}

	auth := base64.StdEncoding.EncodeToString([]byte(cfg.PublicKey + ":" + cfg.SecretKey))
	endpoint := strings.TrimSuffix(cfg.BaseURL, "/") + "/api/public/otel/v1/traces"

	exporter, err := otlptracehttp.New(
		ctx,
		otlptracehttp.WithEndpointURL(endpoint),
		otlptracehttp.WithHeaders(map[string]string{
			"Authorization": "Basic " + auth,
		}),
	)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("langfuse.environment", cfg.Environment),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}
