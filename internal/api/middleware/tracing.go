package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Tracing starts an OpenTelemetry span for each HTTP request and propagates
// the context to downstream handlers and services. Health and swagger
// endpoints are not traced.
func Tracing(next http.Handler) http.Handler {
	tracer := otel.Tracer("health-tracker-api/http")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" || strings.HasPrefix(r.URL.Path, "/swagger") {
			next.ServeHTTP(w, r)
			return
		}

		ctx, span := tracer.Start(r.Context(), r.Method+" "+r.URL.Path,
			trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
			),
		)

		input := map[string]any{"method": r.Method, "path": r.URL.Path}
		if r.URL.RawQuery != "" {
			input["query"] = r.URL.RawQuery
		}
		if data, err := json.Marshal(input); err == nil {
			span.SetAttributes(attribute.String("langfuse.observation.input", string(data)))
		}

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(sw, r.WithContext(ctx))

		// The route pattern and params are only known after routing.
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				span.SetName(r.Method + " " + pattern)
			}
			if userID := rctx.URLParam("userId"); userID != "" {
				span.SetAttributes(attribute.String("app.user_id", userID))
			}
		}

		span.SetAttributes(attribute.Int("http.status_code", sw.status))
		output := map[string]any{
			"status_code": sw.status,
			"duration_ms": time.Since(start).Milliseconds(),
		}
		if data, err := json.Marshal(output); err == nil {
			span.SetAttributes(attribute.String("langfuse.observation.output", string(data)))
		}

		span.End()
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}
