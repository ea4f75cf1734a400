package controller

import (
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "estate/pkg/controller"

// WithTracing starts a server span for every request. Spans are recorded
// only when a tracer provider has been installed with otel.SetTracerProvider.
func WithTracing(next http.Handler) http.Handler {
	tracer := otel.Tracer(tracerName)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), r.Method+" "+r.URL.Path,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.request.method", r.Method),
				attribute.String("url.path", r.URL.Path),
				attribute.String("client.address", GetClientIP(r)),
			))
		defer span.End()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
