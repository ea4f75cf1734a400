package controller

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"estate/pkg/logger"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// CtxKey namespaces the values this package puts on request contexts.
type CtxKey string

// RequestIDKey holds the request ID set by WithLogger.
const RequestIDKey CtxKey = "RequestID"

const requestIDHeader = "X-Request-Id"

// RequestID returns the ID assigned by WithLogger, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)

	return id
}

// GetClientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then
// the peer address.
func GetClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}
	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}

// accessLevel maps a response status to the level of its access log line.
func accessLevel(status int) zapcore.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zapcore.ErrorLevel
	case status >= http.StatusBadRequest:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}

// WithLogger gives each request an ID (taken from X-Request-Id when the
// client sent one) and a logger carrying it, echoes the ID back, and writes
// one access log line once the handler returns.
func WithLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
		fields := []zap.Field{zap.String(string(RequestIDKey), requestID)}
		if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
			fields = append(fields, zap.String("trace_id", sc.TraceID().String()))
		}
		ctx = logger.WithFields(ctx, fields...)
		r = r.WithContext(ctx)

		start := time.Now()
		rec := newRecorder(w)
		next.ServeHTTP(rec, r)

		logger.Get(ctx).Log(accessLevel(rec.status), "Access log",
			zap.String("method", r.Method),
			zap.String("url", r.URL.String()),
			zap.String("route", routePattern(r)),
			zap.Int("status_code", rec.status),
			zap.Int("bytes", rec.bytes),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", GetClientIP(r)),
			zap.String("user_agent", r.UserAgent()),
			zap.String("referer", r.Referer()),
		)
	})
}
