package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"estate/pkg/controller"
	"estate/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{"forwarded chain", map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"}, "10.0.0.1:1", "1.2.3.4"},
		{"real ip", map[string]string{"X-Real-IP": "9.8.7.6"}, "10.0.0.1:1", "9.8.7.6"},
		{"peer address", nil, "10.0.0.1:12345", "10.0.0.1"},
		{"unparseable peer", nil, "not-an-addr", "not-an-addr"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			require.Equal(t, tt.want, controller.GetClientIP(req))
		})
	}
}

func TestWithLogger_RequestID(t *testing.T) {
	logger.Setup(logger.TestEnvironment)

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = controller.RequestID(r.Context())
		w.WriteHeader(http.StatusCreated)
	})

	t.Run("client supplied", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-Id", "abc-123")
		rec := httptest.NewRecorder()
		controller.WithLogger(next).ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, "abc-123", seen)
		require.Equal(t, "abc-123", rec.Header().Get("X-Request-Id"))
	})

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		controller.WithLogger(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotEmpty(t, seen)
		require.Equal(t, seen, rec.Header().Get("X-Request-Id"))
	})

	require.Empty(t, controller.RequestID(context.Background()))
}

func TestWithLogger_AccessLog(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	r := chi.NewRouter()
	r.Use(controller.WithLogger)
	r.Get("/v1/properties/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"NOT_FOUND"}`))
	})
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) {})

	serve := func(path string) {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req = req.WithContext(logger.WithLogger(req.Context(), zap.New(core)))
		r.ServeHTTP(httptest.NewRecorder(), req)
	}
	serve("/v1/properties/42")
	serve("/boom")
	serve("/ok")

	entries := logs.FilterMessage("Access log").All()
	require.Len(t, entries, 3)

	first := entries[0]
	require.Equal(t, zapcore.WarnLevel, first.Level)
	fields := first.ContextMap()
	require.Equal(t, "/v1/properties/{id}", fields["route"])
	require.EqualValues(t, http.StatusNotFound, fields["status_code"])
	require.EqualValues(t, len(`{"code":"NOT_FOUND"}`), fields["bytes"])
	require.NotEmpty(t, fields[string(controller.RequestIDKey)])

	require.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	require.Equal(t, zapcore.InfoLevel, entries[2].Level)
}
