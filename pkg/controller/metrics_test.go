package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"estate/pkg/controller"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestHTTPMetrics_LabelsByRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := controller.NewHTTPMetrics(reg)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/v1/properties/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"a", "b"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/properties/"+id, nil))
	}

	n, err := testutil.GatherAndCount(reg, "estate_http_request_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 1, n, "both requests share the route pattern")

	_, err = controller.NewHTTPMetrics(reg)
	require.Error(t, err, "registering twice must fail")
}
