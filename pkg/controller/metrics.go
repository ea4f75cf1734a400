package controller

import (
	"net/http"
	"strconv"
	"time"

	"estate/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics records request latency per route.
type HTTPMetrics struct {
	duration *prometheus.HistogramVec
}

// NewHTTPMetrics registers the request histogram with reg.
func NewHTTPMetrics(reg prometheus.Registerer) (*HTTPMetrics, error) {
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "estate",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Latency of HTTP requests by route, method and status code.",
		Buckets:   metrics.DefaultBuckets,
	}, []string{"route", "method", "code"})
	if err := reg.Register(duration); err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &HTTPMetrics{duration: duration}, nil
}

// Middleware observes every request. It must run inside a chi router so the
// matched route pattern is known; unmatched requests are labelled "unmatched".
func (m *HTTPMetrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newRecorder(w)

		next.ServeHTTP(rec, r)

		m.duration.
			WithLabelValues(routePattern(r), r.Method, strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	})
}
