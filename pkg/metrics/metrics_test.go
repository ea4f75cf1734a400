package metrics_test

import (
	"context"
	"strings"
	"testing"

	"estate/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

func TestInstrumentsExportToPrometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	ins, err := metrics.NewInstruments(mp)
	require.NoError(t, err)

	ctx := context.Background()
	metrics.Inc(ctx, ins.ListingsCreated, metric.WithAttributes(attribute.String("role", "agent")))
	metrics.Inc(ctx, ins.ListingsCreated, metric.WithAttributes(attribute.String("role", "agent")))
	metrics.Inc(ctx, ins.QuotaRejections)

	families, err := reg.Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, f := range families {
		for _, m := range f.GetMetric() {
			if m.GetCounter() != nil {
				values[f.GetName()] += m.GetCounter().GetValue()
			}
		}
	}

	var created, rejected float64
	for name, v := range values {
		switch {
		case strings.Contains(name, "listings_created"):
			created = v
		case strings.Contains(name, "quota_rejections"):
			rejected = v
		}
	}
	require.InDelta(t, 2, created, 0)
	require.InDelta(t, 1, rejected, 0)
}

func TestNoopInstruments(t *testing.T) {
	ins := metrics.NoopInstruments()
	require.NotNil(t, ins)
	require.NotPanics(t, func() {
		metrics.Inc(context.Background(), ins.Upgrades)
		metrics.Inc(context.Background(), nil)
	})
}
