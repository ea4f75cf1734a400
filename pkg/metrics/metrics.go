// Package metrics owns the OpenTelemetry meter provider and the domain
// counters recorded by the services.
package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

const meterName = "estate"

// NewMeterProvider returns a meter provider whose readings are exported to
// reg, and therefore served on the Prometheus endpoint.
func NewMeterProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// Instruments are the domain counters.
type Instruments struct {
	SignIns         metric.Int64Counter
	SessionsRevoked metric.Int64Counter
	Upgrades        metric.Int64Counter
	ListingsCreated metric.Int64Counter
	ListingsDeleted metric.Int64Counter
	QuotaRejections metric.Int64Counter
	ListingsPurged  metric.Int64Counter
}

// NewInstruments creates every instrument on a meter of mp. It fails only
// when the provider rejects an instrument definition.
func NewInstruments(mp metric.MeterProvider) (*Instruments, error) {
	meter := mp.Meter(meterName)

	var (
		ins Instruments
		err error
	)
	counters := []struct {
		dst  *metric.Int64Counter
		name string
		desc string
	}{
		{&ins.SignIns, "estate.sign_ins", "Successful sign-ins"},
		{&ins.SessionsRevoked, "estate.sessions_revoked", "Sessions ended by sign-out or identity changes"},
		{&ins.Upgrades, "estate.upgrades", "Sessions upgraded to premium"},
		{&ins.ListingsCreated, "estate.listings_created", "Listings accepted"},
		{&ins.ListingsDeleted, "estate.listings_deleted", "Listings deleted by their submitter"},
		{&ins.QuotaRejections, "estate.quota_rejections", "Listings refused because the quota was reached"},
		{&ins.ListingsPurged, "estate.listings_purged", "Listings removed after their session ended"},
	}
	for _, c := range counters {
		*c.dst, err = meter.Int64Counter(c.name, metric.WithDescription(c.desc))
		if err != nil {
			return nil, fmt.Errorf("could not create %s counter: %w", c.name, err)
		}
	}

	return &ins, nil
}

// NoopInstruments records nothing. Useful in tests and tools.
func NoopInstruments() *Instruments {
	ins, _ := NewInstruments(noop.NewMeterProvider())

	return ins
}

// Inc adds one to c.
func Inc(ctx context.Context, c metric.Int64Counter, opts ...metric.AddOption) {
	if c != nil {
		c.Add(ctx, 1, opts...)
	}
}
