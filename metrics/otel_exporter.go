package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// OTelExporter provides OpenTelemetry metrics export following OTel standards
type OTelExporter struct {
	meterProvider *sdkmetric.MeterProvider
	collector     Collector

	// OTel meters and instruments
	meter                metric.Meter
	bookCountGauge       metric.Int64ObservableGauge
	noteCountGauge       metric.Int64ObservableGauge
	averageRatingGauge   metric.Float64ObservableGauge
	recentlyUpdatedGauge metric.Int64ObservableGauge
}

// NewOTelExporter creates a new OpenTelemetry metrics exporter with Prometheus format
func NewOTelExporter(collector Collector) (*OTelExporter, error) {
	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(meterProvider)

	meter := meterProvider.Meter(
		"bookshelf",
		metric.WithInstrumentationVersion("1.0.0"),
	)

	oe := &OTelExporter{
		meterProvider: meterProvider,
		collector:     collector,
		meter:         meter,
	}

	if err := oe.registerInstruments(); err != nil {
		return nil, fmt.Errorf("registering instruments: %w", err)
	}

	return oe, nil
}

// registerInstruments creates and registers all OpenTelemetry metric instruments
func (oe *OTelExporter) registerInstruments() error {
	var err error

	oe.bookCountGauge, err = oe.meter.Int64ObservableGauge(
		"bookshelf.books.total",
		metric.WithDescription("Total number of cataloged books"),
		metric.WithUnit("{books}"),
		metric.WithInt64Callback(oe.observeBookCount),
	)
	if err != nil {
		return fmt.Errorf("creating book count gauge: %w", err)
	}

	oe.noteCountGauge, err = oe.meter.Int64ObservableGauge(
		"bookshelf.notes.total",
		metric.WithDescription("Total number of notes across all books"),
		metric.WithUnit("{notes}"),
		metric.WithInt64Callback(oe.observeNoteCount),
	)
	if err != nil {
		return fmt.Errorf("creating note count gauge: %w", err)
	}

	oe.averageRatingGauge, err = oe.meter.Float64ObservableGauge(
		"bookshelf.rating.average",
		metric.WithDescription("Mean of the numeric ratings in the catalog"),
		metric.WithFloat64Callback(oe.observeAverageRating),
	)
	if err != nil {
		return fmt.Errorf("creating average rating gauge: %w", err)
	}

	oe.recentlyUpdatedGauge, err = oe.meter.Int64ObservableGauge(
		"bookshelf.books.recently_updated",
		metric.WithDescription("Number of books edited in the last 24 hours"),
		metric.WithUnit("{books}"),
		metric.WithInt64Callback(oe.observeRecentlyUpdated),
	)
	if err != nil {
		return fmt.Errorf("creating recently updated gauge: %w", err)
	}

	return nil
}

// observeBookCount is a callback that reports the total book count
func (oe *OTelExporter) observeBookCount(ctx context.Context, observer metric.Int64Observer) error {
	count, err := oe.collector.GetBookCount(ctx)
	if err != nil {
		return err
	}
	observer.Observe(count)
	return nil
}

// observeNoteCount is a callback that reports the total note count
func (oe *OTelExporter) observeNoteCount(ctx context.Context, observer metric.Int64Observer) error {
	count, err := oe.collector.GetNoteCount(ctx)
	if err != nil {
		return err
	}
	observer.Observe(count)
	return nil
}

// observeAverageRating is a callback that reports the catalog's mean rating
func (oe *OTelExporter) observeAverageRating(ctx context.Context, observer metric.Float64Observer) error {
	avg, err := oe.collector.GetAverageRating(ctx)
	if err != nil {
		return err
	}
	observer.Observe(avg)
	return nil
}

// observeRecentlyUpdated is a callback that reports recently edited books
func (oe *OTelExporter) observeRecentlyUpdated(ctx context.Context, observer metric.Int64Observer) error {
	count, err := oe.collector.GetRecentlyUpdated(ctx)
	if err != nil {
		return err
	}
	observer.Observe(count)
	return nil
}

// ServeHTTP serves Prometheus-formatted metrics on the given HTTP handler
func (oe *OTelExporter) ServeHTTP() http.Handler {
	return promhttp.Handler()
}

// Shutdown gracefully shuts down the meter provider
func (oe *OTelExporter) Shutdown(ctx context.Context) error {
	if oe.meterProvider != nil {
		return oe.meterProvider.Shutdown(ctx)
	}
	return nil
}
