package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/models"
)

const (
	serviceName    = "shiftboard"
	serviceVersion = "1.0.0"
)

// ErrDisabled is returned by NewExporter when telemetry is not configured.
var ErrDisabled = errors.New("telemetry exporter is disabled or endpoint not configured")

// Config holds OTLP exporter configuration.
type Config struct {
	Endpoint string
	Enabled  bool
	Insecure bool
}

// Exporter exports refresh metrics to an OTEL Collector.
type Exporter struct {
	provider      *sdkmetric.MeterProvider
	fetchTotal    metric.Int64Counter
	fetchDuration metric.Float64Histogram
	utilization   metric.Float64Histogram
	pieces        metric.Float64Histogram
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, ErrDisabled
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	e, err := newExporter(provider.Meter(serviceName))
	if err != nil {
		return nil, err
	}
	e.provider = provider
	return e, nil
}

func newExporter(meter metric.Meter) (*Exporter, error) {
	fetchTotal, err := meter.Int64Counter(
		"shiftboard_fetch_total",
		metric.WithDescription("Sector table fetches by outcome"),
		metric.WithUnit("{fetch}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fetch counter: %w", err)
	}

	fetchDuration, err := meter.Float64Histogram(
		"shiftboard_fetch_duration_seconds",
		metric.WithDescription("Sector table fetch duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fetch duration histogram: %w", err)
	}

	utilization, err := meter.Float64Histogram(
		"shiftboard_summary_utilization_percent",
		metric.WithDescription("Fleet utilization at each refresh"),
		metric.WithUnit("%"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating utilization histogram: %w", err)
	}

	pieces, err := meter.Float64Histogram(
		"shiftboard_sector_pieces",
		metric.WithDescription("Pieces in the current snapshot of each sector"),
		metric.WithUnit("{piece}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pieces histogram: %w", err)
	}

	return &Exporter{
		fetchTotal:    fetchTotal,
		fetchDuration: fetchDuration,
		utilization:   utilization,
		pieces:        pieces,
	}, nil
}

// RecordFetch records one sector fetch.
func (e *Exporter) RecordFetch(ctx context.Context, sectorID string, elapsed time.Duration, err error) {
	sector := attribute.String("sector", sectorID)
	e.fetchTotal.Add(ctx, 1, metric.WithAttributes(sector, attribute.String("outcome", Outcome(err))))
	e.fetchDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(sector))
}

// RecordSummary records the fleet summary of a refresh.
func (e *Exporter) RecordSummary(ctx context.Context, summary models.Summary) {
	if summary.UtilizationPercent != nil {
		e.utilization.Record(ctx, *summary.UtilizationPercent)
	}
	for _, s := range summary.PerSector {
		if s.HasData {
			e.pieces.Record(ctx, s.Pieces, metric.WithAttributes(attribute.String("sector", s.ID)))
		}
	}
}

// Shutdown flushes and stops the meter provider.
func (e *Exporter) Shutdown(ctx context.Context) error {
	if e.provider == nil {
		return nil
	}
	return e.provider.Shutdown(ctx)
}
