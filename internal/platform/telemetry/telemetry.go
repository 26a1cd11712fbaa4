// Package telemetry sets up OpenTelemetry tracing and metrics for the todo
// binaries and holds the instruments they record into.
//
//	p, err := telemetry.Setup(ctx, &cfg.Telemetry)
//	defer p.Shutdown(ctx)
//	cache := querycache.New(&cfg.Cache, logger, querycache.WithMetrics(p.Metrics))
//
// A nil *Metrics is valid and records nothing, so components can take an
// optional metrics dependency without guarding every call.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"

	"github.com/atsushi-h/go-todo/internal/platform/config"
)

// Exporter names accepted in telemetry.exporter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Values of the result attribute.
const (
	ResultSuccess  = "success"
	ResultError    = "error"
	ResultPartial  = "partial"
	ResultCanceled = "canceled"
	ResultHit      = "hit"
	ResultMiss     = "miss"
	ResultRefetch  = "refetch"
	ResultShared   = "coalesced"
)

// Metric attribute keys.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrOperation   = attribute.Key("operation")
	AttrCacheKey    = attribute.Key("cache.key_kind")
)

var (
	errUnsupportedExporter = errors.New("unsupported exporter")
	errEmptyEndpoint       = errors.New("otlp exporter requires an endpoint")
)

// Providers owns the tracer and meter providers installed by Setup.
type Providers struct {
	tracer *sdktrace.TracerProvider
	meter  *sdkmetric.MeterProvider

	// Metrics is nil when telemetry is disabled.
	Metrics *Metrics
}

// Setup installs global tracer and meter providers plus the W3C trace
// context propagator. When cfg.Enabled is false it installs nothing and
// returns empty Providers.
func Setup(ctx context.Context, cfg *config.TelemetryConfig) (*Providers, error) {
	if !cfg.Enabled {
		return &Providers{}, nil
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
	))
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	spans, err := spanExporter(ctx, cfg.Exporter, cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}
	readings, err := metricExporter(ctx, cfg.Exporter, cfg.Endpoint)
	if err != nil {
		_ = spans.Shutdown(ctx)
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	p := &Providers{
		tracer: sdktrace.NewTracerProvider(sdktrace.WithBatcher(spans), sdktrace.WithResource(res)),
		meter: sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(readings)),
			sdkmetric.WithResource(res),
		),
	}
	if p.Metrics, err = NewMetrics(p.meter, cfg.ServiceName); err != nil {
		_ = p.Shutdown(ctx)
		return nil, err
	}

	otel.SetTracerProvider(p.tracer)
	otel.SetMeterProvider(p.meter)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return p, nil
}

// Shutdown flushes and stops whatever Setup installed.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	if p.tracer != nil {
		if err := p.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if p.meter != nil {
		if err := p.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Metrics holds the instruments recorded by the HTTP layers, the mutation
// coordinator and the query cache.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter
	MutationTotal         metric.Int64Counter
	BatchFailedItems      metric.Int64Counter
	CacheFetchTotal       metric.Int64Counter
}

// NewMetrics registers every instrument on a meter named name.
func NewMetrics(mp metric.MeterProvider, name string) (*Metrics, error) {
	meter := mp.Meter(name)
	var errs []error
	keep := func(err error, instrument string) {
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", instrument, err))
		}
	}
	seconds := func(name, desc string) metric.Float64Histogram {
		h, err := meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
		keep(err, name)
		return h
	}
	count := func(name, desc, unit string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
		keep(err, name)
		return c
	}

	m := &Metrics{
		ServerRequestDuration: seconds("http.server.request.duration", "Duration of browser requests"),
		ServerRequestTotal:    count("http.server.request.total", "Browser requests served", "{request}"),
		ClientRequestDuration: seconds("http.client.request.duration", "Duration of todo service calls"),
		ClientRequestTotal:    count("http.client.request.total", "Todo service calls made", "{request}"),
		MutationTotal:         count("todo.mutation.total", "Todo mutations by operation and result", "{mutation}"),
		BatchFailedItems:      count("todo.batch.failed_items", "Items a batch operation reported as failed", "{item}"),
		CacheFetchTotal:       count("cache.fetch.total", "Query cache reads by key kind and result", "{fetch}"),
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return m, nil
}

// RecordMutation counts one coordinator mutation.
func (m *Metrics) RecordMutation(ctx context.Context, operation, result string) {
	if m == nil {
		return
	}
	m.MutationTotal.Add(ctx, 1, metric.WithAttributes(
		AttrOperation.String(operation),
		AttrResult.String(result),
	))
}

// RecordBatchFailures counts items a batch operation reported as failed.
func (m *Metrics) RecordBatchFailures(ctx context.Context, operation string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.BatchFailedItems.Add(ctx, int64(n), metric.WithAttributes(AttrOperation.String(operation)))
}

// RecordCacheFetch counts one query cache read.
func (m *Metrics) RecordCacheFetch(ctx context.Context, keyKind, result string) {
	if m == nil {
		return
	}
	m.CacheFetchTotal.Add(ctx, 1, metric.WithAttributes(
		AttrCacheKey.String(keyKind),
		AttrResult.String(result),
	))
}

// otlpTarget splits a collector URL such as http://otel-collector:4318 into
// the host:port the OTLP exporters take and whether TLS is off.
func otlpTarget(endpoint string) (hostPort string, insecure bool, err error) {
	if endpoint == "" {
		return "", false, errEmptyEndpoint
	}
	u, perr := url.Parse(endpoint)
	if perr != nil || u.Host == "" {
		return endpoint, true, nil
	}
	return u.Host, u.Scheme != "https", nil
}

func spanExporter(ctx context.Context, exporter, endpoint string) (sdktrace.SpanExporter, error) {
	switch exporter {
	case ExporterStdout:
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	case ExporterOTLP:
		host, insecure, err := otlpTarget(endpoint)
		if err != nil {
			return nil, err
		}
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(host)}
		if insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, opts...)
	}
	return nil, fmt.Errorf("%w: %q", errUnsupportedExporter, exporter)
}

func metricExporter(ctx context.Context, exporter, endpoint string) (sdkmetric.Exporter, error) {
	switch exporter {
	case ExporterStdout:
		return stdoutmetric.New()
	case ExporterOTLP:
		host, insecure, err := otlpTarget(endpoint)
		if err != nil {
			return nil, err
		}
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(host)}
		if insecure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		return otlpmetrichttp.New(ctx, opts...)
	}
	return nil, fmt.Errorf("%w: %q", errUnsupportedExporter, exporter)
}
