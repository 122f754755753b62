// Package observability sets up OpenTelemetry tracing for the DevFeed CLI.
package observability

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/devfeed/internal/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Settings selects where spans go. OTEL_EXPORTER_OTLP_ENDPOINT, when set,
// takes precedence over Stdout.
type Settings struct {
	ServiceName string
	Stdout      bool
	Writer      io.Writer
	Logger      logging.Logger
}

// Init installs a global tracer provider and returns it with a shutdown
// function that flushes pending spans. Without an exporter the provider is a
// no-op.
func Init(ctx context.Context, s Settings) (trace.TracerProvider, func(context.Context) error, error) {
	if s.Logger == nil {
		s.Logger = logging.Discard()
	}
	if s.Writer == nil {
		s.Writer = os.Stdout
	}

	endpoint := strings.TrimSpace(os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
	if endpoint == "" && !s.Stdout {
		tp := noop.NewTracerProvider()
		otel.SetTracerProvider(tp)
		return tp, func(context.Context) error { return nil }, nil
	}

	res, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithTelemetrySDK(),
		resource.WithAttributes(
			attribute.String("service.name", s.ServiceName),
			attribute.String("deployment.environment", envOrDefault("ENVIRONMENT", "local")),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	var processor sdktrace.SpanProcessor
	if endpoint != "" {
		exporter, err := newOTLPExporter(ctx, endpoint)
		if err != nil {
			s.Logger.Warn(ctx, "failed to initialize OTLP trace exporter, falling back to stdout", "error", err)
			exporter, err := stdouttrace.New(stdouttrace.WithWriter(s.Writer), stdouttrace.WithPrettyPrint())
			if err != nil {
				return nil, nil, err
			}
			processor = sdktrace.NewSimpleSpanProcessor(exporter)
		} else {
			processor = sdktrace.NewBatchSpanProcessor(exporter)
		}
	} else {
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(s.Writer), stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, nil, err
		}
		processor = sdktrace.NewSimpleSpanProcessor(exporter)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(processor),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	shutdown := func(ctx context.Context) error {
		return errors.Join(tp.ForceFlush(ctx), tp.Shutdown(ctx))
	}
	return tp, shutdown, nil
}

func newOTLPExporter(ctx context.Context, endpoint string) (sdktrace.SpanExporter, error) {
	opts := []otlptracehttp.Option{}
	if host, ok := strings.CutPrefix(endpoint, "http://"); ok {
		opts = append(opts, otlptracehttp.WithEndpoint(host), otlptracehttp.WithInsecure())
	} else {
		opts = append(opts, otlptracehttp.WithEndpoint(strings.TrimPrefix(endpoint, "https://")))
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_INSECURE") == "1" {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return otlptracehttp.New(ctx, opts...)
}

func envOrDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
