package telemetry

import (
	"context"
	"strings"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/voice_sentiment/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

const ServiceName = "voice_sentiment"

// Setup installs the global tracer provider and returns its shutdown func.
// OTLP wins over stdout; with neither configured spans are recorded but dropped.
func Setup(ctx context.Context, cfg *config.Config, log *logger.ZapLogger) (func(context.Context) error, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(ServiceName)),
	)
	if err != nil {
		return nil, err
	}

	opts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}
	exporterName := "none"

	switch {
	case strings.TrimSpace(cfg.OTLPEndpoint) != "":
		eopts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(strings.TrimSpace(cfg.OTLPEndpoint))}
		if cfg.OTLPInsecure {
			eopts = append(eopts, otlptracegrpc.WithInsecure())
		}
		exporter, err := otlptracegrpc.New(ctx, eopts...)
		if err != nil {
			return nil, err
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
		exporterName = "otlp"
	case cfg.TracingStdout:
		exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, err
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
		exporterName = "stdout"
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)

	log.Log(logger.LogEntry{
		Level:   "info",
		Message: "telemetry initialized, exporter=" + exporterName,
		Service: ServiceName,
	})
	return tp.Shutdown, nil
}
