package observability

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.27.0"

	"github.com/lumistudy/lumistudy-backend/internal/logger"
	"github.com/lumistudy/lumistudy-backend/internal/utils"
)

var (
	otelOnce     sync.Once
	otelShutdown func(context.Context) error
)

// InitTracing sets up the global tracer provider when OTEL_ENABLED is on.
// With an OTLP endpoint configured spans go there; otherwise they go to
// stdout. Returns the shutdown hook, nil when tracing is disabled.
func InitTracing(ctx context.Context, log *logger.Logger, serviceName string) func(context.Context) error {
	otelOnce.Do(func() {
		if !utils.GetEnvAsBool("OTEL_ENABLED", false, log) {
			return
		}
		if strings.TrimSpace(serviceName) == "" {
			serviceName = "lumistudy"
		}
		res, err := resource.New(ctx, resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			attribute.String("deployment.environment", utils.GetEnv("APP_ENV", "development", nil)),
		))
		if err != nil && log != nil {
			log.Warn("otel resource init failed, continuing", "error", err)
		}

		exporter, err := buildExporter(ctx, log)
		if err != nil {
			if log != nil {
				log.Warn("otel exporter init failed, tracing disabled", "error", err)
			}
			return
		}

		tp := sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
			sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(sampleRatio()))),
			sdktrace.WithResource(res),
		)
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		))
		otelShutdown = tp.Shutdown
		if log != nil {
			log.Info("otel tracing initialized", "service", serviceName)
		}
	})
	return otelShutdown
}

func buildExporter(ctx context.Context, log *logger.Logger) (sdktrace.SpanExporter, error) {
	endpoint := strings.TrimSpace(utils.GetEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "", nil))
	if endpoint != "" {
		return otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(endpoint))
	}
	if log != nil {
		log.Warn("otel using stdout exporter, no OTLP endpoint configured")
	}
	return stdouttrace.New(stdouttrace.WithPrettyPrint())
}

func sampleRatio() float64 {
	raw := strings.TrimSpace(utils.GetEnv("OTEL_SAMPLER_RATIO", "", nil))
	if raw == "" {
		return 0.1
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0.1
	}
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
