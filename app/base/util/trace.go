package util

import (
	"context"
	"io"
	"os"

	"github.com/serum-errors/go-serum"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"

	"github.com/warptools/modcreator/modapi"
	"github.com/warptools/modcreator/pkg/config"
	"github.com/warptools/modcreator/pkg/logging"
	"github.com/warptools/modcreator/pkg/tracing"
)

// Module is the service name spans are reported under.
const Module = "github.com/warptools/modcreator"

func setSpanError(ctx context.Context, err error) {
	if serum.Code(err) == "" {
		err = modapi.ErrorUnknown("command failed", err)
	}
	tracing.SetSpanError(ctx, err)
}

// serviceResource identifies this process to trace collectors.
// The semconv package must be the one the sdk's own resource.Default uses,
// since resources with different schema URLs can't be merged.
func serviceResource(version string) (*resource.Resource, error) {
	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(Module),
		semconv.ServiceVersionKey.String(version),
	))
	if err != nil {
		return nil, err
	}
	return resource.Merge(res, resource.Environment())
}

// spanExporters returns an exporter for every tracing destination enabled in state.
// On error, exporters that were already opened are shut down.
func spanExporters(ctx context.Context, state config.State) (_ []sdktrace.SpanExporter, err error) {
	logger := logging.Ctx(ctx)
	var exporters []sdktrace.SpanExporter
	defer func() {
		if err == nil {
			return
		}
		for _, exp := range exporters {
			exp.Shutdown(ctx)
		}
	}()

	if path, ok := state.Lookup(config.EnvModcreatorTraceFile); ok && path != "" {
		logger.Debug("", "%s: %s", config.EnvModcreatorTraceFile, path)
		exp, err := newFileSpanExporter(path)
		if err != nil {
			return nil, err
		}
		exporters = append(exporters, exp)
	}

	if state.Enabled(config.EnvModcreatorTraceHttpEnable) {
		var opts []otlptracehttp.Option
		if state.Enabled(config.EnvModcreatorTraceHttpInsecure) {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		if endpoint, ok := state.Lookup(config.EnvModcreatorTraceHttpEndpoint); ok && endpoint != "" {
			opts = append(opts, otlptracehttp.WithEndpoint(endpoint))
		}
		logger.Debug("", "%s: sending spans over http", config.EnvModcreatorTraceHttpEnable)
		exp, err := otlptrace.New(ctx, otlptracehttp.NewClient(opts...))
		if err != nil {
			return nil, err
		}
		exporters = append(exporters, exp)
	}
	return exporters, nil
}

// newTracingProvider creates a tracer provider from the environment.
// It returns nil, and touches nothing, if no exporter is configured.
func newTracingProvider(ctx context.Context, state config.State, version string) (*sdktrace.TracerProvider, error) {
	exporters, err := spanExporters(ctx, state)
	if err != nil {
		return nil, err
	}
	if len(exporters) == 0 {
		return nil, nil
	}
	res, err := serviceResource(version)
	if err != nil {
		for _, exp := range exporters {
			exp.Shutdown(ctx)
		}
		return nil, err
	}

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	}
	for _, exp := range exporters {
		opts = append(opts, sdktrace.WithBatcher(exp))
	}
	return sdktrace.NewTracerProvider(opts...), nil
}

// fileSpanExporter writes pretty-printed spans to a file, and closes it on Shutdown.
type fileSpanExporter struct {
	sdktrace.SpanExporter
	file io.Closer
}

// Shutdown flushes the exporter and closes the file.
//
// Errors:
//
//   - modcreator-error-internal -- when the exporter fails to shut down
func (e *fileSpanExporter) Shutdown(ctx context.Context) error {
	defer e.file.Close()
	if err := e.SpanExporter.Shutdown(ctx); err != nil {
		return modapi.ErrorInternal("tracing shutdown failed", err)
	}
	return nil
}

// newFileSpanExporter creates or truncates the named file.
func newFileSpanExporter(name string) (*fileSpanExporter, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	exp, err := stdouttrace.New(
		stdouttrace.WithWriter(f),
		stdouttrace.WithPrettyPrint(),
		stdouttrace.WithoutTimestamps(),
	)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &fileSpanExporter{SpanExporter: exp, file: f}, nil
}
