package tracing

import (
	"context"
	"runtime"
	"strings"

	"github.com/serum-errors/go-serum"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type ctxKey struct{}

// TracerFromCtx returns the tracer set for the current context.
// If no tracer is currently set in ctx, a new no-op tracer will be returned.
func TracerFromCtx(ctx context.Context) trace.Tracer {
	tracer, ok := ctx.Value(ctxKey{}).(trace.Tracer)
	// tracer should not be nil here because SetTracer should check for that.
	// Do not allow a nil tracer to be inserted into context.
	if !ok {
		return trace.NewNoopTracerProvider().Tracer("")
	}
	return tracer
}

// SetTracer returns a new context with the given tracer associated with it.
// Setting the tracer to nil will create a noop tracer and insert it into the context.
func SetTracer(ctx context.Context, tracer trace.Tracer) context.Context {
	if tracer == nil {
		tracer = trace.NewNoopTracerProvider().Tracer("")
	}
	if existing, ok := ctx.Value(ctxKey{}).(trace.Tracer); ok {
		if existing == tracer {
			// Do not store same object twice.
			return ctx
		}
	}
	return context.WithValue(ctx, ctxKey{}, tracer)
}

// Start is a shortcut for retrieving the context tracer and calling Start.
// Start creates a span and a context.Context containing the newly-created span.
//
// If the current context does not contain a tracer then a new no-op tracer will be created for the new context.
// See go.opentelemetry.io/otel/trace.Tracer.Start for more information on the Start function.
func Start(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return TracerFromCtx(ctx).Start(ctx, spanName, opts...)
}

// StartFn is like Start, but names the span after the calling function's package and name,
// prefixed by the given name.
func StartFn(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return Start(ctx, name+" "+callerName(2), opts...)
}

// callerName returns the short "package.Function" name of the function skip frames up the stack.
func callerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	full := fn.Name()
	if i := strings.LastIndex(full, "/"); i >= 0 {
		full = full[i+1:]
	}
	return full
}

// EndWithStatus ends the span, marking it ok or errored depending on err.
// It is intended to be deferred with a named error return.
func EndWithStatus(span trace.Span, err error) {
	if err != nil {
		setSpanError(span, err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// SetSpanError is a helper function to set the error status and error code of the span in ctx.
// Errors without a serum code are recorded with an empty code.
func SetSpanError(ctx context.Context, err error) {
	setSpanError(trace.SpanFromContext(ctx), err)
}

func setSpanError(span trace.Span, err error) {
	span.SetAttributes(
		attribute.String(AttrKeyModcreatorErrorCode, serum.Code(err)),
	)
	span.SetStatus(codes.Error, err.Error())
}
