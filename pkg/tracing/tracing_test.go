package tracing

import (
	"context"
	"fmt"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/serum-errors/go-serum"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func recordingContext() (context.Context, *tracetest.SpanRecorder) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	return SetTracer(context.Background(), tp.Tracer("test")), sr
}

func TestTracerFromCtxDefaultsToNoop(t *testing.T) {
	ctx, span := Start(context.Background(), "nothing")
	defer span.End()
	qt.Assert(t, span.IsRecording(), qt.IsFalse)
	qt.Assert(t, ctx, qt.IsNotNil)
}

func TestEndWithStatus(t *testing.T) {
	ctx, sr := recordingContext()

	_, span := Start(ctx, "ok")
	EndWithStatus(span, nil)

	_, span = Start(ctx, "failed")
	EndWithStatus(span, serum.Error("modcreator-error-test", serum.WithMessageLiteral("boom")))

	ended := sr.Ended()
	qt.Assert(t, ended, qt.HasLen, 2)
	qt.Assert(t, ended[0].Name(), qt.Equals, "ok")
	qt.Assert(t, ended[0].Status().Code, qt.Equals, codes.Ok)
	qt.Assert(t, ended[1].Name(), qt.Equals, "failed")
	qt.Assert(t, ended[1].Status().Code, qt.Equals, codes.Error)
	qt.Assert(t, ended[1].Attributes(), qt.Contains,
		attribute.String(AttrKeyModcreatorErrorCode, "modcreator-error-test"))
}

func TestStartFnNamesSpanAfterCaller(t *testing.T) {
	ctx, sr := recordingContext()
	_, span := StartFn(ctx, "stage")
	EndWithStatus(span, fmt.Errorf("plain error"))

	ended := sr.Ended()
	qt.Assert(t, ended, qt.HasLen, 1)
	qt.Assert(t, ended[0].Name(), qt.Equals, "stage tracing.TestStartFnNamesSpanAfterCaller")
	qt.Assert(t, ended[0].Status().Code, qt.Equals, codes.Error)
}
