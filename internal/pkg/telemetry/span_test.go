package telemetry_test

import (
	"context"
	"testing"

	"badge-promotion-engine/internal/pkg/errs"
	"badge-promotion-engine/internal/pkg/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestStartSpan_RecordsErrorOnEnd(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	ctx, span := telemetry.StartSpan(context.Background(), "promotion.submit", attribute.String("promotion.id", "p-1"))
	assert.NotEmpty(t, telemetry.TraceIDFromContext(ctx))
	telemetry.EndSpan(span, errs.New("validation failed"))

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "promotion.submit", ended[0].Name())
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Contains(t, ended[0].Attributes(), attribute.String("promotion.id", "p-1"))
}

func TestTraceIDFromContext_NoSpan(t *testing.T) {
	assert.Empty(t, telemetry.TraceIDFromContext(context.Background()))
}
