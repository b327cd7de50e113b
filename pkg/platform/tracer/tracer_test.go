package tracer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"accounts/pkg/platform/tracer"
)

func TestNoopTracer(t *testing.T) {
	tr := tracer.NewNoop()
	ctx := context.Background()

	newCtx, span := tr.Start(ctx, tracer.SpanCardsGetDetails, tracer.String(tracer.AttrPeerService, "cards"))

	assert.Equal(t, ctx, newCtx)
	require.NotNil(t, span)
	span.SetAttributes(tracer.Int(tracer.AttrCardCount, 2))
	span.AddEvent("retry.skipped")
	span.End(errors.New("remote unavailable"))
}

func TestOTelTracer_WithInjectedTracer(t *testing.T) {
	tr := tracer.NewOTel(tracer.WithOTelTracer(noop.NewTracerProvider().Tracer("test")))

	ctx, span := tr.Start(context.Background(), tracer.SpanCardsGetDetails,
		tracer.String(tracer.AttrPeerService, "cards"),
		tracer.Bool("cache.hit", false),
		tracer.Int64("bytes", 42),
	)

	require.NotNil(t, ctx)
	span.SetAttributes(tracer.Int(tracer.AttrHTTPStatusCode, 200))
	span.End(nil)
}

func TestHashIdentifier(t *testing.T) {
	assert.Empty(t, tracer.HashIdentifier(""))
	assert.Len(t, tracer.HashIdentifier("9876543210"), 16)
	assert.Equal(t, tracer.HashIdentifier("9876543210"), tracer.HashIdentifier("9876543210"))
	assert.NotEqual(t, tracer.HashIdentifier("9876543210"), tracer.HashIdentifier("9876543211"))
}

func TestAttributeConstructors(t *testing.T) {
	assert.Equal(t, tracer.Attribute{Key: "k", Value: "v"}, tracer.String("k", "v"))
	assert.Equal(t, tracer.Attribute{Key: "n", Value: 3}, tracer.Int("n", 3))
	assert.Equal(t, int64(150), tracer.Duration("latency", 150*1e6).Value)
}
