package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/thenoetrevino/flowboard/internal/models"
)

func setupTestTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
	)
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)

	t.Cleanup(func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			t.Logf("shutdown tracer provider: %v", err)
		}
		otel.SetTracerProvider(prev)
	})
	return exporter
}

func attributesToMap(attrs []attribute.KeyValue) map[string]any {
	out := make(map[string]any, len(attrs))
	for _, kv := range attrs {
		out[string(kv.Key)] = kv.Value.AsInterface()
	}
	return out
}

func TestAdapter_SpansAroundSlotIO(t *testing.T) {
	exporter := setupTestTracer(t)
	ctx := context.Background()
	adapter := NewAdapter(NewMemorySlot())

	require.NoError(t, adapter.Save(ctx, sampleTasks()))
	_ = adapter.Load(ctx)

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)

	assert.Equal(t, "persistence.Save", spans[0].Name)
	save := attributesToMap(spans[0].Attributes)
	assert.Equal(t, models.DefaultSlotKey, save["flowboard.slot.key"])
	assert.Equal(t, int64(len(sampleTasks())), save["flowboard.tasks"])

	assert.Equal(t, "persistence.Load", spans[1].Name)
	assert.Equal(t, codes.Unset, spans[1].Status.Code)
}

func TestAdapter_FailedSaveMarksSpan(t *testing.T) {
	exporter := setupTestTracer(t)

	err := NewAdapter(failingSlot{}).Save(context.Background(), sampleTasks())
	require.Error(t, err)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	assert.Len(t, spans[0].Events, 1, "the error is recorded as a span event")
}
