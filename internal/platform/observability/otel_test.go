package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for raw, want := range cases {
		assert.Equal(t, want, ParseLevel(raw), raw)
	}
}

func TestNewLogger_TagsServiceAndEnv(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, Options{ServiceName: "storefront", LogLevel: "warn"})

	logger.Info("dropped")
	logger.Warn("kept")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "storefront", entry["service"])
	assert.Equal(t, "local", entry["env"])
}

func TestInit_MetricsAreCollectable(t *testing.T) {
	ctx := context.Background()
	instruments, shutdown, err := Init(ctx, Options{ServiceName: "storefront-test", Environment: "test", OTLPInsecure: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	counter, err := instruments.Meter("test").Int64Counter("cart.service.lines_added")
	require.NoError(t, err)
	counter.Add(ctx, 2)

	var rm metricdata.ResourceMetrics
	require.NoError(t, instruments.Metrics.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	sum, ok := rm.ScopeMetrics[0].Metrics[0].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	assert.Equal(t, int64(2), sum.DataPoints[0].Value)
}

func TestInstruments_NilFallsBackToNoop(t *testing.T) {
	var i *Instruments
	assert.NotNil(t, i.Tracer("test"))
	assert.NotNil(t, i.Meter("test"))
}
