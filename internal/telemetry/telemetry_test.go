package telemetry

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestInitMetricsStdout(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer

	shutdown, err := InitMetrics(ctx, ExporterStdout, &buf)
	require.NoError(t, err)

	counter, err := otel.Meter("telemetry-test").Int64Counter("telemetry.test.count")
	require.NoError(t, err)
	counter.Add(ctx, 3)

	require.NoError(t, shutdown(ctx))
	assert.Contains(t, buf.String(), "telemetry.test.count")
	assert.Contains(t, buf.String(), "lambdabasics")
}

func TestInitMetricsNone(t *testing.T) {
	for _, name := range []string{"", ExporterNone} {
		shutdown, err := InitMetrics(context.Background(), name, &bytes.Buffer{})
		require.NoError(t, err)
		assert.NoError(t, shutdown(context.Background()))
	}
}

func TestInitMetricsUnknown(t *testing.T) {
	_, err := InitMetrics(context.Background(), "prometheus", &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrUnknownExporter)
}
