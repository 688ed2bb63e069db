package perf

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/lguimbarda/lambda-basics/flow/core"
)

// stepClock advances by step on every call.
func stepClock(step time.Duration) func() time.Time {
	now := time.Unix(0, 0)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func TestRunAllCountsAndOrder(t *testing.T) {
	var out bytes.Buffer
	var calls []string
	counts := map[string]int{}

	r := NewRunner(WithOutput(&out), WithClock(stepClock(10*time.Millisecond)))
	for _, label := range []string{"first", "second"} {
		r.Register(label, func() {
			counts[label]++
			if len(calls) == 0 || calls[len(calls)-1] != label {
				calls = append(calls, label)
			}
		})
	}

	ms, err := r.RunAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"first": 300, "second": 300}, counts)
	// warm-up pass then measurement pass, each in registration order
	assert.Equal(t, []string{"first", "second", "first", "second"}, calls)

	require.Len(t, ms, 2)
	for i, label := range []string{"first", "second"} {
		assert.Equal(t, label, ms[i].Label)
		assert.Equal(t, DefaultExecutionCycles, ms[i].Iterations)
		assert.Equal(t, 10*time.Millisecond, ms[i].Total)
		assert.Equal(t, 100*time.Microsecond, ms[i].PerIteration)
		assert.NoError(t, ms[i].Err)
	}

	text := out.String()
	assert.Contains(t, text, "test case 'first' warm-up "+strings.Repeat(".", 20)+" ready\n")
	assert.Contains(t, text, "test case 'second' elapsed time per execution 0.1 ms\n")
	assert.Less(t, strings.Index(text, "'second' warm-up"), strings.Index(text, "'first' elapsed"))
}

func TestProgressTicks(t *testing.T) {
	tests := []struct {
		warmUp int
		dots   int
	}{
		{warmUp: 200, dots: 20},
		{warmUp: 5, dots: 5},
		{warmUp: 45, dots: 23},
		{warmUp: 1, dots: 1},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		r := NewRunner(WithOutput(&out), WithWarmUpCycles(tt.warmUp), WithExecutionCycles(1))
		r.Register("tick", func() {})

		_, err := r.RunAll(context.Background())
		require.NoError(t, err)
		want := "test case 'tick' warm-up " + strings.Repeat(".", tt.dots) + " ready\n"
		assert.Contains(t, out.String(), want, "warm-up %d", tt.warmUp)
	}
}

func TestSettingsFromContext(t *testing.T) {
	var n int
	r := NewRunner(WithOutput(&bytes.Buffer{}))
	r.Register("count", func() { n++ })

	ctx := core.WithConfig(context.Background(), Settings{WarmUpCycles: 3, ExecutionCycles: 4})
	ms, err := r.RunAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, 4, ms[0].Iterations)
}

func TestFailurePolicies(t *testing.T) {
	boom := errors.New("boom")

	newRunner := func(policy FailurePolicy, measured *int) *Runner {
		r := NewRunner(WithOutput(&bytes.Buffer{}), WithFailurePolicy(policy),
			WithWarmUpCycles(2), WithExecutionCycles(3))
		r.Register("panics", func() { panic(boom) })
		r.Register("works", func() { *measured++ })
		return r
	}

	t.Run("fail fast", func(t *testing.T) {
		var measured int
		_, err := newRunner(FailFast, &measured).RunAll(context.Background())

		var caseErr *CaseError
		require.ErrorAs(t, err, &caseErr)
		assert.Equal(t, "panics", caseErr.Label)
		assert.Equal(t, PhaseWarmUp, caseErr.Phase)
		assert.ErrorIs(t, err, boom)
		assert.Zero(t, measured)
	})

	t.Run("skip failed", func(t *testing.T) {
		var measured int
		ms, err := newRunner(SkipFailed, &measured).RunAll(context.Background())
		require.NoError(t, err)
		require.Len(t, ms, 2)

		var caseErr *CaseError
		require.ErrorAs(t, ms[0].Err, &caseErr)
		assert.Equal(t, "boom", caseErr.Value.(error).Error())
		assert.NoError(t, ms[1].Err)
		assert.Equal(t, 3, ms[1].Iterations)
		assert.Equal(t, 5, measured)
	})
}

func TestMeasurementPhaseFailure(t *testing.T) {
	var calls int
	r := NewRunner(WithOutput(&bytes.Buffer{}), WithWarmUpCycles(2), WithExecutionCycles(2))
	r.Register("late", func() {
		calls++
		if calls > 2 {
			panic("measured")
		}
	})

	_, err := r.RunAll(context.Background())
	var caseErr *CaseError
	require.ErrorAs(t, err, &caseErr)
	assert.Equal(t, PhaseMeasurement, caseErr.Phase)
	assert.Equal(t, "measured", caseErr.Value)
	assert.Nil(t, caseErr.Unwrap())
}

func TestRunAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(WithOutput(&bytes.Buffer{}))
	r.Register("never", func() { t.Error("work ran after cancellation") })

	_, err := r.RunAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunAllRecordsMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	r := NewRunner(WithOutput(&bytes.Buffer{}), WithMeter(provider.Meter("perf-test")),
		WithWarmUpCycles(1), WithExecutionCycles(5), WithClock(stepClock(time.Millisecond)))
	r.Register("a", func() {})
	r.Register("b", func() {})

	_, err := r.RunAll(context.Background())
	require.NoError(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	found := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			found[m.Name] = true
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				require.Len(t, data.DataPoints, 2)
				for _, dp := range data.DataPoints {
					assert.Equal(t, int64(5), dp.Value)
				}
			case metricdata.Histogram[float64]:
				require.Len(t, data.DataPoints, 2)
				for _, dp := range data.DataPoints {
					assert.Equal(t, uint64(1), dp.Count)
					assert.InDelta(t, 0.2, dp.Sum, 1e-9)
				}
			}
		}
	}
	assert.True(t, found["perf.iterations"])
	assert.True(t, found["perf.iteration.duration"])
}

func TestRunAllRecordsSubMicrosecondDurations(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	var out bytes.Buffer
	r := NewRunner(WithOutput(&out), WithMeter(provider.Meter("perf-test")),
		WithWarmUpCycles(1), WithExecutionCycles(100), WithClock(stepClock(50*time.Microsecond)))
	r.Register("fast", func() {})

	ms, err := r.RunAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, 500*time.Nanosecond, ms[0].PerIteration)
	assert.Contains(t, out.String(), "elapsed time per execution 0.0005 ms")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var sum float64
	var seen bool
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if hist, ok := m.Data.(metricdata.Histogram[float64]); ok && m.Name == "perf.iteration.duration" {
				require.Len(t, hist.DataPoints, 1)
				sum, seen = hist.DataPoints[0].Sum, true
			}
		}
	}
	require.True(t, seen)
	assert.InDelta(t, 0.0005, sum, 1e-12)
}

func TestNilLoggerIgnored(t *testing.T) {
	r := NewRunner(WithOutput(&bytes.Buffer{}), WithLogger(nil), WithWarmUpCycles(1), WithExecutionCycles(1))
	r.Register("noop", func() {})

	require.NotPanics(t, func() {
		_, err := r.RunAll(context.Background())
		assert.NoError(t, err)
	})
}
