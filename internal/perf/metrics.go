package perf

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// instruments is a zero value (and records nothing) without a meter.
type instruments struct {
	duration   metric.Float64Histogram
	iterations metric.Int64Counter
}

func newInstruments(meter metric.Meter) (instruments, error) {
	if meter == nil {
		return instruments{}, nil
	}

	duration, err := meter.Float64Histogram("perf.iteration.duration",
		metric.WithDescription("average wall-clock time of one execution of a test case"),
		metric.WithUnit("ms"))
	if err != nil {
		return instruments{}, fmt.Errorf("create perf.iteration.duration histogram: %w", err)
	}
	iterations, err := meter.Int64Counter("perf.iterations",
		metric.WithDescription("measured executions of test cases"))
	if err != nil {
		return instruments{}, fmt.Errorf("create perf.iterations counter: %w", err)
	}
	return instruments{duration: duration, iterations: iterations}, nil
}

func (i instruments) record(ctx context.Context, m Measurement) {
	if i.duration == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("case", m.Label))
	i.duration.Record(ctx, float64(m.PerIteration)/float64(time.Millisecond), attrs)
	i.iterations.Add(ctx, int64(m.Iterations), attrs)
}
