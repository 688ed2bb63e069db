package observe

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/lguimbarda/lambda-basics/flow/core"
)

// WithMetrics attaches hooks for type T that count values and errors on
// OpenTelemetry counters named "<prefix>.values" and "<prefix>.errors".
// Every recording carries the stage attribute.
func WithMetrics[T any](ctx context.Context, meter metric.Meter, prefix, stage string) (context.Context, error) {
	values, err := meter.Int64Counter(prefix+".values", metric.WithDescription("values emitted by a stream stage"))
	if err != nil {
		return ctx, fmt.Errorf("create %s.values counter: %w", prefix, err)
	}
	errs, err := meter.Int64Counter(prefix+".errors", metric.WithDescription("errors emitted by a stream stage"))
	if err != nil {
		return ctx, fmt.Errorf("create %s.errors counter: %w", prefix, err)
	}

	attrs := metric.WithAttributes(attribute.String("stage", stage))
	recordCtx := context.WithoutCancel(ctx)
	return core.WithHooks(ctx, core.Hooks[T]{
		OnValue: func(T) { values.Add(recordCtx, 1, attrs) },
		OnError: func(error) { errs.Add(recordCtx, 1, attrs) },
	}), nil
}
