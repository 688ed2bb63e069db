package observe

import (
	"context"
	"errors"
	"slices"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/lguimbarda/lambda-basics/flow"
	"github.com/lguimbarda/lambda-basics/flow/aggregate"
	"github.com/lguimbarda/lambda-basics/flow/core"
)

func TestPeekSeesValuesBeforeReduction(t *testing.T) {
	ctx := context.Background()
	var traced []int

	stream := aggregate.Sum[int]().Apply(ctx,
		Peek(func(v int) { traced = append(traced, v) }).Apply(ctx, flow.FromSlice([]int{3, 1, 2})))

	sum, err := flow.First(ctx, stream)
	if err != nil {
		t.Fatalf("First() error = %v", err)
	}
	if sum != 6 {
		t.Errorf("sum = %d, want 6", sum)
	}
	if !slices.Equal(traced, []int{3, 1, 2}) {
		t.Errorf("traced = %v, want [3 1 2]", traced)
	}
}

func TestSpySeesErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	source := flow.Emit(func(context.Context) <-chan core.Result[int] {
		out := make(chan core.Result[int], 2)
		out <- core.Ok(1)
		out <- core.Err[int](boom)
		close(out)
		return out
	})

	var values, errs int
	_ = flow.Collect(ctx, Spy(func(res core.Result[int]) {
		if res.IsError() {
			errs++
		} else {
			values++
		}
	}).Apply(ctx, source))

	if values != 1 || errs != 1 {
		t.Errorf("values/errors = %d/%d, want 1/1", values, errs)
	}
}

func TestWithCounter(t *testing.T) {
	ctx, counter := WithCounter[int](context.Background())
	boom := errors.New("boom")

	half := flow.Map(func(n int) (int, error) {
		if n%2 != 0 {
			return 0, boom
		}
		return n / 2, nil
	})
	_ = flow.Collect(ctx, half.Apply(ctx, flow.FromSlice([]int{2, 3, 4, 6})))

	if counter.Values() != 3 || counter.Errors() != 1 {
		t.Errorf("values/errors = %d/%d, want 3/1", counter.Values(), counter.Errors())
	}
}

func TestWithValueHook(t *testing.T) {
	var seen []string
	ctx := WithValueHook(context.Background(), func(s string) { seen = append(seen, s) })

	upper := flow.Map(func(s string) (string, error) { return s + "!", nil })
	if err := flow.Run(ctx, upper.Apply(ctx, flow.FromSlice([]string{"a", "b"}))); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !slices.Equal(seen, []string{"a!", "b!"}) {
		t.Errorf("seen = %v", seen)
	}
}

func TestWithMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	meter := provider.Meter("observe-test")

	ctx, err := WithMetrics[int](context.Background(), meter, "demo", "x")
	if err != nil {
		t.Fatalf("WithMetrics() error = %v", err)
	}

	pointX := flow.Map(func(n int) (int, error) { return n, nil })
	if err := flow.Run(ctx, pointX.Apply(ctx, flow.FromSlice([]int{1, 2, 3}))); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	var got int64 = -1
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "demo.values" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok || len(sum.DataPoints) != 1 {
				t.Fatalf("demo.values data = %#v", m.Data)
			}
			got = sum.DataPoints[0].Value
		}
	}
	if got != 3 {
		t.Errorf("demo.values = %d, want 3", got)
	}
}
