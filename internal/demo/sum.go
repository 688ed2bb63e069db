package demo

import (
	"context"
	"fmt"
	"io"

	"github.com/lguimbarda/lambda-basics/flow"
	"github.com/lguimbarda/lambda-basics/flow/aggregate"
	"github.com/lguimbarda/lambda-basics/flow/observe"
	"github.com/lguimbarda/lambda-basics/internal/points"
)

func add(a, b int) int { return a + b }

// xs streams the x coordinate of every point, calling trace (if set) for
// each one on its way through.
func xs(ctx context.Context, pts []points.Point, trace func(int)) flow.Stream[int] {
	stream := flow.Map(func(p points.Point) (int, error) {
		return points.XOf(p), nil
	}).Apply(ctx, flow.FromSlice(pts))
	if trace == nil {
		return stream
	}
	return observe.Peek(trace).Apply(ctx, stream)
}

// SumFold sums the x coordinates with an identity element. An empty
// dataset sums to 0.
func SumFold(ctx context.Context, pts []points.Point, trace func(int)) (int, error) {
	return flow.First(ctx, aggregate.Fold(0, add).Apply(ctx, xs(ctx, pts, trace)))
}

// SumReduce sums the x coordinates without an identity element. The
// result is absent for an empty dataset.
func SumReduce(ctx context.Context, pts []points.Point, trace func(int)) (flow.Option[int], error) {
	return flow.Optional(ctx, aggregate.Reduce(add).Apply(ctx, xs(ctx, pts, trace)))
}

// SumBuiltin sums the x coordinates with the library sum. An empty
// dataset sums to 0.
func SumBuiltin(ctx context.Context, pts []points.Point, trace func(int)) (int, error) {
	return flow.First(ctx, aggregate.Sum[int]().Apply(ctx, xs(ctx, pts, trace)))
}

// Sums runs the three sum variants over pts and then over empty, tracing
// each x value as it is consumed.
func Sums(ctx context.Context, w io.Writer, pts, empty []points.Point) error {
	trace := func(x int) { fmt.Fprintf(w, "%d ", x) }

	for _, ds := range []struct {
		suffix string
		pts    []points.Point
	}{
		{"", pts},
		{" (empty list)", empty},
	} {
		fmt.Fprintf(w, "\nCalculate sum of all x-coordinates with Fold%s\n", ds.suffix)
		sum, err := SumFold(ctx, ds.pts, trace)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\nsum=%d\n", sum)

		fmt.Fprintf(w, "\nCalculate sum of all x-coordinates with Reduce and IfPresent%s\n", ds.suffix)
		opt, err := SumReduce(ctx, ds.pts, trace)
		if err != nil {
			return err
		}
		opt.IfPresent(func(s int) { fmt.Fprintf(w, "\nsum=%d", s) })
		fmt.Fprintln(w)

		fmt.Fprintf(w, "\nCalculate sum of all x-coordinates with Sum%s\n", ds.suffix)
		sum, err = SumBuiltin(ctx, ds.pts, trace)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\nsum=%d\n", sum)
	}
	return nil
}
