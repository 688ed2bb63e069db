package demo

import (
	"context"
	"fmt"
	"io"

	"github.com/lguimbarda/lambda-basics/flow"
	"github.com/lguimbarda/lambda-basics/flow/filter"
	"github.com/lguimbarda/lambda-basics/flow/transform"
	"github.com/lguimbarda/lambda-basics/internal/points"
)

func positiveX(p points.Point) bool { return p.X > 0 }

func positive(ctx context.Context, pts []points.Point) flow.Stream[points.Point] {
	return filter.Where(positiveX).Apply(ctx, flow.FromSlice(pts))
}

func distinctPositive(ctx context.Context, pts []points.Point) flow.Stream[points.Point] {
	return transform.Distinct[points.Point]().Apply(ctx, positive(ctx, pts))
}

// PositiveX returns the points with x > 0 in dataset order.
func PositiveX(ctx context.Context, pts []points.Point) ([]points.Point, error) {
	return flow.Slice(ctx, positive(ctx, pts))
}

// DistinctPositiveX returns the points with x > 0, keeping only the first
// of any equal points.
func DistinctPositiveX(ctx context.Context, pts []points.Point) ([]points.Point, error) {
	return flow.Slice(ctx, distinctPositive(ctx, pts))
}

// Filters prints the points with x > 0 three ways: an if statement inside
// ForEach, a Where stage, and a Where stage followed by Distinct.
func Filters(ctx context.Context, w io.Writer, pts []points.Point) error {
	format := points.Formatter(w)

	fmt.Fprintln(w, "\nFilter all points positive in x with an if statement.")
	err := flow.ForEach(ctx, flow.FromSlice(pts), func(p points.Point) {
		if p.X > 0 {
			format(p)
		}
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "\n\nFilter all points positive in x with Where.")
	if err := flow.ForEach(ctx, positive(ctx, pts), format); err != nil {
		return err
	}

	fmt.Fprintln(w, "\n\nFilter distinct points positive in x with Where and Distinct.")
	return flow.ForEach(ctx, distinctPositive(ctx, pts), format)
}
