package demo

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/lguimbarda/lambda-basics/flow"
	"github.com/lguimbarda/lambda-basics/flow/transform"
	"github.com/lguimbarda/lambda-basics/internal/points"
)

// CollectPositive gathers the points with x > 0 into a newly allocated
// slice. The result is empty, not nil, when nothing matches.
func CollectPositive(ctx context.Context, pts []points.Point) ([]points.Point, error) {
	return flow.First(ctx, transform.ToSlice[points.Point]().Apply(ctx, positive(ctx, pts)))
}

// JoinX joins the x coordinates of pts with ", ".
func JoinX(ctx context.Context, pts []points.Point) (string, error) {
	text := flow.Map(func(x int) (string, error) {
		return strconv.Itoa(x), nil
	}).Apply(ctx, xs(ctx, pts, nil))

	return flow.First(ctx, transform.Join(", ").Apply(ctx, text))
}

// Collect prints the dataset, the positive points collected into a new
// slice, and the joined x coordinates.
func Collect(ctx context.Context, w io.Writer, pts []points.Point) error {
	format := points.Formatter(w)

	fmt.Fprintln(w, "\nPrint original list.")
	if err := flow.ForEach(ctx, flow.FromSlice(pts), format); err != nil {
		return err
	}

	fmt.Fprintln(w, "\n\nUse ToSlice to store all points with positive x into a new slice.")
	result, err := CollectPositive(ctx, pts)
	if err != nil {
		return err
	}
	for _, p := range result {
		format(p)
	}

	fmt.Fprintln(w, "\n\nUse Join to create a comma separated string.")
	joined, err := JoinX(ctx, pts)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, joined)
	return nil
}
