package demo

import (
	"context"
	"fmt"
	"io"

	"github.com/lguimbarda/lambda-basics/flow"
	"github.com/lguimbarda/lambda-basics/internal/points"
)

// PrintAll prints every point four ways. The first two use the default
// representation and the last two the bracketed format; all keep the
// dataset order.
func PrintAll(ctx context.Context, w io.Writer, pts []points.Point) error {
	fmt.Fprintln(w, "\nA plain range loop to print all elements of a list.")
	for _, p := range pts {
		fmt.Fprint(w, p)
	}

	fmt.Fprintln(w, "\n\nForEach and a function value to print all elements of a list.")
	printPoint := func(p points.Point) { fmt.Fprint(w, p) }
	if err := flow.ForEach(ctx, flow.FromSlice(pts), printPoint); err != nil {
		return err
	}

	fmt.Fprintln(w, "\n\nForEach and a closure to print all elements of a list with special format.")
	err := flow.ForEach(ctx, flow.FromSlice(pts), func(p points.Point) {
		points.Format(w, p)
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "\n\nForEach and a named formatter to print all elements of a list with special format.")
	return flow.ForEach(ctx, flow.FromSlice(pts), points.Formatter(w))
}
