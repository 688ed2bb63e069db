// Package demo walks through functional-style collection processing over
// a small list of points: printing, summing, filtering, deriving new
// points and collecting results. Every routine writes its narration and
// results to w; the exported helpers return the same results for callers
// that want the values instead of the text.
package demo

import (
	"context"
	"fmt"
	"io"

	"github.com/lguimbarda/lambda-basics/internal/points"
)

// Data holds the datasets the demo runs over.
type Data struct {
	Points []points.Point
	Empty  []points.Point
}

// DefaultData returns the built-in sample and empty datasets.
func DefaultData() Data {
	return Data{Points: points.Sample(), Empty: points.Empty()}
}

const banner = "### LambdaBasics #########################################"

// Run executes every demonstration in a fixed order.
func Run(ctx context.Context, w io.Writer, data Data) error {
	fmt.Fprintln(w, banner+" | START")
	if err := PrintAll(ctx, w, data.Points); err != nil {
		return fmt.Errorf("print all: %w", err)
	}

	fmt.Fprintln(w, "\n\n### calculate sum ### ")
	if err := Sums(ctx, w, data.Points, data.Empty); err != nil {
		return fmt.Errorf("calculate sum: %w", err)
	}

	fmt.Fprintln(w, "\n\n### filter ###")
	if err := Filters(ctx, w, data.Points); err != nil {
		return fmt.Errorf("filter: %w", err)
	}

	fmt.Fprintln(w, "\n\n### add point ###")
	if err := AddPoints(ctx, w, data.Points); err != nil {
		return fmt.Errorf("add point: %w", err)
	}

	fmt.Fprintln(w, "\n\n### collect ###")
	if err := Collect(ctx, w, data.Points); err != nil {
		return fmt.Errorf("collect: %w", err)
	}

	fmt.Fprintln(w, "\n"+banner+" | END")
	return nil
}
