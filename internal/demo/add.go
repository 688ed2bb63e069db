package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/lguimbarda/lambda-basics/flow"
	"github.com/lguimbarda/lambda-basics/flow/collection"
	"github.com/lguimbarda/lambda-basics/flow/combine"
	"github.com/lguimbarda/lambda-basics/flow/filter"
	"github.com/lguimbarda/lambda-basics/flow/seq"
	"github.com/lguimbarda/lambda-basics/internal/points"
)

func xIsTwo(p points.Point) bool { return p.X == 2 }

// scale derives a new point from p: x times 100 and y times 10.
func scale(p points.Point) points.Point {
	return points.Point{X: 100 * p.X, Y: 10 * p.Y}
}

// AddWhileTraversing derives points from a list while walking it and adds
// them to that same list. Any derived point makes the traversal fail with
// collection.ErrConcurrentModification. The returned slice is the list's
// contents afterwards.
func AddWhileTraversing(pts []points.Point) ([]points.Point, error) {
	list := collection.NewList(pts...)
	for p := range seq.Map(seq.Filter(list.All(), xIsTwo), scale) {
		if err := list.Add(p); err != nil {
			return list.Values(), err
		}
	}
	return list.Values(), nil
}

// ConcatDerived returns a new slice holding pts followed by the points
// derived from those with x == 2. Both streams read snapshots of the same
// list, which is left unmodified.
func ConcatDerived(ctx context.Context, pts []points.Point) ([]points.Point, error) {
	list := collection.NewList(pts...)
	derived := flow.Map(func(p points.Point) (points.Point, error) {
		return scale(p), nil
	}).Apply(ctx, filter.Where(xIsTwo).Apply(ctx, list.Stream()))

	return flow.Slice(ctx, combine.Concat(list.Stream(), derived))
}

// AddPoints shows the wrong and the right way to add derived points. The
// wrong way reports its concurrent modification error and the demo goes on.
func AddPoints(ctx context.Context, w io.Writer, pts []points.Point) error {
	format := points.Formatter(w)

	fmt.Fprintln(w, "\nPrint original list.")
	if err := flow.ForEach(ctx, flow.FromSlice(slices.Clone(pts)), format); err != nil {
		return err
	}

	fmt.Fprintln(w, "\n\nAdd point to original list in the case the x value is equals two. This implementation is wrong.")
	result, err := AddWhileTraversing(slices.Clone(pts))
	switch {
	case errors.Is(err, collection.ErrConcurrentModification):
		fmt.Fprintln(w, err)
	case err != nil:
		return err
	default:
		for _, p := range result {
			format(p)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "\nAdd point to original list in the case the x value is equals two. This implementation is correct.")
	result, err = ConcatDerived(ctx, slices.Clone(pts))
	if err != nil {
		return err
	}
	for _, p := range result {
		format(p)
	}
	return nil
}
