// Package points holds the two-dimensional integer points the demo works
// on, the built-in datasets, and their text formats.
package points

import (
	"fmt"
	"io"
)

// Point is an integer coordinate pair. Points compare by value.
type Point struct {
	X int
	Y int
}

// String renders the default element representation, e.g. Point[x=-4,y=-8].
func (p Point) String() string {
	return fmt.Sprintf("Point[x=%d,y=%d]", p.X, p.Y)
}

// Format writes p in the bracketed list format "[x, y] ".
func Format(w io.Writer, p Point) {
	fmt.Fprintf(w, "[%d, %d] ", p.X, p.Y)
}

// Formatter returns Format bound to w.
func Formatter(w io.Writer) func(Point) {
	return func(p Point) { Format(w, p) }
}

// Sample returns a new copy of the nine-point demo dataset.
func Sample() []Point {
	return []Point{
		{-4, -8},
		{-2, 9},
		{-1, -8},
		{0, -7},
		{1, 1},
		{2, 3},
		{2, 3},
		{2, -2},
		{4, -1},
	}
}

// Empty returns a new, empty dataset.
func Empty() []Point {
	return []Point{}
}

// XOf returns p.X. It is the projection used by the sum and join pipelines.
func XOf(p Point) int {
	return p.X
}
