package perf

import (
	"context"

	linq "github.com/ahmetb/go-linq/v3"
	"github.com/destel/rill"
	"github.com/samber/lo"

	"github.com/lguimbarda/lambda-basics/flow"
	"github.com/lguimbarda/lambda-basics/flow/aggregate"
	"github.com/lguimbarda/lambda-basics/flow/fast"
	"github.com/lguimbarda/lambda-basics/flow/filter"
	"github.com/lguimbarda/lambda-basics/flow/seq"
	"github.com/lguimbarda/lambda-basics/internal/points"
)

// Comparison computes the sum of x over the points with x > 0.
type Comparison struct {
	Label string
	Sum   func(context.Context, []points.Point) (int, error)
}

// Comparisons returns every implementation of the positive-x sum, the
// library under test and its alternatives.
func Comparisons() []Comparison {
	return []Comparison{
		{Label: "raw loop", Sum: sumLoop},
		{Label: "flow pipeline", Sum: sumFlow},
		{Label: "fast pipeline", Sum: sumFast},
		{Label: "seq pipeline", Sum: sumSeq},
		{Label: "samber/lo", Sum: sumLo},
		{Label: "go-linq", Sum: sumLinq},
		{Label: "rill", Sum: sumRill},
	}
}

// RegisterComparisons registers one case per comparison over pts. A
// comparison that returns an error panics inside its case, so the
// runner's failure policy applies.
func RegisterComparisons(r *Runner, pts []points.Point) {
	for _, c := range Comparisons() {
		sum := c.Sum
		r.Register(c.Label, func() {
			if _, err := sum(context.Background(), pts); err != nil {
				panic(err)
			}
		})
	}
}

func isPositive(p points.Point) bool { return p.X > 0 }

func sumLoop(_ context.Context, pts []points.Point) (int, error) {
	sum := 0
	for _, p := range pts {
		if p.X > 0 {
			sum += p.X
		}
	}
	return sum, nil
}

func sumFlow(ctx context.Context, pts []points.Point) (int, error) {
	xs := flow.Map(func(p points.Point) (int, error) {
		return p.X, nil
	}).Apply(ctx, filter.Where(isPositive).Apply(ctx, flow.FromSlice(pts)))

	return flow.First(ctx, aggregate.Sum[int]().Apply(ctx, xs))
}

func sumFast(ctx context.Context, pts []points.Point) (int, error) {
	positive := fast.Filter[points.Point](isPositive).Apply(ctx, fast.FromSlice(pts))
	xs := fast.Map[points.Point, int](points.XOf).Apply(ctx, positive)
	return fast.Fold(ctx, xs, 0, func(acc, x int) int { return acc + x }), nil
}

func sumSeq(_ context.Context, pts []points.Point) (int, error) {
	return seq.Sum(seq.Map(seq.Filter(seq.FromSlice(pts), isPositive), points.XOf)), nil
}

func sumLo(_ context.Context, pts []points.Point) (int, error) {
	positive := lo.Filter(pts, func(p points.Point, _ int) bool {
		return isPositive(p)
	})
	return lo.Reduce(positive, func(acc int, p points.Point, _ int) int {
		return acc + p.X
	}, 0), nil
}

func sumLinq(_ context.Context, pts []points.Point) (int, error) {
	sum := linq.From(pts).
		WhereT(func(p points.Point) bool { return isPositive(p) }).
		SelectT(func(p points.Point) int { return p.X }).
		SumInts()
	return int(sum), nil
}

func sumRill(_ context.Context, pts []points.Point) (int, error) {
	stream := rill.FromSlice(pts, nil)
	positive := rill.Filter(stream, 1, func(p points.Point) (bool, error) {
		return isPositive(p), nil
	})
	xs := rill.Map(positive, 1, func(p points.Point) (int, error) {
		return p.X, nil
	})
	sum, ok, err := rill.Reduce(xs, 1, func(a, b int) (int, error) {
		return a + b, nil
	})
	if err != nil || !ok {
		return 0, err
	}
	return sum, nil
}
