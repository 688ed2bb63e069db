// Package aggregate provides operators that collapse a stream into a single
// value: reductions with and without an identity element, sums and counts.
package aggregate

import (
	"context"

	"github.com/lguimbarda/lambda-basics/flow/core"
)

// Numeric is a constraint for numeric types that support addition.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// accumulate drains in, forwarding errors and sentinels converted to R,
// feeding values to step, and emitting finish's result once in closes.
// finish reports false to emit nothing.
func accumulate[T, R any](
	ctx context.Context,
	in <-chan core.Result[T],
	step func(T),
	finish func() (R, bool),
) <-chan core.Result[R] {
	out := make(chan core.Result[R])
	go func() {
		defer close(out)
		for res := range in {
			var fwd core.Result[R]
			switch {
			case res.IsError():
				fwd = core.Err[R](res.Error())
			case res.IsSentinel():
				fwd = core.Sentinel[R](res.Sentinel())
			default:
				step(res.Value())
				continue
			}
			select {
			case <-ctx.Done():
				return
			case out <- fwd:
			}
		}

		if v, ok := finish(); ok {
			select {
			case <-ctx.Done():
			case out <- core.Ok(v):
			}
		}
	}()
	return out
}

// Reduce creates a Transformer that combines all values with reducer and
// no identity element: the first value seeds the accumulator. An empty
// stream emits nothing, so pair it with core.Optional to get an absent
// result instead of a made-up zero.
func Reduce[T any](reducer func(acc, item T) T) core.Transformer[T, T] {
	return core.Transmit(func(ctx context.Context, in <-chan core.Result[T]) <-chan core.Result[T] {
		var acc T
		hasAcc := false
		return accumulate(ctx, in,
			func(v T) {
				if !hasAcc {
					acc, hasAcc = v, true
					return
				}
				acc = reducer(acc, v)
			},
			func() (T, bool) { return acc, hasAcc },
		)
	})
}

// Fold creates a Transformer that folds all values into initial using folder.
// Fold always emits exactly one value; on an empty stream that value is initial.
func Fold[T, R any](initial R, folder func(acc R, item T) R) core.Transformer[T, R] {
	return core.Transmit(func(ctx context.Context, in <-chan core.Result[T]) <-chan core.Result[R] {
		acc := initial
		return accumulate(ctx, in,
			func(v T) { acc = folder(acc, v) },
			func() (R, bool) { return acc, true },
		)
	})
}

// Sum creates a Transformer that emits the sum of all values, 0 for an
// empty stream.
func Sum[T Numeric]() core.Transformer[T, T] {
	return Fold(T(0), func(acc, v T) T { return acc + v })
}

// Count creates a Transformer that emits the number of values in the stream.
func Count[T any]() core.Transformer[T, int] {
	return Fold(0, func(acc int, _ T) int { return acc + 1 })
}
