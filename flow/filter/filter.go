// Package filter provides operators that select which stream items
// continue downstream.
package filter

import (
	"context"

	"github.com/lguimbarda/lambda-basics/flow/core"
)

// Where creates a Transformer that only passes through items matching the predicate.
// Items that don't match are silently dropped. Errors and sentinels pass through unchanged.
func Where[T any](predicate func(T) bool) core.Transformer[T, T] {
	return core.Transmit(func(ctx context.Context, in <-chan core.Result[T]) <-chan core.Result[T] {
		out := make(chan core.Result[T])
		go func() {
			defer close(out)
			for res := range in {
				if res.IsValue() && !predicate(res.Value()) {
					continue
				}
				select {
				case <-ctx.Done():
					return
				case out <- res:
				}
			}
		}()
		return out
	})
}

// Exclude creates a Transformer that drops items matching the predicate.
// This is the inverse of Where.
func Exclude[T any](predicate func(T) bool) core.Transformer[T, T] {
	return Where(func(v T) bool { return !predicate(v) })
}

// MapWhere filters and maps in a single pass. fn returns (value, true) to
// keep the mapped value or (_, false) to drop the item.
func MapWhere[IN, OUT any](fn func(IN) (OUT, bool)) core.Transformer[IN, OUT] {
	return core.Transmit(func(ctx context.Context, in <-chan core.Result[IN]) <-chan core.Result[OUT] {
		out := make(chan core.Result[OUT])
		go func() {
			defer close(out)
			for res := range in {
				var next core.Result[OUT]
				switch {
				case res.IsError():
					next = core.Err[OUT](res.Error())
				case res.IsSentinel():
					next = core.Sentinel[OUT](res.Sentinel())
				default:
					mapped, ok := fn(res.Value())
					if !ok {
						continue
					}
					next = core.Ok(mapped)
				}
				select {
				case <-ctx.Done():
					return
				case out <- next:
				}
			}
		}()
		return out
	})
}
