// Package transform provides operators that reshape a stream: duplicate
// suppression and collection into slices or strings.
package transform

import (
	"context"
	"strings"

	"github.com/lguimbarda/lambda-basics/flow/core"
)

// Distinct creates a Transformer that only emits values that haven't been seen before.
// The first occurrence wins and order is preserved. Equality is Go value
// equality, so T must be comparable.
func Distinct[T comparable]() core.Transformer[T, T] {
	return DistinctBy(func(v T) T { return v })
}

// DistinctBy creates a Transformer that only emits items whose key (derived
// by keyFn) hasn't been seen before.
func DistinctBy[T any, K comparable](keyFn func(T) K) core.Transformer[T, T] {
	return core.Transmit(func(ctx context.Context, in <-chan core.Result[T]) <-chan core.Result[T] {
		out := make(chan core.Result[T])
		go func() {
			defer close(out)

			seen := make(map[K]struct{})
			for res := range in {
				if res.IsValue() {
					key := keyFn(res.Value())
					if _, exists := seen[key]; exists {
						continue
					}
					seen[key] = struct{}{}
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

// ToSlice creates a Transformer that gathers every value into one newly
// allocated slice and emits it when the input completes. An empty input
// emits an empty, non-nil slice.
func ToSlice[T any]() core.Transformer[T, []T] {
	return core.Transmit(func(ctx context.Context, in <-chan core.Result[T]) <-chan core.Result[[]T] {
		out := make(chan core.Result[[]T], 1)
		go func() {
			defer close(out)

			items := make([]T, 0)
			for res := range in {
				if res.IsError() {
					select {
					case <-ctx.Done():
						return
					case out <- core.Err[[]T](res.Error()):
					}
					continue
				}
				if res.IsValue() {
					items = append(items, res.Value())
				}
			}
			select {
			case <-ctx.Done():
			case out <- core.Ok(items):
			}
		}()
		return out
	})
}

// Join creates a Transformer that concatenates all strings with sep between
// them and emits exactly one string: "" for an empty input and never a
// trailing separator.
func Join(sep string) core.Transformer[string, string] {
	return core.Transmit(func(ctx context.Context, in <-chan core.Result[string]) <-chan core.Result[string] {
		out := make(chan core.Result[string], 1)
		go func() {
			defer close(out)

			var sb strings.Builder
			first := true
			for res := range in {
				if res.IsError() {
					select {
					case <-ctx.Done():
						return
					case out <- res:
					}
					continue
				}
				if !res.IsValue() {
					continue
				}
				if !first {
					sb.WriteString(sep)
				}
				sb.WriteString(res.Value())
				first = false
			}
			select {
			case <-ctx.Done():
			case out <- core.Ok(sb.String()):
			}
		}()
		return out
	})
}
