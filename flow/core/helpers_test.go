package core

import "context"

// fromSlice is a minimal source so core tests do not depend on package flow.
func fromSlice[T any](items []T) Stream[T] {
	return Emit(func(ctx context.Context) <-chan Result[T] {
		out := make(chan Result[T], len(items))
		for _, item := range items {
			out <- Ok(item)
		}
		close(out)
		return out
	})
}

// fromResults emits the given results verbatim.
func fromResults[T any](results ...Result[T]) Stream[T] {
	return Emit(func(ctx context.Context) <-chan Result[T] {
		out := make(chan Result[T], len(results))
		for _, res := range results {
			out <- res
		}
		close(out)
		return out
	})
}
