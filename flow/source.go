package flow

import (
	"context"
	"iter"
)

// FromSlice creates a Stream that emits each element of items in order.
// The slice is read at emission time, so every Emit sees its current contents.
func FromSlice[T any](items []T) Stream[T] {
	const maxBufferSize = 512

	return Emit(func(ctx context.Context) <-chan Result[T] {
		// Small slices fit in a fully buffered channel and need no goroutine.
		if len(items) <= maxBufferSize {
			out := make(chan Result[T], len(items))
			for _, item := range items {
				out <- Ok(item)
			}
			close(out)
			return out
		}

		out := make(chan Result[T], maxBufferSize)
		go func() {
			defer close(out)
			for _, item := range items {
				select {
				case <-ctx.Done():
					return
				case out <- Ok(item):
				}
			}
		}()
		return out
	})
}

// FromIter creates a Stream from an iterator sequence. The sequence runs
// on its own goroutine and is stopped when the context is cancelled.
func FromIter[T any](seq iter.Seq[T]) Stream[T] {
	return Emit(func(ctx context.Context) <-chan Result[T] {
		out := make(chan Result[T])
		go func() {
			defer close(out)
			for item := range seq {
				select {
				case <-ctx.Done():
					return
				case out <- Ok(item):
				}
			}
		}()
		return out
	})
}

// Empty creates a Stream that emits no values and completes immediately.
func Empty[T any]() Stream[T] {
	return Emit(func(context.Context) <-chan Result[T] {
		out := make(chan Result[T])
		close(out)
		return out
	})
}

// Once creates a Stream that emits a single value and then completes.
func Once[T any](value T) Stream[T] {
	return FromSlice([]T{value})
}

// Range creates a Stream that emits integers from start (inclusive) to end (exclusive).
func Range(start, end int) Stream[int] {
	return Emit(func(ctx context.Context) <-chan Result[int] {
		out := make(chan Result[int])
		go func() {
			defer close(out)
			for i := start; i < end; i++ {
				select {
				case <-ctx.Done():
					return
				case out <- Ok(i):
				}
			}
		}()
		return out
	})
}
