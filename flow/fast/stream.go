package fast

import (
	"context"

	"github.com/lguimbarda/lambda-basics/flow/core"
)

// DefaultBufferSize matches core.DefaultBufferSize for fair comparisons.
const DefaultBufferSize = core.DefaultBufferSize

// Stream represents a minimal stream of values without Result wrapping.
type Stream[T any] interface {
	Emit(context.Context) <-chan T
}

// Transformer converts a Stream[IN] to a Stream[OUT].
type Transformer[IN, OUT any] interface {
	Apply(context.Context, Stream[IN]) Stream[OUT]
}

// Emitter is a function that produces a channel of values.
type Emitter[T any] func(context.Context) <-chan T

// Emit implements Stream.
func (e Emitter[T]) Emit(ctx context.Context) <-chan T {
	return e(ctx)
}

// FromSlice creates a stream from a slice.
func FromSlice[T any](data []T) Stream[T] {
	return Emitter[T](func(ctx context.Context) <-chan T {
		out := make(chan T, DefaultBufferSize)
		go func() {
			defer close(out)
			for _, v := range data {
				select {
				case <-ctx.Done():
					return
				case out <- v:
				}
			}
		}()
		return out
	})
}

// pipe runs fn on a goroutine that owns out and closes it when fn returns.
func pipe[T any](fn func(emit func(T) bool)) Stream[T] {
	return Emitter[T](func(ctx context.Context) <-chan T {
		out := make(chan T, DefaultBufferSize)
		go func() {
			defer close(out)
			fn(func(v T) bool {
				select {
				case <-ctx.Done():
					return false
				case out <- v:
					return true
				}
			})
		}()
		return out
	})
}
