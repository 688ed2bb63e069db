package flow

import (
	"context"
)

// Through chains two transformers together, creating a new transformer
// that first applies t1 and then t2 to the stream.
func Through[IN, MID, OUT any](t1 Transformer[IN, MID], t2 Transformer[MID, OUT]) Transformer[IN, OUT] {
	return Transmit(func(ctx context.Context, in <-chan Result[IN]) <-chan Result[OUT] {
		source := Emit(func(context.Context) <-chan Result[IN] { return in })
		return t2.Apply(ctx, t1.Apply(ctx, source)).Emit(ctx)
	})
}

// Chain composes same-typed transformers into one, applied left to right.
// With no transformers it is the identity.
func Chain[T any](transformers ...Transformer[T, T]) Transformer[T, T] {
	return Transmit(func(ctx context.Context, in <-chan Result[T]) <-chan Result[T] {
		var result Stream[T] = Emit(func(context.Context) <-chan Result[T] { return in })
		for _, t := range transformers {
			result = t.Apply(ctx, result)
		}
		return result.Emit(ctx)
	})
}

// Pipe applies a series of same-typed transformers to a stream, left to right.
func Pipe[T any](ctx context.Context, source Stream[T], transformers ...Transformer[T, T]) Stream[T] {
	result := source
	for _, t := range transformers {
		result = t.Apply(ctx, result)
	}
	return result
}

// Apply is transformer.Apply(ctx, stream) written left-to-right.
func Apply[IN, OUT any](ctx context.Context, stream Stream[IN], transformer Transformer[IN, OUT]) Stream[OUT] {
	return transformer.Apply(ctx, stream)
}
