// Package flow provides a small lazy stream-processing framework: build a
// pipeline from a source, transformers and a terminal, and nothing runs
// until the terminal pulls values through it.
//
// This package is the primary user-facing API. The flow/core subpackage
// contains the underlying abstractions; operator families live in
// flow/aggregate, flow/filter, flow/transform, flow/combine and flow/observe.
package flow

import (
	"context"
	"iter"

	"github.com/lguimbarda/lambda-basics/flow/core"
)

// Type aliases for core stream abstractions.
// These allow users to work with the framework without importing core directly.
type (
	// Result represents the outcome of processing an item in the stream.
	Result[T any] = core.Result[T]

	// Stream represents a lazy flow of data.
	Stream[T any] = core.Stream[T]

	// Transformer transforms a Stream of type IN into a Stream of type OUT.
	Transformer[IN, OUT any] = core.Transformer[IN, OUT]

	// Emitter produces a channel of Results and implements Stream.
	Emitter[T any] = core.Emitter[T]

	// Transmitter transforms one channel of Results into another and implements Transformer.
	Transmitter[IN, OUT any] = core.Transmitter[IN, OUT]

	// Mapper transforms individual items (1:1 cardinality) and implements Transformer.
	Mapper[IN, OUT any] = core.Mapper[IN, OUT]

	// FlatMapper transforms individual items (1:N cardinality) and implements Transformer.
	FlatMapper[IN, OUT any] = core.FlatMapper[IN, OUT]

	// Option is a present-or-absent value returned by Optional.
	Option[T any] = core.Option[T]
)

// ErrEndOfStream is the sentinel error indicating normal stream termination.
var ErrEndOfStream = core.ErrEndOfStream

// ErrEmptyStream is returned by First on a stream without values.
var ErrEmptyStream = core.ErrEmptyStream

// Ok creates a successful Result containing the given value.
func Ok[T any](value T) Result[T] {
	return core.Ok(value)
}

// Err creates an error Result.
func Err[T any](err error) Result[T] {
	return core.Err[T](err)
}

// Some returns a present Option.
func Some[T any](v T) Option[T] {
	return core.Some(v)
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return core.None[T]()
}

// Map creates a Mapper from a simple transformation function.
func Map[IN, OUT any](mapFunc func(IN) (OUT, error)) Mapper[IN, OUT] {
	return core.Map(mapFunc)
}

// FlatMap creates a FlatMapper from a function returning a slice.
func FlatMap[IN, OUT any](flatMapFunc func(IN) ([]OUT, error)) FlatMapper[IN, OUT] {
	return core.FlatMap(flatMapFunc)
}

// Terminal operations.

// Slice collects all stream values into a new slice.
func Slice[T any](ctx context.Context, in Stream[T]) ([]T, error) {
	return core.Slice(ctx, in)
}

// First returns the first value from the stream.
func First[T any](ctx context.Context, in Stream[T]) (T, error) {
	return core.First(ctx, in)
}

// Optional returns the first value as an Option, None on an empty stream.
func Optional[T any](ctx context.Context, in Stream[T]) (Option[T], error) {
	return core.Optional(ctx, in)
}

// Run executes the stream for side effects only.
func Run[T any](ctx context.Context, in Stream[T]) error {
	return core.Run(ctx, in)
}

// ForEach calls fn for each value in order.
func ForEach[T any](ctx context.Context, in Stream[T], fn func(T)) error {
	return core.ForEach(ctx, in, fn)
}

// Collect gathers all Results (including errors) into a slice.
func Collect[T any](ctx context.Context, stream Stream[T]) []Result[T] {
	return core.Collect(ctx, stream)
}

// All returns an iterator over all Results in the stream.
func All[T any](ctx context.Context, stream Stream[T]) iter.Seq[Result[T]] {
	return core.All(ctx, stream)
}

// Emit creates an Emitter from a channel-producing function.
func Emit[T any](emitter func(context.Context) <-chan Result[T]) Emitter[T] {
	return core.Emit(emitter)
}

// Transmit creates a Transmitter from a channel transformation function.
func Transmit[IN, OUT any](transmitter func(context.Context, <-chan Result[IN]) <-chan Result[OUT]) Transmitter[IN, OUT] {
	return core.Transmit(transmitter)
}
