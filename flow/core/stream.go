// Package core defines the core abstractions for lazy data flow processing:
// streams, transformers, emitters, results and terminal operations.
// Nothing runs until a terminal (Slice, First, Run, ForEach, Optional)
// asks a Stream to emit.
//
// NOTE: this package should have no dependencies outside the standard
// library, including other flow packages.
package core

import (
	"context"
	"iter"
)

// Stream represents a lazy flow of data. Calling Emit starts the work
// that produces the stream's values; until then a Stream is only a
// description of a computation and may be emitted again.
// Stream answers the question: "What operations will produce the stream's data?".
type Stream[OUT any] interface {
	Emit(context.Context) <-chan Result[OUT]

	Collect(context.Context) []Result[OUT]
	All(context.Context) iter.Seq[Result[OUT]]
}

// Collect drains the stream and returns every Result, errors included.
func Collect[OUT any](ctx context.Context, stream Stream[OUT]) []Result[OUT] {
	var results []Result[OUT]
	for res := range stream.Emit(ctx) {
		results = append(results, res)
	}
	return results
}

// All adapts a stream to a range-over-func iterator. Breaking out of the
// loop cancels the underlying emission.
func All[OUT any](ctx context.Context, stream Stream[OUT]) iter.Seq[Result[OUT]] {
	return func(yield func(Result[OUT]) bool) {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		for res := range stream.Emit(ctx) {
			if !yield(res) {
				return
			}
		}
	}
}

// Transformer represents a data processing unit that transforms
// a Stream of type IN into a Stream of type OUT. Transformers can
// be composed to build pipelines.
// They answer the question: "What operations are being applied to the stream's data?".
type Transformer[IN, OUT any] interface {
	Apply(context.Context, Stream[IN]) Stream[OUT]
}
