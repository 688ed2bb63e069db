package core

import (
	"context"
	"errors"
)

// Terminal functions are sinks that consume the stream and produce a final
// result: a slice, the first value, an Option, or just side effects.
// Each one owns a cancellable context so the pipeline is torn down as soon
// as the terminal returns.

// ErrEmptyStream is returned by First when the stream produced no value.
var ErrEmptyStream = errors.New("stream is empty")

// Slice collects all stream values into a newly allocated slice.
// Sentinels are skipped; the first error aborts collection.
func Slice[OUT any](ctx context.Context, in Stream[OUT]) ([]OUT, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var result []OUT
	for res := range in.Emit(ctx) {
		switch {
		case res.IsError():
			return nil, res.Error()
		case res.IsValue():
			result = append(result, res.Value())
		}
	}
	return result, nil
}

// First returns the first value from the stream, or ErrEmptyStream.
func First[OUT any](ctx context.Context, in Stream[OUT]) (OUT, error) {
	opt, err := Optional(ctx, in)
	if err != nil {
		return *new(OUT), err
	}
	v, ok := opt.Get()
	if !ok {
		return v, ErrEmptyStream
	}
	return v, nil
}

// Optional returns the first value from the stream as a present Option,
// or None if the stream completes without a value.
func Optional[OUT any](ctx context.Context, in Stream[OUT]) (Option[OUT], error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for res := range in.Emit(ctx) {
		switch {
		case res.IsError():
			return None[OUT](), res.Error()
		case res.IsValue():
			return Some(res.Value()), nil
		}
	}
	return None[OUT](), nil
}

// Run executes the stream for side effects only.
func Run[OUT any](ctx context.Context, in Stream[OUT]) error {
	return ForEach(ctx, in, func(OUT) {})
}

// ForEach calls fn for every value in stream order. The first error
// result stops the stream and is returned.
func ForEach[OUT any](ctx context.Context, in Stream[OUT], fn func(OUT)) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for res := range in.Emit(ctx) {
		switch {
		case res.IsError():
			return res.Error()
		case res.IsValue():
			fn(res.Value())
		}
	}
	return ctx.Err()
}
