package core

import (
	"context"
)

// DefaultBufferSize is the default buffer size for internal channels.
// A small buffer reduces goroutine synchronization overhead without
// consuming excessive memory.
const DefaultBufferSize = 64

// TransformConfig holds configuration options for transform operations.
type TransformConfig struct {
	BufferSize int
}

// TransformOption is a functional option for configuring transforms.
type TransformOption func(*TransformConfig)

// WithBufferSize sets the buffer size for the transform's output channel.
// Use 0 for unbuffered (synchronous) hand-off.
func WithBufferSize(size int) TransformOption {
	return func(c *TransformConfig) {
		c.BufferSize = size
	}
}

func applyOptions(opts ...TransformOption) TransformConfig {
	cfg := TransformConfig{BufferSize: DefaultBufferSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Mapper maps a Result of type IN to a Result of type OUT. It keeps the
// cardinality of the flow: one input item produces one output item.
// It answers the question: "What is done to each item in the flow?"
type Mapper[IN, OUT any] func(Result[IN]) (Result[OUT], error)

// Map creates a Mapper from a transformation function. Input errors pass
// through, a returned error becomes an error Result and a panic becomes
// an ErrPanic error Result.
func Map[IN, OUT any](mapFunc func(IN) (OUT, error)) Mapper[IN, OUT] {
	return func(res Result[IN]) (out Result[OUT], err error) {
		defer func() {
			if r := recover(); r != nil {
				out, err = Err[OUT](NewPanicError(r)), nil
			}
		}()

		switch {
		case res.IsError():
			return Err[OUT](res.Error()), nil
		case res.IsSentinel():
			return Sentinel[OUT](res.Sentinel()), nil
		}
		mapped, err := mapFunc(res.Value())
		if err != nil {
			return Err[OUT](err), nil
		}
		return Ok(mapped), nil
	}
}

// Apply transforms a stream using this Mapper with default configuration.
func (m Mapper[IN, OUT]) Apply(ctx context.Context, s Stream[IN]) Stream[OUT] {
	return m.ApplyWith(ctx, s)
}

// ApplyWith transforms a stream using this Mapper with custom options.
// Hooks registered for OUT in the emitting context observe every output.
func (m Mapper[IN, OUT]) ApplyWith(_ context.Context, s Stream[IN], opts ...TransformOption) Stream[OUT] {
	cfg := applyOptions(opts...)
	return Emit(func(ctx context.Context) <-chan Result[OUT] {
		out := make(chan Result[OUT], cfg.BufferSize)
		hooks := newHookInvoker[OUT](ctx)
		go func() {
			defer close(out)
			hooks.start()
			defer hooks.complete()

			for in := range s.Emit(ctx) {
				res, err := m(in)
				if err != nil {
					res = Err[OUT](err)
				}
				hooks.result(res)
				if !send(ctx, out, res) {
					return
				}
			}
		}()
		return out
	})
}

// FlatMapper maps one Result of type IN to zero or more Results of type OUT.
// It answers the question: "How are items in the flow reduced or expanded?"
type FlatMapper[IN, OUT any] func(Result[IN]) ([]Result[OUT], error)

// FlatMap creates a FlatMapper from a function returning a slice.
func FlatMap[IN, OUT any](flatMapFunc func(IN) ([]OUT, error)) FlatMapper[IN, OUT] {
	return func(res Result[IN]) (outs []Result[OUT], err error) {
		defer func() {
			if r := recover(); r != nil {
				outs, err = []Result[OUT]{Err[OUT](NewPanicError(r))}, nil
			}
		}()

		switch {
		case res.IsError():
			return []Result[OUT]{Err[OUT](res.Error())}, nil
		case res.IsSentinel():
			return []Result[OUT]{Sentinel[OUT](res.Sentinel())}, nil
		}
		values, err := flatMapFunc(res.Value())
		if err != nil {
			return []Result[OUT]{Err[OUT](err)}, nil
		}
		results := make([]Result[OUT], len(values))
		for i, v := range values {
			results[i] = Ok(v)
		}
		return results, nil
	}
}

// Apply transforms a stream using this FlatMapper with default configuration.
func (fm FlatMapper[IN, OUT]) Apply(ctx context.Context, s Stream[IN]) Stream[OUT] {
	return fm.ApplyWith(ctx, s)
}

// ApplyWith transforms a stream using this FlatMapper with custom options.
func (fm FlatMapper[IN, OUT]) ApplyWith(_ context.Context, s Stream[IN], opts ...TransformOption) Stream[OUT] {
	cfg := applyOptions(opts...)
	return Emit(func(ctx context.Context) <-chan Result[OUT] {
		out := make(chan Result[OUT], cfg.BufferSize)
		go func() {
			defer close(out)
			for in := range s.Emit(ctx) {
				results, err := fm(in)
				if err != nil {
					results = []Result[OUT]{Err[OUT](err)}
				}
				for _, res := range results {
					if !send(ctx, out, res) {
						return
					}
				}
			}
		}()
		return out
	})
}
