package observe

import (
	"context"
	"sync/atomic"

	"github.com/lguimbarda/lambda-basics/flow/core"
)

// These helpers register typed hooks, so an observer only sees stages
// whose output type matches T:
//
//	ctx := observe.WithValueHook(ctx, func(x int) { fmt.Print(x, " ") })
//	xs := flow.Map(pointX).Apply(ctx, points) // hook fires for every x

// WithValueHook attaches a value observation hook for type T to the context.
func WithValueHook[T any](ctx context.Context, callback func(T)) context.Context {
	return core.WithHooks(ctx, core.Hooks[T]{
		OnValue: callback,
	})
}

// WithErrorHook attaches an error observation hook for type T to the context.
func WithErrorHook[T any](ctx context.Context, callback func(error)) context.Context {
	return core.WithHooks(ctx, core.Hooks[T]{
		OnError: callback,
	})
}

// Counter provides thread-safe counting of values and errors.
type Counter struct {
	values atomic.Int64
	errors atomic.Int64
}

// Values returns the count of values processed.
func (c *Counter) Values() int64 { return c.values.Load() }

// Errors returns the count of errors encountered.
func (c *Counter) Errors() int64 { return c.errors.Load() }

// WithCounter attaches counting hooks for type T and returns the counter for querying.
func WithCounter[T any](ctx context.Context) (context.Context, *Counter) {
	counter := &Counter{}
	ctx = core.WithHooks(ctx, core.Hooks[T]{
		OnValue: func(T) { counter.values.Add(1) },
		OnError: func(error) { counter.errors.Add(1) },
	})
	return ctx, counter
}
