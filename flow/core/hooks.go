package core

import (
	"context"
)

// Hooks holds typed observation callbacks for the values a stage emits.
// All fields are optional. Hooks run synchronously on the stage's
// goroutine, so they should be fast.
type Hooks[T any] struct {
	OnStart    func()      // stage begins emitting
	OnValue    func(T)     // value emitted
	OnError    func(error) // error emitted
	OnComplete func()      // stage finished, also on cancellation
}

// hooksKey is unexported to prevent collisions with user context keys.
type hooksKey[T any] struct{}

// WithHooks attaches typed hooks to the context. Stages whose output type
// is T invoke them. Multiple calls compose in FIFO order.
//
// Example:
//
//	ctx := core.WithHooks(ctx, core.Hooks[int]{
//	    OnValue: func(v int) { log.Printf("value: %d", v) },
//	})
func WithHooks[T any](ctx context.Context, hooks Hooks[T]) context.Context {
	existing := hookSets[T](ctx)
	sets := make([]Hooks[T], len(existing), len(existing)+1)
	copy(sets, existing)
	return context.WithValue(ctx, hooksKey[T]{}, append(sets, hooks))
}

func hookSets[T any](ctx context.Context) []Hooks[T] {
	sets, _ := ctx.Value(hooksKey[T]{}).([]Hooks[T])
	return sets
}

// hookInvoker is looked up once per emission so that stages without
// hooks pay only a nil check per item.
type hookInvoker[T any] struct {
	sets []Hooks[T]
}

func newHookInvoker[T any](ctx context.Context) hookInvoker[T] {
	return hookInvoker[T]{sets: hookSets[T](ctx)}
}

func (h hookInvoker[T]) start() {
	for _, s := range h.sets {
		if s.OnStart != nil {
			s.OnStart()
		}
	}
}

func (h hookInvoker[T]) result(res Result[T]) {
	for _, s := range h.sets {
		switch {
		case res.IsValue() && s.OnValue != nil:
			s.OnValue(res.Value())
		case res.IsError() && s.OnError != nil:
			s.OnError(res.Error())
		}
	}
}

func (h hookInvoker[T]) complete() {
	for _, s := range h.sets {
		if s.OnComplete != nil {
			s.OnComplete()
		}
	}
}
