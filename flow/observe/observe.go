// Package observe provides operators and hooks for watching a stream
// without changing it: tracing values, counting them, and exporting
// counts to OpenTelemetry.
package observe

import (
	"context"

	"github.com/lguimbarda/lambda-basics/flow/core"
)

// Peek creates a Transformer that calls fn with every value on its way
// downstream. Errors and sentinels pass through without calling fn.
// fn runs on the stage's goroutine before the value is forwarded, so all
// calls have happened by the time a downstream reduction emits.
func Peek[T any](fn func(T)) core.Transformer[T, T] {
	return Spy(func(res core.Result[T]) {
		if res.IsValue() {
			fn(res.Value())
		}
	})
}

// Spy creates a Transformer that allows inspection of all items without modification.
// Unlike Peek, Spy sees the full Result including errors and sentinels.
func Spy[T any](inspector func(core.Result[T])) core.Transformer[T, T] {
	return core.Transmit(func(ctx context.Context, in <-chan core.Result[T]) <-chan core.Result[T] {
		out := make(chan core.Result[T])
		go func() {
			defer close(out)
			for res := range in {
				if inspector != nil {
					inspector(res)
				}
				select {
				case <-ctx.Done():
					return
				case out <- res:
				}
			}
		}()
		return out
	})
}
