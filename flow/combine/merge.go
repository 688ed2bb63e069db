// Package combine provides operators that join several streams into one.
package combine

import (
	"context"

	"github.com/lguimbarda/lambda-basics/flow/core"
)

// Concat concatenates streams sequentially into a new stream.
// Each stream is emitted only after the previous one completes, so the
// output preserves the order of every input. None of the inputs is modified.
func Concat[T any](streams ...core.Stream[T]) core.Stream[T] {
	return core.Emit(func(ctx context.Context) <-chan core.Result[T] {
		out := make(chan core.Result[T])

		go func() {
			defer close(out)

			for _, stream := range streams {
				for res := range stream.Emit(ctx) {
					select {
					case <-ctx.Done():
						return
					case out <- res:
					}
				}
			}
		}()

		return out
	})
}
