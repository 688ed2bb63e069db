package fast

import "context"

// Fold drains the stream into initial using fn.
func Fold[T, R any](ctx context.Context, s Stream[T], initial R, fn func(R, T) R) R {
	acc := initial
	for v := range s.Emit(ctx) {
		acc = fn(acc, v)
	}
	return acc
}

// Slice collects all stream values into a slice.
func Slice[T any](ctx context.Context, s Stream[T]) []T {
	var result []T
	for v := range s.Emit(ctx) {
		result = append(result, v)
	}
	return result
}

// ForEach applies a function to each element.
func ForEach[T any](ctx context.Context, s Stream[T], fn func(T)) {
	for v := range s.Emit(ctx) {
		fn(v)
	}
}
