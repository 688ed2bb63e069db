package fast

import "context"

// Mapper is a simple transformation function operating on bare values.
// Panics are NOT recovered.
type Mapper[IN, OUT any] func(IN) OUT

// Map creates a Mapper from a function.
func Map[IN, OUT any](fn func(IN) OUT) Mapper[IN, OUT] {
	return fn
}

// Apply transforms a stream using this Mapper.
func (m Mapper[IN, OUT]) Apply(ctx context.Context, s Stream[IN]) Stream[OUT] {
	return pipe(func(emit func(OUT) bool) {
		for v := range s.Emit(ctx) {
			if !emit(m(v)) {
				return
			}
		}
	})
}

// Predicate is a filter function.
type Predicate[T any] func(T) bool

// Filter creates a filtering transformer.
func Filter[T any](pred Predicate[T]) Transformer[T, T] {
	return pred
}

// Apply keeps the values for which the predicate holds.
func (p Predicate[T]) Apply(ctx context.Context, s Stream[T]) Stream[T] {
	return pipe(func(emit func(T) bool) {
		for v := range s.Emit(ctx) {
			if p(v) && !emit(v) {
				return
			}
		}
	})
}
