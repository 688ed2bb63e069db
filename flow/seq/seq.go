// Package seq provides synchronous lazy operators over iter.Seq.
//
// Unlike flow streams, nothing here starts a goroutine: every operator
// pulls from its source on the caller's goroutine, one value at a time.
// That makes seq pipelines cheap and their side effects strictly ordered,
// which matters when a source guards its own traversal (see collection.List).
package seq

import (
	"iter"
	"strings"

	"github.com/lguimbarda/lambda-basics/flow/core"
)

// FromSlice yields each element of items in order.
func FromSlice[T any](items []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}

// Filter yields only the values of s that satisfy predicate.
func Filter[T any](s iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if predicate(v) && !yield(v) {
				return
			}
		}
	}
}

// Map yields fn(v) for every value of s.
func Map[IN, OUT any](s iter.Seq[IN], fn func(IN) OUT) iter.Seq[OUT] {
	return func(yield func(OUT) bool) {
		for v := range s {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Concat yields every value of each sequence in turn.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, s := range seqs {
			for v := range s {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Distinct yields the first occurrence of every value, preserving order.
func Distinct[T comparable](s iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[T]struct{})
		for v := range s {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}

// Fold combines all values of s starting from identity.
func Fold[T, A any](s iter.Seq[T], identity A, fn func(A, T) A) A {
	acc := identity
	for v := range s {
		acc = fn(acc, v)
	}
	return acc
}

// Reduce combines all values of s using the first value as the seed.
// It returns None for an empty sequence.
func Reduce[T any](s iter.Seq[T], fn func(T, T) T) core.Option[T] {
	var (
		acc     T
		present bool
	)
	for v := range s {
		if !present {
			acc, present = v, true
			continue
		}
		acc = fn(acc, v)
	}
	if !present {
		return core.None[T]()
	}
	return core.Some(acc)
}

// Number is the set of types Sum accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum adds all values of s. An empty sequence sums to zero.
func Sum[T Number](s iter.Seq[T]) T {
	return Fold(s, T(0), func(acc, v T) T { return acc + v })
}

// Collect materializes s into a newly allocated slice, never nil.
func Collect[T any](s iter.Seq[T]) []T {
	out := []T{}
	for v := range s {
		out = append(out, v)
	}
	return out
}

// Join concatenates the strings of s separated by sep.
func Join(s iter.Seq[string], sep string) string {
	var b strings.Builder
	first := true
	for v := range s {
		if !first {
			b.WriteString(sep)
		}
		first = false
		b.WriteString(v)
	}
	return b.String()
}
