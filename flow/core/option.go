package core

import "fmt"

// Option holds either a value (present) or nothing (absent). It is the
// result of reductions that have no identity element, where an empty
// input has no meaningful answer and the caller must branch on presence.
type Option[T any] struct {
	value   T
	present bool
}

// Some returns a present Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsPresent reports whether the Option holds a value.
func (o Option[T]) IsPresent() bool {
	return o.present
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// IfPresent calls fn with the value when present.
func (o Option[T]) IfPresent(fn func(T)) {
	if o.present {
		fn(o.value)
	}
}

// OrElse returns the value when present and fallback otherwise.
func (o Option[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

func (o Option[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
