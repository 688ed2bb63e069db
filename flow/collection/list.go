// Package collection provides a mutable, append-only List that refuses
// structural changes while it is being traversed.
package collection

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"sync"

	"github.com/lguimbarda/lambda-basics/flow/core"
)

// ErrConcurrentModification is returned when a List is modified while a
// traversal of it is in progress.
var ErrConcurrentModification = errors.New("concurrent modification")

// ModificationError describes a rejected modification.
type ModificationError struct {
	Len        int
	Traversals int
}

func (e *ModificationError) Error() string {
	return fmt.Sprintf("%v: list of length %d has %d active traversal(s)",
		ErrConcurrentModification, e.Len, e.Traversals)
}

func (e *ModificationError) Unwrap() error {
	return ErrConcurrentModification
}

// List is an ordered sequence of values. It is safe for concurrent use.
type List[T any] struct {
	mu         sync.Mutex
	items      []T
	traversals int
}

// NewList returns a List holding a copy of items.
func NewList[T any](items ...T) *List[T] {
	return &List[T]{items: append([]T(nil), items...)}
}

// Len returns the number of values in the list.
func (l *List[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Add appends v to the list. It fails with a *ModificationError while any
// traversal started by All is still running.
func (l *List[T]) Add(v T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.traversals > 0 {
		return &ModificationError{Len: len(l.items), Traversals: l.traversals}
	}
	l.items = append(l.items, v)
	return nil
}

// Values returns a copy of the list's contents.
func (l *List[T]) Values() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]T{}, l.items...)
}

// All returns an iterator over the list. The traversal guard is held from
// the first pull until the range loop ends, whether by exhaustion or break.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.mu.Lock()
		l.traversals++
		items := l.items
		l.mu.Unlock()

		defer func() {
			l.mu.Lock()
			l.traversals--
			l.mu.Unlock()
		}()

		// Add cannot succeed while the guard is held, so items is stable.
		for _, v := range items {
			if !yield(v) {
				return
			}
		}
	}
}

// Stream returns a flow Stream over a snapshot of the list taken at each
// emission. It does not hold the traversal guard.
func (l *List[T]) Stream() core.Stream[T] {
	return core.Emit(func(ctx context.Context) <-chan core.Result[T] {
		items := l.Values()
		out := make(chan core.Result[T], len(items))
		for _, v := range items {
			out <- core.Ok(v)
		}
		close(out)
		return out
	})
}
