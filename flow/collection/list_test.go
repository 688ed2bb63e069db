package collection

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/lguimbarda/lambda-basics/flow/core"
)

func TestListBasics(t *testing.T) {
	src := []int{1, 2}
	l := NewList(src...)
	src[0] = 99

	if err := l.Add(3); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if want := []int{1, 2, 3}; l.Len() != 3 || !slices.Equal(l.Values(), want) {
		t.Errorf("list = %v, want %v", l.Values(), want)
	}

	values := l.Values()
	values[0] = 42
	if l.Values()[0] != 1 {
		t.Error("Values() must return a copy")
	}
}

func TestAddDuringTraversal(t *testing.T) {
	l := NewList(1, 2, 3)

	var addErr error
	for v := range l.All() {
		if v == 2 {
			addErr = l.Add(20)
		}
	}

	if !errors.Is(addErr, ErrConcurrentModification) {
		t.Fatalf("Add() error = %v, want ErrConcurrentModification", addErr)
	}
	var modErr *ModificationError
	if !errors.As(addErr, &modErr) {
		t.Fatalf("Add() error type = %T", addErr)
	}
	if modErr.Len != 3 || modErr.Traversals != 1 {
		t.Errorf("ModificationError = %+v", modErr)
	}
	if l.Len() != 3 {
		t.Errorf("Len() = %d after rejected Add, want 3", l.Len())
	}
}

func TestGuardReleased(t *testing.T) {
	tests := []struct {
		name string
		walk func(*testing.T, *List[int])
	}{
		{
			name: "exhausted",
			walk: func(t *testing.T, l *List[int]) {
				for range l.All() {
				}
			},
		},
		{
			name: "early break",
			walk: func(t *testing.T, l *List[int]) {
				for range l.All() {
					break
				}
			},
		},
		{
			name: "nested traversals",
			walk: func(t *testing.T, l *List[int]) {
				for range l.All() {
					for v := range l.All() {
						if err := l.Add(v); err == nil {
							t.Error("Add() succeeded inside nested traversal")
						}
						return
					}
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewList(1, 2)
			tt.walk(t, l)
			if err := l.Add(3); err != nil {
				t.Errorf("Add() after traversal error = %v", err)
			}
		})
	}
}

func TestStreamSnapshot(t *testing.T) {
	ctx := context.Background()
	l := NewList(1, 2)

	got, err := core.Slice(ctx, l.Stream())
	if err != nil {
		t.Fatalf("Slice() error = %v", err)
	}
	if !slices.Equal(got, []int{1, 2}) {
		t.Errorf("got %v", got)
	}

	for v := range core.All(ctx, l.Stream()) {
		if err := l.Add(v.Value() * 10); err != nil {
			t.Fatalf("Add() during stream emission error = %v", err)
		}
	}
	if want := []int{1, 2, 10, 20}; !slices.Equal(l.Values(), want) {
		t.Errorf("got %v, want %v", l.Values(), want)
	}
}
