package core

import (
	"context"
	"errors"
	"testing"
)

func TestSlice(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name       string
		stream     Stream[int]
		wantValues []int
		wantErr    error
	}{
		{
			name:       "collects all values",
			stream:     fromSlice([]int{1, 2, 3}),
			wantValues: []int{1, 2, 3},
		},
		{
			name:       "empty stream",
			stream:     fromSlice[int](nil),
			wantValues: nil,
		},
		{
			name:    "stops on error",
			stream:  fromResults(Ok(1), Err[int](boom), Ok(3)),
			wantErr: boom,
		},
		{
			name:       "skips sentinels",
			stream:     fromResults(Ok(1), EndOfStream[int](), Ok(2)),
			wantValues: []int{1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := Slice(context.Background(), tt.stream)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Slice() error = %v, want %v", err, tt.wantErr)
			}
			if len(values) != len(tt.wantValues) {
				t.Fatalf("Slice() = %v, want %v", values, tt.wantValues)
			}
			for i := range values {
				if values[i] != tt.wantValues[i] {
					t.Errorf("Slice()[%d] = %d, want %d", i, values[i], tt.wantValues[i])
				}
			}
		})
	}
}

func TestFirst(t *testing.T) {
	ctx := context.Background()

	v, err := First(ctx, fromSlice([]int{9, 8}))
	if err != nil || v != 9 {
		t.Errorf("First() = (%d, %v), want (9, nil)", v, err)
	}

	_, err = First(ctx, fromSlice[int](nil))
	if !errors.Is(err, ErrEmptyStream) {
		t.Errorf("First() on empty stream error = %v, want ErrEmptyStream", err)
	}
}

func TestOptional(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	opt, err := Optional(ctx, fromSlice([]int{5}))
	if err != nil {
		t.Fatalf("Optional() error = %v", err)
	}
	if v, ok := opt.Get(); !ok || v != 5 {
		t.Errorf("Optional() = %v, want Some(5)", opt)
	}

	opt, err = Optional(ctx, fromSlice[int](nil))
	if err != nil {
		t.Fatalf("Optional() error = %v", err)
	}
	if opt.IsPresent() {
		t.Errorf("Optional() on empty stream = %v, want None", opt)
	}

	_, err = Optional(ctx, fromResults(Err[int](boom)))
	if !errors.Is(err, boom) {
		t.Errorf("Optional() error = %v, want boom", err)
	}
}

func TestForEach(t *testing.T) {
	ctx := context.Background()

	var seen []int
	if err := ForEach(ctx, fromSlice([]int{3, 1, 2}), func(v int) { seen = append(seen, v) }); err != nil {
		t.Fatalf("ForEach() error = %v", err)
	}
	if len(seen) != 3 || seen[0] != 3 || seen[1] != 1 || seen[2] != 2 {
		t.Errorf("ForEach visited %v, want [3 1 2]", seen)
	}

	boom := errors.New("boom")
	seen = nil
	err := ForEach(ctx, fromResults(Ok(1), Err[int](boom), Ok(2)), func(v int) { seen = append(seen, v) })
	if !errors.Is(err, boom) {
		t.Errorf("ForEach() error = %v, want boom", err)
	}
	if len(seen) != 1 {
		t.Errorf("ForEach visited %v after error, want [1]", seen)
	}
}

func TestForEachCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	never := Emit(func(ctx context.Context) <-chan Result[int] {
		out := make(chan Result[int])
		go func() {
			defer close(out)
			<-ctx.Done()
		}()
		return out
	})

	if err := Run(ctx, never); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}
