package seq

import (
	"slices"
	"strconv"
	"testing"
)

func TestPipeline(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		want  []int
	}{
		{name: "filter and map", items: []int{-2, 1, 0, 3}, want: []int{10, 30}},
		{name: "nothing matches", items: []int{-1, -2}, want: []int{}},
		{name: "empty", items: nil, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Map(Filter(FromSlice(tt.items), func(x int) bool { return x > 0 }), func(x int) int { return x * 10 })
			got := Collect(s)
			if got == nil {
				t.Fatal("Collect() returned nil")
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLaziness(t *testing.T) {
	var pulled int
	s := Map(FromSlice([]int{1, 2, 3, 4}), func(x int) int {
		pulled++
		return x
	})

	if pulled != 0 {
		t.Fatalf("pulled %d values before iteration", pulled)
	}
	for v := range s {
		if v == 2 {
			break
		}
	}
	if pulled != 2 {
		t.Errorf("pulled %d values, want 2", pulled)
	}
}

func TestConcatAndDistinct(t *testing.T) {
	got := Collect(Distinct(Concat(FromSlice([]int{1, 2, 2}), FromSlice([]int{3, 1}))))
	if want := []int{1, 2, 3}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAggregations(t *testing.T) {
	add := func(a, b int) int { return a + b }

	if got := Fold(FromSlice([]int{1, 2, 3}), 10, add); got != 16 {
		t.Errorf("Fold() = %d, want 16", got)
	}
	if got := Sum(FromSlice([]int(nil))); got != 0 {
		t.Errorf("Sum(empty) = %d, want 0", got)
	}
	if got := Sum(FromSlice([]float64{0.5, 1.5})); got != 2 {
		t.Errorf("Sum() = %v, want 2", got)
	}
	if v, ok := Reduce(FromSlice([]int{4, -1}), add).Get(); !ok || v != 3 {
		t.Errorf("Reduce() = (%d, %v), want (3, true)", v, ok)
	}
	if Reduce(FromSlice([]int(nil)), add).IsPresent() {
		t.Error("Reduce(empty) should be absent")
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		items []int
		want  string
	}{
		{items: []int{-4, 0, 2}, want: "-4, 0, 2"},
		{items: []int{7}, want: "7"},
		{items: nil, want: ""},
	}

	for _, tt := range tests {
		if got := Join(Map(FromSlice(tt.items), strconv.Itoa), ", "); got != tt.want {
			t.Errorf("Join(%v) = %q, want %q", tt.items, got, tt.want)
		}
	}
}
