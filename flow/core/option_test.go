package core

import "testing"

func TestOption(t *testing.T) {
	t.Run("some", func(t *testing.T) {
		opt := Some(4)
		if !opt.IsPresent() {
			t.Fatal("Some(4).IsPresent() = false")
		}
		if v, ok := opt.Get(); !ok || v != 4 {
			t.Errorf("Get() = (%d, %v), want (4, true)", v, ok)
		}
		if v := opt.OrElse(-1); v != 4 {
			t.Errorf("OrElse() = %d, want 4", v)
		}
		called := 0
		opt.IfPresent(func(v int) { called += v })
		if called != 4 {
			t.Errorf("IfPresent callback saw %d, want 4", called)
		}
		if s := opt.String(); s != "Some(4)" {
			t.Errorf("String() = %q", s)
		}
	})

	t.Run("none", func(t *testing.T) {
		opt := None[int]()
		if opt.IsPresent() {
			t.Fatal("None().IsPresent() = true")
		}
		if _, ok := opt.Get(); ok {
			t.Error("Get() reported present")
		}
		if v := opt.OrElse(-1); v != -1 {
			t.Errorf("OrElse() = %d, want -1", v)
		}
		opt.IfPresent(func(int) { t.Error("IfPresent called on None") })
		if s := opt.String(); s != "None" {
			t.Errorf("String() = %q", s)
		}
	})

	t.Run("zero value is absent", func(t *testing.T) {
		var opt Option[string]
		if opt.IsPresent() {
			t.Error("zero Option should be absent")
		}
	})
}
