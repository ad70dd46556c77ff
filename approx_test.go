package scanline

import (
	"math"
	"testing"
)

func TestApproxFrom(t *testing.T) {
	if got := ApproxFrom[int](2.9); got != 2 {
		t.Errorf("int: got %d, want 2", got)
	}
	if got := ApproxFrom[int](-2.9); got != -2 {
		t.Errorf("int: got %d, want -2", got)
	}
	if got := ApproxFrom[int16](-32768); got != math.MinInt16 {
		t.Errorf("int16: got %d, want %d", got, math.MinInt16)
	}
	if got := ApproxFrom[float64](2.9); got != 2.9 {
		t.Errorf("float64: got %g, want 2.9", got)
	}
	if got := ApproxFrom[float32](0.5); got != 0.5 {
		t.Errorf("float32: got %g, want 0.5", got)
	}
}

func TestApproxFromPanics(t *testing.T) {
	cases := []struct {
		name string
		f    func()
	}{
		{"int8 overflow", func() { ApproxFrom[int8](128) }},
		{"int16 underflow", func() { ApproxFrom[int16](-40000) }},
		{"int64 overflow", func() { ApproxFrom[int64](1e19) }},
		{"NaN", func() { ApproxFrom[int](math.NaN()) }},
		{"Inf", func() { ApproxFrom[int32](math.Inf(1)) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("no panic")
				}
			}()
			c.f()
		})
	}
}

func TestApproxRoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 1919, -4711, math.MaxInt32, math.MinInt32} {
		if got := ApproxFrom[int32](Approx(v)); got != v {
			t.Errorf("%d: got %d", v, got)
		}
	}
}

func TestConvertPoint(t *testing.T) {
	p := Pt(3.7, -1.2)
	if got, want := ConvertPoint[int](p), Pt(3, -1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ConvertPoint[float64](Pt(3, 4)), Pt(3.0, 4.0); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPointArithmetic(t *testing.T) {
	a, b := Pt(1, 2), Pt(10, -5)
	if got, want := a.Add(b), Pt(11, -3); got != want {
		t.Errorf("Add: got %v, want %v", got, want)
	}
	if got, want := a.Sub(b), Pt(-9, 7); got != want {
		t.Errorf("Sub: got %v, want %v", got, want)
	}
	if a.Add(b).Sub(b) != a {
		t.Error("Add and Sub do not cancel")
	}
}
