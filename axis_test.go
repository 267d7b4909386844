package graph2d

import (
	"errors"
	"math"
	"testing"
)

func TestNewAxis_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		min, max float64
	}{
		{"zero length", 0, 0, 1},
		{"negative length", -10, 0, 1},
		{"equal range", 100, 5, 5},
		{"inverted range", 100, 10, 0},
		{"NaN min", 100, math.NaN(), 1},
		{"infinite max", 100, 0, math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewAxis(tt.length, tt.min, tt.max); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("NewAxis(%d, %v, %v) = %v, want ErrInvalidArgument", tt.length, tt.min, tt.max, err)
			}
		})
	}
}

func TestMustAxisPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustAxis with an invalid range did not panic")
		}
	}()
	MustAxis(10, 1, 0)
}

func TestAxis_ValueToPosition(t *testing.T) {
	a := MustAxis(100, 0, 10)
	tests := []struct {
		v, want float64
	}{
		{0, 0},
		{5, 50},
		{10, 100},
		{2.5, 25},
		{-5, -50}, // extrapolates below
		{20, 200}, // and above
	}
	for _, tt := range tests {
		if got := a.ValueToPosition(tt.v); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ValueToPosition(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestAxis_EndpointsExact(t *testing.T) {
	ranges := []struct {
		length   int
		min, max float64
	}{
		{100, 0, 10},
		{333, -0.1, 0.7},
		{1, 1e-9, 3e-9},
		{7919, -123.456, 9876.54321},
		{640, 0.1, 0.3},
		{17, -1e12, 1e12},
	}
	for _, r := range ranges {
		a := MustAxis(r.length, r.min, r.max)
		if got := a.ValueToPosition(r.min); got != 0 {
			t.Errorf("axis %v: ValueToPosition(min) = %v, want 0", r, got)
		}
		if got := a.ValueToPosition(r.max); got != float64(r.length) {
			t.Errorf("axis %v: ValueToPosition(max) = %v, want %d", r, got, r.length)
		}
	}
}

func TestAxis_PositionToValue(t *testing.T) {
	a := MustAxis(200, -1, 3)
	for _, v := range []float64{-1, -0.5, 0, 1.25, 3, 4} {
		p := a.ValueToPosition(v)
		if got := a.PositionToValue(p); math.Abs(got-v) > 1e-12 {
			t.Errorf("PositionToValue(ValueToPosition(%v)) = %v", v, got)
		}
	}
	if a.PositionToValue(0) != -1 || a.PositionToValue(200) != 3 {
		t.Error("PositionToValue endpoints are not exact")
	}
}

func TestAxis_Accessors(t *testing.T) {
	a := MustAxis(300, -2, 4)
	if a.Length() != 300 || a.Min() != -2 || a.Max() != 4 {
		t.Errorf("accessors = %d %v %v", a.Length(), a.Min(), a.Max())
	}
	if a.Scale() != 50 {
		t.Errorf("Scale() = %v, want 50", a.Scale())
	}
	if a.ValueType() != Decimal {
		t.Errorf("default ValueType = %v, want Decimal", a.ValueType())
	}
	b := a.WithValueType(Exponent)
	if b.ValueType() != Exponent || a.ValueType() != Decimal {
		t.Error("WithValueType must return a modified copy")
	}
}

func TestAxis_Ticks(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		n        int
		want     []float64
	}{
		{"unit steps", 0, 10, 11, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{"twos", 0, 10, 6, []float64{0, 2, 4, 6, 8, 10}},
		{"fives", 0, 10, 3, []float64{0, 5, 10}},
		{"symmetric", -1, 1, 5, []float64{-1, -0.5, 0, 0.5, 1}},
		{"offset start", 0.3, 2.9, 4, []float64{1, 2}},
		{"too few", 0, 1, 1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustAxis(100, tt.min, tt.max).Ticks(tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("Ticks(%d) = %v, want %v", tt.n, got, tt.want)
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Errorf("Ticks(%d)[%d] = %v, want %v", tt.n, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestAxis_TicksProperties(t *testing.T) {
	for _, r := range [][2]float64{{0, 1}, {-3.7, 12.2}, {1e-6, 5e-6}, {-1e5, 1e5}, {0.1, 0.3}} {
		a := MustAxis(100, r[0], r[1])
		for n := 2; n <= 12; n++ {
			ticks := a.Ticks(n)
			if len(ticks) > n {
				t.Errorf("%v Ticks(%d) returned %d ticks", r, n, len(ticks))
			}
			for i, v := range ticks {
				span := r[1] - r[0]
				if v < r[0]-span*1e-9 || v > r[1]+span*1e-9 {
					t.Errorf("%v Ticks(%d)[%d] = %v outside range", r, n, i, v)
				}
				if i >= 2 {
					d1, d2 := ticks[i]-ticks[i-1], ticks[i-1]-ticks[i-2]
					if math.Abs(d1-d2) > math.Abs(d1)*1e-9 {
						t.Errorf("%v Ticks(%d) uneven: %v", r, n, ticks)
					}
				}
			}
		}
	}
}
