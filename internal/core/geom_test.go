package core

import (
	"math"
	"testing"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestVec3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 6, 3)

	if got := a.Add(b); got != V3(5, 8, 6) {
		t.Errorf("Add() = %v, expected (5, 8, 6)", got)
	}
	if got := b.Sub(a); got != V3(3, 4, 0) {
		t.Errorf("Sub() = %v, expected (3, 4, 0)", got)
	}
	if got := a.Scale(2); got != V3(2, 4, 6) {
		t.Errorf("Scale() = %v, expected (2, 4, 6)", got)
	}
	if d := a.Distance(b); d != 5 {
		t.Errorf("Distance() = %f, expected 5", d)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := V3(3, 0, 4).Normalize()
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("Normalize() length = %f, expected 1", n.Len())
	}
	if math.Abs(n.X-0.6) > 1e-12 || math.Abs(n.Z-0.8) > 1e-12 {
		t.Errorf("Normalize() = %v, expected (0.6, 0, 0.8)", n)
	}

	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("Normalize() of zero vector = %v, expected zero", z)
	}
}
