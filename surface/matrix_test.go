// Copyright 2026 The wavetile Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"math"
	"testing"
)

const matrixEpsilon = 1e-9

func pointsEqual(p, q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) < epsilon && math.Abs(p.Y-q.Y) < epsilon
}

func TestIdentity(t *testing.T) {
	m := Identity()
	if !m.IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}

	p := m.TransformPoint(Pt(3, 7))
	if !pointsEqual(p, Pt(3, 7), matrixEpsilon) {
		t.Errorf("Identity transform moved point to %+v", p)
	}
}

func TestSwap(t *testing.T) {
	m := Swap()

	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"origin", Pt(0, 0), Pt(0, 0)},
		{"axis x", Pt(5, 0), Pt(0, 5)},
		{"axis y", Pt(0, 9), Pt(9, 0)},
		{"general", Pt(3, 7), Pt(7, 3)},
		{"diagonal fixed point", Pt(4, 4), Pt(4, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.TransformPoint(tt.in)
			if !pointsEqual(got, tt.want, matrixEpsilon) {
				t.Errorf("Swap().TransformPoint(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSwapIsSelfInverse(t *testing.T) {
	m := Swap().Multiply(Swap())
	if !m.IsIdentity() {
		t.Errorf("Swap()*Swap() = %+v, want identity", m)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(10, -4)
	got := m.TransformPoint(Pt(1, 1))
	if !pointsEqual(got, Pt(11, -3), matrixEpsilon) {
		t.Errorf("Translate(10,-4) moved (1,1) to %+v, want (11,-3)", got)
	}
}

func TestScale(t *testing.T) {
	m := Scale(2, 3)
	got := m.TransformPoint(Pt(4, 5))
	if !pointsEqual(got, Pt(8, 15), matrixEpsilon) {
		t.Errorf("Scale(2,3) moved (4,5) to %+v, want (8,15)", got)
	}
}

func TestMultiplyOrder(t *testing.T) {
	// m.Multiply(other) applies other first, then m.
	m := Translate(10, 0).Multiply(Scale(2, 2))
	got := m.TransformPoint(Pt(3, 3))
	if !pointsEqual(got, Pt(16, 6), matrixEpsilon) {
		t.Errorf("translate*scale moved (3,3) to %+v, want (16,6)", got)
	}
}
