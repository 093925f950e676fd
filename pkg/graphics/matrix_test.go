package graphics

import (
	"math"
	"testing"
)

const matrixEpsilon = 1e-9

func offsetsNear(a, b Offset) bool {
	return math.Abs(a.X-b.X) < matrixEpsilon && math.Abs(a.Y-b.Y) < matrixEpsilon
}

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Offset
		want Offset
	}{
		{"identity", Identity(), Offset{X: 3, Y: 4}, Offset{X: 3, Y: 4}},
		{"translation", Translation(10, 20), Offset{X: 3, Y: 4}, Offset{X: 13, Y: 24}},
		{"scaling", Scaling(2, 3), Offset{X: 3, Y: 4}, Offset{X: 6, Y: 12}},
		{"quarter turn", Rotation(math.Pi / 2), Offset{X: 1, Y: 0}, Offset{X: 0, Y: 1}},
		{"shear x", Shearing(1, 0), Offset{X: 2, Y: 3}, Offset{X: 5, Y: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.in)
			if !offsetsNear(got, tt.want) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrixMultiplyAppliesOtherFirst(t *testing.T) {
	// Scale first, then translate: (1, 1) -> (2, 2) -> (12, 2).
	m := Translation(10, 0).Multiply(Scaling(2, 2))
	got := m.TransformPoint(Offset{X: 1, Y: 1})
	want := Offset{X: 12, Y: 2}
	if !offsetsNear(got, want) {
		t.Errorf("composite transform = %v, want %v", got, want)
	}
}

func TestMatrixInvertRoundTrip(t *testing.T) {
	m := Translation(5, 7).Multiply(Rotation(0.3)).Multiply(Scaling(2, 3))
	p := Offset{X: 1.5, Y: -2}
	back := m.Invert().TransformPoint(m.TransformPoint(p))
	if !offsetsNear(back, p) {
		t.Errorf("inverse round trip = %v, want %v", back, p)
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	if got := Scaling(0, 0).Invert(); !got.IsIdentity() {
		t.Errorf("Invert of singular matrix = %+v, want identity", got)
	}
	if got := (Matrix{}).Invert(); !got.IsIdentity() {
		t.Errorf("Invert of zero matrix = %+v, want identity", got)
	}
}

func TestMatrixIsIdentity(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	if Translation(1, 0).IsIdentity() {
		t.Error("Translation(1, 0).IsIdentity() = true")
	}
	if Scaling(2, 1).IsIdentity() {
		t.Error("Scaling(2, 1).IsIdentity() = true")
	}
}
