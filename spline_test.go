package plotter

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var approx = cmp.Comparer(func(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
})

func TestControlPointsCount(t *testing.T) {
	for n := 2; n <= 8; n++ {
		points := make([]Point, n)
		for i := range points {
			points[i] = Pt(float64(i), float64(i*i%5))
		}
		pairs := ControlPoints(points)
		if len(pairs) != n-1 {
			t.Errorf("%d points: got %d pairs, want %d", n, len(pairs), n-1)
		}
	}
}

func TestControlPointsTooFewPoints(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a single point")
		}
	}()
	ControlPoints([]Point{Pt(0, 0)})
}

func TestControlPointsTwoPoints(t *testing.T) {
	pairs := ControlPoints([]Point{Pt(0, 0), Pt(3, 9)})
	want := []ControlPair{
		{Cp1: Pt(1, 3), Cp2: Pt(2, 6)},
	}
	if diff := cmp.Diff(want, pairs, approx); diff != "" {
		t.Errorf("control points mismatch (-want +got):\n%s", diff)
	}
}

func TestControlPointsThreePoints(t *testing.T) {
	pairs := ControlPoints([]Point{Pt(0, 0), Pt(1, 2), Pt(2, 0)})
	want := []ControlPair{
		{Cp1: Pt(1.0/3, 1), Cp2: Pt(2.0/3, 2)},
		{Cp1: Pt(4.0/3, 2), Cp2: Pt(5.0/3, 1)},
	}
	if diff := cmp.Diff(want, pairs, approx); diff != "" {
		t.Errorf("control points mismatch (-want +got):\n%s", diff)
	}
}

// The solved first control points must satisfy the tridiagonal system and
// the derived second control points must keep the curve differentiable at
// every interior data point.
func TestControlPointsSystem(t *testing.T) {
	points := []Point{
		Pt(0, 6), Pt(2, 4), Pt(3, 8), Pt(7, 4), Pt(10, 5), Pt(11, 1),
	}
	var (
		n     = len(points) - 1
		pairs = ControlPoints(points)
	)
	check := func(name string, got, want float64) {
		t.Helper()
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("%s: got %g, want %g", name, got, want)
		}
	}
	check("row 0 x", 2*pairs[0].Cp1.X+pairs[1].Cp1.X, points[0].X+2*points[1].X)
	check("row 0 y", 2*pairs[0].Cp1.Y+pairs[1].Cp1.Y, points[0].Y+2*points[1].Y)
	for i := 1; i < n-1; i++ {
		check("row i x", pairs[i-1].Cp1.X+4*pairs[i].Cp1.X+pairs[i+1].Cp1.X, 4*points[i].X+2*points[i+1].X)
		check("row i y", pairs[i-1].Cp1.Y+4*pairs[i].Cp1.Y+pairs[i+1].Cp1.Y, 4*points[i].Y+2*points[i+1].Y)
	}
	check("row n-1 x", pairs[n-2].Cp1.X+3.5*pairs[n-1].Cp1.X, (8*points[n-1].X+points[n].X)/2)
	check("row n-1 y", pairs[n-2].Cp1.Y+3.5*pairs[n-1].Cp1.Y, (8*points[n-1].Y+points[n].Y)/2)

	for i := 0; i < n-1; i++ {
		check("smooth x", pairs[i].Cp2.X+pairs[i+1].Cp1.X, 2*points[i+1].X)
		check("smooth y", pairs[i].Cp2.Y+pairs[i+1].Cp1.Y, 2*points[i+1].Y)
	}
	check("last cp2 x", pairs[n-1].Cp2.X, (points[n].X+pairs[n-1].Cp1.X)/2)
	check("last cp2 y", pairs[n-1].Cp2.Y, (points[n].Y+pairs[n-1].Cp1.Y)/2)
}

// Duplicate and collinear points are mathematically valid inputs.
func TestControlPointsDegenerate(t *testing.T) {
	points := []Point{Pt(1, 1), Pt(1, 1), Pt(1, 1), Pt(1, 1)}
	pairs := ControlPoints(points)
	if len(pairs) != 3 {
		t.Fatalf("got %d pairs, want 3", len(pairs))
	}
	for i, p := range pairs {
		if diff := cmp.Diff(ControlPair{Cp1: Pt(1, 1), Cp2: Pt(1, 1)}, p, approx); diff != "" {
			t.Errorf("pair %d (-want +got):\n%s", i, diff)
		}
	}
}

func TestControlPointsIdempotent(t *testing.T) {
	points := []Point{
		Pt(0, 6), Pt(2, 4), Pt(3, 8), Pt(7, 4), Pt(10, 5),
	}
	fst := ControlPoints(points)
	snd := ControlPoints(points)
	if diff := cmp.Diff(fst, snd); diff != "" {
		t.Errorf("two runs differ (-fst +snd):\n%s", diff)
	}
}
