package plotter

// ControlPoints computes the interior control points of the piecewise
// cubic Bezier curve that passes through every given point with a
// continuous first derivative. It returns one pair per segment, that is
// len(points)-1 pairs. It panics when fewer than two points are given.
func ControlPoints(points []Point) []ControlPair {
	n := len(points) - 1
	if n < 1 {
		panic("plotter: at least two points needed to compute control points")
	}
	pairs := make([]ControlPair, n)
	if n == 1 {
		cp1 := Pt((2*points[0].X+points[1].X)/3, (2*points[0].Y+points[1].Y)/3)
		pairs[0] = ControlPair{
			Cp1: cp1,
			Cp2: Pt(2*cp1.X-points[0].X, 2*cp1.Y-points[0].Y),
		}
		return pairs
	}

	// One tridiagonal system per axis, both with the same matrix. The
	// rows read
	//
	//	2*c[0]   + c[1]                = P0 + 2*P1
	//	c[i-1]   + 4*c[i] + c[i+1]     = 4*Pi + 2*Pi+1
	//	c[n-2]   + 3.5*c[n-1]          = (8*Pn-1 + Pn) / 2
	//
	rhs := make([]float64, n)
	rhs[0] = points[0].X + 2*points[1].X
	for i := 1; i < n-1; i++ {
		rhs[i] = 4*points[i].X + 2*points[i+1].X
	}
	rhs[n-1] = (8*points[n-1].X + points[n].X) / 2
	xs := firstControlPoints(rhs)

	rhs[0] = points[0].Y + 2*points[1].Y
	for i := 1; i < n-1; i++ {
		rhs[i] = 4*points[i].Y + 2*points[i+1].Y
	}
	rhs[n-1] = (8*points[n-1].Y + points[n].Y) / 2
	ys := firstControlPoints(rhs)

	for i := 0; i < n; i++ {
		pairs[i].Cp1 = Pt(xs[i], ys[i])
		if i < n-1 {
			pairs[i].Cp2 = Pt(2*points[i+1].X-xs[i+1], 2*points[i+1].Y-ys[i+1])
		} else {
			pairs[i].Cp2 = Pt((points[n].X+xs[n-1])/2, (points[n].Y+ys[n-1])/2)
		}
	}
	return pairs
}

// firstControlPoints solves the tridiagonal system with the Thomas
// algorithm: forward elimination keeping the reciprocal coefficients
// around, then back substitution.
func firstControlPoints(rhs []float64) []float64 {
	var (
		count  = len(rhs)
		result = make([]float64, count)
		temp   = make([]float64, count)
	)
	result[0] = rhs[0] / 2
	b := 2.0
	for i := 1; i < count; i++ {
		temp[i] = 1 / b
		if i < count-1 {
			b = 4 - temp[i]
		} else {
			b = 3.5 - temp[i]
		}
		result[i] = (rhs[i] - result[i-1]) / b
	}
	for i := 1; i < count; i++ {
		result[count-i-1] -= temp[count-i] * result[count-i]
	}
	return result
}
