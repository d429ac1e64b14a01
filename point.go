package plotter

// Point is a location in series (data) space.
type Point struct {
	X float64
	Y float64
}

func Pt(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

// Midpoint returns the point halfway between p and o.
func (p Point) Midpoint(o Point) Point {
	return Point{
		X: (p.X + o.X) / 2,
		Y: (p.Y + o.Y) / 2,
	}
}

// ControlPair holds the two interior control points of the cubic Bezier
// segment joining two consecutive data points.
type ControlPair struct {
	Cp1 Point
	Cp2 Point
}
