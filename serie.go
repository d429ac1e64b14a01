package plotter

import (
	"github.com/midbel/slices"
	"github.com/midbel/svg"
)

type ChangeKind int

const (
	PointAppended ChangeKind = iota
	PointRemoved
	PointReplaced
	PointsReplaced
)

// Change describes one structural mutation of a series. Index is only
// meaningful for single point changes.
type Change struct {
	Kind  ChangeKind
	Index int
}

// SplineSerie retains an ordered set of data points together with the
// Bezier control points of the smooth curve through them. Control points
// are recomputed once per structural change, whole batches included, and
// swapped in as a fresh slice so nothing ever observes a half filled
// buffer.
type SplineSerie struct {
	Title  string
	Color  string
	X      Scaler[float64]
	Y      Scaler[float64]
	Marker PointFunc

	points   []Point
	controls []ControlPair
	watchers []func(Change)
}

func NewSplineSerie(points ...Point) *SplineSerie {
	var s SplineSerie
	s.Watch(s.update)
	if len(points) > 0 {
		s.ReplaceAll(points)
	}
	return &s
}

// Watch registers fn to run after every structural change.
func (s *SplineSerie) Watch(fn func(Change)) {
	s.watchers = append(s.watchers, fn)
}

func (s *SplineSerie) Append(pt Point) {
	s.points = append(s.points, pt)
	s.notify(Change{Kind: PointAppended, Index: len(s.points) - 1})
}

func (s *SplineSerie) RemoveAt(i int) {
	s.points = append(s.points[:i], s.points[i+1:]...)
	s.notify(Change{Kind: PointRemoved, Index: i})
}

func (s *SplineSerie) Replace(i int, pt Point) {
	s.points[i] = pt
	s.notify(Change{Kind: PointReplaced, Index: i})
}

func (s *SplineSerie) ReplaceAll(points []Point) {
	s.points = make([]Point, len(points))
	copy(s.points, points)
	s.notify(Change{Kind: PointsReplaced})
}

func (s *SplineSerie) Len() int {
	return len(s.points)
}

func (s *SplineSerie) At(i int) Point {
	return s.points[i]
}

// Controls returns the current control point pairs, one per segment. The
// slice is replaced, never patched, on every mutation.
func (s *SplineSerie) Controls() []ControlPair {
	return s.controls
}

func (s *SplineSerie) notify(c Change) {
	for _, fn := range s.watchers {
		fn(c)
	}
}

func (s *SplineSerie) update(Change) {
	if len(s.points) < 2 {
		s.controls = nil
		return
	}
	s.controls = ControlPoints(s.points)
}

// Render strokes the spline through every data point with one cubic curve
// per segment.
func (s *SplineSerie) Render() svg.Element {
	grp := getBaseGroup(s.Color, "line", "line-spline")
	grp.Id = s.Title
	if len(s.points) < 2 {
		return grp.AsElement()
	}
	var (
		pat = getBasePath(false)
		pos = s.scale(slices.Fst(s.points))
	)
	pat.AbsMoveTo(pos)
	if s.Marker != nil {
		grp.Append(s.Marker(pos))
	}
	for i, pt := range slices.Rest(s.points) {
		pos = s.scale(pt)
		pat.AbsCubicCurve(pos, s.scale(s.controls[i].Cp1), s.scale(s.controls[i].Cp2))
		if s.Marker != nil {
			grp.Append(s.Marker(pos))
		}
	}
	grp.Append(pat.AsElement())
	return grp.AsElement()
}

func (s *SplineSerie) scale(pt Point) svg.Pos {
	return svg.NewPos(s.X.Scale(pt.X), s.Y.Scale(pt.Y))
}

func getBasePath(fill bool) svg.Path {
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Stroke = svg.NewStroke(currentColour, 1)
	if fill {
		pat.Fill = svg.NewFill(currentColour)
		pat.Fill.Opacity = 0.5
	} else {
		pat.Fill = svg.NewFill("none")
	}
	return pat
}

func getBaseGroup(color string, class ...string) svg.Group {
	var g svg.Group
	if color != "" {
		g.Fill = svg.NewFill(color)
		g.Stroke = svg.NewStroke(color, 1)
	}
	g.Class = class
	return g
}

const currentColour = "currentColour"
