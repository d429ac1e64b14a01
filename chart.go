package plotter

import (
	"bufio"
	"io"

	"github.com/midbel/svg"
)

// Data is anything the chart can draw inside its plot area.
type Data interface {
	Render() svg.Element
}

type sizeHinter interface {
	SizeHint(SizeHint) Size
}

type Chart struct {
	Title  string
	Width  float64
	Height float64

	Padding

	Left  Axis
	Right Axis
}

func (c Chart) DrawingWidth() float64 {
	return c.Width - c.Padding.Horizontal()
}

func (c Chart) DrawingHeight() float64 {
	return c.Height - c.Padding.Vertical()
}

// Grid reports the plot area rectangle the sizing pass hands to the axes
// and series, with the axis strips already carved out. Scalers mapping
// data to the plot area should take their range from it.
func (c Chart) Grid() Rect {
	var (
		left  = c.Padding.Left + c.reserve(c.Left)
		right = c.Padding.Right + c.reserve(c.Right)
	)
	return NewRect(left, c.Padding.Top, c.Width-left-right, c.Height-c.Padding.Vertical())
}

// Render runs the sizing pass, lays out both vertical axes and draws every
// series into the plot area.
func (c Chart) Render(w io.Writer, set ...Data) {
	el := svg.NewSVG()
	el.Dim = svg.NewDim(c.Width, c.Height)
	el.OmitProlog = true

	grid := c.Grid()
	if c.Left != nil {
		el.Append(c.Left.Render(NewRect(0, c.Padding.Top, grid.Left(), grid.H), grid))
	}
	if c.Right != nil {
		el.Append(c.Right.Render(NewRect(grid.Right(), c.Padding.Top, c.Width-grid.Right(), grid.H), grid))
	}
	for _, s := range set {
		ar := c.getArea(grid)
		ar.Append(s.Render())
		el.Append(ar.AsElement())
	}

	bw := bufio.NewWriter(w)
	defer bw.Flush()
	el.Render(bw)
}

// reserve widens the axis strip by the preferred footprint of its title.
func (c Chart) reserve(a Axis) float64 {
	h, ok := a.(sizeHinter)
	if !ok {
		return 0
	}
	return h.SizeHint(PreferredSize).W
}

func (c Chart) getArea(grid Rect) svg.Group {
	var g svg.Group
	g.Class = append(g.Class, "area")
	g.Transform = svg.Translate(grid.X, grid.Y)
	return g
}
