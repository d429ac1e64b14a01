package plotter

import (
	"github.com/midbel/svg"
)

// Render items are plain mutable handles. Layout passes only touch their
// geometry, text and visibility; creation and destruction is keyed to tick
// count changes and happens in AxisItems.

type LineItem struct {
	X1, Y1  float64
	X2, Y2  float64
	Visible bool
}

func (li *LineItem) SetLine(x1, y1, x2, y2 float64) {
	li.X1, li.Y1 = x1, y1
	li.X2, li.Y2 = x2, y2
}

type RectItem struct {
	Rect    Rect
	Visible bool
}

type TextItem struct {
	Text     string
	Font     Font
	X, Y     float64
	Rotation float64
	OriginX  float64
	OriginY  float64
	Visible  bool
}

// BoundingRect returns the natural (unrotated) bounds of the current text.
func (ti *TextItem) BoundingRect() Rect {
	return TextBoundingRect(ti.Font, ti.Text)
}

// AxisItems pools the render items of one axis. Resize keeps the identity
// of surviving items so a layout pass never observes a half built pool.
type AxisItems struct {
	Arrow  *LineItem
	Grid   []*LineItem
	Ticks  []*LineItem
	Labels []*TextItem
	Shades []*RectItem
	Title  *TextItem
}

func NewAxisItems() *AxisItems {
	return &AxisItems{
		Arrow: &LineItem{},
		Title: &TextItem{Visible: true},
	}
}

// Resize adjusts the pools for n ticks. Interval axes carry two extra grid
// lines for the first and last category boundary.
func (it *AxisItems) Resize(n int, interval bool) {
	grid := n
	if interval {
		grid += 2
	}
	it.Grid = resizeLines(it.Grid, grid)
	it.Ticks = resizeLines(it.Ticks, n)

	for len(it.Labels) < n {
		it.Labels = append(it.Labels, &TextItem{Visible: true})
	}
	it.Labels = it.Labels[:n]

	shades := 0
	if n > 1 {
		shades = (n - 1) / 2
	}
	for len(it.Shades) < shades {
		it.Shades = append(it.Shades, &RectItem{})
	}
	it.Shades = it.Shades[:shades]
}

func resizeLines(lines []*LineItem, n int) []*LineItem {
	for len(lines) < n {
		lines = append(lines, &LineItem{})
	}
	return lines[:n]
}

// Render converts every visible item into SVG elements.
func (it *AxisItems) Render() svg.Element {
	var grp svg.Group
	grp.Class = append(grp.Class, "axis")
	if it.Arrow.Visible {
		arrow := lineElement(it.Arrow, 1)
		grp.Append(arrow.AsElement())
	}
	for _, sh := range it.Shades {
		if !sh.Visible {
			continue
		}
		var rec svg.Rect
		rec.Pos = svg.NewPos(sh.Rect.X, sh.Rect.Y)
		rec.Dim = svg.NewDim(sh.Rect.W, sh.Rect.H)
		rec.Fill = svg.NewFill("currentColor")
		rec.Fill.Opacity = 0.05
		grp.Append(rec.AsElement())
	}
	for _, li := range it.Grid {
		if li.Visible {
			el := lineElement(li, 0.1)
			grp.Append(el.AsElement())
		}
	}
	for _, li := range it.Ticks {
		if li.Visible {
			el := lineElement(li, 1)
			grp.Append(el.AsElement())
		}
	}
	for _, la := range it.Labels {
		if la.Visible && la.Text != "" {
			el := textElement(la)
			grp.Append(el.AsElement())
		}
	}
	if it.Title.Visible && it.Title.Text != "" {
		el := textElement(it.Title)
		grp.Append(el.AsElement())
	}
	return grp.AsElement()
}

func lineElement(li *LineItem, opacity float64) svg.Line {
	el := svg.NewLine(svg.NewPos(li.X1, li.Y1), svg.NewPos(li.X2, li.Y2))
	el.Stroke = svg.NewStroke("black", 1)
	el.Stroke.Opacity = opacity
	return el
}

func textElement(ti *TextItem) svg.Text {
	el := svg.NewText(ti.Text)
	el.Pos = svg.NewPos(ti.X, ti.Y)
	el.Font = svg.NewFont(ti.Font.Size)
	el.Baseline = "hanging"
	if ti.Rotation != 0 {
		el.Transform.RA = ti.Rotation
		el.Transform.RX = ti.X + ti.OriginX
		el.Transform.RY = ti.Y + ti.OriginY
	}
	return el
}
