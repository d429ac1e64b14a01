package plotter

import (
	"strconv"
	"time"

	"github.com/midbel/svg"
)

const FontSize = 12.0

type Orientation int

const (
	OrientRight Orientation = 1 << iota
	OrientLeft
)

// Axis renders itself into the axis bounding rectangle next to the plot
// area. Both rectangles come from the sizing pass of the chart.
type Axis interface {
	Render(axisRect, gridRect Rect) svg.Element
}

type NumberAxis struct {
	Title string
	Orientation
	AxisStyle
	Ticks  int
	Scaler Scaler[float64]
	Domain []float64
	Format func(float64) string

	items *AxisItems
}

func (a *NumberAxis) Render(axisRect, gridRect Rect) svg.Element {
	var (
		data   = a.Domain
		format = a.Format
	)
	if len(data) == 0 {
		data = a.Scaler.Values(a.Ticks)
	}
	if format == nil {
		format = func(f float64) string {
			return strconv.FormatFloat(f, 'f', 2, 64)
		}
	}
	var (
		layout = make([]float64, len(data))
		labels = make([]string, len(data))
	)
	for i, f := range data {
		layout[i] = gridRect.Top() + a.Scaler.Scale(f)
		labels[i] = format(f)
	}
	return renderVertical(a.vertical(a.Orientation, a.Title, false), layout, labels, axisRect, gridRect, &a.items)
}

func (a *NumberAxis) SizeHint(which SizeHint) Size {
	return sizeHint(a.vertical(a.Orientation, a.Title, false), &a.items, which)
}

type TimeAxis struct {
	Title string
	Orientation
	AxisStyle
	Ticks  int
	Scaler Scaler[time.Time]
	Domain []time.Time
	Format func(time.Time) string

	items *AxisItems
}

func (a *TimeAxis) Render(axisRect, gridRect Rect) svg.Element {
	var (
		data   = a.Domain
		format = a.Format
	)
	if len(data) == 0 {
		data = a.Scaler.Values(a.Ticks)
	}
	if format == nil {
		format = func(t time.Time) string {
			return t.Format("2006-01-02")
		}
	}
	var (
		layout = make([]float64, len(data))
		labels = make([]string, len(data))
	)
	for i, t := range data {
		layout[i] = gridRect.Top() + a.Scaler.Scale(t)
		labels[i] = format(t)
	}
	return renderVertical(a.vertical(a.Orientation, a.Title, false), layout, labels, axisRect, gridRect, &a.items)
}

func (a *TimeAxis) SizeHint(which SizeHint) Size {
	return sizeHint(a.vertical(a.Orientation, a.Title, false), &a.items, which)
}

// CategoryAxis marks category boundaries instead of values: labels sit
// between ticks and the outermost boundaries get their own grid lines.
type CategoryAxis struct {
	Title string
	Orientation
	AxisStyle
	Scaler Scaler[string]
	Domain []string

	items *AxisItems
}

func (a *CategoryAxis) Render(axisRect, gridRect Rect) svg.Element {
	data := a.Domain
	if len(data) == 0 {
		data = a.Scaler.Values(0)
	}
	// ticks mark the band boundaries, one more than there are categories.
	// Each label rides on the lower boundary of its own band so the layout
	// engine centers it between that boundary and the next one up; the
	// outermost boundary carries no label.
	var (
		layout = make([]float64, len(data)+1)
		labels = make([]string, len(data)+1)
	)
	layout[0] = gridRect.Top()
	for i, s := range data {
		layout[i+1] = gridRect.Top() + a.Scaler.Scale(s) + a.Scaler.Space()
		labels[i+1] = s
	}
	return renderVertical(a.vertical(a.Orientation, a.Title, true), layout, labels, axisRect, gridRect, &a.items)
}

func (a *CategoryAxis) SizeHint(which SizeHint) Size {
	return sizeHint(a.vertical(a.Orientation, a.Title, true), &a.items, which)
}

// renderVertical runs one layout pass over the pooled items. The layout
// engine walks ticks bottom to top, so top-first tick sequences get
// reversed together with their labels.
func renderVertical(va VerticalAxis, layout []float64, labels []string, axisRect, gridRect Rect, items **AxisItems) svg.Element {
	if len(layout) > 1 && layout[0] < layout[len(layout)-1] {
		for i, j := 0, len(layout)-1; i < j; i, j = i+1, j-1 {
			layout[i], layout[j] = layout[j], layout[i]
			labels[i], labels[j] = labels[j], labels[i]
		}
	}
	if *items == nil {
		*items = NewAxisItems()
	}
	(*items).Resize(len(layout), va.Interval)
	va.UpdateGeometry(layout, labels, axisRect, gridRect, *items)
	return (*items).Render()
}

func sizeHint(va VerticalAxis, items **AxisItems, which SizeHint) Size {
	if *items == nil {
		*items = NewAxisItems()
	}
	return va.SizeHint(which, *items)
}
