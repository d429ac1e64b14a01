package plotter

import "math"

type SizeHint int

const (
	MinimumSize SizeHint = iota
	PreferredSize
)

// VerticalAxis places the render items of a left or right aligned axis:
// baseline, rotated title, grid lines, tick marks, labels and shading
// bands. Tick positions come in pixel space from an upstream scaler pass.
type VerticalAxis struct {
	Orientation
	Title        string
	Interval     bool
	LabelsAngle  float64
	LabelFont    Font
	TitleFont    Font
	LabelPadding float64
	TitlePadding float64
	Truncate     Truncator
}

func (a VerticalAxis) truncator() Truncator {
	if a.Truncate != nil {
		return a.Truncate
	}
	return Ellipsis{}
}

// UpdateGeometry positions every item in the pool for the given tick
// layout. An empty layout is a no-op. Tick positions, labels and pooled
// label items must agree in length; a mismatch is a programming error.
func (a VerticalAxis) UpdateGeometry(layout []float64, labels []string, axisRect, gridRect Rect, items *AxisItems) {
	if len(layout) == 0 {
		return
	}
	if len(labels) != len(layout) || len(items.Labels) != len(layout) {
		panic("plotter: tick, label and item counts differ")
	}
	var (
		trunc  = a.truncator()
		height = axisRect.Bottom()
	)

	if a.Orientation == OrientLeft {
		items.Arrow.SetLine(axisRect.Right(), gridRect.Top(), axisRect.Right(), gridRect.Bottom())
	} else {
		items.Arrow.SetLine(axisRect.Left(), gridRect.Top(), axisRect.Left(), gridRect.Bottom())
	}
	items.Arrow.Visible = true

	available := axisRect.W - a.LabelPadding
	if a.Title != "" && items.Title.Visible {
		available -= a.TitlePadding * 2
		minLabel := TextBoundingRect(a.LabelFont, "...").W
		items.Title.Font = a.TitleFont
		items.Title.Text, _ = trunc.Truncate(a.TitleFont, a.Title, 90, available-minLabel, gridRect.H)

		bounds := items.Title.BoundingRect()
		items.Title.Y = gridRect.Top() + gridRect.H/2 - bounds.H/2
		if a.Orientation == OrientLeft {
			items.Title.X = axisRect.Left() - bounds.W/2 + bounds.H/2 + a.TitlePadding
		} else {
			items.Title.X = axisRect.Right() - bounds.W/2 - bounds.H/2 - a.TitlePadding
		}
		items.Title.OriginX = bounds.W / 2
		items.Title.OriginY = bounds.H / 2
		items.Title.Rotation = 270
		available -= bounds.H
	}

	for i := 0; i < len(layout); i++ {
		var (
			grid  = items.Grid[i]
			tick  = items.Ticks[i]
			label = items.Labels[i]
		)
		grid.SetLine(gridRect.Left(), layout[i], gridRect.Right(), layout[i])

		// empty labels are rendered empty, never truncated
		var bounds Rect
		if labels[i] == "" {
			label.Text = ""
		} else {
			labelHeight := axisRect.H/float64(len(layout)) - 2*a.LabelPadding
			label.Text, bounds = trunc.Truncate(a.LabelFont, labels[i], a.LabelsAngle, available, labelHeight)
		}
		label.Font = a.LabelFont

		var (
			rect       = label.BoundingRect()
			widthDiff  = rect.W - bounds.W
			heightDiff = rect.H - bounds.H
		)
		label.OriginX = rect.W / 2
		label.OriginY = rect.H / 2
		label.Rotation = a.LabelsAngle
		label.Y = layout[i] - rect.H/2
		if a.Orientation == OrientLeft {
			label.X = axisRect.Right() - rect.W + widthDiff/2 - a.LabelPadding
			tick.SetLine(axisRect.Right()-a.LabelPadding, layout[i], axisRect.Right(), layout[i])
		} else {
			label.X = axisRect.Left() + a.LabelPadding - widthDiff/2
			tick.SetLine(axisRect.Left(), layout[i], axisRect.Left()+a.LabelPadding, layout[i])
		}

		// interval axes center the label between this boundary and the
		// next, both clamped to the plot area; when the clamped span at a
		// grid edge is too narrow for the label, hide it instead
		forceHide := false
		if a.Interval && i+1 != len(layout) {
			var (
				lower = math.Min(layout[i], gridRect.Bottom())
				upper = math.Max(layout[i+1], gridRect.Top())
				delta = lower - upper
			)
			if delta < bounds.H && (lower == gridRect.Bottom() || upper == gridRect.Top()) {
				forceHide = true
			} else {
				label.Y = lower - delta/2 - rect.H/2
			}
		}

		// overlap detection, with one pixel slack for rounding
		if forceHide || (!a.Interval && (label.Y+bounds.H > height ||
			label.Y+heightDiff/2-1 > axisRect.Bottom() ||
			label.Y+heightDiff/2 < axisRect.Top()-1)) {
			label.Visible = false
		} else {
			label.Visible = true
			height = label.Y
		}

		// every other slot gets a shading band
		if (i+1)%2 == 1 && i > 1 {
			var (
				shade = items.Shades[i/2-1]
				lower = math.Min(layout[i-1], gridRect.Bottom())
				upper = math.Max(layout[i], gridRect.Top())
			)
			shade.Rect = NewRect(gridRect.Left(), upper, gridRect.W, lower-upper)
			shade.Visible = shade.Rect.H > 0
		}

		// grid lines and ticks outside the plot area stay hidden
		if layout[i] < gridRect.Top() || layout[i] > gridRect.Bottom() {
			grid.Visible = false
			tick.Visible = false
		} else {
			grid.Visible = true
			tick.Visible = true
		}
	}

	// interval axes have no natural tick at the outermost category edges
	if a.Interval {
		n := len(layout)
		items.Grid[n].SetLine(gridRect.Left(), gridRect.Top(), gridRect.Right(), gridRect.Top())
		items.Grid[n].Visible = true
		items.Grid[n+1].SetLine(gridRect.Left(), gridRect.Bottom(), gridRect.Right(), gridRect.Bottom())
		items.Grid[n+1].Visible = true
	}
}

// SizeHint reports the perpendicular footprint needed for the rotated
// title, zero when there is no title to show.
func (a VerticalAxis) SizeHint(which SizeHint, items *AxisItems) Size {
	if a.Title == "" || !items.Title.Visible {
		return Size{}
	}
	text := a.Title
	if which == MinimumSize {
		text = "..."
	}
	r := TextBoundingRect(a.TitleFont, text)
	return Size{
		W: r.H + a.TitlePadding*2,
		H: r.W,
	}
}
