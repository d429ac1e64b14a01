package plotter

import (
	"github.com/midbel/svg"
)

// PointFunc draws a marker at a scaled data point.
type PointFunc func(svg.Pos) svg.Element

func Circle(size float64) PointFunc {
	return func(pos svg.Pos) svg.Element {
		var el svg.Circle
		el.Pos = pos
		el.Fill = svg.NewFill(currentColour)
		el.Radius = size / 2
		return el.AsElement()
	}
}

func Square(size float64) PointFunc {
	return func(pos svg.Pos) svg.Element {
		half := size / 2
		pos.X -= half
		pos.Y -= half

		var el svg.Rect
		el.Pos = pos
		el.Dim = svg.NewDim(size, size)
		el.Fill = svg.NewFill(currentColour)
		return el.AsElement()
	}
}

func Diamond(size float64) PointFunc {
	return func(pos svg.Pos) svg.Element {
		half := size / 2
		pos.X -= half
		pos.Y -= half

		var el svg.Rect
		el.Pos = pos
		el.Dim = svg.NewDim(size, size)
		el.Fill = svg.NewFill(currentColour)
		el.Transform.RA = 45
		el.Transform.RX = pos.X + half
		el.Transform.RY = pos.Y + half
		return el.AsElement()
	}
}
