package plotter

import "math"

const deg2rad = math.Pi / 180

type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{
		X: x,
		Y: y,
		W: w,
		H: h,
	}
}

func (r Rect) Left() float64 {
	return r.X
}

func (r Rect) Right() float64 {
	return r.X + r.W
}

func (r Rect) Top() float64 {
	return r.Y
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

type Size struct {
	W float64
	H float64
}

func (s Size) Zero() bool {
	return s.W == 0 && s.H == 0
}

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}
