package plotter

import (
	"math"
	"unicode/utf8"
)

type Font struct {
	Family string
	Size   float64
}

func NewFont(size float64) Font {
	return Font{Size: size}
}

const (
	glyphRatio = 0.6
	lineRatio  = 1.2
)

// TextBoundingRect estimates the rendered bounds of a single line of text,
// with the same fixed-ratio metrics the SVG output assumes.
func TextBoundingRect(font Font, text string) Rect {
	if text == "" {
		return Rect{}
	}
	var r Rect
	r.W = float64(utf8.RuneCountInString(text)) * font.Size * glyphRatio
	r.H = font.Size * lineRatio
	return r
}

// Truncator fits a string into the given width and height. Implementations
// return the text unchanged when it fits, a shortened variant otherwise,
// together with the bounds of the rendered (possibly rotated) glyph block.
// Zero-area constraints yield an empty result, never an error.
type Truncator interface {
	Truncate(font Font, text string, angle, maxWidth, maxHeight float64) (string, Rect)
}

// Ellipsis is the default Truncator. It drops runes from the end of the
// text, with an ellipsis appended, until the rotated bounds fit.
type Ellipsis struct{}

func (Ellipsis) Truncate(font Font, text string, angle, maxWidth, maxHeight float64) (string, Rect) {
	if text == "" || maxWidth <= 0 || maxHeight <= 0 {
		return "", Rect{}
	}
	r := rotatedBounds(TextBoundingRect(font, text), angle)
	if r.W <= maxWidth && r.H <= maxHeight {
		return text, r
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		short := string(runes) + "..."
		r = rotatedBounds(TextBoundingRect(font, short), angle)
		if r.W <= maxWidth && r.H <= maxHeight {
			return short, r
		}
	}
	return "", Rect{}
}

// rotatedBounds returns the axis aligned bounds of r rotated by angle
// degrees about its center.
func rotatedBounds(r Rect, angle float64) Rect {
	if angle == 0 {
		return r
	}
	var (
		rad = angle * deg2rad
		sin = math.Abs(math.Sin(rad))
		cos = math.Abs(math.Cos(rad))
	)
	return Rect{
		W: r.W*cos + r.H*sin,
		H: r.W*sin + r.H*cos,
	}
}
