package plotter

const (
	DefaultLabelPadding = 4.0
	DefaultTitlePadding = 4.0
)

// AxisStyle groups the cosmetic knobs shared by every axis kind. The zero
// value picks the package defaults.
type AxisStyle struct {
	LabelFont    Font
	TitleFont    Font
	LabelPadding float64
	TitlePadding float64
	LabelsAngle  float64
	Truncate     Truncator
}

func (s AxisStyle) vertical(orient Orientation, title string, interval bool) VerticalAxis {
	if s.LabelFont.Size == 0 {
		s.LabelFont = NewFont(FontSize)
	}
	if s.TitleFont.Size == 0 {
		s.TitleFont = NewFont(FontSize)
	}
	if s.LabelPadding == 0 {
		s.LabelPadding = DefaultLabelPadding
	}
	if s.TitlePadding == 0 {
		s.TitlePadding = DefaultTitlePadding
	}
	return VerticalAxis{
		Orientation:  orient,
		Title:        title,
		Interval:     interval,
		LabelsAngle:  s.LabelsAngle,
		LabelFont:    s.LabelFont,
		TitleFont:    s.TitleFont,
		LabelPadding: s.LabelPadding,
		TitlePadding: s.TitlePadding,
		Truncate:     s.Truncate,
	}
}
