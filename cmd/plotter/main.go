package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/midbel/plotter"
	"github.com/midbel/slices"
	"golang.org/x/sync/errgroup"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
	defaultTicks  = 7
)

var defaultPad = plotter.Padding{
	Top:    60,
	Right:  60,
	Bottom: 60,
	Left:   60,
}

func main() {
	var (
		title  = flag.String("title", "", "vertical axis title")
		xcol   = flag.Int("xcol", 0, "index of x column")
		ycol   = flag.Int("ycol", 1, "index of y column")
		ticks  = flag.Int("ticks", defaultTicks, "ticks on the vertical axis")
		xdom   = flag.String("xdom", "", "domain for x values")
		ydom   = flag.String("ydom", "", "domain for y values")
		width  = flag.Float64("width", defaultWidth, "chart width")
		height = flag.Float64("height", defaultHeight, "chart height")
		marker = flag.Float64("marker", 0, "marker size on data points")
		result = flag.String("file", "", "output file")
	)
	flag.Parse()

	series, err := loadSeries(flag.Args(), *xcol, *ycol)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if len(series) == 0 {
		fmt.Fprintln(os.Stderr, "no input file given")
		os.Exit(1)
	}
	drawHeight := *height - defaultPad.Vertical()
	yscale, err := numberScale(*ydom, yValues(series), drawHeight, true)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ch := plotter.Chart{
		Title:   *title,
		Width:   *width,
		Height:  *height,
		Padding: defaultPad,
		Left: &plotter.NumberAxis{
			Title:       *title,
			Orientation: plotter.OrientLeft,
			Ticks:       *ticks,
			Scaler:      yscale,
		},
	}
	// the axis strip widens when the axis carries a title, so the x range
	// comes from the plot area the chart will actually draw into
	xscale, err := numberScale(*xdom, xValues(series), ch.Grid().W, false)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	set := make([]plotter.Data, len(series))
	for i, s := range series {
		s.X = xscale
		s.Y = yscale
		s.Color = plotter.Category10.Color(i)
		if *marker > 0 {
			s.Marker = plotter.Circle(*marker)
		}
		set[i] = s
	}
	if err := renderChart(*result, ch, set); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func loadSeries(files []string, xcol, ycol int) ([]*plotter.SplineSerie, error) {
	var (
		grp errgroup.Group
		all = make([]*plotter.SplineSerie, len(files))
	)
	for i := range files {
		i := i
		grp.Go(func() error {
			points, err := readPoints(files[i], xcol, ycol)
			if err != nil {
				return fmt.Errorf("%s: %w", files[i], err)
			}
			ser := plotter.NewSplineSerie(points...)
			ser.Title = getIdent(files[i])
			all[i] = ser
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return all, nil
}

func readPoints(file string, x, y int) ([]plotter.Point, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	var (
		rs     = csv.NewReader(r)
		points []plotter.Point
	)
	rs.Read()
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if x < 0 || x >= len(row) || y < 0 || y >= len(row) {
			return nil, fmt.Errorf("invalid x/y index columns given")
		}
		px, err := strconv.ParseFloat(row[x], 64)
		if err != nil {
			return nil, err
		}
		py, err := strconv.ParseFloat(row[y], 64)
		if err != nil {
			return nil, err
		}
		points = append(points, plotter.Pt(px, py))
	}
	return points, nil
}

func numberScale(str string, values []float64, length float64, reverse bool) (plotter.Scaler[float64], error) {
	var fn, tn float64
	if str != "" {
		vs := strings.Split(str, ":")
		if len(vs) != 2 {
			return nil, fmt.Errorf("invalid number of values given for domain")
		}
		var err error
		fn, err = strconv.ParseFloat(slices.Fst(vs), 64)
		if err != nil {
			return nil, err
		}
		tn, err = strconv.ParseFloat(slices.Lst(vs), 64)
		if err != nil {
			return nil, err
		}
	} else {
		if len(values) == 0 {
			return nil, fmt.Errorf("no values to compute the domain from")
		}
		fn, tn = values[0], values[0]
		for _, v := range values {
			if v < fn {
				fn = v
			}
			if v > tn {
				tn = v
			}
		}
	}
	if reverse {
		fn, tn = tn, fn
	}
	return plotter.NumberScaler(plotter.NumberDomain(fn, tn), plotter.NewRange(0, length)), nil
}

func xValues(series []*plotter.SplineSerie) []float64 {
	var all []float64
	for _, s := range series {
		for i := 0; i < s.Len(); i++ {
			all = append(all, s.At(i).X)
		}
	}
	return all
}

func yValues(series []*plotter.SplineSerie) []float64 {
	var all []float64
	for _, s := range series {
		for i := 0; i < s.Len(); i++ {
			all = append(all, s.At(i).Y)
		}
	}
	return all
}

func renderChart(file string, ch plotter.Chart, series []plotter.Data) error {
	var w io.Writer = os.Stdout
	if file != "" {
		f, err := os.Create(file)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	ch.Render(w, series...)
	return nil
}

func getIdent(file string) string {
	file = filepath.Base(file)
	for {
		e := filepath.Ext(file)
		if e == "" {
			break
		}
		file = strings.TrimSuffix(file, e)
	}
	return file
}
