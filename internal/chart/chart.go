package chart

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/openamr/micplot/internal/table"
)

// Fixed series labels; the legend is keyed by these.
const (
	LabelP10 = "10th pct."
	LabelP50 = "50th pct."
	LabelP90 = "90th pct."
)

// Options controls rendering and output geometry.
type Options struct {
	// MinYear drops points below this year. 0 means no clamp.
	MinYear int
	// Width and Height are the raster size in inches.
	Width  float64
	Height float64
	// DPI is the raster resolution.
	DPI int
	// Series colors keyed by percentile.
	ColorP10 color.Color
	ColorP50 color.Color
	ColorP90 color.Color
}

// DefaultOptions returns the canonical 7×4 inch, 150 DPI chart setup.
func DefaultOptions() Options {
	return Options{
		Width:    7,
		Height:   4,
		DPI:      150,
		ColorP10: color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
		ColorP50: color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
		ColorP90: color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	}
}

// Title composes the chart title for one (organism, drug) pair.
func Title(organism, drug string) string {
	return fmt.Sprintf("%s – %s MIC Percentiles Over Time", organism, drug)
}

// Render draws the three percentile series for one pair on a log-scaled
// y-axis. Rows must already be sorted by year. Every percentile value must
// be strictly positive; a zero or negative value is an InvalidValueError
// and nothing is drawn.
func Render(organism, drug string, rows []table.Record, opt Options) (*plot.Plot, error) {
	rows = clampYears(rows, opt.MinYear)
	if len(rows) == 0 {
		return nil, &table.NoDataError{Organism: organism, Drug: drug}
	}
	if err := validate(organism, drug, rows); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = Title(organism, drug)
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "MIC (µg/mL)"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Legend.Top = false
	p.Legend.Left = false
	p.Legend.Padding = vg.Points(2)

	p10, p50, p90 := seriesPoints(rows)
	series := []struct {
		label  string
		pts    plotter.XYs
		color  color.Color
		dashes []vg.Length
	}{
		{LabelP10, p10, opt.ColorP10, nil},
		{LabelP50, p50, opt.ColorP50, []vg.Length{vg.Points(5), vg.Points(2)}},
		{LabelP90, p90, opt.ColorP90, []vg.Length{vg.Points(6), vg.Points(2), vg.Points(1), vg.Points(2)}},
	}
	for _, s := range series {
		line, points, err := plotter.NewLinePoints(s.pts)
		if err != nil {
			return nil, fmt.Errorf("%s – %s: build series %s: %w", organism, drug, s.label, err)
		}
		line.LineStyle.Color = s.color
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Dashes = s.dashes
		points.GlyphStyle.Color = s.color
		points.GlyphStyle.Radius = vg.Points(2)
		points.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(line, points)
		p.Legend.Add(s.label, line, points)
	}
	return p, nil
}

func clampYears(rows []table.Record, minYear int) []table.Record {
	if minYear <= 0 {
		return rows
	}
	out := rows[:0:0]
	for _, r := range rows {
		if r.Year >= minYear {
			out = append(out, r)
		}
	}
	return out
}

func validate(organism, drug string, rows []table.Record) error {
	for _, r := range rows {
		for _, c := range []struct {
			name  string
			value float64
		}{{"p10", r.P10}, {"median", r.Median}, {"p90", r.P90}} {
			if c.value <= 0 {
				return &table.InvalidValueError{
					Organism: organism,
					Drug:     drug,
					Year:     r.Year,
					Column:   c.name,
					Value:    c.value,
				}
			}
		}
	}
	return nil
}

func seriesPoints(rows []table.Record) (p10, p50, p90 plotter.XYs) {
	p10 = make(plotter.XYs, len(rows))
	p50 = make(plotter.XYs, len(rows))
	p90 = make(plotter.XYs, len(rows))
	for i, r := range rows {
		x := float64(r.Year)
		p10[i] = plotter.XY{X: x, Y: r.P10}
		p50[i] = plotter.XY{X: x, Y: r.Median}
		p90[i] = plotter.XY{X: x, Y: r.P90}
	}
	return p10, p50, p90
}

// ParseHexColor parses a #rrggbb color as used in the config file.
func ParseHexColor(s string) (color.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return nil, fmt.Errorf("invalid color %q (want #rrggbb)", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q (want #rrggbb)", s)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
