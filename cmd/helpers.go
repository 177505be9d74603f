package cmd

import (
	"fmt"
	"image/color"

	"github.com/spf13/cobra"

	"github.com/openamr/micplot/internal/chart"
	cfgpkg "github.com/openamr/micplot/internal/config"
)

// outputFlags are the flags shared by the chart-producing commands. A flag
// left at its zero value defers to the loaded configuration.
type outputFlags struct {
	input   string
	outDir  string
	minYear int
	suffix  string
	width   float64
	height  float64
	dpi     int
}

func addOutputFlags(c *cobra.Command, f *outputFlags) {
	c.Flags().StringVarP(&f.input, "input", "i", "", "path to the percentile CSV (overrides config)")
	c.Flags().StringVarP(&f.outDir, "out", "o", "", "output directory for PNG files (overrides config)")
	c.Flags().IntVar(&f.minYear, "min-year", 0, "drop data points before this year (0 = no clamp)")
	c.Flags().StringVar(&f.suffix, "suffix", "", "filename suffix before .png (e.g. _percentiles)")
	c.Flags().Float64Var(&f.width, "width", 0, "image width in inches (overrides config)")
	c.Flags().Float64Var(&f.height, "height", 0, "image height in inches (overrides config)")
	c.Flags().IntVar(&f.dpi, "dpi", 0, "image resolution (overrides config)")
}

// resolve merges flags over config and builds the chart options.
func (f *outputFlags) resolve(c *cobra.Command, g *cfgpkg.Global) (input, outDir string, opt chart.Options, err error) {
	input = g.InputPath
	if f.input != "" {
		input = f.input
	}
	outDir = g.OutputDir
	if f.outDir != "" {
		outDir = f.outDir
	}

	opt = chart.DefaultOptions()
	opt.MinYear = g.MinYear
	if c.Flags().Changed("min-year") {
		opt.MinYear = f.minYear
	}
	if g.WidthIn > 0 {
		opt.Width = g.WidthIn
	}
	if f.width > 0 {
		opt.Width = f.width
	}
	if g.HeightIn > 0 {
		opt.Height = g.HeightIn
	}
	if f.height > 0 {
		opt.Height = f.height
	}
	if g.DPI > 0 {
		opt.DPI = g.DPI
	}
	if f.dpi > 0 {
		opt.DPI = f.dpi
	}

	if opt.ColorP10, err = configColor("colors.p10", g.Colors.P10, opt.ColorP10); err != nil {
		return "", "", opt, err
	}
	if opt.ColorP50, err = configColor("colors.p50", g.Colors.P50, opt.ColorP50); err != nil {
		return "", "", opt, err
	}
	if opt.ColorP90, err = configColor("colors.p90", g.Colors.P90, opt.ColorP90); err != nil {
		return "", "", opt, err
	}
	return input, outDir, opt, nil
}

// configColor parses a configured hex color, keeping the default when the
// key is unset.
func configColor(key, hex string, def color.Color) (color.Color, error) {
	if hex == "" {
		return def, nil
	}
	col, err := chart.ParseHexColor(hex)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", key, err)
	}
	return col, nil
}
