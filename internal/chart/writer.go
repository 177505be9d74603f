package chart

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/openamr/micplot/internal/utils"
)

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]+`)

// SafeName replaces every run of non-alphanumeric characters with a single
// underscore and trims leading/trailing underscores. It is idempotent.
func SafeName(s string) string {
	return strings.Trim(nonAlnum.ReplaceAllString(s, "_"), "_")
}

// Filename builds the output file name for one pair. suffix, when not
// empty, is inserted before the extension (e.g. "_percentiles").
func Filename(organism, drug, suffix string) string {
	return SafeName(organism) + "_" + SafeName(drug) + suffix + ".png"
}

// Save ensures dir exists, renders p to PNG at the configured size and
// resolution, and returns the written path. An existing file at the same
// path is overwritten.
func Save(p *plot.Plot, dir, organism, drug, suffix string, opt Options) (string, error) {
	if err := utils.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, Filename(organism, drug, suffix))
	if err := WritePNG(p, path, opt); err != nil {
		return "", err
	}
	return path, nil
}

// WritePNG rasterizes p at opt.Width×opt.Height inches and opt.DPI.
func WritePNG(p *plot.Plot, path string, opt Options) error {
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(opt.Width)*vg.Inch, vg.Length(opt.Height)*vg.Inch),
		vgimg.UseDPI(opt.DPI),
	)
	p.Draw(draw.New(c))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write image: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close image: %w", err)
	}
	return nil
}
