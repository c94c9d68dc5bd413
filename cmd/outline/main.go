// seehuhn.de/go/outline - contour extraction for level rasters
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command outline traces the level boundaries of an image.
//
// The input image is quantized into levels, either by alpha, by
// luminance, or by palette index, and the boundaries between the levels
// are written as a PDF preview or as JSON.
package main

import (
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"seehuhn.de/go/outline"
	"seehuhn.de/go/outline/fit"
	"seehuhn.de/go/outline/internal/preview"
)

func main() {
	var (
		in        = flag.String("in", "", "input image (png, gif, jpeg, bmp, tiff or webp)")
		out       = flag.String("out", "", "output file (default: input name with new extension)")
		levels    = flag.Int("levels", 2, "number of levels for the alpha and gray modes")
		mode      = flag.String("mode", "alpha", "level source: alpha, gray or palette")
		empty     = flag.Int("empty", 0, "level used outside the image")
		smoothing = flag.Float64("smoothing", outline.DefaultOptions.Smoothing, "maximal curve distance in pixels")
		polyline  = flag.Bool("polyline", false, "output straight line segments instead of curves")
		scale     = flag.Float64("scale", 1, "resize the image by this factor before tracing")
		format    = flag.String("format", "pdf", "output format: pdf or json")
		verbose   = flag.Bool("v", false, "print debug messages")
	)
	flag.Parse()

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	outline.SetLogger(logger)

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *out == "" {
		*out = strings.TrimSuffix(*in, filepath.Ext(*in)) + "." + *format
	}

	cfg := &config{
		in:        *in,
		out:       *out,
		levels:    *levels,
		mode:      *mode,
		empty:     *empty,
		smoothing: *smoothing,
		polyline:  *polyline,
		scale:     *scale,
		format:    *format,
	}
	if err := run(cfg, logger); err != nil {
		logger.Error("outline failed", "error", err)
		os.Exit(1)
	}
}

type config struct {
	in, out   string
	levels    int
	mode      string
	empty     int
	smoothing float64
	polyline  bool
	scale     float64
	format    string
}

func run(cfg *config, logger *slog.Logger) error {
	img, err := loadImage(cfg.in)
	if err != nil {
		return err
	}
	if cfg.scale != 1 {
		img, err = resize(img, cfg.scale)
		if err != nil {
			return err
		}
	}

	sampler, err := newSampler(img, cfg.mode, cfg.levels)
	if err != nil {
		return err
	}

	// Trace in coordinates relative to the image origin.
	b := img.Bounds()
	if b.Min != (image.Point{}) {
		sampler = offset(sampler, b.Min)
		b = b.Sub(b.Min)
	}

	opt := outline.DefaultOptions
	opt.EmptyLevel = cfg.empty
	opt.Smoothing = cfg.smoothing
	if cfg.polyline {
		opt.Fitter = fit.Polyline{}
	}
	o, err := outline.Trace(sampler, b, &opt)
	if err != nil {
		return err
	}
	edges := o.Edges()
	outline.FitAll(edges, 0)
	logger.Info("traced",
		"file", cfg.in,
		"size", b.Size(),
		"segments", o.NumSegments(),
		"edges", len(edges),
		"corners", len(o.Corners()))

	switch cfg.format {
	case "pdf":
		err = preview.WritePDF(cfg.out, &preview.Page{
			Width:      b.Dx(),
			Height:     b.Dy(),
			Scale:      1,
			EmptyLevel: cfg.empty,
			Outline:    o,
		})
	case "json":
		err = writeJSON(cfg.out, o, b)
	default:
		err = fmt.Errorf("unknown output format %q", cfg.format)
	}
	if err != nil {
		return err
	}
	logger.Info("written", "file", cfg.out)
	return nil
}

func loadImage(fname string) (image.Image, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	img, _, err := image.Decode(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return img, nil
}

// resize scales the image by the given factor.  Paletted images keep their
// palette, so that palette indices remain meaningful.
func resize(img image.Image, factor float64) (image.Image, error) {
	b := img.Bounds()
	w := int(float64(b.Dx())*factor + 0.5)
	h := int(float64(b.Dy())*factor + 0.5)
	if factor <= 0 || w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid scale factor %g", factor)
	}
	r := image.Rect(0, 0, w, h)

	if p, ok := img.(*image.Paletted); ok {
		dst := image.NewPaletted(r, p.Palette)
		draw.NearestNeighbor.Scale(dst, r, p, b, draw.Src, nil)
		return dst, nil
	}
	dst := image.NewNRGBA(r)
	draw.ApproxBiLinear.Scale(dst, r, img, b, draw.Src, nil)
	return dst, nil
}

func newSampler(img image.Image, mode string, levels int) (outline.Sampler, error) {
	switch mode {
	case "alpha":
		return outline.AlphaBands(img, levels), nil
	case "gray":
		return outline.GrayBands(img, levels), nil
	case "palette":
		p, ok := img.(*image.Paletted)
		if !ok {
			return nil, fmt.Errorf("palette mode needs a paletted image, got %T", img)
		}
		return outline.PaletteIndex(p), nil
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
}

func offset(s outline.Sampler, origin image.Point) outline.Sampler {
	return outline.SamplerFunc(func(x, y int) int {
		return s.Level(x+origin.X, y+origin.Y)
	})
}

func writeJSON(fname string, o *outline.Outline, b image.Rectangle) (err error) {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fd.Close(); err == nil {
			err = cerr
		}
	}()

	rec := preview.NewRecord(filepath.Base(fname), b.Dx(), b.Dy(), o, true)
	return preview.WriteJSON(fd, rec)
}
