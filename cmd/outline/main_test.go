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

package main

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func writeTestImage(t *testing.T) string {
	t.Helper()

	// opaque square with a transparent hole, at a non-zero origin
	img := image.NewNRGBA(image.Rect(5, 5, 15, 15))
	for y := 7; y < 13; y++ {
		for x := 7; x < 13; x++ {
			if x == 10 && y == 10 {
				continue
			}
			img.Set(x, y, color.NRGBA{A: 255})
		}
	}

	fname := filepath.Join(t.TempDir(), "in.png")
	fd, err := os.Create(fname)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(fd, img); err != nil {
		t.Fatal(err)
	}
	if err := fd.Close(); err != nil {
		t.Fatal(err)
	}
	return fname
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunJSON(t *testing.T) {
	in := writeTestImage(t)
	out := filepath.Join(t.TempDir(), "out.json")
	cfg := &config{
		in:        in,
		out:       out,
		levels:    2,
		mode:      "alpha",
		smoothing: 1,
		polyline:  true,
		scale:     1,
		format:    "json",
	}
	if err := run(cfg, quietLogger()); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Outlines []struct {
			Width    int `json:"width"`
			Segments int `json:"segments"`
			Edges    []struct {
				Closed bool `json:"closed"`
			} `json:"edges"`
		} `json:"outlines"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if len(doc.Outlines) != 1 {
		t.Fatalf("got %d outlines, want 1", len(doc.Outlines))
	}
	rec := doc.Outlines[0]
	if rec.Width != 10 {
		t.Errorf("got width %d, want 10", rec.Width)
	}
	if rec.Segments != 6*4+4 {
		t.Errorf("got %d segments, want %d", rec.Segments, 6*4+4)
	}
	if len(rec.Edges) != 2 {
		t.Fatalf("got %d edges, want 2", len(rec.Edges))
	}
	for i, e := range rec.Edges {
		if !e.Closed {
			t.Errorf("edge %d is not closed", i)
		}
	}
}

func TestRunPDF(t *testing.T) {
	in := writeTestImage(t)
	out := filepath.Join(t.TempDir(), "out.pdf")
	cfg := &config{
		in:        in,
		out:       out,
		levels:    2,
		mode:      "gray",
		smoothing: 0.5,
		scale:     2,
		format:    "pdf",
	}
	if err := run(cfg, quietLogger()); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Error(err)
	}
}

func TestRunErrors(t *testing.T) {
	in := writeTestImage(t)
	dir := t.TempDir()
	cases := []*config{
		{in: in, out: filepath.Join(dir, "a"), mode: "palette", levels: 2, scale: 1, format: "json"},
		{in: in, out: filepath.Join(dir, "b"), mode: "hue", levels: 2, scale: 1, format: "json"},
		{in: in, out: filepath.Join(dir, "c"), mode: "alpha", levels: 2, scale: 1, format: "svg"},
		{in: in, out: filepath.Join(dir, "d"), mode: "alpha", levels: 2, scale: -1, format: "pdf"},
		{in: filepath.Join(dir, "missing.png"), out: filepath.Join(dir, "e"), mode: "alpha", levels: 2, scale: 1, format: "pdf"},
	}
	for i, cfg := range cases {
		if err := run(cfg, quietLogger()); err == nil {
			t.Errorf("case %d: expected an error", i)
		}
	}
}

func TestResizePaletted(t *testing.T) {
	pal := color.Palette{color.Black, color.White, color.Gray{Y: 128}}
	img := image.NewPaletted(image.Rect(0, 0, 4, 4), pal)
	img.SetColorIndex(1, 1, 2)

	res, err := resize(img, 2)
	if err != nil {
		t.Fatal(err)
	}
	p, ok := res.(*image.Paletted)
	if !ok {
		t.Fatalf("got %T, want *image.Paletted", res)
	}
	if got := p.ColorIndexAt(2, 2); got != 2 {
		t.Errorf("got palette index %d, want 2", got)
	}
	if got := p.ColorIndexAt(0, 0); got != 0 {
		t.Errorf("got palette index %d, want 0", got)
	}
}
