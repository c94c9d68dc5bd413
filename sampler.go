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

package outline

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"
)

// Sampler assigns a level to every pixel.
//
// Level must be deterministic: repeated calls with the same coordinates
// must return the same value.  [Trace] calls Level only for pixels inside
// the traced region.
type Sampler interface {
	Level(x, y int) int
}

// SamplerFunc adapts an ordinary function to the [Sampler] interface.
type SamplerFunc func(x, y int) int

// Level calls f(x, y).
func (f SamplerFunc) Level(x, y int) int {
	return f(x, y)
}

// Grid is an in-memory level raster.
// The zero value is an empty grid.
type Grid struct {
	Rect   image.Rectangle
	Levels []int // row-major, len(Levels) == Rect.Dx()*Rect.Dy()
}

// NewGrid allocates a grid covering r, with all levels set to 0.
func NewGrid(r image.Rectangle) *Grid {
	return &Grid{
		Rect:   r,
		Levels: make([]int, r.Dx()*r.Dy()),
	}
}

func (g *Grid) offset(x, y int) int {
	return (y-g.Rect.Min.Y)*g.Rect.Dx() + (x - g.Rect.Min.X)
}

// Level returns the level of pixel (x, y).  Pixels outside the grid
// have level 0.
func (g *Grid) Level(x, y int) int {
	if !(image.Point{X: x, Y: y}).In(g.Rect) {
		return 0
	}
	return g.Levels[g.offset(x, y)]
}

// Set changes the level of pixel (x, y).
// Pixels outside the grid are ignored.
func (g *Grid) Set(x, y, level int) {
	if !(image.Point{X: x, Y: y}).In(g.Rect) {
		return
	}
	g.Levels[g.offset(x, y)] = level
}

// errGridShape is returned by ParseGrid for rows of different length.
var errGridShape = errors.New("outline: grid rows have different lengths")

// ParseGrid reads a grid from rows of text, one byte per pixel.
// The characters '0'-'9' denote the levels 0-9, 'a'-'z' the levels
// 10-35, and '.' is level 0.  The grid starts at (0, 0).
func ParseGrid(rows ...string) (*Grid, error) {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	g := NewGrid(image.Rect(0, 0, width, len(rows)))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d: %w", y, errGridShape)
		}
		for x := range len(row) {
			c := row[x]
			var level int
			switch {
			case c == '.':
				level = 0
			case c >= '0' && c <= '9':
				level = int(c - '0')
			case c >= 'a' && c <= 'z':
				level = int(c-'a') + 10
			default:
				return nil, fmt.Errorf("row %d, column %d: unexpected character %q", y, x, c)
			}
			g.Set(x, y, level)
		}
	}
	return g, nil
}

// String formats the grid in the notation accepted by [ParseGrid].
// Levels outside 0-35 are shown as '?'.
func (g *Grid) String() string {
	const digits = "0123456789abcdefghijklmnopqrstuvwxyz"
	var b strings.Builder
	for y := g.Rect.Min.Y; y < g.Rect.Max.Y; y++ {
		for x := g.Rect.Min.X; x < g.Rect.Max.X; x++ {
			l := g.Level(x, y)
			if l >= 0 && l < len(digits) {
				b.WriteByte(digits[l])
			} else {
				b.WriteByte('?')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// AlphaBands returns a sampler which divides the alpha channel of img into
// n equally sized bands.  Fully transparent pixels have level 0, fully
// opaque pixels have level n-1.
func AlphaBands(img image.Image, n int) Sampler {
	return SamplerFunc(func(x, y int) int {
		_, _, _, a := img.At(x, y).RGBA()
		return band(a, n)
	})
}

// GrayBands returns a sampler which divides the luminance of img into n
// equally sized bands.  Black pixels have level 0, white pixels have
// level n-1.
func GrayBands(img image.Image, n int) Sampler {
	return SamplerFunc(func(x, y int) int {
		c := color.Gray16Model.Convert(img.At(x, y)).(color.Gray16)
		return band(uint32(c.Y), n)
	})
}

// band maps a 16 bit channel value to one of n levels.
func band(v uint32, n int) int {
	if n <= 1 {
		return 0
	}
	l := int(uint64(v) * uint64(n) / 0x10000)
	return min(l, n-1)
}

// PaletteIndex returns a sampler which uses the palette index of each
// pixel as its level.
func PaletteIndex(img *image.Paletted) Sampler {
	return SamplerFunc(func(x, y int) int {
		return int(img.ColorIndexAt(x, y))
	})
}
