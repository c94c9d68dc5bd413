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

// Package coverage computes the pixel coverage of filled paths.
//
// This is used to check traced outlines: filling the boundary of a level
// must reproduce the pixels of that level.
package coverage

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// line is a non-horizontal line segment in device coordinates.
type line struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Filler converts paths to pixel coverage values, the fraction of each
// pixel's area inside the path, between 0 and 1.  The nonzero winding rule
// is used.  Buffers are reused between calls.
//
// A Filler is not safe for concurrent use.
type Filler struct {
	// Clip bounds the output.  Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the curve approximation tolerance in pixels.
	// Must be positive.
	Flatness float64

	// ImplicitClose closes every open subpath with a straight line back to
	// its start, as PDF fill operators do.
	ImplicitClose bool

	// smallPathThreshold is the maximal bounding box area (in pixels) for
	// which 2D buffers are used.  Larger paths use an active line list.
	smallPathThreshold int

	cover       []float32 // cover change per pixel; reused as output
	area        []float32 // area within pixel
	lines       []line
	activeIdx   []int
	rowHasLines []bool

	bboxFirst              bool
	xMin, xMax, yMin, yMax float64
}

// NewFiller returns a Filler for the given clip rectangle.
func NewFiller(clip rect.Rect) *Filler {
	return &Filler{
		Clip:               clip,
		Flatness:           defaultFlatness,
		smallPathThreshold: smallPathThreshold,
	}
}

// Fill fills the path and calls emit for every row with non-zero
// coverage.  The slice passed to emit is only valid during the call.
func (f *Filler) Fill(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := f.collectLines(p)
	if !ok {
		return
	}

	width := xMax - xMin
	height := yMax - yMin
	if width*height < f.smallPathThreshold {
		f.fillSmall(xMin, xMax, yMin, yMax, emit)
	} else {
		f.fillLarge(xMin, xMax, yMin, yMax, emit)
	}
}

// Mask fills the path and returns the coverage of all pixels in the clip
// rectangle, in row-major order.
func (f *Filler) Mask(p *path.Data) []float32 {
	x0, y0 := int(f.Clip.LLx), int(f.Clip.LLy)
	w := int(f.Clip.URx) - x0
	h := int(f.Clip.URy) - y0
	res := make([]float32, w*h)
	f.Fill(p, func(y, xMin int, coverage []float32) {
		copy(res[(y-y0)*w+(xMin-x0):], coverage)
	})
	return res
}

// collectLines flattens the path into the line list and returns the
// bounding box of all lines, clamped to the clip rectangle.
func (f *Filler) collectLines(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	f.lines = f.lines[:0]
	f.bboxFirst = true

	var current, subpath vec.Vec2
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if f.ImplicitClose && current != subpath {
				f.addLine(current, subpath)
			}
			current = p.Coords[coordIdx]
			subpath = current
			coordIdx++

		case path.CmdLineTo:
			f.addLine(current, p.Coords[coordIdx])
			current = p.Coords[coordIdx]
			coordIdx++

		case path.CmdQuadTo:
			f.flattenQuadratic(current, p.Coords[coordIdx], p.Coords[coordIdx+1])
			current = p.Coords[coordIdx+1]
			coordIdx += 2

		case path.CmdCubeTo:
			f.flattenCubic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2])
			current = p.Coords[coordIdx+2]
			coordIdx += 3

		case path.CmdClose:
			if current != subpath {
				f.addLine(current, subpath)
			}
			current = subpath
		}
	}
	if f.ImplicitClose && current != subpath {
		f.addLine(current, subpath)
	}

	if len(f.lines) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(f.xMin)), int(f.Clip.LLx))
	xMax = min(int(math.Floor(f.xMax))+1, int(f.Clip.URx))
	yMin = max(int(math.Floor(f.yMin)), int(f.Clip.LLy))
	yMax = min(int(math.Floor(f.yMax))+1, int(f.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// flattenQuadratic approximates a quadratic Bézier curve by lines.
func (f *Filler) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	n := 1
	if errLen := e.Length(); errLen > f.Flatness {
		n = int(math.Ceil(math.Sqrt(errLen / f.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		f.addLine(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates a cubic Bézier curve by lines, using Wang's
// formula for the number of pieces.
func (f *Filler) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)
	m := max(d1.Length(), d2.Length())
	n := 1
	if m > 0 {
		if nf := math.Sqrt(3 * m / (4 * f.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).Add(p1.Mul(3 * s * s * t)).Add(p2.Mul(3 * s * t * t)).Add(p3.Mul(t * t * t))
		f.addLine(prev, pt)
		prev = pt
	}
}

// addLine appends a line to the list.  Horizontal lines do not contribute
// to the coverage and are skipped.
func (f *Filler) addLine(a, b vec.Vec2) {
	dy := b.Y - a.Y
	if dy > -horizontalThreshold && dy < horizontalThreshold {
		return
	}

	f.lines = append(f.lines, line{
		x0: a.X, y0: a.Y,
		x1: b.X, y1: b.Y,
		dxdy: (b.X - a.X) / dy,
	})

	if f.bboxFirst {
		f.xMin, f.xMax = min(a.X, b.X), max(a.X, b.X)
		f.yMin, f.yMax = min(a.Y, b.Y), max(a.Y, b.Y)
		f.bboxFirst = false
	} else {
		f.xMin = min(f.xMin, a.X, b.X)
		f.xMax = max(f.xMax, a.X, b.X)
		f.yMin = min(f.yMin, a.Y, b.Y)
		f.yMax = max(f.yMax, a.Y, b.Y)
	}
}

// Coverage accumulation:
//
// For each pixel two values are collected.  cover is the signed vertical
// extent of the lines crossing the pixel, area weights this by the
// horizontal position of the crossing:
//
//	cover = sign * dy
//	area  = cover * (1 - xFrac)
//
// The coverage of pixel i in a row is then accum + area[i], where accum
// is the sum of cover over all pixels to the left of i.

// accumulate adds the contribution of l within scanline y to the buffers,
// which are indexed by x - bboxXMin.
func (f *Filler) accumulate(l *line, y int, cover, area []float32, bboxXMin, bboxXMax int) {
	yTop := max(float64(y), min(l.y0, l.y1))
	yBot := min(float64(y+1), max(l.y0, l.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if l.y1 < l.y0 {
		sign = -1
	}

	xLeft := l.x0 + l.dxdy*(yTop-l.y0)
	xRight := l.x0 + l.dxdy*(yBot-l.y0)
	if xLeft > xRight {
		xLeft, xRight = xRight, xLeft
	}
	pixLeft := int(math.Floor(xLeft))
	pixRight := int(math.Floor(xRight))

	if pixRight < bboxXMin {
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	}
	if pixLeft >= bboxXMax {
		return
	}

	if pixLeft == pixRight {
		f.accumulateColumn(l, yTop, yBot, sign, pixLeft, cover, area, bboxXMin, bboxXMax)
		return
	}

	dydx := 1 / l.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		yAtLeft := l.y0 + dydx*(float64(pix)-l.x0)
		yAtRight := l.y0 + dydx*(float64(pix+1)-l.x0)
		segYMin := max(min(yAtLeft, yAtRight), yTop)
		segYMax := min(max(yAtLeft, yAtRight), yBot)
		if segYMax <= segYMin {
			continue
		}

		c := sign * float32(segYMax-segYMin)
		yMid := (segYMin + segYMax) / 2
		xFrac := l.x0 + l.dxdy*(yMid-l.y0) - float64(pix)
		if pix < bboxXMin {
			cover[0] += c
			area[0] += c
		} else if pix < bboxXMax {
			idx := pix - bboxXMin
			cover[idx] += c
			area[idx] += c * float32(1-xFrac)
		}
	}
}

// accumulateColumn handles the part of a line inside a single pixel column.
func (f *Filler) accumulateColumn(l *line, yTop, yBot float64, sign float32, pix int, cover, area []float32, bboxXMin, bboxXMax int) {
	c := sign * float32(yBot-yTop)
	if pix < bboxXMin {
		cover[0] += c
		area[0] += c
		return
	}
	if pix >= bboxXMax {
		return
	}

	yMid := (yTop + yBot) / 2
	xFrac := l.x0 + l.dxdy*(yMid-l.y0) - float64(pix)
	idx := pix - bboxXMin
	cover[idx] += c
	area[idx] += c * float32(1-xFrac)
}

// integrate converts the accumulated values of one row into coverage,
// in place.
func integrate(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros returns the non-zero part of a row and its offset.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for hi > lo && coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// fillSmall uses one buffer for the whole bounding box.
func (f *Filler) fillSmall(xMin, xMax, yMin, yMax int, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	height := yMax - yMin

	size := width * height
	f.cover = slices.Grow(f.cover[:0], size)[:size]
	f.area = slices.Grow(f.area[:0], size)[:size]
	clear(f.cover)
	clear(f.area)
	f.rowHasLines = slices.Grow(f.rowHasLines[:0], height)[:height]
	clear(f.rowHasLines)

	for i := range f.lines {
		l := &f.lines[i]
		lo := max(int(math.Floor(min(l.y0, l.y1))), yMin)
		hi := min(int(math.Floor(max(l.y0, l.y1)))+1, yMax)
		for y := lo; y < hi; y++ {
			row := y - yMin
			off := row * width
			f.accumulate(l, y, f.cover[off:off+width], f.area[off:off+width], xMin, xMax)
			f.rowHasLines[row] = true
		}
	}

	for row := range height {
		if !f.rowHasLines[row] {
			continue
		}
		off := row * width
		coverage := f.cover[off : off+width]
		integrate(coverage, f.area[off:off+width])
		if trimmed, offset := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+offset, trimmed)
		}
	}
}

// fillLarge uses one row buffer and a list of active lines.
func (f *Filler) fillLarge(xMin, xMax, yMin, yMax int, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	f.cover = slices.Grow(f.cover[:0], width)[:width]
	f.area = slices.Grow(f.area[:0], width)[:width]

	slices.SortFunc(f.lines, func(a, b line) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	f.activeIdx = f.activeIdx[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		for next < len(f.lines) && min(f.lines[next].y0, f.lines[next].y1) < yf+1 {
			f.activeIdx = append(f.activeIdx, next)
			next++
		}
		if len(f.activeIdx) == 0 {
			continue
		}

		clear(f.cover)
		clear(f.area)
		touched := false
		for i := 0; i < len(f.activeIdx); {
			l := &f.lines[f.activeIdx[i]]
			if max(l.y0, l.y1) <= yf {
				// swap-remove lines which ended above this row
				f.activeIdx[i] = f.activeIdx[len(f.activeIdx)-1]
				f.activeIdx = f.activeIdx[:len(f.activeIdx)-1]
				continue
			}
			f.accumulate(l, y, f.cover, f.area, xMin, xMax)
			touched = true
			i++
		}
		if !touched {
			continue
		}

		integrate(f.cover, f.area)
		if trimmed, offset := trimZeros(f.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

const (
	// defaultFlatness is the default curve flattening tolerance in pixels.
	defaultFlatness = 0.25

	// horizontalThreshold is the minimal vertical extent of a line.
	horizontalThreshold = 1e-10

	// smallPathThreshold is the maximal bounding box area for fillSmall.
	smallPathThreshold = 65536
)
