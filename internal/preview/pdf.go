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

// Package preview writes traced outlines to files for visual inspection.
package preview

import (
	"errors"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/outline"
)

// Page describes one preview page.
type Page struct {
	// Width and Height give the size of the traced raster in pixels.
	Width, Height int

	// Scale is the number of PDF points per pixel.
	// Zero selects 1.
	Scale float64

	// EmptyLevel is the level which is left unpainted.
	EmptyLevel int

	// Outline is the traced result to show.
	Outline *outline.Outline
}

var errEmptyPage = errors.New("preview: empty page")

// WritePDF writes a single page PDF file.
//
// The pixels of every level except the empty level are filled in a shade
// of grey, using the polygonal level boundaries.  On top of this, the
// fitted path of every edge is stroked in black and the corners are
// marked.
func WritePDF(fname string, p *Page) error {
	if p.Width <= 0 || p.Height <= 0 {
		return errEmptyPage
	}
	scale := p.Scale
	if scale <= 0 {
		scale = 1
	}
	w := float64(p.Width) * scale
	h := float64(p.Height) * scale

	paper := &pdf.Rectangle{URx: w, URy: h}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// PDF origin is bottom-left; the raster uses top-left.
	page.Transform(matrix.Matrix{scale, 0, 0, -scale, 0, h})

	if p.Outline != nil {
		edges := p.Outline.Edges()

		levels := Levels(edges, p.EmptyLevel)
		for i, level := range levels {
			page.SetFillColor(color.DeviceGray(shade(i, len(levels))))
			drawPath(page, p.Outline.Boundary(level))
			page.Fill()
		}

		page.SetStrokeColor(color.DeviceGray(0))
		page.SetLineWidth(1.2 / scale)
		page.SetLineCap(graphics.LineCapRound)
		page.SetLineJoin(graphics.LineJoinRound)
		for _, e := range edges {
			drawPath(page, e.Path())
			page.Stroke()
		}

		corners := p.Outline.Corners()
		if len(corners) > 0 {
			page.SetFillColor(color.DeviceGray(0))
			r := 2.5 / scale
			for _, c := range corners {
				page.Rectangle(float64(c.X)-r, float64(c.Y)-r, 2*r, 2*r)
			}
			page.Fill()
		}
	}

	return page.Close()
}

// Levels returns the sorted list of levels seen on either side of the
// edges, excluding empty.
func Levels(edges []*outline.Edge, empty int) []int {
	var res []int
	for _, e := range edges {
		left, right := e.Levels()
		for _, l := range []int{left, right} {
			if l != empty && !slices.Contains(res, l) {
				res = append(res, l)
			}
		}
	}
	slices.Sort(res)
	return res
}

// shade returns the grey value for the i-th of n levels, light to dark.
func shade(i, n int) float64 {
	if n <= 1 {
		return 0.6
	}
	return 0.85 - 0.5*float64(i)/float64(n-1)
}

// drawPath appends the path to the current PDF path.
// PDF has no quadratic curves, so these are converted to cubics.
func drawPath(page *document.Page, p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}
