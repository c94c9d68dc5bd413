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

// Package outline extracts the boundary curves of a discretely leveled raster.
//
// A [Sampler] assigns an integer level to every pixel of a rectangular
// region. [Trace] finds every unit boundary between two pixels of different
// level, joins these into a vertex graph on the integer grid corners, and
// decomposes the graph into a list of [Edge] values. Each edge is either an
// open chain running between two corners (grid points where the boundary
// forks or ends) or a closed loop containing no corner. Every boundary
// segment belongs to exactly one edge.
//
// Edges carry the levels found on either side and can be converted into
// smooth vector paths on demand, see [Edge.Path].
package outline

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"errors"
	"fmt"
	"image"
	"slices"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/outline/fit"
)

// ErrInvalidOptions is returned by [Trace] if the arguments cannot be used.
var ErrInvalidOptions = errors.New("outline: invalid options")

// Options controls the contour extraction.
type Options struct {
	// EmptyLevel is the level reported for all pixels outside the region.
	EmptyLevel int

	// Smoothing is passed unchanged to the Fitter when an edge path is
	// materialized.  For the default fitter it is the maximal distance, in
	// pixels, between the fitted curve and the grid points.
	// Must be >= 0.
	Smoothing float64

	// Fitter converts edge point chains into paths.
	// Nil selects a [fit.Schneider] fitter.
	Fitter Fitter
}

// DefaultOptions are used by [Trace] when no options are given.
var DefaultOptions = Options{
	EmptyLevel: 0,
	Smoothing:  1.0,
}

// Outline is the result of a contour extraction.
// It is not modified after [Trace] returns.
type Outline struct {
	edges    []*Edge
	corners  []Coord
	segments int

	bounds    rect.Rect
	hasBounds bool
}

// Trace extracts the boundary edges of the given region.
// If opt is nil, [DefaultOptions] are used.
//
// The whole graph is built and consumed before Trace returns.  An error
// is only returned for invalid arguments, or if the internal consistency
// checks of the edge extraction fail.  Regions are limited to
// 2(w+1)(h+1) < 2³¹ for w×h pixels, about 32000×32000.
func Trace(s Sampler, region image.Rectangle, opt *Options) (*Outline, error) {
	if opt == nil {
		opt = &DefaultOptions
	}
	if s == nil {
		return nil, fmt.Errorf("%w: nil sampler", ErrInvalidOptions)
	}
	if !regionFits(region) {
		return nil, fmt.Errorf("%w: region %v is too large", ErrInvalidOptions, region)
	}
	if opt.Smoothing < 0 {
		return nil, fmt.Errorf("%w: negative smoothing %g", ErrInvalidOptions, opt.Smoothing)
	}
	fitter := opt.Fitter
	if fitter == nil {
		fitter = fit.Schneider{}
	}

	log := Logger()

	g := buildSegments(s, region, opt.EmptyLevel)
	g.classify()
	log.Debug("outline: graph built",
		"region", region,
		"segments", len(g.segs),
		"vertices", len(g.verts),
		"corners", len(g.corners))

	res := &Outline{
		segments: len(g.segs),
		corners:  make([]Coord, len(g.corners)),
	}
	for i, v := range g.corners {
		res.corners[i] = g.verts[v].at
	}
	res.bounds, res.hasBounds = g.bounds()

	x := &extractor{g: g, fitter: fitter, smoothing: opt.Smoothing}
	edges, err := x.run()
	if err != nil {
		log.Warn("outline: edge extraction failed", "error", err)
		return nil, err
	}
	res.edges = edges

	log.Debug("outline: edges extracted",
		"open", x.open,
		"closed", x.closed)
	return res, nil
}

// Edges returns the extracted edges.
// Open chains come first, in the order their starting corners appear in a
// row-major scan, followed by the closed loops.
func (o *Outline) Edges() []*Edge {
	return slices.Clone(o.edges)
}

// NumSegments returns the number of unit boundary segments found.
// This equals the sum of [Edge.NumSegments] over all edges.
func (o *Outline) NumSegments() int {
	return o.segments
}

// Corners returns the grid points where the boundary forks or ends,
// in row-major order.
func (o *Outline) Corners() []Coord {
	return slices.Clone(o.corners)
}

// Bounds returns the bounding box of all boundary points.
// The second return value is false if no boundary was found.
func (o *Outline) Bounds() (rect.Rect, bool) {
	return o.bounds, o.hasBounds
}
