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
	"runtime"
	"slices"
	"sync"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Fitter converts an ordered chain of points into a smooth path.
//
// If closed is true, the first and last point of pts coincide and the
// resulting path must be closed, with no visible seam at the start point.
// The smoothing value is taken from [Options.Smoothing] without
// interpretation.
//
// Implementations must be safe for concurrent use.
type Fitter interface {
	Fit(pts []vec.Vec2, closed bool, smoothing float64) *path.Data
}

// Edge is a maximal chain of boundary segments with the same levels on
// either side.  An edge either runs between two corners, or is a closed
// loop.
//
// Edges are immutable; all methods are safe for concurrent use.
type Edge struct {
	points     []Coord
	levelLeft  int
	levelRight int
	continuous bool

	fitter    Fitter
	smoothing float64
	path      pathCell
}

// pathCell holds the lazily fitted path of an edge.
type pathCell struct {
	once sync.Once
	data *path.Data
}

func newEdge(pts []Coord, left, right int, continuous bool, fitter Fitter, smoothing float64) *Edge {
	return &Edge{
		points:     pts,
		levelLeft:  left,
		levelRight: right,
		continuous: continuous,
		fitter:     fitter,
		smoothing:  smoothing,
	}
}

// Points returns the grid points along the edge, in walking order.
// For closed loops the first point is repeated at the end.
func (e *Edge) Points() []Coord {
	return slices.Clone(e.points)
}

// NumSegments returns the number of unit segments in the edge.
func (e *Edge) NumSegments() int {
	return len(e.points) - 1
}

// LevelLeft returns the level on the left hand side of the edge.
func (e *Edge) LevelLeft() int {
	return e.levelLeft
}

// LevelRight returns the level on the right hand side of the edge.
func (e *Edge) LevelRight() int {
	return e.levelRight
}

// Levels returns the levels on the left and right hand side of the edge.
func (e *Edge) Levels() (left, right int) {
	return e.levelLeft, e.levelRight
}

// Continuous reports whether the edge is a closed loop.
func (e *Edge) Continuous() bool {
	return e.continuous
}

// Bounds returns the bounding box of the edge points.
func (e *Edge) Bounds() rect.Rect {
	p := e.points[0]
	xMin, xMax, yMin, yMax := p.X, p.X, p.Y, p.Y
	for _, p := range e.points[1:] {
		xMin = min(xMin, p.X)
		xMax = max(xMax, p.X)
		yMin = min(yMin, p.Y)
		yMax = max(yMax, p.Y)
	}
	return rect.Rect{
		LLx: float64(xMin),
		LLy: float64(yMin),
		URx: float64(xMax),
		URy: float64(yMax),
	}
}

// Segments returns the unit boundary segments of the edge, in walking
// order.  All segments carry the levels of the edge.
func (e *Edge) Segments() []Segment {
	res := make([]Segment, len(e.points)-1)
	for i := range res {
		res[i] = Segment{
			Start:      e.points[i],
			End:        e.points[i+1],
			LevelLeft:  e.levelLeft,
			LevelRight: e.levelRight,
		}
	}
	return res
}

// Reversed returns the edge walked in the opposite direction.
// The left and right levels are swapped accordingly.
func (e *Edge) Reversed() *Edge {
	pts := slices.Clone(e.points)
	slices.Reverse(pts)
	return newEdge(pts, e.levelRight, e.levelLeft, e.continuous, e.fitter, e.smoothing)
}

// Path returns the fitted path for the edge.
// The path is computed on the first call; later calls return the same
// value.  The caller must not modify the returned path.
func (e *Edge) Path() *path.Data {
	e.path.once.Do(func() {
		e.path.data = e.fitter.Fit(e.vecs(), e.continuous, e.smoothing)
	})
	return e.path.data
}

// vecs returns the edge points as vectors.
func (e *Edge) vecs() []vec.Vec2 {
	res := make([]vec.Vec2, len(e.points))
	for i, p := range e.points {
		res[i] = toVec(p)
	}
	return res
}

// FitAll computes the paths of all given edges, using up to workers
// goroutines.  If workers is 0 or negative, GOMAXPROCS is used.
//
// After FitAll returns, [Edge.Path] returns without further computation.
func FitAll(edges []*Edge, workers int) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, len(edges))
	if workers <= 1 {
		for _, e := range edges {
			e.Path()
		}
		return
	}

	work := make(chan *Edge, workers*4)
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for e := range work {
				e.Path()
			}
		}()
	}
	for _, e := range edges {
		work <- e
	}
	close(work)
	wg.Wait()
}

// Boundary returns the outline of all pixels with the given level, as
// closed polygons in device space.  Every edge adjacent to the level is
// used once, oriented so that the level lies on its right hand side.
// Open edges are joined end to start at their corners, so that every
// subpath of the result is closed.  Filling the result with the nonzero
// winding rule covers exactly the pixels of this level.
func (o *Outline) Boundary(level int) *path.Data {
	res := &path.Data{}

	var open [][]Coord
	starts := make(map[Coord][]int)
	for _, e := range o.edges {
		pts := e.points
		switch level {
		case e.levelRight:
			// already oriented correctly
		case e.levelLeft:
			pts = slices.Clone(pts)
			slices.Reverse(pts)
		default:
			continue
		}

		if e.continuous {
			addRing(res, pts[:len(pts)-1])
			continue
		}
		starts[pts[0]] = append(starts[pts[0]], len(open))
		open = append(open, pts)
	}

	// Around every corner, as many edges of the level start as end there.
	// Following any unused edge from the end of the previous one thus
	// always leads back to the start of the ring.
	used := make([]bool, len(open))
	var ring []Coord
	for i := range open {
		if used[i] {
			continue
		}
		ring = ring[:0]
		first := open[i][0]
		next := i
		for next >= 0 {
			used[next] = true
			pts := open[next]
			ring = append(ring, pts[:len(pts)-1]...)
			end := pts[len(pts)-1]
			next = -1
			if end == first {
				break
			}
			cand := starts[end]
			for len(cand) > 0 {
				k := cand[len(cand)-1]
				cand = cand[:len(cand)-1]
				if !used[k] {
					next = k
					break
				}
			}
			starts[end] = cand
			if next < 0 {
				// not reached for outlines built by Trace
				ring = append(ring, end)
			}
		}
		addRing(res, ring)
	}
	return res
}

// addRing appends a closed polygon through the given points.
func addRing(res *path.Data, pts []Coord) {
	res.MoveTo(toVec(pts[0]))
	for _, p := range pts[1:] {
		res.LineTo(toVec(p))
	}
	res.Close()
}

func toVec(c Coord) vec.Vec2 {
	return vec.Vec2{X: float64(c.X), Y: float64(c.Y)}
}
