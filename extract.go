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
)

// walkState is the state of the chain walk in [extractor.walk].
type walkState int

const (
	walking    walkState = iota // passing through vertices of degree 2
	atCorner                    // the chain reached a corner
	loopClosed                  // the walk returned to its start vertex
)

// extractor decomposes a vertex graph into edges.
// The graph is consumed in the process.
type extractor struct {
	g         *graph
	fitter    Fitter
	smoothing float64

	consumed     int
	open, closed int

	// observe, if set, is called after every consumed segment.
	observe func(*graph)
}

// run extracts all edges.
//
// First, chains are walked from every corner until all corners are spent.
// Since every remaining vertex then has degree 2, the rest of the graph
// consists of disjoint closed loops, which are walked starting from the
// first vertex in arena order.
func (x *extractor) run() ([]*Edge, error) {
	g := x.g
	total := len(g.segs)
	if err := g.check(); err != nil {
		return nil, inPhase(err, "check")
	}

	var edges []*Edge
	for _, c := range g.corners {
		for g.degree(c) > 0 {
			e, err := x.walk(c, false)
			if err != nil {
				return nil, inPhase(err, "corners")
			}
			edges = append(edges, e)
			x.open++
		}
	}

	for i := range g.verts {
		v := int32(i)
		for g.degree(v) > 0 {
			e, err := x.walk(v, true)
			if err != nil {
				return nil, inPhase(err, "loops")
			}
			edges = append(edges, e)
			x.closed++
		}
	}

	if x.consumed != total || g.remaining != 0 || g.live != 0 {
		return nil, &GraphError{
			Phase: "final",
			Detail: fmt.Sprintf("consumed %d of %d segments, %d vertices left",
				x.consumed, total, g.live),
		}
	}
	return edges, nil
}

// walk consumes one chain starting at vertex start.
//
// If loop is false, start is a corner and the walk ends at the next corner.
// If loop is true, no corners are left and the walk ends when it returns
// to start.
func (x *extractor) walk(start int32, loop bool) (*Edge, error) {
	g := x.g
	if loop && g.verts[start].corner {
		return nil, g.desync(start, "corner left after all corners were processed")
	}

	pts := []Coord{g.verts[start].at}
	var left, right int

	budget := g.remaining
	cur := start
	state := walking
	for state == walking {
		if budget == 0 {
			return nil, g.desync(cur, "walk exceeds the number of remaining segments")
		}
		budget--

		segs := g.verts[cur].segs
		if len(segs) == 0 {
			return nil, g.desync(cur, "chain stops at a vertex without segments")
		}
		s := segs[len(segs)-1]
		next := g.other(s, cur)
		if err := g.detach(s, cur); err != nil {
			return nil, err
		}
		if err := g.detach(s, next); err != nil {
			return nil, err
		}
		g.remaining--
		x.consumed++

		seg := g.segs[s]
		if g.ends[s][0] != cur {
			seg = seg.Reverse()
		}
		if len(pts) == 1 {
			left, right = seg.LevelLeft, seg.LevelRight
		} else if seg.LevelLeft != left || seg.LevelRight != right {
			return nil, g.desync(cur, "levels change from %d/%d to %d/%d inside a chain",
				left, right, seg.LevelLeft, seg.LevelRight)
		}
		pts = append(pts, g.verts[next].at)

		if x.observe != nil {
			x.observe(g)
		}

		switch {
		case g.verts[next].corner:
			if loop {
				return nil, g.desync(next, "closed loop runs into a corner")
			}
			state = atCorner
		case g.degree(next) == 0:
			if !loop || next != start {
				return nil, g.desync(next, "chain runs into a spent vertex")
			}
			state = loopClosed
		}
		cur = next
	}

	return newEdge(pts, left, right, state == loopClosed, x.fitter, x.smoothing), nil
}

// inPhase records the extraction phase in a GraphError.
func inPhase(err error, phase string) error {
	var ge *GraphError
	if errors.As(err, &ge) && ge.Phase == "" {
		ge.Phase = phase
	}
	return err
}
