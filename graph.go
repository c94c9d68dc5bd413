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
	"fmt"

	"seehuhn.de/go/geom/rect"
)

// graph is the vertex graph formed by the boundary segments.
//
// Vertices and segments live in arenas and are addressed by index.  Every
// segment remembers its position in the incidence lists of both end points,
// so that a segment can be removed from a vertex in constant time by
// moving the last list entry into its slot.
type graph struct {
	segs []Segment
	ends [][2]int32 // vertex index of Start and End, per segment
	slot [][2]int32 // position in the incidence list of ends[i][0] and ends[i][1]

	verts []vertex
	index map[Coord]int32

	// corners lists the corner vertices in creation order.
	corners []int32

	live      int // number of vertices with at least one segment
	remaining int // number of segments not yet consumed
}

// vertex is a grid corner touched by at least one segment.
type vertex struct {
	at     Coord
	segs   []int32
	corner bool
}

func newGraph() *graph {
	return &graph{
		index: make(map[Coord]int32),
	}
}

// vertexAt returns the index of the vertex at c, creating it if needed.
func (g *graph) vertexAt(c Coord) int32 {
	if v, ok := g.index[c]; ok {
		return v
	}
	v := int32(len(g.verts))
	g.verts = append(g.verts, vertex{at: c})
	g.index[c] = v
	return v
}

// addSegment registers s with both of its end points.
func (g *graph) addSegment(s Segment) {
	idx := int32(len(g.segs))
	a := g.vertexAt(s.Start)
	b := g.vertexAt(s.End)

	g.segs = append(g.segs, s)
	g.ends = append(g.ends, [2]int32{a, b})
	g.slot = append(g.slot, [2]int32{g.attach(a, idx), g.attach(b, idx)})
	g.remaining++
}

// attach appends segment s to the incidence list of v and returns its
// position there.
func (g *graph) attach(v, s int32) int32 {
	vert := &g.verts[v]
	if len(vert.segs) == 0 {
		g.live++
	}
	vert.segs = append(vert.segs, s)
	return int32(len(vert.segs) - 1)
}

// side returns 0 if v is the start point of segment s, 1 if it is the end
// point, and -1 otherwise.
func (g *graph) side(s, v int32) int {
	switch v {
	case g.ends[s][0]:
		return 0
	case g.ends[s][1]:
		return 1
	default:
		return -1
	}
}

// detach removes segment s from the incidence list of v.
// If this was the last segment of v, the vertex is removed from the graph.
func (g *graph) detach(s, v int32) error {
	k := g.side(s, v)
	if k < 0 {
		return g.desync(v, "segment %d does not touch this vertex", s)
	}
	vert := &g.verts[v]
	pos := g.slot[s][k]
	n := int32(len(vert.segs))
	if pos < 0 || pos >= n || vert.segs[pos] != s {
		return g.desync(v, "segment %d not found at slot %d", s, pos)
	}

	last := vert.segs[n-1]
	vert.segs[pos] = last
	vert.segs = vert.segs[:n-1]
	if last != s {
		g.slot[last][g.side(last, v)] = pos
	}
	g.slot[s][k] = -1

	if n == 1 {
		g.live--
	}
	return nil
}

// degree returns the number of unconsumed segments at v.
func (g *graph) degree(v int32) int {
	return len(g.verts[v].segs)
}

// other returns the end point of segment s which is not v.
func (g *graph) other(s, v int32) int32 {
	if g.ends[s][0] == v {
		return g.ends[s][1]
	}
	return g.ends[s][0]
}

// classify marks every vertex whose degree differs from 2 as a corner.
// This must be called once, after all segments have been added.
func (g *graph) classify() {
	g.corners = g.corners[:0]
	for i := range g.verts {
		v := &g.verts[i]
		v.corner = len(v.segs) != 2
		if v.corner {
			g.corners = append(g.corners, int32(i))
		}
	}
}

// bounds returns the bounding box of all vertices.
func (g *graph) bounds() (rect.Rect, bool) {
	if len(g.verts) == 0 {
		return rect.Rect{}, false
	}
	c := g.verts[0].at
	xMin, xMax, yMin, yMax := c.X, c.X, c.Y, c.Y
	for _, v := range g.verts[1:] {
		xMin = min(xMin, v.at.X)
		xMax = max(xMax, v.at.X)
		yMin = min(yMin, v.at.Y)
		yMax = max(yMax, v.at.Y)
	}
	return rect.Rect{
		LLx: float64(xMin),
		LLy: float64(yMin),
		URx: float64(xMax),
		URy: float64(yMax),
	}, true
}

// degreeSum returns the sum of all vertex degrees.
// For a consistent graph this is twice the number of remaining segments.
func (g *graph) degreeSum() int {
	sum := 0
	for i := range g.verts {
		sum += len(g.verts[i].segs)
	}
	return sum
}

// check verifies the incidence bookkeeping of the whole graph.
func (g *graph) check() error {
	if sum := g.degreeSum(); sum != 2*g.remaining {
		return &GraphError{
			Detail: fmt.Sprintf("degree sum %d, but %d segments remain", sum, g.remaining),
		}
	}
	for i := range g.verts {
		v := int32(i)
		for pos, s := range g.verts[i].segs {
			if s < 0 || int(s) >= len(g.segs) {
				return g.desync(v, "invalid segment index %d", s)
			}
			k := g.side(s, v)
			if k < 0 || g.slot[s][k] != int32(pos) {
				return g.desync(v, "stale incidence entry for segment %d", s)
			}
		}
	}
	return nil
}
