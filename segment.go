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
	"image"
	"math"
)

// Coord is a grid corner.  The pixel with index (x, y) covers the unit
// square with corners (x, y) and (x+1, y+1).
type Coord struct {
	X, Y int
}

// Segment is a unit boundary between two pixels of different level.
//
// Coordinates use the device convention with the y-axis pointing down.
// When walking from Start to End, LevelLeft is the level of the pixel
// on the left hand side and LevelRight the level on the right hand side.
type Segment struct {
	Start, End            Coord
	LevelLeft, LevelRight int
}

// Reverse returns the segment walked in the opposite direction.
func (s Segment) Reverse() Segment {
	return Segment{
		Start:      s.End,
		End:        s.Start,
		LevelLeft:  s.LevelRight,
		LevelRight: s.LevelLeft,
	}
}

// regionFits reports whether all vertices and segments of a region can be
// addressed by int32 indices.  A region of w×h pixels has at most
// (w+1)(h+1) vertices and 2(w+1)(h+1) segments.
func regionFits(r image.Rectangle) bool {
	if r.Empty() {
		return true
	}
	const limit = math.MaxInt32
	dx := uint64(r.Max.X) - uint64(r.Min.X)
	dy := uint64(r.Max.Y) - uint64(r.Min.Y)
	if dx >= limit || dy >= limit {
		return false
	}
	return 2*(dx+1)*(dy+1) <= limit
}

// buildSegments scans all grid corners of the region and creates a segment
// for every pair of neighbouring pixels with different levels.
//
// For the corner (x, y), the pixel to the lower right is compared to the
// pixel above (north) and to the pixel on the left (west).  Both loops run
// one step past the region so that the boundary against the outside is
// included.
func buildSegments(s Sampler, region image.Rectangle, emptyLevel int) *graph {
	g := newGraph()
	if region.Empty() {
		return g
	}

	x0, x1 := region.Min.X, region.Max.X
	width := x1 - x0 + 2 // one extra column on each side

	// prev holds the levels of row y-1, cur the levels of row y,
	// both for x = x0-1, ..., x1.
	prev := make([]int, width)
	cur := make([]int, width)
	sampleRow := func(row []int, y int) {
		inside := y >= region.Min.Y && y < region.Max.Y
		for i := range row {
			x := x0 - 1 + i
			if inside && x >= x0 && x < x1 {
				row[i] = s.Level(x, y)
			} else {
				row[i] = emptyLevel
			}
		}
	}

	sampleRow(prev, region.Min.Y-1)
	for y := region.Min.Y; y <= region.Max.Y; y++ {
		sampleRow(cur, y)
		for x := x0; x <= x1; x++ {
			i := x - x0 + 1
			level := cur[i]
			north := prev[i]
			west := cur[i-1]

			if north != level {
				g.addSegment(Segment{
					Start:      Coord{x, y},
					End:        Coord{x + 1, y},
					LevelLeft:  north,
					LevelRight: level,
				})
			}
			if west != level {
				// Walking upwards, west is on the left.
				g.addSegment(Segment{
					Start:      Coord{x, y + 1},
					End:        Coord{x, y},
					LevelLeft:  west,
					LevelRight: level,
				})
			}
		}
		prev, cur = cur, prev
	}
	return g
}
