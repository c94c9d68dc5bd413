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

package testcases

import (
	"strings"
)

var loopCases = []TestCase{
	{
		Name: "ring",
		Rows: []string{
			"00000",
			"01110",
			"01010",
			"01110",
			"00000",
		},
		Want: Want{Edges: 2, Closed: 2, Corners: 0, Segments: 16},
	},
	{
		Name: "nested",
		Rows: []string{
			"00000",
			"01110",
			"01210",
			"01110",
			"00000",
		},
		Want: Want{Edges: 2, Closed: 2, Corners: 0, Segments: 16},
	},
	spiralCase(10),
}

// spiralCase returns a one pixel wide square spiral with the given number
// of turns.  The boundary of the spiral is a single long loop.
func spiralCase(turns int) TestCase {
	type point struct{ x, y int }
	dirs := []point{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

	cur := point{0, 0}
	pixels := []point{cur}
	for i := range 2 * turns {
		d := dirs[i%4]
		length := 2 * (i/2 + 1)
		for range length {
			cur = point{cur.x + d.x, cur.y + d.y}
			pixels = append(pixels, cur)
		}
	}

	xMin, xMax, yMin, yMax := 0, 0, 0, 0
	for _, p := range pixels {
		xMin = min(xMin, p.x)
		xMax = max(xMax, p.x)
		yMin = min(yMin, p.y)
		yMax = max(yMax, p.y)
	}
	width := xMax - xMin + 3
	height := yMax - yMin + 3
	grid := make([][]byte, height)
	for y := range grid {
		grid[y] = []byte(strings.Repeat("0", width))
	}
	for _, p := range pixels {
		grid[p.y-yMin+1][p.x-xMin+1] = '1'
	}
	rows := make([]string, height)
	for y, row := range grid {
		rows[y] = string(row)
	}

	// The pixels form a path without other contacts, so every pixel
	// except for the two ends shares two of its sides.
	n := len(pixels)
	return TestCase{
		Name: "spiral",
		Rows: rows,
		Want: Want{Edges: 1, Closed: 1, Corners: 0, Segments: 2*n + 2},
	}
}
