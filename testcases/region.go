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
	"image"
)

var regionCases = []TestCase{
	{
		Name: "offset",
		Rows: []string{
			"0000",
			"0110",
			"0110",
			"0000",
		},
		Region: image.Rect(1, 1, 3, 3),
		Want:   Want{Edges: 1, Closed: 1, Corners: 0, Segments: 8},
	},
	{
		// The region cuts through the block; outside pixels are empty.
		Name: "clipped",
		Rows: []string{
			"1111",
			"1111",
			"1111",
		},
		Region: image.Rect(1, 0, 3, 2),
		Want:   Want{Edges: 1, Closed: 1, Corners: 0, Segments: 8},
	},
	{
		Name: "empty_level",
		Rows: []string{
			"111",
			"111",
		},
		EmptyLevel: 1,
		Want:       Want{Edges: 0, Closed: 0, Corners: 0, Segments: 0},
	},
	{
		// With a non-zero empty level, the zero pixels inside the region
		// form the boundary.
		Name: "hole_at_border",
		Rows: []string{
			"100",
			"111",
		},
		EmptyLevel: 1,
		Want:       Want{Edges: 1, Closed: 1, Corners: 0, Segments: 6},
	},
	{
		Name: "zero_width",
		Rows: []string{
			"010",
			"010",
		},
		Region: image.Rect(1, 0, 1, 2),
		Want:   Want{Edges: 0, Closed: 0, Corners: 0, Segments: 0},
	},
}
