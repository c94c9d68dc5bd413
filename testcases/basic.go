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

var basicCases = []TestCase{
	{
		Name: "uniform",
		Rows: []string{
			"000",
			"000",
		},
		Want: Want{Edges: 0, Closed: 0, Corners: 0, Segments: 0},
	},
	{
		Name: "filled",
		Rows: []string{
			"11",
			"11",
		},
		Want: Want{Edges: 1, Closed: 1, Corners: 0, Segments: 8},
	},
	{
		Name: "single_pixel",
		Rows: []string{
			"000",
			"010",
			"000",
		},
		Want: Want{Edges: 1, Closed: 1, Corners: 0, Segments: 4},
	},
	{
		Name: "two_pixels",
		Rows: []string{
			"00000",
			"01010",
			"00000",
		},
		Want: Want{Edges: 2, Closed: 2, Corners: 0, Segments: 8},
	},
	{
		// The two pixels touch at a single grid point, which becomes a
		// corner of degree 4.
		Name: "diagonal_pixels",
		Rows: []string{
			"000",
			"010",
			"001",
		},
		Want: Want{Edges: 2, Closed: 0, Corners: 1, Segments: 8},
	},
	{
		Name: "bar",
		Rows: []string{
			"00000",
			"02220",
			"00000",
		},
		Want: Want{Edges: 1, Closed: 1, Corners: 0, Segments: 8},
	},
}
