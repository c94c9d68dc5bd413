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

var junctionCases = []TestCase{
	{
		// Levels 1, 2 and 3 meet at (2, 2); the outside (level 0) meets
		// two of them at (0, 2), (2, 0) and (4, 2).
		Name: "t_junction",
		Rows: []string{
			"1122",
			"1122",
			"3333",
		},
		Want: Want{Edges: 6, Closed: 0, Corners: 4, Segments: 20},
	},
	{
		Name: "checkerboard",
		Rows: []string{
			"12",
			"21",
		},
		Want: Want{Edges: 8, Closed: 0, Corners: 5, Segments: 12},
	},
	{
		Name: "three_bands",
		Rows: []string{
			"111",
			"222",
			"333",
		},
		Want: Want{Edges: 6, Closed: 0, Corners: 4, Segments: 18},
	},
	{
		Name: "cross",
		Rows: []string{
			"00100",
			"00100",
			"11211",
			"00100",
			"00100",
		},
		Want: Want{Edges: 8, Closed: 0, Corners: 4, Segments: 24},
	},
	{
		Name: "quadrants",
		Rows: []string{
			"1122",
			"1122",
			"3344",
			"3344",
		},
		Want: Want{Edges: 8, Closed: 0, Corners: 5, Segments: 24},
	},
}
