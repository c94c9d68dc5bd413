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

// largeCases are big enough that the fill based consistency checks switch
// to their sparse code path.
var largeCases = []TestCase{
	{
		Name: "disk_300",
		Rows: diskRows(300, 140),
		Want: Want{Edges: 1, Closed: 1, Corners: 0, Segments: Unchecked},
	},
	{
		Name: "rings_300",
		Rows: diskRows(300, 145, 100, 55),
		Want: Want{Edges: 3, Closed: 3, Corners: 0, Segments: Unchecked},
	},
}
