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
	"strings"

	"golang.org/x/image/vector"
)

var shapeCases = []TestCase{
	{
		Name: "disk",
		Rows: diskRows(32, 12.3),
		Want: Want{Edges: 1, Closed: 1, Corners: 0, Segments: Unchecked},
	},
	{
		Name: "ring_levels",
		Rows: diskRows(40, 17, 8),
		Want: Want{Edges: 2, Closed: 2, Corners: 0, Segments: Unchecked},
	},
	{
		Name: "off_center",
		Rows: diskRowsAt(24, 10.3, 11.7, 7.4),
		Want: Want{Edges: 1, Closed: 1, Corners: 0, Segments: Unchecked},
	},
}

// diskRows renders concentric disks centred in a size×size raster.  The
// level of a pixel is the number of disks which cover at least half of it.
// Radii must be given in decreasing order.
func diskRows(size int, radii ...float32) []string {
	c := float32(size) / 2
	return diskRowsAt(size, c, c, radii...)
}

func diskRowsAt(size int, cx, cy float32, radii ...float32) []string {
	levels := make([][]byte, size)
	for y := range levels {
		levels[y] = []byte(strings.Repeat("0", size))
	}
	for _, r := range radii {
		mask := Disk(size, size, cx, cy, r)
		for y := range size {
			for x := range size {
				if mask.AlphaAt(x, y).A >= 128 {
					levels[y][x]++
				}
			}
		}
	}
	rows := make([]string, size)
	for y, row := range levels {
		rows[y] = string(row)
	}
	return rows
}

// circleK is the control point distance for a quarter circle of radius 1.
const circleK = 0.55228475

// Disk returns an anti-aliased coverage mask of the disk with centre (cx, cy)
// and radius r.
func Disk(width, height int, cx, cy, r float32) *image.Alpha {
	z := vector.NewRasterizer(width, height)
	k := circleK * r
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()

	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}
