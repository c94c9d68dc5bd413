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

// Package testcases provides level rasters for testing contour extraction.
package testcases

import (
	"image"
)

// Unchecked marks an expectation which is not tested.
const Unchecked = -1

// TestCase defines a single contour extraction test.
type TestCase struct {
	Name       string          // lowercase a-z and _ only
	Rows       []string        // levels, one character per pixel, see outline.ParseGrid
	Region     image.Rectangle // traced region; the zero value means the whole raster
	EmptyLevel int             // level used outside the region
	Want       Want            // expected properties of the result
}

// Want lists expected properties of a traced raster.
// Fields set to [Unchecked] are not tested.
type Want struct {
	Edges    int // total number of edges
	Closed   int // number of closed loops
	Corners  int // number of corner vertices
	Segments int // number of unit boundary segments
}

// Size returns the width and height of the raster.
func (tc TestCase) Size() (width, height int) {
	if len(tc.Rows) == 0 {
		return 0, 0
	}
	return len(tc.Rows[0]), len(tc.Rows)
}

// Bounds returns the region to trace.
func (tc TestCase) Bounds() image.Rectangle {
	if tc.Region != (image.Rectangle{}) {
		return tc.Region
	}
	w, h := tc.Size()
	return image.Rect(0, 0, w, h)
}
