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

package coverage

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	for _, threshold := range []int{1 << 30, 0} {
		f := NewFiller(rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 1})
		f.smallPathThreshold = threshold
		coverage := f.Mask(triangle)

		const epsilon = 1e-6
		for x := range 10 {
			expected := float32(2*x+1) / 20.0
			if math.Abs(float64(coverage[x]-expected)) > epsilon {
				t.Errorf("threshold %d, pixel %d: expected coverage %.4f, got %.4f",
					threshold, x, expected, coverage[x])
			}
		}
	}
}

// TestAxisAlignedRing checks that pixel aligned polygons give exact 0/1
// coverage, and that the inner hole is cut out when it runs in the
// opposite direction.
func TestAxisAlignedRing(t *testing.T) {
	p := &path.Data{}
	square(p, 1, 1, 7, 7, false)
	square(p, 3, 3, 5, 5, true)

	for _, threshold := range []int{1 << 30, 0} {
		f := NewFiller(rect.Rect{LLx: 0, LLy: 0, URx: 8, URy: 8})
		f.smallPathThreshold = threshold
		mask := f.Mask(p)
		for y := range 8 {
			for x := range 8 {
				inOuter := x >= 1 && x < 7 && y >= 1 && y < 7
				inInner := x >= 3 && x < 5 && y >= 3 && y < 5
				var want float32
				if inOuter && !inInner {
					want = 1
				}
				if got := mask[y*8+x]; got != want {
					t.Errorf("threshold %d, pixel (%d,%d): got %g, want %g",
						threshold, x, y, got, want)
				}
			}
		}
	}
}

// TestOpenSubpaths checks that open subpaths contribute correctly, as long
// as together they form closed cycles.
func TestOpenSubpaths(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 2}).
		LineTo(vec.Vec2{X: 4, Y: 2}).
		LineTo(vec.Vec2{X: 4, Y: 4}).
		MoveTo(vec.Vec2{X: 4, Y: 4}).
		LineTo(vec.Vec2{X: 2, Y: 4}).
		LineTo(vec.Vec2{X: 2, Y: 2})

	f := NewFiller(rect.Rect{LLx: 0, LLy: 0, URx: 6, URy: 6})
	if got := countFull(t, f.Mask(p)); got != 4 {
		t.Errorf("got %d covered pixels, want 4", got)
	}
}

// TestImplicitClose checks that open subpaths are closed back to their
// start point when ImplicitClose is set.
func TestImplicitClose(t *testing.T) {
	// Two open halves of the square [2,4]×[2,4].  Each half closed on its
	// own is a triangle.
	halves := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 2}).
		LineTo(vec.Vec2{X: 4, Y: 2}).
		LineTo(vec.Vec2{X: 4, Y: 4}).
		MoveTo(vec.Vec2{X: 4, Y: 4}).
		LineTo(vec.Vec2{X: 2, Y: 4}).
		LineTo(vec.Vec2{X: 2, Y: 2})

	// A square drawn without the final side.
	open := (&path.Data{}).
		MoveTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 4, Y: 1}).
		LineTo(vec.Vec2{X: 4, Y: 4}).
		LineTo(vec.Vec2{X: 1, Y: 4})

	closed := &path.Data{}
	square(closed, 1, 1, 4, 4, false)

	clip := rect.Rect{LLx: 0, LLy: 0, URx: 6, URy: 6}
	for _, threshold := range []int{1 << 30, 0} {
		f := NewFiller(clip)
		f.smallPathThreshold = threshold
		f.ImplicitClose = true

		// the diagonals cancel, so the square is still covered exactly
		if got := countFull(t, f.Mask(halves)); got != 4 {
			t.Errorf("threshold %d, halves: got %d covered pixels, want 4", threshold, got)
		}

		got := f.Mask(open)
		want := f.Mask(closed)
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("threshold %d, pixel %d: got %g, want %g", threshold, i, got[i], want[i])
			}
		}
		if n := countFull(t, got); n != 9 {
			t.Errorf("threshold %d, open square: got %d covered pixels, want 9", threshold, n)
		}
	}
}

func TestEmptyPath(t *testing.T) {
	f := NewFiller(rect.Rect{LLx: 0, LLy: 0, URx: 4, URy: 4})
	f.Fill(&path.Data{}, func(y, xMin int, coverage []float32) {
		t.Errorf("unexpected output in row %d", y)
	})
}

// countFull returns the number of fully covered pixels, and fails the test
// if any pixel is partially covered.
func countFull(t *testing.T, mask []float32) int {
	t.Helper()
	count := 0
	for _, c := range mask {
		if c == 1 {
			count++
		} else if c != 0 {
			t.Fatalf("unexpected partial coverage %g", c)
		}
	}
	return count
}

// square appends an axis-aligned rectangle to p.
func square(p *path.Data, x0, y0, x1, y1 float64, reverse bool) {
	pts := []vec.Vec2{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
	if reverse {
		pts[1], pts[3] = pts[3], pts[1]
	}
	p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p.LineTo(pt)
	}
	p.Close()
}
