package fit

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Polyline connects the points by straight lines.  Interior points on a
// straight run are omitted.  The smoothing parameter is ignored.
type Polyline struct{}

// Fit implements the Fitter interface of package outline.
func (Polyline) Fit(pts []vec.Vec2, closed bool, _ float64) *path.Data {
	res := &path.Data{}
	if len(pts) == 0 {
		return res
	}
	end := len(pts)
	if closed && end > 1 && pts[0] == pts[end-1] {
		end-- // Close returns to the start point
	}

	res.MoveTo(pts[0])
	for i := 1; i < end; i++ {
		var next vec.Vec2
		switch {
		case i+1 < end:
			next = pts[i+1]
		case closed:
			next = pts[0]
		default:
			res.LineTo(pts[i])
			continue
		}
		if straight(pts[i-1], pts[i], next) {
			continue
		}
		res.LineTo(pts[i])
	}
	if closed {
		res.Close()
	}
	return res
}

// straight reports whether b lies on the segment from a to c.
func straight(a, b, c vec.Vec2) bool {
	u := b.Sub(a)
	v := c.Sub(b)
	return u.X*v.Y-u.Y*v.X == 0 && dot(u, v) > 0
}
