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

// Package fit converts chains of grid points into vector paths.
//
// [Schneider] fits piecewise cubic Bézier curves to the points, following
// P. J. Schneider, "An Algorithm for Automatically Fitting Digitized
// Curves", Graphics Gems, 1990.  [Polyline] reproduces the points exactly
// using straight lines.
//
// Both types implement the Fitter interface of package outline.
package fit

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Default values for the fitting parameters.
const (
	// defaultTolerance is the maximal distance between the fitted curve and
	// the input points, used when the smoothing parameter is not positive.
	defaultTolerance = 1.0

	// defaultIterations is the number of reparametrization steps tried
	// before a range of points is split.
	defaultIterations = 4

	// tangentReach is the number of points used to estimate the tangent
	// at the ends of an open chain.
	tangentReach = 3
)

// Schneider fits piecewise cubic Bézier curves.
//
// The smoothing parameter passed to Fit is the maximal allowed distance
// between the curve and the input points.  Larger values give fewer, smoother
// curve segments.  Values <= 0 select a tolerance of one pixel.
type Schneider struct {
	// Iterations is the number of Newton-Raphson reparametrization steps
	// tried before a range of points is split.  0 selects the default.
	Iterations int
}

// Fit implements the Fitter interface of package outline.
func (s Schneider) Fit(pts []vec.Vec2, closed bool, smoothing float64) *path.Data {
	res := &path.Data{}
	if len(pts) == 0 {
		return res
	}
	res.MoveTo(pts[0])
	if len(pts) == 1 {
		return res
	}

	tol := smoothing
	if tol <= 0 {
		tol = defaultTolerance
	}
	iterations := s.Iterations
	if iterations <= 0 {
		iterations = defaultIterations
	}
	f := &fitter{
		d:          pts,
		errSq:      tol * tol,
		iterations: iterations,
		out:        res,
	}

	last := len(pts) - 1
	var t1, t2 vec.Vec2
	if closed && last >= 2 && pts[0] == pts[last] {
		// continuous tangent across the seam
		tc := unit(pts[last-1].Sub(pts[1]))
		t1, t2 = tc.Mul(-1), tc
	} else {
		reach := min(tangentReach, last)
		t1 = unit(pts[reach].Sub(pts[0]))
		t2 = unit(pts[last-reach].Sub(pts[last]))
	}
	f.run(0, last, t1, t2)

	if closed {
		res.Close()
	}
	return res
}

// fitter holds the state of one Schneider.Fit call.
type fitter struct {
	d          []vec.Vec2
	errSq      float64
	iterations int
	out        *path.Data

	u, uPrime []float64 // scratch space for parameter values
}

// span is a range of points to be covered by curves, with the unit tangent
// directions at both ends.  t2 points backwards, from d[last] towards the
// preceding points.
type span struct {
	first, last int
	t1, t2      vec.Vec2
}

// run fits curves to d[first:last+1].  Ranges which cannot be fitted by a
// single curve are split at the point of maximal error.  Pending ranges are
// kept on an explicit stack, so that long chains do not need deep
// recursion.
func (f *fitter) run(first, last int, t1, t2 vec.Vec2) {
	stack := []span{{first, last, t1, t2}}
	for len(stack) > 0 {
		sp := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		split, ok := f.fitSpan(sp)
		if ok {
			continue
		}
		tc := f.centerTangent(split)
		// push the right half first, so that the left half is emitted first
		stack = append(stack,
			span{split, sp.last, tc.Mul(-1), sp.t2},
			span{sp.first, split, sp.t1, tc})
	}
}

// fitSpan tries to cover the span by a single cubic curve.  On success the
// curve is appended to the output.  Otherwise the index where the span
// should be split is returned.
func (f *fitter) fitSpan(sp span) (int, bool) {
	d := f.d
	first, last := sp.first, sp.last
	if last-first == 1 {
		dist := d[last].Sub(d[first]).Length() / 3
		f.emit(d[first], d[first].Add(sp.t1.Mul(dist)), d[last].Add(sp.t2.Mul(dist)), d[last])
		return 0, true
	}
	if d[first] == d[last] {
		// A single curve cannot leave and return to the same point in
		// a useful way.
		return f.farthest(first, last), false
	}

	u := f.chordLength(first, last)
	bez := f.generate(first, last, u, sp.t1, sp.t2)
	maxErr, split := f.maxError(first, last, bez, u)
	if maxErr < f.errSq {
		f.emit(bez[0], bez[1], bez[2], bez[3])
		return 0, true
	}

	if maxErr < 4*f.errSq {
		for range f.iterations {
			u = f.reparametrize(first, last, u, bez)
			bez = f.generate(first, last, u, sp.t1, sp.t2)
			maxErr, split = f.maxError(first, last, bez, u)
			if maxErr < f.errSq {
				f.emit(bez[0], bez[1], bez[2], bez[3])
				return 0, true
			}
		}
	}
	return split, false
}

func (f *fitter) emit(p0, p1, p2, p3 vec.Vec2) {
	f.out.Cmds = append(f.out.Cmds, path.CmdCubeTo)
	f.out.Coords = append(f.out.Coords, p1, p2, p3)
}

// farthest returns the index in (first, last) of the point with the
// largest distance from d[first].
func (f *fitter) farthest(first, last int) int {
	best, bestDist := (first+last)/2, -1.0
	for i := first + 1; i < last; i++ {
		dist := f.d[i].Sub(f.d[first]).Length()
		if dist > bestDist {
			best, bestDist = i, dist
		}
	}
	return best
}

// chordLength assigns parameter values to d[first:last+1], proportional
// to the distance along the polygon.
func (f *fitter) chordLength(first, last int) []float64 {
	n := last - first + 1
	u := grow(f.u, n)
	f.u = u
	u[0] = 0
	for i := 1; i < n; i++ {
		u[i] = u[i-1] + f.d[first+i].Sub(f.d[first+i-1]).Length()
	}
	total := u[n-1]
	if total <= 0 {
		for i := range u {
			u[i] = float64(i) / float64(n-1)
		}
		return u
	}
	for i := 1; i < n; i++ {
		u[i] /= total
	}
	return u
}

// generate finds the least-squares cubic for the points, with the given
// end tangents.
func (f *fitter) generate(first, last int, u []float64, t1, t2 vec.Vec2) [4]vec.Vec2 {
	d := f.d
	p0, p3 := d[first], d[last]

	var c00, c01, c11, x0, x1 float64
	for i, t := range u {
		b0, b1, b2, b3 := bernstein(t)
		a1 := t1.Mul(b1)
		a2 := t2.Mul(b2)
		c00 += dot(a1, a1)
		c01 += dot(a1, a2)
		c11 += dot(a2, a2)

		tmp := d[first+i].Sub(p0.Mul(b0 + b1)).Sub(p3.Mul(b2 + b3))
		x0 += dot(a1, tmp)
		x1 += dot(a2, tmp)
	}

	var alpha1, alpha2 float64
	det := c00*c11 - c01*c01
	if det != 0 {
		alpha1 = (x0*c11 - x1*c01) / det
		alpha2 = (c00*x1 - c01*x0) / det
	}

	segLength := p3.Sub(p0).Length()
	eps := 1e-6 * segLength
	if alpha1 < eps || alpha2 < eps || alpha1 > segLength || alpha2 > segLength {
		// fall back to the heuristic of the original paper
		alpha1 = segLength / 3
		alpha2 = alpha1
	}

	return [4]vec.Vec2{p0, p0.Add(t1.Mul(alpha1)), p3.Add(t2.Mul(alpha2)), p3}
}

// maxError returns the largest squared distance between a point and the
// corresponding curve point, and the index of that point.
func (f *fitter) maxError(first, last int, bez [4]vec.Vec2, u []float64) (float64, int) {
	split := (first + last + 1) / 2
	maxDist := 0.0
	for i := first + 1; i < last; i++ {
		diff := evalCubic(bez, u[i-first]).Sub(f.d[i])
		dist := dot(diff, diff)
		if dist >= maxDist {
			maxDist, split = dist, i
		}
	}
	return maxDist, split
}

// reparametrize improves the parameter values by one Newton-Raphson step.
func (f *fitter) reparametrize(first, last int, u []float64, bez [4]vec.Vec2) []float64 {
	n := last - first + 1
	up := grow(f.uPrime, n)
	for i := range n {
		up[i] = newtonStep(bez, f.d[first+i], u[i])
	}
	f.u, f.uPrime = up, u
	return up
}

// newtonStep moves t towards the parameter of the curve point closest
// to p.
func newtonStep(bez [4]vec.Vec2, p vec.Vec2, t float64) float64 {
	q := evalCubic(bez, t)
	var d1 [3]vec.Vec2
	for i := range 3 {
		d1[i] = bez[i+1].Sub(bez[i]).Mul(3)
	}
	var d2 [2]vec.Vec2
	for i := range 2 {
		d2[i] = d1[i+1].Sub(d1[i]).Mul(2)
	}
	q1 := evalQuad(d1, t)
	q2 := d2[0].Mul(1 - t).Add(d2[1].Mul(t))

	diff := q.Sub(p)
	num := dot(diff, q1)
	den := dot(q1, q1) + dot(diff, q2)
	if den == 0 {
		return t
	}
	return min(max(t-num/den, 0), 1)
}

// centerTangent estimates the unit tangent at d[i], pointing backwards.
func (f *fitter) centerTangent(i int) vec.Vec2 {
	d := f.d
	t := d[i-1].Sub(d[i+1])
	if t.Length() == 0 {
		t = d[i-1].Sub(d[i])
	}
	return unit(t)
}

func bernstein(t float64) (b0, b1, b2, b3 float64) {
	s := 1 - t
	return s * s * s, 3 * s * s * t, 3 * s * t * t, t * t * t
}

func evalCubic(b [4]vec.Vec2, t float64) vec.Vec2 {
	b0, b1, b2, b3 := bernstein(t)
	return b[0].Mul(b0).Add(b[1].Mul(b1)).Add(b[2].Mul(b2)).Add(b[3].Mul(b3))
}

func evalQuad(b [3]vec.Vec2, t float64) vec.Vec2 {
	s := 1 - t
	return b[0].Mul(s * s).Add(b[1].Mul(2 * s * t)).Add(b[2].Mul(t * t))
}

func dot(a, b vec.Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// unit returns v scaled to length 1, or the zero vector if v is zero.
func unit(v vec.Vec2) vec.Vec2 {
	l := math.Hypot(v.X, v.Y)
	if l == 0 {
		return vec.Vec2{}
	}
	return v.Mul(1 / l)
}

func grow(buf []float64, n int) []float64 {
	if cap(buf) < n {
		return make([]float64, n)
	}
	return buf[:n]
}
