// seehuhn.de/go/tactics - a tactical diagram editor for soccer sessions
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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke rasterizes the outline of p, using the stroke parameters of r.
//
// The stroke is assembled from one polygon per segment, cap and join.  All
// polygons are brought to the same orientation, so that filling them
// together with the nonzero rule yields their union.
func (r *Rasterizer) Stroke(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	if r.Width <= 0 {
		return
	}

	r.subpaths = r.subpaths[:0]
	r.closed = r.closed[:0]
	r.walk(p, func(pts []vec.Vec2, closed bool) {
		r.subpaths = append(r.subpaths, dedup(append([]vec.Vec2(nil), pts...)))
		r.closed = append(r.closed, closed)
	})

	r.resetEdges()
	for i, pts := range r.subpaths {
		if pattern, ok := r.dashPattern(); ok {
			for _, dash := range r.applyDash(pts, r.closed[i], pattern) {
				r.strokeOpen(dash)
			}
		} else if r.closed[i] && len(pts) > 2 {
			r.strokeClosed(pts)
		} else {
			r.strokeOpen(pts)
		}
	}
	r.sweep(integrateNonZero, emit)
}

// dedup removes consecutive duplicate points in place.
func dedup(pts []vec.Vec2) []vec.Vec2 {
	if len(pts) < 2 {
		return pts
	}
	out := pts[:1]
	for _, p := range pts[1:] {
		if p.Sub(out[len(out)-1]).Length() > zeroLengthThreshold {
			out = append(out, p)
		}
	}
	return out
}

// strokeOpen strokes an open polyline, including caps at both ends.
func (r *Rasterizer) strokeOpen(pts []vec.Vec2) {
	pts = dedup(pts)
	if len(pts) == 0 {
		return
	}
	d := r.Width / 2
	if len(pts) == 1 {
		switch r.Cap {
		case graphics.LineCapRound:
			r.addDisc(pts[0], d)
		case graphics.LineCapSquare:
			c := pts[0]
			r.addConvex(
				vec.Vec2{X: c.X - d, Y: c.Y - d},
				vec.Vec2{X: c.X + d, Y: c.Y - d},
				vec.Vec2{X: c.X + d, Y: c.Y + d},
				vec.Vec2{X: c.X - d, Y: c.Y + d},
			)
		}
		return
	}

	last := len(pts) - 1
	for i := 1; i <= last; i++ {
		a, b := pts[i-1], pts[i]
		t := unit(b.Sub(a))
		if r.Cap == graphics.LineCapSquare {
			if i == 1 {
				a = a.Sub(t.Mul(d))
			}
			if i == last {
				b = b.Add(t.Mul(d))
			}
		}
		r.addSegment(a, b, d)
	}
	for i := 1; i < last; i++ {
		r.addJoin(pts[i-1], pts[i], pts[i+1], d)
	}
	if r.Cap == graphics.LineCapRound {
		r.addDisc(pts[0], d)
		r.addDisc(pts[last], d)
	}
}

// strokeClosed strokes a closed polygon, with joins at every vertex.
func (r *Rasterizer) strokeClosed(pts []vec.Vec2) {
	if pts[0].Sub(pts[len(pts)-1]).Length() <= zeroLengthThreshold {
		pts = pts[:len(pts)-1]
	}
	n := len(pts)
	if n < 2 {
		r.strokeOpen(pts)
		return
	}
	d := r.Width / 2
	for i := range n {
		r.addSegment(pts[i], pts[(i+1)%n], d)
	}
	for i := range n {
		r.addJoin(pts[(i+n-1)%n], pts[i], pts[(i+1)%n], d)
	}
}

func (r *Rasterizer) addSegment(a, b vec.Vec2, d float64) {
	n := normal(unit(b.Sub(a))).Mul(d)
	r.addConvex(a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
}

// addJoin fills the gap on the outer side of the corner at b.
func (r *Rasterizer) addJoin(a, b, c vec.Vec2, d float64) {
	t1 := unit(b.Sub(a))
	t2 := unit(c.Sub(b))
	cross := t1.X*t2.Y - t1.Y*t2.X
	if math.Abs(cross) < 1e-9 && t1.Dot(t2) > 0 {
		return
	}

	if r.Join == graphics.LineJoinRound {
		r.addDisc(b, d)
		return
	}

	s := 1.0
	if cross > 0 {
		s = -1
	}
	n1 := normal(t1).Mul(s)
	n2 := normal(t2).Mul(s)
	p1 := b.Add(n1.Mul(d))
	p2 := b.Add(n2.Mul(d))

	if r.Join == graphics.LineJoinMiter {
		bis := n1.Add(n2)
		if l := bis.Length(); l > 1e-9 && 2/l <= r.MiterLimit {
			tip := b.Add(bis.Mul(2 * d / (l * l)))
			r.addConvex(b, p1, tip, p2)
			return
		}
	}
	r.addConvex(b, p1, p2)
}

// addDisc adds a circle of radius rad, flattened according to r.Flatness.
func (r *Rasterizer) addDisc(c vec.Vec2, rad float64) {
	// approximate device radius
	scale := math.Sqrt(math.Abs(r.CTM[0]*r.CTM[3] - r.CTM[1]*r.CTM[2]))
	devRad := rad * scale
	n := 8
	if devRad > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRad)
		n = max(n, int(math.Ceil(2*math.Pi/step)))
	}

	r.poly = r.poly[:0]
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		r.poly = append(r.poly, vec.Vec2{X: c.X + rad*math.Cos(phi), Y: c.Y + rad*math.Sin(phi)})
	}
	r.addPolygon(r.poly)
}

// addConvex adds a convex polygon, with positive orientation.
func (r *Rasterizer) addConvex(pts ...vec.Vec2) {
	var area float64
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		area += a.X*b.Y - b.X*a.Y
	}
	if area < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	r.addPolygon(pts)
}

// dashPattern returns the dash pattern, or false for solid strokes.
func (r *Rasterizer) dashPattern() ([]float64, bool) {
	if len(r.Dash) == 0 {
		return nil, false
	}
	var total float64
	for _, l := range r.Dash {
		if l < 0 {
			return nil, false
		}
		total += l
	}
	if total <= 0 {
		return nil, false
	}
	if len(r.Dash)%2 == 1 {
		return append(append([]float64(nil), r.Dash...), r.Dash...), true
	}
	return r.Dash, true
}

// applyDash splits a polyline into its "on" pieces.  The returned slices
// are only valid until the next call.
func (r *Rasterizer) applyDash(pts []vec.Vec2, closed bool, pattern []float64) [][]vec.Vec2 {
	if closed && len(pts) > 1 {
		pts = append(pts, pts[0])
	}

	var total float64
	for _, l := range pattern {
		total += l
	}
	phase := math.Mod(r.DashPhase, total)
	if phase < 0 {
		phase += total
	}
	idx := 0
	for phase >= pattern[idx] {
		phase -= pattern[idx]
		idx = (idx + 1) % len(pattern)
	}
	remaining := pattern[idx] - phase
	on := idx%2 == 0

	r.dashes = r.dashes[:0]
	var cur []vec.Vec2
	if on && len(pts) > 0 {
		cur = []vec.Vec2{pts[0]}
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		segLen := b.Sub(a).Length()
		pos := 0.0
		for segLen-pos > remaining {
			pos += remaining
			p := a.Add(b.Sub(a).Mul(pos / segLen))
			if on {
				cur = append(cur, p)
				r.dashes = append(r.dashes, cur)
				cur = nil
			} else {
				cur = []vec.Vec2{p}
			}
			on = !on
			idx = (idx + 1) % len(pattern)
			remaining = pattern[idx]
		}
		remaining -= segLen - pos
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) > 0 {
		r.dashes = append(r.dashes, cur)
	}
	return r.dashes
}

func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l == 0 {
		return vec.Vec2{X: 1}
	}
	return v.Mul(1 / l)
}

// normal returns v rotated by 90 degrees.
func normal(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -v.Y, Y: v.X}
}
