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

// Package curve computes the geometry of tactical lines.
//
// All three line kinds share one polyline of control points; this package
// derives what is actually drawn from it: tension-smoothed Bézier paths for
// passes and movements, the sine-wave "squiggle" for dribbles, and the
// arrowhead at the terminal point.  Nothing computed here is ever stored in
// the scene; it is regenerated from the control points whenever a line is
// drawn.
package curve

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Length returns the arc length of the polyline through pts.
func Length(pts []vec.Vec2) float64 {
	var total float64
	for i := 1; i < len(pts); i++ {
		total += pts[i].Sub(pts[i-1]).Length()
	}
	return total
}

// Locate returns the point at arc length s along the polyline through pts,
// together with the unit tangent of the segment containing it.
// Values of s outside [0, Length(pts)] are clamped to the end points.
// Zero-length segments never contribute a tangent; if the whole polyline is
// degenerate, the tangent is (1, 0).
func Locate(pts []vec.Vec2, s float64) (p, tangent vec.Vec2) {
	w := newWalker(pts)
	return w.locate(s)
}

// walker locates arc-length positions along a polyline.  Successive calls
// with non-decreasing arc length resume where the previous call stopped.
type walker struct {
	pts []vec.Vec2
	seg int     // index of the current segment (pts[seg] -> pts[seg+1])
	acc float64 // arc length at pts[seg]
	tan vec.Vec2
}

func newWalker(pts []vec.Vec2) *walker {
	w := &walker{pts: pts, tan: vec.Vec2{X: 1}}
	for i := 1; i < len(pts); i++ {
		d := pts[i].Sub(pts[i-1])
		if l := d.Length(); l > 0 {
			w.tan = d.Mul(1 / l)
			break
		}
	}
	return w
}

func (w *walker) locate(s float64) (vec.Vec2, vec.Vec2) {
	if len(w.pts) == 0 {
		return vec.Vec2{}, w.tan
	}
	if s < w.acc {
		w.seg, w.acc = 0, 0
	}
	if s <= 0 {
		return w.pts[0], w.tan
	}
	for ; w.seg+1 < len(w.pts); w.seg++ {
		a, b := w.pts[w.seg], w.pts[w.seg+1]
		d := b.Sub(a)
		l := d.Length()
		if l == 0 {
			continue
		}
		w.tan = d.Mul(1 / l)
		if s <= w.acc+l {
			return a.Add(d.Mul((s - w.acc) / l)), w.tan
		}
		w.acc += l
	}
	w.seg = max(len(w.pts)-2, 0)
	w.acc = Length(w.pts[:w.seg+1])
	return w.pts[len(w.pts)-1], w.tan
}

// Polyline returns the straight path through pts.
func Polyline(pts []vec.Vec2) *path.Data {
	p := &path.Data{}
	if len(pts) == 0 {
		return p
	}
	p = p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p = p.LineTo(pt)
	}
	return p
}

// Smooth returns a path through pts where every interior point is passed
// with a continuous tangent.  The tension controls how far the curve bows
// out; at tension 0 (or with only two points) the result is the straight
// polyline.
func Smooth(pts []vec.Vec2, tension float64) *path.Data {
	if tension <= 0 || len(pts) < 3 {
		return Polyline(pts)
	}

	// in[i] and out[i] are the Bézier control points before and after pts[i].
	n := len(pts)
	in := make([]vec.Vec2, n)
	out := make([]vec.Vec2, n)
	in[0], out[0] = pts[0], pts[0]
	in[n-1], out[n-1] = pts[n-1], pts[n-1]
	for i := 1; i < n-1; i++ {
		p0, p1, p2 := pts[i-1], pts[i], pts[i+1]
		d01 := p1.Sub(p0).Length()
		d12 := p2.Sub(p1).Length()
		if d01+d12 == 0 {
			in[i], out[i] = p1, p1
			continue
		}
		fa := tension * d01 / (d01 + d12)
		fb := tension * d12 / (d01 + d12)
		chord := p2.Sub(p0)
		in[i] = p1.Sub(chord.Mul(fa))
		out[i] = p1.Add(chord.Mul(fb))
	}

	p := (&path.Data{}).MoveTo(pts[0])
	for i := 1; i < n; i++ {
		p = p.CubeTo(out[i-1], in[i], pts[i])
	}
	return p
}

// Distance returns the distance from q to the polyline through pts.
func Distance(pts []vec.Vec2, q vec.Vec2) float64 {
	switch len(pts) {
	case 0:
		return math.Inf(1)
	case 1:
		return q.Sub(pts[0]).Length()
	}
	best := math.Inf(1)
	for i := 1; i < len(pts); i++ {
		best = min(best, segmentDistance(pts[i-1], pts[i], q))
	}
	return best
}

func segmentDistance(a, b, q vec.Vec2) float64 {
	d := b.Sub(a)
	l2 := d.Dot(d)
	if l2 == 0 {
		return q.Sub(a).Length()
	}
	t := max(0, min(1, q.Sub(a).Dot(d)/l2))
	return q.Sub(a.Add(d.Mul(t))).Length()
}

// HitPadding is the margin, in field units, by which the selectable area of
// a line extends beyond its visible stroke.
const HitPadding = 18.0

// Hit reports whether q is close enough to the polyline through pts to
// select a line of the given stroke width.
func Hit(pts []vec.Vec2, strokeWidth float64, q vec.Vec2) bool {
	return Distance(pts, q) <= strokeWidth/2+HitPadding
}
