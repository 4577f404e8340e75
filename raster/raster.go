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

// Package raster converts vector paths to anti-aliased pixel coverage.
//
// The rasterizer is used to produce the raster previews of tactical
// diagrams.  It supports filling with the nonzero and even-odd rules, and
// stroking with caps, joins and dash patterns.  Coverage is computed exactly
// from the signed area of the path within each pixel, so that no
// supersampling is needed.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// Rasterizer converts paths to pixel coverage values in the range 0 (outside)
// to 1 (inside).  A Rasterizer can be reused for any number of paths; its
// internal buffers grow as needed and are kept between calls.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip restricts output to this integer-aligned device rectangle.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and its polygonal approximation.
	Flatness float64

	// Width is the stroke width in user space units.
	Width float64

	// Cap and Join select the shape of stroke ends and corners.
	Cap  graphics.LineCapStyle
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins, relative to Width.
	MiterLimit float64

	// Dash lists alternating on/off lengths in user space.
	// Nil means a solid stroke.
	Dash      []float64
	DashPhase float64

	edges     []edge
	activeIdx []int
	cover     []float32
	area      []float32

	// bounding box of the collected edges, in device space
	bbox      rect.Rect
	bboxEmpty bool

	// stroke scratch space
	subpaths [][]vec.Vec2
	closed   []bool
	dashes   [][]vec.Vec2
	poly     []vec.Vec2
}

// NewRasterizer returns a Rasterizer for the given clip rectangle.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:        matrix.Identity,
		Clip:       clip,
		Flatness:   defaultFlatness,
		Width:      1,
		Cap:        graphics.LineCapRound,
		Join:       graphics.LineJoinRound,
		MiterLimit: defaultMiterLimit,
	}
}

// FillNonZero fills p using the nonzero winding rule.  The emit callback
// receives the coverage of one scanline at a time, starting at pixel xMin;
// the slice is only valid during the call.
func (r *Rasterizer) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.resetEdges()
	r.walk(p, func(pts []vec.Vec2, closed bool) {
		r.addPolygon(pts)
	})
	r.sweep(integrateNonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.resetEdges()
	r.walk(p, func(pts []vec.Vec2, closed bool) {
		r.addPolygon(pts)
	})
	r.sweep(integrateEvenOdd, emit)
}

// walk flattens p and calls fn once for every subpath.  The slice passed to
// fn is only valid during the call.
func (r *Rasterizer) walk(p *path.Data, fn func(pts []vec.Vec2, closed bool)) {
	var cur []vec.Vec2
	add := func(_, to vec.Vec2) { cur = append(cur, to) }
	flush := func(closed bool) {
		if len(cur) > 0 {
			fn(cur, closed)
		}
		cur = cur[:0]
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			flush(false)
			cur = append(cur, p.Coords[k])
			k++
		case path.CmdLineTo:
			if len(cur) > 0 {
				cur = append(cur, p.Coords[k])
			}
			k++
		case path.CmdQuadTo:
			if len(cur) > 0 {
				r.flattenQuadratic(cur[len(cur)-1], p.Coords[k], p.Coords[k+1], add)
			}
			k += 2
		case path.CmdCubeTo:
			if len(cur) > 0 {
				r.flattenCubic(cur[len(cur)-1], p.Coords[k], p.Coords[k+1], p.Coords[k+2], add)
			}
			k += 3
		case path.CmdClose:
			flush(true)
		}
	}
	flush(false)
}

// transformLinear applies the 2×2 linear part of the CTM.
func (r *Rasterizer) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic approximates a quadratic Bézier curve by line segments.
// The segment count is chosen from the device-space deviation of the
// control polygon.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	dev := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		next := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, next)
		prev = next
	}
}

// flattenCubic approximates a cubic Bézier curve by line segments, using
// Wang's formula for the segment count.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		n = max(1, int(math.Ceil(math.Sqrt(3*m/(4*r.Flatness)))))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		next := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, next)
		prev = next
	}
}

func (r *Rasterizer) resetEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addPolygon adds the edges of the closed polygon pts (user space).
func (r *Rasterizer) addPolygon(pts []vec.Vec2) {
	if len(pts) < 2 {
		return
	}
	for i := 1; i < len(pts); i++ {
		r.addEdge(pts[i-1], pts[i])
	}
	if pts[len(pts)-1] != pts[0] {
		r.addEdge(pts[len(pts)-1], pts[0])
	}
}

// addEdge transforms a user space segment to device space and records it.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	box := rect.Rect{LLx: min(x0, x1), LLy: min(y0, y1), URx: max(x0, x1), URy: max(y0, y1)}
	if r.bboxEmpty {
		r.bbox = box
		r.bboxEmpty = false
	} else {
		r.bbox.LLx = min(r.bbox.LLx, box.LLx)
		r.bbox.LLy = min(r.bbox.LLy, box.LLy)
		r.bbox.URx = max(r.bbox.URx, box.URx)
		r.bbox.URy = max(r.bbox.URy, box.URy)
	}
}

// Coverage accumulation:
//
// Every edge crossing a pixel contributes two values: cover, the signed
// vertical extent of the crossing, and area, the part of cover which lies to
// the right of the crossing point within the pixel.  Scanning a row from left
// to right, the coverage of pixel i is the running sum of cover over pixels
// left of i, plus area[i].  This is the signed area of the path inside the
// pixel.

// sweep scans the collected edges with an active edge list and emits the
// coverage of every touched scanline.
func (r *Rasterizer) sweep(integrate func(cover, area []float32), emit func(y, xMin int, coverage []float32)) {
	if len(r.edges) == 0 || r.bboxEmpty {
		return
	}
	xMin := max(int(math.Floor(r.bbox.LLx)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bbox.URx))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.bbox.LLy)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.bbox.URy))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})
	r.activeIdx = r.activeIdx[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		top, bot := float64(y), float64(y+1)
		for next < len(r.edges) && r.edges[next].yMin() < bot {
			r.activeIdx = append(r.activeIdx, next)
			next++
		}
		if len(r.activeIdx) == 0 {
			if next == len(r.edges) {
				break
			}
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if e.yMax() <= top {
				last := len(r.activeIdx) - 1
				r.activeIdx[i] = r.activeIdx[last]
				r.activeIdx = r.activeIdx[:last]
				continue
			}
			if accumulate(e, top, bot, r.cover, r.area, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area)
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// accumulate adds the contribution of e within the scanline [top, bot) to
// the row buffers, which cover device pixels xMin, ..., xMax-1.  Parts of
// the edge left of xMin are folded into the first pixel.
func accumulate(e *edge, top, bot float64, cover, area []float32, xMin, xMax int) bool {
	top = max(top, e.yMin())
	bot = min(bot, e.yMax())
	if bot <= top {
		return false
	}
	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xAt := func(y float64) float64 { return e.x0 + e.dxdy*(y-e.y0) }

	// Split the piece of the edge at the pixel column boundaries.
	xa, xb := xAt(top), xAt(bot)
	left, right := min(xa, xb), max(xa, xb)
	pixLeft, pixRight := int(math.Floor(left)), int(math.Floor(right))
	if pixLeft >= xMax {
		return false
	}

	for pix := pixLeft; pix <= pixRight; pix++ {
		segTop, segBot := top, bot
		if pixLeft != pixRight {
			// y values where the edge enters and leaves this column
			ya := e.y0 + (float64(pix)-e.x0)/e.dxdy
			yb := e.y0 + (float64(pix+1)-e.x0)/e.dxdy
			segTop = max(min(ya, yb), top)
			segBot = min(max(ya, yb), bot)
		}
		dy := segBot - segTop
		if dy <= 0 {
			continue
		}
		c := sign * float32(dy)

		switch {
		case pix < xMin:
			cover[0] += c
			area[0] += c
		case pix < xMax:
			frac := xAt((segTop+segBot)/2) - float64(pix)
			cover[pix-xMin] += c
			area[pix-xMin] += c * float32(1-frac)
		}
	}
	return true
}

// integrateNonZero turns accumulated cover/area values into coverage,
// using the nonzero winding rule.  The result is stored in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// integrateEvenOdd turns accumulated cover/area values into coverage,
// using the even-odd rule.  The result is stored in cover.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		m := raw - 2*float32(int(raw/2))
		if m > 1 {
			m = 2 - m
		}
		cover[i] = m
	}
}

// trimZeros returns the non-zero part of a coverage row and its offset.
func trimZeros(row []float32) ([]float32, int) {
	lo, hi := 0, len(row)
	for lo < hi && row[lo] == 0 {
		lo++
	}
	for hi > lo && row[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return row[lo:hi], lo
}

const (
	// defaultFlatness is the curve flattening tolerance in device pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit matches the PDF default.
	defaultMiterLimit = 10.0

	// horizontalEdgeThreshold is the minimal vertical extent of an edge
	// which contributes coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the minimal length of a stroked segment.
	zeroLengthThreshold = 1e-10
)
