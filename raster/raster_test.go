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
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// grid collects emitted coverage values into a w×h array.
type grid struct {
	w, h int
	pix  []float32
}

func newGrid(w, h int) *grid {
	return &grid{w: w, h: h, pix: make([]float32, w*h)}
}

func (g *grid) emit(y, xMin int, coverage []float32) {
	copy(g.pix[y*g.w+xMin:], coverage)
}

func (g *grid) at(x, y int) float32 {
	return g.pix[y*g.w+x]
}

func (g *grid) clip() rect.Rect {
	return rect.Rect{URx: float64(g.w), URy: float64(g.h)}
}

func box(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	g := newGrid(10, 1)
	r := NewRasterizer(g.clip())
	r.FillNonZero(triangle, g.emit)

	const epsilon = 1e-5
	for x := range 10 {
		expected := float32(2*x+1) / 20.0
		actual := g.at(x, 0)
		if math.Abs(float64(actual-expected)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, actual)
		}
	}
}

func TestFillRules(t *testing.T) {
	twice := box(2, 2, 8, 8)
	twice.Cmds = append(twice.Cmds, box(2, 2, 8, 8).Cmds...)
	twice.Coords = append(twice.Coords, box(2, 2, 8, 8).Coords...)

	for _, tc := range []struct {
		name    string
		evenOdd bool
		want    float32
	}{
		{"nonzero", false, 1},
		{"evenodd", true, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g := newGrid(10, 10)
			r := NewRasterizer(g.clip())
			if tc.evenOdd {
				r.FillEvenOdd(twice, g.emit)
			} else {
				r.FillNonZero(twice, g.emit)
			}
			if got := g.at(5, 5); math.Abs(float64(got-tc.want)) > 1e-6 {
				t.Errorf("centre coverage = %g, want %g", got, tc.want)
			}
			if got := g.at(0, 0); got != 0 {
				t.Errorf("outside coverage = %g, want 0", got)
			}
		})
	}
}

func TestCTM(t *testing.T) {
	// a unit square scaled by 4 covers 4×4 device pixels
	g := newGrid(8, 8)
	r := NewRasterizer(g.clip())
	r.CTM = matrix.Scale(4, 4)
	r.FillNonZero(box(0, 0, 1, 1), g.emit)

	for y := range 8 {
		for x := range 8 {
			want := float32(0)
			if x < 4 && y < 4 {
				want = 1
			}
			if got := g.at(x, y); math.Abs(float64(got-want)) > 1e-6 {
				t.Errorf("pixel (%d,%d) = %g, want %g", x, y, got, want)
			}
		}
	}
}

func TestStrokeButt(t *testing.T) {
	line := (&path.Data{}).MoveTo(vec.Vec2{X: 2, Y: 5}).LineTo(vec.Vec2{X: 18, Y: 5})

	g := newGrid(20, 10)
	r := NewRasterizer(g.clip())
	r.Width = 2
	r.Cap = graphics.LineCapButt
	r.Stroke(line, g.emit)

	for y := range 10 {
		for x := range 20 {
			want := float32(0)
			if x >= 2 && x < 18 && (y == 4 || y == 5) {
				want = 1
			}
			if got := g.at(x, y); math.Abs(float64(got-want)) > 1e-5 {
				t.Errorf("pixel (%d,%d) = %g, want %g", x, y, got, want)
			}
		}
	}
}

func TestStrokeCaps(t *testing.T) {
	line := (&path.Data{}).MoveTo(vec.Vec2{X: 6, Y: 10}).LineTo(vec.Vec2{X: 14, Y: 10})

	for _, tc := range []struct {
		cap     graphics.LineCapStyle
		covered bool
	}{
		{graphics.LineCapButt, false},
		{graphics.LineCapRound, true},
		{graphics.LineCapSquare, true},
	} {
		g := newGrid(20, 20)
		r := NewRasterizer(g.clip())
		r.Width = 4
		r.Cap = tc.cap
		r.Stroke(line, g.emit)

		got := g.at(4, 9) > 0
		if got != tc.covered {
			t.Errorf("cap %v: pixel left of the start covered = %t, want %t", tc.cap, got, tc.covered)
		}
		if g.at(10, 9) < 0.999 {
			t.Errorf("cap %v: interior coverage %g", tc.cap, g.at(10, 9))
		}
	}
}

func TestStrokeJoins(t *testing.T) {
	// right angle at (10,10); the outer corner is at (12,8)
	corner := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 10}).
		LineTo(vec.Vec2{X: 10, Y: 10}).
		LineTo(vec.Vec2{X: 10, Y: 18})

	for _, tc := range []struct {
		join   graphics.LineJoinStyle
		corner bool
	}{
		{graphics.LineJoinMiter, true},
		{graphics.LineJoinBevel, false},
		{graphics.LineJoinRound, false},
	} {
		g := newGrid(20, 20)
		r := NewRasterizer(g.clip())
		r.Width = 4
		r.Cap = graphics.LineCapButt
		r.Join = tc.join
		r.Stroke(corner, g.emit)

		got := g.at(11, 8) > 0.99
		if got != tc.corner {
			t.Errorf("join %v: outer corner pixel covered = %t, want %t", tc.join, got, tc.corner)
		}
		if g.at(10, 10) < 0.999 {
			t.Errorf("join %v: vertex pixel coverage %g", tc.join, g.at(10, 10))
		}
	}
}

func TestDash(t *testing.T) {
	line := (&path.Data{}).MoveTo(vec.Vec2{X: 0, Y: 5}).LineTo(vec.Vec2{X: 20, Y: 5})

	g := newGrid(20, 10)
	r := NewRasterizer(g.clip())
	r.Width = 2
	r.Cap = graphics.LineCapButt
	r.Dash = []float64{4, 4}
	r.Stroke(line, g.emit)

	for x := range 20 {
		want := float32(0)
		if (x/4)%2 == 0 {
			want = 1
		}
		if got := g.at(x, 5); math.Abs(float64(got-want)) > 1e-5 {
			t.Errorf("pixel %d = %g, want %g", x, got, want)
		}
	}
}

func TestDashPhase(t *testing.T) {
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}}
	r := NewRasterizer(rect.Rect{})
	r.DashPhase = 2
	dashes := r.applyDash(pts, false, []float64{4, 4})

	want := [][2]float64{{0, 2}, {6, 10}}
	if len(dashes) != len(want) {
		t.Fatalf("got %d dashes, want %d", len(dashes), len(want))
	}
	for i, d := range dashes {
		start, end := d[0].X, d[len(d)-1].X
		if math.Abs(start-want[i][0]) > 1e-9 || math.Abs(end-want[i][1]) > 1e-9 {
			t.Errorf("dash %d = [%g, %g], want %v", i, start, end, want[i])
		}
	}
}

func TestZeroWidthStroke(t *testing.T) {
	line := (&path.Data{}).MoveTo(vec.Vec2{X: 0, Y: 5}).LineTo(vec.Vec2{X: 20, Y: 5})
	r := NewRasterizer(rect.Rect{URx: 20, URy: 10})
	r.Width = 0
	r.Stroke(line, func(y, xMin int, coverage []float32) {
		t.Errorf("unexpected output in row %d", y)
	})
}

func TestCurveFlattening(t *testing.T) {
	// A cubic approximating a quarter circle of radius 8 around (1,1).
	const k = 0.5522847498
	quarter := (&path.Data{}).
		MoveTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 9, Y: 1}).
		CubeTo(vec.Vec2{X: 9, Y: 1 + 8*k}, vec.Vec2{X: 1 + 8*k, Y: 9}, vec.Vec2{X: 1, Y: 9}).
		Close()

	g := newGrid(10, 10)
	r := NewRasterizer(g.clip())
	r.Flatness = 0.01
	r.FillNonZero(quarter, g.emit)

	var sum float64
	for _, c := range g.pix {
		sum += float64(c)
	}
	want := math.Pi * 64 / 4
	if math.Abs(sum-want) > 0.25 {
		t.Errorf("covered area = %g, want %g", sum, want)
	}
}
