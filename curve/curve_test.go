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

package curve

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

var polylines = []struct {
	name string
	pts  []vec.Vec2
}{
	{"horizontal", []vec.Vec2{pt(0, 0), pt(100, 0)}},
	{"diagonal", []vec.Vec2{pt(10, 10), pt(73.5, 91.25)}},
	{"corner", []vec.Vec2{pt(0, 0), pt(50, 0), pt(50, 50)}},
	{"zigzag", []vec.Vec2{pt(0, 0), pt(30, 40), pt(60, 0), pt(90, 40), pt(120, 0)}},
	{"repeated_point", []vec.Vec2{pt(5, 5), pt(5, 5), pt(40, 7), pt(40, 7)}},
	{"short", []vec.Vec2{pt(1, 1), pt(3, 2)}},
	{"long", []vec.Vec2{pt(0, 0), pt(1000, 300), pt(200, 650)}},
}

func TestSquiggleEndpoints(t *testing.T) {
	for _, tc := range polylines {
		t.Run(tc.name, func(t *testing.T) {
			samples := Squiggle(tc.pts, DefaultSquiggle)
			first, last := tc.pts[0], tc.pts[len(tc.pts)-1]
			if samples[0] != first {
				t.Errorf("first sample %v, want %v", samples[0], first)
			}
			if got := samples[len(samples)-1]; got != last {
				t.Errorf("last sample %v, want %v", got, last)
			}
		})
	}
}

func TestSquiggleSampleCount(t *testing.T) {
	pts := []vec.Vec2{pt(0, 0), pt(400, 0)}
	samples := Squiggle(pts, DefaultSquiggle)
	if want := 400/int(DefaultSquiggle.Spacing) + 1; len(samples) != want {
		t.Errorf("got %d samples, want %d", len(samples), want)
	}

	short := []vec.Vec2{pt(0, 0), pt(8, 0)}
	samples = Squiggle(short, DefaultSquiggle)
	if want := DefaultSquiggle.MinSamples + 1; len(samples) != want {
		t.Errorf("got %d samples, want %d", len(samples), want)
	}
}

func TestSquiggleSampleCap(t *testing.T) {
	for _, L := range []float64{1e6, 1e10, 1e300} {
		samples := Squiggle([]vec.Vec2{pt(0, 0), pt(L, 0)}, DefaultSquiggle)
		if want := DefaultSquiggle.MaxSamples + 1; len(samples) != want {
			t.Errorf("L=%g: got %d samples, want %d", L, len(samples), want)
		}
	}
}

func TestDribbleScenario(t *testing.T) {
	pts := []vec.Vec2{pt(0, 0), pt(100, 0)}
	params := DefaultSquiggle
	params.Amplitude = 6

	if got := SampleAt(pts, 0, params); got != pt(0, 0) {
		t.Errorf("t=0: got %v", got)
	}
	if got := SampleAt(pts, 1, params); got != pt(100, 0) {
		t.Errorf("t=1: got %v", got)
	}
	mid := SampleAt(pts, 0.5, params)
	if math.Abs(mid.X-50) > 1e-9 {
		t.Errorf("t=0.5: sample moved along the line: %v", mid)
	}
	if math.Abs(mid.Y) < 1e-6 {
		t.Errorf("t=0.5: no perpendicular offset: %v", mid)
	}
	if math.Abs(mid.Y) > params.Amplitude+1e-9 {
		t.Errorf("t=0.5: offset %g exceeds amplitude", mid.Y)
	}
}

func TestSquiggleBounded(t *testing.T) {
	for _, tc := range polylines {
		samples := Squiggle(tc.pts, DefaultSquiggle)
		for i, s := range samples {
			if d := Distance(tc.pts, s); d > DefaultSquiggle.Amplitude+1e-9 {
				t.Errorf("%s: sample %d is %g away from the control polyline", tc.name, i, d)
			}
		}
	}
}

func TestSquiggleNoTaper(t *testing.T) {
	params := DefaultSquiggle
	params.Taper = 0
	params.Frequency = 3
	pts := []vec.Vec2{pt(0, 0), pt(90, 0)}

	// sin(π/2) = 1 at t = 1/6
	got := SampleAt(pts, 1.0/6, params)
	if math.Abs(got.Y-params.Amplitude) > 1e-9 {
		t.Errorf("got offset %g, want %g", got.Y, params.Amplitude)
	}
}

func TestLocate(t *testing.T) {
	pts := []vec.Vec2{pt(0, 0), pt(10, 0), pt(10, 10)}
	cases := []struct {
		s       float64
		p, tang vec.Vec2
	}{
		{-5, pt(0, 0), pt(1, 0)},
		{0, pt(0, 0), pt(1, 0)},
		{4, pt(4, 0), pt(1, 0)},
		{10, pt(10, 0), pt(1, 0)},
		{15, pt(10, 5), pt(0, 1)},
		{20, pt(10, 10), pt(0, 1)},
		{99, pt(10, 10), pt(0, 1)},
	}
	for _, c := range cases {
		p, tang := Locate(pts, c.s)
		if p != c.p || tang != c.tang {
			t.Errorf("Locate(%g) = %v, %v; want %v, %v", c.s, p, tang, c.p, c.tang)
		}
	}
}

func TestArrowTip(t *testing.T) {
	for _, tc := range polylines {
		head := Arrowhead(tc.pts, ArrowLength(3), ArrowHalfAngle)
		if head[0] != tc.pts[len(tc.pts)-1] {
			t.Errorf("%s: tip %v, want %v", tc.name, head[0], tc.pts[len(tc.pts)-1])
		}
	}
}

func TestArrowDirection(t *testing.T) {
	pts := []vec.Vec2{pt(0, 0), pt(100, 0)}
	head := Arrowhead(pts, 10, math.Pi/4)
	for i, corner := range head[1:] {
		if corner.X >= 100 {
			t.Errorf("corner %d at %v is not behind the tip", i, corner)
		}
	}
	if math.Abs(head[1].Y+head[2].Y) > 1e-9 {
		t.Errorf("arrowhead is not symmetric: %v", head)
	}
}

func TestSmooth(t *testing.T) {
	pts := []vec.Vec2{pt(0, 0), pt(50, 40), pt(100, 0), pt(150, 40)}

	straight := Smooth(pts, 0)
	if len(straight.Cmds) != len(pts) || straight.Cmds[1] != path.CmdLineTo {
		t.Errorf("tension 0: unexpected commands %v", straight.Cmds)
	}

	p := Smooth(pts, 0.5)
	if len(p.Cmds) != len(pts) {
		t.Fatalf("got %d commands, want %d", len(p.Cmds), len(pts))
	}
	for _, cmd := range p.Cmds[1:] {
		if cmd != path.CmdCubeTo {
			t.Errorf("unexpected command %v", cmd)
		}
	}
	if got := p.Coords[len(p.Coords)-1]; got != pts[len(pts)-1] {
		t.Errorf("path ends at %v, want %v", got, pts[len(pts)-1])
	}
}

func TestHitPadding(t *testing.T) {
	pts := []vec.Vec2{pt(0, 0), pt(100, 0)}
	const width = 4
	if !Hit(pts, width, pt(50, width/2+HitPadding-0.5)) {
		t.Error("point inside the padding was not hit")
	}
	if Hit(pts, width, pt(50, width/2+HitPadding+0.5)) {
		t.Error("point outside the padding was hit")
	}
	if !Hit(pts, width, pt(-10, 0)) {
		t.Error("point beyond the end cap was not hit")
	}
}

func BenchmarkSquiggle(b *testing.B) {
	pts := make([]vec.Vec2, 40)
	for i := range pts {
		pts[i] = pt(float64(i)*25, 100+40*math.Sin(float64(i)))
	}
	b.ReportAllocs()
	for b.Loop() {
		Squiggle(pts, DefaultSquiggle)
	}
}
