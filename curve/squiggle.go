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

	"seehuhn.de/go/geom/vec"
)

// SquiggleParams controls the wave drawn for dribble lines.
type SquiggleParams struct {
	// Amplitude is the maximal lateral offset of the wave, in field units.
	Amplitude float64

	// Frequency is the number of half-waves along the whole line.
	// If Frequency is zero, it is derived from Wavelength and the length of
	// the line, so that long and short lines have the same wave density.
	Frequency float64

	// Wavelength is the arc length of one full wave, used when Frequency
	// is zero.
	Wavelength float64

	// Spacing is the approximate arc length between samples.
	Spacing float64

	// MinSamples is the minimal number of sample intervals.
	MinSamples int

	// MaxSamples caps the number of sample intervals.  Zero means no cap.
	MaxSamples int

	// Taper is the arc length over which the amplitude ramps up from zero
	// at both ends of the line.  Zero disables tapering.
	Taper float64
}

// DefaultSquiggle is used to draw dribble lines.
var DefaultSquiggle = SquiggleParams{
	Amplitude:  6,
	Wavelength: 40,
	Spacing:    4,
	MinSamples: 16,
	MaxSamples: 4096,
	Taper:      12,
}

// Squiggle samples the dribble wave along the polyline through pts.
// The result has S+1 points where S = max(MinSamples, floor(L/Spacing)),
// limited to MaxSamples, and L is the length of the polyline.  With tapering enabled, the first and
// last samples coincide exactly with the first and last control points.
//
// The cost is proportional to the number of samples plus the number of
// control points.
func Squiggle(pts []vec.Vec2, p SquiggleParams) []vec.Vec2 {
	if len(pts) < 2 {
		return append([]vec.Vec2(nil), pts...)
	}
	L := Length(pts)
	S := p.MinSamples
	if p.Spacing > 0 {
		if n := math.Floor(L / p.Spacing); n > float64(S) {
			S = int(min(n, math.MaxInt32))
		}
	}
	if p.MaxSamples > 0 {
		S = min(S, p.MaxSamples)
	}
	S = max(S, 1)

	w := newWalker(pts)
	F := p.frequency(L)
	res := make([]vec.Vec2, S+1)
	for i := range res {
		res[i] = p.sample(w, pts, float64(i)/float64(S), L, F)
	}
	return res
}

// SampleAt evaluates the dribble wave at the normalised arc-length
// position t ∈ [0, 1].
func SampleAt(pts []vec.Vec2, t float64, p SquiggleParams) vec.Vec2 {
	if len(pts) == 0 {
		return vec.Vec2{}
	}
	L := Length(pts)
	return p.sample(newWalker(pts), pts, t, L, p.frequency(L))
}

func (p SquiggleParams) sample(w *walker, pts []vec.Vec2, t, L, F float64) vec.Vec2 {
	t = max(0, min(1, t))

	var base, tan vec.Vec2
	switch t {
	case 0:
		base, tan = pts[0], w.tan
	case 1:
		_, tan = w.locate(L)
		base = pts[len(pts)-1]
	default:
		base, tan = w.locate(t * L)
	}
	if L == 0 {
		return base
	}

	s := t * L
	offset := math.Sin(t*math.Pi*F) * p.Amplitude * p.taper(s, L)
	normal := vec.Vec2{X: -tan.Y, Y: tan.X}
	return base.Add(normal.Mul(offset))
}

func (p SquiggleParams) frequency(L float64) float64 {
	if p.Frequency > 0 {
		return p.Frequency
	}
	if p.Wavelength > 0 {
		return 2 * L / p.Wavelength
	}
	return 1
}

// taper returns the amplitude factor at arc length s on a line of length L.
func (p SquiggleParams) taper(s, L float64) float64 {
	if p.Taper <= 0 {
		return 1
	}
	window := min(p.Taper, L/2)
	return max(0, min(1, s/window, (L-s)/window))
}
