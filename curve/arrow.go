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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Arrowhead shape constants.
const (
	// ArrowHalfAngle is the angle between the line direction and each side
	// of the arrowhead.
	ArrowHalfAngle = math.Pi / 7

	// arrowLengthFactor relates the arrowhead length to the stroke width.
	arrowLengthFactor = 3.5

	// minArrowLength is the arrowhead length for very thin lines.
	minArrowLength = 10.0
)

// ArrowLength returns the arrowhead length for a line of the given stroke
// width.
func ArrowLength(strokeWidth float64) float64 {
	return max(minArrowLength, arrowLengthFactor*strokeWidth)
}

// Arrowhead returns the corners of the arrowhead at the end of the
// polyline through pts: the tip, followed by the two base corners.
//
// The direction is taken from the last non-degenerate segment of the
// control points, never from a derived curve, so that the arrow stays fixed
// while a dribble wave is regenerated.  The tip is exactly the last control
// point.
func Arrowhead(pts []vec.Vec2, length, halfAngle float64) [3]vec.Vec2 {
	if len(pts) == 0 {
		return [3]vec.Vec2{}
	}
	tip := pts[len(pts)-1]

	var angle float64
	for i := len(pts) - 1; i > 0; i-- {
		d := pts[i].Sub(pts[i-1])
		if d.X != 0 || d.Y != 0 {
			angle = math.Atan2(d.Y, d.X)
			break
		}
	}

	s1, c1 := math.Sincos(angle - halfAngle)
	s2, c2 := math.Sincos(angle + halfAngle)
	return [3]vec.Vec2{
		tip,
		{X: tip.X - c1*length, Y: tip.Y - s1*length},
		{X: tip.X - c2*length, Y: tip.Y - s2*length},
	}
}

// ArrowPath returns the closed triangle of an arrowhead as a path.
func ArrowPath(head [3]vec.Vec2) *path.Data {
	return (&path.Data{}).
		MoveTo(head[0]).
		LineTo(head[1]).
		LineTo(head[2]).
		Close()
}
