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

package scene

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// LineKind selects how a tactical line is drawn.
type LineKind int

// These are the supported line kinds.
const (
	Pass LineKind = iota
	Movement
	Dribble
)

// LineKinds lists all line kinds in toolbar order.
var LineKinds = []LineKind{Pass, Movement, Dribble}

func (k LineKind) String() string {
	switch k {
	case Pass:
		return "pass"
	case Movement:
		return "movement"
	case Dribble:
		return "dribble"
	default:
		return "unknown"
	}
}

// ParseLineKind converts the persisted name of a line kind back to a
// LineKind.
func ParseLineKind(s string) (LineKind, bool) {
	for _, k := range LineKinds {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// DefaultStrokeWidth is the stroke width of newly drawn lines, in field
// units.
const DefaultStrokeWidth = 3.0

// LinePath is a tactical line through a sequence of control points.
// A LinePath stored in a Scene always has at least two points.
type LinePath struct {
	ID          string
	Kind        LineKind
	Points      []vec.Vec2
	StrokeWidth float64
	Arrow       bool
}

// Bounds returns the bounding box of the control points.
func (l *LinePath) Bounds() rect.Rect {
	return PointBounds(l.Points)
}

// normalize replaces a non-positive stroke width by the default and clamps
// the result to the allowed range.
func (l *LinePath) normalize() {
	if l.StrokeWidth <= 0 {
		l.StrokeWidth = DefaultStrokeWidth
	}
	l.StrokeWidth = Clamp(l.StrokeWidth, MinStrokeWidth, MaxStrokeWidth, DefaultStrokeWidth)
}

func (l *LinePath) clone() LinePath {
	res := *l
	res.Points = append([]vec.Vec2(nil), l.Points...)
	return res
}

// PointBounds returns the bounding box of a set of points.
// The result is the zero rectangle if pts is empty.
func PointBounds(pts []vec.Vec2) rect.Rect {
	if len(pts) == 0 {
		return rect.Rect{}
	}
	res := rect.Rect{LLx: pts[0].X, LLy: pts[0].Y, URx: pts[0].X, URy: pts[0].Y}
	for _, p := range pts[1:] {
		res.LLx = min(res.LLx, p.X)
		res.LLy = min(res.LLy, p.Y)
		res.URx = max(res.URx, p.X)
		res.URy = max(res.URy, p.Y)
	}
	return res
}
