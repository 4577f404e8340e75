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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ShapeKind identifies the kind of a placed shape.
type ShapeKind int

// These are the supported shape kinds.
const (
	Attacker ShapeKind = iota
	Defender
	Ball
	Goal
	Cone
)

// ShapeKinds lists all shape kinds in toolbar order.
var ShapeKinds = []ShapeKind{Attacker, Defender, Ball, Goal, Cone}

func (k ShapeKind) String() string {
	switch k {
	case Attacker:
		return "attacker"
	case Defender:
		return "defender"
	case Ball:
		return "ball"
	case Goal:
		return "goal"
	case Cone:
		return "cone"
	default:
		return "unknown"
	}
}

// ParseShapeKind converts the persisted name of a shape kind back to a
// ShapeKind.
func ParseShapeKind(s string) (ShapeKind, bool) {
	for _, k := range ShapeKinds {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// Body holds the kind-specific attributes of a shape.
// The concrete type determines the kind of the shape.
type Body interface {
	Kind() ShapeKind
}

// AttackerBody is a player of the attacking team.
type AttackerBody struct{}

// DefenderBody is a player of the defending team.
type DefenderBody struct{}

// BallBody is a ball.
type BallBody struct{}

// GoalBody is a goal frame, seen from above.
type GoalBody struct {
	Width  float64
	Height float64
}

// ConeBody is a training cone.
type ConeBody struct {
	Color string // "#rrggbb"
}

func (AttackerBody) Kind() ShapeKind { return Attacker }
func (DefenderBody) Kind() ShapeKind { return Defender }
func (BallBody) Kind() ShapeKind     { return Ball }
func (GoalBody) Kind() ShapeKind     { return Goal }
func (ConeBody) Kind() ShapeKind     { return Cone }

// Default attribute values for newly created shapes.
const (
	DefaultConeColor  = "#f97316"
	DefaultGoalWidth  = 60.0
	DefaultGoalHeight = 20.0
)

// Ranges of the adjustable shape and line attributes.  Shapes and lines
// stored in a Scene always lie within these ranges.
const (
	MinRotation    = -180.0
	MaxRotation    = 180.0
	MinScale       = 0.25
	MaxScale       = 4.0
	MinGoalSize    = 10.0
	MaxGoalSize    = 400.0
	MinStrokeWidth = 1.0
	MaxStrokeWidth = 12.0
)

// MaxCoordinate bounds the absolute value of field-space coordinates.
// Shapes and lines outside this range are rejected.
const MaxCoordinate = 1e5

// Clamp limits x to [lo, hi].  NaN is replaced by def.
func Clamp(x, lo, hi, def float64) float64 {
	if math.IsNaN(x) {
		return def
	}
	return min(max(x, lo), hi)
}

// ConeColors is the palette offered for cones.
var ConeColors = []string{"#f97316", "#facc15", "#ef4444", "#3b82f6", "#ffffff"}

// NewBody returns the body of a fresh shape of kind k, with default
// attributes.
func NewBody(k ShapeKind) Body {
	switch k {
	case Attacker:
		return AttackerBody{}
	case Defender:
		return DefenderBody{}
	case Ball:
		return BallBody{}
	case Goal:
		return GoalBody{Width: DefaultGoalWidth, Height: DefaultGoalHeight}
	case Cone:
		return ConeBody{Color: DefaultConeColor}
	default:
		return nil
	}
}

// Radii of the round shapes, in field units before scaling.
const (
	PlayerRadius = 14.0
	BallRadius   = 7.0
	ConeRadius   = 10.0
)

// Shape is a placed object on the field.
type Shape struct {
	ID   string
	Body Body

	Pos      vec.Vec2 // centre, in field space
	Rotation float64  // degrees, clockwise on screen
	ScaleX   float64
	ScaleY   float64
}

// Kind returns the kind of the shape.
func (s *Shape) Kind() ShapeKind {
	return s.Body.Kind()
}

// normalize brings the attributes of s into their allowed ranges.
// Zero scale factors are replaced by 1 and rotations are wrapped to
// [-180, 180].
func (s *Shape) normalize() {
	if s.ScaleX == 0 {
		s.ScaleX = 1
	}
	if s.ScaleY == 0 {
		s.ScaleY = 1
	}
	s.ScaleX = Clamp(s.ScaleX, MinScale, MaxScale, 1)
	s.ScaleY = Clamp(s.ScaleY, MinScale, MaxScale, 1)
	s.Rotation = Clamp(math.Remainder(s.Rotation, 360), MinRotation, MaxRotation, 0)
	if g, ok := s.Body.(GoalBody); ok {
		g.Width = Clamp(g.Width, MinGoalSize, MaxGoalSize, DefaultGoalWidth)
		g.Height = Clamp(g.Height, MinGoalSize, MaxGoalSize, DefaultGoalHeight)
		s.Body = g
	}
}

// Transform maps shape-local coordinates to field space.
func (s *Shape) Transform() matrix.Matrix {
	sin, cos := math.Sincos(s.Rotation * math.Pi / 180)
	return matrix.Matrix{
		s.ScaleX * cos, s.ScaleX * sin,
		-s.ScaleY * sin, s.ScaleY * cos,
		s.Pos.X, s.Pos.Y,
	}
}

// LocalBounds returns the extent of the shape in shape-local coordinates,
// centred on the origin.
func (s *Shape) LocalBounds() rect.Rect {
	var hw, hh float64
	switch b := s.Body.(type) {
	case AttackerBody, DefenderBody:
		hw, hh = PlayerRadius, PlayerRadius
	case BallBody:
		hw, hh = BallRadius, BallRadius
	case GoalBody:
		hw, hh = b.Width/2, b.Height/2
	case ConeBody:
		hw, hh = ConeRadius, ConeRadius
	}
	return rect.Rect{LLx: -hw, LLy: -hh, URx: hw, URy: hh}
}

// Bounds returns the axis-aligned bounding box of the shape in field space.
func (s *Shape) Bounds() rect.Rect {
	local := s.LocalBounds()
	m := s.Transform()
	corners := [4]vec.Vec2{
		{X: local.LLx, Y: local.LLy},
		{X: local.URx, Y: local.LLy},
		{X: local.URx, Y: local.URy},
		{X: local.LLx, Y: local.URy},
	}
	var res rect.Rect
	for i, c := range corners {
		p := Apply(m, c)
		if i == 0 {
			res = rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
			continue
		}
		res.LLx = min(res.LLx, p.X)
		res.LLy = min(res.LLy, p.Y)
		res.URx = max(res.URx, p.X)
		res.URy = max(res.URy, p.Y)
	}
	return res
}

// Contains reports whether the field-space point p lies on the shape.
// Round shapes use their circle, all others their local bounding box.
func (s *Shape) Contains(p vec.Vec2) bool {
	if s.ScaleX == 0 || s.ScaleY == 0 {
		return false
	}
	d := p.Sub(s.Pos)
	sin, cos := math.Sincos(-s.Rotation * math.Pi / 180)
	local := vec.Vec2{
		X: (d.X*cos - d.Y*sin) / s.ScaleX,
		Y: (d.X*sin + d.Y*cos) / s.ScaleY,
	}

	b := s.LocalBounds()
	switch s.Body.(type) {
	case AttackerBody, DefenderBody, BallBody:
		return local.Length() <= b.URx
	default:
		return local.X >= b.LLx && local.X <= b.URx && local.Y >= b.LLy && local.Y <= b.URy
	}
}

// Apply maps p through the affine transformation m.
func Apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}
