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

package render

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/tactics/scene"
)

var (
	pitchColor     = color.NRGBA{R: 0x3f, G: 0x8f, B: 0x4a, A: 0xff}
	markingColor   = color.NRGBA{R: 0xf1, G: 0xf5, B: 0xf9, A: 0xe0}
	lineColor      = color.NRGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xff}
	selectionColor = color.NRGBA{R: 0x38, G: 0xbd, B: 0xf8, A: 0xff}
	attackerColor  = color.NRGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff}
	defenderColor  = color.NRGBA{R: 0xdc, G: 0x26, B: 0x26, A: 0xff}
	netColor       = color.NRGBA{R: 0xe5, G: 0xe7, B: 0xeb, A: 0xa0}
	white          = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black          = color.NRGBA{A: 0xff}
)

const (
	markingWidth = 2.0
	selectionPad = 4.0
	handleSize   = 8.0
	outlineWidth = 2.0
	netSpacing   = 10.0
	maxNetLines  = 64
)

// ParseColor parses a colour in "#rrggbb" or "#rgb" notation.
func ParseColor(s string) (color.NRGBA, bool) {
	s, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.NRGBA{}, false
	}
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.NRGBA{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
}

// shapeOps returns the operations drawing sh in field space.
// Geometry is built in shape-local coordinates and mapped through the
// shape transform.
func shapeOps(sh *scene.Shape) []Op {
	m := sh.Transform()
	scale := math.Sqrt(math.Abs(sh.ScaleX * sh.ScaleY))
	origin := vec.Vec2{}

	disc := func(r float64, fill, outline color.NRGBA) []Op {
		p := transformed(appendCircle(&path.Data{}, origin, r), m)
		return []Op{
			Fill{Path: p, Color: fill},
			Stroke{Path: p, Width: outlineWidth * scale, Cap: graphics.LineCapButt, Join: graphics.LineJoinRound, Color: outline},
		}
	}

	switch b := sh.Body.(type) {
	case scene.AttackerBody:
		return disc(scene.PlayerRadius, attackerColor, white)

	case scene.DefenderBody:
		return disc(scene.PlayerRadius, defenderColor, white)

	case scene.BallBody:
		ops := disc(scene.BallRadius, white, black)
		ops[1] = strokeWidth(ops[1], 1.5*scale)
		inner := transformed(appendCircle(&path.Data{}, origin, scene.BallRadius*0.4), m)
		return append(ops, Fill{Path: inner, Color: black})

	case scene.GoalBody:
		hw, hh := b.Width/2, b.Height/2
		net := &path.Data{}
		for i := range netLines(b.Width) {
			x := -hw + float64(i+1)*netSpacing
			net.MoveTo(vec.Vec2{X: x, Y: -hh}).LineTo(vec.Vec2{X: x, Y: hh})
		}
		for i := range netLines(b.Height) {
			y := -hh + float64(i+1)*netSpacing
			net.MoveTo(vec.Vec2{X: -hw, Y: y}).LineTo(vec.Vec2{X: hw, Y: y})
		}
		frame := (&path.Data{}).
			MoveTo(vec.Vec2{X: -hw, Y: hh}).
			LineTo(vec.Vec2{X: -hw, Y: -hh}).
			LineTo(vec.Vec2{X: hw, Y: -hh}).
			LineTo(vec.Vec2{X: hw, Y: hh})
		var ops []Op
		if len(net.Cmds) > 0 {
			ops = append(ops, Stroke{Path: transformed(net, m), Width: 0.75 * scale, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, Color: netColor})
		}
		return append(ops, Stroke{Path: transformed(frame, m), Width: 3 * scale, Cap: graphics.LineCapSquare, Join: graphics.LineJoinMiter, Color: white})

	case scene.ConeBody:
		c, ok := ParseColor(b.Color)
		if !ok {
			c, _ = ParseColor(scene.DefaultConeColor)
		}
		r := scene.ConeRadius
		tri := (&path.Data{}).
			MoveTo(vec.Vec2{X: 0, Y: -r}).
			LineTo(vec.Vec2{X: 0.9 * r, Y: 0.8 * r}).
			LineTo(vec.Vec2{X: -0.9 * r, Y: 0.8 * r}).
			Close()
		p := transformed(tri, m)
		return []Op{
			Fill{Path: p, Color: c},
			Stroke{Path: p, Width: scale, Cap: graphics.LineCapButt, Join: graphics.LineJoinRound, Color: lineColor},
		}
	}
	return nil
}

// netLines returns the number of interior net lines across a goal side of
// the given length.
func netLines(size float64) int {
	n := math.Ceil(size/netSpacing) - 1
	if !(n > 0) {
		return 0
	}
	return int(min(n, maxNetLines))
}

func strokeWidth(op Op, w float64) Op {
	if s, ok := op.(Stroke); ok {
		s.Width = w
		return s
	}
	return op
}
