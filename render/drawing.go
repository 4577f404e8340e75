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

// Package render turns tactical diagrams into drawable form.
//
// A [Drawing] is a flat list of fill and stroke operations in field space.
// It is built from a scene, optionally with the transient state of an editor
// (placement ghost, line draft, selection outlines), and can be painted
// into a raster image or written as a single-page PDF file.
package render

import (
	"image/color"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/tactics/curve"
	"seehuhn.de/go/tactics/scene"
)

// Op is a single paint operation.
type Op interface {
	isOp()
}

// Fill paints the interior of a path.
type Fill struct {
	Path    *path.Data
	EvenOdd bool
	Color   color.NRGBA
}

func (Fill) isOp() {}

// Stroke paints the outline of a path.
type Stroke struct {
	Path  *path.Data
	Width float64
	Cap   graphics.LineCapStyle
	Join  graphics.LineJoinStyle
	Dash  []float64 // nil for solid
	Color color.NRGBA
}

func (Stroke) isOp() {}

// Drawing is a diagram in drawable form.  Coordinates are field units.
type Drawing struct {
	Width, Height float64
	Background    color.NRGBA
	Ops           []Op
}

// Style holds the parameters which control how lines are drawn.
type Style struct {
	// Tension smooths pass and movement lines through their control
	// points.  Zero gives straight segments.
	Tension float64

	// Dash is the on/off pattern of movement lines.
	Dash []float64

	// Squiggle controls the wave of dribble lines.
	Squiggle curve.SquiggleParams
}

// DefaultStyle is the line style used by the editor.
var DefaultStyle = Style{
	Tension:  0.5,
	Dash:     []float64{10, 6},
	Squiggle: curve.DefaultSquiggle,
}

// Overlay is the transient editor state drawn on top of a scene.
// None of it is part of the diagram.
type Overlay struct {
	Ghost     *scene.Shape    // placement preview under the pointer
	Draft     *scene.LinePath // line being drawn, up to the pointer
	Selection []rect.Rect     // outlines of the selected items
	Handles   []vec.Vec2      // transform handle positions
}

// Opacity of the placement ghost and the line draft.
const (
	GhostOpacity = 0.5
	DraftOpacity = 0.5
)

// FromScene returns the drawing of a scene, without editor overlay.
func FromScene(s *scene.Scene, st Style) *Drawing {
	return Build(s.Template, s.Shapes(), s.Lines(), st, nil)
}

// Build returns the drawing of the given diagram contents.
// Markings come first, then shapes, then lines, then the overlay.
func Build(t scene.FieldTemplate, shapes []scene.Shape, lines []scene.LinePath, st Style, ov *Overlay) *Drawing {
	d := &Drawing{
		Width:      t.Width,
		Height:     t.Height,
		Background: pitchColor,
	}
	for _, m := range t.Markings {
		d.Ops = append(d.Ops, markingOps(m)...)
	}
	for i := range shapes {
		d.Ops = append(d.Ops, shapeOps(&shapes[i])...)
	}
	for i := range lines {
		d.Ops = append(d.Ops, lineOps(&lines[i], st)...)
	}
	if ov == nil {
		return d
	}

	for _, b := range ov.Selection {
		d.Ops = append(d.Ops, Stroke{
			Path:  boxPath(b, selectionPad),
			Width: 1.5,
			Cap:   graphics.LineCapButt,
			Join:  graphics.LineJoinMiter,
			Dash:  []float64{4, 4},
			Color: selectionColor,
		})
	}
	if ov.Ghost != nil && ov.Ghost.Body != nil {
		d.Ops = append(d.Ops, fade(shapeOps(ov.Ghost), GhostOpacity)...)
	}
	if ov.Draft != nil && len(ov.Draft.Points) >= 2 {
		d.Ops = append(d.Ops, fade(lineOps(ov.Draft, st), DraftOpacity)...)
	}
	for _, h := range ov.Handles {
		d.Ops = append(d.Ops,
			Fill{Path: boxPath(rect.Rect{LLx: h.X, LLy: h.Y, URx: h.X, URy: h.Y}, handleSize/2), Color: white},
			Stroke{
				Path:  boxPath(rect.Rect{LLx: h.X, LLy: h.Y, URx: h.X, URy: h.Y}, handleSize/2),
				Width: 1,
				Cap:   graphics.LineCapButt,
				Join:  graphics.LineJoinMiter,
				Color: selectionColor,
			})
	}
	return d
}

func markingOps(m scene.Marking) []Op {
	var p *path.Data
	if m.Radius > 0 {
		p = appendCircle(&path.Data{}, m.Center, m.Radius)
	} else if len(m.Points) >= 2 {
		p = curve.Polyline(m.Points)
	} else {
		return nil
	}
	return []Op{Stroke{
		Path:  p,
		Width: markingWidth,
		Cap:   graphics.LineCapSquare,
		Join:  graphics.LineJoinMiter,
		Color: markingColor,
	}}
}

func lineOps(l *scene.LinePath, st Style) []Op {
	sw := l.StrokeWidth
	if sw <= 0 {
		sw = scene.DefaultStrokeWidth
	}
	stroke := Stroke{
		Width: sw,
		Cap:   graphics.LineCapRound,
		Join:  graphics.LineJoinRound,
		Color: lineColor,
	}
	switch l.Kind {
	case scene.Movement:
		stroke.Path = curve.Smooth(l.Points, st.Tension)
		stroke.Dash = slices.Clone(st.Dash)
		stroke.Cap = graphics.LineCapButt
	case scene.Dribble:
		stroke.Path = curve.Polyline(curve.Squiggle(l.Points, st.Squiggle))
	default:
		stroke.Path = curve.Smooth(l.Points, st.Tension)
	}

	ops := []Op{stroke}
	if l.Arrow {
		head := curve.Arrowhead(l.Points, curve.ArrowLength(sw), curve.ArrowHalfAngle)
		ops = append(ops, Fill{Path: curve.ArrowPath(head), Color: lineColor})
	}
	return ops
}

// fade scales the alpha of all operations by f.
func fade(ops []Op, f float64) []Op {
	for i, op := range ops {
		switch op := op.(type) {
		case Fill:
			op.Color.A = uint8(float64(op.Color.A)*f + 0.5)
			ops[i] = op
		case Stroke:
			op.Color.A = uint8(float64(op.Color.A)*f + 0.5)
			ops[i] = op
		}
	}
	return ops
}

// boxPath returns the closed outline of b, grown by pad on every side.
func boxPath(b rect.Rect, pad float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: b.LLx - pad, Y: b.LLy - pad}).
		LineTo(vec.Vec2{X: b.URx + pad, Y: b.LLy - pad}).
		LineTo(vec.Vec2{X: b.URx + pad, Y: b.URy + pad}).
		LineTo(vec.Vec2{X: b.LLx - pad, Y: b.URy + pad}).
		Close()
}

// kappa is the control point distance for a quarter circle Bézier arc.
const kappa = 0.5522847498

func appendCircle(p *path.Data, c vec.Vec2, r float64) *path.Data {
	kr := kappa * r
	return p.MoveTo(vec.Vec2{X: c.X + r, Y: c.Y}).
		CubeTo(vec.Vec2{X: c.X + r, Y: c.Y + kr}, vec.Vec2{X: c.X + kr, Y: c.Y + r}, vec.Vec2{X: c.X, Y: c.Y + r}).
		CubeTo(vec.Vec2{X: c.X - kr, Y: c.Y + r}, vec.Vec2{X: c.X - r, Y: c.Y + kr}, vec.Vec2{X: c.X - r, Y: c.Y}).
		CubeTo(vec.Vec2{X: c.X - r, Y: c.Y - kr}, vec.Vec2{X: c.X - kr, Y: c.Y - r}, vec.Vec2{X: c.X, Y: c.Y - r}).
		CubeTo(vec.Vec2{X: c.X + kr, Y: c.Y - r}, vec.Vec2{X: c.X + r, Y: c.Y - kr}, vec.Vec2{X: c.X + r, Y: c.Y}).
		Close()
}

// transformed returns a copy of p with all coordinates mapped through m.
func transformed(p *path.Data, m matrix.Matrix) *path.Data {
	res := &path.Data{
		Cmds:   slices.Clone(p.Cmds),
		Coords: make([]vec.Vec2, len(p.Coords)),
	}
	for i, c := range p.Coords {
		res.Coords[i] = scene.Apply(m, c)
	}
	return res
}
