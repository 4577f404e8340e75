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

package tactics

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/tactics/scene"
)

// Handle identifies a transform handle on the selection bounding box.
type Handle int

// These are the transform handles.
const (
	HandleTopLeft Handle = iota
	HandleTop
	HandleTopRight
	HandleRight
	HandleBottomRight
	HandleBottom
	HandleBottomLeft
	HandleLeft
	HandleRotate
)

// Geometry of the transform handles, in field units.
const (
	// MinTransformSize is the smallest width and height the selection
	// can be resized to.
	MinTransformSize = 10.0

	// RotateHandleOffset is the distance of the rotation handle above
	// the selection box.
	RotateHandleOffset = 30.0

	// HandleRadius is the hit radius of a handle.
	HandleRadius = 8.0
)

// HandlePos is a transform handle and its position.
type HandlePos struct {
	Handle Handle
	Pos    vec.Vec2
}

// Handles returns the transform handles of the current selection, or nil
// if nothing is selected.
func (e *Editor) Handles() []HandlePos {
	b, ok := e.SelectionBounds()
	if !ok {
		return nil
	}
	cx, cy := (b.LLx+b.URx)/2, (b.LLy+b.URy)/2
	return []HandlePos{
		{HandleTopLeft, vec.Vec2{X: b.LLx, Y: b.LLy}},
		{HandleTop, vec.Vec2{X: cx, Y: b.LLy}},
		{HandleTopRight, vec.Vec2{X: b.URx, Y: b.LLy}},
		{HandleRight, vec.Vec2{X: b.URx, Y: cy}},
		{HandleBottomRight, vec.Vec2{X: b.URx, Y: b.URy}},
		{HandleBottom, vec.Vec2{X: cx, Y: b.URy}},
		{HandleBottomLeft, vec.Vec2{X: b.LLx, Y: b.URy}},
		{HandleLeft, vec.Vec2{X: b.LLx, Y: cy}},
		{HandleRotate, vec.Vec2{X: cx, Y: b.LLy - RotateHandleOffset}},
	}
}

// HandleAt returns the handle at field position p.
func (e *Editor) HandleAt(p vec.Vec2) (Handle, bool) {
	for _, h := range e.Handles() {
		if h.Pos.Sub(p).Length() <= HandleRadius {
			return h.Handle, true
		}
	}
	return 0, false
}

type dragState struct {
	last  vec.Vec2
	moved bool
}

// DragStart begins moving the selection with the pointer at p.  If p is on
// an unselected item, that item is selected first.  DragStart returns
// false, and nothing happens, if p is not on an item or the editor is not
// in select mode.
func (e *Editor) DragStart(p vec.Vec2) bool {
	if e.mode.Tool != ToolSelect {
		return false
	}
	hit := e.HitTest(p)
	switch hit.Kind {
	case NoItem:
		return false
	case ShapeItem:
		if !e.sel.hasShape(hit.ID) {
			e.selectItem(hit)
		}
	case LineItem:
		if !e.sel.hasLine(hit.ID) {
			e.selectItem(hit)
		}
	}
	e.drag = &dragState{last: p}
	return true
}

// DragMove moves the selected items along with the pointer.
func (e *Editor) DragMove(p vec.Vec2) {
	if e.drag == nil {
		return
	}
	d := p.Sub(e.drag.last)
	e.drag.last = p
	if d.X == 0 && d.Y == 0 {
		return
	}
	e.drag.moved = true
	for _, id := range e.sel.Shapes {
		e.scene.UpdateShape(id, func(sh *scene.Shape) { sh.Pos = sh.Pos.Add(d) })
	}
	for _, id := range e.sel.Lines {
		e.scene.UpdateLine(id, func(l *scene.LinePath) {
			for i := range l.Points {
				l.Points[i] = l.Points[i].Add(d)
			}
		})
	}
}

// DragEnd finishes a drag.
func (e *Editor) DragEnd() {
	if e.drag != nil && e.drag.moved {
		e.log.Debug("selection moved", "shapes", len(e.sel.Shapes), "lines", len(e.sel.Lines))
	}
	e.drag = nil
}

type transformState struct {
	handle Handle
	box    rect.Rect
	start  vec.Vec2

	// pending maps the original geometry to the previewed one
	pending matrix.Matrix
}

// BeginTransform starts resizing or rotating the selection by dragging
// handle h, with the pointer at p.  It returns false if nothing is
// selected.
func (e *Editor) BeginTransform(h Handle, p vec.Vec2) bool {
	b, ok := e.SelectionBounds()
	if !ok || e.mode.Tool != ToolSelect {
		return false
	}
	e.drag = nil
	e.xform = &transformState{
		handle:  h,
		box:     b,
		start:   p,
		pending: matrix.Identity,
	}
	return true
}

// UpdateTransform updates the pending transform for the pointer at p.  The
// scene is not changed until [Editor.EndTransform]; [Editor.Drawing] shows
// the pending result.
func (e *Editor) UpdateTransform(p vec.Vec2) {
	t := e.xform
	if t == nil {
		return
	}
	b := t.box
	c := vec.Vec2{X: (b.LLx + b.URx) / 2, Y: (b.LLy + b.URy) / 2}

	if t.handle == HandleRotate {
		a0 := math.Atan2(t.start.Y-c.Y, t.start.X-c.X)
		a1 := math.Atan2(p.Y-c.Y, p.X-c.X)
		t.pending = rotateAbout(c, a1-a0)
		return
	}

	// the anchor is the point of the box opposite the dragged handle
	anchor, moveX, moveY := c, 0, 0
	switch t.handle {
	case HandleTopLeft, HandleLeft, HandleBottomLeft:
		anchor.X, moveX = b.URx, -1
	case HandleTopRight, HandleRight, HandleBottomRight:
		anchor.X, moveX = b.LLx, 1
	}
	switch t.handle {
	case HandleTopLeft, HandleTop, HandleTopRight:
		anchor.Y, moveY = b.URy, -1
	case HandleBottomLeft, HandleBottom, HandleBottomRight:
		anchor.Y, moveY = b.LLy, 1
	}

	d := p.Sub(t.start)
	sx := resizeFactor(b.URx-b.LLx, float64(moveX)*d.X)
	sy := resizeFactor(b.URy-b.LLy, float64(moveY)*d.Y)
	if moveX == 0 {
		sx = 1
	}
	if moveY == 0 {
		sy = 1
	}
	t.pending = scaleAbout(anchor, sx, sy)
}

// resizeFactor returns the scale factor for growing a box side of length
// size by delta, without going below MinTransformSize.
func resizeFactor(size, delta float64) float64 {
	if size <= 0 {
		return 1
	}
	newSize := max(size+delta, min(MinTransformSize, size))
	return newSize / size
}

// PendingTransform returns the affine map of the transform in progress.
func (e *Editor) PendingTransform() (matrix.Matrix, bool) {
	if e.xform == nil {
		return matrix.Matrix{}, false
	}
	return e.xform.pending, true
}

// EndTransform writes the pending transform back into every selected
// shape and line.
func (e *Editor) EndTransform() {
	t := e.xform
	if t == nil {
		return
	}
	e.xform = nil
	if t.pending == matrix.Identity {
		return
	}
	for _, id := range e.sel.Shapes {
		e.scene.UpdateShape(id, func(sh *scene.Shape) { *sh = transformShape(*sh, t.pending) })
	}
	for _, id := range e.sel.Lines {
		e.scene.UpdateLine(id, func(l *scene.LinePath) { transformPoints(l.Points, t.pending) })
	}
	e.log.Debug("selection transformed", "shapes", len(e.sel.Shapes), "lines", len(e.sel.Lines))
}

// CancelTransform abandons the transform in progress.
func (e *Editor) CancelTransform() {
	e.xform = nil
}

// previewItems returns the shapes and lines of the scene with the pending
// transform applied to the selected items.
func (e *Editor) previewItems() ([]scene.Shape, []scene.LinePath) {
	m := e.xform.pending
	shapes := append([]scene.Shape(nil), e.scene.Shapes()...)
	for i := range shapes {
		if e.sel.hasShape(shapes[i].ID) {
			shapes[i] = transformShape(shapes[i], m)
		}
	}
	lines := append([]scene.LinePath(nil), e.scene.Lines()...)
	for i := range lines {
		if e.sel.hasLine(lines[i].ID) {
			pts := append([]vec.Vec2(nil), lines[i].Points...)
			transformPoints(pts, m)
			lines[i].Points = pts
		}
	}
	return shapes, lines
}

// transformShape maps sh through m.  The new rotation and scale factors
// are read off the images of the shape's local axes; any shear is
// dropped.
func transformShape(sh scene.Shape, m matrix.Matrix) scene.Shape {
	t := sh.Transform()
	// images of the local unit axes under m∘t, without translation
	ux := vec.Vec2{X: m[0]*t[0] + m[2]*t[1], Y: m[1]*t[0] + m[3]*t[1]}
	uy := vec.Vec2{X: m[0]*t[2] + m[2]*t[3], Y: m[1]*t[2] + m[3]*t[3]}

	sh.Pos = scene.Apply(m, sh.Pos)
	if sx := ux.Length(); sx > 0 {
		sh.ScaleX = scene.Clamp(sx, MinScale, MaxScale, 1)
		sh.Rotation = normalizeAngle(math.Atan2(ux.Y, ux.X) * 180 / math.Pi)
	}
	if sy := uy.Length(); sy > 0 {
		sh.ScaleY = scene.Clamp(sy, MinScale, MaxScale, 1)
	}
	return sh
}

func transformPoints(pts []vec.Vec2, m matrix.Matrix) {
	for i, p := range pts {
		pts[i] = scene.Apply(m, p)
	}
}

// normalizeAngle maps an angle in degrees to [-180, 180].
func normalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	switch {
	case deg > 180:
		deg -= 360
	case deg < -180:
		deg += 360
	}
	return deg
}

// rotateAbout returns the rotation by angle a (radians, clockwise on
// screen) around c.
func rotateAbout(c vec.Vec2, a float64) matrix.Matrix {
	sin, cos := math.Sincos(a)
	return matrix.Matrix{
		cos, sin,
		-sin, cos,
		c.X - cos*c.X + sin*c.Y, c.Y - sin*c.X - cos*c.Y,
	}
}

// scaleAbout returns the scaling by (sx, sy) which keeps c fixed.
func scaleAbout(c vec.Vec2, sx, sy float64) matrix.Matrix {
	return matrix.Matrix{
		sx, 0,
		0, sy,
		c.X - sx*c.X, c.Y - sy*c.Y,
	}
}
