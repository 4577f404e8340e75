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
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/tactics/curve"
	"seehuhn.de/go/tactics/scene"
)

// Modifiers is the set of modifier keys held during an event.
type Modifiers uint8

// These are the modifier keys.
const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModMeta
	ModAlt
)

// toggles reports whether a click with these modifiers toggles selection
// membership.
func (m Modifiers) toggles() bool {
	return m&(ModShift|ModCtrl|ModMeta) != 0
}

// command reports whether the platform command key (Ctrl or Cmd) is held.
func (m Modifiers) command() bool {
	return m&(ModCtrl|ModMeta) != 0
}

// ItemKind distinguishes shapes from lines.
type ItemKind int

// These are the kinds of items which can be hit.
const (
	NoItem ItemKind = iota
	ShapeItem
	LineItem
)

// Item identifies a shape or a line of the scene.
type Item struct {
	Kind ItemKind
	ID   string
}

// HitTest returns the top-most item at field position p.  Lines are drawn
// above shapes and are tested first.  Lines are hit within
// curve.HitPadding of their stroke.
func (e *Editor) HitTest(p vec.Vec2) Item {
	lines := e.scene.Lines()
	for i := len(lines) - 1; i >= 0; i-- {
		if curve.Hit(lines[i].Points, lines[i].StrokeWidth, p) {
			return Item{Kind: LineItem, ID: lines[i].ID}
		}
	}
	shapes := e.scene.Shapes()
	for i := len(shapes) - 1; i >= 0; i-- {
		if shapes[i].Contains(p) {
			return Item{Kind: ShapeItem, ID: shapes[i].ID}
		}
	}
	return Item{}
}

// PointerMove records the pointer position.  While drafting, this updates
// the draft preview; in place mode, it moves the placement ghost; during a
// drag or transform, the selection follows the pointer.
func (e *Editor) PointerMove(p vec.Vec2) {
	e.pointer = p
	e.hover = true
	switch {
	case e.xform != nil:
		e.UpdateTransform(p)
	case e.drag != nil:
		e.DragMove(p)
	}
}

// PointerLeave records that the pointer has left the canvas.
func (e *Editor) PointerLeave() {
	e.hover = false
}

// Click handles a primary click at field position p.
func (e *Editor) Click(p vec.Vec2, mods Modifiers) {
	e.pointer = p
	e.hover = true
	hit := e.HitTest(p)

	switch e.mode.Tool {
	case ToolSelect:
		switch {
		case hit.Kind == NoItem:
			e.setSelection(Selection{})
		case mods.toggles():
			e.toggle(hit)
		default:
			e.selectItem(hit)
		}

	case ToolPlace:
		if hit.Kind != NoItem {
			e.mode = SelectMode()
			e.selectItem(hit)
			return
		}
		e.place(p)

	case ToolDraw:
		if hit.Kind != NoItem {
			if len(e.draft) > 0 {
				e.appendDraft(p)
				e.commitDraft()
			}
			e.mode = SelectMode()
			e.selectItem(hit)
			return
		}
		e.appendDraft(p)
	}
}

// DoubleClick handles a double click at field position p.  While drawing,
// the point is appended to the draft and the line is committed.  A double
// click on an item before any draft point is set acts like a single click.
// In the other modes a double click does nothing, since the clicks which
// precede it have already been handled.
func (e *Editor) DoubleClick(p vec.Vec2, mods Modifiers) {
	if e.mode.Tool != ToolDraw {
		return
	}
	if len(e.draft) == 0 && e.HitTest(p).Kind != NoItem {
		e.Click(p, mods)
		return
	}
	e.pointer = p
	e.appendDraft(p)
	if e.commitDraft() {
		e.mode = SelectMode()
	}
}

// place adds a shape of the current stamp kind at p.
func (e *Editor) place(p vec.Vec2) string {
	sh := e.stamp(p)
	id := e.scene.AddShape(sh)
	if id != "" {
		e.log.Debug("shape placed", "id", id, "kind", sh.Kind().String(), "x", p.X, "y", p.Y)
	}
	return id
}

// stamp returns a shape of the current stamp kind at p, using the session
// defaults.
func (e *Editor) stamp(p vec.Vec2) scene.Shape {
	d := e.defaults
	var body scene.Body
	switch e.mode.Shape {
	case scene.Cone:
		body = scene.ConeBody{Color: d.ConeColor}
	case scene.Goal:
		body = scene.GoalBody{Width: d.GoalWidth, Height: d.GoalHeight}
	default:
		body = scene.NewBody(e.mode.Shape)
	}
	return scene.Shape{
		Body:     body,
		Pos:      p,
		Rotation: d.Rotation,
		ScaleX:   d.Scale,
		ScaleY:   d.Scale,
	}
}

// Ghost returns the placement preview under the pointer, or nil if there
// is none.  The ghost is never part of the scene.
func (e *Editor) Ghost() *scene.Shape {
	if e.mode.Tool != ToolPlace || !e.hover {
		return nil
	}
	sh := e.stamp(e.pointer)
	if sh.Body == nil {
		return nil
	}
	return &sh
}

// appendDraft adds a control point to the draft.  Repeated points, as
// produced by the clicks preceding a double click, are ignored.
func (e *Editor) appendDraft(p vec.Vec2) {
	if n := len(e.draft); n > 0 && e.draft[n-1] == p {
		return
	}
	e.draft = append(e.draft, p)
}

// commitDraft turns the draft into a line.  Drafts with fewer than two
// points are discarded.  The draft is cleared in both cases.
func (e *Editor) commitDraft() bool {
	pts := e.draft
	e.draft = nil
	id, ok := e.scene.AddLine(scene.LinePath{
		Kind:        e.mode.Line,
		Points:      pts,
		StrokeWidth: e.defaults.StrokeWidth,
		Arrow:       true,
	})
	if !ok {
		e.log.Debug("draft discarded", "points", len(pts))
		return false
	}
	e.log.Debug("line committed", "id", id, "kind", e.mode.Line.String(), "points", len(pts))
	return true
}

// Draft returns the control points of the line being drawn.
func (e *Editor) Draft() []vec.Vec2 {
	return slices.Clone(e.draft)
}

// DraftPreview returns the line being drawn, extended to the pointer
// position, in the style it will have once committed.  The result is nil
// if no line is being drawn.
func (e *Editor) DraftPreview() *scene.LinePath {
	if e.mode.Tool != ToolDraw || len(e.draft) == 0 {
		return nil
	}
	pts := slices.Clone(e.draft)
	if e.hover && e.pointer != pts[len(pts)-1] {
		pts = append(pts, e.pointer)
	}
	return &scene.LinePath{
		Kind:        e.mode.Line,
		Points:      pts,
		StrokeWidth: e.defaults.StrokeWidth,
		Arrow:       true,
	}
}
