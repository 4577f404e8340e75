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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/tactics/render"
	"seehuhn.de/go/tactics/scene"
)

// Selection is the set of selected items.  At most one of Shapes and
// Lines is non-empty.
type Selection struct {
	Shapes []string
	Lines  []string

	// ApplyToAll redirects style edits and deletion from the single
	// selected shape to all shapes of its kind.
	ApplyToAll bool
}

// Empty reports whether nothing is selected.
func (s Selection) Empty() bool {
	return len(s.Shapes) == 0 && len(s.Lines) == 0
}

func (s Selection) hasShape(id string) bool { return slices.Contains(s.Shapes, id) }
func (s Selection) hasLine(id string) bool  { return slices.Contains(s.Lines, id) }

// Selection returns a copy of the current selection.
func (e *Editor) Selection() Selection {
	return Selection{
		Shapes:     slices.Clone(e.sel.Shapes),
		Lines:      slices.Clone(e.sel.Lines),
		ApplyToAll: e.sel.ApplyToAll,
	}
}

// setSelection replaces the selection.  The apply-to-all flag only
// survives if the selection is unchanged.
func (e *Editor) setSelection(s Selection) {
	same := slices.Equal(s.Shapes, e.sel.Shapes) && slices.Equal(s.Lines, e.sel.Lines)
	if !same {
		s.ApplyToAll = false
	}
	e.sel = s
}

// Select replaces the selection by the given item.  Unknown items clear
// the selection.
func (e *Editor) Select(it Item) {
	e.selectItem(it)
}

// ClearSelection deselects all items.
func (e *Editor) ClearSelection() {
	e.setSelection(Selection{})
}

func (e *Editor) selectItem(it Item) {
	switch {
	case it.Kind == ShapeItem && e.scene.ShapeIndex(it.ID) >= 0:
		e.setSelection(Selection{Shapes: []string{it.ID}, ApplyToAll: e.sel.ApplyToAll})
	case it.Kind == LineItem && e.scene.LineIndex(it.ID) >= 0:
		e.setSelection(Selection{Lines: []string{it.ID}})
	default:
		e.setSelection(Selection{})
	}
}

// toggle adds or removes an item.  Selecting an item of the other kind
// replaces the selection.
func (e *Editor) toggle(it Item) {
	var ids []string
	switch it.Kind {
	case ShapeItem:
		ids = e.sel.Shapes
	case LineItem:
		ids = e.sel.Lines
	default:
		return
	}
	if len(ids) == 0 {
		e.selectItem(it)
		return
	}

	if i := slices.Index(ids, it.ID); i >= 0 {
		ids = slices.Delete(slices.Clone(ids), i, i+1)
	} else {
		ids = append(slices.Clone(ids), it.ID)
	}
	if it.Kind == ShapeItem {
		e.setSelection(Selection{Shapes: ids})
	} else {
		e.setSelection(Selection{Lines: ids})
	}
}

// SetApplyToAll switches bulk editing of all shapes of the selected
// shape's kind on or off.  Switching it on requires exactly one selected
// shape.
func (e *Editor) SetApplyToAll(on bool) error {
	if on && (len(e.sel.Shapes) != 1 || len(e.sel.Lines) != 0) {
		return ErrNotSingleShape
	}
	e.sel.ApplyToAll = on
	return nil
}

// AffectedShapes returns the ids of the shapes which style edits and
// deletion apply to.
func (e *Editor) AffectedShapes() []string {
	if e.sel.ApplyToAll && len(e.sel.Shapes) == 1 {
		if sh, ok := e.scene.Shape(e.sel.Shapes[0]); ok {
			return e.scene.ShapesOfKind(sh.Kind())
		}
	}
	return slices.Clone(e.sel.Shapes)
}

// AffectedCount returns the number of items which style edits and
// deletion apply to.
func (e *Editor) AffectedCount() int {
	return len(e.AffectedShapes()) + len(e.sel.Lines)
}

// Delete removes the affected items and clears the selection.
// It returns the number of items removed.
func (e *Editor) Delete() int {
	shapes := e.AffectedShapes()
	n := e.scene.RemoveShapes(shapes...) + e.scene.RemoveLines(e.sel.Lines...)
	if n > 0 {
		e.log.Debug("items deleted", "count", n, "applyToAll", e.sel.ApplyToAll)
	}
	e.setSelection(Selection{})
	return n
}

// updateShapes applies fn to all affected shapes and returns the number of
// shapes changed.
func (e *Editor) updateShapes(fn func(*scene.Shape) bool) int {
	n := 0
	for _, id := range e.AffectedShapes() {
		changed := false
		e.scene.UpdateShape(id, func(sh *scene.Shape) { changed = fn(sh) })
		if changed {
			n++
		}
	}
	return n
}

// updateLines applies fn to all selected lines and returns the number of
// lines changed.
func (e *Editor) updateLines(fn func(*scene.LinePath)) int {
	n := 0
	for _, id := range e.sel.Lines {
		if e.scene.UpdateLine(id, fn) {
			n++
		}
	}
	return n
}

// The following setters change the affected items.  With an empty
// selection they change the session defaults used for new items instead.
// Each returns the number of items changed.

// SetRotation sets the rotation in degrees, clamped to [-180, 180].
func (e *Editor) SetRotation(deg float64) int {
	deg = scene.Clamp(deg, MinRotation, MaxRotation, 0)
	if e.sel.Empty() {
		e.defaults.Rotation = deg
		return 0
	}
	return e.updateShapes(func(sh *scene.Shape) bool {
		sh.Rotation = deg
		return true
	})
}

// SetScale sets a uniform scale factor, clamped to [0.25, 4].
func (e *Editor) SetScale(s float64) int {
	s = scene.Clamp(s, MinScale, MaxScale, 1)
	if e.sel.Empty() {
		e.defaults.Scale = s
		return 0
	}
	return e.updateShapes(func(sh *scene.Shape) bool {
		sh.ScaleX, sh.ScaleY = s, s
		return true
	})
}

// SetConeColor sets the colour of cones.  Invalid colours are ignored.
func (e *Editor) SetConeColor(c string) int {
	if _, ok := render.ParseColor(c); !ok {
		return 0
	}
	if e.sel.Empty() {
		e.defaults.ConeColor = c
		return 0
	}
	return e.updateShapes(func(sh *scene.Shape) bool {
		if _, ok := sh.Body.(scene.ConeBody); !ok {
			return false
		}
		sh.Body = scene.ConeBody{Color: c}
		return true
	})
}

// SetGoalSize sets the width and height of goals, clamped to [10, 400].
func (e *Editor) SetGoalSize(w, h float64) int {
	w = scene.Clamp(w, MinGoalSize, MaxGoalSize, scene.DefaultGoalWidth)
	h = scene.Clamp(h, MinGoalSize, MaxGoalSize, scene.DefaultGoalHeight)
	if e.sel.Empty() {
		e.defaults.GoalWidth, e.defaults.GoalHeight = w, h
		return 0
	}
	return e.updateShapes(func(sh *scene.Shape) bool {
		if _, ok := sh.Body.(scene.GoalBody); !ok {
			return false
		}
		sh.Body = scene.GoalBody{Width: w, Height: h}
		return true
	})
}

// SetStrokeWidth sets the stroke width of lines, clamped to [1, 12].
func (e *Editor) SetStrokeWidth(w float64) int {
	w = scene.Clamp(w, MinStrokeWidth, MaxStrokeWidth, scene.DefaultStrokeWidth)
	if e.sel.Empty() {
		e.defaults.StrokeWidth = w
		return 0
	}
	return e.updateLines(func(l *scene.LinePath) { l.StrokeWidth = w })
}

// SetArrow switches the arrowhead of the selected lines.
func (e *Editor) SetArrow(on bool) int {
	return e.updateLines(func(l *scene.LinePath) { l.Arrow = on })
}

// SetLineKind changes the kind of the selected lines.  Unknown kinds are
// ignored.
func (e *Editor) SetLineKind(k scene.LineKind) int {
	if !slices.Contains(scene.LineKinds, k) {
		return 0
	}
	return e.updateLines(func(l *scene.LinePath) { l.Kind = k })
}

// SelectionBounds returns the bounding box of the selected items.
func (e *Editor) SelectionBounds() (rect.Rect, bool) {
	var pts []vec.Vec2
	add := func(b rect.Rect) {
		pts = append(pts, vec.Vec2{X: b.LLx, Y: b.LLy}, vec.Vec2{X: b.URx, Y: b.URy})
	}
	for _, id := range e.sel.Shapes {
		if sh, ok := e.scene.Shape(id); ok {
			add(sh.Bounds())
		}
	}
	for _, id := range e.sel.Lines {
		if l, ok := e.scene.Line(id); ok {
			add(l.Bounds())
		}
	}
	if len(pts) == 0 {
		return rect.Rect{}, false
	}
	return scene.PointBounds(pts), true
}
