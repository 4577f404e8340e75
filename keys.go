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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/tactics/scene"
)

// PasteOffset is the displacement of a pasted shape from the copied one.
// Repeated pastes of the same copy move further by the same amount.
var PasteOffset = vec.Vec2{X: 20, Y: 20}

// KeyDown handles a key press.  Key names follow the DOM KeyboardEvent.key
// convention ("Escape", "Delete", "Backspace", "c", "v").  While a text
// input has focus, only Escape is handled.  The return value reports
// whether the key was used.
func (e *Editor) KeyDown(key string, mods Modifiers, inTextInput bool) bool {
	if key == "Escape" {
		e.Escape()
		return true
	}
	if inTextInput {
		return false
	}

	switch {
	case key == "Delete" || key == "Backspace":
		e.Delete()
		return true
	case mods.command() && (key == "c" || key == "C"):
		return e.Copy() == nil
	case mods.command() && (key == "v" || key == "V"):
		_, err := e.Paste()
		return err == nil
	}
	return false
}

// Escape discards the line draft if there is one.  Otherwise it clears the
// selection and returns to select mode.
func (e *Editor) Escape() {
	if len(e.draft) > 0 {
		e.log.Debug("draft discarded", "points", len(e.draft))
		e.draft = nil
		return
	}
	e.drag = nil
	e.xform = nil
	e.setSelection(Selection{})
	e.mode = SelectMode()
}

// Copy stores the single selected shape in the clipboard.
func (e *Editor) Copy() error {
	if len(e.sel.Shapes) != 1 {
		return ErrNotSingleShape
	}
	sh, ok := e.scene.Shape(e.sel.Shapes[0])
	if !ok {
		return ErrNotSingleShape
	}
	e.clipboard = &sh
	e.pasteCount = 0
	return nil
}

// Paste adds a copy of the clipboard shape, offset by PasteOffset, and
// selects it.  It returns the id of the new shape.
func (e *Editor) Paste() (string, error) {
	if e.clipboard == nil {
		return "", ErrEmptyClipboard
	}
	e.pasteCount++
	sh := *e.clipboard
	sh.ID = ""
	sh.Pos = sh.Pos.Add(PasteOffset.Mul(float64(e.pasteCount)))
	id := e.scene.AddShape(sh)
	if id == "" {
		return "", ErrEmptyClipboard
	}
	e.log.Debug("shape pasted", "id", id, "from", e.clipboard.ID)
	e.mode = SelectMode()
	e.selectItem(Item{Kind: ShapeItem, ID: id})
	return id, nil
}

// Clipboard returns the copied shape.
func (e *Editor) Clipboard() (scene.Shape, bool) {
	if e.clipboard == nil {
		return scene.Shape{}, false
	}
	return *e.clipboard, true
}
