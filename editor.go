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

// Package tactics implements an interactive editor for tactical diagrams of
// soccer training sessions.
//
// An [Editor] owns one diagram while it is being edited.  The host feeds it
// pointer and keyboard events in field coordinates; the editor routes them
// according to the active tool mode, mutates the scene, and exposes the
// drawing to display after every event.  All processing is synchronous and
// nothing in the editor performs I/O.  On save, the editor hands back the
// persisted document together with a raster preview.
package tactics

import (
	"errors"
	"fmt"
	"log/slog"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/tactics/diagram"
	"seehuhn.de/go/tactics/render"
	"seehuhn.de/go/tactics/scene"
)

var (
	// ErrUnknownTemplate is returned when a field template id is not one
	// of the built-in templates.
	ErrUnknownTemplate = errors.New("unknown field template")

	// ErrNotSingleShape is returned by operations which need exactly one
	// selected shape.
	ErrNotSingleShape = errors.New("exactly one shape must be selected")

	// ErrEmptyClipboard is returned when pasting without a prior copy.
	ErrEmptyClipboard = errors.New("clipboard is empty")
)

// Options configure a new [Editor].
type Options struct {
	// Document is an existing diagram to edit.  If nil, an empty diagram
	// on Template is created.
	Document *diagram.Document

	// Template is the field template id for new diagrams.
	// The empty string selects scene.DefaultTemplateID.
	Template string

	// Tags pre-fill the metadata of the diagram.  Tags already present
	// in Document take precedence.
	Tags scene.Tags

	// Defaults are the initial tool settings.
	// If nil, NewDefaults() is used.
	Defaults *Defaults

	// Logger receives debug messages about edits.
	// If nil, nothing is logged.
	Logger *slog.Logger
}

// Editor is the editing state of one diagram.
//
// An Editor is not safe for concurrent use.
type Editor struct {
	scene    *scene.Scene
	mode     Mode
	defaults Defaults
	log      *slog.Logger

	// pointer position and whether it is over the canvas
	pointer vec.Vec2
	hover   bool

	// control points of the line being drawn
	draft []vec.Vec2

	sel Selection

	clipboard  *scene.Shape
	pasteCount int

	drag  *dragState
	xform *transformState
}

// New creates an editor.  If opts.Document is given, entries which cannot
// be loaded are skipped and reported.
func New(opts *Options) (*Editor, []diagram.Skipped, error) {
	if opts == nil {
		opts = &Options{}
	}

	var s *scene.Scene
	var skipped []diagram.Skipped
	if opts.Document != nil {
		s, skipped = opts.Document.Scene()
	} else {
		id := opts.Template
		if id == "" {
			id = scene.DefaultTemplateID
		}
		t, ok := scene.Template(id)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, id)
		}
		s = scene.New(t)
	}
	prefillTags(&s.Tags, opts.Tags)

	e := &Editor{
		scene:    s,
		mode:     SelectMode(),
		defaults: NewDefaults(),
		log:      opts.Logger,
	}
	if opts.Defaults != nil {
		e.SetDefaults(*opts.Defaults)
	}
	if e.log == nil {
		e.log = slog.New(slog.DiscardHandler)
	}
	for _, sk := range skipped {
		e.log.Debug("entry skipped", "entry", sk.String())
	}
	return e, skipped, nil
}

func prefillTags(t *scene.Tags, defaults scene.Tags) {
	if t.AgeGroup == "" {
		t.AgeGroup = defaults.AgeGroup
	}
	if len(t.Moments) == 0 && len(defaults.Moments) > 0 {
		t.Moments = append([]string(nil), defaults.Moments...)
	}
	if t.Section == "" {
		t.Section = defaults.Section
	}
}

// Scene gives read access to the diagram being edited.  Callers must not
// modify the scene directly while the editor is in use, except for the
// Name, Description and Tags fields.
func (e *Editor) Scene() *scene.Scene {
	return e.scene
}

// Style returns the line style used for drawing.
func (e *Editor) Style() render.Style {
	st := render.DefaultStyle
	st.Tension = e.defaults.Tension
	return st
}

// Drawing returns the current view of the editor: the scene with any
// transform in progress applied, plus selection outlines, transform
// handles, placement ghost and line draft.
func (e *Editor) Drawing() *render.Drawing {
	shapes, lines := e.scene.Shapes(), e.scene.Lines()
	if e.xform != nil {
		shapes, lines = e.previewItems()
	}

	ov := &render.Overlay{
		Ghost: e.Ghost(),
		Draft: e.DraftPreview(),
	}
	for i := range shapes {
		if e.sel.hasShape(shapes[i].ID) {
			ov.Selection = append(ov.Selection, shapes[i].Bounds())
		}
	}
	for i := range lines {
		if e.sel.hasLine(lines[i].ID) {
			ov.Selection = append(ov.Selection, lines[i].Bounds())
		}
	}
	if e.mode.Tool == ToolSelect && e.xform == nil {
		for _, h := range e.Handles() {
			ov.Handles = append(ov.Handles, h.Pos)
		}
	}
	return render.Build(e.scene.Template, shapes, lines, e.Style(), ov)
}

// Save returns the persisted diagram together with a freshly rendered
// preview.  A line draft in progress is not included.
func (e *Editor) Save() (*diagram.Saved, error) {
	st := e.Style()
	saved, err := diagram.Save(e.scene, &diagram.SaveOptions{Style: &st})
	if err != nil {
		return nil, err
	}
	e.log.Debug("diagram saved",
		"shapes", len(saved.Document.Elements),
		"lines", len(saved.Document.Lines))
	return saved, nil
}

// NeedsConfirmation reports whether switching to the given template would
// discard content, so that the host must ask the user first.
func (e *Editor) NeedsConfirmation(templateID string) bool {
	return templateID != e.scene.Template.ID && e.scene.HasContent()
}

// SwitchTemplate replaces the field template.  All shapes and lines are
// removed, since their coordinates are relative to the template.  The host
// is responsible for confirming this with the user; see
// [Editor.NeedsConfirmation].  Switching to the current template does
// nothing.
func (e *Editor) SwitchTemplate(templateID string) error {
	t, ok := scene.Template(templateID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTemplate, templateID)
	}
	if t.ID == e.scene.Template.ID {
		return nil
	}
	e.log.Debug("template switched",
		"from", e.scene.Template.ID, "to", t.ID,
		"shapes", len(e.scene.Shapes()), "lines", len(e.scene.Lines()))
	e.resetInteraction()
	e.scene.SwitchTemplate(t)
	return nil
}

// ClearAll removes all shapes and lines.
func (e *Editor) ClearAll() {
	e.log.Debug("diagram cleared",
		"shapes", len(e.scene.Shapes()), "lines", len(e.scene.Lines()))
	e.resetInteraction()
	e.scene.Clear()
}

// resetInteraction drops the draft, the selection and any pointer
// interaction in progress.
func (e *Editor) resetInteraction() {
	e.draft = nil
	e.drag = nil
	e.xform = nil
	e.setSelection(Selection{})
}
