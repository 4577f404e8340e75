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

// Package scene implements the data model of a tactical diagram.
//
// A Scene holds the field template, the placed shapes and the tactical
// lines of one diagram.  Shapes and lines are kept in insertion order, which
// is also their drawing order.  All mutations go through the methods of
// Scene, which maintain the invariants of the model: ids are unique within
// the scene, and every line has at least two control points.
package scene

import (
	"math"
	"slices"

	"github.com/google/uuid"
	"seehuhn.de/go/geom/vec"
)

// Tags is the descriptive metadata of a diagram.
type Tags struct {
	AgeGroup string
	Moments  []string
	Section  string
}

// Document is a self-contained copy of a diagram.
type Document struct {
	Name        string
	Description string
	TemplateID  string
	Shapes      []Shape
	Lines       []LinePath
	Tags        Tags
}

// Scene is the editable state of a diagram.
//
// A Scene is not safe for concurrent use.
type Scene struct {
	Name        string
	Description string
	Tags        Tags
	Template    FieldTemplate

	// NewID allocates ids for shapes and lines.  Ids which are already in
	// use are discarded and a new one is requested.
	NewID func() string

	shapes []Shape
	lines  []LinePath
}

// New returns an empty scene on the given field template.
func New(t FieldTemplate) *Scene {
	return &Scene{
		Template: t,
		NewID:    uuid.NewString,
	}
}

// Rejected describes a document entry which FromDocument could not add to
// the scene.
type Rejected struct {
	Line   bool   // the entry is a line, not a shape
	Index  int    // position in Document.Shapes or Document.Lines
	ID     string // id of the entry, may be empty
	Reason string
}

// FromDocument creates a scene holding the contents of doc.
// Entries which violate the model invariants are skipped and reported in
// the returned list.  Attribute values outside their allowed ranges are
// clamped.  Unknown template ids fall back to the default template.
func FromDocument(doc Document) (*Scene, []Rejected) {
	t, ok := Template(doc.TemplateID)
	if !ok {
		t, _ = Template(DefaultTemplateID)
	}
	s := New(t)
	s.Name = doc.Name
	s.Description = doc.Description
	s.Tags = doc.Tags.clone()

	var rejected []Rejected
	for i, sh := range doc.Shapes {
		reason := ""
		switch {
		case sh.ID == "":
			reason = "missing id"
		case s.hasID(sh.ID):
			reason = "duplicate id"
		case sh.Body == nil:
			reason = "missing body"
		case s.AddShape(sh) == "":
			reason = "invalid geometry"
		}
		if reason != "" {
			rejected = append(rejected, Rejected{Index: i, ID: sh.ID, Reason: reason})
		}
	}
	for i, l := range doc.Lines {
		reason := ""
		switch {
		case l.ID == "":
			reason = "missing id"
		case s.hasID(l.ID):
			reason = "duplicate id"
		case len(l.Points) < 2:
			reason = "fewer than two points"
		default:
			if _, ok := s.AddLine(l); !ok {
				reason = "invalid geometry"
			}
		}
		if reason != "" {
			rejected = append(rejected, Rejected{Line: true, Index: i, ID: l.ID, Reason: reason})
		}
	}
	return s, rejected
}

// Shapes returns the shapes of the scene in drawing order.
// The returned slice must not be modified.
func (s *Scene) Shapes() []Shape {
	return s.shapes
}

// Lines returns the lines of the scene in drawing order.
// The returned slice must not be modified.
func (s *Scene) Lines() []LinePath {
	return s.lines
}

// HasContent reports whether the scene contains any shapes or lines.
func (s *Scene) HasContent() bool {
	return len(s.shapes) > 0 || len(s.lines) > 0
}

// AddShape appends a shape at the top of the drawing order and returns its
// id.  If sh.ID is empty or already in use, a fresh id is allocated.
// Attributes are clamped to their allowed ranges and zero scale factors
// are replaced by 1.  Shapes without a body or with invalid coordinates
// are not added, and the empty string is returned.
func (s *Scene) AddShape(sh Shape) string {
	if !validShape(&sh) {
		return ""
	}
	if sh.ID == "" || s.hasID(sh.ID) {
		sh.ID = s.newID()
	}
	sh.normalize()
	s.shapes = append(s.shapes, sh)
	return sh.ID
}

// AddLine appends a line at the top of the drawing order.  If l.ID is empty
// or already in use, a fresh id is allocated.  The stroke width is
// clamped to its allowed range.  Lines with fewer than two points, or with
// invalid coordinates, are silently dropped and ok is false.
func (s *Scene) AddLine(l LinePath) (id string, ok bool) {
	if !validPoints(l.Points) || !finite(l.StrokeWidth) {
		return "", false
	}
	l = l.clone()
	if l.ID == "" || s.hasID(l.ID) {
		l.ID = s.newID()
	}
	l.normalize()
	s.lines = append(s.lines, l)
	return l.ID, true
}

// Shape returns a copy of the shape with the given id.
func (s *Scene) Shape(id string) (Shape, bool) {
	if i := s.ShapeIndex(id); i >= 0 {
		return s.shapes[i], true
	}
	return Shape{}, false
}

// Line returns a copy of the line with the given id.
func (s *Scene) Line(id string) (LinePath, bool) {
	if i := s.LineIndex(id); i >= 0 {
		return s.lines[i].clone(), true
	}
	return LinePath{}, false
}

// ShapeIndex returns the position of a shape in the drawing order, or -1.
func (s *Scene) ShapeIndex(id string) int {
	return slices.IndexFunc(s.shapes, func(sh Shape) bool { return sh.ID == id })
}

// LineIndex returns the position of a line in the drawing order, or -1.
func (s *Scene) LineIndex(id string) int {
	return slices.IndexFunc(s.lines, func(l LinePath) bool { return l.ID == id })
}

// UpdateShape calls fn on the shape with the given id.
// Changes to the id are reverted, and results which AddShape would reject
// are discarded.  Attributes are clamped as in AddShape.
func (s *Scene) UpdateShape(id string, fn func(*Shape)) bool {
	i := s.ShapeIndex(id)
	if i < 0 {
		return false
	}
	sh := s.shapes[i]
	fn(&sh)
	sh.ID = id
	if !validShape(&sh) {
		return false
	}
	sh.normalize()
	s.shapes[i] = sh
	return true
}

// UpdateLine calls fn on a copy of the line with the given id and stores
// the result.  Results which AddLine would reject are discarded.
func (s *Scene) UpdateLine(id string, fn func(*LinePath)) bool {
	i := s.LineIndex(id)
	if i < 0 {
		return false
	}
	l := s.lines[i].clone()
	fn(&l)
	l.ID = id
	if !validPoints(l.Points) || !finite(l.StrokeWidth) {
		return false
	}
	l.normalize()
	s.lines[i] = l
	return true
}

// RemoveShapes deletes the shapes with the given ids and returns the number
// of shapes removed.  Unknown ids are ignored.
func (s *Scene) RemoveShapes(ids ...string) int {
	n := len(s.shapes)
	s.shapes = slices.DeleteFunc(s.shapes, func(sh Shape) bool {
		return slices.Contains(ids, sh.ID)
	})
	return n - len(s.shapes)
}

// RemoveLines deletes the lines with the given ids and returns the number
// of lines removed.  Unknown ids are ignored.
func (s *Scene) RemoveLines(ids ...string) int {
	n := len(s.lines)
	s.lines = slices.DeleteFunc(s.lines, func(l LinePath) bool {
		return slices.Contains(ids, l.ID)
	})
	return n - len(s.lines)
}

// ShapesOfKind returns the ids of all shapes of kind k, in drawing order.
func (s *Scene) ShapesOfKind(k ShapeKind) []string {
	var ids []string
	for i := range s.shapes {
		if s.shapes[i].Kind() == k {
			ids = append(ids, s.shapes[i].ID)
		}
	}
	return ids
}

// Clear removes all shapes and lines.
func (s *Scene) Clear() {
	s.shapes = nil
	s.lines = nil
}

// SwitchTemplate replaces the field template.  Since coordinates are
// relative to the template, all shapes and lines are removed.
func (s *Scene) SwitchTemplate(t FieldTemplate) {
	s.Template = t
	s.Clear()
}

// Document returns a deep copy of the scene contents.
func (s *Scene) Document() Document {
	doc := Document{
		Name:        s.Name,
		Description: s.Description,
		TemplateID:  s.Template.ID,
		Shapes:      slices.Clone(s.shapes),
		Tags:        s.Tags.clone(),
	}
	for i := range s.lines {
		doc.Lines = append(doc.Lines, s.lines[i].clone())
	}
	return doc
}

func (s *Scene) hasID(id string) bool {
	return s.ShapeIndex(id) >= 0 || s.LineIndex(id) >= 0
}

func (s *Scene) newID() string {
	gen := s.NewID
	if gen == nil {
		gen = uuid.NewString
	}
	for {
		id := gen()
		if id != "" && !s.hasID(id) {
			return id
		}
	}
}

func (t Tags) clone() Tags {
	t.Moments = slices.Clone(t.Moments)
	return t
}

func validShape(sh *Shape) bool {
	return sh.Body != nil &&
		inRange(sh.Pos) &&
		finite(sh.Rotation, sh.ScaleX, sh.ScaleY)
}

func validPoints(pts []vec.Vec2) bool {
	if len(pts) < 2 {
		return false
	}
	for _, p := range pts {
		if !inRange(p) {
			return false
		}
	}
	return true
}

// inRange reports whether p is finite and within MaxCoordinate.
func inRange(p vec.Vec2) bool {
	return finite(p.X, p.Y) && math.Abs(p.X) <= MaxCoordinate && math.Abs(p.Y) <= MaxCoordinate
}

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
