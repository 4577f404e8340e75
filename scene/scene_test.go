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
	"fmt"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"
)

// counter returns an id generator producing "id1", "id2", ...
func counter() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id%d", n)
	}
}

func newTestScene() *Scene {
	t, _ := Template(DefaultTemplateID)
	s := New(t)
	s.NewID = counter()
	return s
}

func TestTemplates(t *testing.T) {
	for _, id := range []string{"full", "half", "third", "box", "blank"} {
		tmpl, ok := Template(id)
		if !ok {
			t.Errorf("template %q missing", id)
			continue
		}
		if tmpl.ID != id || tmpl.Width <= 0 || tmpl.Height <= 0 {
			t.Errorf("template %q: bad geometry %+v", id, tmpl)
		}
	}
	if _, ok := Template("moon"); ok {
		t.Error("unknown template found")
	}
}

func TestKindNames(t *testing.T) {
	for _, k := range ShapeKinds {
		got, ok := ParseShapeKind(k.String())
		if !ok || got != k {
			t.Errorf("shape kind %v does not round-trip", k)
		}
	}
	for _, k := range LineKinds {
		got, ok := ParseLineKind(k.String())
		if !ok || got != k {
			t.Errorf("line kind %v does not round-trip", k)
		}
	}
	if _, ok := ParseShapeKind("referee"); ok {
		t.Error("unknown shape kind accepted")
	}
}

func TestAddShape(t *testing.T) {
	s := newTestScene()

	id1 := s.AddShape(Shape{Body: NewBody(Attacker), Pos: vec.Vec2{X: 10, Y: 20}})
	id2 := s.AddShape(Shape{ID: id1, Body: NewBody(Cone), Pos: vec.Vec2{X: 30, Y: 20}})
	if id1 == "" || id2 == "" || id1 == id2 {
		t.Fatalf("ids not unique: %q, %q", id1, id2)
	}

	sh, ok := s.Shape(id1)
	if !ok {
		t.Fatal("shape not found")
	}
	if sh.ScaleX != 1 || sh.ScaleY != 1 {
		t.Errorf("zero scale not replaced: %g, %g", sh.ScaleX, sh.ScaleY)
	}

	if id := s.AddShape(Shape{Pos: vec.Vec2{X: 1, Y: 1}}); id != "" {
		t.Error("shape without body was added")
	}
	if id := s.AddShape(Shape{Body: BallBody{}, Pos: vec.Vec2{X: math.NaN()}}); id != "" {
		t.Error("shape with NaN position was added")
	}
	if n := len(s.Shapes()); n != 2 {
		t.Errorf("got %d shapes, want 2", n)
	}
}

func TestNewIDCollision(t *testing.T) {
	s := newTestScene()
	s.AddShape(Shape{ID: "id1", Body: BallBody{}})

	// the generator first proposes "id1", which is taken
	id := s.AddShape(Shape{Body: BallBody{}})
	if id != "id2" {
		t.Errorf("got id %q, want id2", id)
	}
}

func TestAddLine(t *testing.T) {
	s := newTestScene()

	for _, tc := range []struct {
		name string
		pts  []vec.Vec2
		ok   bool
	}{
		{"empty", nil, false},
		{"single", []vec.Vec2{{X: 1, Y: 1}}, false},
		{"two", []vec.Vec2{{X: 1, Y: 1}, {X: 5, Y: 5}}, true},
		{"inf", []vec.Vec2{{X: 1, Y: 1}, {X: math.Inf(1), Y: 5}}, false},
	} {
		_, ok := s.AddLine(LinePath{Kind: Pass, Points: tc.pts})
		if ok != tc.ok {
			t.Errorf("%s: ok = %t, want %t", tc.name, ok, tc.ok)
		}
	}

	lines := s.Lines()
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0].StrokeWidth != DefaultStrokeWidth {
		t.Errorf("stroke width = %g, want %g", lines[0].StrokeWidth, DefaultStrokeWidth)
	}
}

func TestLineIsolation(t *testing.T) {
	s := newTestScene()
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}}
	id, _ := s.AddLine(LinePath{Points: pts})

	pts[0].X = 99
	l, _ := s.Line(id)
	if l.Points[0].X != 0 {
		t.Error("scene shares point storage with the caller")
	}
	l.Points[1].X = 77
	l2, _ := s.Line(id)
	if l2.Points[1].X != 10 {
		t.Error("Line returns shared point storage")
	}
}

func TestUpdate(t *testing.T) {
	s := newTestScene()
	sid := s.AddShape(Shape{Body: NewBody(Defender)})
	lid, _ := s.AddLine(LinePath{Points: []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}}})

	if !s.UpdateShape(sid, func(sh *Shape) { sh.Pos.X = 5; sh.ID = "other" }) {
		t.Error("valid shape update rejected")
	}
	if sh, _ := s.Shape(sid); sh.Pos.X != 5 {
		t.Error("shape update not stored")
	}
	if s.UpdateShape(sid, func(sh *Shape) { sh.Body = nil }) {
		t.Error("shape update removing the body accepted")
	}
	if s.UpdateLine(lid, func(l *LinePath) { l.Points = l.Points[:1] }) {
		t.Error("line update to a single point accepted")
	}
	if l, _ := s.Line(lid); len(l.Points) != 2 {
		t.Error("rejected line update modified the line")
	}
	if s.UpdateShape("missing", func(*Shape) {}) {
		t.Error("update of missing shape succeeded")
	}
}

func TestRemove(t *testing.T) {
	s := newTestScene()
	a := s.AddShape(Shape{Body: NewBody(Cone)})
	b := s.AddShape(Shape{Body: NewBody(Cone)})
	c := s.AddShape(Shape{Body: NewBody(Ball)})

	if got := s.ShapesOfKind(Cone); !slices.Equal(got, []string{a, b}) {
		t.Errorf("ShapesOfKind = %v", got)
	}
	if n := s.RemoveShapes(a, "missing"); n != 1 {
		t.Errorf("removed %d shapes, want 1", n)
	}
	var ids []string
	for _, sh := range s.Shapes() {
		ids = append(ids, sh.ID)
	}
	if !slices.Equal(ids, []string{b, c}) {
		t.Errorf("remaining shapes %v, want [%s %s]", ids, b, c)
	}
}

func TestSwitchTemplate(t *testing.T) {
	s := newTestScene()
	s.AddShape(Shape{Body: NewBody(Attacker)})
	s.AddLine(LinePath{Points: []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}}})

	half, _ := Template("half")
	s.SwitchTemplate(half)
	if s.HasContent() {
		t.Error("template switch kept content")
	}
	if s.Template.ID != "half" {
		t.Errorf("template = %q, want half", s.Template.ID)
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	s := newTestScene()
	s.Name = "Rondo"
	s.Tags = Tags{AgeGroup: "U12", Moments: []string{"attack"}, Section: "main"}
	s.AddShape(Shape{Body: ConeBody{Color: "#ffffff"}, Pos: vec.Vec2{X: 5, Y: 6}, Rotation: 30})
	s.AddLine(LinePath{Kind: Dribble, Points: []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}}, Arrow: true})

	doc := s.Document()
	doc.Tags.Moments[0] = "changed"
	if s.Tags.Moments[0] != "attack" {
		t.Error("document shares tag storage with the scene")
	}
	doc.Tags.Moments[0] = "attack"

	s2, rejected := FromDocument(doc)
	if len(rejected) != 0 {
		t.Errorf("entries rejected: %v", rejected)
	}
	doc2 := s2.Document()
	if fmt.Sprint(doc) != fmt.Sprint(doc2) {
		t.Errorf("round trip changed the document:\n%v\n%v", doc, doc2)
	}
}

func TestFromDocumentSkips(t *testing.T) {
	doc := Document{
		TemplateID: "no-such-template",
		Shapes: []Shape{
			{ID: "a", Body: BallBody{}},
			{ID: "a", Body: BallBody{}},
			{ID: "", Body: BallBody{}},
			{ID: "b"},
			{ID: "n", Body: BallBody{}, Pos: vec.Vec2{X: math.NaN()}},
			{ID: "far", Body: BallBody{}, Pos: vec.Vec2{X: 1e9}},
		},
		Lines: []LinePath{
			{ID: "c", Points: []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}}},
			{ID: "d", Points: []vec.Vec2{{X: 0, Y: 0}}},
			{ID: "a", Points: []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}}},
			{ID: "e", Points: []vec.Vec2{{X: 0, Y: 0}, {X: math.Inf(1), Y: 1}}},
		},
	}
	s, rejected := FromDocument(doc)
	want := []Rejected{
		{Index: 1, ID: "a", Reason: "duplicate id"},
		{Index: 2, ID: "", Reason: "missing id"},
		{Index: 3, ID: "b", Reason: "missing body"},
		{Index: 4, ID: "n", Reason: "invalid geometry"},
		{Index: 5, ID: "far", Reason: "invalid geometry"},
		{Line: true, Index: 1, ID: "d", Reason: "fewer than two points"},
		{Line: true, Index: 2, ID: "a", Reason: "duplicate id"},
		{Line: true, Index: 3, ID: "e", Reason: "invalid geometry"},
	}
	if !slices.Equal(rejected, want) {
		t.Errorf("rejected:\n got %v\nwant %v", rejected, want)
	}
	if len(s.Shapes()) != 1 || len(s.Lines()) != 1 {
		t.Errorf("got %d shapes and %d lines", len(s.Shapes()), len(s.Lines()))
	}
	if s.Template.ID != DefaultTemplateID {
		t.Errorf("template = %q, want fallback %q", s.Template.ID, DefaultTemplateID)
	}
}

func TestFromDocumentClamps(t *testing.T) {
	doc := Document{
		Shapes: []Shape{
			{ID: "g", Body: GoalBody{Width: 1e300, Height: 1}, Rotation: 270, ScaleX: 1e6, ScaleY: -3},
			{ID: "c", Body: ConeBody{Color: "#ffffff"}, Rotation: -1e9, ScaleX: 2, ScaleY: 2},
		},
		Lines: []LinePath{
			{ID: "l", Points: []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}}, StrokeWidth: 1e12},
			{ID: "m", Points: []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}}, StrokeWidth: 0.1},
		},
	}
	s, rejected := FromDocument(doc)
	if len(rejected) != 0 {
		t.Fatalf("entries rejected: %v", rejected)
	}

	g, _ := s.Shape("g")
	if b := g.Body.(GoalBody); b.Width != MaxGoalSize || b.Height != MinGoalSize {
		t.Errorf("goal size = %gx%g, want %gx%g", b.Width, b.Height, MaxGoalSize, MinGoalSize)
	}
	if g.Rotation != -90 {
		t.Errorf("goal rotation = %g, want -90", g.Rotation)
	}
	if g.ScaleX != MaxScale || g.ScaleY != MinScale {
		t.Errorf("goal scale = %g, %g", g.ScaleX, g.ScaleY)
	}
	for _, sh := range s.Shapes() {
		if sh.Rotation < MinRotation || sh.Rotation > MaxRotation {
			t.Errorf("%s: rotation %g out of range", sh.ID, sh.Rotation)
		}
	}

	for _, tc := range []struct {
		id   string
		want float64
	}{
		{"l", MaxStrokeWidth},
		{"m", MinStrokeWidth},
	} {
		l, _ := s.Line(tc.id)
		if l.StrokeWidth != tc.want {
			t.Errorf("%s: stroke width = %g, want %g", tc.id, l.StrokeWidth, tc.want)
		}
	}
}

func TestUpdateClamps(t *testing.T) {
	s := newTestScene()
	id := s.AddShape(Shape{Body: NewBody(Goal)})
	if !s.UpdateShape(id, func(sh *Shape) { sh.Body = GoalBody{Width: 5000, Height: 0} }) {
		t.Fatal("update rejected")
	}
	sh, _ := s.Shape(id)
	if b := sh.Body.(GoalBody); b.Width != MaxGoalSize || b.Height != MinGoalSize {
		t.Errorf("goal size = %gx%g", b.Width, b.Height)
	}
	if s.UpdateShape(id, func(sh *Shape) { sh.Pos.X = 2 * MaxCoordinate }) {
		t.Error("shape moved outside the coordinate range")
	}

	lid := s.Lines()[0].ID
	if !s.UpdateLine(lid, func(l *LinePath) { l.StrokeWidth = 100 }) {
		t.Fatal("line update rejected")
	}
	if l, _ := s.Line(lid); l.StrokeWidth != MaxStrokeWidth {
		t.Errorf("stroke width = %g", l.StrokeWidth)
	}
}

func TestContains(t *testing.T) {
	goal := Shape{Body: GoalBody{Width: 60, Height: 20}, Pos: vec.Vec2{X: 100, Y: 100}, ScaleX: 1, ScaleY: 1}
	player := Shape{Body: AttackerBody{}, Pos: vec.Vec2{X: 100, Y: 100}, ScaleX: 2, ScaleY: 2}
	rotated := goal
	rotated.Rotation = 90

	for _, tc := range []struct {
		name string
		sh   Shape
		p    vec.Vec2
		want bool
	}{
		{"goal centre", goal, vec.Vec2{X: 100, Y: 100}, true},
		{"goal wide", goal, vec.Vec2{X: 129, Y: 100}, true},
		{"goal tall", goal, vec.Vec2{X: 100, Y: 115}, false},
		{"rotated goal tall", rotated, vec.Vec2{X: 100, Y: 125}, true},
		{"rotated goal wide", rotated, vec.Vec2{X: 125, Y: 100}, false},
		{"scaled player", player, vec.Vec2{X: 125, Y: 100}, true},
		{"scaled player outside", player, vec.Vec2{X: 120, Y: 120}, false},
	} {
		if got := tc.sh.Contains(tc.p); got != tc.want {
			t.Errorf("%s: Contains(%v) = %t, want %t", tc.name, tc.p, got, tc.want)
		}
	}
}

func TestBounds(t *testing.T) {
	sh := Shape{Body: GoalBody{Width: 60, Height: 20}, Pos: vec.Vec2{X: 100, Y: 50}, Rotation: 90, ScaleX: 1, ScaleY: 1}
	b := sh.Bounds()
	const eps = 1e-9
	if math.Abs(b.LLx-90) > eps || math.Abs(b.URx-110) > eps ||
		math.Abs(b.LLy-20) > eps || math.Abs(b.URy-80) > eps {
		t.Errorf("bounds = %+v", b)
	}
}
