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

package diagram

import (
	"bytes"
	"math"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/tactics/render"
	"seehuhn.de/go/tactics/scene"
)

func sampleScene(t *testing.T) *scene.Scene {
	t.Helper()
	tmpl, ok := scene.Template("half")
	if !ok {
		t.Fatal("half template missing")
	}
	s := scene.New(tmpl)
	s.Name = "3v2 overload"
	s.Description = "wide overload on the left"
	s.Tags = scene.Tags{AgeGroup: "U14", Moments: []string{"attack", "transition"}, Section: "main"}

	s.AddShape(scene.Shape{Body: scene.AttackerBody{}, Pos: vec.Vec2{X: 120.5, Y: 200}})
	s.AddShape(scene.Shape{Body: scene.DefenderBody{}, Pos: vec.Vec2{X: 180, Y: 240}, Rotation: -45})
	s.AddShape(scene.Shape{Body: scene.BallBody{}, Pos: vec.Vec2{X: 130, Y: 210}, ScaleX: 1.5, ScaleY: 1.5})
	s.AddShape(scene.Shape{Body: scene.GoalBody{Width: 73.2, Height: 24}, Pos: vec.Vec2{X: 500, Y: 340}, Rotation: 90})
	s.AddShape(scene.Shape{Body: scene.ConeBody{Color: "#3b82f6"}, Pos: vec.Vec2{X: 50, Y: 50}})
	s.AddLine(scene.LinePath{Kind: scene.Pass, Points: []vec.Vec2{{X: 120, Y: 200}, {X: 300, Y: 120}}, Arrow: true})
	s.AddLine(scene.LinePath{Kind: scene.Movement, Points: []vec.Vec2{{X: 180, Y: 240}, {X: 250, Y: 300}, {X: 400, Y: 310}}, StrokeWidth: 4})
	s.AddLine(scene.LinePath{Kind: scene.Dribble, Points: []vec.Vec2{{X: 0, Y: 0}, {X: 100, Y: 0}}, Arrow: true})
	return s
}

func TestRoundTrip(t *testing.T) {
	empty := scene.New(scene.Templates[0])
	for _, s := range []*scene.Scene{sampleScene(t), empty} {
		data, err := Encode(s)
		if err != nil {
			t.Fatal(err)
		}
		s2, skipped, err := Decode(data)
		if err != nil {
			t.Fatal(err)
		}
		if len(skipped) != 0 {
			t.Errorf("round trip skipped %v", skipped)
		}
		data2, err := Encode(s2)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(data, data2) {
			t.Errorf("round trip changed the document:\n%s\n%s", data, data2)
		}
	}
}

func TestWireNames(t *testing.T) {
	data, err := Encode(sampleScene(t))
	if err != nil {
		t.Fatal(err)
	}
	js := string(data)
	for _, key := range []string{
		`"fieldTemplateId":"half"`,
		`"type":"attacker"`,
		`"type":"goal"`,
		`"width":73.2`,
		`"color":"#3b82f6"`,
		`"type":"dribble"`,
		`"points":[120,200,300,120]`,
		`"hasArrow":true`,
		`"strokeWidth":3`,
		`"sectionType":"main"`,
		`"moments":["attack","transition"]`,
	} {
		if !strings.Contains(js, key) {
			t.Errorf("encoded document lacks %s", key)
		}
	}
	if strings.Count(js, `"color"`) != 1 {
		t.Error("color written for shapes other than cones")
	}
}

func TestDecodeSkips(t *testing.T) {
	const js = `{
		"name": "broken",
		"fieldTemplateId": "futsal",
		"elements": [
			{"id": "a", "type": "attacker", "x": 1, "y": 2, "rotation": 0, "scaleX": 1, "scaleY": 1},
			{"id": "b", "type": "referee", "x": 1, "y": 2},
			{"id": "a", "type": "ball", "x": 1, "y": 2},
			{"type": "ball", "x": 1, "y": 2},
			{"id": "g", "type": "goal", "x": 10, "y": 20},
			{"id": "c", "type": "cone", "x": 10, "y": 20}
		],
		"lines": [
			{"id": "l1", "type": "pass", "points": [0, 0, 10, 10], "strokeWidth": 3, "hasArrow": true},
			{"id": "l2", "type": "pass", "points": [0, 0, 10], "strokeWidth": 3},
			{"id": "l3", "type": "movement", "points": [0, 0], "strokeWidth": 3},
			{"id": "l4", "type": "sprint", "points": [0, 0, 1, 1], "strokeWidth": 3},
			{"id": "l5", "type": "dribble", "points": [0, 0, 5, 5, 9, 9]}
		],
		"tags": {"ageGroup": "", "moments": null, "sectionType": ""}
	}`

	s, skipped, err := Decode([]byte(js))
	if err != nil {
		t.Fatal(err)
	}

	reasons := make(map[string]string)
	for _, sk := range skipped {
		reasons[sk.Kind+":"+sk.ID] = sk.Reason
	}
	want := map[string]string{
		"template:futsal": "unknown field template",
		"element:b":       `unknown element type "referee"`,
		"element:a":       "duplicate id",
		"element:":        "missing id",
		"line:l2":         "odd number of coordinates",
		"line:l3":         "fewer than two points",
		"line:l4":         `unknown line type "sprint"`,
	}
	if len(skipped) != len(want) {
		t.Errorf("got %d skipped entries, want %d: %v", len(skipped), len(want), skipped)
	}
	for k, r := range want {
		if reasons[k] != r {
			t.Errorf("%s: reason %q, want %q", k, reasons[k], r)
		}
	}

	if s.Template.ID != scene.DefaultTemplateID {
		t.Errorf("template = %q, want %q", s.Template.ID, scene.DefaultTemplateID)
	}
	if n := len(s.Shapes()); n != 3 {
		t.Errorf("got %d shapes, want 3", n)
	}
	if n := len(s.Lines()); n != 2 {
		t.Errorf("got %d lines, want 2", n)
	}

	g, _ := s.Shape("g")
	if b, ok := g.Body.(scene.GoalBody); !ok || b.Width != scene.DefaultGoalWidth || b.Height != scene.DefaultGoalHeight {
		t.Errorf("goal body = %#v", g.Body)
	}
	if g.ScaleX != 1 || g.ScaleY != 1 {
		t.Errorf("missing scale decoded as %g, %g", g.ScaleX, g.ScaleY)
	}
	c, _ := s.Shape("c")
	if b, ok := c.Body.(scene.ConeBody); !ok || b.Color != scene.DefaultConeColor {
		t.Errorf("cone body = %#v", c.Body)
	}
	l5, _ := s.Line("l5")
	if l5.StrokeWidth != scene.DefaultStrokeWidth {
		t.Errorf("stroke width = %g", l5.StrokeWidth)
	}
}

func TestDecodeMalformed(t *testing.T) {
	for _, js := range []string{``, `{`, `{"elements": 7}`, `[]`} {
		if _, _, err := Decode([]byte(js)); err == nil {
			t.Errorf("%q: no error", js)
		}
	}
}

func TestSave(t *testing.T) {
	s := sampleScene(t)
	saved, err := Save(s, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(saved.Preview, "data:image/png;base64,") {
		t.Errorf("preview is not a PNG data URI: %.40q", saved.Preview)
	}
	if len(saved.Document.Elements) != 5 || len(saved.Document.Lines) != 3 {
		t.Errorf("saved document has %d elements and %d lines",
			len(saved.Document.Elements), len(saved.Document.Lines))
	}

	low, err := Save(s, &SaveOptions{PixelRatio: 0.25})
	if err != nil {
		t.Fatal(err)
	}
	if len(low.Preview) >= len(saved.Preview) {
		t.Error("lower pixel ratio did not shrink the preview")
	}
}

func TestDecodeClamps(t *testing.T) {
	const js = `{
		"name": "huge",
		"fieldTemplateId": "half",
		"elements": [
			{"id": "g", "type": "goal", "x": 10, "y": 20, "rotation": 720, "scaleX": 1e9, "scaleY": 1, "width": 1e300, "height": 1e300}
		],
		"lines": [
			{"id": "l", "type": "movement", "points": [0, 0, 1e10, 0], "strokeWidth": 1e6}
		],
		"tags": {"ageGroup": "", "moments": [], "sectionType": ""}
	}`

	s, skipped, err := Decode([]byte(js))
	if err != nil {
		t.Fatal(err)
	}
	if len(skipped) != 1 || skipped[0].ID != "l" || skipped[0].Reason != "invalid geometry" {
		t.Errorf("skipped = %v", skipped)
	}

	g, ok := s.Shape("g")
	if !ok {
		t.Fatal("goal missing")
	}
	b := g.Body.(scene.GoalBody)
	if b.Width != scene.MaxGoalSize || b.Height != scene.MaxGoalSize {
		t.Errorf("goal size = %gx%g", b.Width, b.Height)
	}
	if g.Rotation != 0 || g.ScaleX != scene.MaxScale {
		t.Errorf("rotation %g, scale %g", g.Rotation, g.ScaleX)
	}

	// rendering the clamped goal must terminate
	var buf bytes.Buffer
	if err := render.WritePNG(&buf, render.FromScene(s, render.DefaultStyle), 0.25); err != nil {
		t.Fatal(err)
	}
}

func TestSceneInvalidGeometry(t *testing.T) {
	doc := Document{
		FieldTemplateID: scene.DefaultTemplateID,
		Elements: []Element{
			{ID: "x", Type: "ball", X: math.NaN(), Y: 1},
			{ID: "x", Type: "ball", X: 1, Y: 1},
			{ID: "y", Type: "cone", X: math.Inf(-1)},
		},
		Lines: []Line{
			{ID: "l", Type: "pass", Points: []float64{0, 0, math.NaN(), 1}},
			{ID: "y", Type: "pass", Points: []float64{0, 0, 1, 1}},
		},
	}
	s, skipped := doc.Scene()
	want := []Skipped{
		{Kind: "element", Index: 0, ID: "x", Reason: "invalid geometry"},
		{Kind: "element", Index: 2, ID: "y", Reason: "invalid geometry"},
		{Kind: "line", Index: 0, ID: "l", Reason: "invalid geometry"},
	}
	if !slices.Equal(skipped, want) {
		t.Errorf("skipped:\n got %v\nwant %v", skipped, want)
	}
	// the rejected entries do not reserve their ids
	if len(s.Shapes()) != 1 || s.Shapes()[0].ID != "x" {
		t.Errorf("shapes = %v", s.Shapes())
	}
	if len(s.Lines()) != 1 || s.Lines()[0].ID != "y" {
		t.Errorf("lines = %v", s.Lines())
	}
}
