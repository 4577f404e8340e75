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

// Package diagram implements the persisted form of tactical diagrams.
//
// The JSON format is the one stored by the host application: shapes are
// called elements, line control points are flattened into a single array
// of coordinates, and kinds are stored by name.  Decoding is tolerant:
// entries which cannot be represented in a scene are dropped and reported,
// but never cause the whole document to fail.
package diagram

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/tactics/scene"
)

// Document is the persisted form of a diagram.
type Document struct {
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	FieldTemplateID string    `json:"fieldTemplateId"`
	Elements        []Element `json:"elements"`
	Lines           []Line    `json:"lines"`
	Tags            Tags      `json:"tags"`
}

// Element is a persisted shape.  Color is only used for cones, Width and
// Height only for goals.
type Element struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
	ScaleX   float64 `json:"scaleX"`
	ScaleY   float64 `json:"scaleY"`
	Color    string  `json:"color,omitempty"`
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
}

// Line is a persisted tactical line.  Points holds the control points as
// x0, y0, x1, y1, ...
type Line struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Points      []float64 `json:"points"`
	StrokeWidth float64   `json:"strokeWidth"`
	HasArrow    bool      `json:"hasArrow"`
}

// Tags is the persisted diagram metadata.
type Tags struct {
	AgeGroup    string   `json:"ageGroup"`
	Moments     []string `json:"moments"`
	SectionType string   `json:"sectionType"`
}

// Skipped describes an entry which was dropped while loading a document.
type Skipped struct {
	Kind   string // "element", "line" or "template"
	Index  int    // position in the document, -1 for the template
	ID     string
	Reason string
}

func (s Skipped) String() string {
	if s.Index < 0 {
		return fmt.Sprintf("%s %q: %s", s.Kind, s.ID, s.Reason)
	}
	return fmt.Sprintf("%s %d (%q): %s", s.Kind, s.Index, s.ID, s.Reason)
}

// FromScene returns the persisted form of s.
func FromScene(s *scene.Scene) Document {
	src := s.Document()
	doc := Document{
		Name:            src.Name,
		Description:     src.Description,
		FieldTemplateID: src.TemplateID,
		Elements:        make([]Element, 0, len(src.Shapes)),
		Lines:           make([]Line, 0, len(src.Lines)),
		Tags: Tags{
			AgeGroup:    src.Tags.AgeGroup,
			Moments:     src.Tags.Moments,
			SectionType: src.Tags.Section,
		},
	}
	if doc.Tags.Moments == nil {
		doc.Tags.Moments = []string{}
	}

	for _, sh := range src.Shapes {
		el := Element{
			ID:       sh.ID,
			Type:     sh.Kind().String(),
			X:        sh.Pos.X,
			Y:        sh.Pos.Y,
			Rotation: sh.Rotation,
			ScaleX:   sh.ScaleX,
			ScaleY:   sh.ScaleY,
		}
		switch b := sh.Body.(type) {
		case scene.ConeBody:
			el.Color = b.Color
		case scene.GoalBody:
			el.Width = b.Width
			el.Height = b.Height
		}
		doc.Elements = append(doc.Elements, el)
	}

	for _, l := range src.Lines {
		pts := make([]float64, 0, 2*len(l.Points))
		for _, p := range l.Points {
			pts = append(pts, p.X, p.Y)
		}
		doc.Lines = append(doc.Lines, Line{
			ID:          l.ID,
			Type:        l.Kind.String(),
			Points:      pts,
			StrokeWidth: l.StrokeWidth,
			HasArrow:    l.Arrow,
		})
	}
	return doc
}

// Scene converts the document into an editable scene.  Entries which
// cannot be represented are dropped and listed in the returned report,
// ordered by kind and position.  An unknown field template is replaced by
// the default template.
func (doc *Document) Scene() (*scene.Scene, []Skipped) {
	var skipped []Skipped
	if _, ok := scene.Template(doc.FieldTemplateID); !ok {
		skipped = append(skipped, Skipped{
			Kind:   "template",
			Index:  -1,
			ID:     doc.FieldTemplateID,
			Reason: "unknown field template",
		})
	}

	src := scene.Document{
		Name:        doc.Name,
		Description: doc.Description,
		TemplateID:  doc.FieldTemplateID,
		Tags: scene.Tags{
			AgeGroup: doc.Tags.AgeGroup,
			Moments:  doc.Tags.Moments,
			Section:  doc.Tags.SectionType,
		},
	}

	// The scene reports rejections by position in src; these slices map
	// them back to positions in doc.
	var elementIndex, lineIndex []int

	for i, el := range doc.Elements {
		if el.ID == "" {
			skipped = append(skipped, Skipped{Kind: "element", Index: i, Reason: "missing id"})
			continue
		}
		body, err := el.body()
		if err != nil {
			skipped = append(skipped, Skipped{Kind: "element", Index: i, ID: el.ID, Reason: err.Error()})
			continue
		}
		src.Shapes = append(src.Shapes, scene.Shape{
			ID:       el.ID,
			Body:     body,
			Pos:      vec.Vec2{X: el.X, Y: el.Y},
			Rotation: el.Rotation,
			ScaleX:   el.ScaleX,
			ScaleY:   el.ScaleY,
		})
		elementIndex = append(elementIndex, i)
	}

	for i, l := range doc.Lines {
		reason := ""
		kind, ok := scene.ParseLineKind(l.Type)
		switch {
		case l.ID == "":
			reason = "missing id"
		case !ok:
			reason = fmt.Sprintf("unknown line type %q", l.Type)
		case len(l.Points)%2 != 0:
			reason = "odd number of coordinates"
		}
		if reason != "" {
			skipped = append(skipped, Skipped{Kind: "line", Index: i, ID: l.ID, Reason: reason})
			continue
		}
		pts := make([]vec.Vec2, 0, len(l.Points)/2)
		for k := 0; k+1 < len(l.Points); k += 2 {
			pts = append(pts, vec.Vec2{X: l.Points[k], Y: l.Points[k+1]})
		}
		src.Lines = append(src.Lines, scene.LinePath{
			ID:          l.ID,
			Kind:        kind,
			Points:      pts,
			StrokeWidth: l.StrokeWidth,
			Arrow:       l.HasArrow,
		})
		lineIndex = append(lineIndex, i)
	}

	s, rejected := scene.FromDocument(src)
	for _, r := range rejected {
		sk := Skipped{Kind: "element", ID: r.ID, Reason: r.Reason}
		if r.Line {
			sk.Kind = "line"
			sk.Index = lineIndex[r.Index]
		} else {
			sk.Index = elementIndex[r.Index]
		}
		skipped = append(skipped, sk)
	}

	slices.SortStableFunc(skipped, func(a, b Skipped) int {
		if c := cmp.Compare(skippedRank[a.Kind], skippedRank[b.Kind]); c != 0 {
			return c
		}
		return cmp.Compare(a.Index, b.Index)
	})
	return s, skipped
}

var skippedRank = map[string]int{"template": 0, "element": 1, "line": 2}

func (el *Element) body() (scene.Body, error) {
	kind, ok := scene.ParseShapeKind(el.Type)
	if !ok {
		return nil, fmt.Errorf("unknown element type %q", el.Type)
	}
	switch kind {
	case scene.Cone:
		if el.Color == "" {
			return scene.ConeBody{Color: scene.DefaultConeColor}, nil
		}
		return scene.ConeBody{Color: el.Color}, nil
	case scene.Goal:
		b := scene.GoalBody{Width: el.Width, Height: el.Height}
		if b.Width <= 0 {
			b.Width = scene.DefaultGoalWidth
		}
		if b.Height <= 0 {
			b.Height = scene.DefaultGoalHeight
		}
		return b, nil
	default:
		return scene.NewBody(kind), nil
	}
}

// Encode returns the JSON form of s.
func Encode(s *scene.Scene) ([]byte, error) {
	return json.Marshal(FromScene(s))
}

// Decode parses a JSON document and converts it into a scene.  Only
// malformed JSON is an error; invalid entries are skipped and reported.
func Decode(data []byte) (*scene.Scene, []Skipped, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("decoding diagram: %w", err)
	}
	s, skipped := doc.Scene()
	return s, skipped, nil
}
