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

package testcases

import (
	"fmt"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/tactics/scene"
)

// Sample defines a single example diagram.
type Sample struct {
	Name     string // lowercase a-z and _ only
	Template string // field template id
	Shapes   []scene.Shape
	Lines    []scene.LinePath
}

// Scene builds a new scene holding the sample.  Shapes and lines without
// an id are numbered in order, so that the result is deterministic.
func (s *Sample) Scene() (*scene.Scene, error) {
	t, ok := scene.Template(s.Template)
	if !ok {
		return nil, fmt.Errorf("sample %s: unknown template %q", s.Name, s.Template)
	}
	sc := scene.New(t)
	sc.Name = s.Name
	n := 0
	sc.NewID = func() string {
		n++
		return fmt.Sprintf("%s_%d", s.Name, n)
	}
	for _, sh := range s.Shapes {
		if sc.AddShape(sh) == "" {
			return nil, fmt.Errorf("sample %s: invalid shape %+v", s.Name, sh)
		}
	}
	for _, l := range s.Lines {
		if _, ok := sc.AddLine(l); !ok {
			return nil, fmt.Errorf("sample %s: invalid line %+v", s.Name, l)
		}
	}
	return sc, nil
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// shape returns an unrotated shape of scale 1.
func shape(b scene.Body, x, y float64) scene.Shape {
	return scene.Shape{Body: b, Pos: pt(x, y), ScaleX: 1, ScaleY: 1}
}

func attacker(x, y float64) scene.Shape { return shape(scene.AttackerBody{}, x, y) }
func defender(x, y float64) scene.Shape { return shape(scene.DefenderBody{}, x, y) }
func ball(x, y float64) scene.Shape     { return shape(scene.BallBody{}, x, y) }

func cone(x, y float64, color string) scene.Shape {
	return shape(scene.ConeBody{Color: color}, x, y)
}

func goal(x, y, rotation float64) scene.Shape {
	sh := shape(scene.GoalBody{Width: scene.DefaultGoalWidth, Height: scene.DefaultGoalHeight}, x, y)
	sh.Rotation = rotation
	return sh
}

// line returns a line with an arrowhead and the default stroke width.
func line(k scene.LineKind, pts ...vec.Vec2) scene.LinePath {
	return scene.LinePath{
		Kind:        k,
		Points:      pts,
		StrokeWidth: scene.DefaultStrokeWidth,
		Arrow:       true,
	}
}
