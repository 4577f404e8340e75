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
	"fmt"

	"seehuhn.de/go/tactics/render"
	"seehuhn.de/go/tactics/scene"
)

// Tool is the kind of the active tool.
type Tool int

// These are the available tools.
const (
	ToolSelect Tool = iota
	ToolPlace
	ToolDraw
)

// Mode is the active tool together with its parameter.  Shape is only
// used for ToolPlace, Line only for ToolDraw.
type Mode struct {
	Tool  Tool
	Shape scene.ShapeKind
	Line  scene.LineKind
}

// SelectMode returns the mode for selecting and transforming items.
func SelectMode() Mode {
	return Mode{Tool: ToolSelect}
}

// PlaceMode returns the stamp mode for shapes of kind k.
func PlaceMode(k scene.ShapeKind) Mode {
	return Mode{Tool: ToolPlace, Shape: k}
}

// DrawMode returns the mode for drawing lines of kind k.
func DrawMode(k scene.LineKind) Mode {
	return Mode{Tool: ToolDraw, Line: k}
}

func (m Mode) String() string {
	switch m.Tool {
	case ToolSelect:
		return "select"
	case ToolPlace:
		return "place(" + m.Shape.String() + ")"
	case ToolDraw:
		return "draw(" + m.Line.String() + ")"
	default:
		return fmt.Sprintf("Mode(%d)", int(m.Tool))
	}
}

// Mode returns the active mode.
func (e *Editor) Mode() Mode {
	return e.mode
}

// SetMode activates a tool.  A line draft in progress is discarded
// without being committed.
func (e *Editor) SetMode(m Mode) {
	if len(e.draft) > 0 {
		e.log.Debug("draft discarded", "points", len(e.draft))
	}
	e.draft = nil
	e.drag = nil
	e.xform = nil
	e.mode = m
}

// Ranges of the user-adjustable settings.
const (
	MinRotation    = scene.MinRotation
	MaxRotation    = scene.MaxRotation
	MinScale       = scene.MinScale
	MaxScale       = scene.MaxScale
	MinStrokeWidth = scene.MinStrokeWidth
	MaxStrokeWidth = scene.MaxStrokeWidth
	MinGoalSize    = scene.MinGoalSize
	MaxGoalSize    = scene.MaxGoalSize
	MaxTension     = 1.0
)

// Defaults are the session settings used for new shapes and lines.
type Defaults struct {
	Rotation    float64 // degrees
	Scale       float64
	ConeColor   string
	GoalWidth   float64
	GoalHeight  float64
	StrokeWidth float64
	Tension     float64 // smoothing of pass and movement lines
}

// NewDefaults returns the initial session settings.
func NewDefaults() Defaults {
	return Defaults{
		Rotation:    0,
		Scale:       1,
		ConeColor:   scene.DefaultConeColor,
		GoalWidth:   scene.DefaultGoalWidth,
		GoalHeight:  scene.DefaultGoalHeight,
		StrokeWidth: scene.DefaultStrokeWidth,
		Tension:     render.DefaultStyle.Tension,
	}
}

// Defaults returns the current session settings.
func (e *Editor) Defaults() Defaults {
	return e.defaults
}

// SetDefaults replaces the session settings.  Values are clamped to
// their allowed ranges; invalid colours are ignored.
func (e *Editor) SetDefaults(d Defaults) {
	d.Rotation = scene.Clamp(d.Rotation, MinRotation, MaxRotation, 0)
	d.Scale = scene.Clamp(d.Scale, MinScale, MaxScale, 1)
	d.GoalWidth = scene.Clamp(d.GoalWidth, MinGoalSize, MaxGoalSize, scene.DefaultGoalWidth)
	d.GoalHeight = scene.Clamp(d.GoalHeight, MinGoalSize, MaxGoalSize, scene.DefaultGoalHeight)
	d.StrokeWidth = scene.Clamp(d.StrokeWidth, MinStrokeWidth, MaxStrokeWidth, scene.DefaultStrokeWidth)
	d.Tension = scene.Clamp(d.Tension, 0, MaxTension, 0)
	if _, ok := render.ParseColor(d.ConeColor); !ok {
		d.ConeColor = e.defaults.ConeColor
		if d.ConeColor == "" {
			d.ConeColor = scene.DefaultConeColor
		}
	}
	e.defaults = d
}
