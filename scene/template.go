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
	"seehuhn.de/go/geom/vec"
)

// FieldTemplate defines the extent of field space for a diagram.
// Shape and line coordinates are relative to the template and are never
// remapped when the template changes.
type FieldTemplate struct {
	ID     string
	Label  string
	Width  float64
	Height float64

	// Markings are the painted pitch lines, drawn below all shapes.
	Markings []Marking
}

// Marking is a painted pitch line. If Radius is positive the marking is a
// circle around Center, otherwise it is the polyline through Points.
type Marking struct {
	Points []vec.Vec2
	Center vec.Vec2
	Radius float64
}

// DefaultTemplateID is used for new documents and for documents which name
// an unknown template.
const DefaultTemplateID = "full"

// Pitch dimensions in field units (1 unit = 10cm).
const (
	pitchLength     = 1050.0
	pitchWidth      = 680.0
	penaltyDepth    = 165.0
	penaltyWidth    = 403.0
	goalAreaDepth   = 55.0
	goalAreaWidth   = 183.0
	centreCircleRad = 91.5
)

// Templates lists the built-in field templates, in the order they are
// offered to the user.
var Templates = []FieldTemplate{
	{
		ID:     "full",
		Label:  "Full pitch",
		Width:  pitchLength,
		Height: pitchWidth,
		Markings: []Marking{
			box(0, 0, pitchLength, pitchWidth),
			line(pitchLength/2, 0, pitchLength/2, pitchWidth),
			{Center: vec.Vec2{X: pitchLength / 2, Y: pitchWidth / 2}, Radius: centreCircleRad},
			box(0, (pitchWidth-penaltyWidth)/2, penaltyDepth, penaltyWidth),
			box(pitchLength-penaltyDepth, (pitchWidth-penaltyWidth)/2, penaltyDepth, penaltyWidth),
			box(0, (pitchWidth-goalAreaWidth)/2, goalAreaDepth, goalAreaWidth),
			box(pitchLength-goalAreaDepth, (pitchWidth-goalAreaWidth)/2, goalAreaDepth, goalAreaWidth),
		},
	},
	{
		ID:     "half",
		Label:  "Half pitch",
		Width:  pitchLength / 2,
		Height: pitchWidth,
		Markings: []Marking{
			box(0, 0, pitchLength/2, pitchWidth),
			{Center: vec.Vec2{X: 0, Y: pitchWidth / 2}, Radius: centreCircleRad},
			box(pitchLength/2-penaltyDepth, (pitchWidth-penaltyWidth)/2, penaltyDepth, penaltyWidth),
			box(pitchLength/2-goalAreaDepth, (pitchWidth-goalAreaWidth)/2, goalAreaDepth, goalAreaWidth),
		},
	},
	{
		ID:     "third",
		Label:  "Attacking third",
		Width:  350,
		Height: pitchWidth,
		Markings: []Marking{
			box(0, 0, 350, pitchWidth),
			box(350-penaltyDepth, (pitchWidth-penaltyWidth)/2, penaltyDepth, penaltyWidth),
			box(350-goalAreaDepth, (pitchWidth-goalAreaWidth)/2, goalAreaDepth, goalAreaWidth),
		},
	},
	{
		ID:     "box",
		Label:  "Penalty box",
		Width:  500,
		Height: 300,
		Markings: []Marking{
			box(0, 0, 500, 300),
			box((500-goalAreaWidth)/2, 0, goalAreaWidth, goalAreaDepth),
			line((500-penaltyWidth)/2, 0, (500-penaltyWidth)/2, penaltyDepth),
			line((500-penaltyWidth)/2, penaltyDepth, (500+penaltyWidth)/2, penaltyDepth),
			line((500+penaltyWidth)/2, penaltyDepth, (500+penaltyWidth)/2, 0),
		},
	},
	{
		ID:     "blank",
		Label:  "Blank area",
		Width:  800,
		Height: 600,
		Markings: []Marking{
			box(0, 0, 800, 600),
		},
	},
}

// Template returns the built-in template with the given id.
func Template(id string) (FieldTemplate, bool) {
	for _, t := range Templates {
		if t.ID == id {
			return t, true
		}
	}
	return FieldTemplate{}, false
}

func box(x, y, w, h float64) Marking {
	return Marking{Points: []vec.Vec2{
		{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}, {X: x, Y: y},
	}}
}

func line(x0, y0, x1, y1 float64) Marking {
	return Marking{Points: []vec.Vec2{{X: x0, Y: y0}, {X: x1, Y: y1}}}
}
