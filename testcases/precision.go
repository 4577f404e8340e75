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
	"seehuhn.de/go/tactics/scene"
)

// precisionSamples contains degenerate geometry: repeated control points,
// tiny segments, and items on or beyond the field boundary.
var precisionSamples = []Sample{
	{
		Name:     "repeated_points",
		Template: "blank",
		Lines: []scene.LinePath{
			line(scene.Pass, pt(100, 200), pt(400, 200), pt(400, 200), pt(700, 200)),
			line(scene.Dribble, pt(100, 400), pt(400, 400), pt(400, 400), pt(700, 400)),
		},
	},
	{
		Name:     "repeated_end",
		Template: "blank",
		Lines: []scene.LinePath{
			line(scene.Pass, pt(100, 200), pt(700, 200), pt(700, 200)),
			line(scene.Movement, pt(100, 300), pt(700, 300), pt(700, 300)),
			line(scene.Dribble, pt(100, 400), pt(700, 400), pt(700, 400)),
		},
	},
	{
		Name:     "zero_length",
		Template: "blank",
		Lines: []scene.LinePath{
			line(scene.Pass, pt(400, 300), pt(400, 300)),
			line(scene.Dribble, pt(200, 300), pt(200, 300)),
		},
	},
	{
		Name:     "tiny_segments",
		Template: "blank",
		Lines: []scene.LinePath{
			line(scene.Dribble, pt(400, 300), pt(400.001, 300), pt(400.002, 300.001)),
			line(scene.Movement, pt(400, 350), pt(400.5, 350)),
		},
	},
	{
		Name:     "field_boundary",
		Template: "blank",
		Shapes: []scene.Shape{
			attacker(0, 0),
			defender(800, 600),
			cone(-20, 300, "#ffffff"),
			goal(400, 610, 0),
		},
		Lines: []scene.LinePath{
			line(scene.Pass, pt(-50, 300), pt(850, 300)),
		},
	},
}
