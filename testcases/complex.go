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

// drillSamples contains complete training diagrams mixing all shape and
// line kinds.
var drillSamples = []Sample{
	{
		Name:     "rondo",
		Template: "blank",
		Shapes: []scene.Shape{
			cone(250, 150, "#facc15"),
			cone(550, 150, "#facc15"),
			cone(550, 450, "#facc15"),
			cone(250, 450, "#facc15"),
			attacker(400, 130),
			attacker(570, 300),
			attacker(400, 470),
			attacker(230, 300),
			defender(380, 280),
			defender(430, 330),
			ball(415, 145),
		},
		Lines: []scene.LinePath{
			line(scene.Pass, pt(415, 150), pt(560, 290)),
			line(scene.Pass, pt(560, 310), pt(245, 305)),
			line(scene.Movement, pt(380, 280), pt(470, 240)),
		},
	},
	{
		Name:     "two_v_one",
		Template: "third",
		Shapes: []scene.Shape{
			attacker(80, 200),
			attacker(80, 480),
			ball(95, 205),
			defender(180, 340),
			goal(340, 340, 90),
		},
		Lines: []scene.LinePath{
			line(scene.Dribble, pt(95, 210), pt(150, 250), pt(175, 290)),
			line(scene.Pass, pt(175, 300), pt(210, 450)),
			line(scene.Movement, pt(80, 465), pt(150, 430), pt(220, 440)),
			line(scene.Pass, pt(225, 440), pt(330, 360)),
		},
	},
	{
		Name:     "finishing",
		Template: "box",
		Shapes: []scene.Shape{
			goal(250, 10, 0),
			attacker(150, 200),
			attacker(350, 200),
			attacker(250, 260),
			ball(250, 245),
			cone(180, 120, "#ef4444"),
			cone(320, 120, "#ef4444"),
		},
		Lines: []scene.LinePath{
			line(scene.Pass, pt(250, 245), pt(160, 210)),
			line(scene.Dribble, pt(155, 195), pt(175, 140), pt(200, 100)),
			line(scene.Pass, pt(200, 95), pt(240, 20)),
			line(scene.Movement, pt(350, 190), pt(320, 100), pt(275, 50)),
		},
	},
}
