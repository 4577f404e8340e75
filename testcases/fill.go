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

var shapeSamples = []Sample{
	{
		Name:     "players",
		Template: "blank",
		Shapes: []scene.Shape{
			attacker(200, 300),
			defender(300, 300),
			attacker(400, 250),
			defender(400, 350),
		},
	},
	{
		Name:     "ball_at_feet",
		Template: "blank",
		Shapes: []scene.Shape{
			attacker(400, 300),
			ball(418, 306),
		},
	},
	{
		Name:     "cone_palette",
		Template: "blank",
		Shapes:   conePalette(150, 300, 100),
	},
	{
		Name:     "goals",
		Template: "full",
		Shapes: []scene.Shape{
			goal(10, 340, 90),
			goal(1040, 340, -90),
		},
	},
	{
		Name:     "wide_goal",
		Template: "box",
		Shapes: []scene.Shape{
			shape(scene.GoalBody{Width: 180, Height: 30}, 250, 15),
		},
	},
}

// conePalette places one cone of each palette colour in a row.
func conePalette(x, y, gap float64) []scene.Shape {
	var res []scene.Shape
	for i, c := range scene.ConeColors {
		res = append(res, cone(x+float64(i)*gap, y, c))
	}
	return res
}
