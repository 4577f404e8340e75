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

// transformSamples contains shapes with non-trivial rotation and scale.
var transformSamples = []Sample{
	{
		Name:     "rotated_goals",
		Template: "blank",
		Shapes:   rotatedGoals(400, 300, 8),
	},
	{
		Name:     "scaled_players",
		Template: "blank",
		Shapes: []scene.Shape{
			scaled(attacker(150, 300), 0.25, 0.25),
			scaled(attacker(300, 300), 1, 1),
			scaled(attacker(450, 300), 2, 2),
			scaled(defender(650, 300), 4, 4),
		},
	},
	{
		Name:     "stretched",
		Template: "blank",
		Shapes: []scene.Shape{
			scaled(ball(200, 300), 3, 1),
			scaled(cone(400, 300, "#3b82f6"), 1, 3),
			rotated(scaled(goal(600, 300, 0), 2, 0.5), 30),
		},
	},
	{
		Name:     "rotated_cones",
		Template: "blank",
		Shapes: []scene.Shape{
			rotated(cone(200, 300, "#f97316"), 45),
			rotated(cone(300, 300, "#f97316"), 180),
			rotated(cone(400, 300, "#f97316"), -90),
		},
	},
}

func scaled(sh scene.Shape, sx, sy float64) scene.Shape {
	sh.ScaleX, sh.ScaleY = sx, sy
	return sh
}

func rotated(sh scene.Shape, deg float64) scene.Shape {
	sh.Rotation = deg
	return sh
}

// rotatedGoals arranges n goals in a fan around (cx, cy).
func rotatedGoals(cx, cy float64, n int) []scene.Shape {
	var res []scene.Shape
	for i := range n {
		deg := -180 + 360*float64(i)/float64(n)
		res = append(res, goal(cx, cy, deg))
	}
	return res
}
