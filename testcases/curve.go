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
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/tactics/scene"
)

// dribbleSamples contains squiggled dribble lines of different lengths
// and shapes.
var dribbleSamples = []Sample{
	{
		Name:     "straight",
		Template: "blank",
		Lines:    []scene.LinePath{line(scene.Dribble, pt(100, 300), pt(700, 300))},
	},
	{
		Name:     "short",
		Template: "blank",
		Lines:    []scene.LinePath{line(scene.Dribble, pt(380, 300), pt(420, 300))},
	},
	{
		Name:     "diagonal",
		Template: "blank",
		Lines:    []scene.LinePath{line(scene.Dribble, pt(100, 500), pt(700, 100))},
	},
	{
		Name:     "arc",
		Template: "blank",
		Lines:    []scene.LinePath{line(scene.Dribble, arc(400, 400, 250, 0.5, 1, 8)...)},
	},
	{
		Name:     "cut_inside",
		Template: "third",
		Shapes: []scene.Shape{
			attacker(60, 120),
			ball(75, 125),
			defender(160, 200),
		},
		Lines: []scene.LinePath{
			line(scene.Dribble, pt(75, 130), pt(120, 230), pt(200, 290), pt(240, 330)),
		},
	},
}

// arc returns n+1 points on the circle around (cx, cy) with radius r,
// between the given fractions of a full turn.
func arc(cx, cy, r, start, end float64, n int) []vec.Vec2 {
	var pts []vec.Vec2
	for i := 0; i <= n; i++ {
		a := 2 * math.Pi * (start + (end-start)*float64(i)/float64(n))
		pts = append(pts, pt(cx+r*math.Cos(a), cy+r*math.Sin(a)))
	}
	return pts
}
