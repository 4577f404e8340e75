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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/tactics/scene"
)

// largeSamples contains diagrams with many items, used for benchmarks.
var largeSamples = []Sample{
	{
		Name:     "full_teams",
		Template: "full",
		Shapes:   formation(11),
		Lines:    passingChain(11),
	},
	{
		Name:     "cone_grid",
		Template: "full",
		Shapes:   coneGrid(12, 20, 1050, 680),
	},
}

// formation returns two teams of n players facing each other.
func formation(n int) []scene.Shape {
	var res []scene.Shape
	for i := range n {
		y := 680 * float64(i+1) / float64(n+1)
		x := 100 + 350*float64(i%3)/2
		res = append(res, attacker(x, y), defender(1050-x, y))
	}
	return append(res, ball(525, 340))
}

// passingChain returns a pass between each pair of consecutive attackers
// of formation(n), with a dribble and a run for every third player.
func passingChain(n int) []scene.LinePath {
	var res []scene.LinePath
	pos := make([]vec.Vec2, n)
	for i := range n {
		pos[i] = pt(100+350*float64(i%3)/2, 680*float64(i+1)/float64(n+1))
	}
	for i := 1; i < n; i++ {
		res = append(res, line(scene.Pass, pos[i-1], pos[i]))
		if i%3 == 0 {
			p := pos[i]
			res = append(res,
				line(scene.Dribble, p, p.Add(pt(80, 10)), p.Add(pt(160, -20))),
				line(scene.Movement, p.Add(pt(0, 20)), p.Add(pt(120, 60))))
		}
	}
	return res
}

// coneGrid returns rows×cols cones evenly spread over a w×h field.
func coneGrid(rows, cols int, w, h float64) []scene.Shape {
	var res []scene.Shape
	for r := range rows {
		for c := range cols {
			x := w * (float64(c) + 0.5) / float64(cols)
			y := h * (float64(r) + 0.5) / float64(rows)
			color := scene.ConeColors[(r+c)%len(scene.ConeColors)]
			res = append(res, cone(x, y, color))
		}
	}
	return res
}
