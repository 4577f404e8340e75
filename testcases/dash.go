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

// movementSamples contains dashed player runs.
var movementSamples = []Sample{
	{
		Name:     "straight",
		Template: "blank",
		Lines:    []scene.LinePath{line(scene.Movement, pt(100, 300), pt(700, 300))},
	},
	{
		Name:     "short",
		Template: "blank",
		Lines:    []scene.LinePath{line(scene.Movement, pt(390, 300), pt(402, 300))},
	},
	{
		Name:     "zigzag",
		Template: "blank",
		Lines:    []scene.LinePath{line(scene.Movement, zigzag(100, 300, 700, 80, 6)...)},
	},
	{
		Name:     "overlap_run",
		Template: "half",
		Shapes: []scene.Shape{
			attacker(150, 500),
			attacker(250, 450),
			ball(265, 450),
			defender(330, 420),
		},
		Lines: []scene.LinePath{
			line(scene.Movement, pt(150, 485), pt(220, 380), pt(340, 330), pt(440, 380)),
			line(scene.Pass, pt(265, 440), pt(430, 390)),
		},
	},
}

// zigzag returns a polyline from (x1, y) to (x2, y) with n alternating
// peaks of the given amplitude.
func zigzag(x1, y, x2, amplitude float64, n int) []vec.Vec2 {
	pts := []vec.Vec2{pt(x1, y)}
	step := (x2 - x1) / float64(n+1)
	for i := 1; i <= n; i++ {
		dy := amplitude
		if i%2 == 0 {
			dy = -amplitude
		}
		pts = append(pts, pt(x1+float64(i)*step, y+dy))
	}
	return append(pts, pt(x2, y))
}
