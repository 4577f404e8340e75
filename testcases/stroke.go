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

var passSamples = []Sample{
	{
		Name:     "straight",
		Template: "blank",
		Lines:    []scene.LinePath{line(scene.Pass, pt(100, 300), pt(700, 300))},
	},
	{
		Name:     "corner",
		Template: "blank",
		Lines:    []scene.LinePath{line(scene.Pass, corner(100, 500, 400, 100, 700, 500)...)},
	},
	{
		Name:     "no_arrow",
		Template: "blank",
		Lines: []scene.LinePath{
			withoutArrow(line(scene.Pass, pt(100, 200), pt(700, 200))),
			withoutArrow(line(scene.Pass, corner(100, 500, 400, 300, 700, 500)...)),
		},
	},
	{
		Name:     "widths",
		Template: "blank",
		Lines:    strokeWidths(100, 700, 60, 1, 2, 3, 6, 9, 12),
	},
	{
		Name:     "give_and_go",
		Template: "half",
		Shapes: []scene.Shape{
			attacker(200, 400),
			attacker(300, 250),
			ball(215, 400),
		},
		Lines: []scene.LinePath{
			line(scene.Pass, pt(215, 395), pt(290, 260)),
			line(scene.Pass, pt(300, 260), pt(380, 420)),
		},
	},
}

// corner returns a polyline with one corner at (x2, y2).
func corner(x1, y1, x2, y2, x3, y3 float64) []vec.Vec2 {
	return []vec.Vec2{pt(x1, y1), pt(x2, y2), pt(x3, y3)}
}

func withoutArrow(l scene.LinePath) scene.LinePath {
	l.Arrow = false
	return l
}

// strokeWidths returns horizontal pass lines, one per width, stacked
// vertically.
func strokeWidths(x1, x2, gap float64, widths ...float64) []scene.LinePath {
	var res []scene.LinePath
	for i, w := range widths {
		y := gap * float64(i+1)
		l := line(scene.Pass, pt(x1, y), pt(x2, y))
		l.StrokeWidth = w
		res = append(res, l)
	}
	return res
}
