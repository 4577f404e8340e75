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

package render

import (
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
)

// WritePDF writes d as a single-page PDF file.  One field unit maps to one
// PDF point.  Colours are converted to gray levels.
func WritePDF(fname string, d *Drawing) error {
	paper := &pdf.Rectangle{URx: d.Width, URy: d.Height}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(pdfcolor.DeviceGray(gray(d.Background)))
	page.Rectangle(0, 0, d.Width, d.Height)
	page.Fill()

	// PDF has the origin at the bottom left, field space at the top left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, d.Height})

	emitPath := func(p *path.Data) {
		for cmd, pts := range p.Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
	}

	for _, op := range d.Ops {
		switch op := op.(type) {
		case Fill:
			page.SetFillColor(pdfcolor.DeviceGray(gray(op.Color)))
			emitPath(op.Path)
			if op.EvenOdd {
				page.FillEvenOdd()
			} else {
				page.Fill()
			}
		case Stroke:
			page.SetStrokeColor(pdfcolor.DeviceGray(gray(op.Color)))
			page.SetLineWidth(op.Width)
			page.SetLineCap(op.Cap)
			page.SetLineJoin(op.Join)
			page.SetLineDash(op.Dash, 0)
			emitPath(op.Path)
			page.Stroke()
		}
	}
	return page.Close()
}

// gray maps c to its luminance, composited over white.
func gray(c color.NRGBA) float64 {
	y := (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
	a := float64(c.A) / 255
	return y*a + (1 - a)
}
