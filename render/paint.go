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
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/tactics/raster"
)

// Paint renders d into a new image.  One field unit maps to ratio pixels;
// ratios which are not positive are treated as 1.
func Paint(d *Drawing, ratio float64) *image.RGBA {
	if !(ratio > 0) {
		ratio = 1
	}
	w := max(1, int(math.Ceil(d.Width*ratio)))
	h := max(1, int(math.Ceil(d.Height*ratio)))
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	bg := premultiply(d.Background)
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = bg[0]
		img.Pix[i+1] = bg[1]
		img.Pix[i+2] = bg[2]
		img.Pix[i+3] = bg[3]
	}

	r := raster.NewRasterizer(rect.Rect{URx: float64(w), URy: float64(h)})
	r.CTM = matrix.Scale(ratio, ratio)
	for _, op := range d.Ops {
		switch op := op.(type) {
		case Fill:
			if op.EvenOdd {
				r.FillEvenOdd(op.Path, compositor(img, op.Color))
			} else {
				r.FillNonZero(op.Path, compositor(img, op.Color))
			}
		case Stroke:
			r.Width = op.Width
			r.Cap = op.Cap
			r.Join = op.Join
			r.Dash = op.Dash
			r.DashPhase = 0
			r.Stroke(op.Path, compositor(img, op.Color))
		}
	}
	return img
}

// compositor returns an emit function which paints c over img, using the
// coverage values as additional alpha.
func compositor(img *image.RGBA, c color.NRGBA) func(y, xMin int, coverage []float32) {
	src := [3]float32{float32(c.R), float32(c.G), float32(c.B)}
	alpha := float32(c.A) / 255
	return func(y, xMin int, coverage []float32) {
		pix := img.Pix[img.PixOffset(xMin, y):]
		for i, cov := range coverage {
			a := cov * alpha
			if a <= 0 {
				continue
			}
			px := pix[4*i : 4*i+4]
			for k := range 3 {
				px[k] = uint8(src[k]*a + float32(px[k])*(1-a) + 0.5)
			}
			px[3] = uint8(255*a + float32(px[3])*(1-a) + 0.5)
		}
	}
}

func premultiply(c color.NRGBA) [4]uint8 {
	a := uint32(c.A)
	return [4]uint8{
		uint8(uint32(c.R) * a / 255),
		uint8(uint32(c.G) * a / 255),
		uint8(uint32(c.B) * a / 255),
		c.A,
	}
}

// WritePNG paints d and writes the result to w in PNG format.
func WritePNG(w io.Writer, d *Drawing, ratio float64) error {
	return png.Encode(w, Paint(d, ratio))
}

// DataURI paints d and returns the PNG image as a data URI.
// The image is rendered afresh on every call.
func DataURI(d *Drawing, ratio float64) (string, error) {
	buf := &bytes.Buffer{}
	if err := WritePNG(buf, d, ratio); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Thumbnail scales img to the given width, keeping the aspect ratio.
func Thumbnail(img image.Image, width int) *image.RGBA {
	b := img.Bounds()
	if width <= 0 || b.Dx() == 0 {
		width = b.Dx()
	}
	height := 1
	if b.Dx() > 0 {
		height = max(1, int(math.Round(float64(b.Dy())*float64(width)/float64(b.Dx()))))
	}
	dst := image.NewRGBA(image.Rect(0, 0, max(width, 1), height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}
