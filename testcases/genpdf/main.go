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

// Command genpdf generates reference renderings of the sample diagrams.
// For every sample it writes a vector PDF and a PNG from the built-in
// rasterizer.  If Ghostscript is installed, the PDF is also rendered with
// Ghostscript, for visual comparison of the two outputs.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/tactics/render"
	"seehuhn.de/go/tactics/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}
	_, err := exec.LookPath("gs")
	haveGS := err == nil

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, s := range testcases.All[category] {
			name := category + "_" + s.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")
			gsPath := filepath.Join(refDir, name+"_gs.png")

			if err := generate(&s, pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if !haveGS {
				continue
			}
			if err := renderPNG(pdfPath, gsPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(s *testcases.Sample, pdfPath, pngPath string) error {
	sc, err := s.Scene()
	if err != nil {
		return err
	}
	d := render.FromScene(sc, render.DefaultStyle)

	if err := render.WritePDF(pdfPath, d); err != nil {
		return err
	}

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	err = render.WritePNG(f, d, 1)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: the PDF export is grayscale
	// -r72: 72 DPI (1 field unit = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
