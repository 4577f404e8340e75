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
	"maps"
	"regexp"
	"slices"
	"testing"

	"seehuhn.de/go/tactics/diagram"
	"seehuhn.de/go/tactics/render"
)

var validName = regexp.MustCompile(`^[a-z_]+$`)

func TestNames(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(All)) {
		seen := make(map[string]bool)
		for _, s := range All[category] {
			if !validName.MatchString(s.Name) {
				t.Errorf("%s: invalid name %q", category, s.Name)
			}
			if seen[s.Name] {
				t.Errorf("%s: duplicate name %q", category, s.Name)
			}
			seen[s.Name] = true
		}
	}
}

func TestSamples(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, s := range All[category] {
			t.Run(category+"_"+s.Name, func(t *testing.T) {
				sc, err := s.Scene()
				if err != nil {
					t.Fatal(err)
				}
				if len(sc.Shapes()) != len(s.Shapes) || len(sc.Lines()) != len(s.Lines) {
					t.Fatalf("scene has %d shapes and %d lines, want %d and %d",
						len(sc.Shapes()), len(sc.Lines()), len(s.Shapes), len(s.Lines))
				}

				data, err := diagram.Encode(sc)
				if err != nil {
					t.Fatal(err)
				}
				sc2, skipped, err := diagram.Decode(data)
				if err != nil {
					t.Fatal(err)
				}
				if len(skipped) > 0 {
					t.Errorf("skipped: %v", skipped)
				}
				data2, err := diagram.Encode(sc2)
				if err != nil {
					t.Fatal(err)
				}
				if string(data) != string(data2) {
					t.Error("round trip changed the document")
				}

				img := render.Paint(render.FromScene(sc, render.DefaultStyle), 1)
				b := img.Bounds()
				if b.Dx() != int(sc.Template.Width) || b.Dy() != int(sc.Template.Height) {
					t.Errorf("image size %dx%d", b.Dx(), b.Dy())
				}
			})
		}
	}
}

func BenchmarkPaint(b *testing.B) {
	for _, s := range largeSamples {
		sc, err := s.Scene()
		if err != nil {
			b.Fatal(err)
		}
		d := render.FromScene(sc, render.DefaultStyle)
		b.Run(s.Name, func(b *testing.B) {
			for b.Loop() {
				render.Paint(d, 2)
			}
		})
	}
}
