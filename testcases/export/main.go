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

// Command export writes all sample diagrams as JSON documents, in the
// format used for persisted diagrams.
// Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/tactics/diagram"
	"seehuhn.de/go/tactics/testcases"
)

const outDir = "testdata/samples"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, s := range testcases.All[category] {
			name := category + "_" + s.Name
			if err := export(&s, filepath.Join(outDir, name+".json")); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func export(s *testcases.Sample, fname string) error {
	sc, err := s.Scene()
	if err != nil {
		return err
	}
	data, err := diagram.Encode(sc)
	if err != nil {
		return err
	}
	return os.WriteFile(fname, append(data, '\n'), 0644)
}
