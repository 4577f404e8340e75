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

// Command tactics renders and checks tactical diagrams.
//
// Usage:
//
//	tactics render drill.json -o drill.png --ratio 2
//	tactics render drill.json -o drill.pdf
//	tactics thumb drill.json -o drill_small.png --width 320
//	tactics check drill.json other.json
//	tactics serve
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"seehuhn.de/go/tactics/diagram"
	"seehuhn.de/go/tactics/internal/config"
	"seehuhn.de/go/tactics/scene"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")
	cfg := config.Load()

	root := &cobra.Command{
		Use:           "tactics",
		Short:         "Render and check tactical diagrams",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(renderCmd(cfg))
	root.AddCommand(thumbCmd(cfg))
	root.AddCommand(checkCmd())
	root.AddCommand(serveCmd(cfg))

	if err := root.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// readDiagram loads a diagram file and logs the entries which could not
// be loaded.
func readDiagram(fname string) (*scene.Scene, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	s, skipped, err := diagram.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	for _, sk := range skipped {
		logger.Warn("entry skipped", "file", fname, "entry", sk.String())
	}
	return s, nil
}
