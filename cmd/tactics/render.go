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

package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/tactics/diagram"
	"seehuhn.de/go/tactics/internal/config"
	"seehuhn.de/go/tactics/render"
)

// --------------------------------------------------------------------------
// render command
// --------------------------------------------------------------------------

func renderCmd(cfg *config.Config) *cobra.Command {
	var out string
	var ratio float64
	cmd := &cobra.Command{
		Use:   "render <diagram.json>",
		Short: "Render a diagram to PNG or PDF",
		Long: "Render a diagram to PNG or PDF.  The output format is chosen by\n" +
			"the extension of the output file.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readDiagram(args[0])
			if err != nil {
				return err
			}
			if out == "" {
				out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".png"
			}
			d := render.FromScene(s, render.DefaultStyle)

			if strings.EqualFold(filepath.Ext(out), ".pdf") {
				err = render.WritePDF(out, d)
			} else {
				err = writeFile(out, func(f *os.File) error {
					return render.WritePNG(f, d, ratio)
				})
			}
			if err != nil {
				return err
			}
			logger.Info("diagram rendered", "in", args[0], "out", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file (.png or .pdf)")
	cmd.Flags().Float64Var(&ratio, "ratio", cfg.PixelRatio, "Pixels per field unit for PNG output")
	return cmd
}

// --------------------------------------------------------------------------
// thumb command
// --------------------------------------------------------------------------

func thumbCmd(cfg *config.Config) *cobra.Command {
	var out string
	var width int
	cmd := &cobra.Command{
		Use:   "thumb <diagram.json>",
		Short: "Write a small PNG preview of a diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readDiagram(args[0])
			if err != nil {
				return err
			}
			if width <= 0 {
				return fmt.Errorf("invalid thumbnail width %d", width)
			}
			if out == "" {
				out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + "_thumb.png"
			}
			img := render.Paint(render.FromScene(s, render.DefaultStyle), cfg.PixelRatio)
			thumb := render.Thumbnail(img, width)
			err = writeFile(out, func(f *os.File) error {
				return png.Encode(f, thumb)
			})
			if err != nil {
				return err
			}
			logger.Info("thumbnail written", "in", args[0], "out", out,
				"width", thumb.Bounds().Dx(), "height", thumb.Bounds().Dy())
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file")
	cmd.Flags().IntVar(&width, "width", cfg.ThumbWidth, "Thumbnail width in pixels")
	return cmd
}

// --------------------------------------------------------------------------
// check command
// --------------------------------------------------------------------------

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <diagram.json>...",
		Short: "Report diagram entries which cannot be loaded",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, fname := range args {
				data, err := os.ReadFile(fname)
				if err != nil {
					return err
				}
				s, skipped, err := diagram.Decode(data)
				if err != nil {
					logger.Error("malformed diagram", "file", fname, "error", err)
					failed++
					continue
				}
				for _, sk := range skipped {
					logger.Warn("entry skipped", "file", fname, "entry", sk.String())
				}
				logger.Info("diagram checked", "file", fname,
					"template", s.Template.ID,
					"shapes", len(s.Shapes()),
					"lines", len(s.Lines()),
					"skipped", len(skipped))
				if len(skipped) > 0 {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d diagrams have problems", failed, len(args))
			}
			return nil
		},
	}
}

// writeFile creates fname and calls write to fill it.
func writeFile(fname string, write func(*os.File) error) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
