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
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	fiberlogger "github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/spf13/cobra"

	"seehuhn.de/go/tactics/diagram"
	"seehuhn.de/go/tactics/internal/config"
	"seehuhn.de/go/tactics/render"
	"seehuhn.de/go/tactics/scene"
)

// --------------------------------------------------------------------------
// serve command
// --------------------------------------------------------------------------

func serveCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the diagram preview service",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := newApp(cfg)
			addr := fmt.Sprintf(":%s", cfg.Port)
			logger.Info("starting preview service", "addr", addr, "env", cfg.Environment)
			return app.Listen(addr)
		},
	}
}

// newApp sets up the routes of the preview service.  All POST routes take
// a diagram document as the request body.
func newApp(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		BodyLimit:    cfg.MaxBody,
		AppName:      "Tactics Preview Service",
	})

	app.Use(recover.New())
	app.Use(requestLogger())

	app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})
	app.Get("/health/ready", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ready"})
	})

	h := &handlers{cfg: cfg}
	app.Post("/render", h.renderPNG)
	app.Post("/render/pdf", h.renderPDF)
	app.Post("/thumbnail", h.thumbnail)
	app.Post("/check", h.check)

	return app
}

func requestLogger() fiber.Handler {
	return fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	})
}

type handlers struct {
	cfg *config.Config
}

// decode reads the diagram in the request body.  Malformed documents
// result in a 400 response.
func decode(c fiber.Ctx) (*scene.Scene, []diagram.Skipped, error) {
	if len(c.Body()) == 0 {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "body required")
	}
	s, skipped, err := diagram.Decode(c.Body())
	if err != nil {
		logger.Warn("malformed diagram", "path", c.Path(), "error", err)
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return s, skipped, nil
}

// queryFloat returns the positive number in query parameter key, or def.
func queryFloat(c fiber.Ctx, key string, def float64) float64 {
	if x, err := strconv.ParseFloat(c.Query(key), 64); err == nil && x > 0 {
		return x
	}
	return def
}

func (h *handlers) renderPNG(c fiber.Ctx) error {
	s, _, err := decode(c)
	if err != nil {
		return err
	}
	ratio := min(queryFloat(c, "ratio", h.cfg.PixelRatio), 8)

	buf := &bytes.Buffer{}
	if err := render.WritePNG(buf, render.FromScene(s, render.DefaultStyle), ratio); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set("Content-Type", "image/png")
	return c.Send(buf.Bytes())
}

func (h *handlers) renderPDF(c fiber.Ctx) error {
	s, _, err := decode(c)
	if err != nil {
		return err
	}
	data, err := pdfBytes(render.FromScene(s, render.DefaultStyle))
	if err != nil {
		logger.Error("PDF export failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set("Content-Type", "application/pdf")
	return c.Send(data)
}

// pdfBytes exports d as a PDF file and returns its contents.
func pdfBytes(d *render.Drawing) ([]byte, error) {
	dir, err := os.MkdirTemp("", "tactics")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	fname := filepath.Join(dir, "diagram.pdf")
	if err := render.WritePDF(fname, d); err != nil {
		return nil, err
	}
	return os.ReadFile(fname)
}

func (h *handlers) thumbnail(c fiber.Ctx) error {
	s, _, err := decode(c)
	if err != nil {
		return err
	}
	width := int(queryFloat(c, "width", float64(h.cfg.ThumbWidth)))
	width = min(width, 2048)

	img := render.Paint(render.FromScene(s, render.DefaultStyle), h.cfg.PixelRatio)
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, render.Thumbnail(img, width)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set("Content-Type", "image/png")
	return c.Send(buf.Bytes())
}

func (h *handlers) check(c fiber.Ctx) error {
	s, skipped, err := decode(c)
	if err != nil {
		return err
	}
	entries := make([]fiber.Map, 0, len(skipped))
	for _, sk := range skipped {
		entries = append(entries, fiber.Map{
			"kind":   sk.Kind,
			"index":  sk.Index,
			"id":     sk.ID,
			"reason": sk.Reason,
		})
	}
	return c.JSON(fiber.Map{
		"fieldTemplateId": s.Template.ID,
		"elements":        len(s.Shapes()),
		"lines":           len(s.Lines()),
		"skipped":         entries,
	})
}
