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

package diagram

import (
	"fmt"

	"seehuhn.de/go/tactics/render"
	"seehuhn.de/go/tactics/scene"
)

// DefaultPixelRatio is the pixel density of saved previews.
const DefaultPixelRatio = 2

// SaveOptions control the preview image produced by [Save].
type SaveOptions struct {
	// PixelRatio is the number of preview pixels per field unit.
	// Zero means DefaultPixelRatio.
	PixelRatio float64

	// Style selects how lines are drawn.  The zero value means
	// render.DefaultStyle.
	Style *render.Style
}

// Saved is what the editor hands to the host on save.
type Saved struct {
	Document Document

	// Preview is a PNG rendition of the diagram, as a data URI.
	Preview string
}

// Save returns the persisted form of s together with a freshly rendered
// preview image.  Editor state such as the selection is not included.
func Save(s *scene.Scene, opts *SaveOptions) (*Saved, error) {
	ratio := float64(DefaultPixelRatio)
	style := render.DefaultStyle
	if opts != nil {
		if opts.PixelRatio > 0 {
			ratio = opts.PixelRatio
		}
		if opts.Style != nil {
			style = *opts.Style
		}
	}

	uri, err := render.DataURI(render.FromScene(s, style), ratio)
	if err != nil {
		return nil, fmt.Errorf("rendering preview: %w", err)
	}
	return &Saved{
		Document: FromScene(s),
		Preview:  uri,
	}, nil
}
