// seehuhn.de/go/pdfdom - a page-level document model for PDF engines
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

package annotation

import (
	"image/color"

	"seehuhn.de/go/pdfdom/coord"
)

// DefaultHighlightColor is used for highlights without a color.
var DefaultHighlightColor = color.NRGBA{R: 0xFF, G: 0xFF, B: 0x00, A: 0xFF}

// Highlight marks one or more regions of text.
type Highlight struct {
	Common

	Color color.NRGBA

	// Regions are the highlighted areas, typically one per line of text.
	Regions []coord.Rect

	// Contents is an optional comment attached to the highlight.
	Contents string
}

// Kind returns KindHighlight.
// This implements the [Annotation] interface.
func (h *Highlight) Kind() Kind {
	return KindHighlight
}

// PointIn reports whether p lies inside any of the highlighted regions.
// This implements the [Annotation] interface.
func (h *Highlight) PointIn(p coord.Point) bool {
	for _, r := range h.Regions {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// Boundaries returns the highlighted regions.
func (h *Highlight) Boundaries() []coord.Rect {
	return h.Regions
}

// Bounds returns the smallest rectangle which contains all regions.
func (h *Highlight) Bounds() coord.Rect {
	var res coord.Rect
	for _, r := range h.Regions {
		res = res.Union(r)
	}
	return res
}
