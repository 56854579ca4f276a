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

package destination

import (
	"fmt"
	"math"

	"seehuhn.de/go/pdfdom/coord"
	"seehuhn.de/go/pdfdom/engine"
)

// Unset is a sentinel value for coordinates that should retain their current value.
// Use math.IsNaN() to test for this value.
var Unset = math.NaN()

// XYZ displays page Page with the point (Left, Top) positioned at the
// upper-left corner of the window and contents magnified by Zoom factor.
// A Zoom of 0 has the same meaning as Unset.
type XYZ struct {
	// Page is the zero-based index of the target page.
	Page int

	Left, Top, Zoom float64
}

// HasLeft reports whether the horizontal position is specified.
func (d XYZ) HasLeft() bool { return !math.IsNaN(d.Left) }

// HasTop reports whether the vertical position is specified.
func (d XYZ) HasTop() bool { return !math.IsNaN(d.Top) }

// HasZoom reports whether the zoom factor is specified.
func (d XYZ) HasZoom() bool { return !math.IsNaN(d.Zoom) && d.Zoom != 0 }

// Offset returns the position of the top-left corner of the view.
// Unspecified coordinates are returned as 0.
func (d XYZ) Offset() coord.Point {
	var p coord.Point
	if d.HasLeft() {
		p.X = d.Left
	}
	if d.HasTop() {
		p.Y = d.Top
	}
	return p
}

func (d XYZ) String() string {
	f := func(x float64) string {
		if math.IsNaN(x) {
			return "null"
		}
		return fmt.Sprintf("%g", x)
	}
	return fmt.Sprintf("page %d [%s %s %s]", d.Page+1, f(d.Left), f(d.Top), f(d.Zoom))
}

// FromEngine converts an engine destination.  The vertical position is
// converted to consumer space using the height of the target page.
func FromEngine(d engine.Dest, pageHeight float64) XYZ {
	res := Raw(d)
	if d.HasY {
		res.Top = coord.ToConsumerY(d.Y, pageHeight)
	}
	return res
}

// Raw converts an engine destination without changing the coordinate
// system.  This is used for destinations in other documents, where the
// height of the target page is not known.
func Raw(d engine.Dest) XYZ {
	res := XYZ{
		Page: d.Page,
		Left: Unset,
		Top:  Unset,
		Zoom: Unset,
	}
	if d.HasX {
		res.Left = d.X
	}
	if d.HasY {
		res.Top = d.Y
	}
	if d.HasZoom && d.Zoom != 0 {
		res.Zoom = d.Zoom
	}
	return res
}
