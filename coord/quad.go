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

package coord

import (
	"seehuhn.de/go/geom/vec"
)

// Quad is a quadrilateral in engine space, as used for the QuadPoints
// of text markup annotations.
//
// The corners are stored in the order used by most PDF producers:
// top-left, top-right, bottom-left, bottom-right.
type Quad [4]vec.Vec2

// QuadToRect reduces a quadrilateral to a consumer space rectangle.
//
// Only the first, second and third corner are used.  This is exact for
// axis-aligned quads and lossy for rotated ones.
func QuadToRect(q Quad, pageHeight float64) Rect {
	r := Rect{
		X:      q[0].X,
		Y:      pageHeight - q[0].Y,
		Width:  q[1].X - q[0].X,
		Height: q[0].Y - q[2].Y,
	}
	return r.Normalize()
}

// RectToQuad converts a consumer space rectangle into an axis-aligned
// engine space quadrilateral.
func RectToQuad(r Rect, pageHeight float64) Quad {
	e := RectToEngine(r, pageHeight)
	return Quad{
		{X: e.LLx, Y: e.URy},
		{X: e.URx, Y: e.URy},
		{X: e.LLx, Y: e.LLy},
		{X: e.URx, Y: e.LLy},
	}
}
