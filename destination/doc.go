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

// Package destination describes positions inside a document.
//
// A destination consists of a page and an optional view: the position
// of the top-left corner of the window and a zoom factor.  Coordinates are
// in consumer space of the target page, with the origin in the top-left
// corner.
//
// Use the Unset sentinel value (math.NaN()) for coordinates which are not
// specified.  For example:
//
//	dest := destination.XYZ{
//		Page: 3,
//		Left: destination.Unset, // keep the current horizontal position
//		Top:  100,
//		Zoom: destination.Unset, // keep the current zoom factor
//	}
package destination
