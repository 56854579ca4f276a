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
	"seehuhn.de/go/pdfdom/coord"
)

// TextIconSize is the side length of the square icon used to display a
// text annotation.
const TextIconSize = 24

// Text is a text note, displayed as an icon on the page.
// Clicking the icon reveals the Contents.
type Text struct {
	Common

	// Pos is the center of the icon.
	Pos coord.Point

	// Contents is the text of the note.
	Contents string
}

// Kind returns KindText.
// This implements the [Annotation] interface.
func (t *Text) Kind() Kind {
	return KindText
}

// Icon returns the square covered by the icon of the note.
func (t *Text) Icon() coord.Rect {
	return coord.Square(t.Pos, TextIconSize)
}

// PointIn reports whether p hits the icon of the note.
// This implements the [Annotation] interface.
func (t *Text) PointIn(p coord.Point) bool {
	return t.Icon().Contains(p)
}
