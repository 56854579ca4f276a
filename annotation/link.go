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
	"seehuhn.de/go/pdfdom/action"
	"seehuhn.de/go/pdfdom/coord"
)

// Link is a clickable area on the page.
type Link struct {
	Common

	// Action is performed when the link is activated.
	Action action.Action
}

// Kind returns KindLink.
// This implements the [Annotation] interface.
func (l *Link) Kind() Kind {
	return KindLink
}

// PointIn reports whether p lies inside the link rectangle.
// This implements the [Annotation] interface.
func (l *Link) PointIn(p coord.Point) bool {
	return l.Rect.Contains(p)
}

// URI returns the target URI of the link, or the empty string if the
// link does not point to a URI.
func (l *Link) URI() string {
	if a, ok := l.Action.(*action.URI); ok {
		return a.URI
	}
	return ""
}
