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
	"seehuhn.de/go/pdfdom/engine"
)

// Unknown represents an annotation of a type not modelled by this package.
// Unknown annotations keep their place in the list of annotations of a page,
// but cannot be hit.
type Unknown struct {
	Common

	// Subtype is the annotation subtype reported by the engine.
	Subtype engine.Subtype
}

// Kind returns KindUnknown.
// This implements the [Annotation] interface.
func (u *Unknown) Kind() Kind {
	return KindUnknown
}

// PointIn always returns false.
// This implements the [Annotation] interface.
func (u *Unknown) PointIn(coord.Point) bool {
	return false
}
