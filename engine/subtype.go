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

package engine

import "fmt"

// Subtype identifies the type of an annotation.
// The numeric values follow the numbering used by PDFium.
type Subtype int

const (
	SubtypeUnknown Subtype = iota
	SubtypeText
	SubtypeLink
	SubtypeFreeText
	SubtypeLine
	SubtypeSquare
	SubtypeCircle
	SubtypePolygon
	SubtypePolyLine
	SubtypeHighlight
	SubtypeUnderline
	SubtypeSquiggly
	SubtypeStrikeOut
	SubtypeStamp
	SubtypeCaret
	SubtypeInk
	SubtypePopup
	SubtypeFileAttachment
	SubtypeSound
	SubtypeMovie
	SubtypeWidget
)

var subtypeNames = []string{
	"Unknown",
	"Text",
	"Link",
	"FreeText",
	"Line",
	"Square",
	"Circle",
	"Polygon",
	"PolyLine",
	"Highlight",
	"Underline",
	"Squiggly",
	"StrikeOut",
	"Stamp",
	"Caret",
	"Ink",
	"Popup",
	"FileAttachment",
	"Sound",
	"Movie",
	"Widget",
}

// Name returns the PDF name of the subtype, e.g. "Highlight".
func (s Subtype) Name() string {
	if s >= 0 && int(s) < len(subtypeNames) {
		return subtypeNames[s]
	}
	return "Unknown"
}

func (s Subtype) String() string {
	if s >= 0 && int(s) < len(subtypeNames) {
		return subtypeNames[s]
	}
	return fmt.Sprintf("Subtype(%d)", int(s))
}

// SubtypeByName returns the subtype with the given PDF name.
// Names which are not listed above map to SubtypeUnknown.
func SubtypeByName(name string) Subtype {
	for i, n := range subtypeNames {
		if n == name {
			return Subtype(i)
		}
	}
	return SubtypeUnknown
}
