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

// Kind identifies the kind of an annotation.
type Kind int

const (
	KindUnknown Kind = iota
	KindText
	KindHighlight
	KindLink
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindHighlight:
		return "Highlight"
	case KindLink:
		return "Link"
	default:
		return "Unknown"
	}
}

// Annotation represents an annotation on a page.
type Annotation interface {
	// Kind returns the kind of the annotation.
	Kind() Kind

	// Boundary returns the annotation rectangle.
	Boundary() coord.Rect

	// PointIn reports whether p hits the annotation.
	PointIn(p coord.Point) bool

	// GetCommon returns the common annotation fields.
	GetCommon() *Common
}

var (
	_ Annotation = (*Text)(nil)
	_ Annotation = (*Highlight)(nil)
	_ Annotation = (*Link)(nil)
	_ Annotation = (*Unknown)(nil)
)

// Common contains the fields shared by all annotation kinds.
type Common struct {
	// Rect is the annotation rectangle.
	Rect coord.Rect
}

// Boundary returns the annotation rectangle.
func (c *Common) Boundary() coord.Rect {
	return c.Rect
}

// GetCommon returns the common annotation fields.
// This implements the [Annotation] interface.
func (c *Common) GetCommon() *Common {
	return c
}

// Clone returns a deep copy of a.
func Clone(a Annotation) Annotation {
	switch a := a.(type) {
	case *Text:
		c := *a
		return &c
	case *Highlight:
		c := *a
		c.Regions = append([]coord.Rect(nil), a.Regions...)
		return &c
	case *Link:
		c := *a
		return &c
	case *Unknown:
		c := *a
		return &c
	default:
		return nil
	}
}

// Contents returns the text contents of a note or highlight.
// For other annotations, the empty string is returned.
func Contents(a Annotation) string {
	switch a := a.(type) {
	case *Text:
		return a.Contents
	case *Highlight:
		return a.Contents
	default:
		return ""
	}
}
