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

// Package engine defines the capabilities a PDF engine must provide
// for the page-level document model.
//
// All coordinates exchanged through these interfaces are in engine space:
// PDF user space with the origin in the bottom-left corner of the page.
// Handles returned by the engine must be closed by the caller.
package engine

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfdom/coord"
)

// Engine opens documents.
type Engine interface {
	// Open opens the document stored at path.  If the document is
	// encrypted, password is used to decrypt it.
	// Errors are reported as [ErrorCode] values, where possible.
	Open(path string, password string) (Document, error)
}

// LoadMode selects how much of a page is loaded by [Document.LoadPage].
type LoadMode int

const (
	// FullPage loads everything required for rendering, text extraction
	// and annotation editing.
	FullPage LoadMode = iota

	// AnnotationsOnly loads only what is needed to enumerate the
	// annotations of a page.
	AnnotationsOnly
)

// Document is an open document.
type Document interface {
	Close() error

	// PageCount returns the number of pages in the document.
	PageCount() int

	// PageSize returns the width and height of page i, in PDF units.
	// This does not require the page to be loaded.
	PageSize(i int) (width, height float64, err error)

	// LoadPage returns a handle for page i.
	LoadPage(i int, mode LoadMode) (Page, error)

	// PageLabel returns the page label of page i, or the empty string
	// if the document does not define page labels.
	PageLabel(i int) string

	// Outline returns the top-level bookmarks of the document.
	Outline() ([]*Bookmark, error)

	// FileVersion returns the PDF version multiplied by 10,
	// e.g. 17 for PDF-1.7.  The second return value is false if the
	// version cannot be determined.
	FileVersion() (int, bool)

	// Permissions returns the permission bits of an encrypted document,
	// or 0xFFFFFFFF if the document is not encrypted.
	Permissions() uint32

	IsLinearized() bool

	// MetaText returns an entry from the document information dictionary,
	// for example "Title" or "Producer".
	MetaText(tag string) string
}

// Saver is implemented by documents which can be written back to disk.
type Saver interface {
	SaveAs(path string) error
}

// Bookmark is an entry of the document outline.
type Bookmark struct {
	Title    string
	Dest     Dest
	Children []*Bookmark
}

// RenderOptions describes how a page is mapped onto the destination image.
//
// A page point (x, y) in engine space is mapped to the pixel
// (x*ScaleX - OffsetX, (height-y)*ScaleY - OffsetY).
type RenderOptions struct {
	ScaleX, ScaleY   float64
	OffsetX, OffsetY float64

	// Annotations selects whether annotations are drawn.
	Annotations bool
}

// Page is a loaded page.
type Page interface {
	Close() error

	Width() float64
	Height() float64

	// Render draws the page into dst.  Pixels which are not covered by
	// page content are left unchanged.
	Render(dst *image.RGBA, opt *RenderOptions) error

	LoadTextPage() (TextPage, error)

	// AnnotCount returns the number of annotations on the page.
	AnnotCount() int

	// Annot returns a handle for the annotation at index i.
	Annot(i int) (Annot, error)

	// CreateAnnot appends a new, empty annotation of the given subtype to
	// the annotation array of the page.  The new annotation has index
	// AnnotCount()-1.
	CreateAnnot(subtype Subtype) (Annot, error)

	// RemoveAnnot removes the annotation at index i.  Annotations
	// after i move down by one position.
	RemoveAnnot(i int) error

	// LinkAt returns the link at the given point, or nil if there is none.
	LinkAt(p vec.Vec2) (*Link, error)
}

// Annot is a handle for a single annotation.
type Annot interface {
	Close() error

	Subtype() Subtype

	Rect() (rect.Rect, error)
	SetRect(r rect.Rect) error

	QuadPoints() ([]coord.Quad, error)
	SetQuadPoints(q []coord.Quad) error

	Color() (color.NRGBA, bool)
	SetColor(c color.NRGBA) error

	// StringValue reads the string entry key into buf, as UTF-16LE
	// followed by a two-byte terminator.  The return value is the number
	// of bytes required for the complete value including the terminator.
	// If buf is too short, the value is truncated.
	StringValue(key string, buf []byte) int
	SetStringValue(key string, value string) error

	// SetURI turns a link annotation into a link to the given URI.
	SetURI(uri string) error

	// Link returns the target of a link annotation, or nil if the
	// annotation is not a link.
	Link() (*Link, error)
}

// TextPage gives access to the text of a page.
//
// Characters are indexed from 0 to CountChars()-1.  Rectangles are in
// engine space.
type TextPage interface {
	Close() error

	CountChars() int

	// Text returns count characters, starting at index start.
	Text(start, count int) string

	// TextInRect returns the text inside the given rectangle.
	TextInRect(r rect.Rect) string

	// Rects returns the rectangles covering count characters starting at
	// start.  Adjacent characters on the same line are merged into a single
	// rectangle.  A count of -1 means all characters to the end of the page.
	Rects(start, count int) []rect.Rect

	// CharBox returns the bounding box of a single character.
	CharBox(i int) (rect.Rect, bool)

	// Search starts a search for needle, beginning at character index start.
	Search(needle string, flags SearchFlags, start int) (Search, error)
}

// SearchFlags modify the behaviour of [TextPage.Search].
type SearchFlags uint

const (
	MatchCase SearchFlags = 1 << iota
	MatchWholeWord
)

// Search is a search cursor.
type Search interface {
	// Next advances to the next match.  The return value is false if
	// there are no more matches.
	Next() bool

	// Result returns the character index and the number of characters
	// of the current match.
	Result() (index, count int)

	Close() error
}
