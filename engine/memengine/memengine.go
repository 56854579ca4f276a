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

// Package memengine implements an in-memory PDF engine.
//
// Documents are described by [Doc] values and registered with an [Engine]
// under a file name.  The engine implements the complete interface of
// package engine, including text extraction, search and rendering, using a
// simple fixed-pitch text layout.  Mutations made through annotation
// handles are applied to the registered [Doc] directly.
//
// The engine counts resource loads and open handles, and can be made to
// fail selected operations.  This makes it useful for testing code which
// is built on top of an engine.
package memengine

import (
	"image/color"

	"github.com/xdg-go/stringprep"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfdom/coord"
	"seehuhn.de/go/pdfdom/engine"
	"seehuhn.de/go/pdfdom/internal/pagelabel"
)

// Doc describes a document.
type Doc struct {
	// Version is the PDF version multiplied by 10, e.g. 17 for PDF-1.7.
	// Zero means that the version is unknown.
	Version int

	// Password, if non-empty, makes the document encrypted.
	Password string

	// Permissions are the permission bits reported for encrypted documents.
	Permissions uint32

	Linearized bool

	// Info holds the entries of the document information dictionary.
	Info map[string]string

	Pages   []*PageData
	Outline []*engine.Bookmark
	Labels  []pagelabel.Range

	// OpenError, if set, is returned by every attempt to open the document.
	OpenError error
}

// PageData describes a page.
type PageData struct {
	Width, Height float64
	Lines         []Line
	Annots        []*AnnotData
}

// Line is a line of text.  The text is laid out in a fixed-pitch font,
// each character being 0.6*Size wide.  (X, Y) is the start of the baseline,
// in engine space.
type Line struct {
	X, Y float64
	Size float64
	Text string
}

// AnnotData describes an annotation.
type AnnotData struct {
	Subtype engine.Subtype
	Rect    rect.Rect
	Quads   []coord.Quad

	Color    color.NRGBA
	HasColor bool

	Strings map[string]string

	// Dest and Action are used for link annotations.
	Dest   *engine.Dest
	Action engine.Action
}

func (a *AnnotData) clone() *AnnotData {
	res := *a
	res.Quads = append([]coord.Quad(nil), a.Quads...)
	if a.Strings != nil {
		res.Strings = make(map[string]string, len(a.Strings))
		for k, v := range a.Strings {
			res.Strings[k] = v
		}
	}
	if a.Dest != nil {
		d := *a.Dest
		res.Dest = &d
	}
	return &res
}

// Stats counts the resources loaded through an [Engine].
type Stats struct {
	Opens         int
	PageLoads     int
	LitePageLoads int
	TextPageLoads int
	Searches      int

	// OpenHandles is the number of handles which have been
	// returned but not closed yet.
	OpenHandles int
}

// Engine is an in-memory engine.
// The zero value is not usable, use [New] to create an Engine.
type Engine struct {
	docs map[string]*Doc

	// Fault, if set, is called before every fallible operation with the
	// name of the operation.  A non-nil return value makes the operation
	// fail with that error, before any state is changed.
	//
	// Operation names are "LoadPage", "LoadTextPage", "Render",
	// "CreateAnnot", "RemoveAnnot", "SetRect", "SetQuadPoints",
	// "SetColor", "SetString" and "SetURI".
	Fault func(op string) error

	Stats Stats
}

var _ engine.Engine = (*Engine)(nil)

// New returns a new engine with no documents.
func New() *Engine {
	return &Engine{
		docs: make(map[string]*Doc),
	}
}

// Add registers doc under the given path.
func (e *Engine) Add(path string, doc *Doc) {
	e.docs[path] = doc
}

// Open implements the [engine.Engine] interface.
func (e *Engine) Open(path string, password string) (engine.Document, error) {
	doc, ok := e.docs[path]
	if !ok {
		return nil, engine.ErrFile
	}
	if doc.OpenError != nil {
		return nil, doc.OpenError
	}
	if doc.Password != "" && !checkPassword(doc.Password, password) {
		return nil, engine.ErrPassword
	}

	e.Stats.Opens++
	e.Stats.OpenHandles++
	return &document{e: e, doc: doc}, nil
}

func checkPassword(want, got string) bool {
	a, err := stringprep.SASLprep.Prepare(want)
	if err != nil {
		return false
	}
	b, err := stringprep.SASLprep.Prepare(got)
	if err != nil {
		return false
	}
	return a == b
}

func (e *Engine) fault(op string) error {
	if e.Fault == nil {
		return nil
	}
	return e.Fault(op)
}

type handle struct {
	e      *Engine
	closed bool
}

func (h *handle) release() error {
	if h.closed {
		return errClosed
	}
	h.closed = true
	h.e.Stats.OpenHandles--
	return nil
}

func (e *Engine) newHandle() handle {
	e.Stats.OpenHandles++
	return handle{e: e}
}
