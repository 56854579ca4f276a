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

package pdfdom

import (
	"errors"

	"seehuhn.de/go/pdfdom/annotation"
	"seehuhn.de/go/pdfdom/coord"
	"seehuhn.de/go/pdfdom/engine"
)

// Page is a page of a [Document].
//
// Page resources are loaded on first use: the page itself is loaded for
// rendering and for annotation changes, the text layer for text queries,
// and the list of annotations when annotations are first accessed.
// Each resource is loaded at most once.
//
// Methods which return data return empty values if the page is not valid
// or if the engine cannot load the required resource.
type Page struct {
	doc   *Document
	index int

	size   lazy[coord.Size]
	native lazy[engine.Page]
	text   lazy[engine.TextPage]
	annots lazy[[]annotation.Annotation]

	listeners []*listener
	nextID    int

	released bool
}

// Index returns the zero-based index of the page within the document.
func (p *Page) Index() int {
	return p.index
}

// Document returns the document the page belongs to.
func (p *Page) Document() *Document {
	return p.doc
}

// IsValid reports whether the page can be used.
// Pages become invalid when their document is closed.
func (p *Page) IsValid() bool {
	return !p.released && p.doc.native != nil
}

func (p *Page) pageSize() (coord.Size, error) {
	if !p.IsValid() {
		return coord.Size{}, ErrClosed
	}
	return p.size.get(func() (coord.Size, error) {
		w, h, err := p.doc.native.PageSize(p.index)
		return coord.Size{Width: w, Height: h}, err
	})
}

// Size returns the page size in PDF units.
func (p *Page) Size() coord.Size {
	size, _ := p.pageSize()
	return size
}

// Width returns the page width in PDF units.
func (p *Page) Width() float64 {
	return p.Size().Width
}

// Height returns the page height in PDF units.
func (p *Page) Height() float64 {
	return p.Size().Height
}

// Label returns the page label, for example "iv" or "A-3".
// If the document does not define page labels, the empty string is returned.
func (p *Page) Label() string {
	if !p.IsValid() {
		return ""
	}
	return p.doc.native.PageLabel(p.index)
}

// nativePage returns the engine page, loading it if needed.
func (p *Page) nativePage() (engine.Page, error) {
	if !p.IsValid() {
		return nil, ErrClosed
	}
	return p.native.get(func() (engine.Page, error) {
		p.doc.log.Debug("loading page", "page", p.index)
		return p.doc.native.LoadPage(p.index, engine.FullPage)
	})
}

// textPage returns the text layer of the page, loading the page and the
// text layer if needed.
func (p *Page) textPage() (engine.TextPage, error) {
	if !p.IsValid() {
		return nil, ErrClosed
	}
	return p.text.get(func() (engine.TextPage, error) {
		native, err := p.nativePage()
		if err != nil {
			return nil, err
		}
		p.doc.log.Debug("loading text page", "page", p.index)
		return native.LoadTextPage()
	})
}

// release closes all engine handles held by the page.
// The text layer is released before the page it was loaded from.
func (p *Page) release() error {
	if p.released {
		return nil
	}
	p.released = true

	var errs []error
	if tp, ok := p.text.peek(); ok {
		errs = append(errs, tp.Close())
	}
	if native, ok := p.native.peek(); ok {
		errs = append(errs, native.Close())
	}
	p.text.reset()
	p.native.reset()
	p.annots.reset()
	p.listeners = nil
	return errors.Join(errs...)
}
