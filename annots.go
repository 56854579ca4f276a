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
	"seehuhn.de/go/pdfdom/action"
	"seehuhn.de/go/pdfdom/annotation"
	"seehuhn.de/go/pdfdom/coord"
	"seehuhn.de/go/pdfdom/engine"
)

func (p *Page) reader() *annotation.Reader {
	return &annotation.Reader{
		PageHeight: p.Height(),
		Height:     p.doc.pageHeight,
		BufferSize: p.doc.opt.bufferSize(),
	}
}

// mirror returns the list of annotations, reading it from the engine on
// first use.  Element i of the list corresponds to the engine annotation
// with index i.
func (p *Page) mirror() ([]annotation.Annotation, error) {
	if !p.IsValid() {
		return nil, ErrClosed
	}
	return p.annots.get(p.readAnnotations)
}

func (p *Page) readAnnotations() ([]annotation.Annotation, error) {
	lite, err := p.doc.native.LoadPage(p.index, engine.AnnotationsOnly)
	if err != nil {
		return nil, err
	}
	defer lite.Close()

	r := p.reader()
	n := lite.AnnotCount()
	res := make([]annotation.Annotation, 0, n)
	for i := range n {
		res = append(res, p.readAnnotation(r, lite, i))
	}
	p.doc.log.Debug("annotations loaded", "page", p.index, "count", n)
	return res, nil
}

// readAnnotation reads the annotation with index i.  Annotations which
// cannot be read are represented by an [annotation.Unknown] value, so that
// the indices of the following annotations stay in sync with the engine.
func (p *Page) readAnnotation(r *annotation.Reader, native engine.Page, i int) annotation.Annotation {
	a, err := native.Annot(i)
	if err != nil {
		p.doc.log.Debug("cannot open annotation", "page", p.index, "index", i, "err", err)
		return &annotation.Unknown{}
	}
	defer a.Close()

	res, err := r.Read(a)
	if err != nil {
		p.doc.log.Debug("cannot read annotation", "page", p.index, "index", i, "err", err)
		return &annotation.Unknown{Subtype: a.Subtype()}
	}
	if p.doc.opt.NormalizeURIs {
		normalizeLink(res)
	}
	return res
}

func normalizeLink(a annotation.Annotation) {
	l, ok := a.(*annotation.Link)
	if !ok {
		return
	}
	if u, ok := l.Action.(*action.URI); ok {
		if norm, err := action.NormalizeURI(u.URI); err == nil {
			l.Action = &action.URI{URI: norm}
		}
	}
}

// Annotations returns all annotations of the page, in document order.
// Annotations of kinds which are not modelled are included as
// [annotation.Unknown] values.
//
// The returned values must not be modified.  Use [Page.UpdateAnnotation]
// to change an annotation.
func (p *Page) Annotations() []annotation.Annotation {
	annots, err := p.mirror()
	if err != nil {
		return nil
	}
	return append([]annotation.Annotation(nil), annots...)
}

// NotesAndHighlights returns the text notes and highlights of the page,
// in document order.
func (p *Page) NotesAndHighlights() []annotation.Annotation {
	return p.filter(func(a annotation.Annotation) bool {
		k := a.Kind()
		return k == annotation.KindText || k == annotation.KindHighlight
	})
}

// Links returns the links of the page, in document order.
func (p *Page) Links() []*annotation.Link {
	var res []*annotation.Link
	for _, a := range p.filter(func(a annotation.Annotation) bool {
		return a.Kind() == annotation.KindLink
	}) {
		res = append(res, a.(*annotation.Link))
	}
	return res
}

func (p *Page) filter(keep func(annotation.Annotation) bool) []annotation.Annotation {
	annots, err := p.mirror()
	if err != nil {
		return nil
	}
	var res []annotation.Annotation
	for _, a := range annots {
		if keep(a) {
			res = append(res, a)
		}
	}
	return res
}

// AnnotationAt returns the topmost note or highlight at p,
// or nil if there is none.
func (p *Page) AnnotationAt(pt coord.Point) annotation.Annotation {
	annots := p.NotesAndHighlights()
	for i := len(annots) - 1; i >= 0; i-- {
		if annots[i].PointIn(pt) {
			return annots[i]
		}
	}
	return nil
}

// LinkAtPoint returns the action of the link at pt.
// The second return value is false if there is no link at pt.
func (p *Page) LinkAtPoint(pt coord.Point) (action.Action, bool) {
	native, err := p.nativePage()
	if err != nil {
		return nil, false
	}
	l, err := native.LinkAt(coord.PointToEngine(pt, p.Height()))
	if err != nil || l == nil {
		return nil, false
	}
	a := action.FromLink(l, p.doc.pageHeight)
	if u, ok := a.(*action.URI); ok && p.doc.opt.NormalizeURIs {
		if norm, err := action.NormalizeURI(u.URI); err == nil {
			a = &action.URI{URI: norm}
		}
	}
	return a, true
}
