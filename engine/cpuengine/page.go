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

package cpuengine

import (
	"image"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"golang.org/x/exp/slices"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfdom/engine"
)

type page struct {
	doc    *document
	dict   types.Dict
	ref    *types.IndirectRef
	width  float64
	height float64
}

var _ engine.Page = (*page)(nil)

func (p *page) Close() error {
	p.dict = nil
	return nil
}

func (p *page) Width() float64  { return p.width }
func (p *page) Height() float64 { return p.height }

func (p *page) Render(dst *image.RGBA, opt *engine.RenderOptions) error {
	return engine.ErrUnsupported
}

func (p *page) LoadTextPage() (engine.TextPage, error) {
	return nil, engine.ErrUnsupported
}

// annots returns the page's annotation array, with indirect
// references left intact.
func (p *page) annots() types.Array {
	a, err := p.doc.ctx.DereferenceArray(p.dict["Annots"])
	if err != nil {
		return nil
	}
	return a
}

func (p *page) AnnotCount() int {
	return len(p.annots())
}

func (p *page) Annot(i int) (engine.Annot, error) {
	arr := p.annots()
	if i < 0 || i >= len(arr) {
		return nil, engine.ErrPage
	}
	dict, err := p.doc.ctx.DereferenceDict(arr[i])
	if err != nil || dict == nil {
		return nil, engine.ErrFormat
	}
	return &annot{page: p, dict: dict}, nil
}

func (p *page) CreateAnnot(s engine.Subtype) (engine.Annot, error) {
	name := s.Name()
	if s == engine.SubtypeUnknown || s.String() != name {
		return nil, engine.ErrUnsupported
	}
	dict := types.Dict{
		"Type":    types.Name("Annot"),
		"Subtype": types.Name(name),
		"Rect":    types.NewNumberArray(0, 0, 0, 0),
	}
	if p.ref != nil {
		dict["P"] = *p.ref
	}
	ref, err := p.doc.ctx.IndRefForNewObject(dict)
	if err != nil {
		return nil, err
	}

	arr := slices.Clone(p.annots())
	arr = append(arr, *ref)
	p.setAnnots(arr)
	return &annot{page: p, dict: dict}, nil
}

func (p *page) RemoveAnnot(i int) error {
	arr := p.annots()
	if i < 0 || i >= len(arr) {
		return engine.ErrPage
	}
	arr = slices.Delete(slices.Clone(arr), i, i+1)
	p.setAnnots(arr)
	return nil
}

func (p *page) setAnnots(arr types.Array) {
	if ref, ok := p.dict["Annots"].(types.IndirectRef); ok {
		// Update the shared array object in place.
		entry, found := p.doc.ctx.FindTableEntryForIndRef(&ref)
		if found && entry != nil {
			entry.Object = arr
			return
		}
	}
	if len(arr) == 0 {
		p.dict.Delete("Annots")
		return
	}
	p.dict.Update("Annots", arr)
}

func (p *page) LinkAt(pt vec.Vec2) (*engine.Link, error) {
	arr := p.annots()
	for i := len(arr) - 1; i >= 0; i-- {
		dict, err := p.doc.ctx.DereferenceDict(arr[i])
		if err != nil || dict == nil {
			continue
		}
		if s := dict.NameEntry("Subtype"); s == nil || *s != "Link" {
			continue
		}
		r, ok := p.doc.rect(dict["Rect"])
		if !ok {
			continue
		}
		if pt.X < r.LLx || pt.X > r.URx || pt.Y < r.LLy || pt.Y > r.URy {
			continue
		}
		return p.doc.link(dict, r), nil
	}
	return nil, nil
}

// rect reads a rectangle from a four-element number array.
// The result is normalized.
func (d *document) rect(obj types.Object) (rect.Rect, bool) {
	x, ok := d.numbers(obj)
	if !ok || len(x) != 4 {
		return rect.Rect{}, false
	}
	r := rect.Rect{LLx: x[0], LLy: x[1], URx: x[2], URy: x[3]}
	if r.LLx > r.URx {
		r.LLx, r.URx = r.URx, r.LLx
	}
	if r.LLy > r.URy {
		r.LLy, r.URy = r.URy, r.LLy
	}
	return r, true
}

func (d *document) numbers(obj types.Object) ([]float64, bool) {
	arr, err := d.ctx.DereferenceArray(obj)
	if err != nil || arr == nil {
		return nil, false
	}
	res := make([]float64, len(arr))
	for i, o := range arr {
		x, ok := d.number(o)
		if !ok {
			return nil, false
		}
		res[i] = x
	}
	return res, true
}

func (d *document) number(obj types.Object) (float64, bool) {
	obj, err := d.ctx.Dereference(obj)
	if err != nil {
		return 0, false
	}
	switch x := obj.(type) {
	case types.Integer:
		return float64(x), true
	case types.Float:
		return float64(x), true
	default:
		return 0, false
	}
}

// text decodes a PDF text string.
func (d *document) text(obj types.Object) string {
	obj, err := d.ctx.Dereference(obj)
	if err != nil {
		return ""
	}
	switch x := obj.(type) {
	case types.StringLiteral:
		s, err := types.StringLiteralToString(x)
		if err != nil {
			return ""
		}
		return s
	case types.HexLiteral:
		s, err := types.HexLiteralToString(x)
		if err != nil {
			return ""
		}
		return s
	case types.Name:
		return string(x)
	default:
		return ""
	}
}
