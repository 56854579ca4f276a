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

package memengine

import (
	"image/color"

	"golang.org/x/exp/slices"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfdom/coord"
	"seehuhn.de/go/pdfdom/engine"
)

type page struct {
	handle
	data *PageData
	mode engine.LoadMode
}

var _ engine.Page = (*page)(nil)

func (p *page) Close() error {
	return p.release()
}

func (p *page) Width() float64 {
	return p.data.Width
}

func (p *page) Height() float64 {
	return p.data.Height
}

func (p *page) LoadTextPage() (engine.TextPage, error) {
	if p.mode != engine.FullPage {
		return nil, engine.ErrPage
	}
	if err := p.e.fault("LoadTextPage"); err != nil {
		return nil, err
	}
	p.e.Stats.TextPageLoads++
	return &textPage{
		handle: p.e.newHandle(),
		chars:  layout(p.data.Lines),
	}, nil
}

func (p *page) AnnotCount() int {
	return len(p.data.Annots)
}

func (p *page) Annot(i int) (engine.Annot, error) {
	if i < 0 || i >= len(p.data.Annots) {
		return nil, engine.ErrPage
	}
	return &annot{
		handle: p.e.newHandle(),
		data:   p.data.Annots[i],
	}, nil
}

func (p *page) CreateAnnot(subtype engine.Subtype) (engine.Annot, error) {
	if err := p.e.fault("CreateAnnot"); err != nil {
		return nil, err
	}
	data := &AnnotData{Subtype: subtype}
	p.data.Annots = append(p.data.Annots, data)
	return &annot{
		handle: p.e.newHandle(),
		data:   data,
	}, nil
}

func (p *page) RemoveAnnot(i int) error {
	if i < 0 || i >= len(p.data.Annots) {
		return engine.ErrPage
	}
	if err := p.e.fault("RemoveAnnot"); err != nil {
		return err
	}
	p.data.Annots = slices.Delete(p.data.Annots, i, i+1)
	return nil
}

func (p *page) LinkAt(pt vec.Vec2) (*engine.Link, error) {
	for i := len(p.data.Annots) - 1; i >= 0; i-- {
		a := p.data.Annots[i]
		if a.Subtype != engine.SubtypeLink || !contains(a.Rect, pt) {
			continue
		}
		return a.link(), nil
	}
	return nil, nil
}

func contains(r rect.Rect, p vec.Vec2) bool {
	return p.X >= r.LLx && p.X <= r.URx && p.Y >= r.LLy && p.Y <= r.URy
}

type annot struct {
	handle
	data *AnnotData
}

var _ engine.Annot = (*annot)(nil)

func (a *annot) Close() error {
	return a.release()
}

func (a *annot) Subtype() engine.Subtype {
	return a.data.Subtype
}

func (a *annot) Rect() (rect.Rect, error) {
	return a.data.Rect, nil
}

func (a *annot) SetRect(r rect.Rect) error {
	if err := a.e.fault("SetRect"); err != nil {
		return err
	}
	a.data.Rect = r
	return nil
}

func (a *annot) QuadPoints() ([]coord.Quad, error) {
	return slices.Clone(a.data.Quads), nil
}

func (a *annot) SetQuadPoints(q []coord.Quad) error {
	if err := a.e.fault("SetQuadPoints"); err != nil {
		return err
	}
	a.data.Quads = slices.Clone(q)
	return nil
}

func (a *annot) Color() (color.NRGBA, bool) {
	return a.data.Color, a.data.HasColor
}

func (a *annot) SetColor(c color.NRGBA) error {
	if err := a.e.fault("SetColor"); err != nil {
		return err
	}
	a.data.Color = c
	a.data.HasColor = true
	return nil
}

func (a *annot) StringValue(key string, buf []byte) int {
	return engine.CopyUTF16(a.data.Strings[key], buf)
}

func (a *annot) SetStringValue(key string, value string) error {
	if err := a.e.fault("SetString"); err != nil {
		return err
	}
	if a.data.Strings == nil {
		a.data.Strings = make(map[string]string)
	}
	a.data.Strings[key] = value
	return nil
}

func (a *annot) SetURI(uri string) error {
	if a.data.Subtype != engine.SubtypeLink {
		return engine.ErrUnsupported
	}
	if err := a.e.fault("SetURI"); err != nil {
		return err
	}
	a.data.Dest = nil
	a.data.Action = engine.Action{Kind: engine.ActionURI, URI: uri}
	return nil
}

func (a *annot) Link() (*engine.Link, error) {
	if a.data.Subtype != engine.SubtypeLink {
		return nil, nil
	}
	return a.data.link(), nil
}

func (a *AnnotData) link() *engine.Link {
	l := &engine.Link{
		Rect:   a.Rect,
		Action: a.Action,
	}
	if a.Dest != nil {
		l.HasDest = true
		l.Dest = *a.Dest
	}
	return l
}
