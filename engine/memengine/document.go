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
	"errors"

	"seehuhn.de/go/pdfdom/engine"
	"seehuhn.de/go/pdfdom/internal/pagelabel"
)

var errClosed = errors.New("handle already closed")

type document struct {
	e      *Engine
	doc    *Doc
	closed bool
}

var (
	_ engine.Document = (*document)(nil)
	_ engine.Saver    = (*document)(nil)
)

func (d *document) Close() error {
	if d.closed {
		return errClosed
	}
	d.closed = true
	d.e.Stats.OpenHandles--
	return nil
}

func (d *document) PageCount() int {
	return len(d.doc.Pages)
}

func (d *document) PageSize(i int) (float64, float64, error) {
	if i < 0 || i >= len(d.doc.Pages) {
		return 0, 0, engine.ErrPage
	}
	p := d.doc.Pages[i]
	return p.Width, p.Height, nil
}

func (d *document) LoadPage(i int, mode engine.LoadMode) (engine.Page, error) {
	if i < 0 || i >= len(d.doc.Pages) {
		return nil, engine.ErrPage
	}
	if err := d.e.fault("LoadPage"); err != nil {
		return nil, err
	}
	if mode == engine.AnnotationsOnly {
		d.e.Stats.LitePageLoads++
	} else {
		d.e.Stats.PageLoads++
	}
	return &page{
		handle: d.e.newHandle(),
		data:   d.doc.Pages[i],
		mode:   mode,
	}, nil
}

func (d *document) PageLabel(i int) string {
	return pagelabel.Format(d.doc.Labels, i)
}

func (d *document) Outline() ([]*engine.Bookmark, error) {
	return d.doc.Outline, nil
}

func (d *document) FileVersion() (int, bool) {
	if d.doc.Version == 0 {
		return 0, false
	}
	return d.doc.Version, true
}

func (d *document) Permissions() uint32 {
	if d.doc.Password == "" {
		return 0xFFFFFFFF
	}
	return d.doc.Permissions
}

func (d *document) IsLinearized() bool {
	return d.doc.Linearized
}

func (d *document) MetaText(tag string) string {
	return d.doc.Info[tag]
}

// SaveAs implements the [engine.Saver] interface.
// Since documents live in memory, the copy is registered with the engine
// under the new path.
func (d *document) SaveAs(path string) error {
	c := *d.doc
	c.Pages = make([]*PageData, len(d.doc.Pages))
	for i, p := range d.doc.Pages {
		pc := *p
		pc.Annots = make([]*AnnotData, len(p.Annots))
		for j, a := range p.Annots {
			pc.Annots[j] = a.clone()
		}
		c.Pages[i] = &pc
	}
	d.e.Add(path, &c)
	return nil
}
