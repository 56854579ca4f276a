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
	"image"
	"image/color"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfdom/coord"
	"seehuhn.de/go/pdfdom/engine"
)

var (
	textColor      = color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xFF}
	highlightColor = color.NRGBA{R: 0xFF, G: 0xFF, B: 0x00, A: 0xFF}
	noteColor      = color.NRGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF}
)

// Render draws the page.  Characters are drawn as filled boxes.
// Highlights are drawn with half transparency, and text notes as a filled
// square covering the annotation rectangle.
func (p *page) Render(dst *image.RGBA, opt *engine.RenderOptions) error {
	if p.mode != engine.FullPage {
		return engine.ErrPage
	}
	if err := p.e.fault("Render"); err != nil {
		return err
	}

	b := dst.Bounds()
	r := &renderer{
		dst:    dst,
		raster: vector.NewRasterizer(b.Dx(), b.Dy()),
		opt:    opt,
		height: p.data.Height,
	}

	for _, c := range layout(p.data.Lines) {
		if c.line < 0 || c.r == ' ' {
			continue
		}
		r.rect(c.box)
	}
	r.fill(textColor)

	if !opt.Annotations {
		return nil
	}
	for _, a := range p.data.Annots {
		switch a.Subtype {
		case engine.SubtypeHighlight:
			for _, q := range a.Quads {
				r.quad(q)
			}
			col := highlightColor
			if a.HasColor {
				col = a.Color
			}
			col.A /= 2
			r.fill(col)
		case engine.SubtypeText:
			r.rect(a.Rect)
			col := noteColor
			if a.HasColor {
				col = a.Color
			}
			r.fill(col)
		}
	}
	return nil
}

type renderer struct {
	dst    *image.RGBA
	raster *vector.Rasterizer
	opt    *engine.RenderOptions
	height float64
	dirty  bool
}

func (r *renderer) point(x, y float64) (float32, float32) {
	px := x*r.opt.ScaleX - r.opt.OffsetX
	py := (r.height-y)*r.opt.ScaleY - r.opt.OffsetY
	return float32(px), float32(py)
}

func (r *renderer) rect(b rect.Rect) {
	r.raster.MoveTo(r.point(b.LLx, b.LLy))
	r.raster.LineTo(r.point(b.URx, b.LLy))
	r.raster.LineTo(r.point(b.URx, b.URy))
	r.raster.LineTo(r.point(b.LLx, b.URy))
	r.raster.ClosePath()
	r.dirty = true
}

func (r *renderer) quad(q coord.Quad) {
	// corners are stored as TL, TR, BL, BR
	r.raster.MoveTo(r.point(q[0].X, q[0].Y))
	r.raster.LineTo(r.point(q[1].X, q[1].Y))
	r.raster.LineTo(r.point(q[3].X, q[3].Y))
	r.raster.LineTo(r.point(q[2].X, q[2].Y))
	r.raster.ClosePath()
	r.dirty = true
}

func (r *renderer) fill(col color.NRGBA) {
	if !r.dirty {
		return
	}
	b := r.dst.Bounds()
	r.raster.Draw(r.dst, b, image.NewUniform(col), image.Point{})
	r.raster.Reset(b.Dx(), b.Dy())
	r.dirty = false
}
