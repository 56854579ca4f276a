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
	"image"
	"math"

	"golang.org/x/image/draw"

	"seehuhn.de/go/pdfdom/engine"
)

// ImageOptions control how a page is rendered.
type ImageOptions struct {
	// ScaleX and ScaleY give the number of pixels per PDF unit.
	// Zero values are treated as 1.
	ScaleX, ScaleY float64

	// Clip selects the part of the scaled page which is rendered.
	// The rectangle is given in pixels, relative to the top-left corner of
	// the scaled page.  If Clip is empty, the whole page is rendered.
	Clip image.Rectangle

	// Annotations selects whether annotations are drawn.
	Annotations bool
}

func (opt *ImageOptions) scale() (float64, float64) {
	sx, sy := opt.ScaleX, opt.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return sx, sy
}

// Image renders the page into a new image with a white background.
//
// If the page cannot be rendered, an empty image is returned.
func (p *Page) Image(opt *ImageOptions) *image.RGBA {
	if opt == nil {
		opt = &ImageOptions{}
	}
	empty := image.NewRGBA(image.Rectangle{})

	size, err := p.pageSize()
	if err != nil {
		return empty
	}
	clip := opt.Clip
	if clip.Empty() {
		sx, sy := opt.scale()
		clip = image.Rect(0, 0,
			int(math.Ceil(size.Width*sx)), int(math.Ceil(size.Height*sy)))
	}
	if clip.Empty() {
		return empty
	}

	img := image.NewRGBA(image.Rect(0, 0, clip.Dx(), clip.Dy()))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	o := *opt
	o.Clip = clip
	if err := p.Render(img, &o); err != nil {
		p.doc.log.Debug("rendering failed", "page", p.index, "err", err)
		return empty
	}
	return img
}

// Render draws the page onto dst.  The top-left corner of opt.Clip is
// placed at the top-left corner of dst.  Pixels not covered by page
// content are left unchanged.
func (p *Page) Render(dst *image.RGBA, opt *ImageOptions) error {
	if opt == nil {
		opt = &ImageOptions{}
	}
	native, err := p.nativePage()
	if err != nil {
		return err
	}
	sx, sy := opt.scale()
	return native.Render(dst, &engine.RenderOptions{
		ScaleX:      sx,
		ScaleY:      sy,
		OffsetX:     float64(opt.Clip.Min.X),
		OffsetY:     float64(opt.Clip.Min.Y),
		Annotations: opt.Annotations,
	})
}
