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
	"fmt"

	"seehuhn.de/go/pdfdom/action"
	"seehuhn.de/go/pdfdom/coord"
	"seehuhn.de/go/pdfdom/engine"
)

// DefaultBufferSize is the default size, in bytes, of the buffer used to
// read string values.  Longer values are truncated.
const DefaultBufferSize = 2048

// Reader converts engine annotations into annotation values.
type Reader struct {
	// PageHeight is the height of the page the annotations belong to.
	PageHeight float64

	// Height (optional) returns the height of other pages.  This is used to
	// convert link destinations.  If Height is nil, link destinations are
	// returned in engine space.
	Height action.PageHeightFunc

	// BufferSize is the size of the buffer used to read string values.
	// If this is zero, DefaultBufferSize is used.
	BufferSize int
}

// Read constructs an annotation value from the engine annotation a.
// Annotations of subtypes other than Text, Highlight and Link are returned
// as [Unknown] values.
func (r *Reader) Read(a engine.Annot) (Annotation, error) {
	subtype := a.Subtype()
	switch subtype {
	case engine.SubtypeText:
		return r.readText(a)
	case engine.SubtypeHighlight:
		return r.readHighlight(a)
	case engine.SubtypeLink:
		return r.readLink(a)
	default:
		res := &Unknown{Subtype: subtype}
		if rect, err := a.Rect(); err == nil {
			res.Rect = coord.RectToConsumer(rect, r.PageHeight)
		}
		return res, nil
	}
}

func (r *Reader) rect(a engine.Annot) (coord.Rect, error) {
	rect, err := a.Rect()
	if err != nil {
		return coord.Rect{}, fmt.Errorf("%s annotation rectangle: %w", a.Subtype(), err)
	}
	return coord.RectToConsumer(rect, r.PageHeight), nil
}

func (r *Reader) readText(a engine.Annot) (*Text, error) {
	rect, err := r.rect(a)
	if err != nil {
		return nil, err
	}
	return &Text{
		Common:   Common{Rect: rect},
		Pos:      rect.Center(),
		Contents: r.contents(a),
	}, nil
}

func (r *Reader) readHighlight(a engine.Annot) (*Highlight, error) {
	rect, err := r.rect(a)
	if err != nil {
		return nil, err
	}
	h := &Highlight{
		Common:   Common{Rect: rect},
		Color:    DefaultHighlightColor,
		Contents: r.contents(a),
	}
	if col, ok := a.Color(); ok {
		h.Color = col
	}

	quads, err := a.QuadPoints()
	if err != nil {
		return nil, fmt.Errorf("highlight quad points: %w", err)
	}
	for _, q := range quads {
		h.Regions = append(h.Regions, coord.QuadToRect(q, r.PageHeight))
	}
	if len(h.Regions) == 0 && !rect.IsEmpty() {
		h.Regions = []coord.Rect{rect}
	}
	return h, nil
}

func (r *Reader) readLink(a engine.Annot) (*Link, error) {
	rect, err := r.rect(a)
	if err != nil {
		return nil, err
	}
	l, err := a.Link()
	if err != nil {
		return nil, fmt.Errorf("link target: %w", err)
	}
	return &Link{
		Common: Common{Rect: rect},
		Action: action.FromLink(l, r.Height),
	}, nil
}

func (r *Reader) contents(a engine.Annot) string {
	size := r.BufferSize
	if size <= 0 {
		size = DefaultBufferSize
	}
	buf := make([]byte, size)
	n := a.StringValue("Contents", buf)
	if n > len(buf) {
		n = len(buf)
	}
	return engine.DecodeUTF16(buf[:n])
}
