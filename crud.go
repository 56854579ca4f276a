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
	"fmt"
	"image/color"

	"golang.org/x/exp/slices"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfdom/action"
	"seehuhn.de/go/pdfdom/annotation"
	"seehuhn.de/go/pdfdom/coord"
	"seehuhn.de/go/pdfdom/engine"
)

// CreateAnnotation adds a new annotation to the end of the annotation list
// of the page.  The draft must be a [*annotation.Text],
// [*annotation.Highlight] or [*annotation.Link] with a URI action.
//
// The draft itself is not added to the page.  Instead, a new value is
// constructed from the draft and returned.  This value is the one which
// appears in [Page.Annotations] and which must be passed to
// [Page.UpdateAnnotation] and [Page.RemoveAnnotation].
//
// If the engine fails to store any part of the annotation, the annotation
// is removed from the document again and an error wrapping
// [ErrNativeWrite] is returned.
func (p *Page) CreateAnnotation(draft annotation.Annotation) (annotation.Annotation, error) {
	value, subtype, err := p.prepare(draft)
	if err != nil {
		return nil, err
	}
	annots, err := p.mirror()
	if err != nil {
		return nil, err
	}
	native, err := p.nativePage()
	if err != nil {
		return nil, err
	}

	a, err := native.CreateAnnot(subtype)
	if err != nil {
		return nil, fmt.Errorf("%w: create %s: %w", ErrNativeWrite, subtype, err)
	}
	err = p.write(a, value)
	a.Close()

	idx := native.AnnotCount() - 1
	synced := idx == len(annots)
	if !synced {
		// someone else changed the annotation array
		p.doc.log.Warn("annotation list out of sync", "page", p.index,
			"engine", idx+1, "mirror", len(annots)+1)
		p.annots.reset()
	}

	if err != nil {
		if rmErr := native.RemoveAnnot(idx); rmErr != nil {
			p.doc.log.Warn("cannot remove incomplete annotation",
				"page", p.index, "index", idx, "err", rmErr)
			p.annots.reset()
			return nil, errors.Join(err, rmErr)
		}
		p.doc.log.Debug("annotation creation rolled back", "page", p.index, "err", err)
		return nil, err
	}

	if synced {
		if annots, ok := p.annots.peek(); ok {
			p.annots.set(append(annots, value))
		}
	} else {
		// The list is re-read from the engine, so the new annotation
		// must be taken from there.
		reloaded, err := p.mirror()
		if err != nil || idx >= len(reloaded) {
			return nil, fmt.Errorf("%w: annotation list out of sync", ErrNativeWrite)
		}
		value = reloaded[idx]
	}
	p.emit(EventAnnotationAdded, value)
	return value, nil
}

// UpdateAnnotation replaces the data of the annotation target with the
// data from draft.  The target must be an annotation of the page and
// draft must be of the same kind.  On success, target is updated in place.
//
// If the engine fails to store the change, the previous state is restored
// as far as possible, target is left unchanged and an error wrapping
// [ErrNativeWrite] is returned.
func (p *Page) UpdateAnnotation(target, draft annotation.Annotation) error {
	annots, err := p.mirror()
	if err != nil {
		return err
	}
	idx := indexOf(annots, target)
	if idx < 0 {
		return ErrAnnotationNotFound
	}
	if draft == nil || target.Kind() != draft.Kind() {
		return ErrKindMismatch
	}
	value, _, err := p.prepare(draft)
	if err != nil {
		return err
	}
	native, err := p.nativePage()
	if err != nil {
		return err
	}

	a, err := native.Annot(idx)
	if err != nil {
		return fmt.Errorf("%w: open annotation %d: %w", ErrNativeWrite, idx, err)
	}
	defer a.Close()

	snap := takeSnapshot(a)
	if err := p.write(a, value); err != nil {
		if rErr := snap.restore(a); rErr != nil {
			p.doc.log.Warn("cannot restore annotation",
				"page", p.index, "index", idx, "err", rErr)
			p.annots.reset()
		}
		return err
	}

	switch t := target.(type) {
	case *annotation.Text:
		*t = *value.(*annotation.Text)
	case *annotation.Highlight:
		*t = *value.(*annotation.Highlight)
	case *annotation.Link:
		*t = *value.(*annotation.Link)
	}
	p.emit(EventAnnotationUpdated, target)
	return nil
}

// RemoveAnnotation removes the annotation target from the page.
func (p *Page) RemoveAnnotation(target annotation.Annotation) error {
	annots, err := p.mirror()
	if err != nil {
		return err
	}
	idx := indexOf(annots, target)
	if idx < 0 {
		return ErrAnnotationNotFound
	}
	native, err := p.nativePage()
	if err != nil {
		return err
	}

	if err := native.RemoveAnnot(idx); err != nil {
		return fmt.Errorf("%w: remove annotation %d: %w", ErrNativeWrite, idx, err)
	}
	p.annots.set(slices.Delete(annots, idx, idx+1))

	p.emit(EventAnnotationRemoved, target)
	return nil
}

func indexOf(annots []annotation.Annotation, target annotation.Annotation) int {
	if target == nil {
		return -1
	}
	for i, a := range annots {
		if a == target {
			return i
		}
	}
	return -1
}

// prepare validates a draft and constructs the value which is stored in
// the annotation list.
func (p *Page) prepare(draft annotation.Annotation) (annotation.Annotation, engine.Subtype, error) {
	switch d := draft.(type) {
	case *annotation.Text:
		v := &annotation.Text{Pos: d.Pos, Contents: d.Contents}
		v.Rect = v.Icon()
		return v, engine.SubtypeText, nil

	case *annotation.Highlight:
		if len(d.Regions) == 0 {
			return nil, 0, fmt.Errorf("%w: highlight without regions", ErrInvalidDraft)
		}
		v := &annotation.Highlight{
			Color:    d.Color,
			Contents: d.Contents,
			Regions:  make([]coord.Rect, len(d.Regions)),
		}
		for i, r := range d.Regions {
			v.Regions[i] = r.Normalize()
		}
		if v.Color == (color.NRGBA{}) {
			v.Color = annotation.DefaultHighlightColor
		}
		v.Rect = v.Bounds()
		return v, engine.SubtypeHighlight, nil

	case *annotation.Link:
		u, ok := d.Action.(*action.URI)
		if !ok || u.URI == "" {
			return nil, 0, fmt.Errorf("%w: links need a URI action", ErrUnsupportedKind)
		}
		uri := u.URI
		if p.doc.opt.NormalizeURIs {
			norm, err := action.NormalizeURI(uri)
			if err != nil {
				return nil, 0, fmt.Errorf("%w: %w", ErrInvalidDraft, err)
			}
			uri = norm
		}
		v := &annotation.Link{
			Common: annotation.Common{Rect: d.Rect.Normalize()},
			Action: &action.URI{URI: uri},
		}
		if v.Rect.IsEmpty() {
			return nil, 0, fmt.Errorf("%w: empty link rectangle", ErrInvalidDraft)
		}
		return v, engine.SubtypeLink, nil

	default:
		return nil, 0, ErrUnsupportedKind
	}
}

// write stores v in the engine annotation a.  The attributes are written
// one at a time, and the first failure aborts the sequence.
func (p *Page) write(a engine.Annot, v annotation.Annotation) error {
	h := p.Height()
	check := func(step string, err error) error {
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrNativeWrite, step, err)
		}
		return nil
	}

	switch v := v.(type) {
	case *annotation.Text:
		if err := check("rect", a.SetRect(coord.RectToEngine(v.Rect, h))); err != nil {
			return err
		}
		return check("contents", a.SetStringValue("Contents", v.Contents))

	case *annotation.Highlight:
		if err := check("color", a.SetColor(v.Color)); err != nil {
			return err
		}
		quads := make([]coord.Quad, len(v.Regions))
		for i, r := range v.Regions {
			quads[i] = coord.RectToQuad(r, h)
		}
		if err := check("quad points", a.SetQuadPoints(quads)); err != nil {
			return err
		}
		if err := check("rect", a.SetRect(coord.RectToEngine(v.Rect, h))); err != nil {
			return err
		}
		return check("contents", a.SetStringValue("Contents", v.Contents))

	case *annotation.Link:
		if err := check("rect", a.SetRect(coord.RectToEngine(v.Rect, h))); err != nil {
			return err
		}
		return check("uri", a.SetURI(v.URI()))
	}
	return ErrUnsupportedKind
}

// snapshot records the attributes of an engine annotation which can be
// changed by [Page.write].
type snapshot struct {
	subtype engine.Subtype

	rect    rect.Rect
	hasRect bool

	quads []coord.Quad

	color    color.NRGBA
	hasColor bool

	contents string

	uri string
}

func takeSnapshot(a engine.Annot) *snapshot {
	s := &snapshot{subtype: a.Subtype()}
	if r, err := a.Rect(); err == nil {
		s.rect = r
		s.hasRect = true
	}
	if q, err := a.QuadPoints(); err == nil {
		s.quads = q
	}
	s.color, s.hasColor = a.Color()

	n := a.StringValue("Contents", nil)
	buf := make([]byte, n)
	a.StringValue("Contents", buf)
	s.contents = engine.DecodeUTF16(buf)

	if l, err := a.Link(); err == nil && l != nil && l.Action.Kind == engine.ActionURI {
		s.uri = l.Action.URI
	}
	return s
}

// restore writes the recorded attributes back.  All attributes are
// attempted, even if some of them fail.
func (s *snapshot) restore(a engine.Annot) error {
	var errs []error
	if s.hasRect {
		errs = append(errs, a.SetRect(s.rect))
	}
	switch s.subtype {
	case engine.SubtypeHighlight:
		errs = append(errs, a.SetQuadPoints(s.quads))
		if s.hasColor {
			errs = append(errs, a.SetColor(s.color))
		}
		errs = append(errs, a.SetStringValue("Contents", s.contents))
	case engine.SubtypeText:
		errs = append(errs, a.SetStringValue("Contents", s.contents))
	case engine.SubtypeLink:
		if s.uri != "" {
			errs = append(errs, a.SetURI(s.uri))
		}
	}
	return errors.Join(errs...)
}
