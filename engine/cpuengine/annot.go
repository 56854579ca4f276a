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
	"image/color"
	"math"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"golang.org/x/text/encoding/unicode"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfdom/coord"
	"seehuhn.de/go/pdfdom/engine"
)

// annot is a handle to an annotation dictionary.
// Changes are applied to the dictionary in place.
type annot struct {
	page *page
	dict types.Dict
}

var _ engine.Annot = (*annot)(nil)

func (a *annot) Close() error {
	a.dict = nil
	return nil
}

func (a *annot) Subtype() engine.Subtype {
	s := a.dict.NameEntry("Subtype")
	if s == nil {
		return engine.SubtypeUnknown
	}
	return engine.SubtypeByName(*s)
}

func (a *annot) Rect() (rect.Rect, error) {
	r, ok := a.page.doc.rect(a.dict["Rect"])
	if !ok {
		return rect.Rect{}, engine.ErrFormat
	}
	return r, nil
}

func (a *annot) SetRect(r rect.Rect) error {
	a.dict.Update("Rect", types.NewNumberArray(r.LLx, r.LLy, r.URx, r.URy))
	return nil
}

func (a *annot) QuadPoints() ([]coord.Quad, error) {
	obj, ok := a.dict.Find("QuadPoints")
	if !ok {
		return nil, nil
	}
	x, ok := a.page.doc.numbers(obj)
	if !ok || len(x)%8 != 0 {
		return nil, engine.ErrFormat
	}
	res := make([]coord.Quad, len(x)/8)
	for i := range res {
		for j := range 4 {
			res[i][j] = vec.Vec2{X: x[8*i+2*j], Y: x[8*i+2*j+1]}
		}
	}
	return res, nil
}

func (a *annot) SetQuadPoints(q []coord.Quad) error {
	if len(q) == 0 {
		a.dict.Delete("QuadPoints")
		return nil
	}
	x := make([]float64, 0, 8*len(q))
	for _, quad := range q {
		for _, p := range quad {
			x = append(x, p.X, p.Y)
		}
	}
	a.dict.Update("QuadPoints", types.NewNumberArray(x...))
	return nil
}

func (a *annot) Color() (color.NRGBA, bool) {
	c, ok := a.page.doc.numbers(a.dict["C"])
	if !ok {
		return color.NRGBA{}, false
	}
	alpha := uint8(255)
	if ca, ok := a.page.doc.number(a.dict["CA"]); ok {
		alpha = unit(ca)
	}
	switch len(c) {
	case 1:
		g := unit(c[0])
		return color.NRGBA{R: g, G: g, B: g, A: alpha}, true
	case 3:
		return color.NRGBA{R: unit(c[0]), G: unit(c[1]), B: unit(c[2]), A: alpha}, true
	case 4:
		k := 1 - c[3]
		return color.NRGBA{
			R: unit((1 - c[0]) * k),
			G: unit((1 - c[1]) * k),
			B: unit((1 - c[2]) * k),
			A: alpha,
		}, true
	default:
		return color.NRGBA{}, false
	}
}

func unit(x float64) uint8 {
	x = math.Max(0, math.Min(1, x))
	return uint8(math.Round(x * 255))
}

func (a *annot) SetColor(c color.NRGBA) error {
	a.dict.Update("C", types.NewNumberArray(
		float64(c.R)/255, float64(c.G)/255, float64(c.B)/255))
	if c.A == 255 {
		a.dict.Delete("CA")
	} else {
		a.dict.Update("CA", types.Float(float64(c.A)/255))
	}
	return nil
}

func (a *annot) StringValue(key string, buf []byte) int {
	s := a.page.doc.text(a.dict[key])
	return engine.CopyUTF16(s, buf)
}

func (a *annot) SetStringValue(key string, value string) error {
	h, err := textString(value)
	if err != nil {
		return err
	}
	a.dict.Update(key, h)
	return nil
}

// textString encodes s as a PDF text string in UTF-16BE with a byte order
// mark.
func textString(s string) (types.HexLiteral, error) {
	enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()
	b, err := enc.Bytes([]byte(s))
	if err != nil {
		return "", err
	}
	return types.NewHexLiteral(b), nil
}

func (a *annot) SetURI(uri string) error {
	if a.Subtype() != engine.SubtypeLink {
		return engine.ErrUnsupported
	}
	a.dict.Delete("Dest")
	a.dict.Update("A", types.Dict{
		"S":   types.Name("URI"),
		"URI": types.NewHexLiteral([]byte(uri)),
	})
	return nil
}

func (a *annot) Link() (*engine.Link, error) {
	if a.Subtype() != engine.SubtypeLink {
		return nil, nil
	}
	r, ok := a.page.doc.rect(a.dict["Rect"])
	if !ok {
		return nil, engine.ErrFormat
	}
	return a.page.doc.link(a.dict, r), nil
}

// link decodes the target of a link annotation.
func (d *document) link(dict types.Dict, r rect.Rect) *engine.Link {
	res := &engine.Link{Rect: r}
	if obj, ok := dict.Find("Dest"); ok {
		res.Dest, res.HasDest = d.dest(obj)
		if res.HasDest {
			res.Action = engine.Action{Kind: engine.ActionGoTo, Dest: res.Dest}
			return res
		}
	}
	if obj, ok := dict.Find("A"); ok {
		res.Action = d.action(obj)
	}
	return res
}

func (d *document) action(obj types.Object) engine.Action {
	dict, err := d.ctx.DereferenceDict(obj)
	if err != nil || dict == nil {
		return engine.Action{}
	}
	s := dict.NameEntry("S")
	if s == nil {
		return engine.Action{}
	}
	switch *s {
	case "GoTo":
		dest, ok := d.dest(dict["D"])
		if !ok {
			return engine.Action{}
		}
		return engine.Action{Kind: engine.ActionGoTo, Dest: dest}
	case "GoToR":
		// For remote destinations the page is given as an integer.
		res := engine.Action{
			Kind:     engine.ActionRemoteGoTo,
			FilePath: d.fileSpec(dict["F"]),
		}
		res.Dest, _ = d.dest(dict["D"])
		return res
	case "URI":
		return engine.Action{Kind: engine.ActionURI, URI: d.text(dict["URI"])}
	case "Launch":
		return engine.Action{Kind: engine.ActionLaunch, FilePath: d.fileSpec(dict["F"])}
	default:
		return engine.Action{}
	}
}

func (d *document) fileSpec(obj types.Object) string {
	obj, err := d.ctx.Dereference(obj)
	if err != nil {
		return ""
	}
	if dict, ok := obj.(types.Dict); ok {
		if s := d.text(dict["UF"]); s != "" {
			return s
		}
		return d.text(dict["F"])
	}
	return d.text(obj)
}

// dest decodes an explicit destination array.  Named destinations are
// not supported.
func (d *document) dest(obj types.Object) (engine.Dest, bool) {
	arr, err := d.ctx.DereferenceArray(obj)
	if err != nil || len(arr) < 2 {
		return engine.Dest{}, false
	}

	var res engine.Dest
	switch p := arr[0].(type) {
	case types.IndirectRef:
		idx, ok := d.pageIndex[p.ObjectNumber.Value()]
		if !ok {
			return engine.Dest{}, false
		}
		res.Page = idx
	case types.Integer:
		res.Page = p.Value()
	default:
		return engine.Dest{}, false
	}

	kind, ok := arr[1].(types.Name)
	if !ok {
		return engine.Dest{}, false
	}
	arg := func(i int) (float64, bool) {
		if i >= len(arr) {
			return 0, false
		}
		return d.number(arr[i])
	}
	switch kind {
	case "XYZ":
		res.X, res.HasX = arg(2)
		res.Y, res.HasY = arg(3)
		res.Zoom, res.HasZoom = arg(4)
	case "FitH", "FitBH":
		res.Y, res.HasY = arg(2)
	case "FitV", "FitBV":
		res.X, res.HasX = arg(2)
	case "FitR":
		res.X, res.HasX = arg(2)
		res.Y, res.HasY = arg(5)
	}
	return res, true
}
