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
	"image/color"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfdom/action"
	"seehuhn.de/go/pdfdom/coord"
	"seehuhn.de/go/pdfdom/engine"
	"seehuhn.de/go/pdfdom/engine/memengine"
)

func TestPointIn(t *testing.T) {
	text := &Text{Pos: coord.Point{X: 100, Y: 200}}
	highlight := &Highlight{
		Regions: []coord.Rect{
			{X: 10, Y: 10, Width: 100, Height: 12},
			{X: 10, Y: 24, Width: 60, Height: 12},
		},
	}
	link := &Link{Common: Common{Rect: coord.Rect{X: 0, Y: 0, Width: 50, Height: 50}}}
	unknown := &Unknown{Common: Common{Rect: coord.Rect{X: 0, Y: 0, Width: 50, Height: 50}}}

	cases := []struct {
		a    Annotation
		p    coord.Point
		want bool
	}{
		{text, coord.Point{X: 100, Y: 200}, true},
		{text, coord.Point{X: 88, Y: 188}, true},
		{text, coord.Point{X: 111.9, Y: 211.9}, true},
		{text, coord.Point{X: 112.5, Y: 200}, false},
		{text, coord.Point{X: 100, Y: 187}, false},
		{highlight, coord.Point{X: 105, Y: 15}, true},
		{highlight, coord.Point{X: 20, Y: 30}, true},
		{highlight, coord.Point{X: 90, Y: 30}, false},
		{link, coord.Point{X: 25, Y: 25}, true},
		{link, coord.Point{X: 55, Y: 25}, false},
		{unknown, coord.Point{X: 25, Y: 25}, false},
	}
	for _, c := range cases {
		if got := c.a.PointIn(c.p); got != c.want {
			t.Errorf("%s.PointIn(%v) = %t, want %t", c.a.Kind(), c.p, got, c.want)
		}
	}
}

func TestHighlightBounds(t *testing.T) {
	h := &Highlight{
		Regions: []coord.Rect{
			{X: 10, Y: 10, Width: 100, Height: 12},
			{X: 10, Y: 24, Width: 60, Height: 12},
		},
	}
	want := coord.Rect{X: 10, Y: 10, Width: 100, Height: 26}
	if d := cmp.Diff(want, h.Bounds()); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestClone(t *testing.T) {
	h := &Highlight{Regions: []coord.Rect{{X: 1, Y: 2, Width: 3, Height: 4}}}
	c := Clone(h).(*Highlight)
	c.Regions[0].X = 100
	if h.Regions[0].X != 1 {
		t.Error("clone shares regions with the original")
	}
	if Clone(nil) != nil {
		t.Error("Clone(nil) != nil")
	}
}

func loadAnnots(t *testing.T, annots []*memengine.AnnotData) []Annotation {
	t.Helper()
	e := memengine.New()
	e.Add("a.pdf", &memengine.Doc{
		Pages: []*memengine.PageData{{Width: 600, Height: 800, Annots: annots}},
	})
	doc, err := e.Open("a.pdf", "")
	if err != nil {
		t.Fatal(err)
	}
	defer doc.Close()
	p, err := doc.LoadPage(0, engine.AnnotationsOnly)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	r := &Reader{PageHeight: p.Height(), BufferSize: 16}
	var res []Annotation
	for i := 0; i < p.AnnotCount(); i++ {
		a, err := p.Annot(i)
		if err != nil {
			t.Fatal(err)
		}
		v, err := r.Read(a)
		a.Close()
		if err != nil {
			t.Fatal(err)
		}
		res = append(res, v)
	}
	if e.Stats.OpenHandles != 2 {
		t.Errorf("%d handles open", e.Stats.OpenHandles)
	}
	return res
}

func TestRead(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	annots := loadAnnots(t, []*memengine.AnnotData{
		{
			Subtype: engine.SubtypeText,
			Rect:    rect.Rect{LLx: 88, LLy: 588, URx: 112, URy: 612},
			Strings: map[string]string{"Contents": "hello"},
		},
		{
			Subtype:  engine.SubtypeHighlight,
			Rect:     rect.Rect{LLx: 72, LLy: 688, URx: 172, URy: 700},
			Color:    red,
			HasColor: true,
			Quads:    []coord.Quad{coord.RectToQuad(coord.Rect{X: 72, Y: 100, Width: 100, Height: 12}, 800)},
			Strings:  map[string]string{"Contents": strings.Repeat("x", 20)},
		},
		{
			Subtype: engine.SubtypeLink,
			Rect:    rect.Rect{LLx: 0, LLy: 750, URx: 50, URy: 800},
			Action:  engine.Action{Kind: engine.ActionURI, URI: "https://example.com"},
		},
		{
			Subtype: engine.SubtypeWidget,
			Rect:    rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10},
		},
	})

	want := []Annotation{
		&Text{
			Common:   Common{Rect: coord.Rect{X: 88, Y: 188, Width: 24, Height: 24}},
			Pos:      coord.Point{X: 100, Y: 200},
			Contents: "hello",
		},
		&Highlight{
			Common:  Common{Rect: coord.Rect{X: 72, Y: 100, Width: 100, Height: 12}},
			Color:   red,
			Regions: []coord.Rect{{X: 72, Y: 100, Width: 100, Height: 12}},
			// truncated to the 16 byte buffer
			Contents: "xxxxxxxx",
		},
		&Link{
			Common: Common{Rect: coord.Rect{X: 0, Y: 0, Width: 50, Height: 50}},
			Action: &action.URI{URI: "https://example.com"},
		},
		&Unknown{
			Common:  Common{Rect: coord.Rect{X: 0, Y: 790, Width: 10, Height: 10}},
			Subtype: engine.SubtypeWidget,
		},
	}
	if d := cmp.Diff(want, annots); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}
