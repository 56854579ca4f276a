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
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/pdfdom/action"
	"seehuhn.de/go/pdfdom/annotation"
	"seehuhn.de/go/pdfdom/coord"
	"seehuhn.de/go/pdfdom/destination"
)

func firstPage(t *testing.T, doc *Document) *Page {
	t.Helper()
	p, err := doc.Page(0)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLazyLoading(t *testing.T) {
	e, doc := openTest(t)
	p := firstPage(t, doc)

	if p.Width() != 600 || p.Height() != 800 {
		t.Errorf("size %gx%g", p.Width(), p.Height())
	}
	if e.Stats.PageLoads != 0 || e.Stats.LitePageLoads != 0 {
		t.Error("page size required loading the page")
	}

	for range 3 {
		_ = p.Annotations()
	}
	if e.Stats.LitePageLoads != 1 || e.Stats.PageLoads != 0 {
		t.Errorf("annotations: %+v", e.Stats)
	}

	for range 3 {
		_ = p.CharCount()
		_ = p.Text()
		_ = p.Search("cat", 0)
	}
	if e.Stats.PageLoads != 1 || e.Stats.TextPageLoads != 1 {
		t.Errorf("text: %+v", e.Stats)
	}
	if e.Stats.OpenHandles != 3 {
		t.Errorf("%d open handles, want 3", e.Stats.OpenHandles)
	}
}

func TestFailedLoadIsRemembered(t *testing.T) {
	e, doc := openTest(t)
	p := firstPage(t, doc)

	e.Fault = func(op string) error {
		if op == "LoadTextPage" {
			return errTest
		}
		return nil
	}
	if p.Text() != "" || p.CharCount() != 0 {
		t.Error("text from failed text page")
	}
	e.Fault = nil
	if p.CharCount() != 0 {
		t.Error("text page was loaded twice")
	}
	if e.Stats.PageLoads != 1 {
		t.Errorf("%d page loads", e.Stats.PageLoads)
	}
}

func TestText(t *testing.T) {
	_, doc := openTest(t)
	p := firstPage(t, doc)

	want := "The cat sat on the mat.\nConcatenate the category."
	if got := p.Text(); got != want {
		t.Errorf("Text() = %q", got)
	}
	if n := p.CharCount(); n != len(want) {
		t.Errorf("CharCount() = %d, want %d", n, len(want))
	}
	if got := p.TextRange(4, 3); got != "cat" {
		t.Errorf("TextRange(4, 3) = %q", got)
	}

	// the same rectangle, given with negative width and height
	r := coord.Rect{X: 143, Y: 110, Width: -20, Height: -20}
	if got := p.TextInRect(r); got != "cat" {
		t.Errorf("TextInRect() = %q", got)
	}

	wantRects := []coord.Rect{{X: 124, Y: 92, Width: 18, Height: 10}}
	if d := cmp.Diff(wantRects, p.TextRects(4, 3)); d != "" {
		t.Errorf("TextRects: (-want +got):\n%s", d)
	}
	if n := len(p.TextRects(0, -1)); n != 2 {
		t.Errorf("%d rectangles for all text", n)
	}

	box, ok := p.CharBox(4)
	if !ok || box != (coord.Rect{X: 124, Y: 92, Width: 6, Height: 10}) {
		t.Errorf("CharBox(4) = %v, %t", box, ok)
	}
}

func TestSearch(t *testing.T) {
	_, doc := openTest(t)
	p := firstPage(t, doc)

	got := p.Search("cat", MatchWholeWord)
	want := []coord.Rect{{X: 124, Y: 92, Width: 18, Height: 10}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	if n := len(p.SearchMatches("cat", 0)); n != 3 {
		t.Errorf("%d matches, want 3", n)
	}
	if n := len(p.SearchMatches("Cat", MatchCase)); n != 0 {
		t.Errorf("%d case sensitive matches, want 0", n)
	}

	// a match across a line break gives one rectangle per line
	m := p.SearchMatches("mat.\nconcat", 0)
	if len(m) != 1 || len(m[0]) != 2 {
		t.Errorf("multi-line match: %v", m)
	}

	if p.Search("", 0) != nil {
		t.Error("empty needle matched")
	}
}

func TestImage(t *testing.T) {
	_, doc := openTest(t)
	p := firstPage(t, doc)

	img := p.Image(&ImageOptions{ScaleX: 0.5, ScaleY: 0.5})
	if b := img.Bounds(); b.Dx() != 300 || b.Dy() != 400 {
		t.Fatalf("image size %v", b)
	}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if c := img.RGBAAt(10, 390); c != white {
		t.Errorf("background %v", c)
	}
	if c := img.RGBAAt(51, 48); c == white {
		t.Error("text not rendered")
	}

	// the clip rectangle selects the part of the page around the text
	clip := image.Rect(40, 40, 60, 60)
	part := p.Image(&ImageOptions{ScaleX: 0.5, ScaleY: 0.5, Clip: clip})
	if b := part.Bounds(); b.Dx() != 20 || b.Dy() != 20 {
		t.Fatalf("clipped image size %v", b)
	}
	if c := part.RGBAAt(11, 8); c == white {
		t.Error("text not rendered in clipped image")
	}

	doc.Close()
	if b := p.Image(nil).Bounds(); !b.Empty() {
		t.Errorf("closed page rendered %v", b)
	}
}

func TestLinkAtPoint(t *testing.T) {
	_, doc := openTest(t)
	p := firstPage(t, doc)

	a, ok := p.LinkAtPoint(coord.Point{X: 25, Y: 25})
	if !ok {
		t.Fatal("no link found")
	}
	if d := cmp.Diff(action.Action(&action.URI{URI: "https://example.com/"}), a); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	a, ok = p.LinkAtPoint(coord.Point{X: 150, Y: 780})
	if !ok {
		t.Fatal("no link found")
	}
	unset := destination.Unset
	want := &action.GoTo{Dest: destination.XYZ{Page: 1, Left: unset, Top: 100, Zoom: unset}}
	if d := cmp.Diff(action.Action(want), a, cmpopts.EquateNaNs()); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	if _, ok := p.LinkAtPoint(coord.Point{X: 300, Y: 300}); ok {
		t.Error("found link in empty area")
	}
}

func TestViews(t *testing.T) {
	_, doc := openTest(t)
	p := firstPage(t, doc)

	all := p.Annotations()
	if len(all) != 3 {
		t.Fatalf("%d annotations", len(all))
	}
	kinds := []annotation.Kind{annotation.KindLink, annotation.KindUnknown, annotation.KindLink}
	for i, a := range all {
		if a.Kind() != kinds[i] {
			t.Errorf("annotation %d is %s", i, a.Kind())
		}
	}

	links := p.Links()
	if len(links) != 2 || annotation.Annotation(links[0]) != all[0] || annotation.Annotation(links[1]) != all[2] {
		t.Errorf("wrong links %v", links)
	}
	if links[0].URI() != "https://example.com/" {
		t.Errorf("URI %q", links[0].URI())
	}
	if n := len(p.NotesAndHighlights()); n != 0 {
		t.Errorf("%d notes", n)
	}

	// modifying the returned slice does not affect the page
	all[0] = nil
	if p.Annotations()[0] == nil {
		t.Error("Annotations() returned the internal slice")
	}
}

func TestNormalizeURIs(t *testing.T) {
	data := testData()
	data.Pages[0].Annots[0].Action.URI = "WWW.Example.com/x"
	e, path := setup(t, data)
	doc, err := Open(e, path, &Options{NormalizeURIs: true})
	if err != nil {
		t.Fatal(err)
	}
	defer doc.Close()
	p := firstPage(t, doc)

	if u := p.Links()[0].URI(); u != "http://www.example.com/x" {
		t.Errorf("mirror URI %q", u)
	}
	a, _ := p.LinkAtPoint(coord.Point{X: 25, Y: 25})
	if u := a.(*action.URI).URI; u != "http://www.example.com/x" {
		t.Errorf("LinkAtPoint URI %q", u)
	}
}
