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
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pdfdom"
	"seehuhn.de/go/pdfdom/action"
	"seehuhn.de/go/pdfdom/annotation"
	"seehuhn.de/go/pdfdom/coord"
)

// TestDocumentModel edits a file through a pdfdom.Document backed by this
// engine, saves it, and reads the result back.
func TestDocumentModel(t *testing.T) {
	doc, err := pdfdom.Open(New(), writeTestFile(t), nil)
	if err != nil {
		t.Fatal(err)
	}
	if n := doc.PageCount(); n != 1 {
		t.Fatalf("PageCount: got %d, want 1", n)
	}
	if title := doc.Properties().Title; title != "Test" {
		t.Errorf("Title: got %q", title)
	}

	page, err := doc.Page(0)
	if err != nil {
		t.Fatal(err)
	}
	if l := page.Label(); l != "i" {
		t.Errorf("Label: got %q", l)
	}
	links := page.Links()
	if len(links) != 1 || links[0].URI() != "https://example.com/" {
		t.Fatalf("wrong links %v", links)
	}
	act, ok := page.LinkAtPoint(coord.Point{X: 50, Y: 770})
	if u, isURI := act.(*action.URI); !ok || !isURI || u.URI != "https://example.com/" {
		t.Errorf("LinkAtPoint: got %v, %t", act, ok)
	}

	note, err := page.CreateAnnotation(&annotation.Text{
		Pos:      coord.Point{X: 100, Y: 200},
		Contents: "Grüße",
	})
	if err != nil {
		t.Fatal(err)
	}
	region := coord.Rect{X: 100, Y: 300, Width: 50, Height: 12}
	_, err = page.CreateAnnotation(&annotation.Highlight{
		Regions: []coord.Rect{region},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := page.RemoveAnnotation(links[0]); err != nil {
		t.Fatal(err)
	}
	if n := len(page.Annotations()); n != 2 {
		t.Fatalf("page has %d annotations, want 2", n)
	}
	if page.Annotations()[0] != note {
		t.Error("note is not the first annotation")
	}

	out := filepath.Join(t.TempDir(), "out.pdf")
	if err := doc.Save(out); err != nil {
		t.Fatal(err)
	}
	if err := doc.Close(); err != nil {
		t.Fatal(err)
	}

	doc, err = pdfdom.Open(&Engine{}, out, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer doc.Close()
	page, err = doc.Page(0)
	if err != nil {
		t.Fatal(err)
	}

	annots := page.Annotations()
	if len(annots) != 2 {
		t.Fatalf("saved page has %d annotations, want 2", len(annots))
	}
	text, ok := annots[0].(*annotation.Text)
	if !ok {
		t.Fatalf("annotation 0 is %s, want Text", annots[0].Kind())
	}
	if text.Contents != "Grüße" {
		t.Errorf("Contents: got %q", text.Contents)
	}
	if text.Pos != (coord.Point{X: 100, Y: 200}) {
		t.Errorf("Pos: got %v", text.Pos)
	}
	hl, ok := annots[1].(*annotation.Highlight)
	if !ok {
		t.Fatalf("annotation 1 is %s, want Highlight", annots[1].Kind())
	}
	if d := cmp.Diff([]coord.Rect{region}, hl.Regions); d != "" {
		t.Errorf("regions mismatch (-want +got):\n%s", d)
	}
	if hl.Color != annotation.DefaultHighlightColor {
		t.Errorf("Color: got %v", hl.Color)
	}
	if n := len(page.Links()); n != 0 {
		t.Errorf("saved page has %d links", n)
	}
}
