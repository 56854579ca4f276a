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
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfdom/destination"
	"seehuhn.de/go/pdfdom/engine"
	"seehuhn.de/go/pdfdom/engine/memengine"
	"seehuhn.de/go/pdfdom/internal/pagelabel"
)

func testData() *memengine.Doc {
	return &memengine.Doc{
		Version:    17,
		Linearized: true,
		Info: map[string]string{
			"Title":    "Cats",
			"Producer": "memengine",
		},
		Labels: []pagelabel.Range{
			{First: 0, Style: pagelabel.StyleLowerRoman},
			{First: 1, Style: pagelabel.StyleDecimal},
		},
		Outline: []*engine.Bookmark{
			{
				Title: "Cats",
				Dest:  engine.Dest{Page: 0, Y: 750, HasY: true},
				Children: []*engine.Bookmark{
					{Title: "Dogs", Dest: engine.Dest{Page: 1, Y: 400, HasY: true}},
				},
			},
		},
		Pages: []*memengine.PageData{
			{
				Width:  600,
				Height: 800,
				Lines: []memengine.Line{
					{X: 100, Y: 700, Size: 10, Text: "The cat sat on the mat."},
					{X: 100, Y: 680, Size: 10, Text: "Concatenate the category."},
				},
				Annots: []*memengine.AnnotData{
					{
						Subtype: engine.SubtypeLink,
						Rect:    rect.Rect{LLx: 0, LLy: 750, URx: 50, URy: 800},
						Action:  engine.Action{Kind: engine.ActionURI, URI: "https://example.com/"},
					},
					{
						Subtype: engine.SubtypeWidget,
						Rect:    rect.Rect{LLx: 300, LLy: 300, URx: 400, URy: 320},
					},
					{
						Subtype: engine.SubtypeLink,
						Rect:    rect.Rect{LLx: 100, LLy: 0, URx: 200, URy: 50},
						Dest:    &engine.Dest{Page: 1, Y: 400, HasY: true},
					},
				},
			},
			{
				Width:  600,
				Height: 500,
			},
		},
	}
}

// setup registers data with a new engine.  The engine is given a real file
// name, since documents check for the existence of files before calling
// the engine.
func setup(t *testing.T, data *memengine.Doc) (*memengine.Engine, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	e := memengine.New()
	e.Add(path, data)
	return e, path
}

func openTest(t *testing.T) (*memengine.Engine, *Document) {
	t.Helper()
	e, path := setup(t, testData())
	doc, err := Open(e, path, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { doc.Close() })
	return e, doc
}

func TestLoadStatus(t *testing.T) {
	errOther := errors.New("something went wrong")
	cases := []struct {
		name string
		data *memengine.Doc
		want Status
	}{
		{"ok", &memengine.Doc{Pages: []*memengine.PageData{{}}}, StatusSuccess},
		{"password", &memengine.Doc{Password: "secret"}, StatusPasswordError},
		{"format", &memengine.Doc{OpenError: engine.ErrFormat}, StatusFormatError},
		{"security", &memengine.Doc{OpenError: engine.ErrSecurity}, StatusHandlerError},
		{"file", &memengine.Doc{OpenError: engine.ErrFile}, StatusFileError},
		{"other", &memengine.Doc{OpenError: errOther}, StatusFileError},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, path := setup(t, c.data)
			doc := New(e, nil)
			if doc.Status() != StatusNotLoaded {
				t.Errorf("initial status %s", doc.Status())
			}
			err := doc.Load(path, "")
			if doc.Status() != c.want {
				t.Errorf("status = %s, want %s", doc.Status(), c.want)
			}
			if c.want == StatusSuccess {
				if err != nil || !doc.IsValid() || doc.PageCount() != 1 {
					t.Errorf("load failed: %v", err)
				}
				doc.Close()
				return
			}

			var loadErr *LoadError
			if !errors.As(err, &loadErr) || loadErr.Status != c.want {
				t.Errorf("wrong error %v", err)
			}
			if doc.IsValid() || doc.PageCount() != 0 {
				t.Errorf("failed document is usable")
			}
			if _, err := doc.Page(0); !errors.Is(err, ErrClosed) {
				t.Errorf("Page(0) on failed document: %v", err)
			}
		})
	}
}

func TestFileNotFound(t *testing.T) {
	e := memengine.New()
	path := filepath.Join(t.TempDir(), "missing.pdf")
	e.Add(path, testData()) // known to the engine, but not on disk

	doc := New(e, nil)
	err := doc.Load(path, "")
	if doc.Status() != StatusFileNotFound {
		t.Errorf("status = %s", doc.Status())
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error %v does not wrap ErrNotExist", err)
	}
	if e.Stats.Opens != 0 {
		t.Error("engine was called")
	}
}

func TestPassword(t *testing.T) {
	data := testData()
	data.Password = "secret"
	data.Permissions = 0xFFFFF0C0
	e, path := setup(t, data)

	doc, err := Open(e, path, nil)
	if !IsPasswordError(err) || doc != nil {
		t.Fatalf("no password: %v", err)
	}

	var tries []int
	opt := &Options{
		ReadPassword: func(try int) string {
			tries = append(tries, try)
			if try == 0 {
				return "wrong"
			}
			return "secret"
		},
	}
	doc, err = Open(e, path, opt)
	if err != nil {
		t.Fatal(err)
	}
	defer doc.Close()
	if d := cmp.Diff([]int{0, 1}, tries); d != "" {
		t.Errorf("tries: (-want +got):\n%s", d)
	}
	if !doc.IsEncrypted() || !doc.Properties().Encrypted {
		t.Error("document not reported as encrypted")
	}

	// giving up
	doc2, err := Open(e, path, &Options{ReadPassword: func(int) string { return "" }})
	if !IsPasswordError(err) || doc2 != nil {
		t.Errorf("expected password error, got %v", err)
	}
}

func TestPageIdentity(t *testing.T) {
	_, doc := openTest(t)

	p1, err := doc.Page(1)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := doc.Page(1)
	if err != nil {
		t.Fatal(err)
	}
	if p1 != p2 {
		t.Error("Page(1) returned different pages")
	}
	if p1.Index() != 1 || p1.Document() != doc {
		t.Error("wrong page back references")
	}

	for _, i := range []int{-1, 2, 100} {
		if _, err := doc.Page(i); !errors.Is(err, ErrPageRange) {
			t.Errorf("Page(%d): %v", i, err)
		}
	}
}

func TestProperties(t *testing.T) {
	_, doc := openTest(t)

	want := Properties{
		Version:    17,
		Linearized: true,
		Title:      "Cats",
		Producer:   "memengine",
	}
	if d := cmp.Diff(want, doc.Properties()); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
	m := doc.Properties().Map()
	if m["KeyWords"] != "" || m["Version"] != 17 {
		t.Errorf("bad map %v", m)
	}
	if doc.IsEncrypted() {
		t.Error("document reported as encrypted")
	}

	e, path := setup(t, &memengine.Doc{})
	doc2, err := Open(e, path, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer doc2.Close()
	if v := doc2.Properties().Version; v != 1 {
		t.Errorf("default version %d", v)
	}
}

func TestOutline(t *testing.T) {
	_, doc := openTest(t)

	o, err := doc.Outline()
	if err != nil {
		t.Fatal(err)
	}
	if len(o.Items) != 1 || len(o.Items[0].Children) != 1 {
		t.Fatalf("wrong outline structure")
	}
	unset := destination.Unset
	want := destination.XYZ{Page: 1, Left: unset, Top: 100, Zoom: unset}
	got := o.Items[0].Children[0].Destination
	if d := cmp.Diff(want, got, cmpopts.EquateNaNs()); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
	if top := o.Items[0].Destination.Top; top != 50 {
		t.Errorf("top = %g", top)
	}
}

func TestLabels(t *testing.T) {
	_, doc := openTest(t)
	for i, want := range []string{"i", "1"} {
		p, err := doc.Page(i)
		if err != nil {
			t.Fatal(err)
		}
		if got := p.Label(); got != want {
			t.Errorf("page %d: label %q, want %q", i, got, want)
		}
	}
}

func TestClose(t *testing.T) {
	e, doc := openTest(t)

	p, err := doc.Page(0)
	if err != nil {
		t.Fatal(err)
	}
	_ = p.Text()
	_ = p.Annotations()
	_ = p.Image(nil)
	if e.Stats.OpenHandles != 3 { // document, page, text page
		t.Errorf("%d open handles", e.Stats.OpenHandles)
	}

	if err := doc.Close(); err != nil {
		t.Fatal(err)
	}
	if e.Stats.OpenHandles != 0 {
		t.Errorf("%d handles still open", e.Stats.OpenHandles)
	}
	if p.IsValid() || doc.IsValid() {
		t.Error("still valid after Close")
	}
	if p.Text() != "" || p.Annotations() != nil || p.CharCount() != 0 || p.Width() != 0 {
		t.Error("closed page returned data")
	}
	if err := doc.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestSave(t *testing.T) {
	e, doc := openTest(t)
	if err := doc.Save("copy.pdf"); err != nil {
		t.Fatal(err)
	}
	copied, err := e.Open("copy.pdf", "")
	if err != nil {
		t.Fatal(err)
	}
	defer copied.Close()
	if copied.PageCount() != 2 {
		t.Errorf("copy has %d pages", copied.PageCount())
	}
}
