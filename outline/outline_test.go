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

package outline

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/pdfdom/destination"
	"seehuhn.de/go/pdfdom/engine"
)

func height(page int) (float64, bool) {
	if page >= 0 && page < 3 {
		return 800, true
	}
	return 0, false
}

func TestFromBookmarks(t *testing.T) {
	bookmarks := []*engine.Bookmark{
		{
			Title: "Chapter 1",
			Dest:  engine.Dest{Page: 0, Y: 750, HasY: true},
			Children: []*engine.Bookmark{
				{Title: "Section 1.1", Dest: engine.Dest{Page: 1, X: 72, Y: 400, HasX: true, HasY: true}},
			},
		},
		{
			Title: "Appendix",
			Dest:  engine.Dest{Page: 5, Y: 100, HasY: true},
		},
	}

	got, err := FromBookmarks(bookmarks, height)
	if err != nil {
		t.Fatal(err)
	}

	unset := destination.Unset
	want := &Outline{
		Items: []*Item{
			{
				Title:       "Chapter 1",
				Destination: destination.XYZ{Page: 0, Left: unset, Top: 50, Zoom: unset},
				Children: []*Item{
					{
						Title:       "Section 1.1",
						Destination: destination.XYZ{Page: 1, Left: 72, Top: 400, Zoom: unset},
					},
				},
			},
			{
				// page 5 is unknown, the coordinate is kept as is
				Title:       "Appendix",
				Destination: destination.XYZ{Page: 5, Left: unset, Top: 100, Zoom: unset},
			},
		},
	}
	if d := cmp.Diff(want, got, cmpopts.EquateNaNs()); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestEmpty(t *testing.T) {
	o, err := FromBookmarks(nil, height)
	if err != nil || o != nil {
		t.Errorf("got %v, %v", o, err)
	}
}

func TestLoop(t *testing.T) {
	a := &engine.Bookmark{Title: "A"}
	a.Children = []*engine.Bookmark{a}
	_, err := FromBookmarks([]*engine.Bookmark{a}, height)
	if err == nil {
		t.Error("loop not detected")
	}
}

func TestWrite(t *testing.T) {
	o := &Outline{}
	ch := o.AddItem("Intro")
	ch.Destination.Page = 0
	sec := ch.AddChild("Details")
	sec.Destination.Page = 2

	buf := &bytes.Buffer{}
	if err := o.Write(buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Intro  ...") || !strings.HasSuffix(lines[0], " page 1") {
		t.Errorf("bad line %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "  Details  ...") || !strings.HasSuffix(lines[1], " page 3") {
		t.Errorf("bad line %q", lines[1])
	}
}
