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

// Package outline represents the document outline (bookmarks).
package outline

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"seehuhn.de/go/pdfdom/action"
	"seehuhn.de/go/pdfdom/destination"
	"seehuhn.de/go/pdfdom/engine"
)

// Outline represents the root of a document outline.
// Use [FromBookmarks] to convert the outline reported by an engine, or
// create a new outline and populate it using [Outline.AddItem].
type Outline struct {
	// Items contains the top-level outline items.
	Items []*Item
}

// Item represents an outline item, with a title and a destination.
// This is used both for leaves and for internal nodes in the outline tree (apart from the root).
// Items form a tree structure via the Children field.
type Item struct {
	// Title is the text displayed for this outline item.
	Title string

	// Destination specifies the view to show when the outline item is activated.
	Destination destination.XYZ

	// Children contains the child outline items (e.g. subsections of a section).
	Children []*Item
}

// AddItem appends a new top-level item with the given title and returns it.
func (o *Outline) AddItem(title string) *Item {
	item := &Item{
		Title: title,
	}
	o.Items = append(o.Items, item)
	return item
}

// AddChild appends a new child item with the given title and returns it.
func (item *Item) AddChild(title string) *Item {
	child := &Item{
		Title: title,
	}
	item.Children = append(item.Children, child)
	return child
}

// maxItems limits the size of outlines, to protect against
// malicious files.
const maxItems = 65536

var errTooLarge = errors.New("outline too large")

// FromBookmarks converts the bookmarks reported by an engine.
// Destination coordinates are converted to consumer space, using
// height to look up the height of target pages.
// Returns nil if the document has no outline.
func FromBookmarks(bookmarks []*engine.Bookmark, height action.PageHeightFunc) (*Outline, error) {
	if len(bookmarks) == 0 {
		return nil, nil
	}

	c := &converter{
		height: height,
		seen:   make(map[*engine.Bookmark]bool),
	}
	o := &Outline{}
	for _, b := range bookmarks {
		item := o.AddItem(b.Title)
		if err := c.fill(item, b); err != nil {
			return nil, err
		}
	}
	return o, nil
}

type converter struct {
	height action.PageHeightFunc
	seen   map[*engine.Bookmark]bool
}

func (c *converter) fill(item *Item, b *engine.Bookmark) error {
	if c.seen[b] {
		return errors.New("outline tree contains a loop")
	}
	c.seen[b] = true
	if len(c.seen) > maxItems {
		return errTooLarge
	}

	item.Destination = destination.Raw(b.Dest)
	if c.height != nil {
		if h, ok := c.height(b.Dest.Page); ok {
			item.Destination = destination.FromEngine(b.Dest, h)
		}
	}

	for _, child := range b.Children {
		if err := c.fill(item.AddChild(child.Title), child); err != nil {
			return err
		}
	}
	return nil
}

// Write prints the outline as an indented list, with page numbers.
func (o *Outline) Write(w io.Writer) error {
	for _, item := range o.Items {
		if err := item.write(w, ""); err != nil {
			return err
		}
	}
	return nil
}

func (item *Item) write(w io.Writer, indent string) error {
	line := indent + item.Title
	pageLabel := fmt.Sprintf(" page %d", item.Destination.Page+1)
	rep := max(70-len(line), 3)
	line += "  " + strings.Repeat(".", rep) + pageLabel
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}
	for _, child := range item.Children {
		if err := child.write(w, indent+"  "); err != nil {
			return err
		}
	}
	return nil
}
