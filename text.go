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
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"seehuhn.de/go/pdfdom/coord"
	"seehuhn.de/go/pdfdom/engine"
)

// Flags for [Page.Search].
const (
	MatchCase      = engine.MatchCase
	MatchWholeWord = engine.MatchWholeWord
)

// CharCount returns the number of characters on the page.
func (p *Page) CharCount() int {
	tp, err := p.textPage()
	if err != nil {
		return 0
	}
	return tp.CountChars()
}

// Text returns all text on the page.
func (p *Page) Text() string {
	return p.TextRange(0, -1)
}

// TextRange returns count characters of text, starting at character index
// start.  A negative count selects all characters to the end of the page.
func (p *Page) TextRange(start, count int) string {
	tp, err := p.textPage()
	if err != nil {
		return ""
	}
	if count < 0 {
		count = tp.CountChars() - start
	}
	return tp.Text(start, count)
}

// TextInRect returns the text inside r.
// The rectangle may have negative width or height.
func (p *Page) TextInRect(r coord.Rect) string {
	tp, err := p.textPage()
	if err != nil {
		return ""
	}
	return tp.TextInRect(coord.RectToEngine(r, p.Height()))
}

// TextRects returns the rectangles covering count characters starting at
// character index start.  Characters on the same line are covered by a
// single rectangle.  A negative count selects all characters to the end of
// the page.
func (p *Page) TextRects(start, count int) []coord.Rect {
	tp, err := p.textPage()
	if err != nil {
		return nil
	}
	if count < 0 {
		count = -1
	}
	h := p.Height()
	var res []coord.Rect
	for _, r := range tp.Rects(start, count) {
		res = append(res, coord.RectToConsumer(r, h))
	}
	return res
}

// CharBox returns the bounding box of the character with index i.
func (p *Page) CharBox(i int) (coord.Rect, bool) {
	tp, err := p.textPage()
	if err != nil {
		return coord.Rect{}, false
	}
	r, ok := tp.CharBox(i)
	if !ok {
		return coord.Rect{}, false
	}
	return coord.RectToConsumer(r, p.Height()), true
}

// Search finds all occurrences of needle on the page and returns the
// rectangles covering the matches.  A match which spans several lines
// contributes one rectangle per line.
func (p *Page) Search(needle string, flags engine.SearchFlags) []coord.Rect {
	var res []coord.Rect
	for _, m := range p.SearchMatches(needle, flags) {
		res = append(res, m...)
	}
	return res
}

// SearchMatches is like [Page.Search], but returns the rectangles of
// each match separately.
func (p *Page) SearchMatches(needle string, flags engine.SearchFlags) [][]coord.Rect {
	needle = norm.NFC.String(needle)
	if needle == "" {
		return nil
	}
	tp, err := p.textPage()
	if err != nil {
		return nil
	}

	s, err := tp.Search(needle, flags, 0)
	if err != nil {
		p.doc.log.Debug("search failed", "page", p.index, "err", err)
		return nil
	}
	defer s.Close()

	n := utf8.RuneCountInString(needle)
	var res [][]coord.Rect
	for s.Next() {
		idx, _ := s.Result()
		res = append(res, p.TextRects(idx, n))
	}
	return res
}
