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

package memengine

import (
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfdom/engine"
)

// pitch is the advance width of a character, as a fraction of the font size.
const pitch = 0.6

type char struct {
	r    rune
	line int
	box  rect.Rect
}

// layout converts lines of text into a sequence of characters.
// Lines are separated by a generated '\n' character with an empty box.
func layout(lines []Line) []char {
	var res []char
	for i, l := range lines {
		if i > 0 {
			res = append(res, char{r: '\n', line: -1})
		}
		w := pitch * l.Size
		x := l.X
		for _, r := range l.Text {
			res = append(res, char{
				r:    r,
				line: i,
				box: rect.Rect{
					LLx: x,
					LLy: l.Y - 0.2*l.Size,
					URx: x + w,
					URy: l.Y + 0.8*l.Size,
				},
			})
			x += w
		}
	}
	return res
}

type textPage struct {
	handle
	chars []char
}

var _ engine.TextPage = (*textPage)(nil)

func (t *textPage) Close() error {
	return t.release()
}

func (t *textPage) CountChars() int {
	return len(t.chars)
}

func (t *textPage) clip(start, count int) (int, int) {
	n := len(t.chars)
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	end := n
	if count >= 0 && start+count < n {
		end = start + count
	}
	return start, end
}

func (t *textPage) Text(start, count int) string {
	start, end := t.clip(start, count)
	var b strings.Builder
	for _, c := range t.chars[start:end] {
		b.WriteRune(c.r)
	}
	return b.String()
}

func (t *textPage) TextInRect(r rect.Rect) string {
	var b strings.Builder
	line := -1
	for _, c := range t.chars {
		if c.line < 0 {
			continue
		}
		cx := (c.box.LLx + c.box.URx) / 2
		cy := (c.box.LLy + c.box.URy) / 2
		if cx < r.LLx || cx > r.URx || cy < r.LLy || cy > r.URy {
			continue
		}
		if line >= 0 && c.line != line {
			b.WriteByte('\n')
		}
		line = c.line
		b.WriteRune(c.r)
	}
	return b.String()
}

func (t *textPage) Rects(start, count int) []rect.Rect {
	start, end := t.clip(start, count)
	var res []rect.Rect
	line := -1
	for _, c := range t.chars[start:end] {
		if c.line < 0 {
			line = -1
			continue
		}
		if c.line == line && len(res) > 0 {
			last := &res[len(res)-1]
			last.LLx = math.Min(last.LLx, c.box.LLx)
			last.LLy = math.Min(last.LLy, c.box.LLy)
			last.URx = math.Max(last.URx, c.box.URx)
			last.URy = math.Max(last.URy, c.box.URy)
			continue
		}
		res = append(res, c.box)
		line = c.line
	}
	return res
}

func (t *textPage) CharBox(i int) (rect.Rect, bool) {
	if i < 0 || i >= len(t.chars) || t.chars[i].line < 0 {
		return rect.Rect{}, false
	}
	return t.chars[i].box, true
}

func (t *textPage) Search(needle string, flags engine.SearchFlags, start int) (engine.Search, error) {
	t.e.Stats.Searches++
	s := &search{
		handle: t.e.newHandle(),
		index:  -1,
	}

	pattern := []rune(needle)
	if len(pattern) == 0 {
		return s, nil
	}
	fold := func(r rune) string { return string(r) }
	if flags&engine.MatchCase == 0 {
		caser := cases.Fold()
		fold = func(r rune) string { return caser.String(string(r)) }
	}
	want := make([]string, len(pattern))
	for i, r := range pattern {
		want[i] = fold(r)
	}

	if start < 0 {
		start = 0
	}
	for i := start; i+len(pattern) <= len(t.chars); i++ {
		ok := true
		for k := range pattern {
			if fold(t.chars[i+k].r) != want[k] {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		if flags&engine.MatchWholeWord != 0 && !t.isWordBoundary(i, i+len(pattern)) {
			continue
		}
		s.matches = append(s.matches, i)
		i += len(pattern) - 1
	}
	s.count = len(pattern)
	return s, nil
}

func (t *textPage) isWordBoundary(start, end int) bool {
	if start > 0 && isWordChar(t.chars[start-1].r) {
		return false
	}
	if end < len(t.chars) && isWordChar(t.chars[end].r) {
		return false
	}
	return true
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

type search struct {
	handle
	matches []int
	count   int
	pos     int
	index   int
}

func (s *search) Next() bool {
	if s.pos >= len(s.matches) {
		s.index = -1
		return false
	}
	s.index = s.matches[s.pos]
	s.pos++
	return true
}

func (s *search) Result() (int, int) {
	if s.index < 0 {
		return -1, 0
	}
	return s.index, s.count
}

func (s *search) Close() error {
	return s.release()
}
