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

// Package pagelabel formats page labels.
//
// A page label consists of an optional prefix and a number, formatted in one
// of the numbering styles defined for the PDF /PageLabels number tree.
package pagelabel

import (
	"strconv"
	"strings"
)

// Style is a page label numbering style.
type Style string

const (
	StyleNone       Style = ""
	StyleDecimal    Style = "D"
	StyleUpperRoman Style = "R"
	StyleLowerRoman Style = "r"
	StyleUpperAlpha Style = "A"
	StyleLowerAlpha Style = "a"
)

// Range describes the labelling of a contiguous range of pages.
// The range starts at page index First and extends to the start of the
// next range.
type Range struct {
	First  int
	Style  Style
	Prefix string

	// Start is the numeric value for the first page of the range.
	// Values smaller than 1 are treated as 1.
	Start int
}

// Format returns the label of the page with the given index.
// The ranges must be sorted by First.  If no range covers the page,
// the empty string is returned.
func Format(ranges []Range, page int) string {
	idx := -1
	for i, r := range ranges {
		if r.First > page {
			break
		}
		idx = i
	}
	if idx < 0 {
		return ""
	}
	r := ranges[idx]
	start := r.Start
	if start < 1 {
		start = 1
	}
	return r.Prefix + Number(r.Style, start+page-r.First)
}

// Number formats n in the given style.
func Number(style Style, n int) string {
	switch style {
	case StyleDecimal:
		return strconv.Itoa(n)
	case StyleUpperRoman:
		return strings.ToUpper(roman(n))
	case StyleLowerRoman:
		return roman(n)
	case StyleUpperAlpha:
		return strings.ToUpper(letters(n))
	case StyleLowerAlpha:
		return letters(n)
	default:
		return ""
	}
}

var romanDigits = []struct {
	value int
	text  string
}{
	{1000, "m"}, {900, "cm"}, {500, "d"}, {400, "cd"},
	{100, "c"}, {90, "xc"}, {50, "l"}, {40, "xl"},
	{10, "x"}, {9, "ix"}, {5, "v"}, {4, "iv"}, {1, "i"},
}

func roman(n int) string {
	if n <= 0 {
		return strconv.Itoa(n)
	}
	var b strings.Builder
	for _, d := range romanDigits {
		for n >= d.value {
			b.WriteString(d.text)
			n -= d.value
		}
	}
	return b.String()
}

// letters implements the "a" to "z", "aa" to "zz", ... sequence.
func letters(n int) string {
	if n <= 0 {
		return strconv.Itoa(n)
	}
	c := byte('a' + (n-1)%26)
	return strings.Repeat(string(c), (n-1)/26+1)
}
