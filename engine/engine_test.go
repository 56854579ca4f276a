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

package engine

import (
	"errors"
	"fmt"
	"testing"
)

func TestUTF16RoundTrip(t *testing.T) {
	for _, s := range []string{"", "hello", "Grüße", "日本語", "a😀b"} {
		buf := EncodeUTF16(s)
		if len(buf)%2 != 0 || buf[len(buf)-1] != 0 || buf[len(buf)-2] != 0 {
			t.Errorf("%q: bad terminator in % x", s, buf)
		}
		if got := DecodeUTF16(buf); got != s {
			t.Errorf("round trip of %q gave %q", s, got)
		}
	}
}

func TestUTF16Truncated(t *testing.T) {
	s := "a😀b"
	full := EncodeUTF16(s) // a, hi, lo, b, 0
	cases := []struct {
		n    int
		want string
	}{
		{0, ""},
		{1, ""},
		{2, "a"},
		{3, "a"},
		{4, "a"}, // unpaired high surrogate is dropped
		{6, "a😀"},
		{8, "a😀b"},
	}
	for _, c := range cases {
		buf := make([]byte, c.n)
		need := CopyUTF16(s, buf)
		if need != len(full) {
			t.Errorf("need = %d, want %d", need, len(full))
		}
		if got := DecodeUTF16(buf); got != c.want {
			t.Errorf("n=%d: got %q, want %q", c.n, got, c.want)
		}
	}
}

func TestCode(t *testing.T) {
	cases := []struct {
		err  error
		want ErrorCode
	}{
		{nil, ErrSuccess},
		{ErrPassword, ErrPassword},
		{fmt.Errorf("open x.pdf: %w", ErrFormat), ErrFormat},
		{errors.New("boom"), ErrUnknown},
	}
	for _, c := range cases {
		if got := Code(c.err); got != c.want {
			t.Errorf("Code(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}

func TestSubtypeNames(t *testing.T) {
	for s := SubtypeUnknown; s <= SubtypeWidget; s++ {
		if got := SubtypeByName(s.Name()); got != s {
			t.Errorf("SubtypeByName(%q) = %v", s.Name(), got)
		}
	}
	if got := SubtypeByName("3D"); got != SubtypeUnknown {
		t.Errorf("SubtypeByName(3D) = %v", got)
	}
}
