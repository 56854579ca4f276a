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
	"golang.org/x/text/encoding/unicode"
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// EncodeUTF16 encodes s as UTF-16LE, followed by a two-byte terminator.
func EncodeUTF16(s string) []byte {
	buf, err := utf16le.NewEncoder().Bytes([]byte(s))
	if err != nil {
		// invalid UTF-8 was replaced, this cannot fail
		panic(err)
	}
	return append(buf, 0, 0)
}

// DecodeUTF16 decodes a UTF-16LE string.  Decoding stops at the first
// zero code unit.  A trailing odd byte and an unpaired high surrogate at
// the end of a truncated buffer are ignored.
func DecodeUTF16(buf []byte) string {
	n := len(buf) &^ 1
	for i := 0; i < n; i += 2 {
		if buf[i] == 0 && buf[i+1] == 0 {
			n = i
			break
		}
	}
	if n >= 2 {
		last := uint16(buf[n-2]) | uint16(buf[n-1])<<8
		if last >= 0xD800 && last < 0xDC00 {
			n -= 2
		}
	}
	res, err := utf16le.NewDecoder().Bytes(buf[:n])
	if err != nil {
		return ""
	}
	return string(res)
}

// CopyUTF16 implements the buffer protocol of [Annot.StringValue]:
// the encoded value of s is copied into buf, truncated if necessary,
// and the number of bytes needed for the full value is returned.
func CopyUTF16(s string, buf []byte) int {
	enc := EncodeUTF16(s)
	copy(buf, enc)
	return len(enc)
}
