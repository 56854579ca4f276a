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
	"log/slog"

	"seehuhn.de/go/pdfdom/annotation"
)

// Options can be used to configure a [Document].
// A nil *Options is equivalent to the zero value.
type Options struct {
	// ReadPassword is used by [Open] to query the password of an encrypted
	// document.  The argument is the number of previous attempts.
	// Returning the empty string gives up.
	ReadPassword func(try int) string

	// Logger receives debug messages.  If this is nil, nothing is logged.
	Logger *slog.Logger

	// NormalizeURIs causes link URIs to be normalized with
	// [action.NormalizeURI] when they are read or written.
	NormalizeURIs bool

	// ContentsBufferSize is the size, in bytes, of the buffer used to read
	// the text contents of annotations.  Longer texts are truncated.
	// If this is zero, [annotation.DefaultBufferSize] is used.
	ContentsBufferSize int
}

func (opt *Options) logger() *slog.Logger {
	if opt.Logger != nil {
		return opt.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (opt *Options) bufferSize() int {
	if opt.ContentsBufferSize > 0 {
		return opt.ContentsBufferSize
	}
	return annotation.DefaultBufferSize
}
