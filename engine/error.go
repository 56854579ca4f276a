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
)

// ErrorCode is an error reported by an engine.
// The numeric values follow the error codes of PDFium.
type ErrorCode int

const (
	ErrSuccess ErrorCode = iota
	ErrUnknown
	ErrFile
	ErrFormat
	ErrPassword
	ErrSecurity
	ErrPage
)

func (e ErrorCode) Error() string {
	switch e {
	case ErrSuccess:
		return "success"
	case ErrUnknown:
		return "unknown engine error"
	case ErrFile:
		return "file not found or could not be opened"
	case ErrFormat:
		return "file not in PDF format or corrupted"
	case ErrPassword:
		return "password required or incorrect password"
	case ErrSecurity:
		return "unsupported security scheme"
	case ErrPage:
		return "page not found or content error"
	default:
		return fmt.Sprintf("engine error %d", int(e))
	}
}

// ErrUnsupported is returned for operations an engine does not implement.
var ErrUnsupported = errors.New("operation not supported by engine")

// Code extracts the engine error code from err.
// Errors which do not wrap an [ErrorCode] map to ErrUnknown.
func Code(err error) ErrorCode {
	if err == nil {
		return ErrSuccess
	}
	var code ErrorCode
	if errors.As(err, &code) {
		return code
	}
	return ErrUnknown
}
