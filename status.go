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
	"fmt"

	"seehuhn.de/go/pdfdom/engine"
)

// Status describes the outcome of loading a document.
type Status int

const (
	StatusNotLoaded Status = iota - 1
	StatusSuccess
	StatusFileError
	StatusFormatError
	StatusPasswordError
	StatusHandlerError
	StatusFileNotFound
)

func (s Status) String() string {
	switch s {
	case StatusNotLoaded:
		return "not loaded"
	case StatusSuccess:
		return "success"
	case StatusFileError:
		return "file error"
	case StatusFormatError:
		return "format error"
	case StatusPasswordError:
		return "password error"
	case StatusHandlerError:
		return "security handler error"
	case StatusFileNotFound:
		return "file not found"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// statusFromEngine maps an engine error to a load status.
// Unrecognised errors are reported as StatusFileError.
func statusFromEngine(err error) Status {
	switch engine.Code(err) {
	case engine.ErrSuccess:
		return StatusSuccess
	case engine.ErrFormat:
		return StatusFormatError
	case engine.ErrPassword:
		return StatusPasswordError
	case engine.ErrSecurity:
		return StatusHandlerError
	default:
		return StatusFileError
	}
}
