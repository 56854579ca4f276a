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
	"errors"
	"strconv"
)

var (
	// ErrPageRange is returned when a page index is out of range.
	ErrPageRange = errors.New("page index out of range")

	// ErrClosed is returned when a document is used after it has been
	// closed, or before it has been loaded successfully.
	ErrClosed = errors.New("document is not open")

	// ErrAnnotationNotFound is returned when an annotation is not part of
	// the annotation list of a page.
	ErrAnnotationNotFound = errors.New("annotation not found on page")

	// ErrNativeWrite is returned when the engine fails to store a change
	// to an annotation.
	ErrNativeWrite = errors.New("cannot write annotation")

	// ErrKindMismatch is returned when an annotation is updated with a
	// value of a different kind.
	ErrKindMismatch = errors.New("annotation kind mismatch")

	// ErrUnsupportedKind is returned when creating annotations of a kind
	// which cannot be created.
	ErrUnsupportedKind = errors.New("unsupported annotation kind")

	// ErrInvalidDraft is returned when an annotation value is incomplete.
	ErrInvalidDraft = errors.New("invalid annotation")
)

// LoadError is returned when a document cannot be loaded.
type LoadError struct {
	Path   string
	Status Status
	Err    error
}

func (err *LoadError) Error() string {
	tail := ""
	if err.Err != nil {
		tail = ": " + err.Err.Error()
	}
	return "cannot load " + strconv.Quote(err.Path) + " (" + err.Status.String() + ")" + tail
}

func (err *LoadError) Unwrap() error {
	return err.Err
}

// IsPasswordError reports whether err indicates that a document could not
// be loaded because of a missing or wrong password.
func IsPasswordError(err error) bool {
	var loadErr *LoadError
	return errors.As(err, &loadErr) && loadErr.Status == StatusPasswordError
}
