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
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"seehuhn.de/go/pdfdom/engine"
	"seehuhn.de/go/pdfdom/outline"
)

// Document is a document opened through an engine.
type Document struct {
	eng engine.Engine
	opt Options
	log *slog.Logger

	status Status
	path   string
	native engine.Document

	pageCount int
	pages     []*Page
}

// New returns a new document which uses eng to access files.
// The document is not loaded yet, use [Document.Load] to load a file.
func New(eng engine.Engine, opt *Options) *Document {
	if opt == nil {
		opt = &Options{}
	}
	return &Document{
		eng:    eng,
		opt:    *opt,
		log:    opt.logger(),
		status: StatusNotLoaded,
	}
}

// Open loads the document stored in the named file.
//
// If the file is encrypted and opt.ReadPassword is set, the function
// is called to obtain passwords until the document can be decrypted or
// ReadPassword returns the empty string.
func Open(eng engine.Engine, path string, opt *Options) (*Document, error) {
	d := New(eng, opt)
	err := d.Load(path, "")
	for try := 0; IsPasswordError(err) && d.opt.ReadPassword != nil; try++ {
		passwd := d.opt.ReadPassword(try)
		if passwd == "" {
			break
		}
		err = d.Load(path, passwd)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Load loads the document stored in the named file.
// Any previously loaded document is closed first.
//
// On failure, the returned error is a [*LoadError], the document reports
// the failure reason via [Document.Status], and the document has no pages.
func (d *Document) Load(path, password string) error {
	if d.native != nil {
		d.Close()
	}
	d.path = path
	d.pageCount = 0
	d.pages = nil

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		d.status = StatusFileNotFound
		return &LoadError{Path: path, Status: d.status, Err: err}
	}

	native, err := d.eng.Open(path, password)
	if err != nil {
		d.status = statusFromEngine(err)
		d.log.Debug("load failed", "path", path, "status", d.status, "err", err)
		return &LoadError{Path: path, Status: d.status, Err: err}
	}

	d.native = native
	d.status = StatusSuccess
	d.pageCount = native.PageCount()
	d.pages = make([]*Page, d.pageCount)
	d.log.Debug("document loaded", "path", path, "pages", d.pageCount)
	return nil
}

// Status returns the outcome of the last call to [Document.Load].
func (d *Document) Status() Status {
	return d.status
}

// IsValid reports whether the document has been loaded successfully and
// has not been closed.
func (d *Document) IsValid() bool {
	return d.native != nil
}

// Filename returns the name of the file the document was loaded from.
func (d *Document) Filename() string {
	return d.path
}

// PageCount returns the number of pages.
// This is zero if the document could not be loaded.
func (d *Document) PageCount() int {
	return d.pageCount
}

// IsEncrypted reports whether the document is encrypted.
func (d *Document) IsEncrypted() bool {
	if d.native == nil {
		return false
	}
	return d.native.Permissions() != 0xFFFFFFFF
}

// Page returns the page with index i.  Pages are numbered starting from 0.
// Repeated calls with the same index return the same *Page.
func (d *Document) Page(i int) (*Page, error) {
	if d.native == nil {
		return nil, ErrClosed
	}
	if i < 0 || i >= d.pageCount {
		return nil, fmt.Errorf("page %d of %d: %w", i, d.pageCount, ErrPageRange)
	}
	if d.pages[i] == nil {
		d.pages[i] = &Page{doc: d, index: i}
	}
	return d.pages[i], nil
}

// pageHeight returns the height of page i in PDF units.
func (d *Document) pageHeight(i int) (float64, bool) {
	p, err := d.Page(i)
	if err != nil {
		return 0, false
	}
	size, err := p.pageSize()
	if err != nil {
		return 0, false
	}
	return size.Height, true
}

// Outline returns the document outline.
// If the document has no outline, nil is returned.
func (d *Document) Outline() (*outline.Outline, error) {
	if d.native == nil {
		return nil, ErrClosed
	}
	bookmarks, err := d.native.Outline()
	if err != nil {
		return nil, err
	}
	return outline.FromBookmarks(bookmarks, d.pageHeight)
}

// Save writes the document, including all annotation changes, to the
// named file.  This requires an engine which supports saving.
func (d *Document) Save(path string) error {
	if d.native == nil {
		return ErrClosed
	}
	saver, ok := d.native.(engine.Saver)
	if !ok {
		return fmt.Errorf("save %q: %w", path, engine.ErrUnsupported)
	}
	return saver.SaveAs(path)
}

// Close releases all resources held by the document and its pages.
// After Close, all pages report [Page.IsValid] as false.
func (d *Document) Close() error {
	if d.native == nil {
		return nil
	}
	var errs []error
	for _, p := range d.pages {
		if p != nil {
			errs = append(errs, p.release())
		}
	}
	errs = append(errs, d.native.Close())
	d.native = nil
	d.log.Debug("document closed", "path", d.path)
	return errors.Join(errs...)
}
