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

// Package cpuengine implements an engine on top of the pdfcpu library.
//
// The engine supports reading document metadata, outlines, page labels
// and annotations, creating and removing annotations, and saving the
// modified document.  Text extraction and rendering are not supported;
// the corresponding methods return [engine.ErrUnsupported].
package cpuengine

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"seehuhn.de/go/pdfdom/engine"
	"seehuhn.de/go/pdfdom/internal/pagelabel"
)

// Engine opens PDF files using pdfcpu.
type Engine struct {
	// Validate enables validation of documents after reading.
	Validate bool
}

var _ engine.Engine = (*Engine)(nil)

// New returns a new engine.
func New() *Engine {
	return &Engine{Validate: true}
}

// Open implements the [engine.Engine] interface.
func (e *Engine) Open(path string, password string) (engine.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", engine.ErrFile, err)
	}

	conf := model.NewDefaultConfiguration()
	if password != "" {
		conf.UserPW = password
		conf.OwnerPW = password
	}
	ctx, err := api.ReadContext(f, conf)
	if err != nil {
		f.Close()
		if errors.Is(err, pdfcpu.ErrWrongPassword) {
			return nil, fmt.Errorf("%w: %w", engine.ErrPassword, err)
		}
		return nil, fmt.Errorf("%w: %w", engine.ErrFormat, err)
	}
	if e.Validate {
		if err := api.ValidateContext(ctx); err != nil {
			f.Close()
			return nil, fmt.Errorf("%w: %w", engine.ErrFormat, err)
		}
	}
	// Without validation, the page count is not filled in by pdfcpu.
	if err := ctx.EnsurePageCount(); err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %w", engine.ErrFormat, err)
	}

	d := &document{
		ctx:  ctx,
		file: f,
	}
	if err := d.indexPages(); err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %w", engine.ErrFormat, err)
	}
	return d, nil
}

type document struct {
	ctx  *model.Context
	file *os.File

	// pageIndex maps the object numbers of page dictionaries
	// to zero-based page indices.
	pageIndex map[int]int
	labels    []pagelabel.Range
}

var (
	_ engine.Document = (*document)(nil)
	_ engine.Saver    = (*document)(nil)
)

func (d *document) indexPages() error {
	d.pageIndex = make(map[int]int, d.ctx.PageCount)
	for i := 1; i <= d.ctx.PageCount; i++ {
		_, ref, _, err := d.ctx.PageDict(i, false)
		if err != nil {
			return err
		}
		if ref != nil {
			d.pageIndex[ref.ObjectNumber.Value()] = i - 1
		}
	}
	d.labels = d.readLabels()
	return nil
}

func (d *document) Close() error {
	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	d.ctx = nil
	return err
}

func (d *document) PageCount() int {
	return d.ctx.PageCount
}

func (d *document) PageSize(i int) (float64, float64, error) {
	_, _, attrs, err := d.pageDict(i)
	if err != nil {
		return 0, 0, err
	}
	if attrs == nil || attrs.MediaBox == nil {
		return 612, 792, nil
	}
	return attrs.MediaBox.Width(), attrs.MediaBox.Height(), nil
}

func (d *document) pageDict(i int) (types.Dict, *types.IndirectRef, *model.InheritedPageAttrs, error) {
	if i < 0 || i >= d.ctx.PageCount {
		return nil, nil, nil, engine.ErrPage
	}
	dict, ref, attrs, err := d.ctx.PageDict(i+1, false)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %w", engine.ErrPage, err)
	}
	if dict == nil {
		return nil, nil, nil, engine.ErrPage
	}
	return dict, ref, attrs, nil
}

func (d *document) LoadPage(i int, mode engine.LoadMode) (engine.Page, error) {
	dict, ref, attrs, err := d.pageDict(i)
	if err != nil {
		return nil, err
	}
	p := &page{
		doc:    d,
		dict:   dict,
		ref:    ref,
		width:  612,
		height: 792,
	}
	if attrs != nil && attrs.MediaBox != nil {
		p.width = attrs.MediaBox.Width()
		p.height = attrs.MediaBox.Height()
	}
	return p, nil
}

func (d *document) PageLabel(i int) string {
	return pagelabel.Format(d.labels, i)
}

func (d *document) readLabels() []pagelabel.Range {
	root := d.ctx.RootDict
	if root == nil {
		return nil
	}
	obj, ok := root.Find("PageLabels")
	if !ok {
		return nil
	}
	labels, err := d.ctx.DereferenceDict(obj)
	if err != nil || labels == nil {
		return nil
	}
	nums, err := d.ctx.DereferenceArray(labels["Nums"])
	if err != nil {
		return nil
	}

	var res []pagelabel.Range
	for k := 0; k+1 < len(nums); k += 2 {
		first, ok := d.number(nums[k])
		if !ok {
			continue
		}
		dict, err := d.ctx.DereferenceDict(nums[k+1])
		if err != nil || dict == nil {
			continue
		}
		r := pagelabel.Range{First: int(first)}
		if s := dict.NameEntry("S"); s != nil {
			r.Style = pagelabel.Style(*s)
		}
		r.Prefix = d.text(dict["P"])
		if st, ok := d.number(dict["St"]); ok {
			r.Start = int(st)
		}
		res = append(res, r)
	}
	return res
}

func (d *document) FileVersion() (int, bool) {
	v := d.ctx.VersionString()
	major, minor, ok := strings.Cut(v, ".")
	if !ok {
		return 0, false
	}
	a, err1 := strconv.Atoi(major)
	b, err2 := strconv.Atoi(minor)
	if err1 != nil || err2 != nil {
		return 0, false
	}
	return 10*a + b, true
}

func (d *document) Permissions() uint32 {
	if d.ctx.Encrypt == nil || d.ctx.E == nil {
		return 0xFFFFFFFF
	}
	return uint32(int32(d.ctx.E.P))
}

func (d *document) IsLinearized() bool {
	return d.ctx.Read != nil && d.ctx.Read.Linearized
}

func (d *document) MetaText(tag string) string {
	if d.ctx.Info == nil {
		return ""
	}
	info, err := d.ctx.DereferenceDict(*d.ctx.Info)
	if err != nil || info == nil {
		return ""
	}
	return d.text(info[tag])
}

// SaveAs implements the [engine.Saver] interface.
func (d *document) SaveAs(path string) error {
	return api.WriteContextFile(d.ctx, path)
}
