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

package cpuengine

import (
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"seehuhn.de/go/pdfdom/engine"
)

// maxOutlineItems limits the number of outline items read from a file.
const maxOutlineItems = 65536

func (d *document) Outline() ([]*engine.Bookmark, error) {
	root := d.ctx.RootDict
	if root == nil {
		return nil, nil
	}
	obj, ok := root.Find("Outlines")
	if !ok {
		return nil, nil
	}
	outlines, err := d.ctx.DereferenceDict(obj)
	if err != nil {
		return nil, engine.ErrFormat
	}
	if outlines == nil {
		return nil, nil
	}

	seen := make(map[int]bool)
	return d.outlineLevel(outlines["First"], seen)
}

func (d *document) outlineLevel(first types.Object, seen map[int]bool) ([]*engine.Bookmark, error) {
	var res []*engine.Bookmark
	next := first
	for next != nil {
		ref, ok := next.(types.IndirectRef)
		if !ok {
			return res, engine.ErrFormat
		}
		nr := ref.ObjectNumber.Value()
		if seen[nr] {
			return res, engine.ErrFormat
		}
		seen[nr] = true
		if len(seen) > maxOutlineItems {
			return res, engine.ErrFormat
		}

		dict, err := d.ctx.DereferenceDict(ref)
		if err != nil || dict == nil {
			return res, engine.ErrFormat
		}

		b := &engine.Bookmark{Title: d.text(dict["Title"])}
		if dest, ok := dict.Find("Dest"); ok {
			b.Dest, _ = d.dest(dest)
		} else if a, ok := dict.Find("A"); ok {
			if act := d.action(a); act.Kind == engine.ActionGoTo {
				b.Dest = act.Dest
			}
		}
		if child, ok := dict.Find("First"); ok {
			b.Children, err = d.outlineLevel(child, seen)
			if err != nil {
				return res, err
			}
		}
		res = append(res, b)

		next = dict["Next"]
	}
	return res, nil
}
