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

// Package annotation implements the annotations of a page.
//
// Three kinds of annotations are modelled: text notes ([Text]), highlights
// ([Highlight]) and links ([Link]).  All other annotations are represented
// by [Unknown] values, which keep their position in the list of annotations
// of a page but carry no data.
//
// Annotation values are snapshots.  They are constructed from an engine
// annotation by [Reader.Read] and never refer back to the engine.  All
// coordinates are in consumer space, with the origin in the top-left corner
// of the page.
package annotation
