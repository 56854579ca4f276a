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

// Package pdfdom provides a page-level document model on top of a PDF
// engine.
//
// A [Document] is opened through an [engine.Engine], which does the actual
// parsing, text extraction and rendering.  The pages of a document are
// represented by [Page] values.  Page resources are loaded lazily, when they
// are first needed, and are kept until the document is closed.
//
// Each page keeps a list of its annotations (text notes, highlights and
// links), in the same order as the annotations are stored in the document.
// Annotations are created, changed and removed through the methods
// [Page.CreateAnnotation], [Page.UpdateAnnotation] and
// [Page.RemoveAnnotation], which update the document and the list together.
//
// All coordinates used by this package are in consumer space: the origin is
// the top-left corner of the page and y grows downwards.
//
//	doc, err := pdfdom.Open(eng, "in.pdf", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer doc.Close()
//
//	page, err := doc.Page(0)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, rect := range page.Search("cat", pdfdom.MatchWholeWord) {
//		fmt.Println(rect)
//	}
//
// A Document and its pages must not be used concurrently from different
// goroutines.
package pdfdom
