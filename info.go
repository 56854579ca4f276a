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

// Properties summarizes the document metadata.
//
// All string fields are empty if the corresponding entry is missing from
// the document information dictionary.
type Properties struct {
	// Version is the PDF version multiplied by 10, e.g. 17 for PDF-1.7.
	// If the version cannot be determined, this is 1.
	Version int

	Encrypted  bool
	Linearized bool

	Title    string
	Author   string
	Subject  string
	KeyWords string
	Creator  string
	Producer string
}

// Properties returns the document metadata.
// If the document is not loaded, the zero value is returned.
func (d *Document) Properties() Properties {
	if d.native == nil {
		return Properties{}
	}
	version, ok := d.native.FileVersion()
	if !ok {
		version = 1
	}
	return Properties{
		Version:    version,
		Encrypted:  d.IsEncrypted(),
		Linearized: d.native.IsLinearized(),
		Title:      d.native.MetaText("Title"),
		Author:     d.native.MetaText("Author"),
		Subject:    d.native.MetaText("Subject"),
		KeyWords:   d.native.MetaText("Keywords"),
		Creator:    d.native.MetaText("Creator"),
		Producer:   d.native.MetaText("Producer"),
	}
}

// Map returns the properties as a map, using the keys "Version",
// "Encrypted", "Linearized", "KeyWords", "Title", "Creator" and "Producer".
func (p Properties) Map() map[string]any {
	return map[string]any{
		"Version":    p.Version,
		"Encrypted":  p.Encrypted,
		"Linearized": p.Linearized,
		"KeyWords":   p.KeyWords,
		"Title":      p.Title,
		"Creator":    p.Creator,
		"Producer":   p.Producer,
	}
}
