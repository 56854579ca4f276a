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

// Package action implements the actions which can be attached to links
// and outline items.
package action

import (
	"seehuhn.de/go/pdfdom/destination"
	"seehuhn.de/go/pdfdom/engine"
)

// Type identifies the type of an action.
type Type string

const (
	TypeGoTo        Type = "GoTo"
	TypeGoToR       Type = "GoToR"
	TypeURI         Type = "URI"
	TypeLaunch      Type = "Launch"
	TypeUnsupported Type = "Unsupported"
)

// Action represents an action.
type Action interface {
	// ActionType returns the type of the action, e.g. "GoTo" or "URI".
	ActionType() Type
}

var (
	_ Action = (*GoTo)(nil)
	_ Action = (*GoToR)(nil)
	_ Action = (*URI)(nil)
	_ Action = (*Launch)(nil)
	_ Action = (*Unsupported)(nil)
)

// GoTo changes the view to a destination inside the current document.
type GoTo struct {
	Dest destination.XYZ
}

// ActionType returns "GoTo".
// This implements the [Action] interface.
func (a *GoTo) ActionType() Type { return TypeGoTo }

// GoToR changes the view to a destination in another document.
//
// The coordinates of Dest are given in the coordinate system of the
// other document, since the page height of the target is not known.
type GoToR struct {
	FilePath string
	Dest     destination.XYZ
}

// ActionType returns "GoToR".
// This implements the [Action] interface.
func (a *GoToR) ActionType() Type { return TypeGoToR }

// URI resolves a uniform resource identifier.
type URI struct {
	URI string
}

// ActionType returns "URI".
// This implements the [Action] interface.
func (a *URI) ActionType() Type { return TypeURI }

// Launch launches an application or opens a file.
type Launch struct {
	FilePath string
}

// ActionType returns "Launch".
// This implements the [Action] interface.
func (a *Launch) ActionType() Type { return TypeLaunch }

// Unsupported represents actions of a type not listed above.
type Unsupported struct{}

// ActionType returns "Unsupported".
// This implements the [Action] interface.
func (a *Unsupported) ActionType() Type { return TypeUnsupported }

// PageHeightFunc returns the height of the page with the given index.
// The second return value is false if the index is out of range.
type PageHeightFunc func(page int) (float64, bool)

// FromLink converts the target of an engine link into an action.
// A link with a direct destination is represented as a [GoTo] action.
// The function returns nil if l is nil.
func FromLink(l *engine.Link, height PageHeightFunc) Action {
	if l == nil {
		return nil
	}
	if l.HasDest {
		return &GoTo{Dest: convertDest(l.Dest, height)}
	}
	return FromEngine(l.Action, height)
}

// FromEngine converts an engine action.
func FromEngine(a engine.Action, height PageHeightFunc) Action {
	switch a.Kind {
	case engine.ActionGoTo:
		return &GoTo{Dest: convertDest(a.Dest, height)}
	case engine.ActionRemoteGoTo:
		return &GoToR{FilePath: a.FilePath, Dest: destination.Raw(a.Dest)}
	case engine.ActionURI:
		return &URI{URI: a.URI}
	case engine.ActionLaunch:
		return &Launch{FilePath: a.FilePath}
	default:
		return &Unsupported{}
	}
}

func convertDest(d engine.Dest, height PageHeightFunc) destination.XYZ {
	if height != nil {
		if h, ok := height(d.Page); ok {
			return destination.FromEngine(d, h)
		}
	}
	return destination.Raw(d)
}
