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
	"seehuhn.de/go/geom/rect"
)

// ActionKind identifies the kind of a link action.
type ActionKind int

const (
	ActionUnsupported ActionKind = iota
	ActionGoTo
	ActionRemoteGoTo
	ActionURI
	ActionLaunch
)

func (k ActionKind) String() string {
	switch k {
	case ActionGoTo:
		return "GoTo"
	case ActionRemoteGoTo:
		return "GoToR"
	case ActionURI:
		return "URI"
	case ActionLaunch:
		return "Launch"
	default:
		return "Unsupported"
	}
}

// Dest is an explicit destination inside a document.
// Coordinates are in engine space of the target page.
type Dest struct {
	Page int

	X, Y, Zoom          float64
	HasX, HasY, HasZoom bool
}

// Action is the action attached to a link.
type Action struct {
	Kind ActionKind

	// Dest is used for ActionGoTo and ActionRemoteGoTo.
	Dest Dest

	// URI is used for ActionURI.
	URI string

	// FilePath is used for ActionRemoteGoTo and ActionLaunch.
	FilePath string
}

// Link describes a link on a page.
type Link struct {
	Rect rect.Rect

	// HasDest is set if the link points directly to a destination,
	// without an action.
	HasDest bool
	Dest    Dest

	Action Action
}
