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
	"seehuhn.de/go/pdfdom/annotation"
)

// EventType identifies the kind of change reported by an [Event].
type EventType int

const (
	EventAnnotationAdded EventType = iota + 1
	EventAnnotationUpdated
	EventAnnotationRemoved
)

func (t EventType) String() string {
	switch t {
	case EventAnnotationAdded:
		return "added"
	case EventAnnotationUpdated:
		return "updated"
	case EventAnnotationRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Event describes a change to the annotations of a page.
//
// For EventAnnotationRemoved, Annotation is no longer part of the page and
// can only be used to identify the removed annotation.
type Event struct {
	Type       EventType
	Page       *Page
	Annotation annotation.Annotation
}

type listener struct {
	id int
	fn func(Event)
}

// Listen registers fn to be called after every change to the annotations
// of the page.  Calls happen synchronously, after the list of annotations
// has been updated.  The returned function removes the listener.
func (p *Page) Listen(fn func(Event)) (cancel func()) {
	p.nextID++
	id := p.nextID
	p.listeners = append(p.listeners, &listener{id: id, fn: fn})
	return func() {
		for i, l := range p.listeners {
			if l.id == id {
				p.listeners = append(p.listeners[:i:i], p.listeners[i+1:]...)
				return
			}
		}
	}
}

func (p *Page) emit(t EventType, a annotation.Annotation) {
	ev := Event{Type: t, Page: p, Annotation: a}
	for _, l := range append([]*listener(nil), p.listeners...) {
		l.fn(ev)
	}
}
