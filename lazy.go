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

// lazy holds a value which is computed on first use.
// Failures are remembered as well, so that the computation runs at most
// once until reset is called.
type lazy[T any] struct {
	done bool
	val  T
	err  error
}

func (l *lazy[T]) get(load func() (T, error)) (T, error) {
	if !l.done {
		l.val, l.err = load()
		l.done = true
	}
	return l.val, l.err
}

// peek returns the value, if it has been loaded successfully.
func (l *lazy[T]) peek() (T, bool) {
	return l.val, l.done && l.err == nil
}

func (l *lazy[T]) set(v T) {
	l.done = true
	l.val = v
	l.err = nil
}

func (l *lazy[T]) reset() {
	*l = lazy[T]{}
}
