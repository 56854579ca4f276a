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

// Package coord converts between engine space and consumer space.
//
// Engine space is the PDF user space of a page: the origin is the
// bottom-left corner and y grows upwards.  Engine space values use the
// types from [seehuhn.de/go/geom/rect] and [seehuhn.de/go/geom/vec].
//
// Consumer space has its origin in the top-left corner of the page and y
// grows downwards.  Consumer space values use the [Point] and [Rect] types
// from this package, so that the two spaces cannot be mixed up without an
// explicit conversion.
package coord

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Point is a point in consumer space.
type Point struct {
	X, Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Size is the size of a page in points.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle in consumer space.
// (X, Y) is the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g %g %g %g]", r.X, r.Y, r.Width, r.Height)
}

// IsEmpty reports whether the rectangle has zero area.
func (r Rect) IsEmpty() bool {
	return r.Width == 0 || r.Height == 0
}

// Normalize returns a rectangle covering the same area as r,
// with non-negative width and height.
func (r Rect) Normalize() Rect {
	if r.Width < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}
	return r
}

// Contains reports whether p lies inside r.
// The left and top edges are included, the right and bottom edges are not.
func (r Rect) Contains(p Point) bool {
	r = r.Normalize()
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Union returns the smallest rectangle which contains both r and s.
// Empty rectangles are ignored.
func (r Rect) Union(s Rect) Rect {
	if r.IsEmpty() {
		return s.Normalize()
	}
	if s.IsEmpty() {
		return r.Normalize()
	}
	r = r.Normalize()
	s = s.Normalize()
	x0 := math.Min(r.X, s.X)
	y0 := math.Min(r.Y, s.Y)
	x1 := math.Max(r.X+r.Width, s.X+s.Width)
	y1 := math.Max(r.Y+r.Height, s.Y+s.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Square returns the square with side length size, centered on p.
func Square(p Point, size float64) Rect {
	return Rect{
		X:      p.X - size/2,
		Y:      p.Y - size/2,
		Width:  size,
		Height: size,
	}
}

// ToConsumerY converts an engine space y coordinate to consumer space.
func ToConsumerY(y, pageHeight float64) float64 {
	return pageHeight - y
}

// ToEngineY converts a consumer space y coordinate to engine space.
func ToEngineY(y, pageHeight float64) float64 {
	return pageHeight - y
}

// PointToConsumer converts a point from engine space to consumer space.
func PointToConsumer(p vec.Vec2, pageHeight float64) Point {
	return Point{X: p.X, Y: ToConsumerY(p.Y, pageHeight)}
}

// PointToEngine converts a point from consumer space to engine space.
func PointToEngine(p Point, pageHeight float64) vec.Vec2 {
	return vec.Vec2{X: p.X, Y: ToEngineY(p.Y, pageHeight)}
}

// RectToConsumer converts an engine space rectangle to consumer space.
// The result always has non-negative width and height.
func RectToConsumer(r rect.Rect, pageHeight float64) Rect {
	left := math.Min(r.LLx, r.URx)
	right := math.Max(r.LLx, r.URx)
	top := math.Max(r.LLy, r.URy)
	bottom := math.Min(r.LLy, r.URy)
	return Rect{
		X:      left,
		Y:      pageHeight - top,
		Width:  right - left,
		Height: top - bottom,
	}
}

// RectToEngine converts a consumer space rectangle to engine space.
// The result is normalized so that LLx <= URx and LLy <= URy.
func RectToEngine(r Rect, pageHeight float64) rect.Rect {
	r = r.Normalize()
	top := pageHeight - r.Y
	bottom := pageHeight - (r.Y + r.Height)
	if top < bottom {
		top, bottom = bottom, top
	}
	return rect.Rect{
		LLx: r.X,
		LLy: bottom,
		URx: r.X + r.Width,
		URy: top,
	}
}
