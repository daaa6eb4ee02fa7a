// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package flow

import "github.com/chewxy/math32"

// Point is a 2D point or offset in the current coordinate space.
type Point struct {
	X, Y float32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Size is a width/height pair.
type Size struct {
	Width, Height float32
}

// Rect is an axis-aligned rectangle.
//
// A rectangle is empty unless MinX < MaxX and MinY < MaxY. NaN
// coordinates therefore always produce an empty rectangle.
type Rect struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// NewRect creates a rectangle from its edges.
func NewRect(minX, minY, maxX, maxY float32) Rect {
	return Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// RectXYWH creates a rectangle from an origin and a size.
func RectXYWH(x, y, w, h float32) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

// EmptyRect returns the zero rectangle, which intersects nothing.
func EmptyRect() Rect {
	return Rect{}
}

// LargestRect returns the largest finite rectangle. It is used as the
// "everything is visible" cull rect.
func LargestRect() Rect {
	return Rect{
		MinX: -math32.MaxFloat32,
		MinY: -math32.MaxFloat32,
		MaxX: math32.MaxFloat32,
		MaxY: math32.MaxFloat32,
	}
}

// IsEmpty returns true if the rectangle encloses no area.
func (r Rect) IsEmpty() bool {
	return !(r.MinX < r.MaxX && r.MinY < r.MaxY)
}

// IsFinite returns true if no coordinate is infinite or NaN.
func (r Rect) IsFinite() bool {
	return isFinite(r.MinX) && isFinite(r.MinY) && isFinite(r.MaxX) && isFinite(r.MaxY)
}

// IsLargest returns true if r is the rectangle returned by LargestRect.
func (r Rect) IsLargest() bool {
	return r == LargestRect()
}

// Width returns the rectangle width.
func (r Rect) Width() float32 {
	return r.MaxX - r.MinX
}

// Height returns the rectangle height.
func (r Rect) Height() float32 {
	return r.MaxY - r.MinY
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy float32) Rect {
	return Rect{
		MinX: r.MinX + dx,
		MinY: r.MinY + dy,
		MaxX: r.MaxX + dx,
		MaxY: r.MaxY + dy,
	}
}

// Intersect returns the overlap of r and other. The second result is
// false, and the returned rectangle is empty, when they do not overlap.
func (r Rect) Intersect(other Rect) (Rect, bool) {
	out := Rect{
		MinX: math32.Max(r.MinX, other.MinX),
		MinY: math32.Max(r.MinY, other.MinY),
		MaxX: math32.Min(r.MaxX, other.MaxX),
		MaxY: math32.Min(r.MaxY, other.MaxY),
	}
	if out.IsEmpty() {
		return EmptyRect(), false
	}
	return out, true
}

// Intersects reports whether r and other share a non-empty area.
// Rectangles that only touch along an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	return r.MinX < other.MaxX && other.MinX < r.MaxX &&
		r.MinY < other.MaxY && other.MinY < r.MaxY
}

// Union returns the smallest rectangle containing both r and other.
// Empty operands are ignored.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	return Rect{
		MinX: math32.Min(r.MinX, other.MinX),
		MinY: math32.Min(r.MinY, other.MinY),
		MaxX: math32.Max(r.MaxX, other.MaxX),
		MaxY: math32.Max(r.MaxY, other.MaxY),
	}
}

// boundsOf returns the bounding box of the given points.
func boundsOf(pts ...Point) Rect {
	if len(pts) == 0 {
		return EmptyRect()
	}
	r := Rect{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[0].X, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		r.MinX = math32.Min(r.MinX, p.X)
		r.MinY = math32.Min(r.MinY, p.Y)
		r.MaxX = math32.Max(r.MaxX, p.X)
		r.MaxY = math32.Max(r.MaxY, p.Y)
	}
	return r
}

func isFinite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}
