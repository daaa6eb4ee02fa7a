// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package flow

import "slices"

// Shape is implemented by clip geometry. Only the bounding box takes part
// in cull rect propagation; the exact outline is for the rasterizer.
type Shape interface {
	Bounds() Rect
}

// Bounds returns the rectangle itself.
func (r Rect) Bounds() Rect {
	return r
}

// CornerRadii holds the elliptical radii of each corner of a RoundedRect.
type CornerRadii struct {
	TopLeft, TopRight, BottomRight, BottomLeft Point
}

// UniformRadii returns radii with the same circular radius at every corner.
func UniformRadii(r float32) CornerRadii {
	p := Point{X: r, Y: r}
	return CornerRadii{TopLeft: p, TopRight: p, BottomRight: p, BottomLeft: p}
}

// RoundedRect is a rectangle with rounded corners.
type RoundedRect struct {
	Rect  Rect
	Radii CornerRadii
}

// NewRoundedRect creates a rounded rectangle with a uniform corner radius.
func NewRoundedRect(r Rect, radius float32) RoundedRect {
	return RoundedRect{Rect: r, Radii: UniformRadii(radius)}
}

// Bounds returns the bounding rectangle.
func (rr RoundedRect) Bounds() Rect {
	return rr.Rect
}

// PathElement is a single path command.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at Point.
type MoveTo struct {
	Point Point
}

// LineTo draws a line to Point.
type LineTo struct {
	Point Point
}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

// Close closes the current subpath.
type Close struct{}

func (MoveTo) isPathElement()  {}
func (LineTo) isPathElement()  {}
func (QuadTo) isPathElement()  {}
func (CubicTo) isPathElement() {}
func (Close) isPathElement()   {}

// Path is an outline used by BeginClipPath.
// The zero value is an empty path ready to use.
type Path struct {
	elements []PathElement
	points   []Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float32) *Path {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.points = append(p.points, pt)
	return p
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float32) *Path {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.points = append(p.points, pt)
	return p
}

// QuadTo draws a quadratic Bezier curve.
func (p *Path) QuadTo(cx, cy, x, y float32) *Path {
	c, pt := Pt(cx, cy), Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: c, Point: pt})
	p.points = append(p.points, c, pt)
	return p
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float32) *Path {
	c1, c2, pt := Pt(c1x, c1y), Pt(c2x, c2y), Pt(x, y)
	p.elements = append(p.elements, CubicTo{Control1: c1, Control2: c2, Point: pt})
	p.points = append(p.points, c1, c2, pt)
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	p.elements = append(p.elements, Close{})
	return p
}

// Rectangle adds a closed rectangle subpath.
func (p *Path) Rectangle(r Rect) *Path {
	return p.MoveTo(r.MinX, r.MinY).
		LineTo(r.MaxX, r.MinY).
		LineTo(r.MaxX, r.MaxY).
		LineTo(r.MinX, r.MaxY).
		Close()
}

// Clone returns a deep copy of p. Cloning a nil path returns nil.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	return &Path{
		elements: slices.Clone(p.elements),
		points:   slices.Clone(p.points),
	}
}

// Elements returns the path commands. The slice must not be modified.
func (p *Path) Elements() []PathElement {
	if p == nil {
		return nil
	}
	return p.elements
}

// IsEmpty returns true if the path has no points.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.points) == 0
}

// Bounds returns the bounding box of all points, control points
// included. This is conservative for curves.
func (p *Path) Bounds() Rect {
	if p.IsEmpty() {
		return EmptyRect()
	}
	return boundsOf(p.points...)
}
