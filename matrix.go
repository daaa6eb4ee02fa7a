// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package flow

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float32
	D, E, F float32
}

// singularDeterminant is the magnitude below which a determinant is
// treated as zero.
const singularDeterminant = 1.0 / (4096.0 * 4096.0 * 4096.0)

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float32) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float32) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float32) Matrix {
	sin, cos := math32.Sin(angle), math32.Cos(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// MatrixFromAff3 converts an x/image affine matrix, which shares the
// same row-major layout.
func MatrixFromAff3(m f32.Aff3) Matrix {
	return Matrix{
		A: m[0], B: m[1], C: m[2],
		D: m[3], E: m[4], F: m[5],
	}
}

// Aff3 returns m as an x/image affine matrix.
func (m Matrix) Aff3() f32.Aff3 {
	return f32.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}

// Multiply multiplies two matrices (m * other).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Invert returns the inverse matrix. The second result is false when the
// matrix is singular, in which case the returned matrix is the identity.
func (m Matrix) Invert() (Matrix, bool) {
	det := float64(m.A)*float64(m.E) - float64(m.B)*float64(m.D)
	if det > -singularDeterminant && det < singularDeterminant {
		return Identity(), false
	}

	invDet := 1.0 / det
	inv := Matrix{
		A: float32(float64(m.E) * invDet),
		B: float32(-float64(m.B) * invDet),
		C: float32((float64(m.B)*float64(m.F) - float64(m.C)*float64(m.E)) * invDet),
		D: float32(-float64(m.D) * invDet),
		E: float32(float64(m.A) * invDet),
		F: float32((float64(m.C)*float64(m.D) - float64(m.A)*float64(m.F)) * invDet),
	}
	if !inv.isFinite() {
		return Identity(), false
	}
	return inv, true
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// IsTranslationOnly returns true if the matrix only translates.
func (m Matrix) IsTranslationOnly() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}

// MapRect returns the bounding box of r after transformation.
//
// Mapping the largest rectangle, or any mapping whose result is not
// finite, returns LargestRect: a cull rect that cannot be represented
// precisely is widened to "everything".
func (m Matrix) MapRect(r Rect) Rect {
	if r.IsLargest() {
		return LargestRect()
	}
	if m.IsTranslationOnly() {
		out := r.Offset(m.C, m.F)
		if !out.IsFinite() {
			return LargestRect()
		}
		return out
	}
	out := boundsOf(
		m.TransformPoint(Point{X: r.MinX, Y: r.MinY}),
		m.TransformPoint(Point{X: r.MaxX, Y: r.MinY}),
		m.TransformPoint(Point{X: r.MaxX, Y: r.MaxY}),
		m.TransformPoint(Point{X: r.MinX, Y: r.MaxY}),
	)
	if !out.IsFinite() {
		return LargestRect()
	}
	return out
}

func (m Matrix) isFinite() bool {
	return isFinite(m.A) && isFinite(m.B) && isFinite(m.C) &&
		isFinite(m.D) && isFinite(m.E) && isFinite(m.F)
}
