// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package flow

// Picture is recorded drawing content referenced by a picture leaf.
// The builder only needs its cull rect, in the picture's own coordinates.
type Picture interface {
	CullRect() Rect
}

// ImageFilter is an opaque filter reference held by a backdrop filter
// node. The builder never inspects it.
type ImageFilter interface{}

// Shader is an opaque shader reference held by a shader mask node.
type Shader interface{}

// SceneToken is an opaque handle to a scene exported by another process
// or compositor, held by an external scene leaf.
type SceneToken interface{}

// RecordedPicture is a Picture whose content lives elsewhere and is
// identified by Name. It is the reference type produced when replaying
// command scripts.
type RecordedPicture struct {
	Name   string
	Bounds Rect
}

// CullRect returns the recorded bounds.
func (p *RecordedPicture) CullRect() Rect {
	return p.Bounds
}
