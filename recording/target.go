// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import "github.com/gogpu/flow"

// Target receives layer commands. *flow.Builder and *Recorder both
// implement it, so a Recording can be replayed into a builder or copied
// into another recorder.
type Target interface {
	BeginTransform(m flow.Matrix)
	BeginClipRect(r flow.Rect)
	BeginClipRoundedRect(rr flow.RoundedRect)
	BeginClipPath(path *flow.Path)
	BeginOpacity(alpha uint8)
	BeginColorFilter(color flow.Color, mode flow.BlendMode)
	BeginBackdropFilter(filter flow.ImageFilter)
	BeginShaderMask(shader flow.Shader, maskRect flow.Rect, mode flow.BlendMode)
	BeginPhysicalModel(rr flow.RoundedRect, elevation float64, color flow.Color, devicePixelRatio float32)
	End()

	AddPerformanceOverlay(options uint64, rect flow.Rect)
	AddPicture(offset flow.Point, picture flow.Picture, isComplex, willChange bool)
	AddExternalScene(offset flow.Point, size flow.Size, scene flow.SceneToken, hitTestable bool)

	SetTracingThreshold(frameInterval uint32)
	SetCheckerboardRasterCacheImages(checkerboard bool)
	SetCheckerboardOffscreenLayers(checkerboard bool)
}

var (
	_ Target = (*flow.Builder)(nil)
	_ Target = (*Recorder)(nil)
)
