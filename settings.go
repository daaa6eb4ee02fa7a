// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package flow

// RasterSettings are debug and tracing switches set by the producer and
// read by the rasterizer after the tree is taken. The builder stores them
// and does nothing else with them.
type RasterSettings struct {
	// TracingThreshold is the frame interval count above which the
	// rasterizer records a trace. Zero disables tracing.
	TracingThreshold uint32 `toml:"tracing_threshold" yaml:"tracing_threshold" json:"tracing_threshold"`

	// CheckerboardRasterCacheImages overlays a checkerboard on images
	// served from the raster cache.
	CheckerboardRasterCacheImages bool `toml:"checkerboard_raster_cache_images" yaml:"checkerboard_raster_cache_images" json:"checkerboard_raster_cache_images"`

	// CheckerboardOffscreenLayers overlays a checkerboard on layers
	// rendered to offscreen buffers.
	CheckerboardOffscreenLayers bool `toml:"checkerboard_offscreen_layers" yaml:"checkerboard_offscreen_layers" json:"checkerboard_offscreen_layers"`
}

// SetTracingThreshold sets the rasterizer tracing threshold.
func (b *Builder) SetTracingThreshold(frameInterval uint32) {
	b.settings.TracingThreshold = frameInterval
}

// TracingThreshold returns the rasterizer tracing threshold.
func (b *Builder) TracingThreshold() uint32 {
	return b.settings.TracingThreshold
}

// SetCheckerboardRasterCacheImages toggles checkerboarding of cached images.
func (b *Builder) SetCheckerboardRasterCacheImages(checkerboard bool) {
	b.settings.CheckerboardRasterCacheImages = checkerboard
}

// CheckerboardRasterCacheImages reports whether cached images are
// checkerboarded.
func (b *Builder) CheckerboardRasterCacheImages() bool {
	return b.settings.CheckerboardRasterCacheImages
}

// SetCheckerboardOffscreenLayers toggles checkerboarding of offscreen layers.
func (b *Builder) SetCheckerboardOffscreenLayers(checkerboard bool) {
	b.settings.CheckerboardOffscreenLayers = checkerboard
}

// CheckerboardOffscreenLayers reports whether offscreen layers are
// checkerboarded.
func (b *Builder) CheckerboardOffscreenLayers() bool {
	return b.settings.CheckerboardOffscreenLayers
}

// Settings returns a copy of all raster settings, for handing to the
// rasterizer alongside the tree.
func (b *Builder) Settings() RasterSettings {
	return b.settings
}
