// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package flow

import "log/slog"

// BuilderOption configures a Builder during creation.
//
// Example:
//
//	b := flow.NewBuilder(
//	    flow.WithExternalScenes(true),
//	    flow.WithSettings(flow.RasterSettings{TracingThreshold: 2}),
//	)
type BuilderOption func(*builderOptions)

// builderOptions holds optional configuration for Builder creation.
type builderOptions struct {
	externalScenes bool
	logger         *slog.Logger
	settings       RasterSettings
}

// defaultOptions returns the default builder options.
func defaultOptions() builderOptions {
	return builderOptions{
		externalScenes: false,
		logger:         nil, // Falls back to the package logger.
	}
}

// WithExternalScenes enables AddExternalScene. Targets that cannot embed
// scenes from another compositor leave it off, and the call is dropped.
func WithExternalScenes(enabled bool) BuilderOption {
	return func(o *builderOptions) {
		o.externalScenes = enabled
	}
}

// WithLogger sets the logger used by this builder instead of the
// package logger.
func WithLogger(l *slog.Logger) BuilderOption {
	return func(o *builderOptions) {
		o.logger = l
	}
}

// WithSettings sets the initial raster settings.
func WithSettings(s RasterSettings) BuilderOption {
	return func(o *builderOptions) {
		o.settings = s
	}
}
