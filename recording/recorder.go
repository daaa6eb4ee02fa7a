// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import "github.com/gogpu/flow"

// Recorder captures layer commands. It mirrors the flow.Builder command
// API but appends commands instead of building a tree. Nothing is
// validated or culled at record time; that happens on playback.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands []Command
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{commands: make([]Command, 0, 64)}
}

// Finish returns a Recording of everything recorded so far and resets
// the Recorder.
func (r *Recorder) Finish() *Recording {
	rec := &Recording{commands: r.commands}
	r.commands = make([]Command, 0, 64)
	return rec
}

// Record appends an already built command.
func (r *Recorder) Record(cmd Command) {
	r.commands = append(r.commands, cmd)
}

// BeginTransform records a BeginTransformCommand.
func (r *Recorder) BeginTransform(m flow.Matrix) {
	r.Record(BeginTransformCommand{Matrix: m})
}

// BeginClipRect records a BeginClipRectCommand.
func (r *Recorder) BeginClipRect(rect flow.Rect) {
	r.Record(BeginClipRectCommand{Rect: rect})
}

// BeginClipRoundedRect records a BeginClipRoundedRectCommand.
func (r *Recorder) BeginClipRoundedRect(rr flow.RoundedRect) {
	r.Record(BeginClipRoundedRectCommand{RoundedRect: rr})
}

// BeginClipPath records a BeginClipPathCommand holding a copy of path.
func (r *Recorder) BeginClipPath(path *flow.Path) {
	r.Record(BeginClipPathCommand{Path: path.Clone()})
}

// BeginOpacity records a BeginOpacityCommand.
func (r *Recorder) BeginOpacity(alpha uint8) {
	r.Record(BeginOpacityCommand{Alpha: alpha})
}

// BeginColorFilter records a BeginColorFilterCommand.
func (r *Recorder) BeginColorFilter(color flow.Color, mode flow.BlendMode) {
	r.Record(BeginColorFilterCommand{Color: color, BlendMode: mode})
}

// BeginBackdropFilter records a BeginBackdropFilterCommand.
func (r *Recorder) BeginBackdropFilter(filter flow.ImageFilter) {
	r.Record(BeginBackdropFilterCommand{Filter: filter})
}

// BeginShaderMask records a BeginShaderMaskCommand.
func (r *Recorder) BeginShaderMask(shader flow.Shader, maskRect flow.Rect, mode flow.BlendMode) {
	r.Record(BeginShaderMaskCommand{Shader: shader, MaskRect: maskRect, BlendMode: mode})
}

// BeginPhysicalModel records a BeginPhysicalModelCommand.
func (r *Recorder) BeginPhysicalModel(rr flow.RoundedRect, elevation float64, color flow.Color, devicePixelRatio float32) {
	r.Record(BeginPhysicalModelCommand{
		RoundedRect:      rr,
		Elevation:        elevation,
		Color:            color,
		DevicePixelRatio: devicePixelRatio,
	})
}

// End records an EndCommand.
func (r *Recorder) End() {
	r.Record(EndCommand{})
}

// AddPerformanceOverlay records an AddPerformanceOverlayCommand.
func (r *Recorder) AddPerformanceOverlay(options uint64, rect flow.Rect) {
	r.Record(AddPerformanceOverlayCommand{Options: options, Rect: rect})
}

// AddPicture records an AddPictureCommand.
func (r *Recorder) AddPicture(offset flow.Point, picture flow.Picture, isComplex, willChange bool) {
	r.Record(AddPictureCommand{
		Offset:     offset,
		Picture:    picture,
		IsComplex:  isComplex,
		WillChange: willChange,
	})
}

// AddExternalScene records an AddExternalSceneCommand.
func (r *Recorder) AddExternalScene(offset flow.Point, size flow.Size, scene flow.SceneToken, hitTestable bool) {
	r.Record(AddExternalSceneCommand{
		Offset:      offset,
		Size:        size,
		Scene:       scene,
		HitTestable: hitTestable,
	})
}

// SetTracingThreshold records a SetTracingThresholdCommand.
func (r *Recorder) SetTracingThreshold(frameInterval uint32) {
	r.Record(SetTracingThresholdCommand{FrameInterval: frameInterval})
}

// SetCheckerboardRasterCacheImages records a SetCheckerboardRasterCacheImagesCommand.
func (r *Recorder) SetCheckerboardRasterCacheImages(checkerboard bool) {
	r.Record(SetCheckerboardRasterCacheImagesCommand{Enabled: checkerboard})
}

// SetCheckerboardOffscreenLayers records a SetCheckerboardOffscreenLayersCommand.
func (r *Recorder) SetCheckerboardOffscreenLayers(checkerboard bool) {
	r.Record(SetCheckerboardOffscreenLayersCommand{Enabled: checkerboard})
}

// Recording is an immutable list of recorded commands.
type Recording struct {
	commands []Command
}

// NewRecording creates a Recording from commands.
func NewRecording(cmds ...Command) *Recording {
	return &Recording{commands: cmds}
}

// Len returns the number of commands.
func (r *Recording) Len() int {
	return len(r.commands)
}

// Commands returns the recorded commands. The slice must not be modified.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Count returns the number of commands of the given type.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			n++
		}
	}
	return n
}

// Playback replays the recording into target.
func (r *Recording) Playback(target Target) {
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case BeginTransformCommand:
			target.BeginTransform(c.Matrix)
		case BeginClipRectCommand:
			target.BeginClipRect(c.Rect)
		case BeginClipRoundedRectCommand:
			target.BeginClipRoundedRect(c.RoundedRect)
		case BeginClipPathCommand:
			target.BeginClipPath(c.Path)
		case BeginOpacityCommand:
			target.BeginOpacity(c.Alpha)
		case BeginColorFilterCommand:
			target.BeginColorFilter(c.Color, c.BlendMode)
		case BeginBackdropFilterCommand:
			target.BeginBackdropFilter(c.Filter)
		case BeginShaderMaskCommand:
			target.BeginShaderMask(c.Shader, c.MaskRect, c.BlendMode)
		case BeginPhysicalModelCommand:
			target.BeginPhysicalModel(c.RoundedRect, c.Elevation, c.Color, c.DevicePixelRatio)
		case EndCommand:
			target.End()
		case AddPerformanceOverlayCommand:
			target.AddPerformanceOverlay(c.Options, c.Rect)
		case AddPictureCommand:
			target.AddPicture(c.Offset, c.Picture, c.IsComplex, c.WillChange)
		case AddExternalSceneCommand:
			target.AddExternalScene(c.Offset, c.Size, c.Scene, c.HitTestable)
		case SetTracingThresholdCommand:
			target.SetTracingThreshold(c.FrameInterval)
		case SetCheckerboardRasterCacheImagesCommand:
			target.SetCheckerboardRasterCacheImages(c.Enabled)
		case SetCheckerboardOffscreenLayersCommand:
			target.SetCheckerboardOffscreenLayers(c.Enabled)
		}
	}
}
