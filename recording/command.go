// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import "github.com/gogpu/flow"

// CommandType identifies the type of a command.
// Each command type corresponds to one Target method.
type CommandType uint8

const (
	// Container commands
	CmdBeginTransform       CommandType = iota // Open a transform
	CmdBeginClipRect                           // Open a rectangle clip
	CmdBeginClipRoundedRect                    // Open a rounded rectangle clip
	CmdBeginClipPath                           // Open a path clip
	CmdBeginOpacity                            // Open an opacity group
	CmdBeginColorFilter                        // Open a color filter
	CmdBeginBackdropFilter                     // Open a backdrop filter
	CmdBeginShaderMask                         // Open a shader mask
	CmdBeginPhysicalModel                      // Open a physical model
	CmdEnd                                     // Close the innermost container

	// Leaf commands
	CmdAddPerformanceOverlay // Add a performance overlay
	CmdAddPicture            // Add a picture
	CmdAddExternalScene      // Add an external scene

	// Settings commands
	CmdSetTracingThreshold              // Set the tracing threshold
	CmdSetCheckerboardRasterCacheImages // Toggle cached image checkerboarding
	CmdSetCheckerboardOffscreenLayers   // Toggle offscreen layer checkerboarding
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdBeginTransform:                   "BeginTransform",
	CmdBeginClipRect:                    "BeginClipRect",
	CmdBeginClipRoundedRect:             "BeginClipRoundedRect",
	CmdBeginClipPath:                    "BeginClipPath",
	CmdBeginOpacity:                     "BeginOpacity",
	CmdBeginColorFilter:                 "BeginColorFilter",
	CmdBeginBackdropFilter:              "BeginBackdropFilter",
	CmdBeginShaderMask:                  "BeginShaderMask",
	CmdBeginPhysicalModel:               "BeginPhysicalModel",
	CmdEnd:                              "End",
	CmdAddPerformanceOverlay:            "AddPerformanceOverlay",
	CmdAddPicture:                       "AddPicture",
	CmdAddExternalScene:                 "AddExternalScene",
	CmdSetTracingThreshold:              "SetTracingThreshold",
	CmdSetCheckerboardRasterCacheImages: "SetCheckerboardRasterCacheImages",
	CmdSetCheckerboardOffscreenLayers:   "SetCheckerboardOffscreenLayers",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// ParseCommandType looks up a CommandType by the name String returns.
func ParseCommandType(name string) (CommandType, bool) {
	for i, n := range commandTypeNames {
		if n == name {
			return CommandType(i), true
		}
	}
	return 0, false
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// Ref is a named opaque reference. Decoded recordings use it for image
// filters, shaders and exported scenes.
type Ref string

// String returns the reference name.
func (r Ref) String() string {
	return string(r)
}

// --------------------------------------------------------------------------
// Container Commands
// --------------------------------------------------------------------------

// BeginTransformCommand opens a transform container.
type BeginTransformCommand struct {
	Matrix flow.Matrix
}

// BeginClipRectCommand opens a rectangle clip container.
type BeginClipRectCommand struct {
	Rect flow.Rect
}

// BeginClipRoundedRectCommand opens a rounded rectangle clip container.
type BeginClipRoundedRectCommand struct {
	RoundedRect flow.RoundedRect
}

// BeginClipPathCommand opens a path clip container.
type BeginClipPathCommand struct {
	Path *flow.Path
}

// BeginOpacityCommand opens an opacity container.
type BeginOpacityCommand struct {
	Alpha uint8
}

// BeginColorFilterCommand opens a color filter container.
type BeginColorFilterCommand struct {
	Color     flow.Color
	BlendMode flow.BlendMode
}

// BeginBackdropFilterCommand opens a backdrop filter container.
type BeginBackdropFilterCommand struct {
	Filter flow.ImageFilter
}

// BeginShaderMaskCommand opens a shader mask container.
type BeginShaderMaskCommand struct {
	Shader    flow.Shader
	MaskRect  flow.Rect
	BlendMode flow.BlendMode
}

// BeginPhysicalModelCommand opens a physical model container.
type BeginPhysicalModelCommand struct {
	RoundedRect      flow.RoundedRect
	Elevation        float64
	Color            flow.Color
	DevicePixelRatio float32
}

// EndCommand closes the innermost open container.
type EndCommand struct{}

// --------------------------------------------------------------------------
// Leaf Commands
// --------------------------------------------------------------------------

// AddPerformanceOverlayCommand adds a performance overlay leaf.
type AddPerformanceOverlayCommand struct {
	Options uint64
	Rect    flow.Rect
}

// AddPictureCommand adds a picture leaf.
type AddPictureCommand struct {
	Offset     flow.Point
	Picture    flow.Picture
	IsComplex  bool
	WillChange bool
}

// AddExternalSceneCommand adds an external scene leaf.
type AddExternalSceneCommand struct {
	Offset      flow.Point
	Size        flow.Size
	Scene       flow.SceneToken
	HitTestable bool
}

// --------------------------------------------------------------------------
// Settings Commands
// --------------------------------------------------------------------------

// SetTracingThresholdCommand sets the rasterizer tracing threshold.
type SetTracingThresholdCommand struct {
	FrameInterval uint32
}

// SetCheckerboardRasterCacheImagesCommand toggles cached image checkerboarding.
type SetCheckerboardRasterCacheImagesCommand struct {
	Enabled bool
}

// SetCheckerboardOffscreenLayersCommand toggles offscreen layer checkerboarding.
type SetCheckerboardOffscreenLayersCommand struct {
	Enabled bool
}

// Type implements Command.
func (BeginTransformCommand) Type() CommandType { return CmdBeginTransform }

// Type implements Command.
func (BeginClipRectCommand) Type() CommandType { return CmdBeginClipRect }

// Type implements Command.
func (BeginClipRoundedRectCommand) Type() CommandType { return CmdBeginClipRoundedRect }

// Type implements Command.
func (BeginClipPathCommand) Type() CommandType { return CmdBeginClipPath }

// Type implements Command.
func (BeginOpacityCommand) Type() CommandType { return CmdBeginOpacity }

// Type implements Command.
func (BeginColorFilterCommand) Type() CommandType { return CmdBeginColorFilter }

// Type implements Command.
func (BeginBackdropFilterCommand) Type() CommandType { return CmdBeginBackdropFilter }

// Type implements Command.
func (BeginShaderMaskCommand) Type() CommandType { return CmdBeginShaderMask }

// Type implements Command.
func (BeginPhysicalModelCommand) Type() CommandType { return CmdBeginPhysicalModel }

// Type implements Command.
func (EndCommand) Type() CommandType { return CmdEnd }

// Type implements Command.
func (AddPerformanceOverlayCommand) Type() CommandType { return CmdAddPerformanceOverlay }

// Type implements Command.
func (AddPictureCommand) Type() CommandType { return CmdAddPicture }

// Type implements Command.
func (AddExternalSceneCommand) Type() CommandType { return CmdAddExternalScene }

// Type implements Command.
func (SetTracingThresholdCommand) Type() CommandType { return CmdSetTracingThreshold }

// Type implements Command.
func (SetCheckerboardRasterCacheImagesCommand) Type() CommandType {
	return CmdSetCheckerboardRasterCacheImages
}

// Type implements Command.
func (SetCheckerboardOffscreenLayersCommand) Type() CommandType {
	return CmdSetCheckerboardOffscreenLayers
}
