// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package flow

import "image/color"

// Color is a non-premultiplied 32-bit color packed as 0xAARRGGBB.
type Color uint32

// ARGB packs the four channels into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// FromColor converts a standard color.Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ARGB(n.A, n.R, n.G, n.B)
}

// Alpha returns the alpha channel.
func (c Color) Alpha() uint8 { return uint8(c >> 24) }

// Red returns the red channel.
func (c Color) Red() uint8 { return uint8(c >> 16) }

// Green returns the green channel.
func (c Color) Green() uint8 { return uint8(c >> 8) }

// Blue returns the blue channel.
func (c Color) Blue() uint8 { return uint8(c) }

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}.RGBA()
}

// BlendMode selects how a layer composites with the content beneath it.
type BlendMode uint8

// Porter-Duff modes come first, followed by separable and non-separable
// advanced modes.
const (
	BlendClear BlendMode = iota
	BlendSrc
	BlendDst
	BlendSrcOver
	BlendDstOver
	BlendSrcIn
	BlendDstIn
	BlendSrcOut
	BlendDstOut
	BlendSrcATop
	BlendDstATop
	BlendXor
	BlendPlus
	BlendModulate
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
	BlendMultiply
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
)

var blendModeNames = [...]string{
	BlendClear:      "Clear",
	BlendSrc:        "Src",
	BlendDst:        "Dst",
	BlendSrcOver:    "SrcOver",
	BlendDstOver:    "DstOver",
	BlendSrcIn:      "SrcIn",
	BlendDstIn:      "DstIn",
	BlendSrcOut:     "SrcOut",
	BlendDstOut:     "DstOut",
	BlendSrcATop:    "SrcATop",
	BlendDstATop:    "DstATop",
	BlendXor:        "Xor",
	BlendPlus:       "Plus",
	BlendModulate:   "Modulate",
	BlendScreen:     "Screen",
	BlendOverlay:    "Overlay",
	BlendDarken:     "Darken",
	BlendLighten:    "Lighten",
	BlendColorDodge: "ColorDodge",
	BlendColorBurn:  "ColorBurn",
	BlendHardLight:  "HardLight",
	BlendSoftLight:  "SoftLight",
	BlendDifference: "Difference",
	BlendExclusion:  "Exclusion",
	BlendMultiply:   "Multiply",
	BlendHue:        "Hue",
	BlendSaturation: "Saturation",
	BlendColor:      "Color",
	BlendLuminosity: "Luminosity",
}

// String returns a human-readable name for the blend mode.
func (mode BlendMode) String() string {
	if int(mode) < len(blendModeNames) {
		return blendModeNames[mode]
	}
	return "Unknown"
}

// ParseBlendMode looks up a blend mode by the name String returns.
func ParseBlendMode(name string) (BlendMode, bool) {
	for i, n := range blendModeNames {
		if n == name {
			return BlendMode(i), true
		}
	}
	return 0, false
}

// IsPorterDuff returns true for the coefficient-based modes.
func (mode BlendMode) IsPorterDuff() bool {
	return mode <= BlendModulate
}
