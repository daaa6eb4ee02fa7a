// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package flow

import (
	"image/color"
	"testing"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color(0)

func TestColorChannels(t *testing.T) {
	c := ARGB(0x80, 0x10, 0x20, 0x30)
	if c != 0x80102030 {
		t.Fatalf("ARGB() = %#x, want 0x80102030", uint32(c))
	}
	if c.Alpha() != 0x80 || c.Red() != 0x10 || c.Green() != 0x20 || c.Blue() != 0x30 {
		t.Errorf("channels = %#x %#x %#x %#x", c.Alpha(), c.Red(), c.Green(), c.Blue())
	}
}

func TestColorRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		c    color.Color
		want Color
	}{
		{"opaque red", color.NRGBA{R: 255, A: 255}, 0xFFFF0000},
		{"transparent", color.NRGBA{}, 0},
		{"half green", color.NRGBA{G: 255, A: 128}, 0x8000FF00},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromColor(tt.c)
			if got != tt.want {
				t.Errorf("FromColor(%v) = %#x, want %#x", tt.c, uint32(got), uint32(tt.want))
			}
			if back := FromColor(got); back != got {
				t.Errorf("FromColor(Color) = %#x, want %#x", uint32(back), uint32(got))
			}
		})
	}
}

func TestBlendModeString(t *testing.T) {
	tests := []struct {
		mode BlendMode
		want string
	}{
		{BlendClear, "Clear"},
		{BlendSrcOver, "SrcOver"},
		{BlendModulate, "Modulate"},
		{BlendMultiply, "Multiply"},
		{BlendLuminosity, "Luminosity"},
		{BlendMode(255), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.mode.String(); got != tt.want {
				t.Errorf("BlendMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
			}
		})
	}
}

func TestParseBlendMode(t *testing.T) {
	for mode := BlendClear; mode <= BlendLuminosity; mode++ {
		got, ok := ParseBlendMode(mode.String())
		if !ok || got != mode {
			t.Errorf("ParseBlendMode(%q) = %v, %v; want %v, true", mode.String(), got, ok, mode)
		}
	}
	if _, ok := ParseBlendMode("Bogus"); ok {
		t.Error("ParseBlendMode(\"Bogus\") succeeded")
	}
}

func TestBlendModeIsPorterDuff(t *testing.T) {
	if !BlendXor.IsPorterDuff() {
		t.Error("Xor should be Porter-Duff")
	}
	if BlendScreen.IsPorterDuff() {
		t.Error("Screen should not be Porter-Duff")
	}
}
