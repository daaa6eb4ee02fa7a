// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"golang.org/x/image/math/f32"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/flow"
)

var (
	// ErrUnknownCommand is returned when a YAML command names no CommandType.
	ErrUnknownCommand = errors.New("recording: unknown command")

	// ErrInvalidCommand is returned when a YAML command has missing or
	// malformed arguments.
	ErrInvalidCommand = errors.New("recording: invalid command arguments")
)

// wireRecording is the YAML document layout.
//
//	commands:
//	  - op: BeginClipRect
//	    rect: [0, 0, 100, 100]
//	  - op: AddPicture
//	    ref: background
//	    offset: [10, 10]
//	    bounds: [0, 0, 50, 50]
//	  - op: End
type wireRecording struct {
	Commands []wireCommand `yaml:"commands"`
}

type wireCommand struct {
	Op               string            `yaml:"op"`
	Matrix           []float32         `yaml:"matrix,flow,omitempty"`
	Rect             []float32         `yaml:"rect,flow,omitempty"`
	Radii            []float32         `yaml:"radii,flow,omitempty"`
	Path             []wirePathElement `yaml:"path,omitempty"`
	Alpha            *uint8            `yaml:"alpha,omitempty"`
	Color            *uint32           `yaml:"color,omitempty"`
	Blend            string            `yaml:"blend,omitempty"`
	Ref              string            `yaml:"ref,omitempty"`
	Elevation        float64           `yaml:"elevation,omitempty"`
	DevicePixelRatio float32           `yaml:"device_pixel_ratio,omitempty"`
	Options          uint64            `yaml:"options,omitempty"`
	Offset           []float32         `yaml:"offset,flow,omitempty"`
	Size             []float32         `yaml:"size,flow,omitempty"`
	Bounds           []float32         `yaml:"bounds,flow,omitempty"`
	Complex          bool              `yaml:"complex,omitempty"`
	WillChange       bool              `yaml:"will_change,omitempty"`
	HitTestable      bool              `yaml:"hit_testable,omitempty"`
	Value            *uint32           `yaml:"value,omitempty"`
	Enabled          *bool             `yaml:"enabled,omitempty"`
}

// wirePathElement is one path command: verb M, L, Q, C or Z followed by
// its points.
type wirePathElement struct {
	Verb string    `yaml:"verb"`
	Pts  []float32 `yaml:"pts,flow,omitempty"`
}

// Decode reads a YAML recording. Empty input decodes to an empty
// Recording. Unknown keys are rejected, and so are known argument keys
// that the command's op does not take.
func Decode(r io.Reader) (*Recording, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc wireRecording
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return NewRecording(), nil
		}
		return nil, fmt.Errorf("recording: decode: %w", err)
	}

	cmds := make([]Command, 0, len(doc.Commands))
	for i, wc := range doc.Commands {
		cmd, err := wc.command()
		if err != nil {
			return nil, fmt.Errorf("recording: command %d (%s): %w", i, wc.Op, err)
		}
		cmds = append(cmds, cmd)
	}
	return NewRecording(cmds...), nil
}

// Encode writes the recording as YAML.
func (r *Recording) Encode(w io.Writer) error {
	doc := wireRecording{Commands: make([]wireCommand, 0, len(r.commands))}
	for _, cmd := range r.commands {
		doc.Commands = append(doc.Commands, toWire(cmd))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("recording: encode: %w", err)
	}
	return enc.Close()
}

// opFields lists the argument fields each command accepts.
var opFields = map[CommandType][]string{
	CmdBeginTransform:                   {"matrix"},
	CmdBeginClipRect:                    {"rect"},
	CmdBeginClipRoundedRect:             {"rect", "radii"},
	CmdBeginClipPath:                    {"path"},
	CmdBeginOpacity:                     {"alpha"},
	CmdBeginColorFilter:                 {"color", "blend"},
	CmdBeginBackdropFilter:              {"ref"},
	CmdBeginShaderMask:                  {"ref", "rect", "blend"},
	CmdBeginPhysicalModel:               {"rect", "radii", "color", "elevation", "device_pixel_ratio"},
	CmdEnd:                              nil,
	CmdAddPerformanceOverlay:            {"options", "rect"},
	CmdAddPicture:                       {"ref", "offset", "bounds", "complex", "will_change"},
	CmdAddExternalScene:                 {"ref", "offset", "size", "hit_testable"},
	CmdSetTracingThreshold:              {"value"},
	CmdSetCheckerboardRasterCacheImages: {"enabled"},
	CmdSetCheckerboardOffscreenLayers:   {"enabled"},
}

// setFields returns the YAML names of the argument fields present in wc.
func (wc wireCommand) setFields() []string {
	var fields []string
	add := func(name string, set bool) {
		if set {
			fields = append(fields, name)
		}
	}
	add("matrix", wc.Matrix != nil)
	add("rect", wc.Rect != nil)
	add("radii", wc.Radii != nil)
	add("path", wc.Path != nil)
	add("alpha", wc.Alpha != nil)
	add("color", wc.Color != nil)
	add("blend", wc.Blend != "")
	add("ref", wc.Ref != "")
	add("elevation", wc.Elevation != 0)
	add("device_pixel_ratio", wc.DevicePixelRatio != 0)
	add("options", wc.Options != 0)
	add("offset", wc.Offset != nil)
	add("size", wc.Size != nil)
	add("bounds", wc.Bounds != nil)
	add("complex", wc.Complex)
	add("will_change", wc.WillChange)
	add("hit_testable", wc.HitTestable)
	add("value", wc.Value != nil)
	add("enabled", wc.Enabled != nil)
	return fields
}

// command converts a decoded YAML command into a typed Command.
func (wc wireCommand) command() (Command, error) {
	t, ok := ParseCommandType(wc.Op)
	if !ok {
		return nil, ErrUnknownCommand
	}
	for _, field := range wc.setFields() {
		if !slices.Contains(opFields[t], field) {
			return nil, fmt.Errorf("%w: %s does not take %s", ErrInvalidCommand, t, field)
		}
	}

	switch t {
	case CmdBeginTransform:
		if len(wc.Matrix) != 6 {
			return nil, arity("matrix", 6, len(wc.Matrix))
		}
		var m f32.Aff3
		copy(m[:], wc.Matrix)
		return BeginTransformCommand{Matrix: flow.MatrixFromAff3(m)}, nil

	case CmdBeginClipRect:
		r, err := wireRect("rect", wc.Rect)
		if err != nil {
			return nil, err
		}
		return BeginClipRectCommand{Rect: r}, nil

	case CmdBeginClipRoundedRect:
		rr, err := wc.roundedRect()
		if err != nil {
			return nil, err
		}
		return BeginClipRoundedRectCommand{RoundedRect: rr}, nil

	case CmdBeginClipPath:
		p, err := wirePath(wc.Path)
		if err != nil {
			return nil, err
		}
		return BeginClipPathCommand{Path: p}, nil

	case CmdBeginOpacity:
		if wc.Alpha == nil {
			return nil, missing("alpha")
		}
		return BeginOpacityCommand{Alpha: *wc.Alpha}, nil

	case CmdBeginColorFilter:
		if wc.Color == nil {
			return nil, missing("color")
		}
		mode, err := wireBlend(wc.Blend)
		if err != nil {
			return nil, err
		}
		return BeginColorFilterCommand{Color: flow.Color(*wc.Color), BlendMode: mode}, nil

	case CmdBeginBackdropFilter:
		return BeginBackdropFilterCommand{Filter: Ref(wc.Ref)}, nil

	case CmdBeginShaderMask:
		r, err := wireRect("rect", wc.Rect)
		if err != nil {
			return nil, err
		}
		mode, err := wireBlend(wc.Blend)
		if err != nil {
			return nil, err
		}
		return BeginShaderMaskCommand{Shader: Ref(wc.Ref), MaskRect: r, BlendMode: mode}, nil

	case CmdBeginPhysicalModel:
		rr, err := wc.roundedRect()
		if err != nil {
			return nil, err
		}
		var color flow.Color
		if wc.Color != nil {
			color = flow.Color(*wc.Color)
		}
		return BeginPhysicalModelCommand{
			RoundedRect:      rr,
			Elevation:        wc.Elevation,
			Color:            color,
			DevicePixelRatio: wc.DevicePixelRatio,
		}, nil

	case CmdEnd:
		return EndCommand{}, nil

	case CmdAddPerformanceOverlay:
		r, err := wireRect("rect", wc.Rect)
		if err != nil {
			return nil, err
		}
		return AddPerformanceOverlayCommand{Options: wc.Options, Rect: r}, nil

	case CmdAddPicture:
		offset, err := wirePoint("offset", wc.Offset)
		if err != nil {
			return nil, err
		}
		bounds, err := wireRect("bounds", wc.Bounds)
		if err != nil {
			return nil, err
		}
		return AddPictureCommand{
			Offset:     offset,
			Picture:    &flow.RecordedPicture{Name: wc.Ref, Bounds: bounds},
			IsComplex:  wc.Complex,
			WillChange: wc.WillChange,
		}, nil

	case CmdAddExternalScene:
		offset, err := wirePoint("offset", wc.Offset)
		if err != nil {
			return nil, err
		}
		size, err := wirePoint("size", wc.Size)
		if err != nil {
			return nil, err
		}
		return AddExternalSceneCommand{
			Offset:      offset,
			Size:        flow.Size{Width: size.X, Height: size.Y},
			Scene:       Ref(wc.Ref),
			HitTestable: wc.HitTestable,
		}, nil

	case CmdSetTracingThreshold:
		if wc.Value == nil {
			return nil, missing("value")
		}
		return SetTracingThresholdCommand{FrameInterval: *wc.Value}, nil

	case CmdSetCheckerboardRasterCacheImages:
		if wc.Enabled == nil {
			return nil, missing("enabled")
		}
		return SetCheckerboardRasterCacheImagesCommand{Enabled: *wc.Enabled}, nil

	case CmdSetCheckerboardOffscreenLayers:
		if wc.Enabled == nil {
			return nil, missing("enabled")
		}
		return SetCheckerboardOffscreenLayersCommand{Enabled: *wc.Enabled}, nil
	}
	return nil, ErrUnknownCommand
}

func (wc wireCommand) roundedRect() (flow.RoundedRect, error) {
	r, err := wireRect("rect", wc.Rect)
	if err != nil {
		return flow.RoundedRect{}, err
	}
	rr := flow.RoundedRect{Rect: r}
	switch len(wc.Radii) {
	case 0:
	case 1:
		rr.Radii = flow.UniformRadii(wc.Radii[0])
	case 8:
		v := wc.Radii
		rr.Radii = flow.CornerRadii{
			TopLeft:     flow.Pt(v[0], v[1]),
			TopRight:    flow.Pt(v[2], v[3]),
			BottomRight: flow.Pt(v[4], v[5]),
			BottomLeft:  flow.Pt(v[6], v[7]),
		}
	default:
		return flow.RoundedRect{}, fmt.Errorf("%w: radii needs 1 or 8 values, got %d", ErrInvalidCommand, len(wc.Radii))
	}
	return rr, nil
}

func wireRect(field string, v []float32) (flow.Rect, error) {
	if len(v) != 4 {
		return flow.Rect{}, arity(field, 4, len(v))
	}
	return flow.NewRect(v[0], v[1], v[2], v[3]), nil
}

func wirePoint(field string, v []float32) (flow.Point, error) {
	if len(v) != 2 {
		return flow.Point{}, arity(field, 2, len(v))
	}
	return flow.Pt(v[0], v[1]), nil
}

func wireBlend(name string) (flow.BlendMode, error) {
	if name == "" {
		return flow.BlendSrcOver, nil
	}
	mode, ok := flow.ParseBlendMode(name)
	if !ok {
		return 0, fmt.Errorf("%w: unknown blend mode %q", ErrInvalidCommand, name)
	}
	return mode, nil
}

// pathVerbArity is the number of coordinates each path verb takes.
var pathVerbArity = map[string]int{"M": 2, "L": 2, "Q": 4, "C": 6, "Z": 0}

func wirePath(elems []wirePathElement) (*flow.Path, error) {
	p := flow.NewPath()
	for _, e := range elems {
		n, ok := pathVerbArity[e.Verb]
		if !ok {
			return nil, fmt.Errorf("%w: unknown path verb %q", ErrInvalidCommand, e.Verb)
		}
		if len(e.Pts) != n {
			return nil, arity("path "+e.Verb, n, len(e.Pts))
		}
		v := e.Pts
		switch e.Verb {
		case "M":
			p.MoveTo(v[0], v[1])
		case "L":
			p.LineTo(v[0], v[1])
		case "Q":
			p.QuadTo(v[0], v[1], v[2], v[3])
		case "C":
			p.CubicTo(v[0], v[1], v[2], v[3], v[4], v[5])
		case "Z":
			p.Close()
		}
	}
	return p, nil
}

func arity(field string, want, got int) error {
	return fmt.Errorf("%w: %s needs %d values, got %d", ErrInvalidCommand, field, want, got)
}

func missing(field string) error {
	return fmt.Errorf("%w: missing %s", ErrInvalidCommand, field)
}

// toWire converts a Command for encoding. Opaque references are written
// by name; references with no name are written empty.
func toWire(cmd Command) wireCommand {
	wc := wireCommand{Op: cmd.Type().String()}
	switch c := cmd.(type) {
	case BeginTransformCommand:
		m := c.Matrix.Aff3()
		wc.Matrix = m[:]
	case BeginClipRectCommand:
		wc.Rect = rectValues(c.Rect)
	case BeginClipRoundedRectCommand:
		wc.Rect, wc.Radii = roundedRectValues(c.RoundedRect)
	case BeginClipPathCommand:
		wc.Path = pathValues(c.Path)
	case BeginOpacityCommand:
		wc.Alpha = &c.Alpha
	case BeginColorFilterCommand:
		color := uint32(c.Color)
		wc.Color = &color
		wc.Blend = c.BlendMode.String()
	case BeginBackdropFilterCommand:
		wc.Ref = refName(c.Filter)
	case BeginShaderMaskCommand:
		wc.Ref = refName(c.Shader)
		wc.Rect = rectValues(c.MaskRect)
		wc.Blend = c.BlendMode.String()
	case BeginPhysicalModelCommand:
		wc.Rect, wc.Radii = roundedRectValues(c.RoundedRect)
		color := uint32(c.Color)
		wc.Color = &color
		wc.Elevation = c.Elevation
		wc.DevicePixelRatio = c.DevicePixelRatio
	case AddPerformanceOverlayCommand:
		wc.Options = c.Options
		wc.Rect = rectValues(c.Rect)
	case AddPictureCommand:
		wc.Offset = []float32{c.Offset.X, c.Offset.Y}
		bounds := flow.EmptyRect()
		if c.Picture != nil {
			bounds = c.Picture.CullRect()
		}
		wc.Bounds = rectValues(bounds)
		wc.Ref = refName(c.Picture)
		wc.Complex = c.IsComplex
		wc.WillChange = c.WillChange
	case AddExternalSceneCommand:
		wc.Offset = []float32{c.Offset.X, c.Offset.Y}
		wc.Size = []float32{c.Size.Width, c.Size.Height}
		wc.Ref = refName(c.Scene)
		wc.HitTestable = c.HitTestable
	case SetTracingThresholdCommand:
		wc.Value = &c.FrameInterval
	case SetCheckerboardRasterCacheImagesCommand:
		wc.Enabled = &c.Enabled
	case SetCheckerboardOffscreenLayersCommand:
		wc.Enabled = &c.Enabled
	}
	return wc
}

func rectValues(r flow.Rect) []float32 {
	return []float32{r.MinX, r.MinY, r.MaxX, r.MaxY}
}

func roundedRectValues(rr flow.RoundedRect) (rect, radii []float32) {
	rd := rr.Radii
	if rd == flow.UniformRadii(rd.TopLeft.X) {
		return rectValues(rr.Rect), []float32{rd.TopLeft.X}
	}
	return rectValues(rr.Rect), []float32{
		rd.TopLeft.X, rd.TopLeft.Y,
		rd.TopRight.X, rd.TopRight.Y,
		rd.BottomRight.X, rd.BottomRight.Y,
		rd.BottomLeft.X, rd.BottomLeft.Y,
	}
}

func pathValues(p *flow.Path) []wirePathElement {
	elems := p.Elements()
	out := make([]wirePathElement, 0, len(elems))
	for _, e := range elems {
		switch v := e.(type) {
		case flow.MoveTo:
			out = append(out, wirePathElement{Verb: "M", Pts: []float32{v.Point.X, v.Point.Y}})
		case flow.LineTo:
			out = append(out, wirePathElement{Verb: "L", Pts: []float32{v.Point.X, v.Point.Y}})
		case flow.QuadTo:
			out = append(out, wirePathElement{Verb: "Q", Pts: []float32{
				v.Control.X, v.Control.Y, v.Point.X, v.Point.Y,
			}})
		case flow.CubicTo:
			out = append(out, wirePathElement{Verb: "C", Pts: []float32{
				v.Control1.X, v.Control1.Y, v.Control2.X, v.Control2.Y, v.Point.X, v.Point.Y,
			}})
		case flow.Close:
			out = append(out, wirePathElement{Verb: "Z"})
		}
	}
	return out
}

// refName returns the name used for an opaque reference in YAML.
func refName(v any) string {
	switch r := v.(type) {
	case nil:
		return ""
	case Ref:
		return string(r)
	case string:
		return r
	case *flow.RecordedPicture:
		if r == nil {
			return ""
		}
		return r.Name
	case fmt.Stringer:
		return r.String()
	}
	return ""
}
