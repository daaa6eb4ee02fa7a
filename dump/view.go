// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dump

import (
	"fmt"

	"github.com/gogpu/flow"
)

// nodeView is the nested form of a tree node shared by the structured
// formats.
type nodeView struct {
	Kind     string         `json:"kind" yaml:"kind"`
	Attrs    map[string]any `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Children []*nodeView    `json:"children,omitempty" yaml:"children,omitempty"`
}

// viewOf converts a tree into nested views. It returns nil for a nil or
// empty tree.
func viewOf(tree *flow.Tree) *nodeView {
	var root *nodeView
	var stack []*nodeView
	tree.Walk(func(_ flow.NodeID, n flow.Node, depth int) bool {
		v := &nodeView{Kind: n.Kind().String(), Attrs: attrs(n.Data)}
		stack = append(stack[:depth], v)
		if depth == 0 {
			root = v
		} else {
			parent := stack[depth-1]
			parent.Children = append(parent.Children, v)
		}
		return true
	})
	return root
}

// attrs returns the payload fields of a node by name.
func attrs(data flow.NodeData) map[string]any {
	switch d := data.(type) {
	case flow.TransformData:
		m := d.Matrix.Aff3()
		return map[string]any{"matrix": m[:]}
	case flow.ClipRectData:
		return map[string]any{"rect": rect(d.Rect)}
	case flow.ClipRoundedRectData:
		return map[string]any{"rect": rect(d.RoundedRect.Rect), "radii": radii(d.RoundedRect.Radii)}
	case flow.ClipPathData:
		return map[string]any{"bounds": rect(d.Path.Bounds()), "elements": len(d.Path.Elements())}
	case flow.OpacityData:
		return map[string]any{"alpha": d.Alpha}
	case flow.ColorFilterData:
		return map[string]any{"color": color(d.Color), "blend": d.BlendMode.String()}
	case flow.BackdropFilterData:
		return map[string]any{"filter": name(d.Filter)}
	case flow.ShaderMaskData:
		return map[string]any{"shader": name(d.Shader), "mask_rect": rect(d.MaskRect), "blend": d.BlendMode.String()}
	case flow.PhysicalModelData:
		return map[string]any{
			"rect":               rect(d.RoundedRect.Rect),
			"radii":              radii(d.RoundedRect.Radii),
			"elevation":          d.Elevation,
			"color":              color(d.Color),
			"device_pixel_ratio": d.DevicePixelRatio,
		}
	case flow.PerformanceOverlayData:
		return map[string]any{"options": d.Options, "rect": rect(d.Rect)}
	case flow.PictureData:
		bounds := flow.EmptyRect()
		if d.Picture != nil {
			bounds = d.Picture.CullRect()
		}
		return map[string]any{
			"offset":      point(d.Offset),
			"picture":     name(d.Picture),
			"bounds":      rect(bounds),
			"complex":     d.IsComplex,
			"will_change": d.WillChange,
		}
	case flow.ExternalSceneData:
		return map[string]any{
			"offset":       point(d.Offset),
			"size":         []float32{d.Size.Width, d.Size.Height},
			"scene":        name(d.Scene),
			"hit_testable": d.HitTestable,
		}
	}
	return nil
}

func rect(r flow.Rect) []float32 {
	return []float32{r.MinX, r.MinY, r.MaxX, r.MaxY}
}

func point(p flow.Point) []float32 {
	return []float32{p.X, p.Y}
}

func radii(r flow.CornerRadii) []float32 {
	return []float32{
		r.TopLeft.X, r.TopLeft.Y,
		r.TopRight.X, r.TopRight.Y,
		r.BottomRight.X, r.BottomRight.Y,
		r.BottomLeft.X, r.BottomLeft.Y,
	}
}

func color(c flow.Color) string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// name renders an opaque reference.
func name(v any) string {
	switch r := v.(type) {
	case nil:
		return ""
	case *flow.RecordedPicture:
		if r == nil {
			return ""
		}
		return r.Name
	case string:
		return r
	case fmt.Stringer:
		return r.String()
	}
	return fmt.Sprintf("%T", v)
}
