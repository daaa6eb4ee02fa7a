// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package flow

// Kind identifies the type of a layer node.
type Kind uint8

// Container kinds come first; everything from KindPerformanceOverlay on
// is a leaf.
const (
	KindTransform Kind = iota
	KindClipRect
	KindClipRoundedRect
	KindClipPath
	KindOpacity
	KindColorFilter
	KindBackdropFilter
	KindShaderMask
	KindPhysicalModel

	KindPerformanceOverlay
	KindPicture
	KindExternalScene
)

var kindNames = [...]string{
	KindTransform:          "Transform",
	KindClipRect:           "ClipRect",
	KindClipRoundedRect:    "ClipRoundedRect",
	KindClipPath:           "ClipPath",
	KindOpacity:            "Opacity",
	KindColorFilter:        "ColorFilter",
	KindBackdropFilter:     "BackdropFilter",
	KindShaderMask:         "ShaderMask",
	KindPhysicalModel:      "PhysicalModel",
	KindPerformanceOverlay: "PerformanceOverlay",
	KindPicture:            "Picture",
	KindExternalScene:      "ExternalScene",
}

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// IsContainer returns true if nodes of this kind own children.
func (k Kind) IsContainer() bool {
	return k < KindPerformanceOverlay
}

// NodeID addresses a node inside its Tree.
type NodeID int32

// NoNode is the absent NodeID: the parent of a root, or "no current
// container" in a Builder.
const NoNode NodeID = -1

// Valid returns true if id refers to a node.
func (id NodeID) Valid() bool {
	return id >= 0
}

// Node is one entry in a Tree.
type Node struct {
	// Parent is the enclosing container, or NoNode for the root. It is a
	// navigation aid only; the parent's Children list is what owns a node.
	Parent NodeID

	// Children lists the contained nodes in paint order.
	// Always nil for leaf kinds.
	Children []NodeID

	// Data carries the kind-specific parameters.
	Data NodeData
}

// Kind returns the node kind.
func (n Node) Kind() Kind {
	return n.Data.Kind()
}

// NodeData is the kind-specific payload of a Node. The set of
// implementations is closed.
type NodeData interface {
	Kind() Kind
	nodeData()
}

// TransformData is the payload of a transform container.
type TransformData struct {
	Matrix Matrix
}

// ClipRectData is the payload of a rectangular clip container.
type ClipRectData struct {
	Rect Rect
}

// ClipRoundedRectData is the payload of a rounded-rectangle clip container.
type ClipRoundedRectData struct {
	RoundedRect RoundedRect
}

// ClipPathData is the payload of a path clip container.
type ClipPathData struct {
	Path *Path
}

// OpacityData is the payload of an opacity container.
type OpacityData struct {
	Alpha uint8
}

// ColorFilterData is the payload of a color filter container.
type ColorFilterData struct {
	Color     Color
	BlendMode BlendMode
}

// BackdropFilterData is the payload of a backdrop filter container.
type BackdropFilterData struct {
	Filter ImageFilter
}

// ShaderMaskData is the payload of a shader mask container.
type ShaderMaskData struct {
	Shader    Shader
	MaskRect  Rect
	BlendMode BlendMode
}

// PhysicalModelData is the payload of a physical model container: a
// rounded outline that clips its children and casts a shadow.
type PhysicalModelData struct {
	RoundedRect      RoundedRect
	Elevation        float64
	Color            Color
	DevicePixelRatio float32
}

// PerformanceOverlayData is the payload of a performance overlay leaf.
type PerformanceOverlayData struct {
	// Options is a bit set of enabled overlay panels, interpreted by the
	// rasterizer.
	Options uint64
	Rect    Rect
}

// PictureData is the payload of a picture leaf.
type PictureData struct {
	Offset     Point
	Picture    Picture
	IsComplex  bool
	WillChange bool
}

// ExternalSceneData is the payload of an external scene leaf.
type ExternalSceneData struct {
	Offset      Point
	Size        Size
	Scene       SceneToken
	HitTestable bool
}

func (TransformData) Kind() Kind          { return KindTransform }
func (ClipRectData) Kind() Kind           { return KindClipRect }
func (ClipRoundedRectData) Kind() Kind    { return KindClipRoundedRect }
func (ClipPathData) Kind() Kind           { return KindClipPath }
func (OpacityData) Kind() Kind            { return KindOpacity }
func (ColorFilterData) Kind() Kind        { return KindColorFilter }
func (BackdropFilterData) Kind() Kind     { return KindBackdropFilter }
func (ShaderMaskData) Kind() Kind         { return KindShaderMask }
func (PhysicalModelData) Kind() Kind      { return KindPhysicalModel }
func (PerformanceOverlayData) Kind() Kind { return KindPerformanceOverlay }
func (PictureData) Kind() Kind            { return KindPicture }
func (ExternalSceneData) Kind() Kind      { return KindExternalScene }

func (TransformData) nodeData()          {}
func (ClipRectData) nodeData()           {}
func (ClipRoundedRectData) nodeData()    {}
func (ClipPathData) nodeData()           {}
func (OpacityData) nodeData()            {}
func (ColorFilterData) nodeData()        {}
func (BackdropFilterData) nodeData()     {}
func (ShaderMaskData) nodeData()         {}
func (PhysicalModelData) nodeData()      {}
func (PerformanceOverlayData) nodeData() {}
func (PictureData) nodeData()            {}
func (ExternalSceneData) nodeData()      {}
