// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package flow

import "log/slog"

// Builder turns a stream of Begin*/End/Add* commands into a Tree,
// discarding leaves that fall outside the visible region as it goes.
//
// The builder never fails. Malformed streams are handled by fallbacks:
// an End with nothing open is ignored, leaves with no open container are
// dropped, and a singular transform disables culling beneath it.
//
// A Builder must be driven from one goroutine. After TakeTree it is empty
// again and may build another tree. The zero value is an empty builder
// with default options; NewBuilder is needed only to pass options.
//
// Example:
//
//	b := flow.NewBuilder()
//	b.BeginClipRect(flow.NewRect(0, 0, 800, 600))
//	b.BeginOpacity(128)
//	b.AddPicture(flow.Pt(10, 10), pic, false, false)
//	b.End()
//	b.End()
//	tree := b.TakeTree()
type Builder struct {
	tree    *Tree
	current NodeID
	cull    *CullStack

	settings       RasterSettings
	externalScenes bool
	logger         *slog.Logger
	stats          Stats
}

// NewBuilder creates an empty builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Builder{
		tree:           newTree(),
		current:        NoNode,
		cull:           NewCullStack(),
		settings:       o.settings,
		externalScenes: o.externalScenes,
		logger:         o.logger,
	}
}

// BeginTransform opens a container that transforms its children by m.
// Children are culled against the current cull rect mapped through the
// inverse of m. A singular m, or a current cull rect that is still the
// unbounded LargestRect, gives children LargestRect: the mapping is never
// allowed to shrink "everything visible" to a finite region.
func (b *Builder) BeginTransform(m Matrix) {
	b.init()
	cull, ok := b.cull.Transformed(m)
	if !ok {
		b.log().Debug("flow: singular transform, culling disabled below it",
			"matrix", m)
	}
	b.pushContainer(TransformData{Matrix: m}, cull)
}

// BeginClipRect opens a container that clips its children to r.
func (b *Builder) BeginClipRect(r Rect) {
	b.init()
	b.pushContainer(ClipRectData{Rect: r}, b.cull.Clipped(r))
}

// BeginClipRoundedRect opens a container that clips its children to rr.
func (b *Builder) BeginClipRoundedRect(rr RoundedRect) {
	b.init()
	b.pushContainer(ClipRoundedRectData{RoundedRect: rr}, b.cull.Clipped(rr.Bounds()))
}

// BeginClipPath opens a container that clips its children to path.
// The path is copied, so later changes to it do not reach the tree.
func (b *Builder) BeginClipPath(path *Path) {
	b.init()
	path = path.Clone()
	b.pushContainer(ClipPathData{Path: path}, b.cull.Clipped(path.Bounds()))
}

// BeginOpacity opens a container that composites its children with the
// given alpha (0 transparent, 255 opaque).
func (b *Builder) BeginOpacity(alpha uint8) {
	b.init()
	b.pushContainer(OpacityData{Alpha: alpha}, b.cull.Top())
}

// BeginColorFilter opens a container that blends color over its children.
func (b *Builder) BeginColorFilter(color Color, mode BlendMode) {
	b.init()
	b.pushContainer(ColorFilterData{Color: color, BlendMode: mode}, b.cull.Top())
}

// BeginBackdropFilter opens a container that applies filter to the
// content behind it before painting its children.
func (b *Builder) BeginBackdropFilter(filter ImageFilter) {
	b.init()
	b.pushContainer(BackdropFilterData{Filter: filter}, b.cull.Top())
}

// BeginShaderMask opens a container whose children are masked by shader
// over maskRect.
func (b *Builder) BeginShaderMask(shader Shader, maskRect Rect, mode BlendMode) {
	b.init()
	b.pushContainer(ShaderMaskData{Shader: shader, MaskRect: maskRect, BlendMode: mode}, b.cull.Top())
}

// BeginPhysicalModel opens a container that clips its children to rr
// and draws a shadow for the given elevation.
func (b *Builder) BeginPhysicalModel(rr RoundedRect, elevation float64, color Color, devicePixelRatio float32) {
	b.init()
	data := PhysicalModelData{
		RoundedRect:      rr,
		Elevation:        elevation,
		Color:            color,
		DevicePixelRatio: devicePixelRatio,
	}
	b.pushContainer(data, b.cull.Clipped(rr.Bounds()))
}

// End closes the most recently opened container. With nothing open it
// does nothing.
func (b *Builder) End() {
	b.init()
	if !b.current.Valid() {
		b.stats.UnmatchedEnds++
		b.log().Debug("flow: End with no open container")
		return
	}
	b.cull.Pop()
	b.current = b.tree.parent(b.current)
}

// AddPerformanceOverlay adds a performance overlay leaf covering rect.
// Overlays are never culled.
func (b *Builder) AddPerformanceOverlay(options uint64, rect Rect) {
	b.init()
	b.addLeaf(PerformanceOverlayData{Options: options, Rect: rect})
}

// AddPicture adds a picture leaf drawn at offset. The picture is dropped
// if its cull rect, moved by offset, is outside the visible region.
func (b *Builder) AddPicture(offset Point, picture Picture, isComplex, willChange bool) {
	b.init()
	if !b.current.Valid() {
		b.drop(KindPicture)
		return
	}
	bounds := EmptyRect()
	if picture != nil {
		bounds = picture.CullRect().Offset(offset.X, offset.Y)
	}
	if !bounds.Intersects(b.cull.Top()) {
		b.culled(KindPicture, bounds)
		return
	}
	b.addLeaf(PictureData{
		Offset:     offset,
		Picture:    picture,
		IsComplex:  isComplex,
		WillChange: willChange,
	})
}

// AddExternalScene adds a leaf embedding a scene owned by another
// compositor. It is dropped unless the builder was created with
// WithExternalScenes(true), and culled like a picture otherwise.
func (b *Builder) AddExternalScene(offset Point, size Size, scene SceneToken, hitTestable bool) {
	b.init()
	if !b.externalScenes || !b.current.Valid() {
		b.drop(KindExternalScene)
		return
	}
	bounds := RectXYWH(offset.X, offset.Y, size.Width, size.Height)
	if !bounds.Intersects(b.cull.Top()) {
		b.culled(KindExternalScene, bounds)
		return
	}
	b.addLeaf(ExternalSceneData{
		Offset:      offset,
		Size:        size,
		Scene:       scene,
		HitTestable: hitTestable,
	})
}

// TakeTree hands the built tree to the caller and resets the builder.
// It returns nil if nothing has been built since the last call.
func (b *Builder) TakeTree() *Tree {
	b.init()
	tree := b.tree
	if !tree.root.Valid() {
		tree = nil
	} else {
		b.log().Info("flow: tree taken", "nodes", tree.Len(), "stats", b.stats)
	}

	b.tree = newTree()
	b.current = NoNode
	b.cull.Reset()
	b.stats = Stats{}
	return tree
}

// CullRect returns the visible region for content added now.
func (b *Builder) CullRect() Rect {
	b.init()
	return b.cull.Top()
}

// CullDepth returns the cull stack depth, 1 when nothing is open.
func (b *Builder) CullDepth() int {
	b.init()
	return b.cull.Depth()
}

// Stats returns the counters for the current build.
func (b *Builder) Stats() Stats {
	return b.stats
}

// init sets up the state of a zero Builder.
func (b *Builder) init() {
	if b.tree != nil {
		return
	}
	b.tree = newTree()
	b.current = NoNode
	b.cull = NewCullStack()
}

// pushContainer links a new container under the current one, or makes it
// the root, and pushes its cull rect.
func (b *Builder) pushContainer(data NodeData, cull Rect) {
	b.cull.Push(cull)

	if !b.tree.root.Valid() {
		b.current = b.tree.setRoot(data)
		b.stats.Nodes++
		return
	}

	if !b.current.Valid() {
		// The root has already been closed. The cull rect stays pushed
		// but the node is discarded; End will not pop it either, since
		// End is a no-op with no current container.
		b.stats.Detached++
		b.log().Debug("flow: group opened after root was closed, discarded",
			"kind", data.Kind(), "cull_depth", b.cull.Depth())
		return
	}

	b.current = b.tree.appendChild(b.current, data)
	b.stats.Nodes++
}

func (b *Builder) addLeaf(data NodeData) {
	if !b.current.Valid() {
		b.drop(data.Kind())
		return
	}
	b.tree.appendChild(b.current, data)
	b.stats.Nodes++
}

func (b *Builder) drop(kind Kind) {
	b.stats.Dropped++
	b.log().Debug("flow: leaf dropped", "kind", kind, "open", b.current.Valid())
}

func (b *Builder) culled(kind Kind, bounds Rect) {
	b.stats.Culled++
	b.log().Debug("flow: leaf culled", "kind", kind, "bounds", bounds, "cull", b.cull.Top())
}

func (b *Builder) log() *slog.Logger {
	if b.logger != nil {
		return b.logger
	}
	return Logger()
}
