// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package flow

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pic(minX, minY, maxX, maxY float32) *RecordedPicture {
	return &RecordedPicture{Bounds: NewRect(minX, minY, maxX, maxY)}
}

// childKinds returns the kinds of the children of id, in paint order.
func childKinds(t *testing.T, tree *Tree, id NodeID) []Kind {
	t.Helper()
	var kinds []Kind
	for _, c := range tree.Children(id) {
		n, ok := tree.Node(c)
		require.True(t, ok)
		kinds = append(kinds, n.Kind())
	}
	return kinds
}

func TestBuilder_OpacityWithPicture(t *testing.T) {
	b := NewBuilder()
	b.BeginOpacity(128)
	b.AddPicture(Pt(0, 0), pic(0, 0, 10, 10), false, false)
	b.End()

	tree := b.TakeTree()
	require.NotNil(t, tree)

	root, ok := tree.Node(tree.Root())
	require.True(t, ok)
	assert.Equal(t, KindOpacity, root.Kind())
	assert.Equal(t, OpacityData{Alpha: 128}, root.Data)
	assert.Equal(t, NoNode, root.Parent)
	require.Len(t, root.Children, 1)

	leaf, ok := tree.Node(root.Children[0])
	require.True(t, ok)
	data, ok := leaf.Data.(PictureData)
	require.True(t, ok)
	assert.Equal(t, Pt(0, 0), data.Offset)
	assert.Equal(t, NewRect(0, 0, 10, 10), data.Picture.CullRect())
	assert.Equal(t, tree.Root(), leaf.Parent)
	assert.Nil(t, leaf.Children)
}

func TestBuilder_ClipCullsOffscreenPicture(t *testing.T) {
	b := NewBuilder()
	b.BeginClipRect(NewRect(0, 0, 5, 5))
	b.AddPicture(Pt(10, 10), pic(0, 0, 2, 2), false, false)
	b.End()

	tree := b.TakeTree()
	require.NotNil(t, tree)
	assert.Equal(t, KindClipRect, mustNode(t, tree, tree.Root()).Kind())
	assert.Empty(t, tree.Children(tree.Root()))
	assert.Equal(t, 1, tree.Len())
}

func TestBuilder_ClipPictureIntersection(t *testing.T) {
	tests := []struct {
		name   string
		clip   Rect
		offset Point
		bounds Rect
		want   bool
	}{
		{"inside", NewRect(0, 0, 100, 100), Pt(10, 10), NewRect(0, 0, 5, 5), true},
		{"partially overlapping", NewRect(0, 0, 100, 100), Pt(95, 95), NewRect(0, 0, 10, 10), true},
		{"offset moves out", NewRect(0, 0, 100, 100), Pt(100, 0), NewRect(0, 0, 10, 10), false},
		{"touching edge", NewRect(0, 0, 10, 10), Pt(10, 0), NewRect(0, 0, 5, 5), false},
		{"negative offset moves in", NewRect(0, 0, 10, 10), Pt(-195, -195), NewRect(200, 200, 210, 210), true},
		{"empty picture", NewRect(0, 0, 10, 10), Pt(0, 0), NewRect(5, 5, 5, 5), false},
		{"empty clip", NewRect(5, 5, 5, 5), Pt(0, 0), NewRect(0, 0, 10, 10), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			b.BeginClipRect(tt.clip)
			b.AddPicture(tt.offset, &RecordedPicture{Bounds: tt.bounds}, true, true)
			b.End()

			stats := b.Stats()
			tree := b.TakeTree()
			require.NotNil(t, tree)
			if tt.want {
				assert.Equal(t, []Kind{KindPicture}, childKinds(t, tree, tree.Root()))
				assert.Equal(t, 0, stats.Culled)
			} else {
				assert.Empty(t, tree.Children(tree.Root()))
				assert.Equal(t, 1, stats.Culled)
			}
		})
	}
}

func TestBuilder_NestedClipsIntersect(t *testing.T) {
	b := NewBuilder()
	b.BeginClipRect(NewRect(0, 0, 100, 100))
	b.BeginClipRect(NewRect(50, 50, 200, 200))
	assert.Equal(t, NewRect(50, 50, 100, 100), b.CullRect())

	// Inside the outer clip but outside the intersection.
	b.AddPicture(Pt(0, 0), pic(0, 0, 40, 40), false, false)
	// Inside the inner clip but outside the outer one.
	b.AddPicture(Pt(0, 0), pic(150, 150, 160, 160), false, false)
	b.AddPicture(Pt(0, 0), pic(60, 60, 70, 70), false, false)
	b.End()
	b.End()

	tree := b.TakeTree()
	inner := tree.Children(tree.Root())
	require.Len(t, inner, 1)
	assert.Equal(t, []Kind{KindPicture}, childKinds(t, tree, inner[0]))
}

func TestBuilder_EmptyClipKeepsStructure(t *testing.T) {
	b := NewBuilder()
	b.BeginClipRect(NewRect(0, 0, 5, 5))
	b.BeginClipRect(NewRect(10, 10, 20, 20))
	assert.True(t, b.CullRect().IsEmpty())

	b.BeginOpacity(255)
	b.AddPicture(Pt(0, 0), pic(-1000, -1000, 1000, 1000), false, false)
	b.End()
	b.End()
	b.End()
	assert.Equal(t, 1, b.CullDepth())

	tree := b.TakeTree()
	require.NotNil(t, tree)
	assert.Equal(t, 3, tree.Len())
	assert.Equal(t, 0, tree.Count(KindPicture))
	assert.Equal(t, 1, tree.Count(KindOpacity))
}

func TestBuilder_TransformCullRect(t *testing.T) {
	tests := []struct {
		name   string
		matrix Matrix
		want   Rect
	}{
		{"identity", Identity(), NewRect(0, 0, 100, 100)},
		{"translate", Translate(10, 20), NewRect(-10, -20, 90, 80)},
		{"scale up shrinks cull", Scale(2, 2), NewRect(0, 0, 50, 50)},
		{"scale down grows cull", Scale(0.5, 0.25), NewRect(0, 0, 200, 400)},
		{"mirror", Scale(-1, 1), NewRect(-100, 0, 0, 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			b.BeginClipRect(NewRect(0, 0, 100, 100))
			parent := b.CullRect()

			b.BeginTransform(tt.matrix)
			assert.Equal(t, tt.want, b.CullRect())
			assert.Equal(t, 3, b.CullDepth())

			b.End()
			assert.Equal(t, parent, b.CullRect())
			b.End()
			assert.Equal(t, 1, b.CullDepth())
		})
	}
}

func TestBuilder_TransformRotation(t *testing.T) {
	b := NewBuilder()
	b.BeginClipRect(NewRect(0, 0, 100, 50))
	b.BeginTransform(Rotate(halfPi))

	got := b.CullRect()
	assert.InDelta(t, 0, got.MinX, 1e-3)
	assert.InDelta(t, -100, got.MinY, 1e-3)
	assert.InDelta(t, 50, got.MaxX, 1e-3)
	assert.InDelta(t, 0, got.MaxY, 1e-3)
}

func TestBuilder_SingularTransformDisablesCulling(t *testing.T) {
	b := NewBuilder()
	b.BeginClipRect(NewRect(0, 0, 10, 10))
	b.BeginTransform(Scale(0, 1))
	assert.Equal(t, LargestRect(), b.CullRect())

	b.AddPicture(Pt(1e6, 1e6), pic(0, 0, 1, 1), false, false)
	b.End()
	assert.Equal(t, NewRect(0, 0, 10, 10), b.CullRect())
	b.End()

	tree := b.TakeTree()
	transform := tree.Children(tree.Root())
	require.Len(t, transform, 1)
	assert.Equal(t, []Kind{KindPicture}, childKinds(t, tree, transform[0]))
}

func TestBuilder_TransformUnderSentinel(t *testing.T) {
	b := NewBuilder()
	b.BeginTransform(Scale(0.5, 0.5))
	assert.Equal(t, LargestRect(), b.CullRect())
	b.BeginTransform(Rotate(0.3))
	assert.Equal(t, LargestRect(), b.CullRect())
	b.BeginTransform(Scale(2, 2))
	assert.Equal(t, LargestRect(), b.CullRect(), "an upscale must not shrink the unbounded rect")
}

func TestBuilder_EffectsPassCullThrough(t *testing.T) {
	clip := NewRect(1, 2, 30, 40)
	begins := map[string]func(b *Builder){
		"opacity":         func(b *Builder) { b.BeginOpacity(10) },
		"color filter":    func(b *Builder) { b.BeginColorFilter(ARGB(255, 1, 2, 3), BlendSrcOver) },
		"backdrop filter": func(b *Builder) { b.BeginBackdropFilter("blur") },
		"shader mask":     func(b *Builder) { b.BeginShaderMask("gradient", NewRect(0, 0, 5, 5), BlendDstIn) },
	}
	for name, begin := range begins {
		t.Run(name, func(t *testing.T) {
			b := NewBuilder()
			b.BeginClipRect(clip)
			begin(b)
			assert.Equal(t, clip, b.CullRect())
			assert.Equal(t, 3, b.CullDepth())
		})
	}
}

func TestBuilder_ShapeClipsIntersect(t *testing.T) {
	outer := NewRect(0, 0, 100, 100)
	want := NewRect(50, 50, 100, 100)
	begins := map[string]func(b *Builder){
		"rounded rect": func(b *Builder) {
			b.BeginClipRoundedRect(NewRoundedRect(NewRect(50, 50, 150, 150), 8))
		},
		"path": func(b *Builder) {
			b.BeginClipPath(NewPath().MoveTo(50, 50).LineTo(150, 60).QuadTo(150, 150, 60, 150).Close())
		},
		"physical model": func(b *Builder) {
			b.BeginPhysicalModel(NewRoundedRect(NewRect(50, 50, 150, 150), 4), 6, ARGB(255, 0, 0, 0), 2)
		},
	}
	for name, begin := range begins {
		t.Run(name, func(t *testing.T) {
			b := NewBuilder()
			b.BeginClipRect(outer)
			begin(b)
			assert.Equal(t, want, b.CullRect())
		})
	}
}

func TestBuilder_PhysicalModelParameters(t *testing.T) {
	b := NewBuilder()
	rr := NewRoundedRect(NewRect(0, 0, 10, 10), 2)
	b.BeginPhysicalModel(rr, 4.5, ARGB(200, 10, 20, 30), 3)
	b.End()

	tree := b.TakeTree()
	n := mustNode(t, tree, tree.Root())
	assert.Equal(t, PhysicalModelData{
		RoundedRect:      rr,
		Elevation:        4.5,
		Color:            ARGB(200, 10, 20, 30),
		DevicePixelRatio: 3,
	}, n.Data)
}

func TestBuilder_WellNestedDepthReturnsToSentinel(t *testing.T) {
	b := NewBuilder()
	assert.Equal(t, 1, b.CullDepth())

	b.BeginTransform(Translate(5, 5))
	b.BeginClipRect(NewRect(0, 0, 50, 50))
	b.BeginOpacity(100)
	b.End()
	b.BeginColorFilter(ARGB(255, 255, 0, 0), BlendMultiply)
	b.BeginShaderMask(nil, NewRect(0, 0, 1, 1), BlendSrc)
	assert.Equal(t, 5, b.CullDepth())
	b.End()
	b.End()
	b.End()
	b.BeginBackdropFilter(nil)
	b.End()
	b.End()

	assert.Equal(t, 1, b.CullDepth())
	assert.Equal(t, LargestRect(), b.CullRect())
}

func TestBuilder_UnmatchedEndIsNoop(t *testing.T) {
	b := NewBuilder()
	b.End()
	assert.Equal(t, 1, b.CullDepth())
	assert.Nil(t, b.TakeTree())

	b.BeginClipRect(NewRect(0, 0, 10, 10))
	b.AddPicture(Pt(0, 0), pic(0, 0, 1, 1), false, false)
	b.End()
	b.End()
	b.End()
	assert.Equal(t, 1, b.CullDepth())
	assert.Equal(t, 2, b.Stats().UnmatchedEnds)

	tree := b.TakeTree()
	require.NotNil(t, tree)
	assert.Equal(t, 2, tree.Len())
}

func TestBuilder_LeavesBeforeBeginAreDropped(t *testing.T) {
	b := NewBuilder(WithExternalScenes(true))
	b.AddPicture(Pt(0, 0), pic(0, 0, 10, 10), false, false)
	b.AddPerformanceOverlay(0xF, NewRect(0, 0, 10, 10))
	b.AddExternalScene(Pt(0, 0), Size{Width: 10, Height: 10}, "scene", true)

	assert.Equal(t, 3, b.Stats().Dropped)
	assert.Equal(t, 1, b.CullDepth())
	assert.Nil(t, b.TakeTree())
}

func TestBuilder_TakeTreeTwice(t *testing.T) {
	b := NewBuilder()
	b.BeginOpacity(1)
	b.End()

	require.NotNil(t, b.TakeTree())
	assert.Nil(t, b.TakeTree())
}

func TestBuilder_ReuseAfterTakeTree(t *testing.T) {
	b := NewBuilder()
	b.BeginClipRect(NewRect(0, 0, 1, 1))
	// Taken while still open: the builder starts over from scratch.
	first := b.TakeTree()
	require.NotNil(t, first)
	assert.Equal(t, 1, b.CullDepth())
	assert.Equal(t, Stats{}, b.Stats())

	b.BeginOpacity(50)
	b.AddPicture(Pt(100, 100), pic(0, 0, 1, 1), false, false)
	b.End()
	second := b.TakeTree()
	require.NotNil(t, second)

	assert.Equal(t, KindOpacity, mustNode(t, second, second.Root()).Kind())
	assert.Equal(t, []Kind{KindPicture}, childKinds(t, second, second.Root()))
	// The first tree is not touched by later building.
	assert.Equal(t, 1, first.Len())
	assert.Equal(t, KindClipRect, mustNode(t, first, first.Root()).Kind())
}

func TestBuilder_GroupAfterRootClosedIsDetached(t *testing.T) {
	b := NewBuilder()
	b.BeginOpacity(255)
	b.End()

	b.BeginClipRect(NewRect(0, 0, 10, 10))
	assert.Equal(t, 2, b.CullDepth())
	assert.Equal(t, NewRect(0, 0, 10, 10), b.CullRect())

	b.AddPicture(Pt(0, 0), pic(0, 0, 5, 5), false, false)
	// End has no current container, so the detached cull rect stays.
	b.End()
	assert.Equal(t, 2, b.CullDepth())

	stats := b.Stats()
	assert.Equal(t, 1, stats.Detached)
	assert.Equal(t, 1, stats.Dropped)
	assert.Equal(t, 1, stats.UnmatchedEnds)
	assert.Equal(t, 1, stats.Nodes)

	tree := b.TakeTree()
	require.NotNil(t, tree)
	assert.Equal(t, 1, tree.Len())
	assert.Empty(t, tree.Children(tree.Root()))
	assert.Equal(t, 1, b.CullDepth())
}

func TestBuilder_PerformanceOverlayIsNotCulled(t *testing.T) {
	b := NewBuilder()
	b.BeginClipRect(NewRect(0, 0, 5, 5))
	b.AddPerformanceOverlay(0b101, NewRect(500, 500, 600, 600))
	b.End()

	tree := b.TakeTree()
	children := tree.Children(tree.Root())
	require.Len(t, children, 1)
	assert.Equal(t, PerformanceOverlayData{Options: 0b101, Rect: NewRect(500, 500, 600, 600)},
		mustNode(t, tree, children[0]).Data)
}

func TestBuilder_ExternalSceneCapability(t *testing.T) {
	size := Size{Width: 10, Height: 10}

	t.Run("disabled", func(t *testing.T) {
		b := NewBuilder()
		b.BeginOpacity(255)
		b.AddExternalScene(Pt(0, 0), size, "token", true)
		b.End()
		tree := b.TakeTree()
		assert.Empty(t, tree.Children(tree.Root()))
	})

	t.Run("enabled", func(t *testing.T) {
		b := NewBuilder(WithExternalScenes(true))
		b.BeginClipRect(NewRect(0, 0, 20, 20))
		b.AddExternalScene(Pt(5, 5), size, "visible", true)
		b.AddExternalScene(Pt(20, 0), size, "culled", false)
		b.End()
		assert.Equal(t, 1, b.Stats().Culled)

		tree := b.TakeTree()
		children := tree.Children(tree.Root())
		require.Len(t, children, 1)
		assert.Equal(t, ExternalSceneData{
			Offset:      Pt(5, 5),
			Size:        size,
			Scene:       "visible",
			HitTestable: true,
		}, mustNode(t, tree, children[0]).Data)
	})
}

func TestBuilder_PaintOrder(t *testing.T) {
	b := NewBuilder()
	b.BeginTransform(Identity())
	b.AddPicture(Pt(0, 0), pic(0, 0, 1, 1), false, false)
	b.BeginOpacity(10)
	b.End()
	b.AddPerformanceOverlay(1, NewRect(0, 0, 1, 1))
	b.BeginClipRect(NewRect(0, 0, 1, 1))
	b.End()
	b.End()

	tree := b.TakeTree()
	assert.Equal(t,
		[]Kind{KindPicture, KindOpacity, KindPerformanceOverlay, KindClipRect},
		childKinds(t, tree, tree.Root()))
}

func TestBuilder_NilPictureIsCulled(t *testing.T) {
	b := NewBuilder()
	b.BeginOpacity(255)
	b.AddPicture(Pt(0, 0), nil, false, false)
	b.End()
	assert.Equal(t, 1, b.Stats().Culled)
}

func TestBuilder_Settings(t *testing.T) {
	b := NewBuilder(WithSettings(RasterSettings{TracingThreshold: 3}))
	assert.Equal(t, uint32(3), b.TracingThreshold())
	assert.False(t, b.CheckerboardRasterCacheImages())
	assert.False(t, b.CheckerboardOffscreenLayers())

	b.SetTracingThreshold(7)
	b.SetCheckerboardRasterCacheImages(true)
	b.SetCheckerboardOffscreenLayers(true)

	want := RasterSettings{
		TracingThreshold:              7,
		CheckerboardRasterCacheImages: true,
		CheckerboardOffscreenLayers:   true,
	}
	assert.Equal(t, want, b.Settings())

	// Settings are not part of the tree and survive the hand-off.
	b.TakeTree()
	assert.Equal(t, want, b.Settings())
}

func TestBuilder_Logging(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	b := NewBuilder(WithLogger(l))
	b.End()
	b.BeginClipRect(NewRect(0, 0, 1, 1))
	b.AddPicture(Pt(5, 5), pic(0, 0, 1, 1), false, false)
	b.BeginTransform(Matrix{})
	b.End()
	b.End()
	b.TakeTree()

	out := buf.String()
	assert.Contains(t, out, "End with no open container")
	assert.Contains(t, out, "leaf culled")
	assert.Contains(t, out, "singular transform")
	assert.Contains(t, out, "tree taken")
}

func TestTree_AppendChildPanicsOnInvalidContainer(t *testing.T) {
	tree := newTree()
	assert.Panics(t, func() { tree.appendChild(NoNode, OpacityData{}) })
	assert.Panics(t, func() { tree.appendChild(3, OpacityData{}) })

	root := tree.setRoot(OpacityData{})
	leaf := tree.appendChild(root, PictureData{})
	assert.Panics(t, func() { tree.appendChild(leaf, OpacityData{}) })
}

func TestBuilder_ClipPathIsCopied(t *testing.T) {
	p := NewPath().Rectangle(NewRect(0, 0, 10, 10))
	b := NewBuilder()
	b.BeginClipPath(p)
	b.End()
	p.LineTo(500, 500)

	tree := b.TakeTree()
	require.NotNil(t, tree)
	data, ok := mustNode(t, tree, tree.Root()).Data.(ClipPathData)
	require.True(t, ok)
	assert.Equal(t, NewRect(0, 0, 10, 10), data.Path.Bounds())
	assert.Len(t, data.Path.Elements(), 5)
}

func TestBuilder_ClipPathNil(t *testing.T) {
	b := NewBuilder()
	b.BeginClipPath(nil)
	assert.Equal(t, EmptyRect(), b.CullRect())
	b.End()

	tree := b.TakeTree()
	require.NotNil(t, tree)
	assert.Equal(t, ClipPathData{}, mustNode(t, tree, tree.Root()).Data)
}

func TestBuilder_ZeroValue(t *testing.T) {
	var b Builder
	assert.Equal(t, 1, b.CullDepth())
	assert.Equal(t, LargestRect(), b.CullRect())

	b.End()
	b.AddPicture(Pt(0, 0), pic(0, 0, 1, 1), false, false)
	assert.Equal(t, Stats{Dropped: 1, UnmatchedEnds: 1}, b.Stats())

	b.BeginClipRect(NewRect(0, 0, 10, 10))
	b.AddPicture(Pt(1, 1), pic(0, 0, 1, 1), false, false)
	b.AddExternalScene(Pt(1, 1), Size{Width: 1, Height: 1}, "scene", false)
	b.End()

	tree := b.TakeTree()
	require.NotNil(t, tree)
	assert.Equal(t, []Kind{KindPicture}, childKinds(t, tree, tree.Root()))
	assert.Nil(t, b.TakeTree())

	var fresh Builder
	assert.Nil(t, fresh.TakeTree())
}

func mustNode(t *testing.T, tree *Tree, id NodeID) Node {
	t.Helper()
	n, ok := tree.Node(id)
	require.True(t, ok, "node %d", id)
	return n
}
