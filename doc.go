// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package flow builds retained layer trees for a frame rendering pipeline.
//
// # Overview
//
// A producer describes a frame as a stream of commands: Begin* opens a
// container (transform, clip, opacity, filters, physical model), End
// closes it, and Add* appends a leaf (picture, performance overlay,
// external scene). A [Builder] turns that stream into a [Tree] which is
// then handed to a rasterizer with [Builder.TakeTree].
//
// # Culling
//
// While building, the builder keeps a stack of cull rects: the region of
// the current coordinate space that can still reach the screen. Clips
// shrink it, transforms map it through their inverse, and effects pass it
// through unchanged. A picture or external scene whose bounds miss the
// current cull rect is discarded before a node is ever created.
//
// # Tolerance
//
// The builder does not validate nesting. Extra End calls are ignored,
// leaves with no open container are dropped and a singular transform
// turns culling off beneath it. Nothing in the package returns an error
// for a bad command stream.
//
// # Tree layout
//
// Nodes are stored in one table and addressed by [NodeID]. Containers
// list their children in paint order; each node records its parent for
// navigation only. Walk visits nodes depth-first in paint order:
//
//	tree.Walk(func(id flow.NodeID, n flow.Node, depth int) bool {
//	    fmt.Printf("%*s%s\n", depth*2, "", n.Kind())
//	    return true
//	})
package flow
