// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package flow

import "fmt"

// Tree is a finished layer tree. Nodes live in a single table and refer
// to each other by NodeID, so handing a Tree to the rasterizer moves the
// whole table in one step.
//
// A Tree is not safe for concurrent mutation, but once taken from a
// Builder nothing mutates it and it may be read from any goroutine.
type Tree struct {
	nodes []Node
	root  NodeID
}

func newTree() *Tree {
	return &Tree{
		nodes: make([]Node, 0, 16),
		root:  NoNode,
	}
}

// Root returns the root node, or NoNode for an empty tree.
func (t *Tree) Root() NodeID {
	if t == nil {
		return NoNode
	}
	return t.root
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// Node returns the node addressed by id. The returned node's Children
// slice is shared with the tree and must not be modified.
func (t *Tree) Node(id NodeID) (Node, bool) {
	if t == nil || !id.Valid() || int(id) >= len(t.nodes) {
		return Node{}, false
	}
	return t.nodes[id], true
}

// Children returns the children of id in paint order.
func (t *Tree) Children(id NodeID) []NodeID {
	n, ok := t.Node(id)
	if !ok {
		return nil
	}
	return n.Children
}

// WalkFunc is called for every visited node. Returning false skips the
// node's children.
type WalkFunc func(id NodeID, n Node, depth int) bool

// Walk visits the tree depth-first in paint order, starting at the root.
func (t *Tree) Walk(fn WalkFunc) {
	if t.Root().Valid() {
		t.walk(t.root, 0, fn)
	}
}

func (t *Tree) walk(id NodeID, depth int, fn WalkFunc) {
	n := t.nodes[id]
	if !fn(id, n, depth) {
		return
	}
	for _, child := range n.Children {
		t.walk(child, depth+1, fn)
	}
}

// Count returns the number of nodes of the given kind.
func (t *Tree) Count(kind Kind) int {
	if t == nil {
		return 0
	}
	count := 0
	for i := range t.nodes {
		if t.nodes[i].Kind() == kind {
			count++
		}
	}
	return count
}

// setRoot stores data as the root node.
func (t *Tree) setRoot(data NodeData) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{Parent: NoNode, Data: data})
	t.root = id
	return id
}

// appendChild stores data as the last child of parent.
// parent must be a container already in the tree; anything else is a
// builder bug, not bad input, and panics.
func (t *Tree) appendChild(parent NodeID, data NodeData) NodeID {
	if !parent.Valid() || int(parent) >= len(t.nodes) {
		panic(fmt.Sprintf("flow: append to invalid container %d", parent))
	}
	if k := t.nodes[parent].Kind(); !k.IsContainer() {
		panic(fmt.Sprintf("flow: append to leaf node %d (%s)", parent, k))
	}
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{Parent: parent, Data: data})
	t.nodes[parent].Children = append(t.nodes[parent].Children, id)
	return id
}

// parent returns the parent of id.
func (t *Tree) parent(id NodeID) NodeID {
	return t.nodes[id].Parent
}
