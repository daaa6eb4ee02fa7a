// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package flow

// CullStack tracks the visible region of each open container.
// The stack always holds at least one entry: the sentinel LargestRect,
// which stands for "no group open, everything visible".
type CullStack struct {
	rects []Rect
}

// NewCullStack creates a cull stack holding only the sentinel.
func NewCullStack() *CullStack {
	s := &CullStack{rects: make([]Rect, 0, 8)}
	s.rects = append(s.rects, LargestRect())
	return s
}

// Push adds a cull rect for a newly opened container.
func (s *CullStack) Push(r Rect) {
	s.rects = append(s.rects, r)
}

// Pop removes and returns the top cull rect.
// Returns false if only the sentinel remains; the sentinel is never popped.
func (s *CullStack) Pop() (Rect, bool) {
	if len(s.rects) <= 1 {
		return Rect{}, false
	}
	r := s.rects[len(s.rects)-1]
	s.rects = s.rects[:len(s.rects)-1]
	return r, true
}

// Top returns the current cull rect without removing it.
func (s *CullStack) Top() Rect {
	return s.rects[len(s.rects)-1]
}

// Depth returns the stack depth (1 = only the sentinel).
func (s *CullStack) Depth() int {
	return len(s.rects)
}

// Reset drops everything above the sentinel.
func (s *CullStack) Reset() {
	s.rects = s.rects[:1]
}

// Transformed returns the cull rect for children of a transform container:
// the top rect mapped into the child space through the inverse of m.
// A singular matrix disables culling below it.
func (s *CullStack) Transformed(m Matrix) (Rect, bool) {
	inv, ok := m.Invert()
	if !ok {
		return LargestRect(), false
	}
	return inv.MapRect(s.Top()), true
}

// Clipped returns the cull rect for children of a clip container whose
// shape is bounded by clip. When nothing is visible the result is empty,
// so every leaf test below it fails.
func (s *CullStack) Clipped(clip Rect) Rect {
	r, ok := clip.Intersect(s.Top())
	if !ok {
		return EmptyRect()
	}
	return r
}
