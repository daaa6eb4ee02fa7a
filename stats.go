// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package flow

import "log/slog"

// Stats counts what a Builder did with the commands of the current build.
// Counters reset when the tree is taken.
type Stats struct {
	// Nodes is the number of nodes linked into the tree.
	Nodes int

	// Culled is the number of leaves discarded because they fell
	// outside the cull rect.
	Culled int

	// Dropped is the number of leaves discarded because no container
	// was open, or because the leaf kind is disabled.
	Dropped int

	// Detached is the number of groups opened with no current container
	// after the root was closed. Their nodes were discarded.
	Detached int

	// UnmatchedEnds is the number of End calls with nothing open.
	UnmatchedEnds int
}

// LogValue implements slog.LogValuer.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("nodes", s.Nodes),
		slog.Int("culled", s.Culled),
		slog.Int("dropped", s.Dropped),
		slog.Int("detached", s.Detached),
		slog.Int("unmatched_ends", s.UnmatchedEnds),
	)
}
