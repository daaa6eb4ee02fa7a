// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package recording captures layer builder command streams so they can be
// stored, inspected and replayed.
//
// A Recorder has the same command methods as flow.Builder but appends a
// typed Command for each call instead of building a tree. The resulting
// Recording can be played back into any Target, including a
// flow.Builder, and encoded to or decoded from YAML.
//
// # Example
//
//	rec := recording.NewRecorder()
//	rec.BeginClipRect(flow.NewRect(0, 0, 800, 600))
//	rec.AddPicture(flow.Pt(0, 0), pic, false, false)
//	rec.End()
//	r := rec.Finish()
//
//	b := flow.NewBuilder()
//	r.Playback(b)
//	tree := b.TakeTree()
//
// Opaque references (filters, shaders, exported scenes) are stored in YAML
// by name. Decoding turns them into Ref values, and pictures into
// *flow.RecordedPicture values carrying their name and bounds.
package recording
