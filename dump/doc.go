// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package dump prints layer trees built by flow.Builder.
//
// Formats are looked up by name. The package registers "text", "json"
// and "yaml" itself; other packages may add more with Register.
//
//	d, err := dump.New("text")
//	if err != nil {
//	    return err
//	}
//	return d.Dump(os.Stdout, tree)
//
// The text format prints one node per line, indented by depth:
//
//	ClipRect rect=[0 0 100 100]
//	  Transform matrix=[1 0 10 0 1 10]
//	    Picture bounds=[0 0 20 20] complex=false offset=[0 0] picture=a will_change=false
package dump
