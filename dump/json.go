// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dump

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gogpu/flow"
)

func init() {
	Register("json", func() Dumper { return JSONDumper{} })
}

// JSONDumper writes the tree as one indented JSON document. A nil tree
// is written as null.
type JSONDumper struct{}

// Dump implements Dumper.
func (JSONDumper) Dump(w io.Writer, tree *flow.Tree) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(viewOf(tree)); err != nil {
		return fmt.Errorf("dump: json: %w", err)
	}
	return nil
}
