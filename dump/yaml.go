// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dump

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/flow"
)

func init() {
	Register("yaml", func() Dumper { return YAMLDumper{} })
}

// YAMLDumper writes the tree as a YAML document.
type YAMLDumper struct{}

// Dump implements Dumper.
func (YAMLDumper) Dump(w io.Writer, tree *flow.Tree) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(viewOf(tree)); err != nil {
		return fmt.Errorf("dump: yaml: %w", err)
	}
	return enc.Close()
}
