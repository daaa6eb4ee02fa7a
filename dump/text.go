// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dump

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/gogpu/flow"
)

func init() {
	Register("text", func() Dumper { return TextDumper{Indent: "  "} })
}

// TextDumper prints one node per line, indented by depth, with the node
// attributes as sorted key=value pairs.
type TextDumper struct {
	Indent string
}

// Dump implements Dumper. A nil tree prints nothing.
func (d TextDumper) Dump(w io.Writer, tree *flow.Tree) error {
	bw := bufio.NewWriter(w)
	tree.Walk(func(_ flow.NodeID, n flow.Node, depth int) bool {
		bw.WriteString(strings.Repeat(d.Indent, depth))
		bw.WriteString(n.Kind().String())

		a := attrs(n.Data)
		keys := make([]string, 0, len(a))
		for k := range a {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(bw, " %s=%s", k, textValue(a[k]))
		}
		bw.WriteByte('\n')
		return true
	})
	return bw.Flush()
}

func textValue(v any) string {
	if s, ok := v.(string); ok && s == "" {
		return `""`
	}
	return fmt.Sprint(v)
}
