// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command flowdump replays a recorded command stream into a layer tree
// builder and prints the resulting tree.
//
// Usage:
//
//	flowdump build scene.yaml --format text --stats
//	flowdump build - --settings flow.toml < scene.yaml
//	flowdump formats
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/flow/dump"
)

var (
	flagSettings string
	flagVerbose  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "flowdump",
	Short:         "Build and inspect culled layer trees",
	Long:          "flowdump plays YAML command recordings into a layer tree builder and prints the tree that survives culling.",
	SilenceErrors: true,
	SilenceUsage:  true,
	// No Run, prints help by default.
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the output formats",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, name := range dump.Formats() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSettings, "settings", "", "TOML settings file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log builder decisions to stderr")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(formatsCmd)
}
