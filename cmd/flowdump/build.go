// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gogpu/flow"
	"github.com/gogpu/flow/dump"
	"github.com/gogpu/flow/internal/config"
	"github.com/gogpu/flow/recording"
)

var (
	flagFormat         string
	flagStats          bool
	flagExternalScenes bool
)

// errEmptyTree is returned when the recording never opens a root group.
var errEmptyTree = errors.New("recording built no tree")

var buildCmd = &cobra.Command{
	Use:   "build <recording.yaml|->",
	Short: "Build a layer tree from a recording",
	Long:  "Decodes a YAML recording, plays it into a builder and prints the tree. Use - to read from stdin.",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&flagFormat, "format", "f", "text", "output format (see 'flowdump formats')")
	buildCmd.Flags().BoolVar(&flagStats, "stats", false, "print build counters to stderr")
	buildCmd.Flags().BoolVar(&flagExternalScenes, "external-scenes", false, "accept external scene leaves (overrides the settings file)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	d, err := dump.New(flagFormat)
	if err != nil {
		return err
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("external-scenes") {
		settings.Builder.ExternalScenes = flagExternalScenes
	}

	level, err := settings.Level()
	if err != nil {
		return err
	}
	if flagVerbose {
		level = slog.LevelDebug
	}
	flow.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	defer flow.SetLogger(nil)

	rec, err := readRecording(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}

	tree, stats := build(rec, settings)
	if flagStats {
		writeStats(cmd.ErrOrStderr(), stats)
	}
	if tree == nil {
		return errEmptyTree
	}
	return d.Dump(cmd.OutOrStdout(), tree)
}

func loadSettings() (config.Settings, error) {
	if flagSettings == "" {
		return config.Settings{}, nil
	}
	return config.Load(flagSettings)
}

// readRecording decodes the recording at path, or stdin for "-".
func readRecording(stdin io.Reader, path string) (*recording.Recording, error) {
	if path == "-" {
		return recording.Decode(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening recording: %w", err)
	}
	defer f.Close()

	rec, err := recording.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// build plays rec into a fresh builder and takes the tree. Stats are
// read before the tree is taken, since taking resets them.
func build(rec *recording.Recording, settings config.Settings) (*flow.Tree, flow.Stats) {
	b := flow.NewBuilder(settings.Options()...)
	rec.Playback(b)
	stats := b.Stats()
	return b.TakeTree(), stats
}

// writeStats prints build counters as aligned columns.
func writeStats(w io.Writer, s flow.Stats) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NODES\tCULLED\tDROPPED\tDETACHED\tUNMATCHED_ENDS")
	fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\n", s.Nodes, s.Culled, s.Dropped, s.Detached, s.UnmatchedEnds)
	tw.Flush()
}
