// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads builder settings from TOML files.
//
// A settings file looks like:
//
//	[builder]
//	external_scenes = true
//	log_level = "debug"
//
//	[raster]
//	tracing_threshold = 4
//	checkerboard_raster_cache_images = false
//	checkerboard_offscreen_layers = true
//
// Every key is optional. Unknown keys are rejected.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/flow"
)

// ErrInvalidSettings is returned when a settings file cannot be decoded.
var ErrInvalidSettings = errors.New("config: invalid settings")

// Settings is the decoded form of a settings file.
type Settings struct {
	Builder Builder             `toml:"builder"`
	Raster  flow.RasterSettings `toml:"raster"`
}

// Builder holds the builder construction switches.
type Builder struct {
	ExternalScenes bool   `toml:"external_scenes"`
	LogLevel       string `toml:"log_level"`
}

// Load reads settings from a TOML file.
func Load(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return Settings{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode reads settings from TOML. Empty input yields zero Settings.
func Decode(r io.Reader) (Settings, error) {
	var s Settings
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Settings{}, fmt.Errorf("%w: %s", ErrInvalidSettings, strings.TrimSpace(strict.String()))
		}
		return Settings{}, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if _, err := s.Level(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Level parses Builder.LogLevel. An empty level is slog.LevelInfo.
func (s Settings) Level() (slog.Level, error) {
	var level slog.Level
	if s.Builder.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s.Builder.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level: %v", ErrInvalidSettings, err)
	}
	return level, nil
}

// Options returns the builder options described by s.
func (s Settings) Options() []flow.BuilderOption {
	return []flow.BuilderOption{
		flow.WithExternalScenes(s.Builder.ExternalScenes),
		flow.WithSettings(s.Raster),
	}
}
