// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dump

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/gogpu/flow"
)

// Dumper writes a layer tree in one output format.
type Dumper interface {
	Dump(w io.Writer, tree *flow.Tree) error
}

// Factory creates a Dumper. Factories are registered via Register and
// called by New.
type Factory func() Dumper

var (
	registryMu sync.RWMutex
	formats    = make(map[string]Factory)
)

// Register makes a format available by name. It is typically called
// from init, following the database/sql driver pattern:
//
//	func init() {
//	    dump.Register("dot", func() dump.Dumper { return dotDumper{} })
//	}
//
// Register panics if factory is nil or the name is already taken.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("dump: Register factory is nil")
	}
	if _, dup := formats[name]; dup {
		panic("dump: Register called twice for " + name)
	}
	formats[name] = factory
}

// Unregister removes a format. It is a no-op for unknown names.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(formats, name)
}

// New creates a Dumper for the named format.
func New(name string) (Dumper, error) {
	registryMu.RLock()
	factory, ok := formats[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("dump: unknown format %q (have %v)", name, Formats())
	}
	return factory(), nil
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a format with the given name exists.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := formats[name]
	return ok
}
