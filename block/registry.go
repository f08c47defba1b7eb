// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package block

import (
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/stitch"
)

// Default raster size used by the built-in canvas factory.
const (
	DefaultWidth  = 256
	DefaultHeight = 256
)

// Factory creates a named block for one backend.
type Factory func(name string) stitch.Block

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	factories  = make(map[stitch.Backend]Factory)
)

func init() {
	registerDefaults()
}

func registerDefaults() {
	Register(stitch.BackendCanvas, func(name string) stitch.Block {
		return NewRaster(name, DefaultWidth, DefaultHeight)
	})
	Register(stitch.BackendSVG, func(name string) stitch.Block {
		return NewList(name, stitch.BackendSVG)
	})
	Register(stitch.BackendDOM, func(name string) stitch.Block {
		return NewList(name, stitch.BackendDOM)
	})
	Register(stitch.BackendWebGL, func(name string) stitch.Block {
		return NewBatch(name, gputypes.TextureFormatRGBA8Unorm)
	})
}

// Register registers the block factory for a backend.
//
// Register panics if:
//   - the backend is not valid
//   - factory is nil
//   - a factory for the backend is already registered
func Register(backend stitch.Backend, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if !backend.Valid() {
		panic(fmt.Sprintf("block: Register called with invalid backend %d", backend))
	}
	if factory == nil {
		panic("block: Register factory is nil")
	}
	if _, dup := factories[backend]; dup {
		panic("block: Register called twice for " + backend.String())
	}
	factories[backend] = factory
}

// Unregister removes the factory for a backend. It is a no-op if none is
// registered.
func Unregister(backend stitch.Backend) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, backend)
}

// New creates a block for backend. It returns an error if no factory is
// registered.
func New(backend stitch.Backend, name string) (stitch.Block, error) {
	registryMu.RLock()
	factory, ok := factories[backend]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("block: no factory for backend %s", backend)
	}
	return factory(name), nil
}

// MustNew is like New but panics on error.
func MustNew(backend stitch.Backend, name string) stitch.Block {
	b, err := New(backend, name)
	if err != nil {
		panic(err)
	}
	return b
}

// Backends returns the registered backends in ascending order.
func Backends() []stitch.Backend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]stitch.Backend, 0, len(factories))
	for b := range factories {
		out = append(out, b)
	}
	slices.Sort(out)
	return out
}

// IsRegistered reports whether a factory is registered for backend.
func IsRegistered(backend stitch.Backend) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[backend]
	return ok
}

// Count returns the number of registered factories.
func Count() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(factories)
}
