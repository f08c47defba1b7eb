// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stitch

import (
	"fmt"
	"strings"
)

// Backend identifies the rendering backend a Block paints with.
type Backend uint8

// Backend constants.
const (
	// BackendNone is the zero value; no block accepts it.
	BackendNone Backend = iota

	// BackendCanvas paints into a retained 2D raster surface. Its output
	// depends on the relative order of members, not only on membership.
	BackendCanvas

	// BackendSVG maintains one vector element per drawable.
	BackendSVG

	// BackendDOM maintains one positioned element per drawable.
	BackendDOM

	// BackendWebGL batches drawables into GPU instance buffers.
	BackendWebGL

	backendCount
)

var backendNames = [backendCount]string{
	BackendNone:   "none",
	BackendCanvas: "canvas",
	BackendSVG:    "svg",
	BackendDOM:    "dom",
	BackendWebGL:  "webgl",
}

// String returns the lower-case backend name.
func (b Backend) String() string {
	if b < backendCount {
		return backendNames[b]
	}
	return fmt.Sprintf("backend(%d)", uint8(b))
}

// Valid reports whether b names a real backend.
func (b Backend) Valid() bool {
	return b > BackendNone && b < backendCount
}

// ParseBackend returns the backend with the given name (case-insensitive).
func ParseBackend(name string) (Backend, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for b := BackendCanvas; b < backendCount; b++ {
		if backendNames[b] == name {
			return b, nil
		}
	}
	return BackendNone, fmt.Errorf("stitch: unknown backend %q", name)
}

// Renderer is the opaque backend tag a Drawable is initialized with.
// The low byte selects the Backend; the remaining bits are backend-specific
// flags that the protocol carries but never interprets.
type Renderer uint32

const (
	backendMask  Renderer = 0xff
	flagShift             = 8
	maxFlagValue          = 1<<(32-flagShift) - 1
)

// NewRenderer builds a renderer tag for backend b with the given flags.
// Flags wider than 24 bits are truncated.
func NewRenderer(b Backend, flags uint32) Renderer {
	return Renderer(b) | Renderer(flags&maxFlagValue)<<flagShift
}

// Backend returns the backend selected by r.
func (r Renderer) Backend() Backend {
	return Backend(r & backendMask)
}

// Flags returns the backend-specific flag bits of r.
func (r Renderer) Flags() uint32 {
	return uint32(r >> flagShift)
}

// IsCanvas reports whether r selects the Canvas backend.
func (r Renderer) IsCanvas() bool { return r.Backend() == BackendCanvas }

// IsSVG reports whether r selects the SVG backend.
func (r Renderer) IsSVG() bool { return r.Backend() == BackendSVG }

// IsDOM reports whether r selects the DOM backend.
func (r Renderer) IsDOM() bool { return r.Backend() == BackendDOM }

// IsWebGL reports whether r selects the WebGL backend.
func (r Renderer) IsWebGL() bool { return r.Backend() == BackendWebGL }

// String returns "backend" or "backend+0xFLAGS".
func (r Renderer) String() string {
	if f := r.Flags(); f != 0 {
		return fmt.Sprintf("%s+%#x", r.Backend(), f)
	}
	return r.Backend().String()
}

// MovePredicate decides whether a block owning a drawable with the given
// renderer must be told about a membership-preserving move. See
// MoveObserver.
type MovePredicate func(Renderer) bool

// CanvasMoves is the default MovePredicate: only order-sensitive Canvas
// blocks are notified.
func CanvasMoves(r Renderer) bool {
	return r.IsCanvas()
}
