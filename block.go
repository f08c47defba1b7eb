// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stitch

// Block is a renderer-specific container owning a contiguous run of
// Drawables that share a backend.
//
// AddDrawable and RemoveDrawable are called during finalize, once per
// block change of a drawable, in no particular order relative to other
// drawables' calls within the same frame. A drawable moving between two
// blocks is always removed from the old block before it is added to the
// new one.
type Block interface {
	AddDrawable(d *Drawable)
	RemoveDrawable(d *Drawable)

	// MarkDirtyDrawable is called when a member drawable needs repainting.
	MarkDirtyDrawable(d *Drawable)
}

// MoveObserver is implemented by blocks whose representation depends on
// the relative order of their members. When a drawable's pending removal
// and addition resolve to the same block and backbone, no detach/attach
// happens; instead such blocks receive OnPotentiallyMovedDrawable so they
// can revalidate ordering. Only drawables whose renderer satisfies the
// pool's MovePredicate are reported.
type MoveObserver interface {
	OnPotentiallyMovedDrawable(d *Drawable)
}

// Backbone is a higher-level grouping of Blocks, such as one DOM layer.
type Backbone interface {
	Blocks() []Block
}
