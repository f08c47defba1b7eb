// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stitch

import (
	"github.com/gogpu/stitch/internal/assert"
	"github.com/gogpu/stitch/observable"
)

// Drawable is the atomic renderable unit tracked by the stitching protocol.
//
// A Drawable is owned by at most one Block (and optionally one Backbone)
// at a time. Ownership changes are recorded as pending intents during the
// mutation phase of a frame and applied by UpdateBlock during finalize.
// Drawables are also linked into two paint-order lists: the current list
// being built for this frame and the old list as of the previous frame.
//
// Drawables are created by a Pool and must not be copied.
type Drawable struct {
	pool *Pool
	id   ID
	gen  uint32

	renderer Renderer
	dirty    bool
	disposed bool

	visible  observable.Cell[bool]
	fittable observable.Cell[bool]

	// Current owner.
	parent   Block
	backbone Backbone

	// Owner to switch to at the next UpdateBlock.
	pendingParent   Block
	pendingBackbone Backbone
	pendingAddition bool
	pendingRemoval  bool

	// Current-frame list links.
	prev Handle
	next Handle

	// Links as of the last UpdateLinks.
	oldPrev    Handle
	oldNext    Handle
	linksDirty bool

	// Payload carries backend data (geometry, style) for blocks.
	// The protocol never reads it; it is reset on every initialize.
	Payload any
}

// initialize prepares a brand-new or disposed drawable for a new life.
func (d *Drawable) initialize(r Renderer) *Drawable {
	assert.That(d.gen == 0 || d.disposed, "initialize",
		"%s is live; only new or disposed drawables can be initialized", d)

	d.gen++
	if d.gen == 0 {
		d.gen = 1
	}
	d.clean()
	d.renderer = r
	d.dirty = true
	d.disposed = false
	d.linksDirty = false
	d.Payload = nil
	d.visible.SetInitial(true)
	d.fittable.SetInitial(true)
	return d
}

// clean drops ownership, pending intents, list links and listeners.
// Callers must have severed the current list links beforehand.
func (d *Drawable) clean() {
	d.parent = nil
	d.backbone = nil
	d.pendingParent = nil
	d.pendingBackbone = nil
	d.pendingAddition = false
	d.pendingRemoval = false

	assert.That(!d.prev.IsValid() && !d.next.IsValid(), "clean",
		"%s still linked (prev %s, next %s); disconnect before cleaning", d, d.prev, d.next)

	d.prev = Handle{}
	d.next = Handle{}
	d.oldPrev = Handle{}
	d.oldNext = Handle{}

	d.visible.RemoveAllListeners()
	d.fittable.RemoveAllListeners()
}

// live asserts d is not disposed.
func (d *Drawable) live(op string) {
	assert.That(!d.disposed, op, "%s is disposed", d)
}

// ID returns the stable slot identity of d.
func (d *Drawable) ID() ID { return d.id }

// Handle returns the handle of d's current life.
func (d *Drawable) Handle() Handle { return Handle{ID: d.id, Gen: d.gen} }

// Renderer returns the backend tag d was initialized with.
func (d *Drawable) Renderer() Renderer { return d.renderer }

// Pool returns the pool that owns d.
func (d *Drawable) Pool() *Pool { return d.pool }

// IsDisposed reports whether d has been disposed and not reinitialized.
func (d *Drawable) IsDisposed() bool { return d.disposed }

// IsDirty reports whether d needs repainting.
func (d *Drawable) IsDirty() bool { return d.dirty }

// Parent returns the block currently owning d, or nil.
func (d *Drawable) Parent() Block { return d.parent }

// Backbone returns the backbone d is currently under, or nil.
func (d *Drawable) Backbone() Backbone { return d.backbone }

// PendingParent returns the block d will belong to after UpdateBlock.
func (d *Drawable) PendingParent() Block { return d.pendingParent }

// PendingBackbone returns the backbone d will be under after UpdateBlock.
func (d *Drawable) PendingBackbone() Backbone { return d.pendingBackbone }

// HasPendingAddition reports whether an addition is recorded.
func (d *Drawable) HasPendingAddition() bool { return d.pendingAddition }

// HasPendingRemoval reports whether a removal is recorded.
func (d *Drawable) HasPendingRemoval() bool { return d.pendingRemoval }

// LinksDirty reports whether the current and old list links may differ.
func (d *Drawable) LinksDirty() bool { return d.linksDirty }

// Update clears the dirty flag of a live drawable and reports whether the
// caller needs to repaint it.
func (d *Drawable) Update() bool {
	if d.dirty && !d.disposed {
		d.dirty = false
		return true
	}
	return false
}

// MarkDirty flags d for repaint and, the first time, tells the owning
// block.
func (d *Drawable) MarkDirty() {
	d.live("markDirty")
	if d.dirty {
		return
	}
	d.dirty = true
	if d.parent != nil {
		d.parent.MarkDirtyDrawable(d)
	}
}

// SetVisible sets the visibility cell, notifying subscribers on change.
func (d *Drawable) SetVisible(visible bool) {
	d.live("setVisible")
	d.visible.Set(visible)
}

// IsVisible reports the visibility of d.
func (d *Drawable) IsVisible() bool { return d.visible.Get() }

// VisibleCell exposes the visibility cell for subscription. Subscriptions
// are dropped when d is disposed.
func (d *Drawable) VisibleCell() *observable.Cell[bool] { return &d.visible }

// SetFittable sets whether d participates in bounds fitting.
func (d *Drawable) SetFittable(fittable bool) {
	d.live("setFittable")
	d.fittable.Set(fittable)
}

// IsFittable reports the fittability of d.
func (d *Drawable) IsFittable() bool { return d.fittable.Get() }

// FittableCell exposes the fittability cell for subscription.
func (d *Drawable) FittableCell() *observable.Cell[bool] { return &d.fittable }
