// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stitch

import (
	"log/slog"
	"reflect"

	"github.com/gogpu/stitch/internal/assert"
)

// NotePendingAddition records that d should be attached to block (under
// backbone, which may be nil) at the next UpdateBlock. Repeated calls in a
// frame overwrite the target.
//
// A drawable is registered with display when its first intent of the frame
// is recorded, so any mix of notifications yields one finalize visit.
func (d *Drawable) NotePendingAddition(display Display, block Block, backbone Backbone) {
	d.live("notePendingAddition")
	assert.That(!isNil(block), "notePendingAddition", "%s: nil block", d)
	assert.That(backbone == nil || !isNil(backbone), "notePendingAddition",
		"%s: backbone is a typed nil %T; pass an untyped nil for no backbone", d, backbone)

	if !d.pendingAddition && !d.pendingRemoval {
		display.MarkDrawableChangedBlock(d)
	}

	d.pendingParent = block
	d.pendingBackbone = backbone
	d.pendingAddition = true
}

// NotePendingRemoval records that d should be detached from its current
// block at the next UpdateBlock.
func (d *Drawable) NotePendingRemoval(display Display) {
	d.live("notePendingRemoval")

	if !d.pendingAddition && !d.pendingRemoval {
		display.MarkDrawableChangedBlock(d)
	}

	d.pendingRemoval = true
}

// NotePendingMove records that d changes block but keeps its backbone.
// A move is a removal from the old block plus an addition to the new one;
// both intents are set and the pending backbone is left untouched.
func (d *Drawable) NotePendingMove(display Display, block Block) {
	d.live("notePendingMove")
	assert.That(!isNil(block), "notePendingMove", "%s: nil block", d)

	d.pendingParent = block

	if !d.pendingAddition && !d.pendingRemoval {
		display.MarkDrawableChangedBlock(d)
	}

	d.pendingAddition = true
	d.pendingRemoval = true
}

// UpdateBlock applies the pending intents of d and reports whether its
// owning block changed. It runs once per touched drawable per frame, after
// all notifications for the frame are recorded.
//
// A pending removal and addition that resolve to the same block and
// backbone leave membership alone; order-sensitive blocks are told through
// MoveObserver instead.
func (d *Drawable) UpdateBlock() bool {
	d.live("updateBlock")

	if !d.pendingAddition && !d.pendingRemoval {
		return false
	}

	changed := !d.pendingRemoval || !d.pendingAddition ||
		d.parent != d.pendingParent || d.backbone != d.pendingBackbone

	log := Logger()
	if changed {
		old := d.parent
		if d.pendingRemoval {
			assert.That(d.parent != nil, "updateBlock", "%s: removal pending but no owning block", d)
			d.parent.RemoveDrawable(d)
			if !d.pendingAddition {
				d.pendingParent = nil
				d.pendingBackbone = nil
			}
		}

		d.parent = d.pendingParent
		d.backbone = d.pendingBackbone

		if d.pendingAddition {
			d.parent.AddDrawable(d)
		}

		assert.That(d.backbone == nil || d.parent != nil, "updateBlock",
			"%s: backbone without owning block", d)

		if debugEnabled(log) {
			log.Debug("stitch: block changed",
				slog.String("drawable", d.String()),
				slog.Bool("removed", d.pendingRemoval),
				slog.Bool("added", d.pendingAddition),
				slog.Bool("hadParent", old != nil))
		}
	} else if d.pendingAddition && d.pool.movable(d.renderer) {
		if mo, ok := d.parent.(MoveObserver); ok {
			mo.OnPotentiallyMovedDrawable(d)
		}
	}

	d.pendingAddition = false
	d.pendingRemoval = false

	return changed
}

// isNil reports whether v is nil or an interface holding a nil pointer,
// map, slice, func or channel.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
