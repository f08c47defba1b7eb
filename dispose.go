// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stitch

import (
	"log/slog"

	"github.com/gogpu/stitch/internal/assert"
)

// MarkForDisposal unlinks d from both neighbors so no list walk reaches
// it, then registers it with display for disposal during finalize.
func (d *Drawable) MarkForDisposal(display Display) {
	d.live("markForDisposal")
	DisconnectBefore(d, display)
	DisconnectAfter(d, display)
	display.MarkDrawableForDisposal(d)
}

// DisposeImmediately unlinks d from both neighbors and disposes it now.
func (d *Drawable) DisposeImmediately(display Display) {
	d.live("disposeImmediately")
	DisconnectBefore(d, display)
	DisconnectAfter(d, display)
	d.Dispose()
}

// Dispose releases d back to its pool. The current list links must already
// be severed. Disposing twice is a programming error.
func (d *Drawable) Dispose() {
	assert.That(!d.disposed, "dispose", "%s disposed twice", d)

	if log := Logger(); debugEnabled(log) {
		log.Debug("stitch: dispose", slog.String("drawable", d.String()))
	}

	d.clean()
	d.disposed = true
	d.dirty = false
	d.linksDirty = false
	d.Payload = nil
	d.pool.free(d)
}
