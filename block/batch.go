// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package block

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/stitch"
)

// Batch is a WebGL block that turns its members into an instance order for
// one draw call into a texture of the given format.
type Batch struct {
	*List

	format    gputypes.TextureFormat
	instances []stitch.ID
	stale     bool
	builds    int
}

// NewBatch creates a WebGL block. An undefined format defaults to
// RGBA8Unorm.
func NewBatch(name string, format gputypes.TextureFormat) *Batch {
	if format == gputypes.TextureFormatUndefined {
		format = gputypes.TextureFormatRGBA8Unorm
	}
	b := &Batch{
		List:   NewList(name, stitch.BackendWebGL),
		format: format,
	}
	b.onVisible = func(*stitch.Drawable) { b.stale = true }
	return b
}

// Format returns the target texture format.
func (b *Batch) Format() gputypes.TextureFormat { return b.format }

// AddDrawable implements stitch.Block.
func (b *Batch) AddDrawable(d *stitch.Drawable) {
	b.List.AddDrawable(d)
	b.stale = true
}

// RemoveDrawable implements stitch.Block.
func (b *Batch) RemoveDrawable(d *stitch.Drawable) {
	b.List.RemoveDrawable(d)
	b.stale = true
}

// Invalidate forces the next Instances call to rebuild. Batch does not
// observe moves; callers that reorder members call it themselves.
// Membership and visibility changes invalidate automatically.
func (b *Batch) Invalidate() { b.stale = true }

// Instances returns the IDs of the visible members in paint order,
// rebuilding only after membership or visibility changed.
func (b *Batch) Instances() []stitch.ID {
	if !b.stale && b.instances != nil {
		return b.instances
	}
	b.instances = b.instances[:0]
	for _, d := range b.Ordered() {
		if d.IsVisible() {
			b.instances = append(b.instances, d.ID())
		}
	}
	b.stale = false
	b.builds++
	return b.instances
}

// Builds returns how many times the instance order was rebuilt.
func (b *Batch) Builds() int { return b.builds }

// String implements fmt.Stringer.
func (b *Batch) String() string {
	return fmt.Sprintf("%s(%v)", b.Name(), b.format)
}
