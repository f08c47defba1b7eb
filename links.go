// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stitch

import (
	"strings"

	"github.com/gogpu/stitch/internal/assert"
)

// ConnectDrawables makes b the immediate successor of a in the current
// list. a's previous successor and b's previous predecessor are unlinked
// from them first. Every drawable whose links change is marked link-dirty.
// Connecting an already connected pair does nothing.
func ConnectDrawables(a, b *Drawable, display Display) {
	a.live("connectDrawables")
	b.live("connectDrawables")
	assert.That(a != b, "connectDrawables", "%s linked to itself", a)
	assert.That(a.pool == b.pool, "connectDrawables", "%s and %s belong to different pools", a, b)

	if a.next == b.Handle() {
		return
	}

	if n := a.neighbor(a.next, "connectDrawables"); n != nil {
		n.MarkLinksDirty(display)
		n.prev = Handle{}
	}
	if p := b.neighbor(b.prev, "connectDrawables"); p != nil {
		p.MarkLinksDirty(display)
		p.next = Handle{}
	}

	a.next = b.Handle()
	b.prev = a.Handle()

	a.MarkLinksDirty(display)
	b.MarkLinksDirty(display)
}

// DisconnectBefore unlinks d from its predecessor in the current list.
func DisconnectBefore(d *Drawable, display Display) {
	d.live("disconnectBefore")
	p := d.neighbor(d.prev, "disconnectBefore")
	if p == nil {
		return
	}
	d.MarkLinksDirty(display)
	p.MarkLinksDirty(display)
	p.next = Handle{}
	d.prev = Handle{}
}

// DisconnectAfter unlinks d from its successor in the current list.
func DisconnectAfter(d *Drawable, display Display) {
	d.live("disconnectAfter")
	n := d.neighbor(d.next, "disconnectAfter")
	if n == nil {
		return
	}
	d.MarkLinksDirty(display)
	n.MarkLinksDirty(display)
	n.prev = Handle{}
	d.next = Handle{}
}

// neighbor resolves a link of d. A link to a drawable that is no longer
// live means someone skipped the disconnect step.
func (d *Drawable) neighbor(h Handle, op string) *Drawable {
	if !h.IsValid() {
		return nil
	}
	n := d.pool.Resolve(h)
	assert.That(n != nil, op, "%s links to stale %s", d, h)
	return n
}

// MarkLinksDirty registers d for UpdateLinks with display, once per frame.
func (d *Drawable) MarkLinksDirty(display Display) {
	d.live("markLinksDirty")
	if !d.linksDirty {
		d.linksDirty = true
		display.MarkDrawableForLinksUpdate(d)
	}
}

// UpdateLinks makes the current links the old ones. It must run after all
// list changes of the frame and before the next frame starts changing the
// list, or the old order used for diffing is lost.
func (d *Drawable) UpdateLinks() {
	d.live("updateLinks")
	d.oldNext = d.next
	d.oldPrev = d.prev
	d.linksDirty = false
}

// Next returns the successor of d in the current list, or nil.
func (d *Drawable) Next() *Drawable { return d.pool.Resolve(d.next) }

// Previous returns the predecessor of d in the current list, or nil.
func (d *Drawable) Previous() *Drawable { return d.pool.Resolve(d.prev) }

// OldNext returns the successor of d as of the last UpdateLinks, or nil if
// there was none or it has since been disposed.
func (d *Drawable) OldNext() *Drawable { return d.pool.Resolve(d.oldNext) }

// OldPrevious returns the predecessor of d as of the last UpdateLinks.
func (d *Drawable) OldPrevious() *Drawable { return d.pool.Resolve(d.oldPrev) }

// NextHandle returns the raw current successor link.
func (d *Drawable) NextHandle() Handle { return d.next }

// PreviousHandle returns the raw current predecessor link.
func (d *Drawable) PreviousHandle() Handle { return d.prev }

// OldNextHandle returns the raw old successor link.
func (d *Drawable) OldNextHandle() Handle { return d.oldNext }

// OldPreviousHandle returns the raw old predecessor link.
func (d *Drawable) OldPreviousHandle() Handle { return d.oldPrev }

// ListString renders the current list from first to last (inclusive) as
// space-separated drawable names. The walk stops early at a list end.
func ListString(first, last *Drawable) string {
	return listString(first, last, (*Drawable).Next)
}

// OldListString is ListString over the old links.
func OldListString(first, last *Drawable) string {
	return listString(first, last, (*Drawable).OldNext)
}

func listString(first, last *Drawable, step func(*Drawable) *Drawable) string {
	var sb strings.Builder
	for d := first; d != nil; d = step(d) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(d.String())
		if d == last {
			break
		}
	}
	return sb.String()
}
