// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stitch

import "github.com/gogpu/stitch/internal/assert"

// PoolStats reports allocation counters of a Pool.
type PoolStats struct {
	// Created is the number of slots ever allocated.
	Created int
	// Reused is the number of Create calls served from a freed slot.
	Reused int
	// Live is the number of drawables currently not disposed.
	Live int
	// Free is the number of slots waiting for reuse.
	Free int
}

// Pool is the arena that owns Drawables. Each slot keeps one *Drawable for
// the lifetime of the pool; disposing a drawable returns its slot to a LIFO
// free list and the next Create reinitializes it under the same ID with a
// new generation. The pool grows on demand and never shrinks.
//
// Independent pools may coexist; a drawable may only be linked to
// drawables of its own pool.
//
// Pool is not safe for concurrent use.
type Pool struct {
	// slots[0] is unused so that ID 0 means "none".
	slots   []*Drawable
	freeIDs []ID
	movable MovePredicate
	reused  int
}

// NewPool creates an empty pool.
//
// Example:
//
//	pool := stitch.NewPool()
//	d := pool.Create(stitch.NewRenderer(stitch.BackendCanvas, 0))
//	defer d.Dispose()
func NewPool(opts ...PoolOption) *Pool {
	o := defaultPoolOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p := &Pool{
		slots:   make([]*Drawable, 1, o.capacity+1),
		movable: o.movable,
	}
	return p
}

// Create returns a live drawable with renderer r, reusing a disposed slot
// when one is available.
func (p *Pool) Create(r Renderer) *Drawable {
	if n := len(p.freeIDs); n > 0 {
		id := p.freeIDs[n-1]
		p.freeIDs = p.freeIDs[:n-1]
		d := p.slots[id]
		if d.gen != 0 {
			p.reused++
		}
		return d.initialize(r)
	}
	return p.grow().initialize(r)
}

// grow appends a fresh slot.
func (p *Pool) grow() *Drawable {
	// #nosec G115 -- slot count is bounded by available memory, well under uint32 max
	d := &Drawable{pool: p, id: ID(len(p.slots))}
	p.slots = append(p.slots, d)
	return d
}

// Warmup preallocates n slots so that the next n Create calls do not
// allocate.
func (p *Pool) Warmup(n int) {
	for i := 0; i < n; i++ {
		d := p.grow()
		d.disposed = true
		p.freeIDs = append(p.freeIDs, d.id)
	}
}

// free returns the slot of a disposed drawable.
func (p *Pool) free(d *Drawable) {
	assert.That(d.pool == p && int(d.id) < len(p.slots) && p.slots[d.id] == d, "dispose",
		"%s does not belong to this pool", d)
	p.freeIDs = append(p.freeIDs, d.id)
}

// Resolve returns the live drawable named by h, or nil if h is the zero
// handle, unknown, or refers to an earlier life of its slot.
func (p *Pool) Resolve(h Handle) *Drawable {
	if !h.IsValid() || int(h.ID) >= len(p.slots) {
		return nil
	}
	d := p.slots[h.ID]
	if d.disposed || d.gen != h.Gen {
		return nil
	}
	return d
}

// Get returns the live drawable in slot id, or nil.
func (p *Pool) Get(id ID) *Drawable {
	if id == 0 || int(id) >= len(p.slots) {
		return nil
	}
	if d := p.slots[id]; !d.disposed {
		return d
	}
	return nil
}

// Live returns all live drawables in ID order.
func (p *Pool) Live() []*Drawable {
	live := make([]*Drawable, 0, len(p.slots)-1-len(p.freeIDs))
	for _, d := range p.slots[1:] {
		if !d.disposed {
			live = append(live, d)
		}
	}
	return live
}

// Len returns the number of slots, live or free.
func (p *Pool) Len() int {
	return len(p.slots) - 1
}

// Stats returns the pool counters.
func (p *Pool) Stats() PoolStats {
	return PoolStats{
		Created: len(p.slots) - 1,
		Reused:  p.reused,
		Live:    len(p.slots) - 1 - len(p.freeIDs),
		Free:    len(p.freeIDs),
	}
}
