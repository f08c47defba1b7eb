// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package block

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/gogpu/stitch"
)

// Op is the kind of a recorded block event.
type Op uint8

// Op constants.
const (
	OpAdd Op = iota + 1
	OpRemove
	OpMoved
	OpDirty
)

// String returns a human-readable name for the op.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpRemove:
		return "remove"
	case OpMoved:
		return "moved"
	case OpDirty:
		return "dirty"
	default:
		return "unknown"
	}
}

// Event is one call received by a block.
type Event struct {
	Op       Op
	Drawable stitch.Handle
}

// member is one life of a drawable in a block. A slot reused after a
// disposal has the same ID but a different handle.
type member struct {
	d      *stitch.Drawable
	h      stitch.Handle
	unlink func()
}

func (m member) live() bool {
	return !m.d.IsDisposed() && m.d.Handle() == m.h
}

// List is a block that tracks its members and records every call it
// receives. It does not paint anything.
type List struct {
	name    string
	backend stitch.Backend
	members map[stitch.ID]member
	dirty   map[stitch.ID]struct{}
	events  []Event
	err     error

	// onVisible, if set, is called when a member's visibility changes.
	onVisible func(d *stitch.Drawable)
}

// NewList creates an empty list block for the given backend.
func NewList(name string, backend stitch.Backend) *List {
	return &List{
		name:    name,
		backend: backend,
		members: make(map[stitch.ID]member),
		dirty:   make(map[stitch.ID]struct{}),
	}
}

// AddDrawable implements stitch.Block.
func (l *List) AddDrawable(d *stitch.Drawable) {
	l.record(OpAdd, d)
	h := d.Handle()
	if m, ok := l.members[d.ID()]; ok {
		if m.h == h {
			l.fail(fmt.Errorf("block %s: %s added twice", l.name, d))
			return
		}
		// An earlier life of the slot was disposed without a removal.
		l.drop(m)
		l.warn("block: replacing stale member", slog.String("block", l.name), slog.String("life", m.h.String()))
	}
	if b := d.Renderer().Backend(); b != l.backend {
		l.fail(fmt.Errorf("block %s: %s has backend %s, want %s", l.name, d, b, l.backend))
	}
	m := member{d: d, h: h}
	if l.onVisible != nil {
		m.unlink = d.VisibleCell().Link(func(bool, bool) { l.onVisible(d) })
	}
	l.members[d.ID()] = m
	if d.IsDirty() {
		l.dirty[d.ID()] = struct{}{}
	}
}

// RemoveDrawable implements stitch.Block.
func (l *List) RemoveDrawable(d *stitch.Drawable) {
	l.record(OpRemove, d)
	m, ok := l.members[d.ID()]
	if !ok || m.h != d.Handle() {
		l.fail(fmt.Errorf("block %s: %s removed but not a member", l.name, d))
		return
	}
	l.drop(m)
}

func (l *List) drop(m member) {
	if m.unlink != nil {
		m.unlink()
	}
	delete(l.members, m.h.ID)
	delete(l.dirty, m.h.ID)
}

// MarkDirtyDrawable implements stitch.Block.
func (l *List) MarkDirtyDrawable(d *stitch.Drawable) {
	l.record(OpDirty, d)
	if l.Contains(d) {
		l.dirty[d.ID()] = struct{}{}
	}
}

func (l *List) record(op Op, d *stitch.Drawable) {
	l.events = append(l.events, Event{Op: op, Drawable: d.Handle()})
}

func (l *List) fail(err error) {
	l.err = errors.Join(l.err, err)
	l.warn("block: bookkeeping violation", slog.String("block", l.name), slog.Any("err", err))
}

func (l *List) warn(msg string, attrs ...slog.Attr) {
	if log := stitch.Logger(); log.Enabled(context.Background(), slog.LevelWarn) {
		log.LogAttrs(context.Background(), slog.LevelWarn, msg, attrs...)
	}
}

// Name returns the block name.
func (l *List) Name() string { return l.name }

// String implements fmt.Stringer.
func (l *List) String() string { return l.name }

// Backend returns the backend the block accepts.
func (l *List) Backend() stitch.Backend { return l.backend }

// Len returns the number of live members.
func (l *List) Len() int {
	n := 0
	for _, m := range l.members {
		if m.live() {
			n++
		}
	}
	return n
}

// Contains reports whether the current life of d is a member.
func (l *List) Contains(d *stitch.Drawable) bool {
	m, ok := l.members[d.ID()]
	return ok && m.d == d && m.h == d.Handle() && m.live()
}

// Members returns the live members in ID order. Members disposed without
// a removal are left out.
func (l *List) Members() []*stitch.Drawable {
	ids := make([]stitch.ID, 0, len(l.members))
	for id, m := range l.members {
		if m.live() {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	out := make([]*stitch.Drawable, len(ids))
	for i, id := range ids {
		out[i] = l.members[id].d
	}
	return out
}

// Ordered returns the members in paint order, following the current
// drawable list. Members form one or more runs; runs are returned ordered
// by the ID of their first drawable.
func (l *List) Ordered() []*stitch.Drawable {
	members := l.Members()
	out := make([]*stitch.Drawable, 0, len(members))
	seen := make(map[stitch.ID]bool, len(members))
	for _, m := range members {
		if p := m.Previous(); p != nil && l.Contains(p) {
			continue // not the head of a run
		}
		for d := m; d != nil && l.Contains(d) && !seen[d.ID()]; d = d.Next() {
			seen[d.ID()] = true
			out = append(out, d)
		}
	}
	// Members on a cycle have no head; append them in ID order.
	for _, m := range members {
		if !seen[m.ID()] {
			seen[m.ID()] = true
			out = append(out, m)
		}
	}
	return out
}

// DirtyCount returns the number of members waiting for Flush.
func (l *List) DirtyCount() int { return len(l.dirty) }

// Flush clears the dirty state of members in paint order and returns how
// many needed repainting.
func (l *List) Flush() int {
	n := 0
	for _, d := range l.Ordered() {
		if d.Update() {
			n++
		}
	}
	clear(l.dirty)
	return n
}

// Events returns the recorded calls.
func (l *List) Events() []Event { return l.events }

// ResetEvents drops the recorded calls.
func (l *List) ResetEvents() { l.events = l.events[:0] }

// Err returns every bookkeeping violation seen so far, or nil.
func (l *List) Err() error { return l.err }
