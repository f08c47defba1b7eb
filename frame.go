// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stitch

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/stitch/internal/assert"
)

// Display collects the drawables that need work during finalize. The
// protocol calls MarkDrawableChangedBlock at most once per drawable per
// frame, MarkDrawableForLinksUpdate at most once per link-dirty period,
// and MarkDrawableForDisposal once per disposal.
type Display interface {
	MarkDrawableChangedBlock(d *Drawable)
	MarkDrawableForLinksUpdate(d *Drawable)
	MarkDrawableForDisposal(d *Drawable)
}

// FrameResult summarizes one Finalize call.
type FrameResult struct {
	// ID is the number of the finalized frame, starting at 1.
	ID uint64

	// BlockChanged lists the drawables whose owning block changed, in
	// finalize order. Paint caches keyed by these must be invalidated.
	// Handles of drawables disposed in the same frame no longer resolve.
	BlockChanged []Handle

	// Visited is the number of UpdateBlock calls.
	Visited int

	// Relinked is the number of UpdateLinks calls.
	Relinked int

	// Disposed is the number of deferred disposals performed.
	Disposed int
}

// worklistEntry remembers which life of a drawable was registered, so a
// drawable disposed immediately after registration is skipped.
type worklistEntry struct {
	d *Drawable
	h Handle
}

func (e worklistEntry) live() *Drawable {
	if e.d.disposed || e.d.Handle() != e.h {
		return nil
	}
	return e.d
}

// Frame is the stitching coordinator: a Display that accumulates the
// per-frame worklists during the mutation phase and applies them in
// Finalize.
//
// Usage:
//
//	frame := stitch.NewFrame()
//	d.NotePendingAddition(frame, block, nil)
//	stitch.ConnectDrawables(prev, d, frame)
//	res := frame.Finalize()
//
// Frame is not safe for concurrent use.
type Frame struct {
	changed   []worklistEntry
	links     []worklistEntry
	disposals []worklistEntry

	id         uint64
	finalizing bool
	opts       frameOptions
}

// NewFrame creates a coordinator for the first frame.
func NewFrame(opts ...FrameOption) *Frame {
	o := defaultFrameOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Frame{
		changed:   make([]worklistEntry, 0, o.capacity),
		links:     make([]worklistEntry, 0, o.capacity),
		disposals: make([]worklistEntry, 0, o.capacity),
		id:        1,
		opts:      o,
	}
}

// MarkDrawableChangedBlock implements Display.
func (f *Frame) MarkDrawableChangedBlock(d *Drawable) {
	f.changed = append(f.changed, worklistEntry{d: d, h: d.Handle()})
}

// MarkDrawableForLinksUpdate implements Display.
func (f *Frame) MarkDrawableForLinksUpdate(d *Drawable) {
	f.links = append(f.links, worklistEntry{d: d, h: d.Handle()})
}

// MarkDrawableForDisposal implements Display.
func (f *Frame) MarkDrawableForDisposal(d *Drawable) {
	f.disposals = append(f.disposals, worklistEntry{d: d, h: d.Handle()})
}

// FrameID returns the number of the frame currently being built.
func (f *Frame) FrameID() uint64 { return f.id }

// Pending returns the number of registrations waiting for Finalize.
func (f *Frame) Pending() int {
	return len(f.changed) + len(f.links) + len(f.disposals)
}

// Finalize ends the mutation phase: it applies block changes with
// UpdateBlock, migrates links with UpdateLinks, performs deferred
// disposals, and starts the next frame. Registrations made by blocks while
// Finalize runs are processed in the same call.
func (f *Frame) Finalize() FrameResult {
	assert.That(!f.finalizing, "finalize", "frame %d finalized re-entrantly", f.id)
	f.finalizing = true
	defer func() { f.finalizing = false }()

	res := FrameResult{ID: f.id}

	for i := 0; i < len(f.changed); i++ {
		d := f.changed[i].live()
		if d == nil {
			continue
		}
		res.Visited++
		if d.UpdateBlock() {
			res.BlockChanged = append(res.BlockChanged, d.Handle())
		}
	}

	for i := 0; i < len(f.links); i++ {
		d := f.links[i].live()
		if d == nil {
			continue
		}
		res.Relinked++
		d.UpdateLinks()
	}

	if f.opts.audit {
		f.audit()
	}

	for i := 0; i < len(f.disposals); i++ {
		e := f.disposals[i]
		assert.That(e.d.Handle() == e.h, "finalize", "%s: life %s was already disposed", e.d, e.h)
		e.d.Dispose()
		res.Disposed++
	}

	f.logSummary(res)

	clear(f.changed)
	clear(f.links)
	clear(f.disposals)
	f.changed = f.changed[:0]
	f.links = f.links[:0]
	f.disposals = f.disposals[:0]
	f.id++

	return res
}

// audit checks every touched live drawable that is not about to be
// disposed.
func (f *Frame) audit() {
	doomed := make(map[*Drawable]struct{}, len(f.disposals))
	for _, e := range f.disposals {
		doomed[e.d] = struct{}{}
	}
	check := func(list []worklistEntry) {
		for _, e := range list {
			d := e.live()
			if d == nil {
				continue
			}
			if _, ok := doomed[d]; ok {
				continue
			}
			if err := d.Audit(false, false, true); err != nil {
				assert.Wrap(fmt.Errorf("frame %d: %w", f.id, err), "audit")
			}
		}
	}
	check(f.changed)
	check(f.links)
}

func (f *Frame) logSummary(res FrameResult) {
	log := f.opts.logger
	if log == nil {
		log = Logger()
	}
	if !debugEnabled(log) {
		return
	}
	log.Debug("stitch: frame finalized",
		slog.Uint64("frame", res.ID),
		slog.Int("visited", res.Visited),
		slog.Int("blockChanged", len(res.BlockChanged)),
		slog.Int("relinked", res.Relinked),
		slog.Int("disposed", res.Disposed))
}
