// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stitch

import (
	"errors"
	"fmt"
)

// Audit checks the invariants of d and returns every violation joined into
// one error, or nil.
//
// allowPendingBlock tolerates unapplied block intents, allowPendingList
// tolerates current links that differ from the old ones, and allowDirty
// tolerates a pending repaint. Outside an active stitch pass both pending
// allowances should be false.
func (d *Drawable) Audit(allowPendingBlock, allowPendingList, allowDirty bool) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%s: "+format, append([]any{d}, args...)...))
	}

	if d.disposed {
		fail("disposed")
		return errors.Join(errs...)
	}
	if d.backbone != nil && d.parent == nil {
		fail("backbone set without an owning block")
	}
	if !allowPendingBlock {
		if d.pendingAddition {
			fail("pending addition")
		}
		if d.pendingRemoval {
			fail("pending removal")
		}
		if d.parent != d.pendingParent {
			fail("parent differs from pending parent")
		}
		if d.backbone != d.pendingBackbone {
			fail("backbone differs from pending backbone")
		}
	}
	if !allowPendingList {
		if d.prev != d.oldPrev {
			fail("previous %s differs from old previous %s", d.prev, d.oldPrev)
		}
		if d.next != d.oldNext {
			fail("next %s differs from old next %s", d.next, d.oldNext)
		}
	}
	if !allowDirty && d.dirty {
		fail("dirty")
	}
	if n := d.Next(); n != nil && n.prev != d.Handle() {
		fail("next %s does not link back", n)
	}
	if p := d.Previous(); p != nil && p.next != d.Handle() {
		fail("previous %s does not link back", p)
	}
	return errors.Join(errs...)
}

// String returns the backend and ID of d, e.g. "canvas#12".
func (d *Drawable) String() string {
	if d == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s#%d", d.renderer.Backend(), d.id)
}

// DetailedString describes the full protocol state of d for debugging.
func (d *Drawable) DetailedString() string {
	return fmt.Sprintf("%s gen=%d renderer=%s dirty=%t disposed=%t visible=%t fittable=%t "+
		"parent=%s backbone=%s pending=%s/%s add=%t remove=%t "+
		"links=%s<>%s old=%s<>%s linksDirty=%t",
		d, d.gen, d.renderer, d.dirty, d.disposed, d.IsVisible(), d.IsFittable(),
		ownerName(d.parent), ownerName(d.backbone),
		ownerName(d.pendingParent), ownerName(d.pendingBackbone),
		d.pendingAddition, d.pendingRemoval,
		d.prev, d.next, d.oldPrev, d.oldNext, d.linksDirty)
}

func ownerName(v any) string {
	if v == nil {
		return "-"
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", v)
}
