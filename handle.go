// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stitch

import "fmt"

// ID is the stable identity of a pool slot. IDs start at 1; zero means
// "no drawable". An ID is shared by every life of its slot.
type ID uint32

// Handle names one life of a Drawable: its slot ID and the generation the
// slot had when the handle was taken. A handle stops resolving once the
// drawable is disposed, even if the slot is reused.
//
// The zero Handle refers to nothing.
type Handle struct {
	ID  ID
	Gen uint32
}

// IsValid reports whether h refers to a drawable life (not necessarily a
// live one; see Pool.Resolve).
func (h Handle) IsValid() bool {
	return h.ID != 0 && h.Gen != 0
}

// String returns "#ID.GEN" or "-" for the zero handle.
func (h Handle) String() string {
	if !h.IsValid() {
		return "-"
	}
	return fmt.Sprintf("#%d.%d", h.ID, h.Gen)
}
