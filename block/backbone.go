// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package block

import (
	"slices"

	"github.com/gogpu/stitch"
)

// Backbone is an ordered group of blocks sharing one output surface.
type Backbone struct {
	name   string
	blocks []stitch.Block
}

var _ stitch.Backbone = (*Backbone)(nil)

// NewBackbone creates a backbone holding blocks in order.
func NewBackbone(name string, blocks ...stitch.Block) *Backbone {
	return &Backbone{name: name, blocks: slices.Clone(blocks)}
}

// Blocks implements stitch.Backbone.
func (bb *Backbone) Blocks() []stitch.Block { return bb.blocks }

// Append adds b after the existing blocks unless it is already present.
func (bb *Backbone) Append(b stitch.Block) {
	if !slices.Contains(bb.blocks, b) {
		bb.blocks = append(bb.blocks, b)
	}
}

// Remove drops b and reports whether it was present.
func (bb *Backbone) Remove(b stitch.Block) bool {
	i := slices.Index(bb.blocks, b)
	if i < 0 {
		return false
	}
	bb.blocks = slices.Delete(bb.blocks, i, i+1)
	return true
}

// String implements fmt.Stringer.
func (bb *Backbone) String() string { return bb.name }
