// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package block

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"

	"github.com/gogpu/stitch"
)

func TestBatchFormat(t *testing.T) {
	tests := []struct {
		name   string
		format gputypes.TextureFormat
		want   gputypes.TextureFormat
	}{
		{"undefined", gputypes.TextureFormatUndefined, gputypes.TextureFormatRGBA8Unorm},
		{"rgba", gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatRGBA8Unorm},
		{"bgra", gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatBGRA8Unorm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBatch("webgl-0", tt.format)
			assert.Equal(t, tt.want, b.Format())
			assert.Equal(t, stitch.BackendWebGL, b.Backend())
			assert.Contains(t, b.String(), "webgl-0")
		})
	}
}

func TestBatchInstances(t *testing.T) {
	pool := stitch.NewPool()
	b := NewBatch("webgl-0", gputypes.TextureFormatRGBA8Unorm)
	ds := build(t, pool, webglRenderer, b, 3)

	assert.Equal(t, []stitch.ID{ds[0].ID(), ds[1].ID(), ds[2].ID()}, b.Instances())
	assert.Equal(t, 1, b.Builds())

	b.Instances()
	assert.Equal(t, 1, b.Builds(), "cached")

	ds[1].SetVisible(false)
	b.Invalidate()
	assert.Equal(t, []stitch.ID{ds[0].ID(), ds[2].ID()}, b.Instances())
	assert.Equal(t, 2, b.Builds())

	frame := stitch.NewFrame()
	ds[0].NotePendingRemoval(frame)
	frame.Finalize()
	assert.Equal(t, []stitch.ID{ds[2].ID()}, b.Instances())
	assert.Equal(t, 3, b.Builds())
}

func TestBatchVisibilityRebuilds(t *testing.T) {
	pool := stitch.NewPool()
	b := NewBatch("webgl-0", gputypes.TextureFormatRGBA8Unorm)
	ds := build(t, pool, webglRenderer, b, 2)
	b.Instances()

	ds[0].SetVisible(false)
	assert.Equal(t, []stitch.ID{ds[1].ID()}, b.Instances())
	assert.Equal(t, 2, b.Builds())

	ds[0].SetVisible(true)
	assert.Equal(t, []stitch.ID{ds[0].ID(), ds[1].ID()}, b.Instances())
	assert.Equal(t, 3, b.Builds())
}
