// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRendererBackend(t *testing.T) {
	tests := []struct {
		name    string
		r       Renderer
		backend Backend
		canvas  bool
		str     string
	}{
		{"canvas", NewRenderer(BackendCanvas, 0), BackendCanvas, true, "canvas"},
		{"svg", NewRenderer(BackendSVG, 0), BackendSVG, false, "svg"},
		{"dom flags", NewRenderer(BackendDOM, 0x12), BackendDOM, false, "dom+0x12"},
		{"webgl", NewRenderer(BackendWebGL, 0), BackendWebGL, false, "webgl"},
		{"none", Renderer(0), BackendNone, false, "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.backend, tt.r.Backend())
			assert.Equal(t, tt.canvas, tt.r.IsCanvas())
			assert.Equal(t, tt.canvas, CanvasMoves(tt.r))
			assert.Equal(t, tt.str, tt.r.String())
		})
	}
}

func TestRendererPredicates(t *testing.T) {
	assert.True(t, NewRenderer(BackendSVG, 0).IsSVG())
	assert.True(t, NewRenderer(BackendDOM, 0).IsDOM())
	assert.True(t, NewRenderer(BackendWebGL, 0).IsWebGL())
	assert.False(t, NewRenderer(BackendWebGL, 0).IsDOM())
}

func TestRendererFlags(t *testing.T) {
	r := NewRenderer(BackendCanvas, 0xABCDEF)
	assert.Equal(t, uint32(0xABCDEF), r.Flags())
	assert.Equal(t, BackendCanvas, r.Backend())

	truncated := NewRenderer(BackendSVG, 0xFF000001)
	assert.Equal(t, uint32(1), truncated.Flags())
	assert.Equal(t, BackendSVG, truncated.Backend())
}

func TestParseBackend(t *testing.T) {
	for _, name := range []string{"canvas", "SVG", " dom ", "WebGL"} {
		b, err := ParseBackend(name)
		require.NoError(t, err, name)
		assert.True(t, b.Valid(), name)
	}

	_, err := ParseBackend("none")
	assert.Error(t, err)
	_, err = ParseBackend("metal")
	assert.Error(t, err)
}

func TestBackendString(t *testing.T) {
	assert.Equal(t, "canvas", BackendCanvas.String())
	assert.Equal(t, "backend(42)", Backend(42).String())
	assert.False(t, Backend(42).Valid())
	assert.False(t, BackendNone.Valid())
}
