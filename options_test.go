package stitch

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPoolOptions(t *testing.T) {
	o := defaultPoolOptions()
	assert.Equal(t, 64, o.capacity)
	assert.True(t, o.movable(canvas))
	assert.False(t, o.movable(svg))
}

func TestPoolOptions(t *testing.T) {
	tests := []struct {
		name      string
		opt       PoolOption
		wantMoves bool
		wantCap   int
	}{
		{"all move", WithMovePredicate(func(Renderer) bool { return true }), true, 64},
		{"nil predicate", WithMovePredicate(nil), false, 64},
		{"capacity", WithPoolCapacity(8), false, 8},
		{"capacity ignored", WithPoolCapacity(-1), false, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultPoolOptions()
			tt.opt(&o)
			assert.Equal(t, tt.wantMoves, o.movable(svg))
			assert.Equal(t, tt.wantCap, o.capacity)
		})
	}
}

func TestFrameOptions(t *testing.T) {
	o := defaultFrameOptions()
	assert.Nil(t, o.logger)
	assert.Equal(t, AssertionsEnabled, o.audit)
	assert.Equal(t, 32, o.capacity)

	l := slog.New(nopHandler{})
	for _, opt := range []FrameOption{WithFrameLogger(l), WithAudit(false), WithCapacity(4), WithCapacity(0)} {
		opt(&o)
	}
	assert.Same(t, l, o.logger)
	assert.False(t, o.audit)
	assert.Equal(t, 4, o.capacity)
}
