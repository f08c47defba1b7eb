package stitch

import "log/slog"

// PoolOption configures a Pool during creation.
//
// Example:
//
//	// Notify order-sensitive blocks of every backend, not only Canvas.
//	pool := stitch.NewPool(stitch.WithMovePredicate(func(stitch.Renderer) bool { return true }))
type PoolOption func(*poolOptions)

// poolOptions holds optional configuration for Pool creation.
type poolOptions struct {
	movable  MovePredicate
	capacity int
}

// defaultPoolOptions returns the default pool options.
func defaultPoolOptions() poolOptions {
	return poolOptions{
		movable:  CanvasMoves,
		capacity: 64,
	}
}

// WithMovePredicate sets which renderers have their blocks told about
// membership-preserving moves through MoveObserver. The default is
// CanvasMoves. A nil predicate disables move notifications.
func WithMovePredicate(fn MovePredicate) PoolOption {
	return func(o *poolOptions) {
		if fn == nil {
			fn = func(Renderer) bool { return false }
		}
		o.movable = fn
	}
}

// WithPoolCapacity preallocates slot capacity (not slots; see Pool.Warmup).
func WithPoolCapacity(n int) PoolOption {
	return func(o *poolOptions) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// FrameOption configures a Frame during creation.
//
// Example:
//
//	frame := stitch.NewFrame(stitch.WithAudit(true), stitch.WithFrameLogger(logger))
type FrameOption func(*frameOptions)

// frameOptions holds optional configuration for Frame creation.
type frameOptions struct {
	logger   *slog.Logger
	audit    bool
	capacity int
}

// defaultFrameOptions returns the default frame options.
func defaultFrameOptions() frameOptions {
	return frameOptions{
		logger:   nil, // Falls back to Logger() at finalize time
		audit:    AssertionsEnabled,
		capacity: 32,
	}
}

// WithFrameLogger sets a logger used by this frame instead of Logger().
func WithFrameLogger(l *slog.Logger) FrameOption {
	return func(o *frameOptions) {
		o.logger = l
	}
}

// WithAudit enables or disables the post-finalize audit of every touched
// live drawable. Audit failures are assertion failures. The default follows
// AssertionsEnabled.
func WithAudit(enabled bool) FrameOption {
	return func(o *frameOptions) {
		o.audit = enabled
	}
}

// WithCapacity sets the initial capacity of each per-frame worklist.
func WithCapacity(n int) FrameOption {
	return func(o *frameOptions) {
		if n > 0 {
			o.capacity = n
		}
	}
}
