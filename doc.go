// Package stitch implements the incremental update ("stitching") protocol of
// a retained-mode display tree.
//
// # Overview
//
// A retained-mode renderer keeps its output split into Blocks, each bound to
// one backend (Canvas, SVG, DOM, WebGL). Every frame, tree mutations decide
// which Drawable belongs to which Block and in which paint order. stitch
// tracks those decisions with as little work as possible:
//
//   - Drawable is the atomic renderable unit. It records pending intents
//     (addition, removal, move) and two paint-order lists: the current one
//     and the one as of the previous frame.
//   - Block and Backbone are the backend containers a Drawable attaches to.
//     They are interfaces; reference implementations live in package block.
//   - Frame is the coordinator. It implements Display, collects the
//     drawables touched during a frame and applies their intents in
//     Finalize.
//   - Pool is the arena that owns Drawables and recycles their slots.
//
// # Frame phases
//
// Each frame has two phases. In the mutation phase a tree walk issues
// notifications in any order:
//
//	d.NotePendingRemoval(frame)
//	d.NotePendingAddition(frame, newBlock, backbone)
//	stitch.ConnectDrawables(prev, d, frame)
//
// Notifications are idempotent: repeated or cancelling notifications
// collapse into one pending state, so their order does not matter. In the
// finalize phase each touched drawable gets exactly one UpdateBlock and, if
// its links changed, one UpdateLinks:
//
//	res := frame.Finalize()
//
// # Handles
//
// List links are stored as generation-checked Handles into the Pool rather
// than pointers. Once a drawable is disposed its handles stop resolving,
// even after the slot is reused for a new drawable with the same ID.
//
// # Errors
//
// Protocol violations such as disposing twice or mutating a disposed
// drawable are programming errors and panic with *AssertionError. Build
// with the stitch_noassert tag to compile the checks out.
//
// # Concurrency
//
// Everything except SetLogger and Logger is single-threaded: a Pool, its
// Drawables and the Frames driving them must be used from one goroutine.
package stitch
