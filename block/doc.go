// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package block provides reference implementations of stitch.Block and
// stitch.Backbone, and a registry that creates blocks by backend.
//
// # Blocks
//
//   - List keeps membership and an event log. SVG and DOM blocks are Lists.
//   - Raster paints member drawables into an *image.RGBA in paint order. It
//     implements stitch.MoveObserver because its output depends on order.
//   - Batch collects member IDs into a GPU instance order for a target
//     texture format.
//
// Blocks report bookkeeping violations (adding a member twice, removing a
// stranger) through Err and a warning on stitch.Logger rather than
// panicking, so a driver can surface them after a frame.
//
// # Registry
//
// Factories are registered per stitch.Backend, following the database/sql
// driver pattern. The package registers a default factory for every
// backend in init; replace one with Unregister followed by Register:
//
//	block.Unregister(stitch.BackendCanvas)
//	block.Register(stitch.BackendCanvas, func(name string) stitch.Block {
//	    return block.NewRaster(name, 1024, 768)
//	})
//
// Blocks are not safe for concurrent use.
package block
