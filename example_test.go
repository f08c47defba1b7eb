// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stitch_test

import (
	"fmt"

	"github.com/gogpu/stitch"
	"github.com/gogpu/stitch/block"
)

func Example() {
	pool := stitch.NewPool()
	svg := stitch.NewRenderer(stitch.BackendSVG, 0)
	layer := block.NewList("layer", stitch.BackendSVG)

	frame := stitch.NewFrame()
	a, b := pool.Create(svg), pool.Create(svg)
	a.NotePendingAddition(frame, layer, nil)
	b.NotePendingAddition(frame, layer, nil)
	stitch.ConnectDrawables(a, b, frame)
	res := frame.Finalize()

	fmt.Println(res.Visited, len(res.BlockChanged), res.Relinked)
	fmt.Println(stitch.ListString(a, b))
	fmt.Println(layer.Len())
	// Output:
	// 2 2 2
	// svg#1 svg#2
	// 2
}

func ExampleDrawable_NotePendingMove() {
	pool := stitch.NewPool()
	svg := stitch.NewRenderer(stitch.BackendSVG, 0)
	from := block.NewList("from", stitch.BackendSVG)
	to := block.NewList("to", stitch.BackendSVG)

	frame := stitch.NewFrame()
	d := pool.Create(svg)
	d.NotePendingAddition(frame, from, nil)
	frame.Finalize()

	d.NotePendingMove(frame, to)
	res := frame.Finalize()

	fmt.Println(res.ID, len(res.BlockChanged))
	fmt.Println(from.Len(), to.Len(), d.Parent())
	// Output:
	// 2 1
	// 0 1 to
}

func ExampleDrawable_MarkForDisposal() {
	pool := stitch.NewPool()
	dom := stitch.NewRenderer(stitch.BackendDOM, 0)
	layer := block.NewList("layer", stitch.BackendDOM)

	frame := stitch.NewFrame()
	a, b, c := pool.Create(dom), pool.Create(dom), pool.Create(dom)
	for _, d := range []*stitch.Drawable{a, b, c} {
		d.NotePendingAddition(frame, layer, nil)
	}
	stitch.ConnectDrawables(a, b, frame)
	stitch.ConnectDrawables(b, c, frame)
	frame.Finalize()

	h := b.Handle()
	b.NotePendingRemoval(frame)
	b.MarkForDisposal(frame)
	stitch.ConnectDrawables(a, c, frame)
	res := frame.Finalize()

	fmt.Println(stitch.ListString(a, c))
	fmt.Println(res.Disposed, pool.Resolve(h) == nil)

	// The freed slot is reused with a new generation.
	d := pool.Create(dom)
	fmt.Println(d.ID() == h.ID, d.Handle() == h)
	// Output:
	// dom#1 dom#3
	// 1 true
	// true false
}

func ExampleFrame_Finalize_reorder() {
	pool := stitch.NewPool()
	canvas := stitch.NewRenderer(stitch.BackendCanvas, 0)
	raster := block.NewRaster("canvas", 16, 16)

	frame := stitch.NewFrame()
	a, b := pool.Create(canvas), pool.Create(canvas)
	a.NotePendingAddition(frame, raster, nil)
	b.NotePendingAddition(frame, raster, nil)
	stitch.ConnectDrawables(a, b, frame)
	frame.Finalize()

	// Swap the paint order and re-add a to the block it already owns.
	stitch.DisconnectAfter(a, frame)
	stitch.ConnectDrawables(b, a, frame)
	a.NotePendingRemoval(frame)
	a.NotePendingAddition(frame, raster, nil)
	res := frame.Finalize()

	fmt.Println(len(res.BlockChanged), raster.Moves())
	fmt.Println(stitch.ListString(b, a))
	// Output:
	// 0 1
	// canvas#2 canvas#1
}
