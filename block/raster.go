// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package block

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/stitch"
)

// Paint is the drawable payload understood by Raster. If Image is set it is
// scaled into Rect, otherwise Rect is filled with Color.
type Paint struct {
	Rect  image.Rectangle
	Color color.Color
	Image image.Image
}

// Raster is a canvas block that paints its members into an RGBA image.
// Paint order follows the drawable list, so Raster implements
// stitch.MoveObserver and repaints when a member may have moved.
type Raster struct {
	*List

	img        *image.RGBA
	background color.Color
	stale      bool
	moves      int
}

var _ stitch.MoveObserver = (*Raster)(nil)

// NewRaster creates a canvas block with a transparent width x height image.
func NewRaster(name string, width, height int) *Raster {
	r := &Raster{
		List:       NewList(name, stitch.BackendCanvas),
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		background: color.Transparent,
	}
	r.onVisible = func(*stitch.Drawable) { r.stale = true }
	return r
}

// SetBackground sets the color the image is cleared to before painting.
func (r *Raster) SetBackground(c color.Color) {
	r.background = c
	r.stale = true
}

// AddDrawable implements stitch.Block.
func (r *Raster) AddDrawable(d *stitch.Drawable) {
	r.List.AddDrawable(d)
	r.stale = true
}

// RemoveDrawable implements stitch.Block.
func (r *Raster) RemoveDrawable(d *stitch.Drawable) {
	r.List.RemoveDrawable(d)
	r.stale = true
}

// MarkDirtyDrawable implements stitch.Block.
func (r *Raster) MarkDirtyDrawable(d *stitch.Drawable) {
	r.List.MarkDirtyDrawable(d)
	r.stale = true
}

// OnPotentiallyMovedDrawable implements stitch.MoveObserver.
func (r *Raster) OnPotentiallyMovedDrawable(d *stitch.Drawable) {
	r.record(OpMoved, d)
	r.moves++
	r.stale = true
}

// Moves returns how many move notifications the block received.
func (r *Raster) Moves() int { return r.moves }

// Stale reports whether the image is out of date.
func (r *Raster) Stale() bool { return r.stale }

// Image returns the painted image. Call Repaint first.
func (r *Raster) Image() *image.RGBA { return r.img }

// Repaint redraws every visible member in paint order if anything changed
// since the last call. It reports whether the image was redrawn.
func (r *Raster) Repaint() bool {
	if !r.stale {
		return false
	}
	bounds := r.img.Bounds()
	xdraw.Draw(r.img, bounds, image.NewUniform(r.background), image.Point{}, xdraw.Src)
	for _, d := range r.Ordered() {
		d.Update()
		if !d.IsVisible() {
			continue
		}
		p, ok := d.Payload.(Paint)
		if !ok {
			continue
		}
		dst := p.Rect.Intersect(bounds)
		if dst.Empty() {
			continue
		}
		if p.Image != nil {
			xdraw.ApproxBiLinear.Scale(r.img, p.Rect, p.Image, p.Image.Bounds(), xdraw.Over, nil)
			continue
		}
		c := p.Color
		if c == nil {
			c = color.Black
		}
		xdraw.Draw(r.img, dst, image.NewUniform(c), image.Point{}, xdraw.Over)
	}
	clear(r.dirty)
	r.stale = false
	return true
}
