// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ImageSurface paints logical pixels as cells of an *image.RGBA.
//
// It implements pixcurve.Surface. Width and Height are in logical pixels;
// the backing image is Width*cellW by Height*cellH.
//
// Example:
//
//	s := surface.NewImageSurface(1000, 1000, 1, 1)
//	s.Clear(color.Black)
//	s.SetPixel(10, 10, color.White)
//	img := s.Image()
type ImageSurface struct {
	cols  int
	rows  int
	cellW int
	cellH int
	img   *image.RGBA

	// grid is the color of the cell boundary lines; nil disables them
	grid color.Color
}

// Option configures an ImageSurface.
type Option func(*ImageSurface)

// WithGrid draws one-pixel cell boundary lines in c whenever the surface
// is cleared. Cells painted afterwards cover the lines.
func WithGrid(c color.Color) Option {
	return func(s *ImageSurface) {
		s.grid = c
	}
}

// NewImageSurface creates a surface of cols×rows logical pixels, each
// cellW×cellH image pixels. Non-positive arguments are clamped to 1.
func NewImageSurface(cols, rows, cellW, cellH int, opts ...Option) *ImageSurface {
	s := &ImageSurface{
		cols:  max(cols, 1),
		rows:  max(rows, 1),
		cellW: max(cellW, 1),
		cellH: max(cellH, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.img = image.NewRGBA(image.Rect(0, 0, s.cols*s.cellW, s.rows*s.cellH))
	return s
}

// Width returns the surface width in logical pixels.
func (s *ImageSurface) Width() int {
	return s.cols
}

// Height returns the surface height in logical pixels.
func (s *ImageSurface) Height() int {
	return s.rows
}

// CellSize returns the size of one logical pixel in image pixels.
func (s *ImageSurface) CellSize() (w, h int) {
	return s.cellW, s.cellH
}

// Clear fills the entire surface with the given color and redraws the
// grid, if enabled.
func (s *ImageSurface) Clear(c color.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	if s.grid == nil {
		return
	}

	line := image.NewUniform(s.grid)
	b := s.img.Bounds()
	for y := 0; y < s.rows; y++ {
		r := image.Rect(b.Min.X, y*s.cellH, b.Max.X, y*s.cellH+1)
		draw.Draw(s.img, r, line, image.Point{}, draw.Over)
	}
	for x := 0; x < s.cols; x++ {
		r := image.Rect(x*s.cellW, b.Min.Y, x*s.cellW+1, b.Max.Y)
		draw.Draw(s.img, r, line, image.Point{}, draw.Over)
	}
}

// SetPixel fills the cell of logical pixel (x, y) with c.
// Out-of-bounds coordinates are ignored.
func (s *ImageSurface) SetPixel(x, y int, c color.Color) {
	if x < 0 || x >= s.cols || y < 0 || y >= s.rows {
		return
	}
	r := image.Rect(x*s.cellW, y*s.cellH, (x+1)*s.cellW, (y+1)*s.cellH)
	draw.Draw(s.img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// Image returns the backing image. It is not a copy: later drawing is
// visible through it.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Snapshot returns a copy of the current contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	out := image.NewRGBA(s.img.Bounds())
	copy(out.Pix, s.img.Pix)
	return out
}

// Scaled returns the contents resized to width×height with
// nearest-neighbour sampling, which keeps the cell edges crisp.
func (s *ImageSurface) Scaled(width, height int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1)))
	draw.NearestNeighbor.Scale(out, out.Bounds(), s.img, s.img.Bounds(), draw.Src, nil)
	return out
}
