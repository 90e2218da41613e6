// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides host surfaces for the pixcurve framebuffer.
//
// The framebuffer works on a coarse logical grid; a host surface decides
// what a logical pixel physically looks like. ImageSurface paints every
// logical pixel as a cellW×cellH rectangle of an *image.RGBA, optionally
// over a faint grid that shows the pixel boundaries.
//
// # Usage
//
//	s := surface.NewImageSurface(100, 100, 8, 8, surface.WithGrid(pixcurve.Gray))
//	fb := pixcurve.NewFramebuffer(s, pixcurve.Black)
//	r := pixcurve.NewRenderer(fb)
//
//	r.Clear()
//	r.DrawLine(10, 10, 90, 40, pixcurve.White)
//
//	if err := s.Save("frame.png"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Formats
//
// Snapshots can be encoded as PNG or BMP (golang.org/x/image/bmp).
package surface
