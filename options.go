// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixcurve

import (
	"image/color"

	"github.com/gogpu/pixcurve/basis"
)

// RendererOption configures a Renderer during creation.
// Use functional options to customize Renderer behavior.
//
// Example:
//
//	// Default colors and a private basis cache
//	r := pixcurve.NewRenderer(fb)
//
//	// Share one basis cache between renderers (dependency injection)
//	shared := basis.New()
//	r1 := pixcurve.NewRenderer(fb1, pixcurve.WithBasisCache(shared))
//	r2 := pixcurve.NewRenderer(fb2, pixcurve.WithBasisCache(shared))
type RendererOption func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	cache        *basis.Cache
	sampleColor  color.Color
	controlColor color.Color
	overlayColor color.Color
}

// Default overlay colors.
var (
	// DefaultSampleColor marks evaluated curve samples.
	DefaultSampleColor color.Color = Red
	// DefaultControlColor marks control points.
	DefaultControlColor color.Color = Green
	// DefaultOverlayColor draws tangent indicators and control polygons.
	DefaultOverlayColor color.Color = Gray
)

// defaultOptions returns the default renderer options.
func defaultOptions() rendererOptions {
	return rendererOptions{
		cache:        nil, // Will be created if nil
		sampleColor:  DefaultSampleColor,
		controlColor: DefaultControlColor,
		overlayColor: DefaultOverlayColor,
	}
}

// WithBasisCache makes the Renderer use c instead of a private cache.
// A basis cache is safe to share between renderers.
func WithBasisCache(c *basis.Cache) RendererOption {
	return func(o *rendererOptions) {
		o.cache = c
	}
}

// WithSampleColor sets the color of the markers drawn at curve samples
// when CurveStyle.ShowPoints is set.
func WithSampleColor(c color.Color) RendererOption {
	return func(o *rendererOptions) {
		if c != nil {
			o.sampleColor = c
		}
	}
}

// WithControlColor sets the color of control point markers.
func WithControlColor(c color.Color) RendererOption {
	return func(o *rendererOptions) {
		if c != nil {
			o.controlColor = c
		}
	}
}

// WithOverlayColor sets the color of Hermite tangent indicators and of
// cardinal and Bezier control polygons.
func WithOverlayColor(c color.Color) RendererOption {
	return func(o *rendererOptions) {
		if c != nil {
			o.overlayColor = c
		}
	}
}
