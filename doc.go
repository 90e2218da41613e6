// Package pixcurve draws lines and parametric curves onto a logical pixel
// grid.
//
// # Overview
//
// pixcurve rasterizes straight lines with Bresenham's algorithm and samples
// three curve families:
//
//   - Hermite: two endpoints and two tangents
//   - Cardinal: a spline through a point sequence with adjustable tension
//   - Bezier: closed form for cubics, Bernstein blending for other degrees
//
// Coefficient tables for each segment count (and Bezier degree) are built
// once and memoized in a [basis.Cache].
//
// # Quick Start
//
//	import "github.com/gogpu/pixcurve"
//
//	pm := pixcurve.NewPixmap(1000, 1000)
//	fb := pixcurve.NewFramebuffer(pm, pixcurve.Black)
//	r := pixcurve.NewRenderer(fb)
//
//	r.Clear()
//	pts, err := r.DrawCurve(pixcurve.Cardinal, pixcurve.CardinalControls{
//	    Points: []pixcurve.Point{{X: 10, Y: 10}, {X: 250, Y: 50}, {X: 500, Y: 333}},
//	}, 20, pixcurve.CurveStyle{ShowLine: true, Color: pixcurve.White})
//
// # Architecture
//
// The library is organized into:
//   - Public API: Renderer, Framebuffer, Pixmap, curve controls, evaluators
//   - basis: memoized Hermite, power, Bezier and Bernstein tables
//   - internal/raster: integer Bresenham line walker
//   - surface: host surface painting each logical pixel as a cell of an image
//   - scene: scene files (TOML, YAML) and frame rendering
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Pixel (x, y) exists for 0 <= x < width and 0 <= y < height. Writes
// outside the grid are dropped silently so curves may overshoot it.
//
// # Errors
//
// Curves with bad control data fail with [ErrInvalidControls]; a
// non-positive segment count fails with [ErrInvalidSegments]. In both cases
// nothing is painted and the rest of the frame is unaffected.
package pixcurve

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
