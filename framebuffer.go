package pixcurve

import (
	"image/color"
	"math"

	"github.com/gogpu/pixcurve/internal/raster"
)

// Surface is the host drawing target that physically paints logical pixels.
//
// Implementations need not clip: Framebuffer only calls SetPixel with
// coordinates inside [0, Width()) × [0, Height()).
type Surface interface {
	Width() int
	Height() int
	Clear(c color.Color)
	SetPixel(x, y int, c color.Color)
}

// Framebuffer is the logical pixel grid that curves and lines are drawn on.
// Coordinates are floats; they are truncated or rounded when painted, and
// pixels that fall outside the grid are dropped without error so that
// curves may overshoot the visible area.
//
// A Framebuffer is not safe for concurrent use.
type Framebuffer struct {
	surface    Surface
	background color.Color
}

// NewFramebuffer creates a framebuffer that paints onto s.
// A nil background clears to Transparent.
func NewFramebuffer(s Surface, background color.Color) *Framebuffer {
	if background == nil {
		background = Transparent
	}
	return &Framebuffer{surface: s, background: background}
}

// Width returns the grid width in logical pixels.
func (fb *Framebuffer) Width() int {
	return fb.surface.Width()
}

// Height returns the grid height in logical pixels.
func (fb *Framebuffer) Height() int {
	return fb.surface.Height()
}

// Surface returns the underlying host surface.
func (fb *Framebuffer) Surface() Surface {
	return fb.surface
}

// Clear resets the entire grid to the background color.
func (fb *Framebuffer) Clear() {
	fb.surface.Clear(fb.background)
}

// DrawPixel paints the pixel containing (x, y). Coordinates are truncated
// toward zero.
func (fb *Framebuffer) DrawPixel(x, y float64, c color.Color) {
	fb.setPixel(truncInt(x), truncInt(y), c)
}

// DrawPointMarker paints a five-pixel X centered on the truncated (x, y):
// the center and its four diagonal neighbours.
func (fb *Framebuffer) DrawPointMarker(x, y float64, c color.Color) {
	cx, cy := truncInt(x), truncInt(y)
	fb.setPixel(cx-1, cy-1, c)
	fb.setPixel(cx+1, cy-1, c)
	fb.setPixel(cx, cy, c)
	fb.setPixel(cx+1, cy+1, c)
	fb.setPixel(cx-1, cy+1, c)
}

// DrawLine rasterizes the segment (x0, y0)-(x1, y1) with Bresenham's
// algorithm. Both endpoints are rounded to the nearest pixel first; the
// result paints exactly max(|dx|, |dy|)+1 pixels including both endpoints
// (fewer if part of the line is off-grid).
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 float64, c color.Color) {
	raster.Line(roundInt(x0), roundInt(y0), roundInt(x1), roundInt(y1), func(x, y int) {
		fb.setPixel(x, y, c)
	})
}

func (fb *Framebuffer) setPixel(x, y int, c color.Color) {
	if x < 0 || y < 0 || x >= fb.surface.Width() || y >= fb.surface.Height() {
		return
	}
	fb.surface.SetPixel(x, y, c)
}

// coordLimit bounds the integer coordinates handed to the rasterizer so
// that a wildly overshooting curve costs a bounded amount of work.
const coordLimit = 1 << 24

// roundInt rounds half away from zero.
func roundInt(v float64) int {
	return clampCoord(math.Round(v))
}

// truncInt truncates toward zero.
func truncInt(v float64) int {
	return clampCoord(math.Trunc(v))
}

func clampCoord(v float64) int {
	switch {
	case math.IsNaN(v), v < -coordLimit:
		return -coordLimit
	case v > coordLimit:
		return coordLimit
	}
	return int(v)
}
