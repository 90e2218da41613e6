// Package raster provides integer line rasterization for the pixel grid.
package raster

// Plotter receives the pixels produced by a rasterizer.
// It is a function rather than an interface to avoid an import cycle with
// the framebuffer that owns the grid.
type Plotter func(x, y int)

// Line walks the Bresenham line from (x0, y0) to (x1, y1), calling plot once
// per pixel.
//
// Endpoints are put in canonical order (smaller x first, then smaller y)
// before walking, so the pixel set is the same for both argument orders.
// Exactly max(|dx|, |dy|)+1 pixels are produced, both endpoints included,
// and consecutive pixels are 8-connected.
func Line(x0, y0, x1, y1 int, plot Plotter) {
	if x1 < x0 || (x1 == x0 && y1 < y0) {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := sign(x1 - x0)
	sy := sign(y1 - y0)
	err := dx - dy

	x, y := x0, y0
	for {
		plot(x, y)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// Count returns the number of pixels Line produces for the given endpoints.
func Count(x0, y0, x1, y1 int) int {
	return max(abs(x1-x0), abs(y1-y0)) + 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// sign returns -1 for negative v and 1 otherwise.
func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}
