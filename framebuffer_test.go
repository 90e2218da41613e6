package pixcurve

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSurface records every SetPixel call.
type recordingSurface struct {
	*Pixmap
	sets    [][2]int
	cleared []color.Color
}

func newRecordingSurface(w, h int) *recordingSurface {
	return &recordingSurface{Pixmap: NewPixmap(w, h)}
}

func (s *recordingSurface) SetPixel(x, y int, c color.Color) {
	s.sets = append(s.sets, [2]int{x, y})
	s.Pixmap.SetPixel(x, y, c)
}

func (s *recordingSurface) Clear(c color.Color) {
	s.cleared = append(s.cleared, c)
	s.Pixmap.Clear(c)
}

func TestFramebufferClear(t *testing.T) {
	s := newRecordingSurface(8, 6)
	fb := NewFramebuffer(s, Blue)
	fb.DrawPixel(1, 1, Red)
	fb.Clear()

	assert.Equal(t, []color.Color{Blue}, s.cleared)
	assert.Equal(t, 48, s.Count(Blue))
	assert.Equal(t, 8, fb.Width())
	assert.Equal(t, 6, fb.Height())
}

func TestFramebufferNilBackground(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.Clear(White)
	NewFramebuffer(pm, nil).Clear()
	assert.Equal(t, 4, pm.Count(Transparent))
}

func TestDrawPixelTruncates(t *testing.T) {
	tests := []struct {
		x, y       float64
		wantX, wtY int
	}{
		{3.9, 4.2, 3, 4},
		{0.999, 0, 0, 0},
		{-0.5, 2.5, 0, 2}, // truncation toward zero keeps -0.5 on column 0
		{7, 7, 7, 7},
	}
	for _, tt := range tests {
		s := newRecordingSurface(10, 10)
		NewFramebuffer(s, Black).DrawPixel(tt.x, tt.y, Red)
		require.Len(t, s.sets, 1, "(%v, %v)", tt.x, tt.y)
		assert.Equal(t, [2]int{tt.wantX, tt.wtY}, s.sets[0])
	}
}

func TestDrawPixelOutOfGridIgnored(t *testing.T) {
	s := newRecordingSurface(10, 10)
	fb := NewFramebuffer(s, Black)
	for _, p := range []Point{{-1.5, 0}, {10, 0}, {0, 10}, {0, -3}, {1e12, 5}, {math.NaN(), 1}, {math.Inf(-1), 1}} {
		fb.DrawPixel(p.X, p.Y, Red)
	}
	assert.Empty(t, s.sets)
}

func TestDrawPointMarker(t *testing.T) {
	s := newRecordingSurface(10, 10)
	NewFramebuffer(s, Black).DrawPointMarker(5.7, 5.2, Red)
	assert.ElementsMatch(t, [][2]int{{4, 4}, {6, 4}, {5, 5}, {6, 6}, {4, 6}}, s.sets)
}

func TestDrawPointMarkerClipped(t *testing.T) {
	s := newRecordingSurface(10, 10)
	NewFramebuffer(s, Black).DrawPointMarker(0, 0, Red)
	assert.ElementsMatch(t, [][2]int{{0, 0}, {1, 1}}, s.sets)
}

func TestDrawLinePixelCount(t *testing.T) {
	tests := []struct{ x0, y0, x1, y1 float64 }{
		{0, 0, 9, 0},
		{0, 0, 0, 9},
		{1, 1, 8, 5},
		{8, 5, 1, 1},
		{9, 0, 0, 9},
		{2.4, 2.6, 7.5, 3.49}, // rounds to (2,3)-(8,3)
	}
	for _, tt := range tests {
		pm := NewPixmap(10, 10)
		pm.Clear(Black)
		NewFramebuffer(pm, Black).DrawLine(tt.x0, tt.y0, tt.x1, tt.y1, White)

		x0, y0 := math.Round(tt.x0), math.Round(tt.y0)
		x1, y1 := math.Round(tt.x1), math.Round(tt.y1)
		want := int(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))) + 1

		assert.Equal(t, want, pm.Count(White), "line %v", tt)
		assert.Equal(t, White, pm.GetPixel(int(x0), int(y0)), "start of %v", tt)
		assert.Equal(t, White, pm.GetPixel(int(x1), int(y1)), "end of %v", tt)
	}
}

func TestDrawLineSymmetric(t *testing.T) {
	forward := NewPixmap(20, 20)
	backward := NewPixmap(20, 20)
	NewFramebuffer(forward, Black).DrawLine(1, 2, 17, 9, White)
	NewFramebuffer(backward, Black).DrawLine(17, 9, 1, 2, White)
	assert.Equal(t, forward.Data(), backward.Data())
}

func TestDrawLineClipsOffGrid(t *testing.T) {
	pm := NewPixmap(10, 10)
	NewFramebuffer(pm, Black).DrawLine(-5, 5, 14, 5, White)
	assert.Equal(t, 10, pm.Count(White))
}
