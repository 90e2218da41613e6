package pixcurve

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPixmapSetGet(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Clear(Black)

	pm.SetPixel(5, 5, RGB(128, 64, 32))

	i := (5*10 + 5) * 4
	assert.Equal(t, []uint8{128, 64, 32, 255}, pm.Data()[i:i+4])
	assert.Equal(t, RGB(128, 64, 32), pm.GetPixel(5, 5))
	assert.Equal(t, color.Color(RGB(128, 64, 32)), pm.At(5, 5))
}

func TestPixmapConvertsColorModels(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.SetPixel(0, 0, color.RGBA{R: 255, A: 255})
	pm.SetPixel(1, 0, color.Gray{Y: 150})
	assert.Equal(t, Red, pm.GetPixel(0, 0))
	assert.Equal(t, Gray, pm.GetPixel(1, 0))
}

// TestPixmapOutOfBounds verifies out-of-bounds coordinates are silently ignored.
func TestPixmapOutOfBounds(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Clear(Black)

	original := make([]uint8, len(pm.Data()))
	copy(original, pm.Data())

	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10},
		{-100, -100}, {100, 100},
	}
	for _, c := range oob {
		pm.SetPixel(c.x, c.y, Red)
		assert.Equal(t, Transparent, pm.GetPixel(c.x, c.y))
	}
	assert.Equal(t, original, pm.Data())
}

func TestPixmapCountAndClear(t *testing.T) {
	pm := NewPixmap(4, 3)
	pm.Clear(White)
	assert.Equal(t, 12, pm.Count(White))

	pm.SetPixel(0, 0, Red)
	pm.SetPixel(3, 2, Red)
	assert.Equal(t, 2, pm.Count(Red))
	assert.Equal(t, 10, pm.Count(White))

	pm.Clear(Black)
	assert.Zero(t, pm.Count(Red))
}

func TestPixmapImage(t *testing.T) {
	pm := NewPixmap(3, 2)
	pm.SetPixel(2, 1, Blue)

	var img image.Image = pm
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
	assert.Equal(t, color.NRGBAModel, img.ColorModel())

	out := pm.ToImage()
	require.Equal(t, pm.Bounds(), out.Bounds())
	assert.Equal(t, Blue, out.NRGBAAt(2, 1))
}

func TestNewPixmapClampsSize(t *testing.T) {
	pm := NewPixmap(0, -3)
	assert.Equal(t, 1, pm.Width())
	assert.Equal(t, 1, pm.Height())
}
