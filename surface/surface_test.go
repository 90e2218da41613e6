// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"out.png", FormatPNG},
		{"dir/OUT.PNG", FormatPNG},
		{"frame.bmp", FormatBMP},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}

	_, err := FormatFromPath("out.jpg")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	_, err = FormatFromPath("noext")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "png", FormatPNG.String())
	assert.Equal(t, "bmp", FormatBMP.String())
	assert.Equal(t, "Format(5)", Format(5).String())
}

func TestEncodeRoundTrip(t *testing.T) {
	s := NewImageSurface(3, 2, 2, 2)
	s.Clear(black)
	s.SetPixel(2, 1, white)

	decoders := map[Format]func(*bytes.Buffer) (image.Image, error){
		FormatPNG: func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) },
		FormatBMP: func(b *bytes.Buffer) (image.Image, error) { return bmp.Decode(b) },
	}
	for f, decode := range decoders {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, s.Image(), f))

			img, err := decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 6, 4), img.Bounds())

			r, g, b, _ := img.At(5, 3).RGBA()
			assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b})
			r, g, b, _ = img.At(0, 0).RGBA()
			assert.Equal(t, [3]uint32{0, 0, 0}, [3]uint32{r, g, b})
		})
	}

	assert.ErrorIs(t, Encode(&bytes.Buffer{}, s.Image(), Format(9)), ErrUnknownFormat)
}

func TestSave(t *testing.T) {
	s := NewImageSurface(4, 4, 1, 1)
	s.Clear(black)

	dir := t.TempDir()
	path := filepath.Join(dir, "frame.png")
	require.NoError(t, s.Save(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())

	assert.ErrorIs(t, s.Save(filepath.Join(dir, "frame.gif")), ErrUnknownFormat)
}
