package pixel

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRows_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]Color
		err  error
	}{
		{"Nil", nil, ErrEmpty},
		{"EmptyRow", [][]Color{{}}, ErrEmpty},
		{"Jagged", [][]Color{{1, 2}, {3}}, ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromRows(tc.rows)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestFromRows(t *testing.T) {
	img, err := FromRows([][]Color{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	assert.Equal(t, 3, img.Width())
	assert.Equal(t, 2, img.Height())
	assert.Equal(t, Color(2), img.Pixel(1, 0))
	assert.Equal(t, Color(6), img.Pixel(2, 1))
	assert.Equal(t, Color(4), img.At(0, 1))
	assert.Equal(t, Color(0), img.At(5, 5))
}

// TestFromImage_Offset decodes a sub-image whose bounds do not start at
// the origin; the grid is re-anchored at (0, 0).
func TestFromImage_Offset(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	src.SetNRGBA(2, 1, color.NRGBA{R: 1, G: 2, B: 3, A: 4})
	sub := src.SubImage(image.Rect(1, 1, 4, 3)).(*image.NRGBA)

	img := FromImage(sub)
	assert.Equal(t, 3, img.Width())
	assert.Equal(t, 2, img.Height())
	assert.Equal(t, ARGB(4, 1, 2, 3), img.Pixel(1, 0))
	assert.Equal(t, ARGB(0, 0, 0, 0), img.Pixel(0, 0))
}

func TestFromImage_Generic(t *testing.T) {
	src := image.NewGray(image.Rect(-2, -2, 1, 1))
	src.SetGray(0, 0, color.Gray{Y: 200})

	img := FromImage(src)
	assert.Equal(t, image.Rect(0, 0, 3, 3), img.Bounds())
	assert.Equal(t, ARGB(255, 200, 200, 200), img.Pixel(2, 2))
	assert.Equal(t, ARGB(255, 0, 0, 0), img.Pixel(0, 0))

	assert.Same(t, img, FromImage(img))
}
