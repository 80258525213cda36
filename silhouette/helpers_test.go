package silhouette

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"silcount/pixel"
)

var (
	white = pixel.ARGB(255, 255, 255, 255)
	black = pixel.ARGB(255, 0, 0, 0)
)

// gridFromArt builds a grid from rows of '.' (white) and '#' (black).
func gridFromArt(t testing.TB, art ...string) *pixel.Image {
	t.Helper()
	rows := make([][]pixel.Color, len(art))
	for y, line := range art {
		rows[y] = make([]pixel.Color, len(line))
		for x, ch := range line {
			if ch == '#' {
				rows[y][x] = black
			} else {
				rows[y][x] = white
			}
		}
	}
	img, err := pixel.FromRows(rows)
	require.NoError(t, err)
	return img
}

// randomGrid returns a w×h grid with a white border and about density of
// its inner pixels black.
func randomGrid(rng *rand.Rand, w, h int, density float64) *pixel.Image {
	img := pixel.NewImage(rectOf(w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := white
			inner := x > 0 && y > 0 && x < w-1 && y < h-1
			if inner && rng.Float64() < density {
				c = black
			}
			img.SetPixel(x, y, c)
		}
	}
	return img
}

var allStrategies = []Strategy{BreadthFirst, DepthFirst, StackDepthFirst}
