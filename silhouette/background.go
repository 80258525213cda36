package silhouette

import "silcount/pixel"

// EstimateBackground returns the most frequent border color of grid.
//
// The border is scanned as top row, bottom row (both left to right), then
// left column, right column (both top to bottom). Corner pixels, and whole
// rows or columns of one pixel wide grids, are counted once per scan that
// reaches them. Ties go to the color first encountered in that order.
// grid must not be empty.
func EstimateBackground(grid pixel.Grid) pixel.Color {
	w, h := grid.Width(), grid.Height()
	counts := make(map[pixel.Color]int)
	var order []pixel.Color

	tally := func(c pixel.Color) {
		if _, seen := counts[c]; !seen {
			order = append(order, c)
		}
		counts[c]++
	}

	for x := 0; x < w; x++ {
		tally(grid.Pixel(x, 0))
	}
	for x := 0; x < w; x++ {
		tally(grid.Pixel(x, h-1))
	}
	for y := 0; y < h; y++ {
		tally(grid.Pixel(0, y))
	}
	for y := 0; y < h; y++ {
		tally(grid.Pixel(w-1, y))
	}

	var best pixel.Color
	bestCount := 0
	for _, c := range order {
		if n := counts[c]; n > bestCount {
			best, bestCount = c, n
		}
	}
	return best
}
