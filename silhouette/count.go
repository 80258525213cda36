package silhouette

import (
	"fmt"
	"image"

	"silcount/pixel"
)

// Region describes one flooded component.
type Region struct {
	// Label is the region's value in the mask.
	Label int32
	// Seed is the first pixel of the region met by the scan.
	Seed image.Point
	Size int
	// Kept reports whether the region reached the noise floor.
	Kept bool
}

// Result is the outcome of one counting run.
type Result struct {
	// Count is the number of silhouettes.
	Count int

	Width, Height int
	Background    pixel.Color
	// MinRegionSize is NoiseFraction × Width × Height.
	MinRegionSize float64

	// Regions lists every flooded region in scan order. Only filled
	// with WithRegions.
	Regions []Region
	// Mask is the labelled visited mask. Only set with WithLabels.
	Mask *Mask
}

// Count counts the silhouettes of grid.
//
// Behavior:
//  1. Estimate the background from the border (unless WithBackground).
//  2. minRegionSize = NoiseFraction × width × height.
//  3. Scan columns left to right, each column top to bottom. Every
//     unvisited foreground pixel seeds a traversal that claims its whole
//     region, and the region is counted when its size >= minRegionSize.
//     Regions below the floor stay claimed and are never flooded again.
//
// Returns ErrInvalidInput for an empty grid and ErrOptionViolation for bad
// options.
func Count(grid pixel.Grid, opts ...Option) (Result, error) {
	o, err := NewOptions(opts...)
	if err != nil {
		return Result{}, err
	}
	if grid == nil {
		return Result{}, fmt.Errorf("%w: nil grid", ErrInvalidInput)
	}
	w, h := grid.Width(), grid.Height()
	if w <= 0 || h <= 0 {
		return Result{}, fmt.Errorf("%w: got %d×%d", ErrInvalidInput, w, h)
	}

	res := Result{
		Width:         w,
		Height:        h,
		MinRegionSize: o.NoiseFraction * float64(w*h),
	}
	if o.Background != nil {
		res.Background = *o.Background
	} else {
		res.Background = EstimateBackground(grid)
	}

	cl := Classifier{Background: res.Background, Threshold: o.Threshold}
	mask := NewMask(w, h)

	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if mask.Visited(x, y) || !cl.IsForeground(grid.Pixel(x, y)) {
				continue
			}
			size := o.Strategy.Traverse(grid, mask, cl, x, y)
			kept := float64(size) >= res.MinRegionSize
			if kept {
				res.Count++
			}
			if o.Regions {
				res.Regions = append(res.Regions, Region{
					Label: mask.Label(x, y),
					Seed:  image.Pt(x, y),
					Size:  size,
					Kept:  kept,
				})
			}
		}
	}

	if o.Labels {
		res.Mask = mask
	}
	return res, nil
}

// CountSilhouettes counts the silhouettes of grid with the default
// threshold and the given noise fraction.
func CountSilhouettes(grid pixel.Grid, noiseFraction float64) (int, error) {
	res, err := Count(grid, WithNoiseFraction(noiseFraction))
	if err != nil {
		return 0, err
	}
	return res.Count, nil
}
