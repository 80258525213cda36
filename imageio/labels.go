package imageio

import (
	"errors"
	"image"
	"image/color/palette"

	"silcount/pixel"
	"silcount/silhouette"
)

// ErrNoLabels is returned when a result was computed without regions or labels.
var ErrNoLabels = errors.New("imageio: result carries no label mask or regions")

var (
	labelBackground = pixel.ARGB(255, 0, 0, 0)
	labelNoise      = pixel.ARGB(255, 128, 128, 128)
)

// LabelImage paints a label map of res: background black, regions under the
// noise floor gray and each counted silhouette in its own color. res must
// come from a run with WithRegions and WithLabels.
func LabelImage(res silhouette.Result) (*pixel.Image, error) {
	if res.Mask == nil || (res.Regions == nil && res.Mask.Regions() > 0) {
		return nil, ErrNoLabels
	}

	colors := make([]pixel.Color, len(res.Regions)+1)
	colors[0] = labelBackground
	for _, r := range res.Regions {
		c := labelNoise
		if r.Kept {
			c = regionColor(r.Label)
		}
		colors[r.Label] = c
	}

	img := pixel.NewImage(image.Rect(0, 0, res.Width, res.Height))
	for y := 0; y < res.Height; y++ {
		for x := 0; x < res.Width; x++ {
			img.SetPixel(x, y, colors[res.Mask.Label(x, y)])
		}
	}
	return img, nil
}

// regionColor spreads consecutive labels over the web-safe palette,
// skipping its first entry (black).
func regionColor(label int32) pixel.Color {
	n := len(palette.WebSafe) - 1
	i := 1 + (int(label)*37)%n
	return pixel.Model.Convert(palette.WebSafe[i]).(pixel.Color)
}
