package imageio

import (
	"image"
	"log/slog"
	"math"

	"golang.org/x/image/draw"
)

// Downscale shrinks img so that its longer side is at most maxSide pixels,
// keeping the aspect ratio. Nearest-neighbor sampling keeps every output
// pixel one of the source colors. img is returned as is when maxSide < 1 or
// it already fits.
func Downscale(logger *slog.Logger, img image.Image, maxSide int) image.Image {
	srcBounds := img.Bounds()
	srcWidth := float64(srcBounds.Dx())
	srcHeight := float64(srcBounds.Dy())

	longest := math.Max(srcWidth, srcHeight)
	if maxSide < 1 || longest <= float64(maxSide) {
		return img
	}

	scale := float64(maxSide) / longest
	destWidth := max(1, int(math.Round(srcWidth*scale)))
	destHeight := max(1, int(math.Round(srcHeight*scale)))

	logger.Info("downscaling", "width", destWidth, "height", destHeight)
	dest := image.NewNRGBA(image.Rect(0, 0, destWidth, destHeight))
	draw.NearestNeighbor.Scale(dest, dest.Bounds(), img, srcBounds, draw.Src, nil)

	return dest
}
