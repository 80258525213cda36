// Package analyze connects decoded image files to the silhouette counter. It
// holds the counting flags shared by every command.
package analyze

import (
	"fmt"
	"log/slog"

	"silcount/imageio"
	"silcount/pixel"
	"silcount/silhouette"
)

// Params are the counting flags.
type Params struct {
	Noise      float64 `help:"Minimum region area as a fraction of the image area" default:"0.001" env:"SILCOUNT_NOISE" group:"count"`
	Threshold  int     `help:"Per-channel distance below which a pixel matches the background (0-256)" default:"100" env:"SILCOUNT_THRESHOLD" group:"count"`
	Strategy   string  `help:"Region traversal strategy" enum:"bfs,dfs,stack" default:"bfs" group:"count"`
	Background string  `help:"Background color (#RGB, #RGBA, #RRGGBB or #RRGGBBAA); estimated from the image border if empty" group:"count"`
	MaxSide    int     `help:"Downscale images so that their longer side is at most this many pixels, 0 to disable" default:"0" group:"count"`
}

// Options translates the flags into counter options.
func (p Params) Options() ([]silhouette.Option, error) {
	strategy, err := silhouette.ParseStrategy(p.Strategy)
	if err != nil {
		return nil, err
	}
	if p.MaxSide < 0 {
		return nil, fmt.Errorf("invalid max side: %d", p.MaxSide)
	}

	opts := []silhouette.Option{
		silhouette.WithNoiseFraction(p.Noise),
		silhouette.WithThreshold(p.Threshold),
		silhouette.WithStrategy(strategy),
	}
	if p.Background != "" {
		bg, err := pixel.ParseHex(p.Background)
		if err != nil {
			return nil, fmt.Errorf("invalid background: %w", err)
		}
		opts = append(opts, silhouette.WithBackground(bg))
	}

	if _, err := silhouette.NewOptions(opts...); err != nil {
		return nil, err
	}
	return opts, nil
}

// File decodes the image at path, optionally downscales it and counts its
// silhouettes. extra options are applied after the ones from p.
func File(logger *slog.Logger, path string, p Params, extra ...silhouette.Option) (silhouette.Result, error) {
	opts, err := p.Options()
	if err != nil {
		return silhouette.Result{}, err
	}

	img, format, err := imageio.Load(path)
	if err != nil {
		return silhouette.Result{}, err
	}
	b := img.Bounds()
	logger.Debug("decoded", "format", format, "width", b.Dx(), "height", b.Dy())

	img = imageio.Downscale(logger, img, p.MaxSide)

	res, err := silhouette.Count(pixel.FromImage(img), append(opts, extra...)...)
	if err != nil {
		return silhouette.Result{}, fmt.Errorf("could not count silhouettes in %q: %w", path, err)
	}
	logger.Debug("counted", "silhouettes", res.Count, "background", res.Background.String(),
		"min_region", res.MinRegionSize)
	return res, nil
}
