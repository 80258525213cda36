package analyze

import (
	"log/slog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"silcount/silhouette"
)

// Summary describes the sizes of the regions found in one image.
type Summary struct {
	Regions int // flooded regions, noise included
	Kept    int // regions reaching the noise floor

	// Size statistics over the kept regions, in pixels.
	Mean, StdDev, Median float64
	Min, Max             float64
	// Coverage is the share of the image area covered by kept regions.
	Coverage float64
}

// Summarize computes size statistics for res. res must come from a run with
// silhouette.WithRegions.
func Summarize(res silhouette.Result) Summary {
	s := Summary{Regions: len(res.Regions)}

	sizes := make([]float64, 0, len(res.Regions))
	for _, r := range res.Regions {
		if r.Kept {
			sizes = append(sizes, float64(r.Size))
		}
	}
	s.Kept = len(sizes)
	if s.Kept == 0 {
		return s
	}

	s.Mean = stat.Mean(sizes, nil)
	if s.Kept > 1 {
		s.StdDev = stat.StdDev(sizes, nil)
	}
	s.Min = floats.Min(sizes)
	s.Max = floats.Max(sizes)
	if area := float64(res.Width * res.Height); area > 0 {
		s.Coverage = floats.Sum(sizes) / area
	}

	floats.Argsort(sizes, make([]int, len(sizes)))
	s.Median = stat.Quantile(0.5, stat.Empirical, sizes, nil)
	return s
}

// LogValue implements slog.LogValuer.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("regions", s.Regions),
		slog.Int("kept", s.Kept),
		slog.Float64("mean", s.Mean),
		slog.Float64("stddev", s.StdDev),
		slog.Float64("median", s.Median),
		slog.Float64("min", s.Min),
		slog.Float64("max", s.Max),
		slog.Float64("coverage", s.Coverage),
	)
}
