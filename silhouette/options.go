package silhouette

import (
	"errors"
	"fmt"

	"silcount/pixel"
)

var (
	// ErrInvalidInput is returned for a nil grid or a grid without pixels.
	ErrInvalidInput = errors.New("silhouette: grid must have at least one row and one column")

	// ErrOptionViolation is returned when an Option carries an out of range value.
	ErrOptionViolation = errors.New("silhouette: invalid option supplied")
)

const (
	// DefaultNoiseFraction is the smallest share of the image area a region
	// must cover to be counted.
	DefaultNoiseFraction = 0.001

	// DefaultThreshold is the per-channel distance under which a pixel is
	// considered to match the background.
	DefaultThreshold = 100

	// MaxThreshold classifies every pixel as background.
	MaxThreshold = 256
)

// Option configures a counting run via functional arguments. Invalid values
// are recorded and surfaced as ErrOptionViolation by NewOptions and Count.
type Option func(*Options)

// Options holds the parameters of one counting run.
type Options struct {
	// NoiseFraction is in [0, 1]. A region of size s is counted iff
	// s >= NoiseFraction × width × height.
	NoiseFraction float64

	// Threshold is in [0, 256].
	Threshold int

	// Strategy selects how regions are flooded.
	Strategy Strategy

	// Background, when non-nil, replaces border estimation.
	Background *pixel.Color

	// Regions keeps one Region per flooded component in Result.Regions.
	Regions bool

	// Labels keeps the visited mask, with region labels, in Result.Mask.
	Labels bool

	err error
}

// DefaultOptions returns the reference configuration:
//   - NoiseFraction 0.001
//   - Threshold 100
//   - BreadthFirst traversal
//   - background estimated from the border
func DefaultOptions() Options {
	return Options{
		NoiseFraction: DefaultNoiseFraction,
		Threshold:     DefaultThreshold,
		Strategy:      BreadthFirst,
	}
}

// NewOptions applies opts over DefaultOptions and validates the result.
func NewOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	return o, nil
}

// WithNoiseFraction sets the minimum counted region area as a fraction of
// the image area.
func WithNoiseFraction(f float64) Option {
	return func(o *Options) {
		if !(f >= 0 && f <= 1) {
			o.err = fmt.Errorf("%w: noise fraction %v outside [0,1]", ErrOptionViolation, f)
			return
		}
		o.NoiseFraction = f
	}
}

// WithThreshold sets the per-channel background closeness bound.
func WithThreshold(t int) Option {
	return func(o *Options) {
		if t < 0 || t > MaxThreshold {
			o.err = fmt.Errorf("%w: threshold %d outside [0,%d]", ErrOptionViolation, t, MaxThreshold)
			return
		}
		o.Threshold = t
	}
}

// WithStrategy selects the region traversal.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if !s.valid() {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithBackground fixes the background color instead of estimating it.
func WithBackground(c pixel.Color) Option {
	return func(o *Options) {
		o.Background = &c
	}
}

// WithRegions records the seed and size of every flooded region.
func WithRegions(keep bool) Option {
	return func(o *Options) {
		o.Regions = keep
	}
}

// WithLabels returns the labelled visited mask with the result.
func WithLabels(keep bool) Option {
	return func(o *Options) {
		o.Labels = keep
	}
}
