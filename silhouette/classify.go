package silhouette

import "silcount/pixel"

// Classifier separates foreground from background pixels.
type Classifier struct {
	Background pixel.Color
	Threshold  int
}

// IsForeground reports whether c differs from the background by at least
// Threshold on any one channel.
func (cl Classifier) IsForeground(c pixel.Color) bool {
	return IsForeground(c, cl.Background, cl.Threshold)
}

// IsForeground reports whether c is foreground against background: c is
// background only when all four channels are strictly closer than threshold.
func IsForeground(c, background pixel.Color, threshold int) bool {
	return !(near(c.A(), background.A(), threshold) &&
		near(c.R(), background.R(), threshold) &&
		near(c.G(), background.G(), threshold) &&
		near(c.B(), background.B(), threshold))
}

func near(a, b uint8, threshold int) bool {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d < threshold
}
