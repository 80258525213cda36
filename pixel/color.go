// Package pixel holds the decoded raster representation the silhouette
// counter works on: a packed ARGB color and an immutable grid of them.
package pixel

import (
	"fmt"
	"image/color"
)

// Color is an 8-bit per channel, non-premultiplied color packed as
// 0xAARRGGBB: alpha in the top byte, then red, green and blue.
type Color uint32

// ARGB packs the four channels into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (c Color) A() uint8 { return uint8(c >> 24) }
func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// NRGBA returns the color as a standard library non-premultiplied value.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// RGBA implements color.Color.
func (c Color) RGBA() (uint32, uint32, uint32, uint32) {
	return c.NRGBA().RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R(), c.G(), c.B(), c.A())
}

// Model converts any color.Color to a Color.
var Model = color.ModelFunc(convert)

func convert(c color.Color) color.Color {
	switch pc := c.(type) {
	case Color:
		return c
	case color.NRGBA:
		return ARGB(pc.A, pc.R, pc.G, pc.B)
	}

	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ARGB(n.A, n.R, n.G, n.B)
}

// ParseHex reads a #RGB, #RGBA, #RRGGBB or #RRGGBBAA string. Forms without
// alpha are fully opaque.
func ParseHex(s string) (Color, error) {
	var r, g, b, a uint8
	a = 0xFF

	var n, want int
	var err error
	switch len(s) {
	case 4:
		want = 3
		n, err = fmt.Sscanf(s, "#%1x%1x%1x", &r, &g, &b)
		r, g, b = r|r<<4, g|g<<4, b|b<<4
	case 5:
		want = 4
		n, err = fmt.Sscanf(s, "#%1x%1x%1x%1x", &r, &g, &b, &a)
		r, g, b, a = r|r<<4, g|g<<4, b|b<<4, a|a<<4
	case 7:
		want = 3
		n, err = fmt.Sscanf(s, "#%2x%2x%2x", &r, &g, &b)
	case 9:
		want = 4
		n, err = fmt.Sscanf(s, "#%2x%2x%2x%2x", &r, &g, &b, &a)
	default:
		return 0, fmt.Errorf("invalid color %q, should be #RGB, #RGBA, #RRGGBB or #RRGGBBAA", s)
	}

	if err != nil {
		return 0, fmt.Errorf("could not read color %q: %w", s, err)
	} else if n < want {
		return 0, fmt.Errorf("insufficient color fields in %q: %d", s, n)
	}
	return ARGB(a, r, g, b), nil
}
