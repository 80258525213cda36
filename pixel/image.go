package pixel

import (
	"errors"
	"image"
	"image/color"
)

var (
	// ErrEmpty indicates a grid without rows or columns.
	ErrEmpty = errors.New("pixel: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("pixel: all rows must have the same length")
)

// Grid is a read-only width x height array of colors with its origin at
// the top-left corner. Pixel is only called with 0 <= x < Width() and
// 0 <= y < Height().
type Grid interface {
	Width() int
	Height() int
	Pixel(x, y int) Color
}

// Image is an in-memory Grid that also satisfies image.Image.
type Image struct {
	// Pix holds the image's pixels. The pixel at (x, y) is
	// Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)].
	Pix []Color
	// Stride is the Pix stride (in pixels) between vertically adjacent pixels.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
}

var (
	_ Grid        = &Image{}
	_ image.Image = &Image{}
)

func NewImage(r image.Rectangle) *Image {
	return &Image{
		Pix:    make([]Color, r.Dx()*r.Dy()),
		Stride: r.Dx(),
		Rect:   r,
	}
}

// FromRows copies a row-major [y][x] slice into an Image anchored at (0, 0).
func FromRows(rows [][]Color) (*Image, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	img := NewImage(image.Rect(0, 0, w, len(rows)))
	for y, row := range rows {
		copy(img.Pix[y*img.Stride:], row)
	}
	return img, nil
}

// FromImage extracts the raw channels of every pixel of src. The result is
// anchored at (0, 0) whatever src.Bounds().Min is.
func FromImage(src image.Image) *Image {
	if img, ok := src.(*Image); ok {
		return img
	}

	b := src.Bounds()
	img := NewImage(image.Rect(0, 0, b.Dx(), b.Dy()))

	if nrgba, ok := src.(*image.NRGBA); ok {
		for y := 0; y < b.Dy(); y++ {
			row := nrgba.Pix[nrgba.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := 0; x < b.Dx(); x++ {
				p := row[x*4 : x*4+4 : x*4+4]
				img.Pix[y*img.Stride+x] = ARGB(p[3], p[0], p[1], p[2])
			}
		}
		return img
	}

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			img.Pix[y*img.Stride+x] = Model.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(Color)
		}
	}
	return img
}

func (p *Image) Width() int  { return p.Rect.Dx() }
func (p *Image) Height() int { return p.Rect.Dy() }

// Pixel returns the color at (x, y) relative to the top-left corner.
func (p *Image) Pixel(x, y int) Color {
	return p.Pix[y*p.Stride+x]
}

// SetPixel stores c at (x, y) relative to the top-left corner.
func (p *Image) SetPixel(x, y int, c Color) {
	p.Pix[y*p.Stride+x] = c
}

func (p *Image) ColorModel() color.Model { return Model }
func (p *Image) Bounds() image.Rectangle { return p.Rect }

func (p *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Color(0)
	}
	return p.Pixel(x-p.Rect.Min.X, y-p.Rect.Min.Y)
}
