//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package autoclip

import (
	"errors"
	"image"
	"image/color"
	"math"
)

var (
	ErrInvalidSize = errors.New("bitmap: invalid size")
)

// Bitmap is a flat, row-major buffer of ARGB pixels.
//
// The pixel at (x, y) is Pix[y*Width+x].
type Bitmap struct {
	Width  int32
	Height int32
	Pix    []Pixel
}

// NewBitmap allocates a zeroed (fully transparent) bitmap
func NewBitmap(width, height int) (bm *Bitmap, err error) {
	if width <= 0 || height <= 0 || width > math.MaxInt32 || height > math.MaxInt32 {
		err = ErrInvalidSize
		return
	}

	if uint64(width)*uint64(height) > uint64(math.MaxInt32) {
		err = ErrInvalidSize
		return
	}

	bm = &Bitmap{
		Width:  int32(width),
		Height: int32(height),
		Pix:    make([]Pixel, width*height),
	}

	return
}

// FromImage repacks an already decoded image into a Bitmap.
//
// Channels are always extracted through the image's colour accessors, so the
// decoder's storage order never leaks into the bitmap.
func FromImage(img image.Image) (bm *Bitmap, err error) {
	bounds := img.Bounds()
	size := bounds.Size()

	bm, err = NewBitmap(size.X, size.Y)
	if err != nil {
		return
	}

	switch src := img.(type) {
	case *Bitmap:
		copy(bm.Pix, src.Pix)
	case *image.NRGBA:
		for y := 0; y < size.Y; y++ {
			n := y * size.X
			row := src.Pix[src.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			for x := 0; x < size.X; x++ {
				off := x * 4
				bm.Pix[n+x] = PackChannels(row[off+3], row[off+0], row[off+1], row[off+2])
			}
		}
	default:
		for y := 0; y < size.Y; y++ {
			n := y * size.X
			for x := 0; x < size.X; x++ {
				bm.Pix[n+x] = PixelModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(Pixel)
			}
		}
	}

	return
}

// Validate checks the dimensions against the pixel buffer
func (bm *Bitmap) Validate() (err error) {
	if bm == nil || bm.Width <= 0 || bm.Height <= 0 {
		err = ErrInvalidSize
		return
	}

	if int64(len(bm.Pix)) != int64(bm.Width)*int64(bm.Height) {
		err = ErrInvalidSize
		return
	}

	return
}

// Clone returns a deep copy
func (bm *Bitmap) Clone() (out *Bitmap) {
	out = &Bitmap{
		Width:  bm.Width,
		Height: bm.Height,
		Pix:    make([]Pixel, len(bm.Pix)),
	}
	copy(out.Pix, bm.Pix)

	return
}

// Offset is the linear index of (x, y)
func (bm *Bitmap) Offset(x, y int) int {
	return y*int(bm.Width) + x
}

func (bm *Bitmap) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < int(bm.Width) && y < int(bm.Height)
}

// PixelAt returns the pixel at (x, y), or Transparent outside the bitmap
func (bm *Bitmap) PixelAt(x, y int) Pixel {
	if !bm.inside(x, y) {
		return Transparent
	}
	return bm.Pix[bm.Offset(x, y)]
}

// SetPixel stores a pixel; writes outside the bitmap are dropped
func (bm *Bitmap) SetPixel(x, y int, p Pixel) {
	if !bm.inside(x, y) {
		return
	}
	bm.Pix[bm.Offset(x, y)] = p
}

// ColorModel implements image.Image
func (bm *Bitmap) ColorModel() color.Model {
	return PixelModel
}

// Bounds implements image.Image
func (bm *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(bm.Width), int(bm.Height))
}

// At implements image.Image
func (bm *Bitmap) At(x, y int) color.Color {
	return bm.PixelAt(x, y)
}

// Set implements draw.Image
func (bm *Bitmap) Set(x, y int, c color.Color) {
	bm.SetPixel(x, y, PixelModel.Convert(c).(Pixel))
}

// Opaque reports whether every pixel has full alpha
func (bm *Bitmap) Opaque() bool {
	for _, p := range bm.Pix {
		if p.A() != 0xff {
			return false
		}
	}
	return true
}

// HasAlphaChannel reports whether a decoded image's storage format carries
// an alpha channel. This is a property of the format, not of the content: an
// NRGBA image with every pixel opaque still has an alpha channel.
func HasAlphaChannel(img image.Image) bool {
	if ac, ok := img.(interface{ HasAlphaChannel() bool }); ok {
		return ac.HasAlphaChannel()
	}

	switch src := img.(type) {
	case *Bitmap, *image.NRGBA, *image.RGBA, *image.NRGBA64, *image.RGBA64,
		*image.Alpha, *image.Alpha16, *image.NYCbCrA:
		return true
	case *image.Gray, *image.Gray16, *image.YCbCr, *image.CMYK, *image.Uniform:
		return false
	case *image.Paletted:
		for _, c := range src.Palette {
			_, _, _, a := c.RGBA()
			if a != 0xffff {
				return true
			}
		}
		return false
	}

	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model, color.YCbCrModel, color.CMYKModel:
		return false
	}

	return true
}
