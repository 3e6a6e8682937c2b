//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package autoclip

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"
)

// Pixel is a packed, non-premultiplied 32-bit ARGB value
type Pixel uint32

// Transparent is fully transparent black, the alpha-mode background
const Transparent = Pixel(0x00000000)

// ErrInvalidColorFormat is returned when a colour string can not be parsed
type ErrInvalidColorFormat string

func (e ErrInvalidColorFormat) Error() string {
	return fmt.Sprintf("color '%s': invalid format", string(e))
}

// PackChannels combines four 8-bit channels into a Pixel.
//
// Callers holding wider integers narrow them with a uint8 conversion, which
// keeps the low 8 bits of each channel.
func PackChannels(a, r, g, b uint8) Pixel {
	return Pixel(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Unpack splits a Pixel into its alpha, red, green and blue channels
func (p Pixel) Unpack() (a, r, g, b uint8) {
	a = uint8(p >> 24)
	r = uint8(p >> 16)
	g = uint8(p >> 8)
	b = uint8(p)
	return
}

func (p Pixel) A() uint8 { return uint8(p >> 24) }
func (p Pixel) R() uint8 { return uint8(p >> 16) }
func (p Pixel) G() uint8 { return uint8(p >> 8) }
func (p Pixel) B() uint8 { return uint8(p) }

// NRGBA returns the pixel as a standard library colour
func (p Pixel) NRGBA() color.NRGBA {
	a, r, g, b := p.Unpack()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// RGBA implements color.Color
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return p.NRGBA().RGBA()
}

func (p Pixel) String() string {
	return fmt.Sprintf("#%08X", uint32(p))
}

func pixelModel(c color.Color) color.Color {
	if p, ok := c.(Pixel); ok {
		return p
	}

	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return PackChannels(nc.A, nc.R, nc.G, nc.B)
}

// PixelModel converts any colour to a Pixel
var PixelModel = color.ModelFunc(pixelModel)

// ParseColor parses a hexadecimal colour specification.
//
// An optional '#', '0x' or '0X' prefix is stripped, then the remaining digits
// must be one of AARRGGBB, RRGGBB, ARGB or RGB. Forms without an alpha digit
// are fully opaque; the short forms repeat each digit.
func ParseColor(text string) (pixel Pixel, err error) {
	digits := text
	switch {
	case strings.HasPrefix(digits, "#"):
		digits = digits[1:]
	case strings.HasPrefix(digits, "0x"), strings.HasPrefix(digits, "0X"):
		digits = digits[2:]
	}

	var expanded string
	switch len(digits) {
	case 8:
		expanded = digits
	case 6:
		expanded = "FF" + digits
	case 4:
		expanded = doubleDigits(digits)
	case 3:
		expanded = "FF" + doubleDigits(digits)
	default:
		err = ErrInvalidColorFormat(text)
		return
	}

	argb, decodeErr := hex.DecodeString(expanded)
	if decodeErr != nil {
		err = ErrInvalidColorFormat(text)
		return
	}

	pixel = PackChannels(argb[0], argb[1], argb[2], argb[3])

	return
}

// "ARGB" => "AARRGGBB"
func doubleDigits(digits string) string {
	var sb strings.Builder
	for n := 0; n < len(digits); n++ {
		sb.WriteByte(digits[n])
		sb.WriteByte(digits[n])
	}
	return sb.String()
}
