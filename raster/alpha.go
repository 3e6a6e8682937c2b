//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package raster

import (
	"encoding/binary"
	"image"

	"github.com/ezrec/autoclip"
)

// Several decoders return *image.RGBA for files without alpha, so the
// alpha channel is taken from the file header instead of the decoded type.
type decoded struct {
	image.Image
	alpha bool
}

func (d *decoded) HasAlphaChannel() bool {
	return d.alpha
}

func readHeader(reader autoclip.Reader, size int) (header []byte) {
	header = make([]byte, size)
	n, _ := reader.ReadAt(header, 0)
	header = header[:n]
	return
}

// PNG colour type is at offset 25: signature (8), IHDR length and type (8),
// width (4), height (4), bit depth (1).
func pngAlpha(header []byte, img image.Image) (alpha bool) {
	if len(header) < 26 {
		alpha = autoclip.HasAlphaChannel(img)
		return
	}

	colorType := header[25]
	switch {
	case colorType&0x4 != 0:
		alpha = true
	case colorType == 3:
		alpha = autoclip.HasAlphaChannel(img)
	default:
		// Grey or truecolour; tRNS chunks decode as NRGBA
		switch img.(type) {
		case *image.NRGBA, *image.NRGBA64:
			alpha = true
		}
	}

	return
}

// BMP bits-per-pixel is at offset 28 of the file and info headers
func bmpAlpha(header []byte) (alpha bool) {
	if len(header) < 30 {
		return
	}

	alpha = binary.LittleEndian.Uint16(header[28:30]) == 32

	return
}

// TGA pixel depth is at offset 16, and the alpha bit count is in the low
// nibble of the image descriptor at offset 17.
func tgaAlpha(header []byte) (alpha bool) {
	if len(header) < 18 {
		return
	}

	alpha = header[16] == 32 || (header[17]&0x0f) != 0

	return
}
