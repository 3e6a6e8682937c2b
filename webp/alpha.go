//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package webp

import (
	"encoding/binary"
	"image"

	"github.com/ezrec/autoclip"
)

const (
	vp8xFlagAlpha  = 0x10
	vp8lSignature  = 0x2f
	vp8lAlphaShift = 28
)

// Lossless files always decode as NRGBA, so the alpha channel comes from
// the file header instead of the decoded type.
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

// webpAlpha inspects the first chunk after the 12 byte RIFF header:
// VP8X carries an alpha flag at offset 20, VP8L an alpha_is_used bit after
// its 14 bit width and height, and VP8 (lossy) has no alpha at all.
func webpAlpha(header []byte) (alpha bool) {
	if len(header) < 21 || string(header[0:4]) != "RIFF" || string(header[8:12]) != "WEBP" {
		return
	}

	switch string(header[12:16]) {
	case "VP8X":
		alpha = header[20]&vp8xFlagAlpha != 0
	case "VP8L":
		if len(header) < 25 || header[20] != vp8lSignature {
			return
		}
		bits := binary.LittleEndian.Uint32(header[21:25])
		alpha = (bits>>vp8lAlphaShift)&1 != 0
	}

	return
}
