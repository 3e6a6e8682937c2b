//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package webp

import (
	"image"

	"github.com/HugoSmits86/nativewebp"
	"github.com/spf13/pflag"
	xwebp "golang.org/x/image/webp"

	"github.com/ezrec/autoclip"
)

type Format struct {
	*pflag.FlagSet
}

func NewFormatter(suffix string) (wf *Format) {
	flagSet := pflag.NewFlagSet(suffix, pflag.ContinueOnError)
	flagSet.SetInterspersed(false)

	wf = &Format{
		FlagSet: flagSet,
	}

	return
}

// Decode accepts both lossy and lossless files
func (wf *Format) Decode(reader autoclip.Reader, filesize int64) (img image.Image, err error) {
	header := readHeader(reader, 32)

	img, err = xwebp.Decode(reader)
	if err != nil {
		return
	}

	img = &decoded{Image: img, alpha: webpAlpha(header)}

	return
}

// Encode always writes lossless (VP8L) WebP, so clipped pixels stay exact
func (wf *Format) Encode(writer autoclip.Writer, bm *autoclip.Bitmap) (err error) {
	err = bm.Validate()
	if err != nil {
		return
	}

	err = nativewebp.Encode(writer, bm, nil)

	return
}
