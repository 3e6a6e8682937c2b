//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"fmt"
	"image"

	"github.com/spf13/pflag"

	"github.com/ezrec/autoclip"
)

type EmptyFormatter struct {
	*pflag.FlagSet

	Size  string
	Fill  string
	Alpha bool
}

func NewEmptyFormatter() (ef *EmptyFormatter) {
	ef = &EmptyFormatter{
		FlagSet: pflag.NewFlagSet("empty", pflag.ContinueOnError),
	}

	ef.StringVarP(&ef.Size, "size", "s", "640x480", "Empty size, in pixels (WxH)")
	ef.StringVarP(&ef.Fill, "fill", "f", "#00000000", "Fill color")
	ef.BoolVarP(&ef.Alpha, "alpha", "a", true, "Treat the canvas as having an alpha channel")
	ef.SetInterspersed(false)

	return
}

// emptyImage is a canvas that reports its alpha channel explicitly
type emptyImage struct {
	*autoclip.Bitmap
	alpha bool
}

func (ei *emptyImage) HasAlphaChannel() bool {
	return ei.alpha
}

func (ef *EmptyFormatter) Decode(file autoclip.Reader, filesize int64) (img image.Image, err error) {
	var width, height int

	_, err = fmt.Sscanf(ef.Size, "%dx%d", &width, &height)
	if err != nil {
		err = fmt.Errorf("--size %v: expected WxH", ef.Size)
		return
	}

	fill, err := autoclip.ParseColor(ef.Fill)
	if err != nil {
		return
	}

	bm, err := autoclip.NewBitmap(width, height)
	if err != nil {
		return
	}

	for n := range bm.Pix {
		bm.Pix[n] = fill
	}

	img = &emptyImage{Bitmap: bm, alpha: ef.Alpha}

	return
}

func (ef *EmptyFormatter) Encode(writer autoclip.Writer, bm *autoclip.Bitmap) (err error) {
	return
}
