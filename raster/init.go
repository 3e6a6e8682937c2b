//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

// Package raster handles input and output of the common raster image formats
package raster

import (
	"github.com/ezrec/autoclip"
)

func init() {
	newFormatter := func(suffix string) (format autoclip.Formatter) { return NewFormatter(suffix) }

	for _, suffix := range []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tga"} {
		autoclip.RegisterFormatter(suffix, newFormatter)
	}
}
