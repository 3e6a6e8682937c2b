//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

// Package webp handles input and output of lossless WebP images
package webp

import (
	"github.com/ezrec/autoclip"
)

func init() {
	newFormatter := func(suffix string) (format autoclip.Formatter) { return NewFormatter(suffix) }

	autoclip.RegisterFormatter(".webp", newFormatter)
}
