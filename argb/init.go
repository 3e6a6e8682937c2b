//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

// Package argb handles input and output of zstd compressed ARGB bitmaps,
// which keep the exact pixel values and the alpha channel flag of a session.
package argb

import (
	"github.com/ezrec/autoclip"
)

func init() {
	newFormatter := func(suffix string) (format autoclip.Formatter) { return NewFormatter(suffix) }

	autoclip.RegisterFormatter(".argb", newFormatter)
}
