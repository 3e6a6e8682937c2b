//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"github.com/ezrec/autoclip"
)

func init() {
	newEmptyFormatter := func(suffix string) autoclip.Formatter { return NewEmptyFormatter() }

	autoclip.RegisterFormatter("empty", newEmptyFormatter)
}
