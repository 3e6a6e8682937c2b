//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"fmt"
	"os"
)

type Verbosity int

const (
	VerbosityWarning = Verbosity(iota)
	VerbosityNotice
	VerbosityInfo
	VerbosityDebug
)

var verbosity Verbosity

// SetVerbosity selects which traces reach stderr
func SetVerbosity(level int) {
	verbosity = Verbosity(level)
}

// TraceVerbosef prints to stderr when the verbosity is at least 'level'
func TraceVerbosef(level Verbosity, format string, args ...interface{}) {
	if verbosity >= level {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
