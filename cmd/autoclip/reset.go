//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"github.com/spf13/pflag"

	"github.com/ezrec/autoclip"
)

type ResetCommand struct {
	*pflag.FlagSet
}

func NewResetCommand(cfg *Config) (cmd *ResetCommand) {
	flagSet := pflag.NewFlagSet("reset", pflag.ContinueOnError)
	flagSet.SetInterspersed(false)

	cmd = &ResetCommand{
		FlagSet: flagSet,
	}

	return
}

func (cmd *ResetCommand) Filter(input *autoclip.Session) (output *autoclip.Session, err error) {
	if input.Modified() {
		TraceVerbosef(VerbosityNotice, "  Discarding changes")
	}

	output = input.Reset()

	return
}
