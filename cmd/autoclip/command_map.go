//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"github.com/ezrec/autoclip"
)

// Command is one stage of the pipeline
type Command interface {
	Parse(args []string) error
	Args() []string
	PrintDefaults()
	Filter(input *autoclip.Session) (output *autoclip.Session, err error)
}

type commandEntry struct {
	NewCommand  func(cfg *Config) (cmd Command)
	Description string
}

var commandMap = map[string]commandEntry{
	"info": {
		NewCommand:  func(cfg *Config) Command { return NewInfoCommand(cfg) },
		Description: "Show the size, alpha channel and pixel counts of the image",
	},
	"clip": {
		NewCommand:  func(cfg *Config) Command { return NewClipCommand(cfg) },
		Description: "Replace isolated pixels with the background",
	},
	"reset": {
		NewCommand:  func(cfg *Config) Command { return NewResetCommand(cfg) },
		Description: "Restore the image as it was loaded",
	},
}
