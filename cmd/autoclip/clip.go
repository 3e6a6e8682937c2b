//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/ezrec/autoclip"
)

type ClipCommand struct {
	*pflag.FlagSet

	Radius       float64
	MinNeighbors int
	Background   string
	Passes       int
	Workers      int

	progress autoclip.Progressor
}

func NewClipCommand(cfg *Config) (cmd *ClipCommand) {
	flagSet := pflag.NewFlagSet("clip", pflag.ContinueOnError)
	flagSet.SetInterspersed(false)

	cmd = &ClipCommand{
		FlagSet:  flagSet,
		progress: cfg.Progress,
	}

	cmd.Float64VarP(&cmd.Radius, "radius", "r", cfg.Radius, "Neighbourhood radius, in pixels")
	cmd.IntVarP(&cmd.MinNeighbors, "min-neighbors", "n", cfg.MinNeighbors, "Minimum neighbours for a pixel to be kept")
	cmd.StringVarP(&cmd.Background, "background", "b", cfg.Background, "Background color (#AARRGGBB, #RRGGBB, #ARGB or #RGB); required without an alpha channel")
	cmd.IntVarP(&cmd.Passes, "passes", "p", 1, "Number of clip passes")
	cmd.IntVarP(&cmd.Workers, "workers", "w", cfg.Workers, "Concurrent workers (0 for one per CPU)")

	return
}

func (cmd *ClipCommand) Filter(input *autoclip.Session) (output *autoclip.Session, err error) {
	if cmd.Passes < 1 {
		err = fmt.Errorf("clip: --passes must be at least 1, not %v", cmd.Passes)
		return
	}

	params, err := input.Params(cmd.Background, cmd.Radius, cmd.MinNeighbors)
	if err != nil {
		err = fmt.Errorf("clip: %w", err)
		return
	}

	params.Workers = cmd.Workers
	params.Progress = cmd.progress

	if params.UseAlphaChannel {
		TraceVerbosef(VerbosityNotice, "  Clipping by alpha channel, radius %v, %v neighbours", params.Radius, params.MinNeighbors)
	} else {
		TraceVerbosef(VerbosityNotice, "  Clipping by background %v, radius %v, %v neighbours", params.Background, params.Radius, params.MinNeighbors)
	}

	output, err = input.Clip(params)
	for pass := 1; err == nil && pass < cmd.Passes; pass++ {
		TraceVerbosef(VerbosityInfo, "  Pass %v", pass+1)
		output, err = output.ClipCurrent(params)
	}

	if err != nil {
		output = nil
		err = fmt.Errorf("clip: %w", err)
		return
	}

	return
}
