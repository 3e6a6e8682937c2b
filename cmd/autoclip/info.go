//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/ezrec/autoclip"
)

type InfoCommand struct {
	*pflag.FlagSet

	Background string
	Changes    bool

	writer io.Writer
}

func NewInfoCommand(cfg *Config) (info *InfoCommand) {
	flagSet := pflag.NewFlagSet("info", pflag.ContinueOnError)

	info = &InfoCommand{
		FlagSet: flagSet,
		writer:  os.Stdout,
	}

	info.SetInterspersed(false)
	info.StringVarP(&info.Background, "background", "b", cfg.Background, "Also count pixels of this color")
	info.BoolVarP(&info.Changes, "changes", "c", true, "Count pixels changed from the original")

	return
}

// Summary of the current bitmap of a session
type Summary struct {
	Width       int
	Height      int
	Alpha       bool
	Transparent int // Pixels with zero alpha
	Background  int // Pixels equal to the background color, if given
	Changed     int // Pixels that differ from the original
}

func Summarize(session *autoclip.Session, background *autoclip.Pixel) (sum Summary) {
	current := session.Current()
	original := session.Original()

	sum.Width = int(current.Width)
	sum.Height = int(current.Height)
	sum.Alpha = session.HasAlphaChannel()

	for n, p := range current.Pix {
		if p.A() == 0 {
			sum.Transparent++
		}
		if background != nil && p == *background {
			sum.Background++
		}
		if p != original.Pix[n] {
			sum.Changed++
		}
	}

	return
}

func (info *InfoCommand) Filter(input *autoclip.Session) (output *autoclip.Session, err error) {
	var background *autoclip.Pixel

	if len(info.Background) > 0 {
		var pix autoclip.Pixel
		pix, err = autoclip.ParseColor(info.Background)
		if err != nil {
			err = fmt.Errorf("info: %w", err)
			return
		}
		background = &pix
	}

	sum := Summarize(input, background)

	fmt.Fprintf(info.writer, "Size: %vx%v, alpha channel: %v\n", sum.Width, sum.Height, sum.Alpha)
	fmt.Fprintf(info.writer, "Transparent: %v pixels\n", sum.Transparent)
	if background != nil {
		fmt.Fprintf(info.writer, "Background %v: %v pixels\n", *background, sum.Background)
	}
	if info.Changes {
		fmt.Fprintf(info.writer, "Changed: %v pixels\n", sum.Changed)
	}

	output = input

	return
}
