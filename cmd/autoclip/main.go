//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/pflag"

	"github.com/ezrec/autoclip"
	_ "github.com/ezrec/autoclip/argb"
	_ "github.com/ezrec/autoclip/raster"
	_ "github.com/ezrec/autoclip/webp"
)

var param struct {
	verbose int
	config  string
	workers int
}

func init() {
	pflag.CountVarP(&param.verbose, "verbose", "v", "Verbosity (repeat for more)")
	pflag.StringVarP(&param.config, "config", "c", "", "JSON file of clip defaults")
	pflag.IntVarP(&param.workers, "workers", "w", 0, "Default concurrent workers (0 for one per CPU)")
	pflag.CommandLine.SetInterspersed(false)

	pflag.Usage = Usage
}

func Usage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "  autoclip [options] INFILE [fmt-options] [command [cmd-options]]... [OUTFILE [fmt-options]]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "An argument of the form @FILE is replaced by the words of FILE.")
	fmt.Fprintln(os.Stderr)
	pflag.PrintDefaults()
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr)

	keys := []string{}
	for key := range commandMap {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintf(os.Stderr, "  %-8s %s\n", key, commandMap[key].Description)
	}

	for _, key := range keys {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintf(os.Stderr, "Options for '%s':\n", key)
		fmt.Fprintln(os.Stderr)
		commandMap[key].NewCommand(&Config{}).PrintDefaults()
	}

	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "Formats: %v\n", autoclip.FormatterSuffixes())
	autoclip.FormatterUsage()
}

// evaluate runs the pipeline, returning the final session
func evaluate(cfg *Config, args []string) (session *autoclip.Session, err error) {
	if len(args) == 0 {
		err = fmt.Errorf("no input file")
		return
	}

	input, err := autoclip.NewFormat(args[0], args[1:])
	if err != nil {
		return
	}

	TraceVerbosef(VerbosityNotice, "Reading %v", input.Filename)

	session, err = input.Session()
	if err != nil {
		return
	}

	current := session.Current()
	TraceVerbosef(VerbosityInfo, "  %vx%v pixels, alpha channel %v", current.Width, current.Height, session.HasAlphaChannel())

	args = input.Args()

	for len(args) > 0 {
		entry, found := commandMap[args[0]]
		if !found {
			break
		}

		name := args[0]
		cmd := entry.NewCommand(cfg)

		err = cmd.Parse(args[1:])
		if err != nil {
			err = fmt.Errorf("%s: %w", name, err)
			return
		}

		TraceVerbosef(VerbosityNotice, "%v", name)

		session, err = cmd.Filter(session)
		if err != nil {
			return
		}

		args = cmd.Args()
	}

	if len(args) > 0 {
		var output *autoclip.Format

		output, err = autoclip.NewFormat(args[0], args[1:])
		if err != nil {
			return
		}

		args = output.Args()
		if len(args) > 0 {
			err = fmt.Errorf("%s: unexpected arguments %v", output.Filename, args)
			return
		}

		TraceVerbosef(VerbosityNotice, "Writing %v", output.Filename)

		err = output.SetBitmap(session.Current())
		if err != nil {
			return
		}
	}

	return
}

func main() {
	args, err := ExpandArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "autoclip: %v\n", err)
		os.Exit(1)
	}

	err = pflag.CommandLine.Parse(args)
	if err != nil {
		if err != pflag.ErrHelp {
			fmt.Fprintf(os.Stderr, "autoclip: %v\n", err)
		}
		pflag.Usage()
		os.Exit(1)
	}

	cfg := DefaultConfig()
	if len(param.config) > 0 {
		cfg, err = LoadConfig(param.config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "autoclip: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(pflag.CommandLine)

	SetVerbosity(cfg.Verbosity)
	if verbosity >= VerbosityInfo {
		cfg.Progress = newProgressBar(os.Stderr)
	}

	if pflag.NArg() == 0 {
		pflag.Usage()
		os.Exit(1)
	}

	_, err = evaluate(&cfg, pflag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "autoclip: %v\n", err)
		os.Exit(1)
	}
}
