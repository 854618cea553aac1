// This file is part of go-optspec.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// optspec - compiles option specifications and parses the given tokens with
// them, printing the resulting values.
//
//	optspec -s 'verbose|v+' -s 'host=@s' -- -vv --host a b -- file
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/DavidGamba/go-optspec"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type options struct {
	specs    []string
	specFile string
	output   string
	debug    bool
}

func main() {
	os.Exit(program(os.Args[1:], os.Stdout, os.Stderr))
}

func program(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %s\n", err)
		return 1
	}
	return 0
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "optspec [flags] [--] tokens...",
		Short: "Parse tokens with option specifications",
		Long: `Parse tokens with option specifications and print the resulting values.

Specifications follow the grammar name(|alias)*[!|+|(=|:)[@](s|i|f)], for example:
  help|h  debug!  verbose|v+  prefix:s  size=i  host=@s`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(o, args, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	// Everything after the first token is for the specifications.
	cmd.Flags().SetInterspersed(false)
	addFlags(cmd.Flags(), o)
	return cmd
}

func addFlags(fs *pflag.FlagSet, o *options) {
	fs.StringArrayVarP(&o.specs, "spec", "s", nil, "option specification, can be repeated")
	fs.StringVarP(&o.specFile, "spec-file", "f", "", "YAML or JSON file with a 'specs' list")
	fs.StringVarP(&o.output, "output", "o", formatText, "output format: text, json or yaml")
	fs.BoolVar(&o.debug, "debug", false, "enable debug logging")
}

func newLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).Level(level).With().Timestamp().Logger()
}

func run(o *options, args []string, stdout, stderr io.Writer) error {
	logger := newLogger(stderr, o.debug)
	if o.debug {
		optspec.Logger.SetOutput(logger.With().Str("component", "optspec").Logger())
		optspec.Logger.SetFlags(log.Lshortfile)
		optspec.Logger.SetPrefix("")
	}

	specs := append([]string{}, o.specs...)
	if o.specFile != "" {
		fileSpecs, err := readSpecFile(o.specFile)
		if err != nil {
			return err
		}
		logger.Debug().Str("file", o.specFile).Strs("specs", fileSpecs).Msg("read spec file")
		specs = append(specs, fileSpecs...)
	}
	if len(specs) == 0 {
		logger.Warn().Msg("no option specifications given, every option will be unknown")
	}

	opt, err := optspec.New(specs...)
	if err != nil {
		return err
	}
	logger.Debug().Strs("specs", specs).Msg("compiled")

	remaining, err := opt.Parse(args)
	if err != nil {
		return err
	}
	logger.Debug().Strs("remaining", remaining).Msg("parsed")

	return render(stdout, o.output, opt, remaining)
}
