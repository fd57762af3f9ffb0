// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tint converts colors between color spaces, adapts them to
// other illuminants, and measures the differences between them.
package main

import (
	"log/slog"
	"os"

	"cogentcore.org/tint/base/errors"
	"cogentcore.org/tint/base/logx"
	"cogentcore.org/tint/cie"
	"github.com/spf13/cobra"
)

// app holds the state shared by the commands of one invocation.
type app struct {
	cfg Config

	configFile            string
	illuminant            string
	debug, verbose, quiet bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.Log(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "tint",
		Short: "Convert, adapt and compare colors",
		Long: `Convert colors between color spaces, adapt them to other illuminants,
and measure the differences between them.

Settings are read from an optional TOML config file given with --config,
and flags given on the command line override the values in the file.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "TOML config file")
	pf.StringVar(&a.cfg.Format, "format", "text", "output format: text, toml or yaml")
	pf.BoolVar(&a.cfg.Swatch, "swatch", false, "print a truecolor swatch of each color")
	pf.StringVar(&a.illuminant, "illuminant", "D50", "illuminant of XYZ colors")
	pf.Float64Var(&a.cfg.CCT, "cct", 0, "correlated color temperature in kelvin of a custom illuminant, overriding --illuminant")
	pf.BoolVar(&a.debug, "debug", false, "show debug log messages")
	pf.BoolVar(&a.verbose, "verbose", false, "show info log messages")
	pf.BoolVar(&a.quiet, "quiet", false, "only show error log messages")

	root.AddCommand(
		a.convertCmd(),
		a.adaptCmd(),
		a.diffCmd(),
		a.gradientCmd(),
		a.whitePointCmd(),
		a.imageCmd(),
	)
	return root
}

// setup configures logging and builds the config from the defaults,
// the config file and the flags, in increasing order of priority.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	logx.UserLevel = logx.LevelFromFlags(a.debug, a.verbose, a.quiet)
	logx.SetDefaultLogger()

	flags := a.cfg
	a.cfg = Config{}
	if err := SetFromDefaults(&a.cfg); err != nil {
		return err
	}
	if a.configFile != "" {
		if err := OpenConfig(&a.cfg, a.configFile); err != nil {
			return err
		}
		slog.Debug("read config file", "file", a.configFile)
	}

	fs := cmd.Flags()
	if fs.Changed("format") {
		a.cfg.Format = flags.Format
	}
	if fs.Changed("swatch") {
		a.cfg.Swatch = flags.Swatch
	}
	if fs.Changed("cct") {
		a.cfg.CCT = flags.CCT
	}
	if fs.Changed("illuminant") {
		var il cie.Illuminant
		if err := il.UnmarshalText([]byte(a.illuminant)); err != nil {
			return err
		}
		a.cfg.Illuminant = il
	}
	slog.Debug("using config", "config", a.cfg)
	return nil
}
