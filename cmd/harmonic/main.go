// SPDX-License-Identifier: MIT

// Command harmonic prints digit matrices, analyzes transition patterns and
// runs transform pipelines from the command line.
//
// Usage:
//
//	harmonic [-config file.yaml] <command> [flags] [args]
//
// Commands:
//
//	digits     [-concurrent] [-show]          summary table of the ten digit matrices
//	analyze    <text>                         classify a transition list such as "0 → 1 | 3 → 8"
//	transform  -pipeline double,square -digit N
//	multiply   -digit A -with B
//	config                                    print the effective configuration
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/katalvlaran/harmonic/config"
)

// errUsage marks command-line mistakes; usage has already been printed.
var errUsage = errors.New("usage error")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "harmonic: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}

// run parses global flags, loads configuration and dispatches one command.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	global := flag.NewFlagSet("harmonic", flag.ContinueOnError)
	global.SetOutput(stderr)
	configPath := global.String("config", "", "path to a YAML configuration file")
	global.Usage = func() {
		fmt.Fprintln(stderr, "usage: harmonic [-config file.yaml] <digits|analyze|transform|multiply|config> [flags]")
		global.PrintDefaults()
	}
	if err := global.Parse(args); err != nil {
		return errUsage
	}
	if global.NArg() == 0 {
		global.Usage()
		return errUsage
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	log, err := cfg.Logger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	a, err := newApp(cfg, log, stdout, stderr)
	if err != nil {
		return err
	}

	name, rest := global.Arg(0), global.Args()[1:]
	log.Debug("command started", zap.String("command", name), zap.Strings("args", rest))
	if err = a.dispatch(ctx, name, rest); err != nil {
		if !errors.Is(err, errUsage) {
			log.Error("command failed", zap.String("command", name), zap.Error(err))
		}
		return err
	}
	log.Debug("command finished", zap.String("command", name))

	return nil
}
