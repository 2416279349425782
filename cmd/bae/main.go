// SPDX-License-Identifier: EPL-2.0

// Command bae renders, plays and inspects audio with the bae engine.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ik5/bae/internal/log"
)

type config struct {
	args   []string
	out    io.Writer
	logger logrus.FieldLogger
}

type command interface {
	Name() string
	Help() string
	Register(*flag.FlagSet)
	Run(cfg *config) error
}

const (
	successExitCode = 0
	errorExitCode   = 1
)

var commands = []command{
	&renderCommand{},
	&playCommand{},
	&resampleCommand{},
	&spectrumCommand{},
}

func (cfg *config) run() int {
	name, args := parseArgs(cfg.args)
	if name == "" {
		cfg.printUsage()
		return errorExitCode
	}

	for _, cmd := range commands {
		if cmd.Name() != name {
			continue
		}

		flags := flag.NewFlagSet(name, flag.ContinueOnError)
		flags.SetOutput(cfg.out)
		cmd.Register(flags)
		if err := flags.Parse(args); err != nil {
			return errorExitCode
		}

		if err := cmd.Run(cfg); err != nil {
			cfg.logger.WithField("command", name).WithError(err).Error("command failed")
			return errorExitCode
		}

		return successExitCode
	}

	fmt.Fprintf(cfg.out, "unknown command %q\n\n", name)
	cfg.printUsage()

	return errorExitCode
}

func main() {
	cfg := config{
		args:   os.Args,
		out:    os.Stdout,
		logger: log.NewCLI(os.Stderr),
	}
	os.Exit(cfg.run())
}

func parseArgs(args []string) (string, []string) {
	if len(args) < 2 {
		return "", nil
	}
	return args[1], args[2:]
}

func (cfg *config) printUsage() {
	fmt.Fprintln(cfg.out, "bae renders and plays signal graphs")
	fmt.Fprintln(cfg.out)
	fmt.Fprintln(cfg.out, "Usage: bae <command> [flags]")
	fmt.Fprintln(cfg.out)
	fmt.Fprintln(cfg.out, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(cfg.out, "\t%s\t%s\n", cmd.Name(), cmd.Help())
	}
}
