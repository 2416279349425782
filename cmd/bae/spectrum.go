// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/ik5/bae"
	"github.com/ik5/bae/analysis"
	"github.com/ik5/bae/sample"
)

var errNoInput = errors.New("-in is required")

type spectrumCommand struct {
	in    string
	start float64
	size  int
}

func (cmd *spectrumCommand) Name() string { return "spectrum" }

func (cmd *spectrumCommand) Help() string {
	return "Print the dominant frequency of an audio file"
}

func (cmd *spectrumCommand) Register(fs *flag.FlagSet) {
	fs.StringVar(&cmd.in, "in", "", "input file")
	fs.Float64Var(&cmd.start, "start", 0, "offset into the file in seconds")
	fs.IntVar(&cmd.size, "size", 8192, "analysis window in samples, a power of two")
}

func (cmd *spectrumCommand) Run(cfg *config) error {
	if cmd.in == "" {
		return errNoInput
	}

	track, rate, err := bae.LoadTrack[sample.Mono](cmd.in)
	if err != nil {
		return err
	}

	a, err := analysis.NewAnalyzer(cmd.size)
	if err != nil {
		return err
	}

	signal := track.Mono()
	offset := min(max(int(cmd.start*float64(rate)), 0), len(signal))

	freq, err := a.DominantFrequency(signal[offset:], float64(rate))
	if err != nil {
		return err
	}

	fmt.Fprintf(cfg.out, "%.1f Hz\n", freq)

	return nil
}
