// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ik5/bae/channel"
	"github.com/ik5/bae/formats/wav"
	"github.com/ik5/bae/sample"
)

var errNoOutput = errors.New("-out is required")

type renderCommand struct {
	out      string
	freq     float64
	duration time.Duration
	rate     int
	depth    int
}

func (cmd *renderCommand) Name() string { return "render" }

func (cmd *renderCommand) Help() string { return "Render the demo patch to a WAV file" }

func (cmd *renderCommand) Register(fs *flag.FlagSet) {
	fs.StringVar(&cmd.out, "out", "", "output WAV path")
	fs.Float64Var(&cmd.freq, "freq", 220, "base frequency in Hz")
	fs.DurationVar(&cmd.duration, "duration", 2*time.Second, "length of the note")
	fs.IntVar(&cmd.rate, "rate", sample.DefaultRate, "sample rate in Hz")
	fs.IntVar(&cmd.depth, "depth", 16, "bits per sample (8, 16 or 24)")
}

func (cmd *renderCommand) Run(cfg *config) error {
	if cmd.out == "" {
		return errNoOutput
	}
	if !sample.BitDepth(cmd.depth).Valid() {
		return fmt.Errorf("%w: %d bits", wav.ErrUnsupportedBitDepth, cmd.depth)
	}

	track, err := renderDemo(cmd.freq, float64(cmd.rate), cmd.duration, cfg.logger)
	if err != nil {
		return err
	}

	f, err := os.Create(cmd.out)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer f.Close()

	if err := wav.WriteTrack(f, track, cmd.rate, sample.BitDepth(cmd.depth)); err != nil {
		return err
	}

	cfg.logger.WithFields(logrus.Fields{
		"path":   cmd.out,
		"frames": len(track),
	}).Info("rendered")

	return nil
}

// renderDemo plays the demo note for length, then lets the release and
// echo tails ring out for as long again.
func renderDemo(freq, rate float64, length time.Duration, logger logrus.FieldLogger) (sample.Track[stereo], error) {
	patch, shape, err := demoPatch(freq, rate, length, logger)
	if err != nil {
		return nil, err
	}

	ch := channel.New[stereo](channel.WithSampleRate(rate), channel.WithLogger(logger))
	patch.Register(ch)

	track := append(sample.Track[stereo](nil), ch.ProcessFor(length)...)
	if err := release(patch, shape); err != nil {
		return nil, err
	}
	track = append(track, ch.ProcessFor(length)...)

	return track, nil
}
