// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ik5/bae"
	"github.com/ik5/bae/audio"
	"github.com/ik5/bae/formats/wav"
	"github.com/ik5/bae/sample"
)

var errInOut = errors.New("-in and -out are required")

type resampleCommand struct {
	in    string
	out   string
	rate  int
	mono  bool
	depth int
}

func (cmd *resampleCommand) Name() string { return "resample" }

func (cmd *resampleCommand) Help() string {
	return "Convert any supported audio file to a WAV file at a new rate"
}

func (cmd *resampleCommand) Register(fs *flag.FlagSet) {
	fs.StringVar(&cmd.in, "in", "", "input file (wav, mp3, ogg, aiff)")
	fs.StringVar(&cmd.out, "out", "", "output WAV path")
	fs.IntVar(&cmd.rate, "rate", 8000, "output sample rate in Hz")
	fs.BoolVar(&cmd.mono, "mono", false, "downmix to one channel")
	fs.IntVar(&cmd.depth, "depth", 16, "output bits per sample (8, 16 or 24)")
}

func (cmd *resampleCommand) Run(cfg *config) error {
	if cmd.in == "" || cmd.out == "" {
		return errInOut
	}
	if cmd.rate <= 0 {
		return fmt.Errorf("%w: %d", wav.ErrInvalidSampleRate, cmd.rate)
	}

	var (
		frames int
		err    error
	)
	if cmd.mono {
		frames, err = cmd.convertMono()
	} else {
		frames, err = convert[stereo](cmd.in, cmd.out, cmd.rate, sample.BitDepth(cmd.depth))
	}
	if err != nil {
		return err
	}

	cfg.logger.WithFields(logrus.Fields{
		"in":     cmd.in,
		"out":    cmd.out,
		"rate":   cmd.rate,
		"frames": frames,
	}).Info("resampled")

	return nil
}

func convert[S sample.Frame[S]](in, out string, rate int, depth sample.BitDepth) (int, error) {
	track, from, err := bae.LoadTrack[S](in)
	if err != nil {
		return 0, err
	}

	return writeResampled(track, from, out, rate, depth)
}

// convertMono averages the channels while streaming the decoder, before
// any frame is built.
func (cmd *resampleCommand) convertMono() (int, error) {
	f, err := os.Open(cmd.in)
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}
	defer f.Close()

	format := bae.FormatOf(cmd.in)
	dec, ok := bae.DefaultRegistry().Get(format)
	if !ok {
		return 0, fmt.Errorf("%w: %q", bae.ErrUnknownFormat, format)
	}

	src, err := dec.Decode(f)
	if err != nil {
		return 0, fmt.Errorf("decoding %s: %w", cmd.in, err)
	}

	mixer := audio.NewMonoMixer(src)
	defer mixer.Close()

	track, err := audio.ReadTrack[sample.Mono](mixer)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", cmd.in, err)
	}

	return writeResampled(track, mixer.SampleRate(), cmd.out, cmd.rate, sample.BitDepth(cmd.depth))
}

func writeResampled[S sample.Frame[S]](track sample.Track[S], from int, out string, rate int, depth sample.BitDepth) (int, error) {
	resampled := bae.Resample(track, float64(from), float64(rate))

	f, err := os.Create(out)
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}
	defer f.Close()

	if err := wav.WriteTrack(f, resampled, rate, depth); err != nil {
		return 0, err
	}

	return len(resampled), nil
}
