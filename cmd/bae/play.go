// SPDX-License-Identifier: EPL-2.0

package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/bae"
	"github.com/ik5/bae/channel"
	"github.com/ik5/bae/playback"
	"github.com/ik5/bae/sample"
	"github.com/ik5/bae/sound"
)

type playCommand struct {
	file     string
	freq     float64
	duration time.Duration
	loop     bool
}

func (cmd *playCommand) Name() string { return "play" }

func (cmd *playCommand) Help() string {
	return "Play an audio file, or the demo patch, on the default output device"
}

func (cmd *playCommand) Register(fs *flag.FlagSet) {
	fs.StringVar(&cmd.file, "file", "", "audio file to play instead of the demo patch")
	fs.Float64Var(&cmd.freq, "freq", 220, "demo base frequency in Hz")
	fs.DurationVar(&cmd.duration, "duration", 2*time.Second, "how long to play")
	fs.BoolVar(&cmd.loop, "loop", false, "loop the file")
}

func (cmd *playCommand) Run(cfg *config) error {
	const rate = sample.DefaultRate

	ch := channel.New[stereo](channel.WithLogger(cfg.logger))

	if cmd.file != "" {
		player, err := bae.NewWavPlayer[stereo](cmd.file, rate)
		if err != nil {
			return err
		}
		if cmd.loop {
			player.SetLoop(0, player.Len())
		}

		s := sound.NewSimple[stereo](sound.FromGenerator[stereo](player), 1, 1)
		s.SetLogger(cfg.logger)
		s.Register(ch)
	} else {
		patch, _, err := demoPatch(cmd.freq, rate, cmd.duration, cfg.logger)
		if err != nil {
			return err
		}
		patch.Register(ch)
	}

	stream := playback.NewStream(ch)

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   stream.SampleRate(),
		ChannelCount: stream.Channels(),
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return fmt.Errorf("opening audio device: %w", err)
	}
	<-ready

	player := ctx.NewPlayer(stream)
	defer player.Close()

	player.Play()
	cfg.logger.WithField("channel", ch.Name()).Info("playing")

	time.Sleep(cmd.duration)

	return nil
}
