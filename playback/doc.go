// SPDX-License-Identifier: EPL-2.0

// Package playback turns a channel into a byte stream an audio device can
// pull from.
//
// With github.com/ebitengine/oto/v3:
//
//	stream := playback.NewStream(ch)
//	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
//		SampleRate:   stream.SampleRate(),
//		ChannelCount: stream.Channels(),
//		Format:       oto.FormatFloat32LE,
//	})
//	<-ready
//	player := ctx.NewPlayer(stream)
//	player.Play()
//
//	stream.Do(func(ch *channel.Channel[sample.Stereo]) {
//		ch.SetGain(0.5)
//	})
package playback
