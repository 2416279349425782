// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/bae/sample"
)

// WriteTrack encodes track as PCM AIFF at the given rate and depth.
func WriteTrack[S sample.Frame[S]](ws io.WriteSeeker, track sample.Track[S], rate int, depth sample.BitDepth) error {
	if !depth.Valid() {
		return fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, depth)
	}
	if rate <= 0 {
		return fmt.Errorf("%w: rate %d", ErrInvalidLayout, rate)
	}

	var zero S
	channels := zero.Channels()

	data := make([]int, 0, len(track)*channels)
	for _, f := range track {
		for c := range channels {
			data = append(data, sample.ToPCM(f.Channel(c), depth))
		}
	}

	enc := aiff.NewEncoder(ws, rate, int(depth), channels)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: int(depth),
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing aiff data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing aiff file: %w", err)
	}

	return nil
}
