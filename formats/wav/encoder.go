// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/bae/sample"
)

// frames converted per encoder write
const writeChunk = 4096

// WriteTrack encodes track as integer PCM at the given rate and depth. The
// number of channels is that of S. ws must be seekable so the RIFF sizes
// can be patched once the data is written.
func WriteTrack[S sample.Frame[S]](ws io.WriteSeeker, track sample.Track[S], rate int, depth sample.BitDepth) error {
	if !depth.Valid() {
		return fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, depth)
	}
	if rate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, rate)
	}

	var zero S
	channels := zero.Channels()

	enc := wav.NewEncoder(ws, rate, int(depth), channels, FormatPCM)

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: rate},
		Data:           make([]int, 0, min(len(track), writeChunk)*channels),
		SourceBitDepth: int(depth),
	}

	for start := 0; start < len(track); start += writeChunk {
		buf.Data = buf.Data[:0]

		for _, f := range track[start:min(start+writeChunk, len(track))] {
			for c := range channels {
				v := sample.ToPCM(f.Channel(c), depth)
				if depth == sample.BitDepth8 {
					v += 128
				}
				buf.Data = append(buf.Data, v)
			}
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("writing wav data: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing wav file: %w", err)
	}

	return nil
}
