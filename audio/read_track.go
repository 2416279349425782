// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/bae/sample"
)

// ReadTrack drains src into a track of S frames. Each source frame is
// converted with FromChannels, so mono files become centred stereo and
// multichannel files keep their first two channels when S is Stereo.
//
// The source is not closed.
func ReadTrack[S sample.Frame[S]](src Source) (sample.Track[S], error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}

	size := src.BufSize()
	if size < channels {
		size = 4096
	}
	size -= size % channels

	var (
		zero    S
		track   sample.Track[S]
		buf     = make([]float64, size)
		frame   = make([]float64, channels)
		pending int
	)

	for {
		n, err := src.ReadSamples(buf[pending:])
		n += pending

		whole := n - n%channels
		for i := 0; i < whole; i += channels {
			copy(frame, buf[i:i+channels])
			track = append(track, zero.FromChannels(frame))
		}

		pending = copy(buf, buf[whole:n])

		if errors.Is(err, io.EOF) {
			if pending != 0 {
				return nil, fmt.Errorf("%w: %d trailing samples", ErrPartialFrame, pending)
			}

			return track, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}
}
