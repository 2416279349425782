// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/bae/audio"
	"github.com/ik5/bae/sample"
)

// aiffReader is the part of aiff.Decoder the source needs.
type aiffReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type source struct {
	dec        aiffReader
	sampleRate int
	channels   int
	depth      sample.BitDepth
	intBuf     *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.intBuf.Data) }

func (s *source) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if cap(s.intBuf.Data) < len(dst) {
		s.intBuf.Data = make([]int, len(dst))
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil && err != io.EOF {
			return 0, fmt.Errorf("reading aiff data: %w", err)
		}

		return 0, io.EOF
	}

	// AIFF samples are signed at every depth
	for i, v := range s.intBuf.Data[:n] {
		dst[i] = sample.FromPCM(v, s.depth)
	}

	if err != nil && err != io.EOF {
		return n, fmt.Errorf("reading aiff data: %w", err)
	}

	return n, nil
}

// Decoder reads big endian PCM AIFF files at 8, 16 or 24 bits.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	return decode(r)
}

func decode(r io.Reader) (*source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio needs to seek between chunks
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	depth := sample.BitDepth(dec.BitDepth)
	if !depth.Valid() {
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels <= 0 || format.SampleRate <= 0 {
		return nil, ErrInvalidLayout
	}

	return &source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		depth:      depth,
		intBuf: &goaudio.IntBuffer{
			Format: format,
			Data:   make([]int, 4096-4096%format.NumChannels),
		},
	}, nil
}

// ReadTrack decodes a whole AIFF stream into frames of type S and returns
// its sample rate.
func ReadTrack[S sample.Frame[S]](r io.Reader) (sample.Track[S], int, error) {
	src, err := decode(r)
	if err != nil {
		return nil, 0, err
	}

	track, err := audio.ReadTrack[S](src)
	if err != nil {
		return nil, 0, fmt.Errorf("decoding aiff: %w", err)
	}

	return track, src.sampleRate, nil
}
