// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/bae/audio"
	"github.com/ik5/bae/sample"
)

// pcmReader is the part of wav.Decoder the source needs.
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type source struct {
	dec    pcmReader
	header Header
	intBuf *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return int(s.header.SampleRate) }
func (s *source) Channels() int   { return int(s.header.Channels) }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.intBuf.Data) }

// Header returns the fmt chunk of the stream.
func (s *source) Header() Header { return s.header }

func (s *source) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if cap(s.intBuf.Data) < len(dst) {
		s.intBuf.Data = make([]int, len(dst))
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil {
		return 0, fmt.Errorf("reading wav data: %w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}

	depth := s.header.Depth()
	for i, v := range s.intBuf.Data[:n] {
		if depth == sample.BitDepth8 {
			// 8 bit PCM is unsigned on the wire
			v -= 128
		}
		dst[i] = sample.FromPCM(v, depth)
	}

	return n, nil
}

// Decoder reads integer PCM WAV files at 8, 16 or 24 bits.
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
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	if err := checkMagic(rs); err != nil {
		return nil, err
	}

	dec := wav.NewDecoder(rs)

	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}

	h := Header{
		AudioFormat:   dec.WavAudioFormat,
		Channels:      dec.NumChans,
		SampleRate:    dec.SampleRate,
		ByteRate:      dec.AvgBytesPerSec,
		BitsPerSample: dec.BitDepth,
	}
	h.BlockAlign = uint16(int(h.Channels) * h.Depth().Bytes())

	if err := h.Validate(); err != nil {
		return nil, err
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}

	return &source{
		dec:    dec,
		header: h,
		intBuf: &goaudio.IntBuffer{
			Format: dec.Format(),
			Data:   make([]int, 4096-4096%int(h.Channels)),
		},
	}, nil
}

// checkMagic verifies the RIFF/WAVE signature and rewinds rs.
func checkMagic(rs io.ReadSeeker) error {
	var magic [12]byte
	if _, err := io.ReadFull(rs, magic[:]); err != nil {
		return ErrNotWavFile
	}
	if string(magic[0:4]) != "RIFF" || string(magic[8:12]) != "WAVE" {
		return ErrNotWavFile
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewinding wav data: %w", err)
	}

	return nil
}

// ReadTrack decodes a whole WAV stream into frames of type S.
func ReadTrack[S sample.Frame[S]](r io.Reader) (sample.Track[S], Header, error) {
	src, err := decode(r)
	if err != nil {
		return nil, Header{}, err
	}

	track, err := audio.ReadTrack[S](src)
	if err != nil {
		return nil, Header{}, fmt.Errorf("decoding wav: %w", err)
	}

	return track, src.header, nil
}
