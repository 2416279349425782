// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"encoding/binary"
	"errors"
	"math"
	"sync"

	"github.com/ik5/bae/channel"
	"github.com/ik5/bae/sample"
)

// BytesPerSample is the size of one float32 little endian value.
const BytesPerSample = 4

// ErrEmptyBlock is returned by Read when the channel's process time is
// shorter than one frame.
var ErrEmptyBlock = errors.New("channel renders no frames per block")

// Stream renders a channel on demand as interleaved float32 little endian
// PCM, the layout of oto's FormatFloat32LE. Every Read pulls as many
// channel blocks as it needs to fill p.
//
// The audio device calls Read from its own goroutine. Changes to the
// channel and its sounds must go through Do so they never interleave with
// a pull.
type Stream[S sample.Frame[S]] struct {
	mtx sync.Mutex
	ch  *channel.Channel[S]

	pending []byte
	off     int
}

// NewStream wraps ch. The stream takes over ch; use Do to reach it.
func NewStream[S sample.Frame[S]](ch *channel.Channel[S]) *Stream[S] {
	return &Stream[S]{ch: ch}
}

// Channels is the number of interleaved channels per frame.
func (s *Stream[S]) Channels() int {
	var zero S
	return zero.Channels()
}

// SampleRate of the rendered PCM in Hz.
func (s *Stream[S]) SampleRate() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return int(s.ch.SampleRate())
}

// Do runs fn with exclusive access to the channel.
func (s *Stream[S]) Do(fn func(ch *channel.Channel[S])) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	fn(s.ch)
}

func (s *Stream[S]) Read(p []byte) (int, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	n := 0
	for n < len(p) {
		if s.off == len(s.pending) {
			if !s.render() {
				return n, ErrEmptyBlock
			}
		}

		c := copy(p[n:], s.pending[s.off:])
		s.off += c
		n += c
	}

	return n, nil
}

// render encodes the next channel block into pending. It reports false
// when the channel renders no frames.
func (s *Stream[S]) render() bool {
	block := s.ch.Process()
	channels := s.Channels()

	size := len(block) * channels * BytesPerSample
	if size == 0 {
		return false
	}

	if cap(s.pending) < size {
		s.pending = make([]byte, size)
	}
	s.pending = s.pending[:size]
	s.off = 0

	i := 0
	for _, f := range block {
		for c := range channels {
			binary.LittleEndian.PutUint32(s.pending[i:], math.Float32bits(float32(f.Channel(c))))
			i += BytesPerSample
		}
	}

	return true
}
