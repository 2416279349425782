// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds audio.Source doubles for tests. It does not import
// audio so that audio's own tests can use it.
package audiotest

import (
	"errors"
	"io"
	"math"
)

// ErrInjected is returned by sources built with WithError.
var ErrInjected = errors.New("audiotest: injected read error")

// MockSource generates frames from a waveform function.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // frames to generate
	generated  int
	bufSize    int
	waveform   func(frame, channel int) float64

	// trailing values appended after the last whole frame
	trailing int
	failAt   int
	closed   bool
}

// NewMockSource returns a source of frames frames. waveform gives the value
// of every channel of every frame.
func NewMockSource(sampleRate, channels, frames int, waveform func(frame, channel int) float64) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		bufSize:    4096,
		waveform:   waveform,
		failAt:     -1,
	}
}

// NewSilentSource generates zeros.
func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float64 { return 0 })
}

// NewSineSource generates the same sine wave on every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, _ int) float64 {
		t := float64(frame) / float64(sampleRate)
		return math.Sin(2 * math.Pi * frequency * t)
	})
}

// NewRampSource generates frame/frames on channel 0 and its negation on
// every other channel, which makes channel order easy to check.
func NewRampSource(sampleRate, channels, frames int) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, ch int) float64 {
		v := float64(frame) / float64(frames)
		if ch > 0 {
			return -v
		}
		return v
	})
}

// WithBufSize changes the BufSize hint.
func (m *MockSource) WithBufSize(n int) *MockSource {
	m.bufSize = n
	return m
}

// WithTrailing appends n stray values after the last frame.
func (m *MockSource) WithTrailing(n int) *MockSource {
	m.trailing = n
	return m
}

// WithError makes the source fail with ErrInjected once frame is reached.
func (m *MockSource) WithError(frame int) *MockSource {
	m.failAt = frame
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return m.bufSize }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset rewinds the source.
func (m *MockSource) Reset() { m.generated = 0 }

func (m *MockSource) ReadSamples(dst []float64) (int, error) {
	if m.failAt >= 0 && m.generated >= m.failAt {
		return 0, ErrInjected
	}
	if m.generated >= m.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/m.channels, m.frames-m.generated)
	if m.failAt >= 0 {
		n = min(n, m.failAt-m.generated)
	}

	for f := range n {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}
	m.generated += n
	written := n * m.channels

	if m.generated < m.frames {
		return written, nil
	}

	extra := min(m.trailing, len(dst)-written)
	for i := range extra {
		dst[written+i] = 0
	}

	return written + extra, io.EOF
}
