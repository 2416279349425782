// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// mockOggVorbisReader returns whole frames per call like oggvorbis.Reader,
// reporting the count of interleaved values written.
type mockOggVorbisReader struct {
	sampleRate int
	channels   int
	samples    []float32
	err        error
}

func (m *mockOggVorbisReader) SampleRate() int { return m.sampleRate }
func (m *mockOggVorbisReader) Channels() int   { return m.channels }

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if len(m.samples) == 0 {
		return 0, io.EOF
	}

	n := len(buf) - len(buf)%m.channels
	n = copy(buf[:n], m.samples)
	m.samples = m.samples[n:]

	return n, nil
}

func newSource(dec oggReader) *source {
	return &source{dec: dec, sampleRate: dec.SampleRate(), channels: dec.Channels(), buf: make([]float32, 16)}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{nil, []byte("OggS but not really")} {
		_, err := Decoder{}.Decode(bytes.NewReader(data))
		if !errors.Is(err, ErrInvalidStream) {
			t.Errorf("Decode(%q) error = %v, want ErrInvalidStream", data, err)
		}
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newSource(&mockOggVorbisReader{sampleRate: 22050, channels: 1})

	if src.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", src.SampleRate())
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}
	if src.BufSize() != 16 {
		t.Errorf("BufSize() = %d, want 16", src.BufSize())
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		bufSize  int
	}{
		{"mono", 1, 5},
		{"stereo", 2, 6},
		{"stereo odd buffer", 2, 7},
		{"5.1", 6, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			samples := make([]float32, tt.channels*10)
			for i := range samples {
				samples[i] = float32(i) / float32(len(samples))
			}
			mock := &mockOggVorbisReader{sampleRate: 44100, channels: tt.channels, samples: append([]float32(nil), samples...)}
			src := newSource(mock)

			var got []float64
			buf := make([]float64, tt.bufSize)
			for {
				n, err := src.ReadSamples(buf)
				if n%tt.channels != 0 {
					t.Fatalf("ReadSamples() = %d, not a whole number of frames", n)
				}
				got = append(got, buf[:n]...)
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					t.Fatalf("ReadSamples() error = %v", err)
				}
			}

			if len(got) != len(samples) {
				t.Fatalf("read %d samples, want %d", len(got), len(samples))
			}
			for i, v := range samples {
				if got[i] != float64(v) {
					t.Errorf("sample %d = %v, want %v", i, got[i], v)
				}
			}
		})
	}
}

func TestSource_DecodeError(t *testing.T) {
	t.Parallel()

	src := newSource(&mockOggVorbisReader{sampleRate: 44100, channels: 2, err: io.ErrUnexpectedEOF})

	_, err := src.ReadSamples(make([]float64, 8))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want ErrUnexpectedEOF", err)
	}
}

func TestSource_NoAllocs(t *testing.T) {
	samples := make([]float32, 1<<12)
	buf := make([]float64, 16)
	src := newSource(&mockOggVorbisReader{sampleRate: 44100, channels: 2, samples: samples})

	allocs := testing.AllocsPerRun(100, func() {
		_, _ = src.ReadSamples(buf)
	})
	if allocs != 0 {
		t.Errorf("ReadSamples allocated %v times per call, want 0", allocs)
	}
}
