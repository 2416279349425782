// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/bae/sample"
)

// createWAVFile builds a 16 bit PCM file in memory.
func createWAVFile(sampleRate, channels int, samples []int16) []byte {
	buf := new(bytes.Buffer)

	dataSize := uint32(len(samples) * 2)

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	h := NewHeader(channels, sampleRate, sample.BitDepth16)
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, h)

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	binary.Write(buf, binary.LittleEndian, samples)

	return buf.Bytes()
}

func sineTrack(freq float64, rate, frames int) sample.Track[sample.Mono] {
	track := make(sample.Track[sample.Mono], frames)
	for i := range track {
		track[i] = sample.Mono(0.5 * math.Sin(2*math.Pi*freq*float64(i)/float64(rate)))
	}

	return track
}

func writeTemp[S sample.Frame[S]](t *testing.T, track sample.Track[S], rate int, depth sample.BitDepth) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "out.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, WriteTrack(f, track, rate, depth))

	return path
}

func TestDecoderReadsPCM16(t *testing.T) {
	t.Parallel()

	data := createWAVFile(8000, 1, []int16{0, 16384, -16384, math.MaxInt16, math.MinInt16})

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	defer src.Close()

	assert.Equal(t, 8000, src.SampleRate())
	assert.Equal(t, 1, src.Channels())

	buf := make([]float64, 16)
	n, err := src.ReadSamples(buf)
	require.NoError(t, err)
	require.Equal(t, 5, n)

	assert.InDeltaSlice(t, []float64{0, 0.5, -0.5, 32767.0 / 32768, -1}, buf[:n], 1e-12)

	_, err = src.ReadSamples(buf)
	assert.ErrorIs(t, err, io.EOF)
}

func TestDecoderWithoutSeeker(t *testing.T) {
	t.Parallel()

	data := createWAVFile(44100, 2, []int16{100, -100, 200, -200})

	// MultiReader hides Seek
	track, h, err := ReadTrack[sample.Stereo](io.MultiReader(bytes.NewReader(data)))
	require.NoError(t, err)

	assert.Equal(t, uint16(2), h.Channels)
	assert.Equal(t, uint32(44100), h.SampleRate)
	require.Len(t, track, 2)
	assert.InDelta(t, 200.0/32768, track[1].Left, 1e-12)
	assert.InDelta(t, -200.0/32768, track[1].Right, 1e-12)
}

func TestDecoderRejectsNonWav(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{
		nil,
		[]byte("RIFF"),
		[]byte("RIFX\x00\x00\x00\x00WAVE"),
		[]byte("RIFF\x00\x00\x00\x00AIFF"),
	} {
		_, err := Decoder{}.Decode(bytes.NewReader(data))
		assert.ErrorIs(t, err, ErrNotWavFile)
	}
}

func TestRoundTripPCM16(t *testing.T) {
	t.Parallel()

	const rate = 48000
	track := sineTrack(440, rate, rate)

	f, err := os.Open(writeTemp(t, track, rate, sample.BitDepth16))
	require.NoError(t, err)
	defer f.Close()

	got, h, err := ReadTrack[sample.Mono](f)
	require.NoError(t, err)

	assert.Equal(t, NewHeader(1, rate, sample.BitDepth16), h)
	require.Len(t, got, len(track))
	for i := range track {
		require.InDelta(t, float64(track[i]), float64(got[i]), 1.0/(1<<15), "frame %d", i)
	}
}

func TestRoundTripDepths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		depth sample.BitDepth
		tol   float64
	}{
		{sample.BitDepth8, 1.0 / (1 << 7)},
		{sample.BitDepth24, 1.0 / (1 << 23)},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d bit", tt.depth), func(t *testing.T) {
			t.Parallel()

			track := sample.Track[sample.Stereo]{
				{Left: 0, Right: 0},
				{Left: 0.25, Right: -0.25},
				{Left: -1, Right: 0.999},
				{Left: 0.1, Right: -0.7},
			}

			f, err := os.Open(writeTemp(t, track, 22050, tt.depth))
			require.NoError(t, err)
			defer f.Close()

			got, h, err := ReadTrack[sample.Stereo](f)
			require.NoError(t, err)
			assert.Equal(t, tt.depth, h.Depth())
			require.Len(t, got, len(track))

			for i := range track {
				assert.InDelta(t, track[i].Left, got[i].Left, tt.tol)
				assert.InDelta(t, track[i].Right, got[i].Right, tt.tol)
			}
		})
	}
}

func TestWriteTrackRejects(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	track := sineTrack(100, 8000, 10)

	assert.ErrorIs(t, WriteTrack(f, track, 8000, sample.BitDepth(12)), ErrUnsupportedBitDepth)
	assert.ErrorIs(t, WriteTrack(f, track, 0, sample.BitDepth16), ErrInvalidSampleRate)
}

func TestHeaderValidate(t *testing.T) {
	t.Parallel()

	valid := NewHeader(2, 44100, sample.BitDepth16)
	require.NoError(t, valid.Validate())
	assert.Equal(t, uint16(4), valid.BlockAlign)
	assert.Equal(t, uint32(176400), valid.ByteRate)

	tests := []struct {
		name   string
		mutate func(*Header)
		want   error
	}{
		{"float format", func(h *Header) { h.AudioFormat = 3; h.BitsPerSample = 32 }, ErrUnsupportedFormat},
		{"12 bit", func(h *Header) { h.BitsPerSample = 12 }, ErrUnsupportedBitDepth},
		{"32 bit int", func(h *Header) { h.BitsPerSample = 32 }, ErrUnsupportedBitDepth},
		{"no channels", func(h *Header) { h.Channels = 0 }, ErrInvalidHeader},
		{"no rate", func(h *Header) { h.SampleRate = 0 }, ErrInvalidSampleRate},
		{"bad align", func(h *Header) { h.BlockAlign = 3 }, ErrInvalidHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := valid
			tt.mutate(&h)
			assert.ErrorIs(t, h.Validate(), tt.want)
		})
	}
}
