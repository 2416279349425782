// SPDX-License-Identifier: EPL-2.0

package bae_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/bae"
	"github.com/ik5/bae/analysis"
	"github.com/ik5/bae/sample"
)

func sineTrack(freq, rate float64, n int) sample.Track[sample.Mono] {
	track := make(sample.Track[sample.Mono], n)
	for i := range track {
		track[i] = sample.Mono(math.Sin(2 * math.Pi * freq * float64(i) / rate))
	}

	return track
}

func TestResampleSameRate(t *testing.T) {
	t.Parallel()

	src := sineTrack(100, 8000, 50)
	out := bae.Resample(src, 8000, 8000)

	assert.Equal(t, src, out)

	out[0] = 9
	assert.NotEqual(t, src[0], out[0])
}

func TestResampleLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from, to float64
		want     int
	}{
		{8000, 16000, 2000},
		{16000, 8000, 500},
		{44100, 48000, 1089},
	}

	for _, tt := range tests {
		out := bae.Resample(sineTrack(100, tt.from, 1000), tt.from, tt.to)
		assert.InDelta(t, tt.want, len(out), 1, "%v -> %v", tt.from, tt.to)
	}
}

func TestResampleKeepsPitch(t *testing.T) {
	t.Parallel()

	src := sineTrack(1000, 22050, 22050)
	out := bae.Resample(src, 22050, 48000)

	freq, err := analysis.DominantFrequency(out.Mono(), 48000)
	require.NoError(t, err)
	assert.InDelta(t, 1000, freq, 3)
}
