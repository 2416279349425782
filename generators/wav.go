// SPDX-License-Identifier: EPL-2.0

package generators

import (
	"github.com/ik5/bae/audio"
	"github.com/ik5/bae/sample"
)

// Wav plays a recorded track through a resampler.
type Wav[S sample.Frame[S]] struct {
	*audio.Resampler[S]
}

// NewWav plays track, recorded at sourceRate, at engineRate.
func NewWav[S sample.Frame[S]](track sample.Track[S], sourceRate, engineRate float64) *Wav[S] {
	return &Wav[S]{Resampler: audio.NewResampler(track, sourceRate, engineRate)}
}

func (g *Wav[S]) Clone() Generator[S] {
	return &Wav[S]{Resampler: g.Resampler.Clone()}
}
