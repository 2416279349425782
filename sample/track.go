// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"time"

	"github.com/ik5/bae/utils"
)

// Track is a sequence of frames at some sample rate.
type Track[S Frame[S]] []S

// NewTrack returns a silent track holding d worth of frames at rate.
func NewTrack[S Frame[S]](d time.Duration, rate float64) Track[S] {
	return make(Track[S], utils.DurationToSamples(d, rate))
}

// Duration reports how long the track plays at rate.
func (t Track[S]) Duration(rate float64) time.Duration {
	return utils.SamplesToDuration(len(t), rate)
}

// Mono reduces every frame of the track to a float64 mono sample.
func (t Track[S]) Mono() []float64 {
	out := make([]float64, len(t))
	for i, s := range t {
		out[i] = float64(s.Mono())
	}

	return out
}
