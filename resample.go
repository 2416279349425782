// SPDX-License-Identifier: EPL-2.0

package bae

import (
	"github.com/ik5/bae/audio"
	"github.com/ik5/bae/sample"
)

// Resample converts a whole track from one rate to another with cubic
// interpolation. Equal rates return a copy.
func Resample[S sample.Frame[S]](track sample.Track[S], from, to float64) sample.Track[S] {
	if from == to || from <= 0 || to <= 0 {
		return append(sample.Track[S](nil), track...)
	}

	r := audio.NewResampler(track, from, to)
	r.SetInterpolation(audio.Cubic)

	out := make(sample.Track[S], 0, int(float64(len(track))*to/from)+1)
	for !r.Done() {
		out = append(out, r.Process())
	}

	return out
}
