// SPDX-License-Identifier: EPL-2.0

package sample

import "github.com/ik5/bae/utils"

// Pan places a monophonic sample in the stereo field. g ranges from -1 (full
// left) to 1 (full right) and is clamped to that range. The centre position
// attenuates both sides by 3 dB; the far side drops to -120 dB at the edges.
func Pan(x Mono, g float64) Stereo {
	var l, r float64

	if g <= 0 {
		l = utils.Clerp(g, -1, 0, 0, -3)
		r = utils.Clerp(g, -1, 0, -120, -3)
	} else {
		l = utils.Clerp(g, 0, 1, -3, -120)
		r = utils.Clerp(g, 0, 1, -3, 0)
	}

	return Stereo{
		Left:  utils.DBToLinear(l) * float64(x),
		Right: utils.DBToLinear(r) * float64(x),
	}
}
