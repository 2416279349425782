// SPDX-License-Identifier: EPL-2.0

package generators

import (
	"math"

	"github.com/ik5/bae/sample"
)

// phasor is a normalized phase accumulator in [0, 1).
type phasor struct {
	rate  float64
	phase float64
	inc   float64
}

func newPhasor(freq, rate, phase float64) phasor {
	if rate <= 0 {
		rate = sample.DefaultRate
	}

	p := phasor{rate: rate, phase: wrapPhase(finite(phase))}
	p.setFrequency(freq)

	return p
}

func (p *phasor) setFrequency(f float64) { p.inc = finite(f) / p.rate }

func (p *phasor) frequency() float64 { return p.inc * p.rate }

// advance returns the current phase and moves on by one sample.
func (p *phasor) advance() float64 {
	ph := p.phase

	p.phase = wrapPhase(p.phase + p.inc)

	return ph
}

// wrapPhase folds x into [0, 1). A tiny negative x rounds to 1 after the
// floor, which is folded back to 0.
func wrapPhase(x float64) float64 {
	if x >= 0 && x < 1 {
		return x
	}

	x -= math.Floor(x)
	if x >= 1 || math.IsNaN(x) {
		return 0
	}

	return x
}

// finite maps NaN and infinities to 0.
func finite(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}

	return x
}
