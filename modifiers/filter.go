// SPDX-License-Identifier: EPL-2.0

package modifiers

import (
	"math"

	"github.com/ik5/bae/sample"
	"github.com/ik5/bae/utils"
)

// butterworth holds the shared design of the 3rd order resonant filters.
type butterworth struct {
	rate      float64
	cutoff    float64
	resonance float64
	// normalized coefficients: t^3/g, feedback b0..b2 and 1/g
	t3, b0, b1, b2, ig float64
}

func newButterworth(cutoff, resonance, rate float64) butterworth {
	if rate <= 0 {
		rate = sample.DefaultRate
	}

	f := butterworth{rate: rate}
	f.set(cutoff, resonance)

	return f
}

// set clamps the cutoff to [0, nyquist] and the resonance to [0, 1] and
// recomputes the coefficients.
func (f *butterworth) set(cutoff, resonance float64) {
	f.cutoff = utils.Clamp(cutoff, 0, f.rate/2)
	f.resonance = utils.Clamp(resonance, 0, 1)

	theta := math.Pi / 6 * (4 - f.resonance)
	k := 1 - 2*math.Cos(theta)
	t := 2 * math.Pi * f.cutoff / f.rate
	g := t*t*t + k*t*t + k*t + 1

	f.t3 = t * t * t / g
	f.b0 = (k*t*t + 2*k*t + 3) / g
	f.b1 = (-k*t - 3) / g
	f.b2 = 1 / g
	f.ig = 1 / g
}

// LowPass is an 18 dB/octave Butterworth low pass filter with resonance.
type LowPass[S sample.Frame[S]] struct {
	butterworth
	yn [3]S
}

func NewLowPass[S sample.Frame[S]](cutoff, resonance, rate float64) *LowPass[S] {
	return &LowPass[S]{butterworth: newButterworth(cutoff, resonance, rate)}
}

func (m *LowPass[S]) Process(x S) S {
	y := x.Scale(m.t3).
		Add(m.yn[0].Scale(m.b0)).
		Add(m.yn[1].Scale(m.b1)).
		Add(m.yn[2].Scale(m.b2))

	m.yn[2], m.yn[1], m.yn[0] = m.yn[1], m.yn[0], y

	return y
}

func (m *LowPass[S]) SetCutoff(fc float64)   { m.set(fc, m.resonance) }
func (m *LowPass[S]) Cutoff() float64        { return m.cutoff }
func (m *LowPass[S]) SetResonance(r float64) { m.set(m.cutoff, r) }
func (m *LowPass[S]) Resonance() float64     { return m.resonance }

func (m *LowPass[S]) Clone() Modifier[S] {
	c := *m
	return &c
}

// HighPass mirrors LowPass: 18 dB/octave with resonance.
type HighPass[S sample.Frame[S]] struct {
	butterworth
	xn [3]S
	yn [3]S
}

func NewHighPass[S sample.Frame[S]](cutoff, resonance, rate float64) *HighPass[S] {
	return &HighPass[S]{butterworth: newButterworth(cutoff, resonance, rate)}
}

func (m *HighPass[S]) Process(x S) S {
	// feedforward taps are 1, -3, 3, -1 over g
	ff := x.Sub(m.xn[0].Scale(3)).Add(m.xn[1].Scale(3)).Sub(m.xn[2])
	y := ff.Scale(m.ig).
		Add(m.yn[0].Scale(m.b0)).
		Add(m.yn[1].Scale(m.b1)).
		Add(m.yn[2].Scale(m.b2))

	m.xn[2], m.xn[1], m.xn[0] = m.xn[1], m.xn[0], x
	m.yn[2], m.yn[1], m.yn[0] = m.yn[1], m.yn[0], y

	return y
}

func (m *HighPass[S]) SetCutoff(fc float64)   { m.set(fc, m.resonance) }
func (m *HighPass[S]) Cutoff() float64        { return m.cutoff }
func (m *HighPass[S]) SetResonance(r float64) { m.set(m.cutoff, r) }
func (m *HighPass[S]) Resonance() float64     { return m.resonance }

func (m *HighPass[S]) Clone() Modifier[S] {
	c := *m
	return &c
}
