// SPDX-License-Identifier: EPL-2.0

package modifiers

import (
	"time"

	"github.com/ik5/bae/sample"
	"github.com/ik5/bae/utils"
)

// ring is a fixed length frame delay line.
type ring[S sample.Frame[S]] struct {
	buf []S
	pos int
}

func newRing[S sample.Frame[S]](n int) ring[S] {
	return ring[S]{buf: make([]S, n)}
}

// swap returns the oldest frame and stores x in its place.
func (r *ring[S]) swap(x S) S {
	y := r.buf[r.pos]
	r.buf[r.pos] = x

	r.pos++
	if r.pos == len(r.buf) {
		r.pos = 0
	}

	return y
}

func (r ring[S]) clone() ring[S] {
	return ring[S]{buf: append([]S(nil), r.buf...), pos: r.pos}
}

// Delay delays its input by a whole number of samples.
type Delay[S sample.Frame[S]] struct {
	line ring[S]
	rate float64
}

// NewDelay delays by d rounded to the nearest sample.
func NewDelay[S sample.Frame[S]](d time.Duration, rate float64) *Delay[S] {
	if rate <= 0 {
		rate = sample.DefaultRate
	}

	return &Delay[S]{
		line: newRing[S](utils.DurationToSamples(d, rate)),
		rate: rate,
	}
}

func (m *Delay[S]) Process(x S) S {
	if len(m.line.buf) == 0 {
		return x
	}

	return m.line.swap(x)
}

// Delay is the effective delay after rounding.
func (m *Delay[S]) Delay() time.Duration {
	return utils.SamplesToDuration(len(m.line.buf), m.rate)
}

func (m *Delay[S]) Clone() Modifier[S] {
	return &Delay[S]{line: m.line.clone(), rate: m.rate}
}

// Echo is the feedback comb filter H(z) = 1 / (1 - a z^-d).
type Echo[S sample.Frame[S]] struct {
	line ring[S]
	gain float64
}

// NewEcho repeats the signal every d (at least one sample) scaled by gain
// on each pass.
func NewEcho[S sample.Frame[S]](d time.Duration, gain, rate float64) *Echo[S] {
	if rate <= 0 {
		rate = sample.DefaultRate
	}

	n := max(utils.DurationToSamples(d, rate), 1)

	return &Echo[S]{line: newRing[S](n), gain: gain}
}

func (m *Echo[S]) Process(x S) S {
	wet := m.line.buf[m.line.pos].Scale(m.gain).Add(x)
	m.line.swap(wet)

	return wet
}

func (m *Echo[S]) Clone() Modifier[S] {
	return &Echo[S]{line: m.line.clone(), gain: m.gain}
}
