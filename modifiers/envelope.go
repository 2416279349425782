// SPDX-License-Identifier: EPL-2.0

package modifiers

import (
	"math"

	"github.com/ik5/bae/sample"
)

// Envelope follows the amplitude of every channel with separate rise and
// fall responses. upper sets how fast it rises, lower how fast it falls,
// both in Hz.
type Envelope[S sample.Frame[S]] struct {
	au, bu float64
	ad, bd float64

	x1, y1 []float64
	out    []float64
}

func NewEnvelope[S sample.Frame[S]](lower, upper, rate float64) *Envelope[S] {
	if rate <= 0 {
		rate = sample.DefaultRate
	}

	var zero S
	n := zero.Channels()

	tu := math.Tan(math.Pi * upper / rate)
	td := math.Tan(math.Pi * lower / rate)

	return &Envelope[S]{
		au:  tu / (1 + tu),
		bu:  (1 - tu) / (1 + tu),
		ad:  td / (1 + td),
		bd:  (1 - td) / (1 + td),
		x1:  make([]float64, n),
		y1:  make([]float64, n),
		out: make([]float64, n),
	}
}

func (m *Envelope[S]) Process(x S) S {
	for c := range m.out {
		v := math.Abs(x.Channel(c))

		a, b := m.ad, m.bd
		if v > m.y1[c] {
			a, b = m.au, m.bu
		}

		y := a*(v+m.x1[c]) + b*m.y1[c]
		m.x1[c], m.y1[c], m.out[c] = v, y, y
	}

	var zero S
	return zero.FromChannels(m.out)
}

func (m *Envelope[S]) Clone() Modifier[S] {
	c := *m
	c.x1 = append([]float64(nil), m.x1...)
	c.y1 = append([]float64(nil), m.y1...)
	c.out = make([]float64, len(m.out))

	return &c
}
