// SPDX-License-Identifier: EPL-2.0

package modifiers

import "github.com/ik5/bae/sample"

// Modifier transforms one input frame into one output frame. Its state
// advances exactly once per Process call.
type Modifier[S sample.Frame[S]] interface {
	Process(x S) S
	// Clone returns an independent copy carrying the current state.
	Clone() Modifier[S]
}

// Passthrough is the identity modifier.
type Passthrough[S sample.Frame[S]] struct{}

func NewPassthrough[S sample.Frame[S]]() Passthrough[S] { return Passthrough[S]{} }

func (Passthrough[S]) Process(x S) S { return x }

func (p Passthrough[S]) Clone() Modifier[S] { return p }

// Gain scales its input by a linear factor.
type Gain[S sample.Frame[S]] struct {
	gain float64
}

func NewGain[S sample.Frame[S]](g float64) *Gain[S] {
	return &Gain[S]{gain: g}
}

func (m *Gain[S]) Process(x S) S { return x.Scale(m.gain) }

func (m *Gain[S]) SetGain(g float64) { m.gain = g }
func (m *Gain[S]) Gain() float64     { return m.gain }

func (m *Gain[S]) Clone() Modifier[S] {
	c := *m
	return &c
}
