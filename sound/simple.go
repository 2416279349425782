// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"github.com/ik5/bae/modifiers"
	"github.com/ik5/bae/sample"
)

// Simple is a Sound made of a source Block followed by a chain of
// modifiers. It is the fast path for sounds without branches.
type Simple[S sample.Frame[S]] struct {
	controls[S]

	source  Block[S]
	chain   []modifiers.Modifier[S]
	inGain  float64
	outGain float64
}

// NewSimple returns a sound playing source. The external input, scaled by
// inGain, primes the source block.
func NewSimple[S sample.Frame[S]](source Block[S], inGain, outGain float64) *Simple[S] {
	return &Simple[S]{
		controls: newControls[S](),
		source:   source,
		inGain:   inGain,
		outGain:  outGain,
	}
}

// Process primes the source with x scaled by the input gain, runs the
// source and the modifier chain, and scales the result by the output gain.
func (s *Simple[S]) Process(x S) S {
	var zero S
	if s.paused {
		return zero
	}

	s.source.Prime(x.Scale(s.inGain))
	y := s.source.Process()
	for _, m := range s.chain {
		y = m.Process(y)
	}
	y = y.Scale(s.outGain)

	if s.muted {
		return zero
	}

	return y
}

// Register adds the sound to r, leaving any previous registrar first.
func (s *Simple[S]) Register(r Registrar[S]) { s.register(s, r) }

// AddModifier appends m to the end of the chain.
func (s *Simple[S]) AddModifier(m modifiers.Modifier[S]) {
	s.chain = append(s.chain, m)
}

// ExtendModifiers appends ms in order.
func (s *Simple[S]) ExtendModifiers(ms ...modifiers.Modifier[S]) {
	s.chain = append(s.chain, ms...)
}

// Len is the number of modifiers in the chain.
func (s *Simple[S]) Len() int { return len(s.chain) }

// ModifySource runs fn with the source Block. The pointer must not be
// retained after fn returns.
func (s *Simple[S]) ModifySource(fn func(b *Block[S])) { fn(&s.source) }

// SetInputGain scales the external input before it primes the source.
func (s *Simple[S]) SetInputGain(v float64) { s.inGain = v }

// InputGain returns the input scale.
func (s *Simple[S]) InputGain() float64 { return s.inGain }

// SetOutputGain scales the end of the modifier chain.
func (s *Simple[S]) SetOutputGain(v float64) { s.outGain = v }

// OutputGain returns the output scale.
func (s *Simple[S]) OutputGain() float64 { return s.outGain }

// Clone deep copies the source and every modifier. The copy keeps the pause
// and mute flags but is not registered.
func (s *Simple[S]) Clone() *Simple[S] {
	chain := make([]modifiers.Modifier[S], len(s.chain))
	for i, m := range s.chain {
		chain[i] = m.Clone()
	}

	return &Simple[S]{
		controls: s.detached(),
		source:   s.source.Clone(),
		chain:    chain,
		inGain:   s.inGain,
		outGain:  s.outGain,
	}
}
