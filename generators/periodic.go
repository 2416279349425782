// SPDX-License-Identifier: EPL-2.0

package generators

import "github.com/ik5/bae/sample"

// Square alternates between 1 and -1, high for the first half period.
type Square[S sample.Frame[S]] struct {
	p phasor
}

func NewSquare[S sample.Frame[S]](freq, rate float64) *Square[S] {
	return &Square[S]{p: newPhasor(freq, rate, 0)}
}

func (g *Square[S]) Process() S {
	y := sample.Mono(1)
	if g.p.advance() >= 0.5 {
		y = -1
	}

	return sample.FromMono[S](y)
}

func (g *Square[S]) SetFrequency(f float64) { g.p.setFrequency(f) }
func (g *Square[S]) Frequency() float64     { return g.p.frequency() }

func (g *Square[S]) Clone() Generator[S] {
	c := *g
	return &c
}

// Sawtooth rises from 0 to 1, drops to -1 and rises again.
type Sawtooth[S sample.Frame[S]] struct {
	p phasor
}

func NewSawtooth[S sample.Frame[S]](freq, rate float64) *Sawtooth[S] {
	return &Sawtooth[S]{p: newPhasor(freq, rate, 0.5)}
}

func (g *Sawtooth[S]) Process() S {
	return sample.FromMono[S](sample.Mono(2*g.p.advance() - 1))
}

func (g *Sawtooth[S]) SetFrequency(f float64) { g.p.setFrequency(f) }
func (g *Sawtooth[S]) Frequency() float64     { return g.p.frequency() }

func (g *Sawtooth[S]) Clone() Generator[S] {
	c := *g
	return &c
}

// Triangle starts at 0 and rises towards 1.
type Triangle[S sample.Frame[S]] struct {
	p phasor
}

func NewTriangle[S sample.Frame[S]](freq, rate float64) *Triangle[S] {
	return &Triangle[S]{p: newPhasor(freq, rate, 0.25)}
}

func (g *Triangle[S]) Process() S {
	ph := g.p.advance()

	y := 4*ph - 1
	if ph >= 0.5 {
		y = 3 - 4*ph
	}

	return sample.FromMono[S](sample.Mono(y))
}

func (g *Triangle[S]) SetFrequency(f float64) { g.p.setFrequency(f) }
func (g *Triangle[S]) Frequency() float64     { return g.p.frequency() }

func (g *Triangle[S]) Clone() Generator[S] {
	c := *g
	return &c
}
