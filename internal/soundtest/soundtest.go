// SPDX-License-Identifier: EPL-2.0

// Package soundtest provides generators, modifiers and a registrar that
// make engine behaviour observable in tests. Only external test packages
// may import it.
package soundtest

import (
	"github.com/ik5/bae/generators"
	"github.com/ik5/bae/modifiers"
	"github.com/ik5/bae/sample"
	"github.com/ik5/bae/sound"
)

// Counter emits 1, 2, 3, ... as mono frames and counts its calls.
type Counter[S sample.Frame[S]] struct {
	Calls int
}

func (g *Counter[S]) Process() S {
	g.Calls++
	return sample.FromMono[S](sample.Mono(g.Calls))
}

func (g *Counter[S]) Clone() generators.Generator[S] {
	c := *g
	return &c
}

// Constant emits the same frame forever.
type Constant[S sample.Frame[S]] struct {
	Value S
}

func (g Constant[S]) Process() S { return g.Value }

func (g Constant[S]) Clone() generators.Generator[S] { return g }

// Recorder passes its input through and remembers it.
type Recorder[S sample.Frame[S]] struct {
	Inputs []S
}

func (m *Recorder[S]) Process(x S) S {
	m.Inputs = append(m.Inputs, x)
	return x
}

func (m *Recorder[S]) Clone() modifiers.Modifier[S] {
	return &Recorder[S]{Inputs: append([]S(nil), m.Inputs...)}
}

// Offset adds a constant to its input.
type Offset[S sample.Frame[S]] struct {
	Value S
}

func (m Offset[S]) Process(x S) S { return x.Add(m.Value) }

func (m Offset[S]) Clone() modifiers.Modifier[S] { return m }

// Registry is a minimal sound.Registrar that records its calls.
type Registry[S sample.Frame[S]] struct {
	next    int
	Sounds  map[int]sound.Sound[S]
	Removed []int
}

func NewRegistry[S sample.Frame[S]]() *Registry[S] {
	return &Registry[S]{Sounds: map[int]sound.Sound[S]{}}
}

func (r *Registry[S]) AddSound(s sound.Sound[S]) int {
	r.next++
	r.Sounds[r.next] = s
	return r.next
}

func (r *Registry[S]) RemoveSound(id int) (sound.Sound[S], bool) {
	r.Removed = append(r.Removed, id)

	s, ok := r.Sounds[id]
	delete(r.Sounds, id)

	return s, ok
}
