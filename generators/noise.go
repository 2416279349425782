// SPDX-License-Identifier: EPL-2.0

package generators

import (
	"math/rand/v2"

	"github.com/ik5/bae/sample"
)

// Noise produces uniform white noise in [-1, 1). Two generators built with
// the same seed produce the same sequence.
type Noise[S sample.Frame[S]] struct {
	src *rand.PCG
	rng *rand.Rand
}

func NewNoise[S sample.Frame[S]](seed uint64) *Noise[S] {
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	return &Noise[S]{src: src, rng: rand.New(src)}
}

func (g *Noise[S]) Process() S {
	return sample.FromMono[S](sample.Mono(g.rng.Float64()*2 - 1))
}

// Clone continues the same sequence independently of g.
func (g *Noise[S]) Clone() Generator[S] {
	src := *g.src
	return &Noise[S]{src: &src, rng: rand.New(&src)}
}
