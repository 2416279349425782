// SPDX-License-Identifier: EPL-2.0

package generators

import (
	"math"
	"sync"

	"github.com/ik5/bae/sample"
)

// wavetableFreq is the frequency of the single period stored in a wavetable.
const wavetableFreq = 10

var (
	wavetables   = map[float64][]float64{}
	wavetablesMu sync.Mutex
)

// wavetable returns the shared table for rate, building it on first use.
func wavetable(rate float64) []float64 {
	wavetablesMu.Lock()
	defer wavetablesMu.Unlock()

	if wt, ok := wavetables[rate]; ok {
		return wt
	}

	size := max(int(rate/wavetableFreq), 1)
	wt := make([]float64, size)
	for i := range wt {
		wt[i] = math.Sin(2 * math.Pi * float64(i) / float64(size))
	}
	wavetables[rate] = wt

	return wt
}

// Sine reads a shared one period wavetable with linear interpolation.
type Sine[S sample.Frame[S]] struct {
	table []float64
	rate  float64
	ind   float64
	inc   float64
}

func NewSine[S sample.Frame[S]](freq, rate float64) *Sine[S] {
	if rate <= 0 {
		rate = sample.DefaultRate
	}

	g := &Sine[S]{table: wavetable(rate), rate: rate}
	g.SetFrequency(freq)

	return g
}

func (g *Sine[S]) Process() S {
	size := len(g.table)

	k := 0
	if g.ind > 0 && g.ind < float64(size) {
		k = int(g.ind)
	} else {
		g.ind = 0
	}
	frac := g.ind - float64(k)
	k1 := k + 1
	if k1 >= size {
		k1 = 0
	}

	y := (1-frac)*g.table[k] + frac*g.table[k1]

	g.ind += g.inc
	if g.ind >= float64(size) || g.ind < 0 {
		g.ind -= float64(size) * math.Floor(g.ind/float64(size))
		if g.ind >= float64(size) {
			g.ind = 0
		}
	}

	return sample.FromMono[S](sample.Mono(y))
}

// SetFrequency changes the pitch without resetting the phase. A NaN or
// infinite frequency is treated as 0.
func (g *Sine[S]) SetFrequency(f float64) {
	// the table holds one period, so f Hz walks f*len/rate entries per sample
	g.inc = finite(finite(f) * float64(len(g.table)) / g.rate)
}

func (g *Sine[S]) Frequency() float64 {
	return g.inc * g.rate / float64(len(g.table))
}

func (g *Sine[S]) Clone() Generator[S] {
	c := *g
	return &c
}
