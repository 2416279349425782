// SPDX-License-Identifier: EPL-2.0

package generators_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/bae/generators"
	"github.com/ik5/bae/sample"
)

const rate = sample.DefaultRate

func run[S sample.Frame[S]](g generators.Generator[S], n int) []S {
	out := make([]S, n)
	for i := range out {
		out[i] = g.Process()
	}
	return out
}

func TestZero(t *testing.T) {
	t.Parallel()

	for _, s := range run[sample.Stereo](generators.NewZero[sample.Stereo](), 16) {
		assert.Equal(t, sample.Stereo{}, s)
	}
}

func TestSine_MatchesMathSin(t *testing.T) {
	t.Parallel()

	for _, freq := range []float64{440, 1000, 27.5, 3333.3} {
		g := generators.NewSine[sample.Mono](freq, rate)
		assert.InDelta(t, freq, g.Frequency(), 1e-9)

		for n, s := range run[sample.Mono](g, 4800) {
			want := math.Sin(2 * math.Pi * freq * float64(n) / rate)
			require.InDelta(t, want, float64(s), 1e-5, "freq %v sample %d", freq, n)
		}
	}
}

func TestSine_OtherRates(t *testing.T) {
	t.Parallel()

	g := generators.NewSine[sample.Mono](100, 44100)
	for n, s := range run[sample.Mono](g, 1000) {
		want := math.Sin(2 * math.Pi * 100 * float64(n) / 44100)
		require.InDelta(t, want, float64(s), 1e-5, "sample %d", n)
	}
}

func TestSine_SetFrequencyKeepsPhase(t *testing.T) {
	t.Parallel()

	g := generators.NewSine[sample.Mono](440, rate)
	run[sample.Mono](g, 10)

	g.SetFrequency(0)
	held := g.Process()
	assert.Equal(t, held, g.Process())
	assert.NotZero(t, held)
}

func TestNonFiniteFrequency(t *testing.T) {
	t.Parallel()

	freqs := []float64{math.NaN(), math.Inf(1), math.Inf(-1), 1e308, -1e308}
	makers := map[string]func(f float64) generators.Generator[sample.Mono]{
		"sine":     func(f float64) generators.Generator[sample.Mono] { return generators.NewSine[sample.Mono](f, rate) },
		"square":   func(f float64) generators.Generator[sample.Mono] { return generators.NewSquare[sample.Mono](f, rate) },
		"sawtooth": func(f float64) generators.Generator[sample.Mono] { return generators.NewSawtooth[sample.Mono](f, rate) },
		"triangle": func(f float64) generators.Generator[sample.Mono] { return generators.NewTriangle[sample.Mono](f, rate) },
	}

	for name, mk := range makers {
		for _, f := range freqs {
			g := mk(f)
			require.NotPanics(t, func() {
				for n, s := range run[sample.Mono](g, 64) {
					require.False(t, math.IsNaN(float64(s)), "%s at %v: sample %d is NaN", name, f, n)
					require.LessOrEqual(t, math.Abs(float64(s)), 1.0, "%s at %v: sample %d", name, f, n)
				}
			}, "%s at %v", name, f)
		}
	}
}

func TestSine_SetFrequencyNaNHoldsPhase(t *testing.T) {
	t.Parallel()

	g := generators.NewSine[sample.Mono](440, rate)
	run[sample.Mono](g, 7)

	g.SetFrequency(math.NaN())
	assert.Zero(t, g.Frequency())

	held := g.Process()
	assert.Equal(t, held, g.Process())
}

func TestSquare(t *testing.T) {
	t.Parallel()

	// 12 kHz at 48 kHz is four samples per period
	g := generators.NewSquare[sample.Mono](12000, rate)
	assert.Equal(t, []sample.Mono{1, 1, -1, -1, 1, 1, -1, -1}, run[sample.Mono](g, 8))
	assert.InDelta(t, 12000, g.Frequency(), 1e-9)
}

func TestSawtooth(t *testing.T) {
	t.Parallel()

	g := generators.NewSawtooth[sample.Mono](12000, rate)
	got := run[sample.Mono](g, 8)
	want := []float64{0, 0.5, -1, -0.5, 0, 0.5, -1, -0.5}

	for i := range want {
		assert.InDelta(t, want[i], float64(got[i]), 1e-12, "sample %d", i)
	}
}

func TestTriangle(t *testing.T) {
	t.Parallel()

	g := generators.NewTriangle[sample.Mono](6000, rate)
	got := run[sample.Mono](g, 9)
	want := []float64{0, 0.5, 1, 0.5, 0, -0.5, -1, -0.5, 0}

	for i := range want {
		assert.InDelta(t, want[i], float64(got[i]), 1e-12, "sample %d", i)
	}
}

func TestNoise(t *testing.T) {
	t.Parallel()

	a := run[sample.Mono](generators.NewNoise[sample.Mono](7), 1000)
	b := run[sample.Mono](generators.NewNoise[sample.Mono](7), 1000)
	c := run[sample.Mono](generators.NewNoise[sample.Mono](8), 1000)

	assert.Equal(t, a, b, "same seed, same sequence")
	assert.NotEqual(t, a, c)

	var mean float64
	for _, s := range a {
		require.GreaterOrEqual(t, float64(s), -1.0)
		require.Less(t, float64(s), 1.0)
		mean += float64(s)
	}
	assert.InDelta(t, 0, mean/float64(len(a)), 0.1)
}

func TestClone_ContinuesIndependently(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		gen  generators.Generator[sample.Stereo]
	}{
		{name: "sine", gen: generators.NewSine[sample.Stereo](440, rate)},
		{name: "square", gen: generators.NewSquare[sample.Stereo](1000, rate)},
		{name: "sawtooth", gen: generators.NewSawtooth[sample.Stereo](700, rate)},
		{name: "triangle", gen: generators.NewTriangle[sample.Stereo](300, rate)},
		{name: "noise", gen: generators.NewNoise[sample.Stereo](1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			run(tt.gen, 37)

			c := tt.gen.Clone()
			want := run(tt.gen, 50)
			assert.Equal(t, want, run(c, 50))
		})
	}
}

func TestWav(t *testing.T) {
	t.Parallel()

	track := sample.Track[sample.Mono]{0, 1, 2, 3}
	g := generators.NewWav(track, 24000, rate)

	assert.Equal(t, []sample.Mono{0, 0.5, 1}, run[sample.Mono](g, 3))

	c := g.Clone()
	assert.Equal(t, run[sample.Mono](g, 5), run(c, 5))
	assert.True(t, g.Done())
}

func TestProcess_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	gens := []generators.Generator[sample.Stereo]{
		generators.NewSine[sample.Stereo](440, rate),
		generators.NewSquare[sample.Stereo](440, rate),
		generators.NewNoise[sample.Stereo](3),
	}

	for _, g := range gens {
		allocs := testing.AllocsPerRun(1000, func() {
			_ = g.Process()
		})
		assert.Zero(t, allocs)
	}
}

func BenchmarkSine(b *testing.B) {
	g := generators.NewSine[sample.Stereo](440, rate)

	b.ReportAllocs()

	for range b.N {
		_ = g.Process()
	}
}
