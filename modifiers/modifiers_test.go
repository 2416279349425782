// SPDX-License-Identifier: EPL-2.0

package modifiers_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/bae/modifiers"
	"github.com/ik5/bae/sample"
)

const rate = sample.DefaultRate

func feed[S sample.Frame[S]](m modifiers.Modifier[S], in ...S) []S {
	out := make([]S, len(in))
	for i, x := range in {
		out[i] = m.Process(x)
	}
	return out
}

func constant(x sample.Mono, n int) []sample.Mono {
	out := make([]sample.Mono, n)
	for i := range out {
		out[i] = x
	}
	return out
}

func TestPassthroughAndGain(t *testing.T) {
	t.Parallel()

	in := sample.Stereo{Left: 0.5, Right: -0.25}

	assert.Equal(t, in, modifiers.NewPassthrough[sample.Stereo]().Process(in))

	g := modifiers.NewGain[sample.Stereo](2)
	assert.Equal(t, sample.Stereo{Left: 1, Right: -0.5}, g.Process(in))

	g.SetGain(0)
	assert.Equal(t, sample.Stereo{}, g.Process(in))
	assert.Zero(t, g.Gain())
}

func TestLowPass(t *testing.T) {
	t.Parallel()

	lp := modifiers.NewLowPass[sample.Mono](1000, 0, rate)

	// unity gain at DC
	out := feed[sample.Mono](lp, constant(1, 20000)...)
	assert.InDelta(t, 1, float64(out[len(out)-1]), 1e-6)

	// a tone far above cutoff is strongly attenuated
	lp = modifiers.NewLowPass[sample.Mono](200, 0, rate)
	var peak float64
	for n := range 48000 {
		y := lp.Process(sample.Mono(math.Sin(2 * math.Pi * 10000 * float64(n) / rate)))
		if n > 24000 {
			peak = max(peak, math.Abs(float64(y)))
		}
	}
	assert.Less(t, peak, 0.01)
}

func TestHighPass(t *testing.T) {
	t.Parallel()

	hp := modifiers.NewHighPass[sample.Mono](1000, 0, rate)

	out := feed[sample.Mono](hp, constant(1, 20000)...)
	assert.InDelta(t, 0, float64(out[len(out)-1]), 1e-6, "DC is blocked")

	hp = modifiers.NewHighPass[sample.Mono](200, 0, rate)
	var peak float64
	for n := range 48000 {
		y := hp.Process(sample.Mono(math.Sin(2 * math.Pi * 10000 * float64(n) / rate)))
		if n > 24000 {
			peak = max(peak, math.Abs(float64(y)))
		}
	}
	assert.InDelta(t, 1, peak, 0.05)
}

func TestFilterClamping(t *testing.T) {
	t.Parallel()

	lp := modifiers.NewLowPass[sample.Stereo](100000, 3, rate)
	assert.Equal(t, float64(rate/2), lp.Cutoff())
	assert.Equal(t, 1.0, lp.Resonance())

	lp.SetCutoff(-5)
	lp.SetResonance(-1)
	assert.Zero(t, lp.Cutoff())
	assert.Zero(t, lp.Resonance())

	hp := modifiers.NewHighPass[sample.Stereo](1e9, 0.5, rate)
	assert.Equal(t, float64(rate/2), hp.Cutoff())
	assert.Equal(t, 0.5, hp.Resonance())
}

func TestADSR(t *testing.T) {
	t.Parallel()

	// 48 kHz: 1 ms attack is 48 samples, 1 ms decay to -6 dB
	env := modifiers.NewADSR[sample.Mono](time.Millisecond, time.Millisecond, -6, time.Millisecond, rate)
	sustain := math.Pow(10, -6.0/20)

	out := feed[sample.Mono](env, constant(1, 40)...)
	assert.InDelta(t, 1.0/48, float64(out[0]), 1e-12)
	assert.InDelta(t, 40.0/48, float64(out[39]), 1e-9)
	assert.Equal(t, modifiers.Attack, env.Stage())

	feed[sample.Mono](env, constant(1, 9)...)
	assert.Equal(t, modifiers.Decay, env.Stage())

	out = feed[sample.Mono](env, constant(1, 100)...)
	assert.InDelta(t, sustain, float64(out[99]), 1e-9)
	assert.Equal(t, modifiers.Sustain, env.Stage())

	env.Release()
	assert.Equal(t, modifiers.Release, env.Stage())

	out = feed[sample.Mono](env, constant(1, 60)...)
	assert.Zero(t, out[59])
	assert.Equal(t, modifiers.Stopped, env.Stage())
	assert.Equal(t, "stopped", env.Stage().String())

	env.Retrigger()
	assert.Equal(t, modifiers.Attack, env.Stage())
}

func TestADSR_ZeroDurations(t *testing.T) {
	t.Parallel()

	env := modifiers.NewADSR[sample.Mono](0, 0, 3, 0, rate)

	out := feed[sample.Mono](env, 1, 1, 1)
	assert.Equal(t, []sample.Mono{1, 1, 1}, out, "sustain above 0 dB is clamped to unity")
}

func TestDelay(t *testing.T) {
	t.Parallel()

	// 62.5 µs is three samples at 48 kHz
	d := modifiers.NewDelay[sample.Mono](62500*time.Nanosecond, rate)
	assert.InDelta(t, 62500, float64(d.Delay()), 1)

	out := feed[sample.Mono](d, 1, 2, 3, 4, 5, 6)
	assert.Equal(t, []sample.Mono{0, 0, 0, 1, 2, 3}, out)

	c := d.Clone()
	assert.Equal(t, feed[sample.Mono](d, 7, 8, 9), feed(c, 7, 8, 9))

	zero := modifiers.NewDelay[sample.Mono](0, rate)
	assert.Equal(t, []sample.Mono{1, 2}, feed[sample.Mono](zero, 1, 2))
}

func TestEcho(t *testing.T) {
	t.Parallel()

	e := modifiers.NewEcho[sample.Mono](2*time.Second/rate, 0.5, rate)

	out := feed[sample.Mono](e, 1, 0, 0, 0, 0, 0, 0)
	assert.Equal(t, []sample.Mono{1, 0, 0.5, 0, 0.25, 0, 0.125}, out)
}

func TestEnvelope(t *testing.T) {
	t.Parallel()

	env := modifiers.NewEnvelope[sample.Stereo](10, 1000, rate)

	var last sample.Stereo
	for n := range 4800 {
		x := math.Sin(2 * math.Pi * 100 * float64(n) / rate)
		last = env.Process(sample.Stereo{Left: x, Right: 0})
	}

	assert.Greater(t, last.Left, 0.3)
	assert.Zero(t, last.Right)
}

func TestClone_CarriesState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		mod  modifiers.Modifier[sample.Stereo]
	}{
		{name: "lowpass", mod: modifiers.NewLowPass[sample.Stereo](500, 0.3, rate)},
		{name: "highpass", mod: modifiers.NewHighPass[sample.Stereo](500, 0.3, rate)},
		{name: "adsr", mod: modifiers.NewADSR[sample.Stereo](time.Millisecond, time.Millisecond, -3, time.Millisecond, rate)},
		{name: "echo", mod: modifiers.NewEcho[sample.Stereo](time.Millisecond, 0.7, rate)},
		{name: "envelope", mod: modifiers.NewEnvelope[sample.Stereo](5, 500, rate)},
	}

	in := make([]sample.Stereo, 200)
	for i := range in {
		v := math.Sin(float64(i) / 7)
		in[i] = sample.Stereo{Left: v, Right: -v / 2}
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			feed(tt.mod, in[:100]...)
			c := tt.mod.Clone()

			want := feed(tt.mod, in[100:]...)
			got := feed(c, in[100:]...)
			require.Equal(t, want, got)
		})
	}
}

func TestProcess_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	mods := []modifiers.Modifier[sample.Stereo]{
		modifiers.NewLowPass[sample.Stereo](500, 0.3, rate),
		modifiers.NewHighPass[sample.Stereo](500, 0.3, rate),
		modifiers.NewEcho[sample.Stereo](time.Millisecond, 0.7, rate),
		modifiers.NewDelay[sample.Stereo](time.Millisecond, rate),
	}

	x := sample.Stereo{Left: 0.1, Right: 0.2}
	for _, m := range mods {
		allocs := testing.AllocsPerRun(1000, func() {
			_ = m.Process(x)
		})
		assert.Zero(t, allocs)
	}
}
