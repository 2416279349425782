// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"fmt"
	"math"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"
)

// Analyzer computes magnitude spectra of a fixed transform size. It keeps
// its plan and scratch buffers between calls and is not safe for
// concurrent use.
type Analyzer struct {
	size int
	plan *algofft.Plan[complex128]

	window   []float64
	gain     float64
	windowed []float64
	in, out  []complex128
	re, im   []float64
}

// NewAnalyzer plans a transform of size points.
func NewAnalyzer(size int) (*Analyzer, error) {
	if size < 2 || size&(size-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("planning %d point fft: %w", size, err)
	}

	bins := size/2 + 1

	return &Analyzer{
		size: size,
		plan: plan,
		in:   make([]complex128, size),
		out:  make([]complex128, size),
		re:   make([]float64, bins),
		im:   make([]float64, bins),
	}, nil
}

// Size is the transform length in samples.
func (a *Analyzer) Size() int { return a.size }

// Bins is the number of magnitudes Spectrum returns.
func (a *Analyzer) Bins() int { return a.size/2 + 1 }

// Spectrum writes the magnitudes of bins 0..Size/2 of the Hann windowed
// signal into dst, growing it when needed, and returns it. Only the first
// Size samples are used; shorter signals are zero padded. Magnitudes are
// scaled so a full scale sine centred on a bin reads 1.
func (a *Analyzer) Spectrum(dst, signal []float64) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptySignal
	}

	n := min(len(signal), a.size)
	win := a.hann(n)

	if cap(a.windowed) < n {
		a.windowed = make([]float64, n)
	}
	a.windowed = a.windowed[:n]
	vecmath.MulBlock(a.windowed, signal[:n], win)

	for i := range a.in {
		if i < n {
			a.in[i] = complex(a.windowed[i], 0)
		} else {
			a.in[i] = 0
		}
	}

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return nil, fmt.Errorf("forward fft: %w", err)
	}

	for k := range a.re {
		a.re[k] = real(a.out[k])
		a.im[k] = imag(a.out[k])
	}

	if cap(dst) < len(a.re) {
		dst = make([]float64, len(a.re))
	}
	dst = dst[:len(a.re)]
	vecmath.Magnitude(dst, a.re, a.im)

	scale := 2 / a.gain
	for k := range dst {
		dst[k] *= scale
	}

	return dst, nil
}

// DominantFrequency returns the frequency in Hz of the strongest non-DC
// bin, refined by parabolic interpolation over log magnitudes.
func (a *Analyzer) DominantFrequency(signal []float64, rate float64) (float64, error) {
	if rate <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidRate, rate)
	}

	mags, err := a.Spectrum(nil, signal)
	if err != nil {
		return 0, err
	}

	peak := 1
	for k := 2; k < len(mags); k++ {
		if mags[k] > mags[peak] {
			peak = k
		}
	}

	offset := 0.0
	if peak > 0 && peak < len(mags)-1 {
		l := math.Log(mags[peak-1] + 1e-300)
		c := math.Log(mags[peak] + 1e-300)
		r := math.Log(mags[peak+1] + 1e-300)

		if d := l - 2*c + r; d != 0 {
			offset = 0.5 * (l - r) / d
		}
	}

	return (float64(peak) + offset) * rate / float64(a.size), nil
}

// hann returns the periodic Hann window of length n, cached between calls.
func (a *Analyzer) hann(n int) []float64 {
	if len(a.window) == n {
		return a.window
	}

	a.window = make([]float64, n)
	a.gain = 0
	for i := range a.window {
		a.window[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n))
		a.gain += a.window[i]
	}
	if a.gain == 0 {
		// a single sample window is all zero
		a.window[0] = 1
		a.gain = 1
	}

	return a.window
}

// SizeFor returns the smallest power of two of at least max(n, 2).
func SizeFor(n int) int {
	if n <= 2 {
		return 2
	}

	return 1 << bits.Len(uint(n-1))
}

// Spectrum is a one shot Analyzer.Spectrum at SizeFor(len(signal)).
func Spectrum(signal []float64) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptySignal
	}

	a, err := NewAnalyzer(SizeFor(len(signal)))
	if err != nil {
		return nil, err
	}

	return a.Spectrum(nil, signal)
}

// DominantFrequency is a one shot Analyzer.DominantFrequency at
// SizeFor(len(signal)).
func DominantFrequency(signal []float64, rate float64) (float64, error) {
	if len(signal) == 0 {
		return 0, ErrEmptySignal
	}

	a, err := NewAnalyzer(SizeFor(len(signal)))
	if err != nil {
		return 0, err
	}

	return a.DominantFrequency(signal, rate)
}
