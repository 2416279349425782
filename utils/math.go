// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"time"
)

// Lerp maps x from the line through (x1, y1) and (x2, y2).
func Lerp(x, x1, x2, y1, y2 float64) float64 {
	return ((y2-y1)/(x2-x1))*(x-x1) + y1
}

// Clamp limits x to [lo, hi]. Reversed bounds are swapped.
func Clamp(x, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}

	return min(max(x, lo), hi)
}

// Clerp is Lerp with x clamped to the range between x1 and x2 first.
func Clerp(x, x1, x2, y1, y2 float64) float64 {
	return Lerp(Clamp(x, x1, x2), x1, x2, y1, y2)
}

// LinearToDB converts a linear gain to dBFS.
func LinearToDB(g float64) float64 {
	return 20 * math.Log10(g)
}

// DBToLinear converts dBFS to a linear gain.
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// DurationToSamples converts d to a sample count at rate, rounded to the
// nearest sample. Negative durations yield 0.
func DurationToSamples(d time.Duration, rate float64) int {
	if d <= 0 || rate <= 0 {
		return 0
	}

	return int(math.Round(d.Seconds() * rate))
}

// SamplesToDuration converts a sample count at rate to a duration.
func SamplesToDuration(n int, rate float64) time.Duration {
	if rate <= 0 {
		return 0
	}

	return time.Duration(float64(n) / rate * float64(time.Second))
}

// Normalize removes the DC offset from samples and scales them in place so the
// peak sits at db dBFS. Silent input is left untouched.
func Normalize(db float64, samples []float64) {
	if len(samples) == 0 {
		return
	}

	var dc float64
	for _, s := range samples {
		dc += s
	}
	dc /= float64(len(samples))

	var peak float64
	for _, s := range samples {
		peak = max(peak, math.Abs(s-dc))
	}

	if peak == 0 {
		return
	}

	factor := DBToLinear(db) / peak
	for i, s := range samples {
		samples[i] = (s - dc) * factor
	}
}
