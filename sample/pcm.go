// SPDX-License-Identifier: EPL-2.0

package sample

import "math"

// BitDepth is the width of an integer PCM sample.
type BitDepth int

const (
	BitDepth8  BitDepth = 8
	BitDepth16 BitDepth = 16
	BitDepth24 BitDepth = 24
)

// Valid reports whether b is one of the supported PCM widths.
func (b BitDepth) Valid() bool {
	return b == BitDepth8 || b == BitDepth16 || b == BitDepth24
}

// FullScale is the magnitude that maps to 1.0. Unsupported depths return 0.
func (b BitDepth) FullScale() float64 {
	switch b {
	case BitDepth8:
		return 128
	case BitDepth16:
		return 1 << 15
	case BitDepth24:
		return 1 << 23
	}

	return 0
}

// Bytes is the number of bytes one sample occupies on the wire.
func (b BitDepth) Bytes() int {
	return int(b) / 8
}

// FromPCM converts a signed PCM value to a sample.
func FromPCM(v int, depth BitDepth) float64 {
	fs := depth.FullScale()
	if fs == 0 {
		return 0
	}

	return float64(v) / fs
}

// ToPCM converts a sample to a signed PCM value, rounding to the nearest step
// and clamping to [-fs, fs-1].
func ToPCM(s float64, depth BitDepth) int {
	fs := depth.FullScale()
	if fs == 0 {
		return 0
	}

	v := math.Round(s * fs)
	if v > fs-1 {
		v = fs - 1
	} else if v < -fs {
		v = -fs
	}

	return int(v)
}
