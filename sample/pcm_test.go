// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"math"
	"testing"
)

func TestBitDepthFullScale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		depth BitDepth
		want  float64
		valid bool
	}{
		{depth: BitDepth8, want: 128, valid: true},
		{depth: BitDepth16, want: 32768, valid: true},
		{depth: BitDepth24, want: 8388608, valid: true},
		{depth: 32, want: 0, valid: false},
		{depth: 0, want: 0, valid: false},
	}

	for _, tt := range tests {
		if got := tt.depth.FullScale(); got != tt.want {
			t.Errorf("BitDepth(%d).FullScale() = %v, want %v", tt.depth, got, tt.want)
		}
		if got := tt.depth.Valid(); got != tt.valid {
			t.Errorf("BitDepth(%d).Valid() = %v, want %v", tt.depth, got, tt.valid)
		}
	}
}

func TestToPCM(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    float64
		depth BitDepth
		want  int
	}{
		{name: "zero", in: 0, depth: BitDepth16, want: 0},
		{name: "half", in: 0.5, depth: BitDepth16, want: 16384},
		{name: "max clamps", in: 1, depth: BitDepth16, want: math.MaxInt16},
		{name: "min", in: -1, depth: BitDepth16, want: math.MinInt16},
		{name: "over range", in: 3, depth: BitDepth8, want: 127},
		{name: "under range", in: -3, depth: BitDepth24, want: -8388608},
		{name: "rounds", in: 1.6 / 128, depth: BitDepth8, want: 2},
		{name: "unsupported depth", in: 0.5, depth: 12, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ToPCM(tt.in, tt.depth); got != tt.want {
				t.Errorf("ToPCM(%v, %d) = %d, want %d", tt.in, tt.depth, got, tt.want)
			}
		})
	}
}

func TestPCMRoundTrip(t *testing.T) {
	t.Parallel()

	for _, depth := range []BitDepth{BitDepth8, BitDepth16, BitDepth24} {
		step := 1 / depth.FullScale()

		for x := -1.0; x < 1; x += 0.001 {
			got := FromPCM(ToPCM(x, depth), depth)
			if math.Abs(got-x) > step {
				t.Errorf("depth %d: round trip of %v = %v, more than one step off", depth, x, got)
			}
		}
	}
}

func TestToPCM_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = ToPCM(0.5, BitDepth24)
	})

	if allocs > 0 {
		t.Errorf("ToPCM allocated %v times, want 0", allocs)
	}
}
