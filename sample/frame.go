// SPDX-License-Identifier: EPL-2.0

package sample

import "math"

// DefaultRate is the engine sample rate in Hz.
const DefaultRate = 48000

// halfPower is the equal-power coefficient, sqrt(1/2).
var halfPower = math.Sqrt(0.5)

// Frame is implemented by every sample format the engine processes. All
// methods are value methods; the zero value of a Frame is silence.
//
// FromMono and FromChannels ignore their receiver and are meant to be called
// on the zero value (see [FromMono]).
type Frame[T any] interface {
	Add(T) T
	Sub(T) T
	// Mul multiplies elementwise.
	Mul(T) T
	Scale(g float64) T
	Neg() T

	// Mono reduces the frame to a single sample.
	Mono() Mono
	FromMono(m Mono) T

	Channels() int
	Channel(i int) float64
	FromChannels(v []float64) T
}

// Zero returns the silent frame of type S.
func Zero[S Frame[S]]() S {
	var z S
	return z
}

// FromMono builds a frame of type S out of a monophonic sample.
func FromMono[S Frame[S]](m Mono) S {
	var z S
	return z.FromMono(m)
}

// Mono is a monophonic sample.
type Mono float64

func (m Mono) Add(o Mono) Mono { return m + o }
func (m Mono) Sub(o Mono) Mono { return m - o }
func (m Mono) Mul(o Mono) Mono { return m * o }
func (m Mono) Scale(g float64) Mono { return Mono(float64(m) * g) }
func (m Mono) Neg() Mono { return -m }
func (m Mono) Mono() Mono { return m }
func (Mono) FromMono(x Mono) Mono { return x }
func (Mono) Channels() int { return 1 }
func (m Mono) Channel(int) float64 { return float64(m) }

// FromChannels folds any number of channels into one using a power
// preserving sum (sum / sqrt(n)). Two channels match Stereo.Mono.
func (Mono) FromChannels(v []float64) Mono {
	switch len(v) {
	case 0:
		return 0
	case 1:
		return Mono(v[0])
	}

	var sum float64
	for _, x := range v {
		sum += x
	}

	return Mono(sum / math.Sqrt(float64(len(v))))
}

// Stereo is a two channel sample.
type Stereo struct {
	Left  float64
	Right float64
}

func (s Stereo) Add(o Stereo) Stereo { return Stereo{s.Left + o.Left, s.Right + o.Right} }
func (s Stereo) Sub(o Stereo) Stereo { return Stereo{s.Left - o.Left, s.Right - o.Right} }
func (s Stereo) Mul(o Stereo) Stereo { return Stereo{s.Left * o.Left, s.Right * o.Right} }
func (s Stereo) Scale(g float64) Stereo {
	return Stereo{s.Left * g, s.Right * g}
}
func (s Stereo) Neg() Stereo { return Stereo{-s.Left, -s.Right} }

// Mono is the half-power sum of both channels.
func (s Stereo) Mono() Mono {
	return Mono((s.Left + s.Right) * halfPower)
}

// FromMono splits m equally in power between both channels.
func (Stereo) FromMono(m Mono) Stereo {
	v := float64(m) * halfPower
	return Stereo{v, v}
}

func (Stereo) Channels() int { return 2 }

func (s Stereo) Channel(i int) float64 {
	if i == 0 {
		return s.Left
	}

	return s.Right
}

// FromChannels takes the first two channels as left and right. A single
// channel is split like FromMono.
func (s Stereo) FromChannels(v []float64) Stereo {
	switch len(v) {
	case 0:
		return Stereo{}
	case 1:
		return s.FromMono(Mono(v[0]))
	}

	return Stereo{v[0], v[1]}
}
