// SPDX-License-Identifier: EPL-2.0

package generators

import "github.com/ik5/bae/sample"

// Generator produces one frame per call with no input. Its state advances
// exactly once per Process call.
type Generator[S sample.Frame[S]] interface {
	Process() S
	// Clone returns an independent copy carrying the current state. Read
	// only data such as wavetables and tracks stays shared.
	Clone() Generator[S]
}

// Zero is the silent generator.
type Zero[S sample.Frame[S]] struct{}

func NewZero[S sample.Frame[S]]() Zero[S] { return Zero[S]{} }

func (Zero[S]) Process() S {
	var z S
	return z
}

func (z Zero[S]) Clone() Generator[S] { return z }
