// SPDX-License-Identifier: EPL-2.0

package modifiers

import (
	"time"

	"github.com/ik5/bae/sample"
	"github.com/ik5/bae/utils"
)

// Stage is the phase an ADSR envelope is in.
type Stage int

const (
	Attack Stage = iota
	Decay
	Sustain
	Release
	Stopped
)

func (s Stage) String() string {
	switch s {
	case Attack:
		return "attack"
	case Decay:
		return "decay"
	case Sustain:
		return "sustain"
	case Release:
		return "release"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// ADSR applies a linear attack-decay-sustain-release envelope. The
// envelope holds at the sustain level until Release is called.
type ADSR[S sample.Frame[S]] struct {
	attack  float64 // gain step per sample
	decay   float64
	sustain float64 // linear level
	release float64

	stage Stage
	gain  float64
}

// NewADSR builds an envelope. sustain is in dB and clamped to at most 0.
func NewADSR[S sample.Frame[S]](attack, decay time.Duration, sustain float64, release time.Duration, rate float64) *ADSR[S] {
	if rate <= 0 {
		rate = sample.DefaultRate
	}

	level := utils.DBToLinear(min(sustain, 0))
	steps := func(d time.Duration) float64 {
		return float64(max(utils.DurationToSamples(d, rate), 1))
	}

	return &ADSR[S]{
		attack:  1 / steps(attack),
		decay:   (level - 1) / steps(decay),
		sustain: level,
		release: -level / steps(release),
	}
}

func (m *ADSR[S]) Process(x S) S {
	switch m.stage {
	case Attack:
		m.gain += m.attack
		if m.gain >= 1 {
			m.gain = 1
			m.stage = Decay
		}
	case Decay:
		m.gain += m.decay
		if m.gain <= m.sustain {
			m.gain = m.sustain
			m.stage = Sustain
		}
	case Release:
		m.gain += m.release
		if m.gain <= 0 {
			m.gain = 0
			m.stage = Stopped
		}
	case Stopped:
		var z S
		return z
	}

	return x.Scale(m.gain)
}

// Release moves the envelope to its release stage.
func (m *ADSR[S]) Release() {
	if m.stage != Stopped {
		m.stage = Release
	}
}

// Retrigger restarts the envelope from silence.
func (m *ADSR[S]) Retrigger() {
	m.stage = Attack
	m.gain = 0
}

func (m *ADSR[S]) Stage() Stage { return m.stage }

func (m *ADSR[S]) Clone() Modifier[S] {
	c := *m
	return &c
}
