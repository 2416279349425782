// SPDX-License-Identifier: EPL-2.0

package main

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ik5/bae/generators"
	"github.com/ik5/bae/modifiers"
	"github.com/ik5/bae/sample"
	"github.com/ik5/bae/sound"
)

type stereo = sample.Stereo

// demoPatch builds the graph both render and play use: a sine and a
// detuned sawtooth mixed into a low pass filter, shaped by an envelope and
// fed through an echo.
//
//	sine ----\
//	          lowpass -> adsr -> echo -> out
//	saw -> gain
// The returned node is the envelope block; release it to end the note.
func demoPatch(freq, rate float64, length time.Duration, logger logrus.FieldLogger) (*sound.Complex[stereo], sound.Node, error) {
	patch := sound.NewComplex[stereo](1, 0.8)
	patch.SetLogger(logger)

	sine := patch.AddBlock(sound.FromGenerator[stereo](generators.NewSine[stereo](freq, rate)))
	saw := patch.AddBlock(sound.FromGenerator[stereo](generators.NewSawtooth[stereo](freq*1.5, rate)))
	sawGain := patch.AddBlock(sound.FromModifier[stereo](modifiers.NewGain[stereo](0.3)))
	filter := patch.AddBlock(sound.FromModifier[stereo](modifiers.NewLowPass[stereo](freq*4, 0.8, rate)))

	shape := patch.AddBlock(sound.FromModifier[stereo](modifiers.NewADSR[stereo](length/20, length/10, -6, length/4, rate)))
	echo := patch.AddBlock(sound.FromModifier[stereo](modifiers.NewEcho[stereo](length/8, 0.4, rate)))

	for _, e := range [][2]sound.Node{
		{sine, filter},
		{saw, sawGain},
		{sawGain, filter},
		{filter, shape},
		{shape, echo},
		{echo, patch.OutputNode()},
	} {
		if err := patch.AddConnection(e[0], e[1]); err != nil {
			return nil, 0, err
		}
	}

	return patch, shape, nil
}

// release moves the envelope at node into its release stage.
func release(patch *sound.Complex[stereo], node sound.Node) error {
	return patch.Modify(node, func(b *sound.Block[stereo]) {
		if env, ok := b.Modifier().(*modifiers.ADSR[stereo]); ok {
			env.Release()
		}
	})
}
