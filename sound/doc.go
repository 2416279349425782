// SPDX-License-Identifier: EPL-2.0

// Package sound implements the signal flow engine: Blocks, the Graph that
// connects them and the two Sound variants built on top.
//
// # Blocks
//
// A Block pairs a generator and a modifier with an Interactor that combines
// their outputs. Inputs primed into a block are summed and fed to the
// modifier on the next Process call, after which they are cleared.
//
// # Graphs
//
// A Graph owns its Blocks in an arena and addresses them by Node handles:
//
//	g := sound.NewGraph[sample.Stereo](1, 1)
//	osc := g.AddBlock(sound.FromGenerator[sample.Stereo](generators.NewSine[sample.Stereo](440, rate)))
//	lp := g.AddBlock(sound.FromModifier[sample.Stereo](modifiers.NewLowPass[sample.Stereo](800, 0.2, rate)))
//	_ = g.AddConnection(osc, lp)
//	_ = g.AddConnection(lp, g.OutputNode())
//
// Every topology change recomputes the process order with a topological
// sort. The input gain is always processed first and the output gain last.
// Connections that close a cycle are reported by Feedback; their
// contribution arrives one sample late.
//
// # Sounds
//
// Complex wraps a Graph. Simple is a source Block followed by a linear chain
// of modifiers. Both support pause, which freezes all state, and mute,
// which keeps processing but outputs silence. Sounds are registered with a
// Registrar, usually a channel, which hands out their ids.
//
// Nothing in this package is safe for concurrent use; processing and
// topology or registration changes must be serialized by the caller.
package sound
