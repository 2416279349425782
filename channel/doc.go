// SPDX-License-Identifier: EPL-2.0

// Package channel mixes sounds.
//
// A Channel is a sound.Registrar: sounds join it with Register and leave
// with Unregister. Every Process call renders a block of frames, ten
// milliseconds by default:
//
//	ch := channel.New[sample.Stereo](channel.WithGain(0.5))
//	s.Register(ch)
//	block := ch.Process()
//
// Sounds are summed in the order of their ids, so mixes are reproducible.
// Channels are not safe for concurrent use.
package channel
