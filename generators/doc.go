// SPDX-License-Identifier: EPL-2.0

// Package generators holds signal sources: units that produce one frame per
// engine sample without any input.
//
// Every generator is generic over the frame type and is built for a sample
// rate:
//
//	sine := generators.NewSine[sample.Stereo](440, sample.DefaultRate)
//	s := sine.Process()
//
// Periodic generators emit a monophonic waveform in [-1, 1] which is
// expanded to the frame type with sample.FromMono. Sine shares one
// wavetable per sample rate between all its instances.
//
// Clone keeps the current phase, so a cloned generator continues from where
// the original was.
package generators
