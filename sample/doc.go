// SPDX-License-Identifier: EPL-2.0

// Package sample defines the sample formats processed by the engine.
//
// # Frames
//
// Every component is generic over a [Frame] type. Two formats are provided:
//
//	sample.Mono   // one channel
//	sample.Stereo // left and right
//
// Frames are small value types with vector arithmetic:
//
//	y := x.Add(z).Scale(0.5)
//
// The zero value is silence. Conversions between formats are power
// preserving: a stereo frame folds to mono with a half-power sum and a mono
// frame splits with equal power, so the round trip is lossless.
//
// # PCM
//
// [FromPCM] and [ToPCM] map samples to and from signed integer PCM at 8, 16
// and 24 bits with full scales of 128, 2^15 and 2^23.
package sample
