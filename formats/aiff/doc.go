// SPDX-License-Identifier: EPL-2.0

// Package aiff reads and writes PCM AIFF files through github.com/go-audio/aiff.
//
// Samples are big endian signed integers at 8, 16 or 24 bits and are
// scaled by the same full scale values as the wav package. Inputs that are
// not seekable are buffered in memory first.
//
//	source, err := aiff.Decoder{}.Decode(file)
//	track, rate, err := aiff.ReadTrack[sample.Mono](file)
//	err = aiff.WriteTrack(out, track, rate, sample.BitDepth16)
package aiff
