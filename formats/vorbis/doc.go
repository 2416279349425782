// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files through github.com/jfreymuth/oggvorbis.
//
// Samples are interleaved in the stream's own channel order and rate:
//
//	source, err := vorbis.Decoder{}.Decode(file)
//	track, err := audio.ReadTrack[sample.Stereo](source)
//
// Encoding is not supported.
package vorbis
