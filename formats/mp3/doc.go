// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files through github.com/hajimehoshi/go-mp3.
//
// The decoder always yields interleaved stereo at the stream's own sample
// rate, as float64 values in [-1.0, 1.0]:
//
//	source, err := mp3.Decoder{}.Decode(file)
//
// Load a whole file into frames with audio.ReadTrack, then play it at the
// engine rate through an audio.Resampler:
//
//	track, err := audio.ReadTrack[sample.Stereo](source)
//	player := audio.NewResampler(track, float64(source.SampleRate()), 48000)
//
// Encoding is not supported.
package mp3
