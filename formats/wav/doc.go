// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files through github.com/go-audio/wav.
//
// # Supported Formats
//
//   - Integer PCM at 8, 16 and 24 bits (8 bit samples are unsigned on the wire)
//   - Any number of channels
//   - Any sample rate
//
// Samples map linearly between PCM and [-1.0, 1.0]: sample = pcm / full
// scale on the way in and pcm = round(sample * full scale), clamped, on
// the way out. Full scale is 128, 2^15 and 2^23 for the three depths.
//
// # Decoding WAV Files
//
// Decoder streams a file as an audio.Source:
//
//	source, err := wav.Decoder{}.Decode(file)
//
// ReadTrack loads a whole file into frames and returns its fmt chunk:
//
//	track, header, err := wav.ReadTrack[sample.Stereo](file)
//
// # Writing WAV Files
//
// WriteTrack encodes a track. The destination must be seekable:
//
//	f, _ := os.Create("out.wav")
//	err := wav.WriteTrack(f, track, 48000, sample.BitDepth16)
//
// # Error Handling
//
//   - ErrNotWavFile: the input has no RIFF/WAVE header
//   - ErrInvalidHeader: the fmt chunk is missing or inconsistent
//   - ErrUnsupportedFormat: the data is not integer PCM
//   - ErrUnsupportedBitDepth: the depth is not 8, 16 or 24 bits
//
// A data chunk that ends inside a frame fails ReadTrack with
// audio.ErrPartialFrame.
package wav
