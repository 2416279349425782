// SPDX-License-Identifier: EPL-2.0

// Package bae is a real-time audio engine built around signal graphs.
//
// Sound is produced sample by sample. Generators emit frames, modifiers
// transform them, and blocks pair one of each. Sounds arrange blocks either
// as a linear chain (sound.Simple) or as a directed graph (sound.Complex)
// and channels mix any number of sounds into output blocks:
//
//	ch := channel.New[sample.Stereo]()
//	sine := sound.NewSimple[sample.Stereo](
//		sound.FromGenerator[sample.Stereo](generators.NewSine[sample.Stereo](440, sample.DefaultRate)),
//		1, 1)
//	sine.AddModifier(modifiers.NewLowPass[sample.Stereo](2000, 0.7, sample.DefaultRate))
//	sine.Register(ch)
//
//	block := ch.Process()
//
// # Packages
//
//   - sample: frame types (Mono, Stereo), tracks and PCM scaling
//   - generators, modifiers: signal sources and processors
//   - sound: blocks, graphs and sounds
//   - channel: mixing and block rendering
//   - audio: streaming decoders, track loading and the resampler
//   - formats/wav, formats/mp3, formats/vorbis, formats/aiff: codecs
//   - analysis: spectra of rendered audio
//   - playback: pull stream for audio devices
//
// # Loading Audio
//
// This package ties the codecs together. LoadTrack picks a decoder by file
// extension and NewWavPlayer turns a file into a generator playing at the
// engine rate:
//
//	player, err := bae.NewWavPlayer[sample.Stereo]("drums.wav", sample.DefaultRate)
//	player.SetLoop(0, 48000)
//
// Set BAE_DEBUG=1 to get debug logs from the engine.
package bae
