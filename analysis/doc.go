// SPDX-License-Identifier: EPL-2.0

// Package analysis measures rendered audio in the frequency domain.
//
// Spectra are taken over a periodic Hann window with
// github.com/MeKo-Christian/algo-fft and github.com/cwbudde/algo-vecmath.
// Tracks of any frame type reduce to a mono signal with Track.Mono:
//
//	freq, err := analysis.DominantFrequency(track.Mono(), sample.DefaultRate)
//
// Reuse an Analyzer when measuring many blocks of the same size.
package analysis
