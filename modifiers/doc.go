// SPDX-License-Identifier: EPL-2.0

// Package modifiers holds signal processors: units that turn one input
// frame into one output frame per engine sample.
//
// # Filters
//
// LowPass and HighPass are 3rd order Butterworth designs with a resonance
// control in [0, 1]. Cutoff frequencies are clamped to the Nyquist
// frequency of the rate the filter was built for.
//
// # Time based
//
// Delay shifts the signal by a whole number of samples. Echo feeds its
// output back after a delay. Both preallocate their buffers, so Process
// never allocates.
//
// # Envelopes
//
// ADSR shapes the amplitude of a note; Envelope follows the amplitude of
// its input.
package modifiers
