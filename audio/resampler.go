// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"

	"github.com/ik5/bae/sample"
	"github.com/ik5/bae/utils"
)

// Interpolation selects how a Resampler reads between source frames.
type Interpolation int

const (
	// Linear interpolates between the current and the next frame.
	Linear Interpolation = iota
	// Cubic runs a Catmull-Rom spline over four neighbouring frames.
	Cubic
)

// Resampler plays a track recorded at one rate back at the engine rate,
// one frame per Process call. It supports variable playback speed and an
// optional loop window [loopStart, loopEnd).
//
// The track is shared, never copied; Clone returns a player over the same
// data.
type Resampler[S sample.Frame[S]] struct {
	track  sample.Track[S]
	index  float64
	ratio  float64
	speed  float64
	interp Interpolation

	loopStart int
	loopEnd   int

	// per channel interpolation scratch
	chans []float64
}

// NewResampler returns a player for track, recorded at sourceRate, for an
// engine running at engineRate. A non-positive engine rate means
// sample.DefaultRate; a non-positive source rate means the track is already
// at the engine rate.
func NewResampler[S sample.Frame[S]](track sample.Track[S], sourceRate, engineRate float64) *Resampler[S] {
	if math.IsNaN(engineRate) || engineRate <= 0 {
		engineRate = sample.DefaultRate
	}
	if math.IsNaN(sourceRate) || sourceRate <= 0 {
		sourceRate = engineRate
	}

	var zero S

	return &Resampler[S]{
		track: track,
		ratio: sourceRate / engineRate,
		speed: 1,
		chans: make([]float64, zero.Channels()),
	}
}

// MaxPlaybackSpeed bounds SetPlaybackSpeed so the read index stays finite.
const MaxPlaybackSpeed = 1 << 16

// Process returns the frame at the current position and advances by
// ratio times speed. Past the end of a non-looping track it returns silence.
func (r *Resampler[S]) Process() S {
	if r.Done() {
		var zero S
		return zero
	}

	// Done compared the float index, so the conversion below cannot overflow
	i := 0
	if r.index > 0 {
		i = min(int(r.index), len(r.track)-1)
	}
	frac := min(max(r.index-float64(i), 0), 1)

	var out S
	switch r.interp {
	case Cubic:
		out = r.cubic(i, frac)
	default:
		out = r.linear(i, frac)
	}

	r.index += r.ratio * r.speed
	r.wrap()

	return out
}

// next is the frame that follows i, honouring the loop window. Without a
// loop the last frame is held.
func (r *Resampler[S]) next(i int) int {
	switch {
	case r.loopEnd > 0 && i+1 >= r.loopEnd:
		return r.loopStart
	case i+1 >= len(r.track):
		return i
	}

	return i + 1
}

func (r *Resampler[S]) prev(i int) int {
	switch {
	case r.loopEnd > 0 && i == r.loopStart:
		return r.loopEnd - 1
	case i == 0:
		return 0
	}

	return i - 1
}

func (r *Resampler[S]) linear(i int, frac float64) S {
	a, b := r.track[i], r.track[r.next(i)]

	for c := range r.chans {
		r.chans[c] = utils.LinearInterpolate(a.Channel(c), b.Channel(c), frac)
	}

	var zero S
	return zero.FromChannels(r.chans)
}

func (r *Resampler[S]) cubic(i int, frac float64) S {
	i2 := r.next(i)
	y0, y1, y2, y3 := r.track[r.prev(i)], r.track[i], r.track[i2], r.track[r.next(i2)]

	for c := range r.chans {
		r.chans[c] = utils.CubicInterpolate(y0.Channel(c), y1.Channel(c), y2.Channel(c), y3.Channel(c), frac)
	}

	var zero S
	return zero.FromChannels(r.chans)
}

func (r *Resampler[S]) wrap() {
	if r.loopEnd == 0 || r.index < float64(r.loopEnd) {
		return
	}

	start := float64(r.loopStart)
	if math.IsNaN(r.index) || math.IsInf(r.index, 0) {
		r.index = start
		return
	}
	r.index = start + math.Mod(r.index-start, float64(r.loopEnd-r.loopStart))
}

// SetLoop sets the loop window in source frames. end == 0 disables
// looping. Reversed bounds are swapped and end is clamped to the track
// length; a window that collapses to nothing disables looping.
func (r *Resampler[S]) SetLoop(start, end int) {
	if end == 0 {
		r.loopStart, r.loopEnd = 0, 0
		return
	}

	if start > end {
		start, end = end, start
	}
	start = max(start, 0)
	end = min(end, len(r.track))

	if start >= end {
		r.loopStart, r.loopEnd = 0, 0
		return
	}

	r.loopStart, r.loopEnd = start, end
	r.wrap()
}

// Loop returns the loop window; both are zero when looping is off.
func (r *Resampler[S]) Loop() (start, end int) {
	return r.loopStart, r.loopEnd
}

// SetPlaybackSpeed scales the advance per frame. Negative and NaN speeds
// become 0; anything above MaxPlaybackSpeed is clamped to it.
func (r *Resampler[S]) SetPlaybackSpeed(speed float64) {
	if math.IsNaN(speed) || speed < 0 {
		speed = 0
	}
	r.speed = min(speed, MaxPlaybackSpeed)
}

func (r *Resampler[S]) PlaybackSpeed() float64 { return r.speed }

func (r *Resampler[S]) SetInterpolation(i Interpolation) { r.interp = i }

func (r *Resampler[S]) Interpolation() Interpolation { return r.interp }

// Ratio is sourceRate / engineRate.
func (r *Resampler[S]) Ratio() float64 { return r.ratio }

// Position is the fractional read index into the track.
func (r *Resampler[S]) Position() float64 { return r.index }

// Len is the number of frames in the track.
func (r *Resampler[S]) Len() int { return len(r.track) }

// Done reports whether a non-looping player has run off the end.
func (r *Resampler[S]) Done() bool {
	return r.loopEnd == 0 && r.index >= float64(len(r.track))
}

// Reset rewinds to the first frame.
func (r *Resampler[S]) Reset() { r.index = 0 }

// Clone copies the playback state. The track is shared.
func (r *Resampler[S]) Clone() *Resampler[S] {
	c := *r
	c.chans = make([]float64, len(r.chans))

	return &c
}
