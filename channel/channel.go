// SPDX-License-Identifier: EPL-2.0

package channel

import (
	"slices"
	"sort"
	"time"

	"github.com/rs/xid"
	"github.com/sirupsen/logrus"

	"github.com/ik5/bae/internal/log"
	"github.com/ik5/bae/sample"
	"github.com/ik5/bae/sound"
)

type entry[S sample.Frame[S]] struct {
	id    int
	sound sound.Sound[S]
}

// Channel mixes registered sounds into blocks of output frames.
type Channel[S sample.Frame[S]] struct {
	name   string
	rate   float64
	gain   float64
	logger logrus.FieldLogger

	// registered sounds sorted by id
	sounds []entry[S]
	nextID int

	processTime time.Duration
	output      sample.Track[S]
}

// New returns an empty channel with unity gain rendering
// DefaultProcessTime per Process call at sample.DefaultRate.
func New[S sample.Frame[S]](opts ...Option) *Channel[S] {
	o := options{
		rate:        sample.DefaultRate,
		processTime: DefaultProcessTime,
		gain:        1,
		logger:      log.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	name := xid.New().String()

	c := &Channel[S]{
		name:   name,
		rate:   o.rate,
		gain:   o.gain,
		logger: o.logger.WithField("channel", name),
	}
	c.SetProcessTime(o.processTime)

	return c
}

// Name is a unique identifier of the channel, used in log fields.
func (c *Channel[S]) Name() string { return c.name }

// SampleRate is the rate Process renders at.
func (c *Channel[S]) SampleRate() float64 { return c.rate }

// AddSound registers s under a fresh id. Ids are never reused. A sound
// that is already in the channel keeps its id and is not added twice.
func (c *Channel[S]) AddSound(s sound.Sound[S]) int {
	for _, e := range c.sounds {
		if e.sound == s {
			return e.id
		}
	}

	c.nextID++
	c.sounds = append(c.sounds, entry[S]{id: c.nextID, sound: s})

	c.logger.WithField("id", c.nextID).Debug("sound added")

	return c.nextID
}

// RemoveSound drops the sound registered under id and returns it. Unknown
// ids return nil and false.
func (c *Channel[S]) RemoveSound(id int) (sound.Sound[S], bool) {
	i, ok := c.find(id)
	if !ok {
		return nil, false
	}

	s := c.sounds[i].sound
	c.sounds = slices.Delete(c.sounds, i, i+1)

	c.logger.WithField("id", id).Debug("sound removed")

	return s, true
}

func (c *Channel[S]) find(id int) (int, bool) {
	i := sort.Search(len(c.sounds), func(i int) bool { return c.sounds[i].id >= id })
	return i, i < len(c.sounds) && c.sounds[i].id == id
}

// Sound returns the sound registered under id.
func (c *Channel[S]) Sound(id int) (sound.Sound[S], bool) {
	i, ok := c.find(id)
	if !ok {
		return nil, false
	}
	return c.sounds[i].sound, true
}

// IDs lists the registered ids in ascending order.
func (c *Channel[S]) IDs() []int {
	ids := make([]int, len(c.sounds))
	for i, e := range c.sounds {
		ids[i] = e.id
	}
	return ids
}

// Len is the number of registered sounds.
func (c *Channel[S]) Len() int { return len(c.sounds) }

// SetGain sets the factor applied to the mix of all sounds.
func (c *Channel[S]) SetGain(g float64) { c.gain = g }

// Gain returns the mix factor.
func (c *Channel[S]) Gain() float64 { return c.gain }

// SetProcessTime changes how much audio Process renders. The output buffer
// is resized here, never in Process.
func (c *Channel[S]) SetProcessTime(d time.Duration) {
	c.processTime = max(d, 0)

	n := int(c.processTime.Seconds() * c.rate)
	if cap(c.output) >= n {
		c.output = c.output[:n]
		return
	}
	c.output = make(sample.Track[S], n)
}

// ProcessTime is the duration of audio one Process call renders.
func (c *Channel[S]) ProcessTime() time.Duration { return c.processTime }

// Process renders one block: for every frame the output of every sound,
// fed with silence, is summed in id order and scaled by the channel gain.
// The returned track is reused by the next call.
func (c *Channel[S]) Process() sample.Track[S] {
	var zero S

	for i := range c.output {
		acc := zero
		for _, e := range c.sounds {
			acc = acc.Add(e.sound.Process(zero))
		}
		c.output[i] = acc.Scale(c.gain)
	}

	return c.output
}

// ProcessFor sets the process time to d and renders one block.
func (c *Channel[S]) ProcessFor(d time.Duration) sample.Track[S] {
	if d != c.processTime {
		c.SetProcessTime(d)
	}
	return c.Process()
}

// Output returns the block rendered by the last Process call.
func (c *Channel[S]) Output() sample.Track[S] { return c.output }
