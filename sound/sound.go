// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"github.com/sirupsen/logrus"

	"github.com/ik5/bae/internal/log"
	"github.com/ik5/bae/sample"
)

// Sound is a unit that can be registered with a mixer and produces one
// frame per call.
type Sound[S sample.Frame[S]] interface {
	// Process returns the next output frame for input x.
	Process(x S) S

	TogglePause()
	Paused() bool
	ToggleMute()
	Muted() bool

	// ID returns the registration id, if registered.
	ID() (int, bool)
	// Register hands the sound to r, dropping any previous registration.
	Register(r Registrar[S])
	// Unregister removes the sound from its registrar. It does nothing when
	// the sound is not registered.
	Unregister()
}

// Registrar issues ids to sounds. Channels are registrars.
type Registrar[S sample.Frame[S]] interface {
	AddSound(s Sound[S]) int
	RemoveSound(id int) (Sound[S], bool)
}

// controls holds the state shared by every Sound implementation.
type controls[S sample.Frame[S]] struct {
	paused bool
	muted  bool

	id        int
	registrar Registrar[S]

	logger logrus.FieldLogger
}

func newControls[S sample.Frame[S]]() controls[S] {
	return controls[S]{logger: log.Default()}
}

// TogglePause freezes or resumes the sound. A paused sound returns silence
// and its generators and modifiers do not advance.
func (c *controls[S]) TogglePause() { c.paused = !c.paused }

// Paused reports whether the sound is frozen.
func (c *controls[S]) Paused() bool { return c.paused }

// ToggleMute silences or restores the output. A muted sound keeps
// processing so that it resumes without a discontinuity.
func (c *controls[S]) ToggleMute() { c.muted = !c.muted }

// Muted reports whether the output is silenced.
func (c *controls[S]) Muted() bool { return c.muted }

// ID returns the id the sound was registered under and whether it is
// registered at all.
func (c *controls[S]) ID() (int, bool) {
	return c.id, c.registrar != nil
}

// SetLogger replaces the logger used for registration messages.
func (c *controls[S]) SetLogger(l logrus.FieldLogger) { c.logger = l }

func (c *controls[S]) register(self Sound[S], r Registrar[S]) {
	c.Unregister()

	c.id = r.AddSound(self)
	c.registrar = r

	c.logger.WithField("id", c.id).Debug("sound registered")
}

// Unregister removes the sound from its registrar. It does nothing when the
// sound is not registered.
func (c *controls[S]) Unregister() {
	if c.registrar == nil {
		return
	}

	r, id := c.registrar, c.id
	c.registrar, c.id = nil, 0
	r.RemoveSound(id)

	c.logger.WithField("id", id).Debug("sound unregistered")
}

// detached returns a copy of the flags with no registration.
func (c *controls[S]) detached() controls[S] {
	return controls[S]{paused: c.paused, muted: c.muted, logger: c.logger}
}
