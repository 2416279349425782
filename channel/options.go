// SPDX-License-Identifier: EPL-2.0

package channel

import (
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultProcessTime is the length of the block rendered by Process.
const DefaultProcessTime = 10 * time.Millisecond

type Option func(*options)

type options struct {
	rate        float64
	processTime time.Duration
	gain        float64
	logger      logrus.FieldLogger
}

// WithSampleRate sets the engine rate. Non-positive rates are ignored.
func WithSampleRate(rate float64) Option {
	return func(o *options) {
		if rate > 0 {
			o.rate = rate
		}
	}
}

// WithProcessTime sets how much audio each Process call renders.
func WithProcessTime(d time.Duration) Option {
	return func(o *options) {
		o.processTime = max(d, 0)
	}
}

// WithGain sets the initial channel gain.
func WithGain(g float64) Option {
	return func(o *options) {
		o.gain = g
	}
}

// WithLogger replaces the shared logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
