// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize  = errors.New("dst size must be multiple of channels")
	ErrInvalidChannels = errors.New("source reports an invalid channel count")
	ErrPartialFrame    = errors.New("stream ended inside a frame")
)
