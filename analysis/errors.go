// SPDX-License-Identifier: EPL-2.0

package analysis

import "errors"

var (
	ErrEmptySignal = errors.New("signal has no samples")
	ErrInvalidSize = errors.New("transform size must be a power of two of at least 2")
	ErrInvalidRate = errors.New("sample rate must be positive")
)
