// SPDX-License-Identifier: EPL-2.0

package sound

import "errors"

var (
	ErrUnknownNode    = errors.New("node is not part of the graph")
	ErrIntoInputGain  = errors.New("the input gain cannot have incoming connections")
	ErrFromOutputGain = errors.New("the output gain cannot have outgoing connections")
)
