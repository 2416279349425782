// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile          = errors.New("not a WAV file")
	ErrInvalidHeader       = errors.New("malformed WAV fmt chunk")
	ErrUnsupportedFormat   = errors.New("only integer PCM WAV is supported")
	ErrUnsupportedBitDepth = errors.New("unsupported PCM bit depth")
	ErrInvalidSampleRate   = errors.New("sample rate must be positive")
)
