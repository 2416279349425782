// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"

	"github.com/ik5/bae/sample"
)

// FormatPCM is the fmt chunk audio format of integer PCM.
const FormatPCM = 1

// Header mirrors the 16 byte fmt subchunk of a RIFF/WAVE file.
type Header struct {
	AudioFormat   uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// NewHeader returns the PCM header for the given layout.
func NewHeader(channels, rate int, depth sample.BitDepth) Header {
	align := channels * depth.Bytes()

	return Header{
		AudioFormat:   FormatPCM,
		Channels:      uint16(channels),
		SampleRate:    uint32(rate),
		ByteRate:      uint32(rate * align),
		BlockAlign:    uint16(align),
		BitsPerSample: uint16(depth),
	}
}

// Depth is the sample width as a sample.BitDepth.
func (h Header) Depth() sample.BitDepth {
	return sample.BitDepth(h.BitsPerSample)
}

// Validate checks that the header describes audio this package can decode.
func (h Header) Validate() error {
	switch {
	case h.Channels == 0 || h.BitsPerSample == 0:
		return fmt.Errorf("%w: %d channels of %d bits", ErrInvalidHeader, h.Channels, h.BitsPerSample)
	case h.SampleRate == 0:
		return fmt.Errorf("%w: %w", ErrInvalidHeader, ErrInvalidSampleRate)
	case h.AudioFormat != FormatPCM:
		return fmt.Errorf("%w: format %d", ErrUnsupportedFormat, h.AudioFormat)
	case !h.Depth().Valid():
		return fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, h.BitsPerSample)
	case h.BlockAlign != 0 && int(h.BlockAlign) != int(h.Channels)*h.Depth().Bytes():
		return fmt.Errorf("%w: block align %d for %d channels of %d bits",
			ErrInvalidHeader, h.BlockAlign, h.Channels, h.BitsPerSample)
	}

	return nil
}
