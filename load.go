// SPDX-License-Identifier: EPL-2.0

package bae

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ik5/bae/audio"
	"github.com/ik5/bae/formats/aiff"
	"github.com/ik5/bae/formats/mp3"
	"github.com/ik5/bae/formats/vorbis"
	"github.com/ik5/bae/formats/wav"
	"github.com/ik5/bae/generators"
	"github.com/ik5/bae/internal/log"
	"github.com/ik5/bae/sample"
)

var (
	ErrUnknownFormat = errors.New("no decoder for format")
	ErrEmptyTrack    = errors.New("decoded track has no frames")
)

// DefaultRegistry returns a registry with every bundled decoder, keyed by
// lower case file extension without the dot.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}

// FormatOf returns the registry key for path.
func FormatOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// DecodeTrack decodes r with the default registry's decoder for format and
// returns its frames with their sample rate.
func DecodeTrack[S sample.Frame[S]](r io.Reader, format string) (sample.Track[S], int, error) {
	return decodeWith[S](DefaultRegistry(), r, format)
}

func decodeWith[S sample.Frame[S]](reg *audio.Registry, r io.Reader, format string) (sample.Track[S], int, error) {
	dec, ok := reg.Get(format)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q (have %s)", ErrUnknownFormat, format, strings.Join(reg.Formats(), ", "))
	}

	src, err := dec.Decode(r)
	if err != nil {
		return nil, 0, fmt.Errorf("decoding %s: %w", format, err)
	}
	defer src.Close()

	track, err := audio.ReadTrack[S](src)
	if err != nil {
		return nil, 0, fmt.Errorf("reading %s: %w", format, err)
	}

	return track, src.SampleRate(), nil
}

// LoadTrack reads the audio file at path, choosing the decoder by its
// extension.
func LoadTrack[S sample.Frame[S]](path string) (sample.Track[S], int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}
	defer f.Close()

	track, rate, err := DecodeTrack[S](f, FormatOf(path))
	if err != nil {
		return nil, 0, fmt.Errorf("loading %s: %w", path, err)
	}

	log.Default().WithFields(logrus.Fields{
		"path":   path,
		"rate":   rate,
		"frames": len(track),
	}).Debug("track loaded")

	return track, rate, nil
}

// NewWavPlayer loads the file at path into a generator that plays it at
// engineRate. Nothing is built unless the whole file decodes.
func NewWavPlayer[S sample.Frame[S]](path string, engineRate float64) (*generators.Wav[S], error) {
	track, rate, err := LoadTrack[S](path)
	if err != nil {
		return nil, err
	}
	if len(track) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyTrack, path)
	}

	return generators.NewWav(track, float64(rate), engineRate), nil
}
