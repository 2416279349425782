// SPDX-License-Identifier: EPL-2.0

// Package audio connects decoded audio to the engine.
//
// This package contains:
//   - Source interface for streaming decoded PCM
//   - Format registry for decoder registration
//   - MonoMixer for channel mixing
//   - ReadTrack to load a Source into memory as frames
//   - Resampler to play a track back at the engine rate
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float64) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All decoders in the formats tree implement this interface. Samples are
// interleaved float64 values in [-1.0, 1.0].
//
// # Loading Tracks
//
// ReadTrack drains a Source into a sample.Track, converting every frame
// with FromChannels:
//
//	src, _ := wav.Decoder{}.Decode(f)
//	track, err := audio.ReadTrack[sample.Stereo](src)
//
// # Resampling
//
// Resampler reads a track recorded at any rate one engine sample at a time:
//
//	r := audio.NewResampler(track, 44100, sample.DefaultRate)
//	r.SetLoop(0, len(track))
//	r.SetPlaybackSpeed(0.5)
//	for range n {
//	    s := r.Process()
//	}
//
// Linear interpolation is the default. Cubic selects a Catmull-Rom spline.
// Process never allocates.
//
// # Channel Mixing
//
// The MonoMixer converts multi-channel audio to mono by averaging:
//
//	mono := audio.NewMonoMixer(source)
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// # Error Handling
//
// Sources return io.EOF when no more data is available:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // Process n samples from buf
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
