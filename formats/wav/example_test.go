// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/bae/formats/wav"
	"github.com/ik5/bae/sample"
)

// Example_roundTrip writes a short stereo track and reads it back.
func Example_roundTrip() {
	dir, err := os.MkdirTemp("", "wav-example")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "clip.wav")

	out, err := os.Create(path)
	if err != nil {
		fmt.Println(err)
		return
	}

	track := sample.Track[sample.Stereo]{{Left: 0.5, Right: -0.5}, {Left: 0.25, Right: 0}}
	if err := wav.WriteTrack(out, track, 16000, sample.BitDepth16); err != nil {
		fmt.Println(err)
		return
	}
	out.Close()

	in, err := os.Open(path)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer in.Close()

	got, header, err := wav.ReadTrack[sample.Stereo](in)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%d Hz, %d channels, %d bits\n", header.SampleRate, header.Channels, header.BitsPerSample)
	fmt.Printf("%d frames, first %.2f/%.2f\n", len(got), got[0].Left, got[0].Right)
	// Output:
	// 16000 Hz, 2 channels, 16 bits
	// 2 frames, first 0.50/-0.50
}
