// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/gensound/audio"
	"github.com/ik5/gensound/internal/audiotest"
)

type exampleDecoder struct{}

func (exampleDecoder) Decode(io.Reader) (audio.Source, error) {
	return audiotest.NewSilentSource(8000, 1, 8), nil
}

// Example_registry demonstrates looking up a decoder by file extension.
func Example_registry() {
	registry := audio.NewRegistry()
	registry.Register("wav", exampleDecoder{})

	_, ok := registry.Get(".WAV")
	fmt.Println("found:", ok)
	fmt.Println("formats:", registry.Formats())
	// Output:
	// found: true
	// formats: [wav]
}

// Example_validate demonstrates rejecting unsupported input before use.
func Example_validate() {
	mono := audiotest.NewSineSource(44100, 100, 440, 1000)
	stereo := audiotest.NewSilentSource(44100, 2, 100)

	fmt.Println("mono:", audio.Validate(mono))

	err := audio.Validate(stereo)
	fmt.Println("stereo rejected:", errors.Is(err, audio.ErrNotMono))
	fmt.Println(err)
	// Output:
	// mono: <nil>
	// stereo rejected: true
	// only a single audio channel (mono) is supported, found: 2 channels
}
