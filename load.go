// SPDX-License-Identifier: EPL-2.0

package gensound

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ik5/gensound/audio"
	"github.com/ik5/gensound/formats/aiff"
	"github.com/ik5/gensound/formats/wav"
)

// readChunk is the size of the buffer used by ReadAll.
const readChunk = 4096

// Target is the signal the evolution approximates.
type Target struct {
	Samples    []int16
	SampleRate int
}

// DefaultRegistry returns a registry with every built-in decoder.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aifc", aiff.Decoder{})

	return reg
}

// LoadTarget opens path, picks a decoder by its extension and returns the
// validated samples. A nil registry means DefaultRegistry.
func LoadTarget(path string, reg *audio.Registry) (Target, error) {
	if reg == nil {
		reg = DefaultRegistry()
	}

	ext := filepath.Ext(path)
	dec, ok := reg.Get(ext)
	if !ok {
		return Target{}, fmt.Errorf("%w: %q", audio.ErrUnknownFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return Target{}, fmt.Errorf("opening target: %w", err)
	}
	defer f.Close()

	target, err := DecodeTarget(dec, f)
	if err != nil {
		return Target{}, fmt.Errorf("%s: %w", path, err)
	}

	return target, nil
}

// DecodeTarget decodes r with dec, rejects anything that is not mono
// 16-bit PCM and collects every sample.
func DecodeTarget(dec audio.Decoder, r io.Reader) (Target, error) {
	src, err := dec.Decode(r)
	if err != nil {
		return Target{}, fmt.Errorf("%w", err)
	}
	defer src.Close()

	if err := audio.Validate(src); err != nil {
		return Target{}, err
	}

	samples, err := ReadAll(src)
	if err != nil {
		return Target{}, err
	}

	return Target{Samples: samples, SampleRate: src.SampleRate()}, nil
}

// ReadAll reads src until io.EOF.
func ReadAll(src audio.Source) ([]int16, error) {
	// Start with about a second of audio and grow if needed
	out := make([]int16, 0, max(src.SampleRate(), readChunk))
	buf := make([]int16, readChunk)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			if cap(out)-len(out) < n {
				// Grow by at least n samples, or double capacity
				grown := make([]int16, len(out), len(out)+max(n, cap(out)))
				copy(grown, out)
				out = grown
			}
			out = append(out, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
	}

	return out, nil
}
