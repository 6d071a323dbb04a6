// SPDX-License-Identifier: EPL-2.0

package genetics

import (
	"fmt"
	"strings"
)

// Waveform is the shape a gene renders.
type Waveform int

const (
	Sinusoid Waveform = iota
	Square
	Saw
	Triangle
	Noise
	DC
)

var waveformNames = [...]string{
	Sinusoid: "sinusoid",
	Square:   "square",
	Saw:      "saw",
	Triangle: "triangle",
	Noise:    "noise",
	DC:       "dc",
}

func (w Waveform) String() string {
	if w < 0 || int(w) >= len(waveformNames) {
		return fmt.Sprintf("waveform(%d)", int(w))
	}

	return waveformNames[w]
}

// Renderable reports whether samples of w are a pure function of the gene
// parameters. Noise is not.
func (w Waveform) Renderable() bool {
	switch w {
	case Sinusoid, Square, Saw, Triangle, DC:
		return true
	default:
		return false
	}
}

// ParseWaveform is the inverse of Waveform.String. It is case insensitive.
func ParseWaveform(s string) (Waveform, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range waveformNames {
		if n == name {
			return Waveform(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedWaveform, s)
}
