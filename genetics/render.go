// SPDX-License-Identifier: EPL-2.0

package genetics

import (
	"fmt"
	"math"

	"github.com/ik5/gensound/utils"
)

// render computes n samples of w. Offset 0 is the first frame of the gene.
func render(w Waveform, n, frameRate int, peak int16, frequency float32) ([]int16, error) {
	out := make([]int16, n)
	rate := float64(frameRate)
	f := float64(frequency)
	p := float64(peak)

	switch w {
	case Sinusoid:
		for i := range out {
			out[i] = utils.RoundInt16(p * math.Sin(2*math.Pi*f*float64(i)/rate))
		}
	case Square:
		for i := range out {
			theta := math.Mod(2*math.Pi*f*float64(i)/rate, 2*math.Pi)
			if theta < math.Pi {
				out[i] = peak
			} else {
				out[i] = -peak
			}
		}
	case Saw:
		period := rate / f
		for i := range out {
			pos := math.Mod(float64(i), period)
			out[i] = utils.RoundInt16(2*p*f*(pos/rate) - p)
		}
	case Triangle:
		for i := range out {
			phase := math.Mod(f*float64(i)/rate, 1)
			out[i] = utils.RoundInt16(p * (1 - 4*math.Abs(phase-0.5)))
		}
	case DC:
		for i := range out {
			out[i] = peak
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedWaveform, w)
	}

	return out, nil
}
