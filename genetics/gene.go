// SPDX-License-Identifier: EPL-2.0

package genetics

import (
	"fmt"
	"math"
)

// FrameRange is a closed interval of sample indices.
type FrameRange struct {
	Start int
	End   int
}

// Len is the number of frames covered, End-Start+1.
func (r FrameRange) Len() int {
	return r.End - r.Start + 1
}

func (r FrameRange) String() string {
	return fmt.Sprintf("[%d, %d]", r.Start, r.End)
}

func (r FrameRange) valid() bool {
	return r.Start >= 0 && r.End >= r.Start
}

// Gene is one waveform segment. Its samples are rendered once by NewGene;
// a Gene is never modified afterwards, the With methods return a new one.
type Gene struct {
	waveform   Waveform
	frameRange FrameRange
	frameRate  int
	peak       int16
	frequency  float32

	samples []int16
}

// NewGene validates the parameters and renders the gene.
func NewGene(w Waveform, r FrameRange, frameRate int, peak int16, frequency float32) (*Gene, error) {
	if !w.Renderable() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedWaveform, w)
	}
	if !r.valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFrameRange, r)
	}
	if frameRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFrameRate, frameRate)
	}
	if peak < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAmplitude, peak)
	}
	f := float64(frequency)
	if !(f > 0) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFrequency, frequency)
	}

	samples, err := render(w, r.Len(), frameRate, peak, frequency)
	if err != nil {
		return nil, err
	}

	return &Gene{
		waveform:   w,
		frameRange: r,
		frameRate:  frameRate,
		peak:       peak,
		frequency:  frequency,
		samples:    samples,
	}, nil
}

func (g *Gene) Waveform() Waveform   { return g.waveform }
func (g *Gene) Range() FrameRange    { return g.frameRange }
func (g *Gene) FrameRate() int       { return g.frameRate }
func (g *Gene) PeakAmplitude() int16 { return g.peak }
func (g *Gene) Frequency() float32   { return g.frequency }

// Samples returns the rendered waveform. The slice is shared and must not
// be modified.
func (g *Gene) Samples() []int16 { return g.samples }

func (g *Gene) WithWaveform(w Waveform) (*Gene, error) {
	return NewGene(w, g.frameRange, g.frameRate, g.peak, g.frequency)
}

func (g *Gene) WithRange(r FrameRange) (*Gene, error) {
	return NewGene(g.waveform, r, g.frameRate, g.peak, g.frequency)
}

func (g *Gene) WithPeakAmplitude(peak int16) (*Gene, error) {
	return NewGene(g.waveform, g.frameRange, g.frameRate, peak, g.frequency)
}

func (g *Gene) WithFrequency(frequency float32) (*Gene, error) {
	return NewGene(g.waveform, g.frameRange, g.frameRate, g.peak, frequency)
}

// Equal reports whether both genes have the same parameters.
func (g *Gene) Equal(o *Gene) bool {
	if g == o {
		return true
	}
	if g == nil || o == nil {
		return false
	}

	return g.waveform == o.waveform &&
		g.frameRange == o.frameRange &&
		g.frameRate == o.frameRate &&
		g.peak == o.peak &&
		g.frequency == o.frequency
}

func (g *Gene) String() string {
	return fmt.Sprintf("%s %s %.3fHz peak=%d", g.waveform, g.frameRange, g.frequency, g.peak)
}
