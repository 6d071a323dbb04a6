// SPDX-License-Identifier: EPL-2.0

package genetics

import (
	"fmt"
	"slices"
)

// Context is the immutable configuration of one run.
type Context struct {
	targetFrameCount int
	frameRate        int
	geneCount        int
	populationCount  int
	waveforms        []Waveform
}

// NewContext validates the run parameters. Duplicate waveforms are dropped,
// the first occurrence keeps its position.
func NewContext(targetFrameCount, frameRate, geneCount, populationCount int, waveforms ...Waveform) (Context, error) {
	if targetFrameCount < 2 {
		return Context{}, fmt.Errorf("%w: %d", ErrTooFewFrames, targetFrameCount)
	}
	if frameRate <= 0 {
		return Context{}, fmt.Errorf("%w: %d", ErrInvalidFrameRate, frameRate)
	}
	if geneCount < 1 {
		return Context{}, fmt.Errorf("%w: gene count %d", ErrInvalidCount, geneCount)
	}
	if populationCount < 2 {
		return Context{}, fmt.Errorf("%w: population count %d", ErrInvalidCount, populationCount)
	}
	if len(waveforms) == 0 {
		return Context{}, ErrNoWaveforms
	}

	set := make([]Waveform, 0, len(waveforms))
	for _, w := range waveforms {
		if !w.Renderable() {
			return Context{}, fmt.Errorf("%w: %s", ErrUnsupportedWaveform, w)
		}
		if !slices.Contains(set, w) {
			set = append(set, w)
		}
	}

	return Context{
		targetFrameCount: targetFrameCount,
		frameRate:        frameRate,
		geneCount:        geneCount,
		populationCount:  populationCount,
		waveforms:        set,
	}, nil
}

func (c Context) TargetFrameCount() int { return c.targetFrameCount }
func (c Context) FrameRate() int        { return c.frameRate }
func (c Context) GeneCount() int        { return c.geneCount }
func (c Context) PopulationCount() int  { return c.populationCount }

// Waveforms returns a copy of the supported waveform types.
func (c Context) Waveforms() []Waveform { return slices.Clone(c.waveforms) }

// Supports reports whether w is one of the supported waveform types.
func (c Context) Supports(w Waveform) bool { return slices.Contains(c.waveforms, w) }
