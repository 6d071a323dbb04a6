// SPDX-License-Identifier: EPL-2.0

package genetics

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/ik5/gensound/internal/workpool"
)

// Pool draws random genes, individuals and populations within the bounds
// of a Context. It holds no mutable state; every method takes the random
// source so concurrent callers each bring their own.
type Pool struct {
	run Context
}

func NewPool(run Context) *Pool {
	return &Pool{run: run}
}

func (p *Pool) Context() Context { return p.run }

// RandomFrameRange picks a start in [0, last) and an end in [start, last),
// last being the final frame index of the target.
func (p *Pool) RandomFrameRange(rng *rand.Rand) FrameRange {
	last := p.run.targetFrameCount - 1
	start := rng.Intn(last)
	end := start + rng.Intn(last-start)

	return FrameRange{Start: start, End: end}
}

// RandomPeakAmplitude is uniform in [0, 32767].
func (p *Pool) RandomPeakAmplitude(rng *rand.Rand) int16 {
	return int16(rng.Intn(math.MaxInt16 + 1))
}

// RandomFrequency picks a note and then either shifts it up by a random
// number of octaves or multiplies it by a random harmonic.
func (p *Pool) RandomFrequency(rng *rand.Rand) float32 {
	note := noteFrequencies[rng.Intn(len(noteFrequencies))]

	if rng.Intn(2) == 0 {
		return note * float32(int(1)<<rng.Intn(octaves))
	}

	return note * float32(rng.Intn(harmonics)+1)
}

func (p *Pool) RandomWaveform(rng *rand.Rand) Waveform {
	return p.run.waveforms[rng.Intn(len(p.run.waveforms))]
}

// maxRedraws bounds the rejection loops of the Other draws before they
// fall back to a deterministic neighbour.
const maxRedraws = 32

// CanChangeRange reports whether the target admits more than one frame
// range.
func (p *Pool) CanChangeRange() bool { return p.run.targetFrameCount > 2 }

// CanChangeWaveform reports whether the run has more than one waveform.
func (p *Pool) CanChangeWaveform() bool { return len(p.run.waveforms) > 1 }

// OtherFrameRange draws a frame range different from cur. When the target
// admits a single range, cur is returned.
func (p *Pool) OtherFrameRange(rng *rand.Rand, cur FrameRange) FrameRange {
	if !p.CanChangeRange() {
		return cur
	}

	for range maxRedraws {
		if r := p.RandomFrameRange(rng); r != cur {
			return r
		}
	}

	last := p.run.targetFrameCount - 2
	switch {
	case cur.End > cur.Start:
		return FrameRange{Start: cur.Start, End: cur.End - 1}
	case cur.End < last:
		return FrameRange{Start: cur.Start, End: cur.End + 1}
	default:
		return FrameRange{Start: cur.Start - 1, End: cur.End}
	}
}

// OtherPeakAmplitude is uniform over [0, 32767] without cur.
func (p *Pool) OtherPeakAmplitude(rng *rand.Rand, cur int16) int16 {
	v := int16(rng.Intn(math.MaxInt16))
	if cur >= 0 && v >= cur {
		v++
	}

	return v
}

// OtherFrequency draws a frequency different from cur.
func (p *Pool) OtherFrequency(rng *rand.Rand, cur float32) float32 {
	for range maxRedraws {
		if f := p.RandomFrequency(rng); f != cur {
			return f
		}
	}

	if noteFrequencies[0] != cur {
		return noteFrequencies[0]
	}

	return noteFrequencies[1]
}

// OtherWaveform picks uniformly among the run's waveforms other than cur.
// With a single waveform, cur is returned.
func (p *Pool) OtherWaveform(rng *rand.Rand, cur Waveform) Waveform {
	others := make([]Waveform, 0, len(p.run.waveforms))
	for _, w := range p.run.waveforms {
		if w != cur {
			others = append(others, w)
		}
	}
	if len(others) == 0 {
		return cur
	}

	return others[rng.Intn(len(others))]
}

func (p *Pool) NewGene(rng *rand.Rand) (*Gene, error) {
	return NewGene(
		p.RandomWaveform(rng),
		p.RandomFrameRange(rng),
		p.run.frameRate,
		p.RandomPeakAmplitude(rng),
		p.RandomFrequency(rng),
	)
}

func (p *Pool) NewIndividual(rng *rand.Rand) (*Individual, error) {
	genes := make([]*Gene, p.run.geneCount)
	for i := range genes {
		g, err := p.NewGene(rng)
		if err != nil {
			return nil, fmt.Errorf("gene %d: %w", i, err)
		}
		genes[i] = g
	}

	return NewIndividual(genes), nil
}

// NewPopulation builds PopulationCount individuals on at most workers
// goroutines. One seed per individual is drawn from rng up front, so the
// result only depends on rng and not on scheduling.
func (p *Pool) NewPopulation(ctx context.Context, rng *rand.Rand, workers int) (Population, error) {
	seeds := make([]int64, p.run.populationCount)
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	pop := make(Population, len(seeds))
	err := workpool.Run(ctx, workers, len(seeds), func(_ context.Context, i int) error {
		ind, err := p.NewIndividual(rand.New(rand.NewSource(seeds[i])))
		if err != nil {
			return err
		}
		pop[i] = ind
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("creating population: %w", err)
	}

	return pop, nil
}
