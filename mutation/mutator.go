// SPDX-License-Identifier: EPL-2.0

// Package mutation perturbs genes and schedules how often it happens.
package mutation

import (
	"fmt"
	"math/rand"

	"github.com/ik5/gensound/genetics"
)

// Mutator decides, with probability p, to replace one parameter of a gene
// by a fresh value from the pool.
type Mutator interface {
	Mutate(rng *rand.Rand, g *genetics.Gene, p float64, pool *genetics.Pool) (*genetics.Gene, error)
}

type param int

const (
	paramFrequency param = iota
	paramRange
	paramPeak
	paramWaveform
)

// PointMutator changes a single parameter per mutation.
type PointMutator struct{}

// Mutate draws one float. Below p, one of frequency, frame range, peak
// amplitude and waveform is replaced by a different value and the new gene
// is returned; every other parameter is kept. The frame range takes part
// only when the target admits more than one, the waveform only when the run
// supports more than one. Otherwise g itself is returned.
//
// A gene whose waveform the run does not support is an invariant violation
// and fails with genetics.ErrUnsupportedWaveform.
func (PointMutator) Mutate(rng *rand.Rand, g *genetics.Gene, p float64, pool *genetics.Pool) (*genetics.Gene, error) {
	run := pool.Context()
	if !run.Supports(g.Waveform()) {
		return nil, fmt.Errorf("mutating %s: %w", g, genetics.ErrUnsupportedWaveform)
	}

	if rng.Float64() >= p {
		return g, nil
	}

	params := make([]param, 0, 4)
	params = append(params, paramFrequency)
	if pool.CanChangeRange() {
		params = append(params, paramRange)
	}
	params = append(params, paramPeak)
	if pool.CanChangeWaveform() {
		params = append(params, paramWaveform)
	}

	var (
		out *genetics.Gene
		err error
	)
	switch params[rng.Intn(len(params))] {
	case paramFrequency:
		out, err = g.WithFrequency(pool.OtherFrequency(rng, g.Frequency()))
	case paramRange:
		out, err = g.WithRange(pool.OtherFrameRange(rng, g.Range()))
	case paramPeak:
		out, err = g.WithPeakAmplitude(pool.OtherPeakAmplitude(rng, g.PeakAmplitude()))
	case paramWaveform:
		out, err = g.WithWaveform(pool.OtherWaveform(rng, g.Waveform()))
	}
	if err != nil {
		return nil, fmt.Errorf("mutating %s: %w", g, err)
	}

	return out, nil
}
