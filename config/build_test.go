// SPDX-License-Identifier: EPL-2.0

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/gensound"
	"github.com/ik5/gensound/crossover"
	"github.com/ik5/gensound/evolve"
	"github.com/ik5/gensound/genetics"
	"github.com/ik5/gensound/mutation"
	"github.com/ik5/gensound/selection"
	"github.com/ik5/gensound/stats"
)

func testTarget() gensound.Target {
	return gensound.Target{Samples: make([]int16, 1000), SampleRate: 8000}
}

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()

	ec, err := Default().Build(testTarget(), "run-1")
	require.NoError(t, err)

	assert.Equal(t, "run-1", ec.RunID)
	assert.Equal(t, 1000, ec.Context.TargetFrameCount())
	assert.Equal(t, 8000, ec.Context.FrameRate())
	assert.Equal(t, 100, ec.Context.PopulationCount())
	assert.Equal(t, []genetics.Waveform{genetics.Sinusoid, genetics.Square, genetics.Saw}, ec.Context.Waveforms())
	assert.IsType(t, &selection.Rank{}, ec.Selector)
	assert.IsType(t, &mutation.Variance{}, ec.Schedule)
	assert.IsType(t, crossover.UniformZipper{}, ec.CrossOver)
	assert.IsType(t, mutation.PointMutator{}, ec.Mutator)
	assert.Nil(t, ec.Stop)

	_, err = evolve.New(ec)
	require.NoError(t, err)
}

func TestBuild_Alternatives(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Selection.Strategy = "cutoff"
	cfg.Mutation.Schedule = "constant"
	cfg.Mutation.Probability = 0.3

	ec, err := cfg.Build(testTarget(), "")
	require.NoError(t, err)

	assert.IsType(t, &selection.Cutoff{}, ec.Selector)
	p, err := ec.Schedule.Probability(stats.Summary{})
	require.NoError(t, err)
	assert.InDelta(t, 0.3, p, 0)
}

func TestBuild_TargetTooShort(t *testing.T) {
	t.Parallel()

	_, err := Default().Build(gensound.Target{Samples: make([]int16, 1), SampleRate: 8000}, "")
	require.ErrorIs(t, err, genetics.ErrTooFewFrames)
}

func TestBuild_UnknownStrategy(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.CrossOver = "two-point"

	_, err := cfg.Build(testTarget(), "")
	require.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestStop_Rule(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Stop{}.Rule())

	threshold := int64(50)
	rule := Stop{MaxGenerations: 10, FitnessAtMost: &threshold, Stagnation: 3}.Rule()
	require.NotNil(t, rule)

	done, _ := rule.Done(evolve.Generation{Summary: stats.Summary{Generation: 0, Best: 100}})
	assert.False(t, done)

	done, reason := rule.Done(evolve.Generation{Summary: stats.Summary{Generation: 1, Best: 40}})
	assert.True(t, done)
	assert.Contains(t, reason, "threshold")

	done, _ = Stop{MaxGenerations: 2}.Rule().Done(evolve.Generation{Summary: stats.Summary{Generation: 1}})
	assert.True(t, done)
}
