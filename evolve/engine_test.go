// SPDX-License-Identifier: EPL-2.0

package evolve

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/gensound/genetics"
	"github.com/ik5/gensound/mutation"
	"github.com/ik5/gensound/selection"
	"github.com/ik5/gensound/stats"
)

func sineTarget(n int) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = int16(8000 * math.Sin(2*math.Pi*440*float64(i)/8000))
	}
	return out
}

func testConfig(t *testing.T, population int) Config {
	t.Helper()

	target := sineTarget(400)
	c, err := genetics.NewContext(len(target), 8000, 5, population, genetics.Sinusoid, genetics.Square, genetics.Saw)
	require.NoError(t, err)

	rank, err := selection.NewRank(0.4)
	require.NoError(t, err)
	variance, err := mutation.NewVariance(0.01, 0.1)
	require.NoError(t, err)

	return Config{
		RunID:    "test",
		Target:   target,
		Context:  c,
		Selector: rank,
		Schedule: variance,
		Workers:  4,
		Seed:     42,
	}
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	base := testConfig(t, 10)

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"zero context", func(c *Config) { c.Context = genetics.Context{} }, ErrInvalidContext},
		{"short target", func(c *Config) { c.Target = c.Target[:10] }, ErrTargetLength},
		{"no selector", func(c *Config) { c.Selector = nil }, ErrMissingStrategy},
		{"no schedule", func(c *Config) { c.Schedule = nil }, ErrMissingStrategy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := base
			tt.mutate(&cfg)
			_, err := New(cfg)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEngine_StateTransitions(t *testing.T) {
	t.Parallel()

	eng, err := New(testConfig(t, 10))
	require.NoError(t, err)
	assert.Equal(t, Initializing, eng.State())

	require.NoError(t, eng.Init(context.Background()))
	assert.Equal(t, Evaluating, eng.State())
	assert.Len(t, eng.Population(), 10)

	_, err = eng.Step(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Evaluating, eng.State())
	assert.Equal(t, 1, eng.Generation())
}

func TestEngine_PopulationSizeInvariant(t *testing.T) {
	t.Parallel()

	eng, err := New(testConfig(t, 17))
	require.NoError(t, err)

	for gen := range 15 {
		g, err := eng.Step(context.Background())
		require.NoError(t, err)

		assert.Equal(t, gen, g.Summary.Generation)
		assert.Len(t, g.Ranked, 17)
		assert.Len(t, eng.Population(), 17)
		for _, ind := range eng.Population() {
			require.NotNil(t, ind)
			require.Len(t, ind.Genes, 5)
		}
	}
}

func TestEngine_ElitesCarriedUnchanged(t *testing.T) {
	t.Parallel()

	eng, err := New(testConfig(t, 20))
	require.NoError(t, err)

	for range 10 {
		g, err := eng.Step(context.Background())
		require.NoError(t, err)

		next := eng.Population()
		for i := range g.Elites {
			elite := g.Ranked[i]
			require.Less(t, float64(elite.Fitness), g.Summary.Mean)

			// Same object, same genes
			require.Same(t, elite, next[i])
			for j, gene := range elite.Genes {
				require.Same(t, gene, next[i].Genes[j])
			}
		}

		if g.Elites < len(g.Ranked) {
			assert.GreaterOrEqual(t, float64(g.Ranked[g.Elites].Fitness), g.Summary.Mean)
		}
	}
}

func TestEngine_BestNeverWorsensWithElites(t *testing.T) {
	t.Parallel()

	eng, err := New(testConfig(t, 30))
	require.NoError(t, err)

	prev, err := eng.Step(context.Background())
	require.NoError(t, err)

	for range 20 {
		g, err := eng.Step(context.Background())
		require.NoError(t, err)

		if prev.Elites > 0 {
			assert.LessOrEqual(t, g.Summary.Best, prev.Summary.Best)
		}
		prev = g
	}
}

func TestEngine_ReproducibleAcrossWorkerCounts(t *testing.T) {
	t.Parallel()

	run := func(workers int) []stats.Summary {
		cfg := testConfig(t, 12)
		cfg.Workers = workers
		eng, err := New(cfg)
		require.NoError(t, err)

		var out []stats.Summary
		for range 5 {
			g, err := eng.Step(context.Background())
			require.NoError(t, err)
			out = append(out, g.Summary)
		}
		return out
	}

	assert.Equal(t, run(1), run(8))
}

func TestEngine_RunMaxGenerations(t *testing.T) {
	t.Parallel()

	var seen []int
	cfg := testConfig(t, 10)
	cfg.Stop = MaxGenerations(7)
	cfg.Reporter = ReporterFunc(func(g Generation) {
		seen = append(seen, g.Summary.Generation)
	})

	eng, err := New(cfg)
	require.NoError(t, err)

	res, err := eng.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 7, res.Generations)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, seen)
	assert.Equal(t, Stopped, eng.State())
	require.NotNil(t, res.Best)
	assert.Equal(t, res.Summary.Best, res.Best.Fitness)
	assert.Contains(t, res.Reason, "7 generations")

	_, err = eng.Step(context.Background())
	require.ErrorIs(t, err, ErrStopped)
}

func TestEngine_RunSinkSeesEveryGeneration(t *testing.T) {
	t.Parallel()

	calls := 0
	cfg := testConfig(t, 10)
	cfg.Stop = MaxGenerations(3)
	cfg.Sink = ReporterFunc(func(Generation) { calls++ })

	eng, err := New(cfg)
	require.NoError(t, err)

	_, err = eng.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestEngine_RunCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	cfg := testConfig(t, 10)
	cfg.Reporter = ReporterFunc(func(g Generation) {
		if g.Summary.Generation == 2 {
			cancel()
		}
	})

	eng, err := New(cfg)
	require.NoError(t, err)

	// Cancelling during a step lets that step finish
	res, err := eng.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Generations)
	assert.Equal(t, "cancelled", res.Reason)
}

func TestEngine_RunCancelledBeforeStart(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	eng, err := New(testConfig(t, 10))
	require.NoError(t, err)

	res, err := eng.Run(ctx)
	require.NoError(t, err)
	assert.Zero(t, res.Generations)
	assert.Nil(t, res.Best)
}

type brokenSchedule struct{}

func (brokenSchedule) Name() string { return "broken" }

func (brokenSchedule) Probability(stats.Summary) (float64, error) {
	return 0, mutation.ErrProbabilityOutOfBounds
}

func TestEngine_InvariantViolationIsFatal(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, 10)
	cfg.Schedule = brokenSchedule{}

	eng, err := New(cfg)
	require.NoError(t, err)

	_, err = eng.Run(context.Background())
	require.ErrorIs(t, err, mutation.ErrProbabilityOutOfBounds)
	assert.Equal(t, Stopped, eng.State())
}

type failingSelector struct{ err error }

func (failingSelector) Name() string { return "failing" }

func (f failingSelector) Select(*rand.Rand, genetics.Population) (*genetics.Individual, error) {
	return nil, f.err
}

func TestEngine_TaskFailureFailsGeneration(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	cfg := testConfig(t, 10)
	cfg.Selector = failingSelector{boom}

	eng, err := New(cfg)
	require.NoError(t, err)

	_, err = eng.Step(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Equal(t, Stopped, eng.State())
}

func TestCountElites(t *testing.T) {
	t.Parallel()

	pop := genetics.Population{
		{Fitness: 1}, {Fitness: 2}, {Fitness: 3}, {Fitness: 10},
	}

	assert.Equal(t, 3, countElites(pop, 4))
	assert.Equal(t, 0, countElites(pop, 1))
	assert.Equal(t, 1, countElites(pop, 1.5))
	assert.Equal(t, 0, countElites(genetics.Population{{Fitness: 5}, {Fitness: 5}}, 5))
}

func TestState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "initializing", Initializing.String())
	assert.Equal(t, "evaluating", Evaluating.String())
	assert.Equal(t, "ranking", Ranking.String())
	assert.Equal(t, "reproducing", Reproducing.String())
	assert.Equal(t, "stopped", Stopped.String())
	assert.Equal(t, "unknown", State(99).String())
}

func BenchmarkEngine_Step(b *testing.B) {
	target := sineTarget(8000)
	c, err := genetics.NewContext(len(target), 8000, 10, 100, genetics.Sinusoid, genetics.Square, genetics.Saw)
	if err != nil {
		b.Fatal(err)
	}
	rank, _ := selection.NewRank(0.4)
	variance, _ := mutation.NewVariance(0.01, 0.1)

	eng, err := New(Config{Target: target, Context: c, Selector: rank, Schedule: variance})
	if err != nil {
		b.Fatal(err)
	}

	for b.Loop() {
		if _, err := eng.Step(context.Background()); err != nil {
			b.Fatal(err)
		}
	}
}
