// SPDX-License-Identifier: EPL-2.0

package config

import (
	"fmt"

	"github.com/ik5/gensound"
	"github.com/ik5/gensound/crossover"
	"github.com/ik5/gensound/evolve"
	"github.com/ik5/gensound/genetics"
	"github.com/ik5/gensound/mutation"
	"github.com/ik5/gensound/selection"
)

func parseWaveforms(names []string) ([]genetics.Waveform, error) {
	out := make([]genetics.Waveform, 0, len(names))
	for _, name := range names {
		w, err := genetics.ParseWaveform(name)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}

	return out, nil
}

// Selector builds the configured parent selector.
func (s Selection) Selector() (selection.Selector, error) {
	var (
		sel selection.Selector
		err error
	)

	switch s.Strategy {
	case "rank":
		sel, err = selection.NewRank(s.Bias)
	case "cutoff":
		sel, err = selection.NewCutoff(s.Cutoff)
	default:
		return nil, fmt.Errorf("%w: selection %q", ErrUnknownStrategy, s.Strategy)
	}
	if err != nil {
		return nil, err
	}

	return sel, nil
}

// Scheduler builds the configured mutation probability schedule.
func (m Mutation) Scheduler() (mutation.Schedule, error) {
	var (
		sched mutation.Schedule
		err   error
	)

	switch m.Schedule {
	case "variance":
		sched, err = mutation.NewVariance(m.Min, m.Max)
	case "constant":
		sched, err = mutation.NewConstant(m.Probability)
	default:
		return nil, fmt.Errorf("%w: mutation schedule %q", ErrUnknownStrategy, m.Schedule)
	}
	if err != nil {
		return nil, err
	}

	return sched, nil
}

// Rule combines the enabled stopping rules, nil when none is.
func (s Stop) Rule() evolve.StopRule {
	var rules []evolve.StopRule
	if s.MaxGenerations > 0 {
		rules = append(rules, evolve.MaxGenerations(s.MaxGenerations))
	}
	if s.FitnessAtMost != nil {
		rules = append(rules, evolve.FitnessAtMost(*s.FitnessAtMost))
	}
	if s.Stagnation > 0 {
		rules = append(rules, evolve.NewStagnation(s.Stagnation))
	}

	switch len(rules) {
	case 0:
		return nil
	case 1:
		return rules[0]
	default:
		return evolve.AnyOf(rules...)
	}
}

func crossOver(name string) (crossover.CrossOver, error) {
	switch name {
	case "uniform":
		return crossover.UniformZipper{}, nil
	default:
		return nil, fmt.Errorf("%w: crossover %q", ErrUnknownStrategy, name)
	}
}

// Build turns the configuration into the engine configuration for target.
// Reporters, the sink and the logger are left for the caller to wire.
func (c Config) Build(target gensound.Target, runID string) (evolve.Config, error) {
	waveforms, err := parseWaveforms(c.Waveforms)
	if err != nil {
		return evolve.Config{}, err
	}

	run, err := genetics.NewContext(len(target.Samples), target.SampleRate, c.Genes, c.Population, waveforms...)
	if err != nil {
		return evolve.Config{}, fmt.Errorf("run context: %w", err)
	}

	sel, err := c.Selection.Selector()
	if err != nil {
		return evolve.Config{}, err
	}

	sched, err := c.Mutation.Scheduler()
	if err != nil {
		return evolve.Config{}, err
	}

	co, err := crossOver(c.CrossOver)
	if err != nil {
		return evolve.Config{}, err
	}

	return evolve.Config{
		RunID:     runID,
		Target:    target.Samples,
		Context:   run,
		Selector:  sel,
		CrossOver: co,
		Mutator:   mutation.PointMutator{},
		Schedule:  sched,
		Workers:   c.Workers,
		Seed:      c.Seed,
		Stop:      c.Stop.Rule(),
	}, nil
}
