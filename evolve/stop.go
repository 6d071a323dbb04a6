// SPDX-License-Identifier: EPL-2.0

package evolve

import "fmt"

// StopRule decides after each generation whether the run is over. The
// returned reason ends up in the logs.
type StopRule interface {
	Done(g Generation) (bool, string)
}

// StopFunc adapts a function to StopRule.
type StopFunc func(g Generation) (bool, string)

func (f StopFunc) Done(g Generation) (bool, string) { return f(g) }

// MaxGenerations stops once n generations have been evaluated.
func MaxGenerations(n int) StopRule {
	return StopFunc(func(g Generation) (bool, string) {
		if g.Summary.Generation+1 >= n {
			return true, fmt.Sprintf("reached %d generations", n)
		}
		return false, ""
	})
}

// FitnessAtMost stops once the best fitness is at or below threshold.
func FitnessAtMost(threshold int64) StopRule {
	return StopFunc(func(g Generation) (bool, string) {
		if g.Summary.Best <= threshold {
			return true, fmt.Sprintf("best fitness %d reached threshold %d", g.Summary.Best, threshold)
		}
		return false, ""
	})
}

// Stagnation stops when the best fitness has not improved for n
// consecutive generations. It keeps state and belongs to a single run.
type Stagnation struct {
	limit int

	seen  bool
	best  int64
	since int
}

func NewStagnation(n int) *Stagnation {
	return &Stagnation{limit: n}
}

func (s *Stagnation) Done(g Generation) (bool, string) {
	if !s.seen || g.Summary.Best < s.best {
		s.seen = true
		s.best = g.Summary.Best
		s.since = 0
		return false, ""
	}

	s.since++
	if s.since >= s.limit {
		return true, fmt.Sprintf("no improvement for %d generations", s.since)
	}

	return false, ""
}

// AnyOf stops as soon as one of rules does. Every rule sees every
// generation so stateful rules stay in step.
func AnyOf(rules ...StopRule) StopRule {
	return StopFunc(func(g Generation) (bool, string) {
		done, reason := false, ""
		for _, r := range rules {
			if r == nil {
				continue
			}
			if d, why := r.Done(g); d && !done {
				done, reason = true, why
			}
		}
		return done, reason
	})
}
