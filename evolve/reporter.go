// SPDX-License-Identifier: EPL-2.0

package evolve

import (
	"time"

	"github.com/ik5/gensound/genetics"
	"github.com/ik5/gensound/stats"
)

// Generation is what the engine knows about one evaluated and ranked
// generation. Ranked is sorted best first and must be treated as read-only.
type Generation struct {
	RunID       string
	Summary     stats.Summary
	Probability float64
	Elites      int
	Ranked      genetics.Population
	Elapsed     time.Duration
	// StepTime covers evaluation and ranking.
	StepTime time.Duration
}

// Best is the fittest individual of the generation.
func (g Generation) Best() *genetics.Individual { return g.Ranked[0] }

// Worst is the least fit individual of the generation.
func (g Generation) Worst() *genetics.Individual { return g.Ranked[len(g.Ranked)-1] }

// Reporter observes generations. It must not modify them and its failures
// never affect the run.
type Reporter interface {
	Report(g Generation)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(g Generation)

func (f ReporterFunc) Report(g Generation) { f(g) }
