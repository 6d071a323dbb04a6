// SPDX-License-Identifier: EPL-2.0

package evolve

// State is the phase the engine is in.
type State int

const (
	Initializing State = iota
	Evaluating
	Ranking
	Reproducing
	Stopped
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Evaluating:
		return "evaluating"
	case Ranking:
		return "ranking"
	case Reproducing:
		return "reproducing"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}
