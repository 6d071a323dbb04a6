// SPDX-License-Identifier: EPL-2.0

// Package selection picks parents from a population sorted best first.
package selection

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/ik5/gensound/genetics"
)

// Selector chooses one parent from ranked, which must be sorted ascending
// by fitness. Implementations are stateless and safe for concurrent use as
// long as every caller brings its own rng.
type Selector interface {
	Name() string
	Select(rng *rand.Rand, ranked genetics.Population) (*genetics.Individual, error)
}

func unitInterval(v float64) bool {
	return v >= 0 && v <= 1
}

func checkInput(rng *rand.Rand, ranked genetics.Population) error {
	if rng == nil {
		return ErrNoRandomSource
	}
	if len(ranked) == 0 {
		return ErrEmptyPopulation
	}

	return nil
}

// Cutoff picks uniformly among the best max(2, floor(n*cutoff)) individuals.
type Cutoff struct {
	cutoff float64
}

func NewCutoff(cutoff float64) (*Cutoff, error) {
	if !unitInterval(cutoff) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCutoff, cutoff)
	}

	return &Cutoff{cutoff: cutoff}, nil
}

func (*Cutoff) Name() string { return "cutoff" }

// Window is the number of eligible individuals in a population of n.
func (s *Cutoff) Window(n int) int {
	w := max(2, int(math.Floor(float64(n)*s.cutoff)))
	return min(w, n)
}

func (s *Cutoff) Select(rng *rand.Rand, ranked genetics.Population) (*genetics.Individual, error) {
	if err := checkInput(rng, ranked); err != nil {
		return nil, err
	}

	return ranked[rng.Intn(s.Window(len(ranked)))], nil
}

// Rank favors better individuals linearly. Only ranks up to
// floor((n-1)*bias) are eligible; within them rank r is picked with a
// weight that decreases by one per rank.
type Rank struct {
	bias float64
}

func NewRank(bias float64) (*Rank, error) {
	if !unitInterval(bias) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBias, bias)
	}

	return &Rank{bias: bias}, nil
}

func (*Rank) Name() string { return "rank" }

// LastRank is the worst eligible rank in a population of n.
func (s *Rank) LastRank(n int) int {
	return int(math.Floor(float64(n-1) * s.bias))
}

func triangular(k int64) int64 {
	return k * (k + 1) / 2
}

func (s *Rank) Select(rng *rand.Rand, ranked genetics.Population) (*genetics.Individual, error) {
	if err := checkInput(rng, ranked); err != nil {
		return nil, err
	}

	last := int64(s.LastRank(len(ranked)))
	roll := rng.Int63n(triangular(last) + 1)

	for i := int64(0); i <= last; i++ {
		if roll <= triangular(i) {
			return ranked[last-i], nil
		}
	}

	// roll <= triangular(last) always matches above
	return ranked[0], nil
}
