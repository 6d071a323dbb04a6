// SPDX-License-Identifier: EPL-2.0

// Package crossover combines two parents into a child.
package crossover

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/ik5/gensound/genetics"
	"github.com/ik5/gensound/mutation"
)

var ErrGeneCountMismatch = errors.New("parents have different gene counts")

// CrossOver produces one child from two parents. Every gene of the child
// goes through the mutator with probability p.
type CrossOver interface {
	Name() string
	Perform(rng *rand.Rand, a, b *genetics.Individual, m mutation.Mutator, p float64, pool *genetics.Pool) (*genetics.Individual, error)
}

// UniformZipper takes each gene from a or b with a fair coin flip.
type UniformZipper struct{}

func (UniformZipper) Name() string { return "uniform" }

func (UniformZipper) Perform(rng *rand.Rand, a, b *genetics.Individual, m mutation.Mutator, p float64, pool *genetics.Pool) (*genetics.Individual, error) {
	if len(a.Genes) != len(b.Genes) {
		return nil, fmt.Errorf("%w: %d != %d", ErrGeneCountMismatch, len(a.Genes), len(b.Genes))
	}

	genes := make([]*genetics.Gene, len(a.Genes))
	for i := range genes {
		chosen := a.Genes[i]
		if rng.Intn(2) == 1 {
			chosen = b.Genes[i]
		}

		g, err := m.Mutate(rng, chosen, p, pool)
		if err != nil {
			return nil, fmt.Errorf("gene %d: %w", i, err)
		}
		genes[i] = g
	}

	return genetics.NewIndividual(genes), nil
}
