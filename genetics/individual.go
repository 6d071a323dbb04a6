// SPDX-License-Identifier: EPL-2.0

package genetics

import (
	"cmp"
	"math"
	"slices"
)

// Unevaluated is the fitness of an individual that was never scored. It is
// the worst possible score.
const Unevaluated int64 = math.MaxInt64

// Individual is one candidate solution. Fitness is lower-is-better.
type Individual struct {
	Genes   []*Gene
	Fitness int64
}

// NewIndividual wraps genes in an unevaluated individual.
func NewIndividual(genes []*Gene) *Individual {
	return &Individual{Genes: genes, Fitness: Unevaluated}
}

// Population is the full set of individuals of one generation.
type Population []*Individual

// SortByFitness orders the population best (lowest) first. Ties keep their
// relative order.
func (p Population) SortByFitness() {
	slices.SortStableFunc(p, func(a, b *Individual) int {
		return cmp.Compare(a.Fitness, b.Fitness)
	})
}

// Fitnesses returns the fitness of every individual, in order.
func (p Population) Fitnesses() []int64 {
	out := make([]int64, len(p))
	for i, ind := range p {
		out[i] = ind.Fitness
	}

	return out
}
