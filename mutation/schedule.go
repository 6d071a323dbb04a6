// SPDX-License-Identifier: EPL-2.0

package mutation

import (
	"fmt"
	"math"

	"github.com/ik5/gensound/stats"
)

// Schedule yields the mutation probability of a generation.
type Schedule interface {
	Name() string
	Probability(s stats.Summary) (float64, error)
}

func unitInterval(v float64) bool {
	return v >= 0 && v <= 1
}

// Constant always returns the same probability.
type Constant struct {
	p float64
}

func NewConstant(p float64) (*Constant, error) {
	if !unitInterval(p) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProbability, p)
	}

	return &Constant{p: p}, nil
}

func (*Constant) Name() string { return "constant" }

func (c *Constant) Probability(stats.Summary) (float64, error) { return c.p, nil }

// roundingSlack absorbs float rounding of the interpolation at the bounds.
const roundingSlack = 1e-12

// Variance maps the coefficient of variation of the population fitness
// onto [min, max]: a converged population (cv near 0) mutates at max, a
// diverse one (cv of 100% or more) at min.
type Variance struct {
	min float64
	max float64
}

func NewVariance(minP, maxP float64) (*Variance, error) {
	if !unitInterval(minP) || !unitInterval(maxP) || maxP < minP {
		return nil, fmt.Errorf("%w: min %v, max %v", ErrInvalidBounds, minP, maxP)
	}

	return &Variance{min: minP, max: maxP}, nil
}

func (*Variance) Name() string { return "variance" }

func (v *Variance) Min() float64 { return v.min }
func (v *Variance) Max() float64 { return v.max }

func (v *Variance) Probability(s stats.Summary) (float64, error) {
	cv := s.CV
	if math.IsNaN(cv) {
		return 0, fmt.Errorf("%w: cv is NaN", ErrProbabilityOutOfBounds)
	}
	cv = min(max(cv, 0), 100)

	p := v.min + (v.max-v.min)*(1-cv/100)
	if math.IsNaN(p) || p < v.min-roundingSlack || p > v.max+roundingSlack {
		return 0, fmt.Errorf("%w: %v not in [%v, %v]", ErrProbabilityOutOfBounds, p, v.min, v.max)
	}

	return min(max(p, v.min), v.max), nil
}
