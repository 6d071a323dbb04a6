// SPDX-License-Identifier: EPL-2.0

// Package stats summarizes the fitness distribution of a generation.
package stats

import (
	"errors"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

var ErrEmpty = errors.New("no fitness values to summarize")

// Summary describes one generation. Lower fitness is better, so Best is
// the minimum and Worst the maximum.
type Summary struct {
	Generation int
	Count      int
	Best       int64
	Worst      int64
	Mean       float64
	// StdDev is the sample standard deviation.
	StdDev float64
	// CV is the coefficient of variation in percent, StdDev/Mean*100.
	// It is 0 when Mean is 0.
	CV float64
}

// Summarize computes the statistics of fitnesses.
func Summarize(generation int, fitnesses []int64) (Summary, error) {
	if len(fitnesses) == 0 {
		return Summary{}, ErrEmpty
	}

	xs := make([]float64, len(fitnesses))
	for i, f := range fitnesses {
		xs[i] = float64(f)
	}

	s := Summary{
		Generation: generation,
		Count:      len(fitnesses),
		Best:       slices.Min(fitnesses),
		Worst:      slices.Max(fitnesses),
	}

	if len(xs) == 1 {
		s.Mean = xs[0]
	} else {
		s.Mean, s.StdDev = stat.MeanStdDev(xs, nil)
	}

	s.CV = CoefficientOfVariation(s.Mean, s.StdDev)

	return s, nil
}

// CoefficientOfVariation returns sd/mean in percent, or 0 for a zero or
// non-finite mean.
func CoefficientOfVariation(mean, sd float64) float64 {
	if mean == 0 || math.IsNaN(mean) || math.IsInf(mean, 0) {
		return 0
	}

	return sd / mean * 100
}
