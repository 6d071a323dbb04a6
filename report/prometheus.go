// SPDX-License-Identifier: EPL-2.0

package report

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ik5/gensound/evolve"
)

const (
	metricsNamespace = "gensound"
	metricsSubsystem = "evolution"
)

// Prometheus exposes the statistics of the latest generation.
type Prometheus struct {
	Generation          prometheus.Gauge
	BestFitness         prometheus.Gauge
	WorstFitness        prometheus.Gauge
	MeanFitness         prometheus.Gauge
	FitnessStdDev       prometheus.Gauge
	FitnessCV           prometheus.Gauge
	MutationProbability prometheus.Gauge
	Elites              prometheus.Gauge
	GenerationsTotal    prometheus.Counter
	StepSeconds         prometheus.Histogram
}

// NewPrometheus registers the metrics with reg, labelled with runID. A nil
// reg creates unregistered metrics.
func NewPrometheus(reg prometheus.Registerer, runID string) *Prometheus {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"run_id": runID}

	gauge := func(name, help string) prometheus.Gauge {
		return factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Subsystem:   metricsSubsystem,
			Name:        name,
			Help:        help,
			ConstLabels: labels,
		})
	}

	return &Prometheus{
		Generation:          gauge("generation", "Index of the latest evaluated generation."),
		BestFitness:         gauge("best_fitness", "Fitness of the fittest individual, lower is better."),
		WorstFitness:        gauge("worst_fitness", "Fitness of the least fit individual."),
		MeanFitness:         gauge("mean_fitness", "Mean fitness of the population."),
		FitnessStdDev:       gauge("fitness_stddev", "Sample standard deviation of the population fitness."),
		FitnessCV:           gauge("fitness_cv_percent", "Coefficient of variation of the population fitness in percent."),
		MutationProbability: gauge("mutation_probability", "Mutation probability used to breed the next generation."),
		Elites:              gauge("elites", "Individuals carried over unchanged."),
		GenerationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Subsystem:   metricsSubsystem,
			Name:        "generations_total",
			Help:        "Generations evaluated so far.",
			ConstLabels: labels,
		}),
		StepSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   metricsNamespace,
			Subsystem:   metricsSubsystem,
			Name:        "step_seconds",
			Help:        "Time spent evaluating and ranking one generation.",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(0.001, 2, 16),
		}),
	}
}

func (p *Prometheus) Report(g evolve.Generation) {
	s := g.Summary

	p.Generation.Set(float64(s.Generation))
	p.BestFitness.Set(float64(s.Best))
	p.WorstFitness.Set(float64(s.Worst))
	p.MeanFitness.Set(s.Mean)
	p.FitnessStdDev.Set(s.StdDev)
	p.FitnessCV.Set(s.CV)
	p.MutationProbability.Set(g.Probability)
	p.Elites.Set(float64(g.Elites))
	p.GenerationsTotal.Inc()
	p.StepSeconds.Observe(g.StepTime.Seconds())
}
