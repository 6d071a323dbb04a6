// SPDX-License-Identifier: EPL-2.0

// Package evolve drives the generations of a run.
//
// Each Step walks through the states Evaluating, Ranking and Reproducing:
//   - every individual without a fitness is rendered and scored on the
//     worker pool
//   - the population is sorted best first and summarized, and the mutation
//     schedule turns the summary into this generation's probability
//   - reporters and the sink observe the ranked generation
//   - individuals strictly fitter than the mean are carried over as they
//     are, every other slot gets the child of two selected parents
//
// Work inside a step is spread over at most Config.Workers goroutines,
// each with its own random source seeded from the engine. The result of a
// run therefore only depends on Config.Seed.
//
// Run loops until the StopRule fires or the context is cancelled:
//
//	eng, err := evolve.New(evolve.Config{
//	    Target:   target.Samples,
//	    Context:  runCtx,
//	    Selector: rank,
//	    Schedule: variance,
//	    Stop:     evolve.AnyOf(evolve.MaxGenerations(500), evolve.NewStagnation(50)),
//	})
//	res, err := eng.Run(ctx)
package evolve
