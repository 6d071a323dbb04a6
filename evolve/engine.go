// SPDX-License-Identifier: EPL-2.0

package evolve

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"slices"
	"time"

	"github.com/ik5/gensound/crossover"
	"github.com/ik5/gensound/express"
	"github.com/ik5/gensound/fitness"
	"github.com/ik5/gensound/genetics"
	"github.com/ik5/gensound/internal/workpool"
	"github.com/ik5/gensound/mutation"
	"github.com/ik5/gensound/selection"
	"github.com/ik5/gensound/stats"
)

// Config wires the strategies of a run. Fitness, CrossOver and Mutator
// default to AmplitudeDiff, UniformZipper and PointMutator.
type Config struct {
	RunID   string
	Target  []int16
	Context genetics.Context

	Fitness   fitness.Function
	Selector  selection.Selector
	CrossOver crossover.CrossOver
	Mutator   mutation.Mutator
	Schedule  mutation.Schedule

	// Workers bounds the goroutines per step, GOMAXPROCS when not positive.
	Workers int
	Seed    int64

	// Stop ends Run. A nil rule runs until the context is cancelled.
	Stop StopRule

	Reporter Reporter
	// Sink persists rendered audio.
	Sink Reporter

	Logger *slog.Logger
}

// Engine runs the generation loop. It is not safe for concurrent use.
type Engine struct {
	cfg      Config
	pool     *genetics.Pool
	renderer *express.Renderer
	rng      *rand.Rand
	logger   *slog.Logger

	state      State
	generation int
	population genetics.Population
	last       *Generation
	started    time.Time
}

// Result describes a finished run.
type Result struct {
	Generations int
	Best        *genetics.Individual
	Summary     stats.Summary
	Reason      string
}

func New(cfg Config) (*Engine, error) {
	if cfg.Context.PopulationCount() == 0 {
		return nil, ErrInvalidContext
	}
	if len(cfg.Target) != cfg.Context.TargetFrameCount() {
		return nil, fmt.Errorf("%w: %d != %d", ErrTargetLength, len(cfg.Target), cfg.Context.TargetFrameCount())
	}
	if cfg.Selector == nil {
		return nil, fmt.Errorf("%w: selector", ErrMissingStrategy)
	}
	if cfg.Schedule == nil {
		return nil, fmt.Errorf("%w: mutation schedule", ErrMissingStrategy)
	}
	if cfg.Fitness == nil {
		cfg.Fitness = fitness.AmplitudeDiff{}
	}
	if cfg.CrossOver == nil {
		cfg.CrossOver = crossover.UniformZipper{}
	}
	if cfg.Mutator == nil {
		cfg.Mutator = mutation.PointMutator{}
	}

	renderer, err := express.NewRenderer(cfg.Target)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.RunID != "" {
		logger = logger.With("run_id", cfg.RunID)
	}

	return &Engine{
		cfg:      cfg,
		pool:     genetics.NewPool(cfg.Context),
		renderer: renderer,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		logger:   logger,
		state:    Initializing,
	}, nil
}

func (e *Engine) State() State { return e.state }

// Generation is the index of the next generation to be evaluated.
func (e *Engine) Generation() int { return e.generation }

// Population returns a copy of the current population.
func (e *Engine) Population() genetics.Population { return slices.Clone(e.population) }

// Renderer is the renderer used for evaluation.
func (e *Engine) Renderer() *express.Renderer { return e.renderer }

// Init creates the first population.
func (e *Engine) Init(ctx context.Context) error {
	if e.state != Initializing {
		return nil
	}

	e.started = time.Now()
	pop, err := e.pool.NewPopulation(ctx, e.rng, e.cfg.Workers)
	if err != nil {
		return err
	}

	e.population = pop
	e.state = Evaluating
	e.logger.Debug("population created",
		"population", len(pop),
		"genes", e.cfg.Context.GeneCount(),
	)

	return nil
}

// Step evaluates, ranks and reports the current generation and breeds the
// next one. A step is never interrupted half way: cancelling ctx only
// prevents Init from starting. Any error is fatal and stops the engine.
func (e *Engine) Step(ctx context.Context) (Generation, error) {
	if e.state == Stopped {
		return Generation{}, ErrStopped
	}
	if err := e.Init(ctx); err != nil {
		return Generation{}, err
	}

	g, next, err := e.step(context.WithoutCancel(ctx))
	if err != nil {
		e.state = Stopped
		return Generation{}, fmt.Errorf("generation %d: %w", e.generation, err)
	}

	e.population = next
	e.generation++
	e.last = &g
	e.state = Evaluating

	return g, nil
}

func (e *Engine) step(ctx context.Context) (Generation, genetics.Population, error) {
	stepStart := time.Now()

	e.state = Evaluating
	if err := e.evaluate(ctx); err != nil {
		return Generation{}, nil, err
	}

	e.state = Ranking
	ranked := e.population
	ranked.SortByFitness()

	summary, err := stats.Summarize(e.generation, ranked.Fitnesses())
	if err != nil {
		return Generation{}, nil, err
	}

	p, err := e.cfg.Schedule.Probability(summary)
	if err != nil {
		return Generation{}, nil, err
	}

	elites := countElites(ranked, summary.Mean)

	g := Generation{
		RunID:       e.cfg.RunID,
		Summary:     summary,
		Probability: p,
		Elites:      elites,
		Ranked:      slices.Clone(ranked),
		Elapsed:     time.Since(e.started),
		StepTime:    time.Since(stepStart),
	}
	e.report(g)

	e.state = Reproducing
	next, err := e.reproduce(ctx, ranked, elites, p)
	if err != nil {
		return Generation{}, nil, err
	}

	return g, next, nil
}

// Run steps until the stop rule fires or ctx is cancelled. Cancellation is
// a normal end of the run and is not returned as an error.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	var reason string

	for {
		if err := ctx.Err(); err != nil {
			reason = "cancelled"
			break
		}

		g, err := e.Step(ctx)
		if err != nil {
			return e.result(reason), err
		}

		if e.cfg.Stop != nil {
			if done, why := e.cfg.Stop.Done(g); done {
				reason = why
				break
			}
		}
	}

	e.state = Stopped
	res := e.result(reason)
	e.logger.Info("evolution stopped",
		"reason", reason,
		"generation", res.Generations,
		"best", res.Summary.Best,
		"elapsed", time.Since(e.started),
	)

	return res, nil
}

func (e *Engine) result(reason string) Result {
	res := Result{Generations: e.generation, Reason: reason}
	if e.last != nil {
		res.Best = e.last.Best()
		res.Summary = e.last.Summary
	}

	return res
}

// countElites returns how many individuals at the head of ranked have a
// fitness strictly below mean.
func countElites(ranked genetics.Population, mean float64) int {
	n := 0
	for _, ind := range ranked {
		if float64(ind.Fitness) >= mean {
			break
		}
		n++
	}

	return n
}

// evaluate scores every individual that has no fitness yet. Elites carried
// over keep theirs; the target never changes, so it would be the same.
func (e *Engine) evaluate(ctx context.Context) error {
	pop := e.population

	return workpool.Run(ctx, e.cfg.Workers, len(pop), func(_ context.Context, i int) error {
		ind := pop[i]
		if ind.Fitness != genetics.Unevaluated {
			return nil
		}

		score, err := e.renderer.Evaluate(ind, e.cfg.Fitness)
		if err != nil {
			return err
		}
		ind.Fitness = score

		return nil
	})
}

// reproduce keeps the elites and fills every other slot with the child of
// two independently selected parents.
func (e *Engine) reproduce(ctx context.Context, ranked genetics.Population, elites int, p float64) (genetics.Population, error) {
	n := e.cfg.Context.PopulationCount()
	next := make(genetics.Population, n)
	copy(next, ranked[:elites])

	seeds := make([]int64, n-elites)
	for i := range seeds {
		seeds[i] = e.rng.Int63()
	}

	err := workpool.Run(ctx, e.cfg.Workers, len(seeds), func(_ context.Context, i int) error {
		rng := rand.New(rand.NewSource(seeds[i]))

		a, err := e.cfg.Selector.Select(rng, ranked)
		if err != nil {
			return err
		}
		b, err := e.cfg.Selector.Select(rng, ranked)
		if err != nil {
			return err
		}

		child, err := e.cfg.CrossOver.Perform(rng, a, b, e.cfg.Mutator, p, e.pool)
		if err != nil {
			return err
		}
		next[elites+i] = child

		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(next) != len(ranked) || slices.Contains(next, nil) {
		return nil, fmt.Errorf("%w: %d != %d", ErrPopulationSize, len(next), len(ranked))
	}

	return next, nil
}

func (e *Engine) report(g Generation) {
	e.logger.Debug("generation complete",
		"generation", g.Summary.Generation,
		"best", g.Summary.Best,
		"elites", g.Elites,
		"step_time", g.StepTime,
	)

	if e.cfg.Reporter != nil {
		e.cfg.Reporter.Report(g)
	}
	if e.cfg.Sink != nil {
		e.cfg.Sink.Report(g)
	}
}
