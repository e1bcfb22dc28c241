// Package engine runs the generational loop: evaluate the population,
// report it to inspectors, then breed the next generation by tournament
// selection, uniform crossover, and per-bit mutation, for a fixed number of
// generations.
package engine

import (
	"context"
	"math/rand"
	"runtime"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/evoknap/evoknap/pkg/core"
	"github.com/evoknap/evoknap/pkg/errors"
	"github.com/evoknap/evoknap/pkg/logging"
	"github.com/evoknap/evoknap/pkg/operators"
)

// Engine executes one evolutionary run. The zero value is not usable;
// construct with New.
//
// Randomness is drawn from a single *rand.Rand owned by the engine and
// touched only in the strictly ordered phases (initialisation and
// breeding). Evaluation needs no randomness, so it can fan out across
// goroutines without sharing the generator and without perturbing seeded
// reproducibility.
type Engine struct {
	cfg        Config
	scorer     core.Scorer
	selector   core.Selector
	mutator    core.Mutator
	recombiner core.Recombinator
	inspectors []core.Inspector
	rng        *rand.Rand
	logger     *logging.Logger
}

// Option customises an Engine beyond its Config.
type Option func(*Engine)

// WithSelector replaces the default tournament selector.
func WithSelector(s core.Selector) Option {
	return func(e *Engine) { e.selector = s }
}

// WithMutator replaces the default 1/length bit-flip mutator.
func WithMutator(m core.Mutator) Option {
	return func(e *Engine) { e.mutator = m }
}

// WithRecombinator replaces the default uniform crossover.
func WithRecombinator(r core.Recombinator) Option {
	return func(e *Engine) { e.recombiner = r }
}

// WithInspector adds an observer invoked after every generation's
// evaluation, alongside the engine's own best tracker.
func WithInspector(i core.Inspector) Option {
	return func(e *Engine) { e.inspectors = append(e.inspectors, i) }
}

// WithLogger replaces the global logger.
func WithLogger(l *logging.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New validates the configuration and assembles a ready-to-run engine.
func New(cfg Config, scorer core.Scorer, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if scorer == nil {
		return nil, errors.New(errors.InvalidConfig, "scorer must not be nil")
	}

	e := &Engine{
		cfg:        cfg,
		scorer:     scorer,
		mutator:    operators.BitFlipMutator{},
		recombiner: operators.UniformCrossover{},
		rng:        rand.New(rand.NewSource(cfg.Seed)),
		logger:     logging.GetLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.selector == nil {
		sel, err := operators.NewTournament(cfg.TournamentSize)
		if err != nil {
			return nil, err
		}
		e.selector = sel
	}
	return e, nil
}

// Run executes the generational loop until MaxGenerations generations have
// been evaluated or ctx is cancelled. Cancellation is fail-soft: the
// returned Result still carries the best found so far, alongside an error
// with code Canceled.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	tracker := NewBestTracker()

	pop := make(core.Population, e.cfg.PopulationSize)
	next := make(core.Population, e.cfg.PopulationSize)
	for i := range pop {
		pop[i].Genome = core.RandomGenome(e.cfg.GenomeLength, e.rng)
	}

	e.logger.Info(ctx, "run starting: genome_length=%d population=%d generations=%d tournament=%d parallel=%v",
		e.cfg.GenomeLength, e.cfg.PopulationSize, e.cfg.MaxGenerations, e.cfg.TournamentSize, e.cfg.ParallelEval)

	evaluations := 0
	generations := 0
	for g := 0; g < e.cfg.MaxGenerations; g++ {
		if err := ctx.Err(); err != nil {
			e.logger.Warn(ctx, "run stopped at generation %d, returning best found so far", g)
			return e.result(tracker, generations, evaluations, start),
				errors.Wrap(err, errors.Canceled, "run stopped early")
		}

		e.evaluate(pop)
		evaluations += len(pop)
		generations = g + 1

		tracker.Inspect(g, pop)
		for _, ins := range e.inspectors {
			ins.Inspect(g, pop)
		}
		if rec := tracker.Records(); len(rec) > 0 {
			last := rec[len(rec)-1]
			e.logger.Debug(ctx, "generation %d: best=%s entropy=%.3f", g, last.Best, last.Entropy)
		}

		if g+1 == e.cfg.MaxGenerations {
			break
		}
		e.breed(pop, next)
		pop, next = next, pop
	}

	res := e.result(tracker, generations, evaluations, start)
	if res.BestEver != nil {
		e.logger.Info(ctx, "run finished: generations=%d evaluations=%d best_ever=%s final_best=%s",
			res.Generations, res.Evaluations, res.BestEver.Score, res.FinalBest.Score)
	}
	return res, nil
}

// evaluate scores every individual, writing each score into its own slot.
// The parallel path shares nothing mutable between tasks, so sequential and
// parallel evaluation are observably equivalent.
func (e *Engine) evaluate(pop core.Population) {
	if !e.cfg.ParallelEval {
		for i := range pop {
			pop[i].Score = e.scorer.Score(pop[i].Genome)
		}
		return
	}

	workers := e.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := pool.New().WithMaxGoroutines(workers)
	for i := range pop {
		i := i
		p.Go(func() {
			pop[i].Score = e.scorer.Score(pop[i].Genome)
		})
	}
	p.Wait()
}

// breed fills next with offspring of pop: two independent tournament picks,
// crossover, then mutation, per slot. The previous best is not guaranteed
// to survive; the tracker carries it instead.
func (e *Engine) breed(pop, next core.Population) {
	for i := range next {
		parentA := e.selector.Select(pop, e.rng)
		parentB := e.selector.Select(pop, e.rng)
		child := e.recombiner.Recombine(parentA, parentB, e.rng)
		next[i] = core.Individual{Genome: e.mutator.Mutate(child, e.rng)}
	}
}

func (e *Engine) result(tracker *BestTracker, generations, evaluations int, start time.Time) Result {
	res := Result{
		Generations: generations,
		Evaluations: evaluations,
		Duration:    time.Since(start),
		History:     tracker.Records(),
	}
	if best, ok := tracker.BestEver(); ok {
		res.BestEver = &best
	}
	if final, ok := tracker.FinalBest(); ok {
		res.FinalBest = &final
	}
	return res
}
