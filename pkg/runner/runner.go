// Package runner executes batches of repeated evolutionary trials and
// collects the study's two metrics per trial: best-ever score and best
// score of the final generation.
package runner

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"

	"github.com/evoknap/evoknap/pkg/core"
	"github.com/evoknap/evoknap/pkg/engine"
	"github.com/evoknap/evoknap/pkg/errors"
	"github.com/evoknap/evoknap/pkg/knapsack"
	"github.com/evoknap/evoknap/pkg/logging"
)

// TrialResult is one trial's record. BestEver and FinalBest are nil only
// when the trial evaluated no generation (cancellation before the first
// evaluation).
type TrialResult struct {
	ID             string
	Instance       string
	TournamentSize int
	Seed           int64
	BestEver       *core.Score
	FinalBest      *core.Score
	Generations    int
	Evaluations    int
	Duration       time.Duration
}

// Runner executes the trials of one experiment batch sequentially, deriving
// a distinct seed per trial so the batch as a whole is reproducible.
type Runner struct {
	cfg    Config
	store  *Store
	logger *logging.Logger
}

// Option customises a Runner.
type Option func(*Runner)

// WithStore persists every trial record to the given results store.
func WithStore(s *Store) Option {
	return func(r *Runner) { r.store = s }
}

// WithLogger replaces the global logger.
func WithLogger(l *logging.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// New validates the batch configuration and assembles a runner.
func New(cfg Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{cfg: cfg, logger: logging.GetLogger()}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Run loads the instance and executes the configured number of trials.
// Cancellation is fail-soft: completed trials (and the partial result of
// the interrupted one, when it evaluated at least one generation) are
// returned alongside a Canceled error.
func (r *Runner) Run(ctx context.Context) ([]TrialResult, Summary, error) {
	inst, err := knapsack.Load(r.cfg.InstancePath)
	if err != nil {
		return nil, Summary{}, err
	}
	scorer := knapsack.NewCliffScorer(inst)

	r.logger.Info(ctx, "batch starting: instance=%s items=%d capacity=%d trials=%d tournament=%d",
		inst.Name(), inst.NumItems(), inst.Capacity(), r.cfg.Trials, r.cfg.TournamentSize)

	results := make([]TrialResult, 0, r.cfg.Trials)
	for trial := 0; trial < r.cfg.Trials; trial++ {
		id := uuid.NewString()
		trialCtx := logging.WithRunID(ctx, id)
		seed := r.cfg.Seed + int64(trial)

		e, err := engine.New(engine.Config{
			GenomeLength:   inst.NumItems(),
			PopulationSize: r.cfg.PopulationSize,
			MaxGenerations: r.cfg.MaxGenerations,
			TournamentSize: r.cfg.TournamentSize,
			ParallelEval:   r.cfg.Parallel,
			Workers:        r.cfg.Workers,
			Seed:           seed,
		}, scorer, engine.WithLogger(r.logger))
		if err != nil {
			return results, Summarize(results), err
		}

		res, runErr := e.Run(trialCtx)
		rec := trialRecord(id, inst.Name(), r.cfg.TournamentSize, seed, res)
		if rec.BestEver != nil || runErr == nil {
			results = append(results, rec)
			if r.store != nil {
				if err := r.store.SaveTrial(trialCtx, rec); err != nil {
					return results, Summarize(results), err
				}
			}
		}

		if runErr != nil {
			if stderrors.Is(runErr, errors.New(errors.Canceled, "")) {
				r.logger.Warn(ctx, "batch stopped after %d of %d trials", len(results), r.cfg.Trials)
				return results, Summarize(results), runErr
			}
			return results, Summarize(results), runErr
		}
	}

	summary := Summarize(results)
	r.logger.Info(ctx, "batch finished: trials=%d feasible_best=%d overloaded_final=%d mean_best=%.1f",
		summary.Trials, summary.FeasibleBest, summary.OverloadedFinal, summary.MeanBestValue)
	return results, summary, nil
}

func trialRecord(id, instance string, tournamentSize int, seed int64, res engine.Result) TrialResult {
	rec := TrialResult{
		ID:             id,
		Instance:       instance,
		TournamentSize: tournamentSize,
		Seed:           seed,
		Generations:    res.Generations,
		Evaluations:    res.Evaluations,
		Duration:       res.Duration,
	}
	if res.BestEver != nil {
		score := res.BestEver.Score
		rec.BestEver = &score
	}
	if res.FinalBest != nil {
		score := res.FinalBest.Score
		rec.FinalBest = &score
	}
	return rec
}
