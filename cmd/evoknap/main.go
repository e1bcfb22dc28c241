// Command evoknap runs tournament-selection GA trials against a 0/1
// knapsack instance and reports the study's two metrics per trial: the best
// score found anywhere in the run and the best score of the final
// generation.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/evoknap/evoknap/pkg/core"
	"github.com/evoknap/evoknap/pkg/errors"
	"github.com/evoknap/evoknap/pkg/logging"
	"github.com/evoknap/evoknap/pkg/runner"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML experiment file; other flags are ignored when set")
		instance   = flag.String("instance", "", "path to a knapsack instance file")
		tournament = flag.Int("tournament", 2, "tournament size (selection pressure)")
		population = flag.Int("population", 1000, "population size")
		gens       = flag.Int("generations", 1000, "number of generations per trial")
		trials     = flag.Int("trials", 1, "number of repeated trials")
		seed       = flag.Int64("seed", 1, "base seed; trial t runs with seed+t")
		parallel   = flag.Bool("parallel", true, "evaluate the population in parallel")
		workers    = flag.Int("workers", 0, "evaluation goroutines; 0 means one per CPU")
		storePath  = flag.String("store", "", "SQLite file to persist trial results; empty disables")
		logLevel   = flag.String("log-level", "INFO", "DEBUG, INFO, WARN, or ERROR")
	)
	flag.Parse()

	logging.SetLogger(logging.NewLogger(logging.Config{
		Severity: logging.ParseSeverity(*logLevel),
		Outputs:  []logging.Output{logging.NewConsoleOutput(true)},
	}))

	cfg := runner.Config{
		InstancePath:   *instance,
		TournamentSize: *tournament,
		PopulationSize: *population,
		MaxGenerations: *gens,
		Trials:         *trials,
		Seed:           *seed,
		Parallel:       *parallel,
		Workers:        *workers,
		StorePath:      *storePath,
	}
	if *configPath != "" {
		loaded, err := runner.LoadConfig(*configPath)
		if err != nil {
			fatal(err)
		}
		cfg = loaded
	}

	// A user-requested stop still reports the best found so far.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fatal(err)
	}
}

func run(ctx context.Context, cfg runner.Config) error {
	var opts []runner.Option
	if cfg.StorePath != "" {
		store, err := runner.NewStore(cfg.StorePath)
		if err != nil {
			return err
		}
		defer store.Close()
		opts = append(opts, runner.WithStore(store))
	}

	r, err := runner.New(cfg, opts...)
	if err != nil {
		return err
	}

	results, summary, runErr := r.Run(ctx)
	if runErr != nil && errors.Code(runErr) != errors.Canceled {
		return runErr
	}

	report(cfg, results, summary)
	if runErr != nil {
		fmt.Println("stopped early; results above cover the completed portion")
	}
	return nil
}

// report prints per-trial and batch results. Large values get thousands
// separators since capacities and best values reach the tens of billions.
func report(cfg runner.Config, results []runner.TrialResult, summary runner.Summary) {
	p := message.NewPrinter(language.English)

	fmt.Printf("instance %s, tournament size %d, %d trial(s)\n",
		cfg.InstancePath, cfg.TournamentSize, len(results))
	for i, rec := range results {
		best := "n/a"
		final := "n/a"
		if rec.BestEver != nil {
			best = formatScore(p, *rec.BestEver)
		}
		if rec.FinalBest != nil {
			final = formatScore(p, *rec.FinalBest)
		}
		fmt.Printf("  trial %d (seed %d): best ever %s, final generation best %s (%s)\n",
			i, rec.Seed, best, final, rec.Duration.Round(time.Millisecond))
	}

	if summary.FeasibleBest > 0 {
		p.Printf("summary: %d/%d trials found a feasible best; value mean %.1f, min %d, max %d, stddev %.1f\n",
			summary.FeasibleBest, summary.Trials,
			summary.MeanBestValue, summary.MinBestValue, summary.MaxBestValue, summary.StdDevBestValue)
	} else {
		fmt.Printf("summary: no trial found a feasible best (%d trials)\n", summary.Trials)
	}
	if summary.OverloadedFinal > 0 {
		fmt.Printf("summary: %d trial(s) ended with an Overloaded final generation best\n", summary.OverloadedFinal)
	}
}

func formatScore(p *message.Printer, s core.Score) string {
	if v, ok := s.Value(); ok {
		return p.Sprintf("Feasible(%d)", v)
	}
	return "Overloaded"
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "evoknap:", err)
	os.Exit(1)
}
