package engine

import (
	"github.com/go-playground/validator/v10"

	"github.com/evoknap/evoknap/pkg/errors"
)

// Config describes one evolutionary run. All fields are checked up front;
// an invalid config is rejected before any generation runs, never clamped.
type Config struct {
	// GenomeLength is the number of bits per genome, which must equal the
	// item count of the instance being scored.
	GenomeLength int `validate:"required,min=1"`

	// PopulationSize is the fixed number of individuals per generation.
	PopulationSize int `validate:"required,min=1"`

	// MaxGenerations bounds the run. Zero is legal and means the run
	// terminates without evaluating anything.
	MaxGenerations int `validate:"min=0"`

	// TournamentSize is the number of individuals drawn (with replacement)
	// per parent-selection contest. This is the selection-pressure knob
	// under study; 1 degenerates to uniform random selection.
	TournamentSize int `validate:"required,min=1"`

	// ParallelEval distributes scoring across worker goroutines. Parallel
	// and sequential evaluation produce identical scores.
	ParallelEval bool

	// Workers caps evaluation goroutines; 0 means one per available CPU.
	Workers int `validate:"min=0"`

	// Seed initialises the run's random source. A fixed seed with
	// sequential breeding makes the run exactly reproducible.
	Seed int64
}

// DefaultConfig mirrors the study's baseline: population 1000, 1000
// generations, tournament size 2, parallel evaluation on.
func DefaultConfig(genomeLength int) Config {
	return Config{
		GenomeLength:   genomeLength,
		PopulationSize: 1000,
		MaxGenerations: 1000,
		TournamentSize: 2,
		ParallelEval:   true,
	}
}

var validate = validator.New()

// Validate checks the configuration, reporting every offending field.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	wrapped := errors.Wrap(err, errors.InvalidConfig, "invalid run configuration")
	if verrs, ok := err.(validator.ValidationErrors); ok {
		fields := errors.Fields{}
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Value()
		}
		wrapped = errors.WithFields(wrapped, fields)
	}
	return wrapped
}
