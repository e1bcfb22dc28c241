package runner

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/evoknap/evoknap/pkg/errors"
)

// Config describes a batch of repeated trials against one instance. It is
// the YAML form used by experiment files:
//
//	instance: knapsacks/SmallProblem2.txt
//	tournament_size: 2
//	population_size: 1000
//	max_generations: 1000
//	trials: 30
//	seed: 42
//	parallel: true
//	store: results.db
type Config struct {
	InstancePath   string `yaml:"instance" validate:"required"`
	TournamentSize int    `yaml:"tournament_size" validate:"required,min=1"`
	PopulationSize int    `yaml:"population_size" validate:"required,min=1"`
	MaxGenerations int    `yaml:"max_generations" validate:"min=0"`
	Trials         int    `yaml:"trials" validate:"required,min=1"`
	Seed           int64  `yaml:"seed"`
	Parallel       bool   `yaml:"parallel"`
	Workers        int    `yaml:"workers" validate:"min=0"`
	StorePath      string `yaml:"store"`
}

var validate = validator.New()

// Validate checks the batch configuration before any trial runs.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	wrapped := errors.Wrap(err, errors.InvalidConfig, "invalid experiment configuration")
	if verrs, ok := err.(validator.ValidationErrors); ok {
		fields := errors.Fields{}
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Value()
		}
		wrapped = errors.WithFields(wrapped, fields)
	}
	return wrapped
}

// LoadConfig reads and validates a YAML experiment file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, errors.InvalidInput, "reading experiment config")
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, errors.InvalidInput, "parsing experiment config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
