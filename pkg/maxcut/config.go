package maxcut

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/grasp-maxcut/pkg"
	"go.uber.org/multierr"
)

var ErrInvalidConfig = errors.New("maxcut: invalid config")

type Config struct {
	// Alpha is the construction greediness: 0 admits every candidate into the RCL,
	// 1 only the best scoring ones.
	Alpha float64 `mapstructure:"alpha"`
	// Iterations is the GRASP restart budget.
	Iterations int `mapstructure:"iterations"`
	Seed       int64 `mapstructure:"seed"`
	// Trials is the number of coin-flip assignments averaged by the randomized baseline.
	Trials int `mapstructure:"trials"`
	// LocalSamples is the number of semi-greedy starts averaged for the local search report.
	LocalSamples int `mapstructure:"local_samples"`
}

func DefaultConfig() Config {
	return Config{
		Alpha:        pkg.DEFAULT_ALPHA,
		Iterations:   pkg.DEFAULT_GRASP_ITERATIONS,
		Seed:         pkg.DEFAULT_SEED,
		Trials:       pkg.DEFAULT_RANDOMIZED_TRIALS,
		LocalSamples: pkg.DEFAULT_LOCAL_SAMPLES,
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs error
	if err := validateAlpha(c.Alpha); err != nil {
		errs = multierr.Append(errs, err)
	}
	if c.Iterations <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: iterations must be > 0 (got %d)", ErrInvalidConfig, c.Iterations))
	}
	if c.Trials <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: trials must be > 0 (got %d)", ErrInvalidConfig, c.Trials))
	}
	if c.LocalSamples <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: local samples must be > 0 (got %d)", ErrInvalidConfig, c.LocalSamples))
	}
	return errs
}

func validateAlpha(alpha float64) error {
	// the negated form also rejects NaN
	if !(alpha >= 0 && alpha <= 1) {
		return fmt.Errorf("%w: alpha must be in [0,1] (got %v)", ErrInvalidConfig, alpha)
	}
	return nil
}
