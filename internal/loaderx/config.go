// Package loaderx loads a run's Configuration and domain entity population
// from disk: YAML (via viper) for the former, JSON for the latter, both
// validated with struct tags before anything touches the solver.
package loaderx

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"timetable-ga/internal/domain"
)

var validate = validator.New()

// LoadConfiguration reads a YAML Configuration file at path (days,
// time_slots, break_slot_indices, the GA hyperparameters and the seed) and
// validates it. viper is used for the read so environment-variable
// overrides (TIMETABLE_GA_*) compose with the file, matching how the rest
// of the stack resolves settings.
func LoadConfiguration(path string) (*domain.Configuration, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("TIMETABLE_GA")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("loaderx: reading configuration %s: %w", path, err)
	}

	var cfg domain.Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("loaderx: decoding configuration %s: %w", path, err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("loaderx: configuration %s failed validation: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("loaderx: configuration %s: %w", path, err)
	}

	return &cfg, nil
}
