// Package config resolves generation settings from defaults and an optional
// YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"pkg.jsn.cam/orgdata/pkg/orgdata"
)

const DefaultOutput = "managers.csv"

// Config is the full set of inputs for one run.
type Config struct {
	orgdata.Params `yaml:",inline"`

	Output string `yaml:"output"`
	// Seed 0 means unseeded.
	Seed uint64 `yaml:"seed"`
}

// Default returns the settings used when nothing else is given.
func Default() Config {
	return Config{
		Params: orgdata.Params{
			StartID:   900,
			Managers:  orgdata.ManagerRange{Min: 700, Max: 888},
			SalaryMin: 12000,
			SalaryMax: 24000,
		},
		Output: DefaultOutput,
	}
}

// Load returns Default overlaid with the YAML file at path. An empty path
// returns the defaults. Keys missing from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	return cfg, nil
}
