package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvSettings are process-wide defaults read from the environment. Command
// line flags take precedence over them.
type EnvSettings struct {
	LogLevel      string  `env:"RPGO_LOG_LEVEL" envDefault:"info"`
	Format        string  `env:"RPGO_FORMAT" envDefault:"console"`
	Currency      string  `env:"RPGO_CURRENCY" envDefault:"USD"`
	Simulations   int     `env:"RPGO_SIMULATIONS"`
	InflationRate float64 `env:"RPGO_INFLATION_RATE"`
}

// LoadEnvSettings parses EnvSettings from the environment.
func LoadEnvSettings() (EnvSettings, error) {
	var s EnvSettings
	if err := env.Parse(&s); err != nil {
		return EnvSettings{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}
