package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Configuration is the top-level forecast input, usually loaded from YAML.
type Configuration struct {
	Investment decimal.Decimal    `yaml:"investment" json:"investment"`
	Years      int                `yaml:"years" json:"years"`
	Currency   string             `yaml:"currency,omitempty" json:"currency,omitempty"`
	Simulation SimulationSettings `yaml:"simulation" json:"simulation"`
	Portfolios []PortfolioProfile `yaml:"portfolios" json:"portfolios"`
}

// SimulationSettings tunes the Monte Carlo run. Unset (nil) fields use the
// simulator default; a set field is passed through as given, zero included.
type SimulationSettings struct {
	NumSimulations *int             `yaml:"num_simulations,omitempty" json:"num_simulations,omitempty"`
	InflationRate  *decimal.Decimal `yaml:"inflation_rate,omitempty" json:"inflation_rate,omitempty"` // percent per year
	Seed           *uint64          `yaml:"seed,omitempty" json:"seed,omitempty"`
}

// PortfolioProfile is a named return model: expected annual return and its
// volatility, both in percent.
type PortfolioProfile struct {
	Name              string          `yaml:"name" json:"name"`
	Mean              decimal.Decimal `yaml:"mean" json:"mean"`
	StandardDeviation decimal.Decimal `yaml:"standard_deviation" json:"standard_deviation"`
}

// ForecastSummary is the outcome of simulating one portfolio profile.
type ForecastSummary struct {
	Name              string          `json:"name"`
	Mean              decimal.Decimal `json:"mean"`
	StandardDeviation decimal.Decimal `json:"standard_deviation"`
	Investment        decimal.Decimal `json:"investment"`
	Years             int             `json:"years"`
	Simulations       int             `json:"simulations"`
	InflationRate     decimal.Decimal `json:"inflation_rate"`

	// ExpectedValue is inflation adjusted; the percentiles below are taken
	// from the raw, unadjusted trials.
	ExpectedValue decimal.Decimal `json:"expected_value"`
	BestCase      decimal.Decimal `json:"best_case"`
	Median        decimal.Decimal `json:"median"`
	WorstCase     decimal.Decimal `json:"worst_case"`
}

// ForecastComparison groups the summaries of every profile in a configuration.
type ForecastComparison struct {
	Currency    string            `json:"currency"`
	GeneratedAt time.Time         `json:"generated_at"`
	Forecasts   []ForecastSummary `json:"forecasts"`
}
