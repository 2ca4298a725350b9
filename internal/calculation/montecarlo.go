package calculation

import (
	"math"
	"sort"
	"sync"
)

const (
	// DefaultSimulationCount is the number of trials run when none is configured.
	DefaultSimulationCount = 10000
	// DefaultInflationRate is the annual inflation percentage used when none is configured.
	DefaultInflationRate = 3.5
	// InflationHorizonYears is the fixed number of years each trial is compounded
	// for inflation. It does not follow the years argument of RunSimulation.
	InflationHorizonYears = 20

	bestCasePercentile  = 90
	worstCasePercentile = 10
	medianPercentile    = 50
)

// SimulatorConfig holds the mutable settings of a PortfolioSimulator.
type SimulatorConfig struct {
	NumSimulations int     `json:"num_simulations" yaml:"num_simulations"`
	InflationRate  float64 `json:"inflation_rate" yaml:"inflation_rate"` // percent per year
}

// DefaultSimulatorConfig returns the library defaults (10000 trials, 3.5% inflation).
func DefaultSimulatorConfig() SimulatorConfig {
	return SimulatorConfig{
		NumSimulations: DefaultSimulationCount,
		InflationRate:  DefaultInflationRate,
	}
}

// SimulatorOption customizes a PortfolioSimulator at construction.
type SimulatorOption func(*PortfolioSimulator)

// WithSimulationCount sets the number of trials per run.
func WithSimulationCount(n int) SimulatorOption {
	return func(ps *PortfolioSimulator) { ps.config.NumSimulations = n }
}

// WithInflationRate sets the annual inflation percentage.
func WithInflationRate(pct float64) SimulatorOption {
	return func(ps *PortfolioSimulator) { ps.config.InflationRate = pct }
}

// WithConfig replaces all mutable settings at once.
func WithConfig(cfg SimulatorConfig) SimulatorOption {
	return func(ps *PortfolioSimulator) { ps.config = cfg }
}

// WithNormalSource injects the random source used for every run. Intended for
// reproducible tests; by default each run draws from a freshly seeded source.
func WithNormalSource(src NormalSource) SimulatorOption {
	return func(ps *PortfolioSimulator) { ps.source = src }
}

// PortfolioSimulator estimates the future value of a portfolio whose annual
// return is drawn from Normal(mean, standardDeviation), both in percent.
// It is safe for concurrent use; each run replaces the stored trials atomically.
type PortfolioSimulator struct {
	mean              float64
	standardDeviation float64

	mu     sync.RWMutex
	config SimulatorConfig
	source NormalSource
	trials []float64 // raw trial values of the last successful run, ascending
}

// NewPortfolioSimulator creates a simulator with default settings. Options
// are applied after the defaults.
func NewPortfolioSimulator(mean, standardDeviation float64, opts ...SimulatorOption) *PortfolioSimulator {
	ps := &PortfolioSimulator{
		mean:              mean,
		standardDeviation: standardDeviation,
		config:            DefaultSimulatorConfig(),
	}
	for _, opt := range opts {
		opt(ps)
	}
	return ps
}

// Mean returns the expected annual return percentage.
func (ps *PortfolioSimulator) Mean() float64 { return ps.mean }

// StandardDeviation returns the annual return volatility percentage.
func (ps *PortfolioSimulator) StandardDeviation() float64 { return ps.standardDeviation }

// SimulationCount returns the number of trials the next run will draw.
func (ps *PortfolioSimulator) SimulationCount() int {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return ps.config.NumSimulations
}

// SetSimulationCount takes effect on the next run.
func (ps *PortfolioSimulator) SetSimulationCount(n int) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.config.NumSimulations = n
}

// InflationRate returns the annual inflation percentage used by the next run.
func (ps *PortfolioSimulator) InflationRate() float64 {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return ps.config.InflationRate
}

// SetInflationRate takes effect on the next run.
func (ps *PortfolioSimulator) SetInflationRate(pct float64) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.config.InflationRate = pct
}

// Config returns a copy of the current settings.
func (ps *PortfolioSimulator) Config() SimulatorConfig {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return ps.config
}

// Trials returns a copy of the sorted raw trial values from the last run.
func (ps *PortfolioSimulator) Trials() []float64 {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return append([]float64(nil), ps.trials...)
}

// RunSimulation runs the configured number of trials for the given
// investment and returns the expected future value. On error the results of
// any previous run are left untouched.
//
// years is validated but the inflation adjustment always compounds over
// InflationHorizonYears.
func (ps *PortfolioSimulator) RunSimulation(investment float64, years int) (float64, error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	if err := ps.validate(investment, years); err != nil {
		return 0, err
	}

	src := ps.source
	if src == nil {
		src = freshSource()
	}

	n := ps.config.NumSimulations
	trials := make([]float64, n)
	var sum float64
	for i := 0; i < n; i++ {
		z := src.NormFloat64()
		value := investment * (1 + (z*ps.standardDeviation+ps.mean)/100)
		trials[i] = value
		// The aggregate uses inflation-adjusted values while percentiles are
		// read from the raw trials. Keep the two separate.
		sum += AdjustForInflation(value, ps.config.InflationRate, InflationHorizonYears)
	}

	sort.Float64s(trials)
	ps.trials = trials

	return investment + sum/float64(n), nil
}

func (ps *PortfolioSimulator) validate(investment float64, years int) error {
	if years < 1 {
		return invalidInput("years", "years must be >= 1, got %d", years)
	}
	// Written as negations so NaN fails every check.
	if !(investment >= 1) || math.IsInf(investment, 1) {
		return invalidInput("investment", "investment must be >= 1, got %g", investment)
	}
	if !(ps.mean >= 0) || math.IsInf(ps.mean, 1) {
		return invalidConfiguration("mean", "mean must be >= 0, got %g", ps.mean)
	}
	if !(ps.standardDeviation >= 1) || math.IsInf(ps.standardDeviation, 1) {
		return invalidConfiguration("standard_deviation", "standard deviation must be >= 1, got %g", ps.standardDeviation)
	}
	if ps.config.NumSimulations < 1 {
		return invalidConfiguration("num_simulations", "simulation count must be >= 1, got %d", ps.config.NumSimulations)
	}
	if !(ps.config.InflationRate >= 1) || math.IsInf(ps.config.InflationRate, 1) {
		return invalidConfiguration("inflation_rate", "inflation rate must be >= 1, got %g", ps.config.InflationRate)
	}
	return nil
}

// BestCase returns the 90th percentile of the last run's raw trials.
func (ps *PortfolioSimulator) BestCase() (float64, error) {
	return ps.Percentile(bestCasePercentile)
}

// WorstCase returns the 10th percentile of the last run's raw trials.
func (ps *PortfolioSimulator) WorstCase() (float64, error) {
	return ps.Percentile(worstCasePercentile)
}

// Median returns the 50th percentile of the last run's raw trials.
func (ps *PortfolioSimulator) Median() (float64, error) {
	return ps.Percentile(medianPercentile)
}

// Percentile returns the trial at index round(p*n/100), clamped to the
// trial range, where n is the number of trials stored by the last run.
// Rounding is half away from zero.
func (ps *PortfolioSimulator) Percentile(p float64) (float64, error) {
	if p < 0 || p > 100 || math.IsNaN(p) {
		return 0, invalidInput("percentile", "percentile must be within [0, 100], got %g", p)
	}

	ps.mu.RLock()
	defer ps.mu.RUnlock()

	n := len(ps.trials)
	if n == 0 {
		return 0, ErrNotYetSimulated
	}
	return ps.trials[percentileIndex(p, n)], nil
}

func percentileIndex(p float64, n int) int {
	idx := int(math.Round(p * float64(n) / 100))
	if idx < 0 {
		return 0
	}
	if idx > n-1 {
		return n - 1
	}
	return idx
}

// AdjustForInflation compounds value annually at ratePercent for the given
// number of years.
func AdjustForInflation(value, ratePercent float64, years int) float64 {
	for i := 0; i < years; i++ {
		value += value * ratePercent / 100
	}
	return value
}
