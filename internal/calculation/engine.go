package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/rpgo/portfolio-forecast/internal/domain"
	"github.com/shopspring/decimal"
)

// ForecastEngine runs a PortfolioSimulator for every profile of a configuration
// and collects the results.
type ForecastEngine struct {
	Logger Logger
	Now    func() time.Time
}

// NewForecastEngine creates a new forecast engine
func NewForecastEngine() *ForecastEngine {
	return &ForecastEngine{
		Logger: NopLogger{},
		Now:    time.Now,
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (fe *ForecastEngine) SetLogger(l Logger) {
	if l == nil {
		fe.Logger = NopLogger{}
		return
	}
	fe.Logger = l
}

// RunScenarios simulates every portfolio in config, in order.
func (fe *ForecastEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.ForecastComparison, error) {
	if config == nil {
		return nil, fmt.Errorf("configuration is nil")
	}
	if len(config.Portfolios) == 0 {
		return nil, fmt.Errorf("no portfolios to simulate")
	}

	comparison := &domain.ForecastComparison{
		Currency:    config.Currency,
		GeneratedAt: fe.Now(),
		Forecasts:   make([]domain.ForecastSummary, 0, len(config.Portfolios)),
	}

	for i := range config.Portfolios {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		summary, err := fe.runScenario(config, &config.Portfolios[i], uint64(i))
		if err != nil {
			return nil, fmt.Errorf("portfolio %q: %w", config.Portfolios[i].Name, err)
		}
		comparison.Forecasts = append(comparison.Forecasts, *summary)
	}

	return comparison, nil
}

// RunScenario simulates a single portfolio profile using the investment,
// horizon and simulation settings of config.
func (fe *ForecastEngine) RunScenario(ctx context.Context, config *domain.Configuration, profile *domain.PortfolioProfile) (*domain.ForecastSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return fe.runScenario(config, profile, 0)
}

func (fe *ForecastEngine) runScenario(config *domain.Configuration, profile *domain.PortfolioProfile, stream uint64) (*domain.ForecastSummary, error) {
	simCfg := SimulatorConfigFromSettings(config.Simulation)
	opts := []SimulatorOption{WithConfig(simCfg)}
	if config.Simulation.Seed != nil {
		opts = append(opts, WithNormalSource(NewSeededSource(*config.Simulation.Seed+stream)))
	}

	sim := NewPortfolioSimulator(profile.Mean.InexactFloat64(), profile.StandardDeviation.InexactFloat64(), opts...)

	fe.Logger.Debugf("simulating %s: mean=%s sd=%s trials=%d inflation=%g",
		profile.Name, profile.Mean, profile.StandardDeviation, simCfg.NumSimulations, simCfg.InflationRate)

	expected, err := sim.RunSimulation(config.Investment.InexactFloat64(), config.Years)
	if err != nil {
		fe.Logger.Warnf("simulation of %s failed: %v", profile.Name, err)
		return nil, err
	}

	best, err := sim.BestCase()
	if err != nil {
		return nil, err
	}
	worst, err := sim.WorstCase()
	if err != nil {
		return nil, err
	}
	median, err := sim.Median()
	if err != nil {
		return nil, err
	}

	fe.Logger.Infof("%s: expected=%.2f best=%.2f worst=%.2f", profile.Name, expected, best, worst)

	return &domain.ForecastSummary{
		Name:              profile.Name,
		Mean:              profile.Mean,
		StandardDeviation: profile.StandardDeviation,
		Investment:        config.Investment,
		Years:             config.Years,
		Simulations:       simCfg.NumSimulations,
		InflationRate:     decimal.NewFromFloat(simCfg.InflationRate),
		ExpectedValue:     decimal.NewFromFloat(expected),
		BestCase:          decimal.NewFromFloat(best),
		Median:            decimal.NewFromFloat(median),
		WorstCase:         decimal.NewFromFloat(worst),
	}, nil
}

// SimulatorConfigFromSettings fills unset settings with the simulator defaults.
// Set values are copied as is, so an explicit zero is rejected by the simulator.
func SimulatorConfigFromSettings(s domain.SimulationSettings) SimulatorConfig {
	cfg := DefaultSimulatorConfig()
	if s.NumSimulations != nil {
		cfg.NumSimulations = *s.NumSimulations
	}
	if s.InflationRate != nil {
		cfg.InflationRate = s.InflationRate.InexactFloat64()
	}
	return cfg
}
