package main

import (
	"fmt"
	"math"

	"github.com/rpgo/portfolio-forecast/internal/calculation"
	"github.com/rpgo/portfolio-forecast/internal/config"
	"github.com/rpgo/portfolio-forecast/internal/domain"
	"github.com/rpgo/portfolio-forecast/internal/logging"
	"github.com/rpgo/portfolio-forecast/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newForecastCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forecast [config.yaml]",
		Short: "Simulate one or more portfolios and report expected, best and worst case values",
		Long: `Simulate portfolio returns and report the expected future value.

Portfolios come from a configuration file, from --profile (built-in
profiles, see 'rpgo-forecast profiles'), or from --mean and --stddev.
Flags override the simulation settings of a configuration file.

The expected value is adjusted for inflation over a fixed 20 year horizon,
whatever --years is. Best and worst cases are the 90th and 10th percentile
of the unadjusted trials.`,
		Example: `  rpgo-forecast forecast --mean 9.4324 --stddev 15.6785 --investment 100000 --years 20
  rpgo-forecast forecast --profile conservative --profile aggressive --format csv
  rpgo-forecast forecast forecast.yaml --seed 42 --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runForecast,
	}

	cmd.Flags().Float64("mean", 0, "Expected annual return, percent")
	cmd.Flags().Float64("stddev", 0, "Annual return standard deviation, percent")
	cmd.Flags().Float64("investment", 100000, "Amount invested")
	cmd.Flags().Int("years", 20, "Years ahead")
	cmd.Flags().StringSlice("profile", nil, "Built-in portfolio profile (repeatable)")
	cmd.Flags().Int("simulations", 0, "Number of Monte Carlo trials (default 10000)")
	cmd.Flags().Float64("inflation", 0, "Annual inflation rate, percent (default 3.5)")
	cmd.Flags().Uint64("seed", 0, "Seed for reproducible results")
	cmd.Flags().String("currency", "", "ISO currency code used for display")
	cmd.Flags().StringP("format", "f", "", "Output format: console, csv, html, json")
	cmd.Flags().String("output-dir", "", "Write the report to a timestamped file in this directory instead of stdout")

	return cmd
}

func runForecast(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadEnvSettings()
	if err != nil {
		return err
	}

	level, _ := cmd.Flags().GetString("log-level")
	if level == "" {
		level = settings.LogLevel
	}
	logger := logging.NewLogger(level, cmd.ErrOrStderr())

	var cfg *domain.Configuration
	if len(args) == 1 {
		cfg, err = config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}
		logger.Debug("loaded configuration", "path", args[0], "portfolios", len(cfg.Portfolios))
	} else {
		cfg, err = configurationFromFlags(cmd, settings)
		if err != nil {
			return err
		}
	}

	if err := applySimulationOverrides(cmd, settings, cfg); err != nil {
		return err
	}

	engine := calculation.NewForecastEngine()
	engine.SetLogger(logging.NewPrintf(logger))

	results, err := engine.RunScenarios(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = settings.Format
	}

	dir, _ := cmd.Flags().GetString("output-dir")
	if dir == "" {
		return output.GenerateReport(cmd.OutOrStdout(), results, format)
	}

	f := output.GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, format)
	}
	filename, err := output.WriteFormatted(f, results, dir, output.FileExtension(format))
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
	return nil
}

func configurationFromFlags(cmd *cobra.Command, settings config.EnvSettings) (*domain.Configuration, error) {
	investment, err := finiteFloatFlag(cmd, "investment")
	if err != nil {
		return nil, err
	}
	years, _ := cmd.Flags().GetInt("years")
	currency, _ := cmd.Flags().GetString("currency")
	if currency == "" {
		currency = settings.Currency
	}

	cfg := &domain.Configuration{
		Investment: decimal.NewFromFloat(investment),
		Years:      years,
		Currency:   currency,
	}

	names, _ := cmd.Flags().GetStringSlice("profile")
	for _, name := range names {
		p, err := calculation.PresetByName(name)
		if err != nil {
			return nil, err
		}
		cfg.Portfolios = append(cfg.Portfolios, p)
	}

	if cmd.Flags().Changed("mean") || cmd.Flags().Changed("stddev") {
		mean, err := finiteFloatFlag(cmd, "mean")
		if err != nil {
			return nil, err
		}
		sd, err := finiteFloatFlag(cmd, "stddev")
		if err != nil {
			return nil, err
		}
		cfg.Portfolios = append(cfg.Portfolios, domain.PortfolioProfile{
			Name:              "custom",
			Mean:              decimal.NewFromFloat(mean),
			StandardDeviation: decimal.NewFromFloat(sd),
		})
	}

	if len(cfg.Portfolios) == 0 {
		return nil, fmt.Errorf("no portfolio given: pass a configuration file, --profile, or --mean and --stddev")
	}
	return cfg, nil
}

// applySimulationOverrides layers flags over the configuration, and the
// environment under it. A flag that was given is passed on as is, so an
// out-of-range value is reported by the simulator rather than replaced by a
// default.
func applySimulationOverrides(cmd *cobra.Command, settings config.EnvSettings, cfg *domain.Configuration) error {
	if cmd.Flags().Changed("simulations") {
		n, _ := cmd.Flags().GetInt("simulations")
		cfg.Simulation.NumSimulations = &n
	} else if cfg.Simulation.NumSimulations == nil && settings.Simulations != 0 {
		n := settings.Simulations
		cfg.Simulation.NumSimulations = &n
	}

	if cmd.Flags().Changed("inflation") {
		rate, err := finiteFloatFlag(cmd, "inflation")
		if err != nil {
			return err
		}
		d := decimal.NewFromFloat(rate)
		cfg.Simulation.InflationRate = &d
	} else if cfg.Simulation.InflationRate == nil && settings.InflationRate != 0 {
		if math.IsNaN(settings.InflationRate) || math.IsInf(settings.InflationRate, 0) {
			return fmt.Errorf("RPGO_INFLATION_RATE must be a finite number, got %g", settings.InflationRate)
		}
		d := decimal.NewFromFloat(settings.InflationRate)
		cfg.Simulation.InflationRate = &d
	}

	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		cfg.Simulation.Seed = &seed
	}

	if cmd.Flags().Changed("currency") {
		cfg.Currency, _ = cmd.Flags().GetString("currency")
	}
	return nil
}

// finiteFloatFlag reads a float flag, rejecting NaN and infinities, which
// pflag accepts but decimal cannot represent.
func finiteFloatFlag(cmd *cobra.Command, name string) (float64, error) {
	v, err := cmd.Flags().GetFloat64(name)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("--%s must be a finite number, got %g", name, v)
	}
	return v, nil
}
