package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/rpgo/portfolio-forecast/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// DefaultCurrency is used when a configuration does not name one.
const DefaultCurrency = "USD"

// MaxSimulations caps num_simulations in a configuration file.
const MaxSimulations = 10_000_000

// InputParser handles parsing of forecast configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a forecast configuration from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates configuration bytes.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if config.Currency == "" {
		config.Currency = DefaultCurrency
	}
	config.Currency = strings.ToUpper(config.Currency)

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration checks the structure of a configuration. Range checks
// on the return model itself are left to the simulator so that they surface
// as its configuration errors.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.Investment.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("investment must be positive")
	}
	if config.Years <= 0 || config.Years > 100 {
		return fmt.Errorf("years must be between 1 and 100")
	}
	if config.Currency != "" && money.GetCurrency(config.Currency) == nil {
		return fmt.Errorf("unknown currency %q", config.Currency)
	}

	if err := ip.validateSimulation(&config.Simulation); err != nil {
		return fmt.Errorf("simulation settings validation failed: %w", err)
	}

	if len(config.Portfolios) == 0 {
		return fmt.Errorf("no portfolios provided")
	}
	seen := make(map[string]bool, len(config.Portfolios))
	for i, p := range config.Portfolios {
		if err := ip.validatePortfolio(&p); err != nil {
			return fmt.Errorf("portfolio %d validation failed: %w", i, err)
		}
		key := strings.ToLower(p.Name)
		if seen[key] {
			return fmt.Errorf("duplicate portfolio name %q", p.Name)
		}
		seen[key] = true
	}

	return nil
}

func (ip *InputParser) validateSimulation(s *domain.SimulationSettings) error {
	if s.NumSimulations != nil {
		if *s.NumSimulations < 0 {
			return fmt.Errorf("num_simulations cannot be negative")
		}
		if *s.NumSimulations > MaxSimulations {
			return fmt.Errorf("num_simulations cannot exceed %d", MaxSimulations)
		}
	}
	if s.InflationRate != nil && s.InflationRate.LessThan(decimal.Zero) {
		return fmt.Errorf("inflation_rate cannot be negative")
	}
	return nil
}

func (ip *InputParser) validatePortfolio(p *domain.PortfolioProfile) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("portfolio name is required")
	}
	if p.StandardDeviation.LessThan(decimal.Zero) {
		return fmt.Errorf("standard deviation cannot be negative")
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration with the
// conservative and aggressive profiles.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	simulations := 10000
	inflation := decimal.NewFromFloat(3.5)
	return &domain.Configuration{
		Investment: decimal.NewFromInt(100000),
		Years:      20,
		Currency:   DefaultCurrency,
		Simulation: domain.SimulationSettings{
			NumSimulations: &simulations,
			InflationRate:  &inflation,
		},
		Portfolios: []domain.PortfolioProfile{
			{
				Name:              "conservative",
				Mean:              decimal.RequireFromString("6.4324"),
				StandardDeviation: decimal.RequireFromString("7.6785"),
			},
			{
				Name:              "aggressive",
				Mean:              decimal.RequireFromString("9.4324"),
				StandardDeviation: decimal.RequireFromString("15.6785"),
			},
		},
	}
}

// SaveConfiguration writes config as YAML to filename.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
