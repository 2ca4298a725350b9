package calculation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rpgo/portfolio-forecast/internal/domain"
	"github.com/shopspring/decimal"
)

// presetProfiles are the built-in return models.
var presetProfiles = map[string]domain.PortfolioProfile{
	"conservative": {
		Name:              "conservative",
		Mean:              decimal.RequireFromString("6.4324"),
		StandardDeviation: decimal.RequireFromString("7.6785"),
	},
	"aggressive": {
		Name:              "aggressive",
		Mean:              decimal.RequireFromString("9.4324"),
		StandardDeviation: decimal.RequireFromString("15.6785"),
	},
}

// PresetProfiles returns the built-in profiles sorted by name.
func PresetProfiles() []domain.PortfolioProfile {
	out := make([]domain.PortfolioProfile, 0, len(presetProfiles))
	for _, p := range presetProfiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// PresetByName looks up a built-in profile, case-insensitively.
func PresetByName(name string) (domain.PortfolioProfile, error) {
	p, ok := presetProfiles[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		names := make([]string, 0, len(presetProfiles))
		for k := range presetProfiles {
			names = append(names, k)
		}
		sort.Strings(names)
		return domain.PortfolioProfile{}, fmt.Errorf("unknown portfolio profile %q (available: %s)", name, strings.Join(names, ", "))
	}
	return p, nil
}
