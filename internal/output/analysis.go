package output

import (
	"sort"

	"github.com/rpgo/portfolio-forecast/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation summarizes which profiles stand out in a comparison.
type Recommendation struct {
	ProfileName      string
	ExpectedValue    decimal.Decimal
	GainOverInvested decimal.Decimal
	PercentageChange decimal.Decimal

	// SafestProfile has the highest worst case.
	SafestProfile   string
	SafestWorstCase decimal.Decimal
}

// AnalyzeForecasts picks the profile with the highest expected value and the
// one with the highest worst case. Ties keep configuration order.
func AnalyzeForecasts(results *domain.ForecastComparison) Recommendation {
	if results == nil || len(results.Forecasts) == 0 {
		return Recommendation{}
	}
	ranked := append([]domain.ForecastSummary(nil), results.Forecasts...)

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].ExpectedValue.GreaterThan(ranked[j].ExpectedValue) })
	best := ranked[0]
	delta := best.ExpectedValue.Sub(best.Investment)
	pct := decimal.Zero
	if !best.Investment.IsZero() {
		pct = delta.Div(best.Investment).Mul(decimal.NewFromInt(100))
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].WorstCase.GreaterThan(ranked[j].WorstCase) })
	safest := ranked[0]

	return Recommendation{
		ProfileName:      best.Name,
		ExpectedValue:    best.ExpectedValue,
		GainOverInvested: delta,
		PercentageChange: pct,
		SafestProfile:    safest.Name,
		SafestWorstCase:  safest.WorstCase,
	}
}
