package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/portfolio-forecast/internal/domain"
)

// ConsoleFormatter provides a plain text summary, one block per profile.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.ForecastComparison) ([]byte, error) {
	var buf bytes.Buffer
	cur := results.Currency
	fmt.Fprintln(&buf, "PORTFOLIO FORECAST SUMMARY")
	fmt.Fprintln(&buf, "================================")
	for _, fc := range results.Forecasts {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "%s (mean %s, std dev %s)\n", fc.Name, FormatPercentage(fc.Mean), FormatPercentage(fc.StandardDeviation))
		fmt.Fprintf(&buf, "  Investment:     %s over %d years\n", FormatCurrency(fc.Investment, cur), fc.Years)
		fmt.Fprintf(&buf, "  Simulations:    %d at %s inflation\n", fc.Simulations, FormatPercentage(fc.InflationRate))
		fmt.Fprintf(&buf, "  Expected value: %s\n", FormatCurrency(fc.ExpectedValue, cur))
		fmt.Fprintf(&buf, "  Best case:      %s\n", FormatCurrency(fc.BestCase, cur))
		fmt.Fprintf(&buf, "  Median:         %s\n", FormatCurrency(fc.Median, cur))
		fmt.Fprintf(&buf, "  Worst case:     %s\n", FormatCurrency(fc.WorstCase, cur))
	}
	if len(results.Forecasts) > 1 {
		rec := AnalyzeForecasts(results)
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Highest expected value: %s (Δ %s / %s)\n", rec.ProfileName, FormatCurrency(rec.GainOverInvested, cur), FormatPercentage(rec.PercentageChange))
		fmt.Fprintf(&buf, "Highest worst case:     %s (%s)\n", rec.SafestProfile, FormatCurrency(rec.SafestWorstCase, cur))
	}
	return buf.Bytes(), nil
}
