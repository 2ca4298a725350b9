package output

import (
	"testing"

	"github.com/rpgo/portfolio-forecast/internal/domain"
	"github.com/shopspring/decimal"
)

func TestAnalyzeForecasts(t *testing.T) {
	rec := AnalyzeForecasts(buildTestComparison())
	if rec.ProfileName != "aggressive" {
		t.Errorf("ProfileName = %q, want aggressive", rec.ProfileName)
	}
	if !rec.GainOverInvested.Equal(decimal.NewFromInt(218000)) {
		t.Errorf("GainOverInvested = %s, want 218000", rec.GainOverInvested)
	}
	if !rec.PercentageChange.Equal(decimal.NewFromInt(218)) {
		t.Errorf("PercentageChange = %s, want 218", rec.PercentageChange)
	}
	if rec.SafestProfile != "conservative" {
		t.Errorf("SafestProfile = %q, want conservative", rec.SafestProfile)
	}
}

func TestAnalyzeForecasts_Empty(t *testing.T) {
	if rec := AnalyzeForecasts(&domain.ForecastComparison{}); rec.ProfileName != "" {
		t.Errorf("expected empty recommendation, got %+v", rec)
	}
	if rec := AnalyzeForecasts(nil); rec.ProfileName != "" {
		t.Errorf("expected empty recommendation, got %+v", rec)
	}
}
