package output

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rpgo/portfolio-forecast/internal/domain"
	"github.com/shopspring/decimal"
)

func buildTestComparison() *domain.ForecastComparison {
	return &domain.ForecastComparison{
		Currency:    "USD",
		GeneratedAt: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
		Forecasts: []domain.ForecastSummary{
			{
				Name: "conservative", Mean: decimal.RequireFromString("6.4324"), StandardDeviation: decimal.RequireFromString("7.6785"),
				Investment: decimal.NewFromInt(100000), Years: 20, Simulations: 10000, InflationRate: decimal.NewFromFloat(3.5),
				ExpectedValue: decimal.NewFromInt(310000), BestCase: decimal.NewFromInt(116000), Median: decimal.NewFromInt(106400), WorstCase: decimal.NewFromInt(96500),
			},
			{
				Name: "aggressive", Mean: decimal.RequireFromString("9.4324"), StandardDeviation: decimal.RequireFromString("15.6785"),
				Investment: decimal.NewFromInt(100000), Years: 20, Simulations: 10000, InflationRate: decimal.NewFromFloat(3.5),
				ExpectedValue: decimal.NewFromInt(318000), BestCase: decimal.NewFromInt(129500), Median: decimal.NewFromInt(109400), WorstCase: decimal.NewFromInt(89300),
			},
		},
	}
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestComparison())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	for _, want := range []string{
		"PORTFOLIO FORECAST SUMMARY",
		"aggressive (mean 9.43%, std dev 15.68%)",
		"Expected value: $318,000.00",
		"Worst case:     $96,500.00",
		"Highest expected value: aggressive",
		"Highest worst case:     conservative",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("console output missing %q:\n%s", want, content)
		}
	}
}

func TestConsoleFormatter_SingleProfileHasNoRecommendation(t *testing.T) {
	results := buildTestComparison()
	results.Forecasts = results.Forecasts[:1]
	out, err := ConsoleFormatter{}.Format(results)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(out), "Highest expected value") {
		t.Errorf("single profile output should not contain a recommendation:\n%s", out)
	}
}

func TestCSVSummarizer(t *testing.T) {
	out, err := CSVSummarizer{}.Format(buildTestComparison())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	if err != nil {
		t.Fatalf("invalid csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Profile" || rows[1][0] != "conservative" {
		t.Errorf("unexpected rows: %v", rows[:2])
	}
	if got := rows[2][8]; got != "129500.00" {
		t.Errorf("best case column = %q, want 129500.00", got)
	}
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestComparison())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded domain.ForecastComparison
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(decoded.Forecasts) != 2 || !decoded.Forecasts[1].BestCase.Equal(decimal.NewFromInt(129500)) {
		t.Errorf("unexpected decoded forecasts: %+v", decoded.Forecasts)
	}
}

func TestHTMLFormatter(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestComparison())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	for _, want := range []string{"<table>", "<td>aggressive</td>", "$129,500.00", "2025-01-01 12:00", "<strong>aggressive</strong>"} {
		if !strings.Contains(content, want) {
			t.Errorf("html output missing %q", want)
		}
	}
}

func TestGetFormatterByName(t *testing.T) {
	tests := map[string]string{
		"console":     "console",
		" Console ":   "console",
		"txt":         "console",
		"csv-summary": "csv",
		"html-report": "html",
		"json":        "json",
	}
	for in, want := range tests {
		f := GetFormatterByName(in)
		if f == nil {
			t.Errorf("GetFormatterByName(%q) = nil", in)
			continue
		}
		if f.Name() != want {
			t.Errorf("GetFormatterByName(%q).Name() = %q, want %q", in, f.Name(), want)
		}
	}
	if GetFormatterByName("pdf") != nil {
		t.Error("expected nil for unknown format")
	}
}

func TestAvailableFormatterNames(t *testing.T) {
	got := strings.Join(AvailableFormatterNames(), ",")
	if got != "console,csv,html,json" {
		t.Errorf("AvailableFormatterNames() = %s", got)
	}
}

func TestFileExtension(t *testing.T) {
	if got := FileExtension("text"); got != "txt" {
		t.Errorf("FileExtension(text) = %q", got)
	}
	if got := FileExtension("json-pretty"); got != "json" {
		t.Errorf("FileExtension(json-pretty) = %q", got)
	}
}

func TestWriteFormatted(t *testing.T) {
	dir := t.TempDir()
	name, err := WriteFormatted(JSONFormatter{}, buildTestComparison(), dir, "json")
	if err != nil {
		t.Fatalf("WriteFormatted error: %v", err)
	}
	if filepath.Dir(name) != dir || !strings.HasPrefix(filepath.Base(name), "forecast_report_") {
		t.Errorf("unexpected file name %q", name)
	}
	data, err := os.ReadFile(name)
	if err != nil || len(data) == 0 {
		t.Fatalf("expected written report, err=%v", err)
	}
}
