package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/portfolio-forecast/internal/domain"
)

// CSVSummarizer implements the summary CSV output (one row per profile).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ForecastComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Profile", "Mean", "StandardDeviation", "Investment", "Years", "Simulations", "InflationRate", "ExpectedValue", "BestCase", "Median", "WorstCase"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, fc := range results.Forecasts {
		row := []string{
			fc.Name,
			fc.Mean.String(),
			fc.StandardDeviation.String(),
			fc.Investment.StringFixed(2),
			intToString(fc.Years),
			intToString(fc.Simulations),
			fc.InflationRate.String(),
			fc.ExpectedValue.StringFixed(2),
			fc.BestCase.StringFixed(2),
			fc.Median.StringFixed(2),
			fc.WorstCase.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
