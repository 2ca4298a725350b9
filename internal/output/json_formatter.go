package output

import (
	"encoding/json"

	"github.com/rpgo/portfolio-forecast/internal/domain"
)

// JSONFormatter serializes the forecast comparison as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.ForecastComparison) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
