package output

import (
	"bytes"
	"html/template"

	"github.com/rpgo/portfolio-forecast/internal/domain"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML table of the forecasts.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

const htmlTemplateSource = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Portfolio Forecast</title></head>
<body>
<h1>Portfolio Forecast</h1>
<p>Generated {{.GeneratedAt.Format "2006-01-02 15:04"}}</p>
<table>
<thead><tr><th>Profile</th><th>Mean</th><th>Std Dev</th><th>Expected</th><th>Best</th><th>Median</th><th>Worst</th></tr></thead>
<tbody>
{{- range .Forecasts}}
<tr><td>{{.Name}}</td><td>{{pct .Mean}}</td><td>{{pct .StandardDeviation}}</td><td>{{curr .ExpectedValue}}</td><td>{{curr .BestCase}}</td><td>{{curr .Median}}</td><td>{{curr .WorstCase}}</td></tr>
{{- end}}
</tbody>
</table>
{{- if .Recommendation.ProfileName}}
<p>Highest expected value: <strong>{{.Recommendation.ProfileName}}</strong></p>
{{- end}}
</body>
</html>
`

func (h HTMLFormatter) Format(results *domain.ForecastComparison) ([]byte, error) {
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"curr": func(d decimal.Decimal) string { return FormatCurrency(d, results.Currency) },
		"pct":  FormatPercentage,
	}).Parse(htmlTemplateSource)
	if err != nil {
		return nil, err
	}

	data := struct {
		*domain.ForecastComparison
		Recommendation Recommendation
	}{results, AnalyzeForecasts(results)}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
