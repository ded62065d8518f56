// Package report renders an AnalysisResult for human or machine
// consumption.
package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"fjacquet/testimony-csv/internal/logging"
	"fjacquet/testimony-csv/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// Generator renders analysis results as text, JSON, or CSV.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a Generator.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Generator{logger: logger.WithField("component", "ReportGenerator")}
}

// CategoryRow is one line of the category section of a CSV report.
type CategoryRow struct {
	Category string `csv:"category" json:"category"`
	Count    int    `csv:"count" json:"count"`
	Share    string `csv:"share_pct" json:"share_pct"`
}

// ValueRow is one line of the distribution section of a CSV report.
type ValueRow struct {
	Value string `csv:"value" json:"value"`
	Count int    `csv:"count" json:"count"`
}

// Generate renders the result in the requested format ("text", "json" or
// "csv").
func (g *Generator) Generate(result models.AnalysisResult, format string) ([]byte, error) {
	switch format {
	case "text":
		return g.generateText(result), nil
	case "json":
		return g.generateJSON(result)
	case "csv":
		return g.generateCSV(result)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) generateJSON(result models.AnalysisResult) ([]byte, error) {
	out, err := json.MarshalIndent(jsonReport{
		Total:          result.Total,
		Categorization: categoryRows(result),
		Distribution:   result.Distribution,
	}, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return out, nil
}

type jsonReport struct {
	Total          int                 `json:"total"`
	Categorization []CategoryRow       `json:"categorization"`
	Distribution   []models.ValueCount `json:"distribution"`
}

// generateCSV writes the category section followed by a blank line and the
// distribution section.
func (g *Generator) generateCSV(result models.AnalysisResult) ([]byte, error) {
	var buf bytes.Buffer

	writer := gocsv.NewSafeCSVWriter(csv.NewWriter(&buf))
	if err := gocsv.MarshalCSV(categoryRows(result), writer); err != nil {
		g.logger.WithError(err).Error("Failed to marshal category rows")
		return nil, fmt.Errorf("failed to write category rows: %w", err)
	}

	buf.WriteString("\n")

	values := make([]ValueRow, 0, len(result.Distribution))
	for _, v := range result.Distribution {
		values = append(values, ValueRow{Value: v.Value, Count: v.Count})
	}
	writer = gocsv.NewSafeCSVWriter(csv.NewWriter(&buf))
	if err := gocsv.MarshalCSV(values, writer); err != nil {
		g.logger.WithError(err).Error("Failed to marshal distribution rows")
		return nil, fmt.Errorf("failed to write distribution rows: %w", err)
	}

	return buf.Bytes(), nil
}

func (g *Generator) generateText(result models.AnalysisResult) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "Total records: %d\n\n", result.Total)

	b.WriteString("Categories:\n")
	for _, row := range categoryRows(result) {
		fmt.Fprintf(&b, "  %-30s %6d  %6s%%\n", row.Category, row.Count, row.Share)
	}

	if len(result.Distribution) > 0 {
		b.WriteString("\nTop values:\n")
		for _, v := range result.Distribution {
			fmt.Fprintf(&b, "  %-50s %6d\n", v.Value, v.Count)
		}
	}

	return []byte(b.String())
}

// categoryRows attaches a percentage share to each category count. Shares
// are computed with decimals and rendered with two fixed places so the CSV
// output is stable.
func categoryRows(result models.AnalysisResult) []CategoryRow {
	total := decimal.NewFromInt(int64(result.Total))
	hundred := decimal.NewFromInt(100)

	rows := make([]CategoryRow, 0, len(result.Categorization))
	for _, c := range result.Categorization {
		share := decimal.Zero
		if result.Total > 0 {
			share = decimal.NewFromInt(int64(c.Count)).Mul(hundred).Div(total)
		}
		rows = append(rows, CategoryRow{
			Category: c.Name,
			Count:    c.Count,
			Share:    share.StringFixed(2),
		})
	}
	return rows
}
