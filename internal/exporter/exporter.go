// Package exporter serializes processed rows back to delimited text in a
// fixed column order.
package exporter

import (
	"strings"

	"fjacquet/testimony-csv/internal/models"
)

// derived columns always precede the original headers in the export.
var derivedHeaders = []string{"Category", "MatchedKeywords", "MonthYear"}

// Export serializes rows to delimited text. Column order is fixed:
// Category, MatchedKeywords, MonthYear, then the original headers in their
// original order. Every field is double-quoted with embedded quotes
// doubled; rows are newline-joined. Missing values serialize as empty
// quoted fields.
func Export(rows []models.ProcessedRow, headers []string) string {
	var lines []string

	headerFields := make([]string, 0, len(derivedHeaders)+len(headers))
	for _, h := range derivedHeaders {
		headerFields = append(headerFields, quote(h))
	}
	for _, h := range headers {
		headerFields = append(headerFields, quote(h))
	}
	lines = append(lines, strings.Join(headerFields, ","))

	for _, row := range rows {
		fields := make([]string, 0, len(headerFields))
		fields = append(fields,
			quote(row.Category),
			quote(row.MatchedKeywordsDisplay()),
			quote(row.MonthYear),
		)
		for _, header := range headers {
			fields = append(fields, quote(row.Row[header]))
		}
		lines = append(lines, strings.Join(fields, ","))
	}

	return strings.Join(lines, "\n")
}

// SuggestedFilename derives the export filename from the active category
// filter, lower-cased with spaces replaced.
func SuggestedFilename(categoryFilter string) string {
	name := strings.ToLower(strings.TrimSpace(categoryFilter))
	if name == "" {
		name = strings.ToLower(models.CategoryAll)
	}
	name = strings.ReplaceAll(name, " ", "_")
	return "testimonies_" + name + ".csv"
}

// quote wraps a value in double quotes, doubling any embedded quotes.
// Quote-doubling is its own inverse, which keeps export/parse round-trips
// lossless.
func quote(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
