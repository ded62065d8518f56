// Package aggregator computes the aggregate statistics driving filtering
// and review: total counts, ordered per-category counts, and a top-N value
// distribution over a preview column.
package aggregator

import (
	"sort"
	"strings"

	"fjacquet/testimony-csv/internal/models"
)

const (
	// maxPreviewLen caps distribution keys; longer values are truncated.
	maxPreviewLen = 50
	// truncatedLen is the kept prefix length before the ellipsis marker.
	truncatedLen = 47
	// topValues is the number of distribution entries reported.
	topValues = 10
)

// Aggregate computes the AnalysisResult for the given month filter and
// preview column.
//
// The total is the row count after month filtering only; category and
// preview selections never affect it. Category counts are seeded from the
// current rule order with the Others sentinel appended last, so every known
// category is present even at zero and categories of removed rules
// disappear.
func Aggregate(rows []models.ProcessedRow, monthFilter, previewColumn string, rules []models.Rule) models.AnalysisResult {
	filtered := filterByMonth(rows, monthFilter)

	categorization := make([]models.CategoryCount, 0, len(rules)+1)
	index := make(map[string]int, len(rules)+1)
	for _, rule := range rules {
		if _, ok := index[rule.Name]; ok {
			continue
		}
		index[rule.Name] = len(categorization)
		categorization = append(categorization, models.CategoryCount{Name: rule.Name})
	}
	index[models.CategoryOthers] = len(categorization)
	categorization = append(categorization, models.CategoryCount{Name: models.CategoryOthers})

	for _, row := range filtered {
		if i, ok := index[row.Category]; ok {
			categorization[i].Count++
		}
	}

	return models.AnalysisResult{
		Total:          len(filtered),
		Categorization: categorization,
		Distribution:   distribution(filtered, previewColumn),
	}
}

// Filter applies the month and category predicates to produce the row
// subset for display and export. The two predicates are independent
// equality tests on disjoint fields.
func Filter(rows []models.ProcessedRow, monthFilter, categoryFilter string) []models.ProcessedRow {
	filtered := filterByMonth(rows, monthFilter)
	if categoryFilter == models.CategoryAll {
		return filtered
	}

	var result []models.ProcessedRow
	for _, row := range filtered {
		if row.Category == categoryFilter {
			result = append(result, row)
		}
	}
	return result
}

func filterByMonth(rows []models.ProcessedRow, monthFilter string) []models.ProcessedRow {
	if monthFilter == models.MonthAllTime {
		return rows
	}

	var filtered []models.ProcessedRow
	for _, row := range rows {
		if row.MonthYear == monthFilter {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// distribution counts the preview keys of the selected column and keeps the
// top entries, sorted by count descending with ties in first-seen order.
func distribution(rows []models.ProcessedRow, previewColumn string) []models.ValueCount {
	counts := make(map[string]int)
	var order []string
	for _, row := range rows {
		key := previewKey(row.Row[previewColumn])
		if _, ok := counts[key]; !ok {
			order = append(order, key)
		}
		counts[key]++
	}

	dist := make([]models.ValueCount, 0, len(order))
	for _, key := range order {
		dist = append(dist, models.ValueCount{Value: key, Count: counts[key]})
	}
	sort.SliceStable(dist, func(i, j int) bool {
		return dist[i].Count > dist[j].Count
	})

	if len(dist) > topValues {
		dist = dist[:topValues]
	}
	return dist
}

// previewKey normalizes one preview value into its distribution key:
// trimmed, truncated past maxPreviewLen, and the Empty sentinel for blank
// values.
func previewKey(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return models.PreviewEmpty
	}
	if runes := []rune(value); len(runes) > maxPreviewLen {
		return string(runes[:truncatedLen]) + "..."
	}
	return value
}
