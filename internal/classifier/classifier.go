// Package classifier scores rows against the rule set and assigns each row
// a category plus matched-keyword evidence.
//
// Classification is pure and total: the same (row, scan columns, rules)
// always yields the same result and there is no error path.
package classifier

import (
	"strings"

	"fjacquet/testimony-csv/internal/models"
)

// detailColumnFragments are the header phrase fragments that mark a column
// as testimony detail text. Columns whose header contains one of these,
// case-insensitively, are preferred for classification.
var detailColumnFragments = []string{
	"share your testimony in details",
	"what was the case before now",
	"narrate what happened to you in this meeting",
	"what was the condition before now",
}

// Result is the outcome of classifying one row.
type Result struct {
	Category        string
	MatchedKeywords []string
}

// ActiveScanColumns returns the headers that match a known detail phrase
// fragment, preserving header order.
func ActiveScanColumns(headers []string) []string {
	var active []string
	for _, header := range headers {
		lower := strings.ToLower(header)
		for _, fragment := range detailColumnFragments {
			if strings.Contains(lower, fragment) {
				active = append(active, header)
				break
			}
		}
	}
	return active
}

// Classify scores the row against every rule in list order and returns the
// winning category and the matched-keyword evidence.
//
// The score of a rule is the number of distinct keywords occurring as
// substrings of the assembled row text; repeated occurrences of one keyword
// count once. The best rule is tracked with a strict greater-than
// comparison, so on ties the earliest rule in list order wins. Evidence
// collects every keyword that matched during evaluation, across all rules,
// deduplicated in first-seen order. When no rule scores above zero the
// category is the Others sentinel.
func Classify(row models.Row, headers, activeColumns []string, rules []models.Rule) Result {
	text := assembleText(row, headers, activeColumns)

	var (
		bestRule  *models.Rule
		bestScore int
		evidence  []string
		seen      = make(map[string]struct{})
	)

	for i := range rules {
		rule := &rules[i]

		score := 0
		matched := make(map[string]struct{})
		for _, keyword := range rule.Keywords {
			lower := strings.ToLower(keyword)
			if lower == "" || !strings.Contains(text, lower) {
				continue
			}
			if _, dup := matched[keyword]; dup {
				continue // duplicate keyword inside the rule, harmless
			}
			matched[keyword] = struct{}{}
			score++

			if _, dup := seen[keyword]; !dup {
				seen[keyword] = struct{}{}
				evidence = append(evidence, keyword)
			}
		}

		if score > bestScore {
			bestScore = score
			bestRule = rule
		}
	}

	if bestRule == nil || bestScore == 0 {
		return Result{Category: models.CategoryOthers}
	}
	return Result{Category: bestRule.Name, MatchedKeywords: evidence}
}

// assembleText concatenates the scan columns' values (all columns when no
// scan column is active), space-separated and lower-cased once.
func assembleText(row models.Row, headers, activeColumns []string) string {
	columns := activeColumns
	if len(columns) == 0 {
		columns = headers
	}

	parts := make([]string, 0, len(columns))
	for _, column := range columns {
		parts = append(parts, row[column])
	}
	return strings.ToLower(strings.Join(parts, " "))
}
