package models

import "strings"

// ProcessedRow is one parsed row enriched with its derived fields: the
// assigned category, the matched-keyword evidence, and the month bucket.
type ProcessedRow struct {
	Row             Row
	Category        string
	MatchedKeywords []string
	MonthYear       string
}

// MatchedKeywordsDisplay renders the evidence list for display and export,
// comma-and-space separated in first-seen order.
func (p *ProcessedRow) MatchedKeywordsDisplay() string {
	return strings.Join(p.MatchedKeywords, ", ")
}
