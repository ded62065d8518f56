package models

// CategoryCount is one entry of the ordered per-category count list.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ValueCount is one entry of the preview value distribution.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// AnalysisResult holds the aggregate statistics for the active month
// filter: the filtered row total, the per-category counts in rule order
// with Others last, and the top preview value distribution.
type AnalysisResult struct {
	Total          int             `json:"total"`
	Categorization []CategoryCount `json:"categorization"`
	Distribution   []ValueCount    `json:"distribution"`
}

// CategoryCountFor returns the count recorded for the named category, or
// zero when the category is not present.
func (r AnalysisResult) CategoryCountFor(name string) int {
	for _, c := range r.Categorization {
		if c.Name == name {
			return c.Count
		}
	}
	return 0
}
