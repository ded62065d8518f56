// Package models provides the data structures used throughout the application.
package models

// Sentinel values used by the processing pipeline. Every stage is total:
// non-matches are represented by these values instead of errors.
const (
	// CategoryOthers is assigned when no rule scores above zero.
	CategoryOthers = "Others"

	// MonthUnknown is assigned when the date column value cannot be parsed.
	MonthUnknown = "Unknown"

	// PreviewEmpty is the distribution key for empty preview values.
	PreviewEmpty = "(Empty)"

	// MonthAllTime disables month filtering.
	MonthAllTime = "All Time"

	// CategoryAll disables category filtering.
	CategoryAll = "All"
)

// MonthYearLayout is the label format for month buckets, e.g. "April 2025".
// Labels must round-trip through the generic date parser so the distinct
// label set can be sorted chronologically.
const MonthYearLayout = "January 2006"
