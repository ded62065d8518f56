// Package session owns all in-memory state for one logical analysis
// session: the parsed table, the rule set, and the user-adjustable
// parameters. Every derived artifact is a pure function of those inputs and
// is recomputed in full whenever an input changes; there is no incremental
// update and no background computation.
package session

import (
	"fjacquet/testimony-csv/internal/aggregator"
	"fjacquet/testimony-csv/internal/classifier"
	"fjacquet/testimony-csv/internal/datebucket"
	"fjacquet/testimony-csv/internal/exporter"
	"fjacquet/testimony-csv/internal/logging"
	"fjacquet/testimony-csv/internal/models"
	"fjacquet/testimony-csv/internal/rules"
	"fjacquet/testimony-csv/internal/textparser"
)

// Session holds the single-session pipeline state. It is not safe for
// concurrent use; the system is single-threaded by design.
type Session struct {
	logger logging.Logger

	table   *models.ParsedTable
	ruleSet *rules.RuleSet

	dateColumn     string
	previewColumn  string
	monthFilter    string
	categoryFilter string

	processed []models.ProcessedRow
	months    []string
	dirty     bool
}

// New creates a session with the given rule set. Month and category filters
// start at their all-inclusive sentinels.
func New(ruleSet *rules.RuleSet, logger logging.Logger) *Session {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if ruleSet == nil {
		ruleSet = rules.NewRuleSet(nil, logger)
	}
	return &Session{
		logger:         logger,
		table:          &models.ParsedTable{},
		ruleSet:        ruleSet,
		monthFilter:    models.MonthAllTime,
		categoryFilter: models.CategoryAll,
	}
}

// Load replaces the session's table with the parse of the given text.
// A later Load supersedes any earlier one wholesale (cancel-and-replace);
// nothing from the previous upload survives except the rule set and the
// column/filter selections.
func (s *Session) Load(text string) {
	s.table = textparser.Parse(text)
	s.dirty = true

	s.logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(s.table.Rows)},
		logging.Field{Key: "columns", Value: len(s.table.Headers)},
	).Info("Loaded table")
}

// Reset clears all session state back to an empty table.
func (s *Session) Reset() {
	s.table = &models.ParsedTable{}
	s.processed = nil
	s.months = nil
	s.monthFilter = models.MonthAllTime
	s.categoryFilter = models.CategoryAll
	s.dirty = false
}

// Headers returns the current table's header list.
func (s *Session) Headers() []string {
	return s.table.Headers
}

// Rules returns the current ordered rule list.
func (s *Session) Rules() []models.Rule {
	return s.ruleSet.Rules()
}

// AddRule adds a rule and marks derived state for recomputation. Empty
// names or keyword lists are a silent no-op, mirroring RuleSet.Add.
func (s *Session) AddRule(name string, keywords []string, color string) *models.Rule {
	rule := s.ruleSet.Add(name, keywords, color)
	if rule != nil {
		s.dirty = true
	}
	return rule
}

// RemoveRule removes a rule by identifier and marks derived state for
// recomputation. Unknown identifiers are a silent no-op.
func (s *Session) RemoveRule(id string) {
	s.ruleSet.Remove(id)
	s.dirty = true
}

// SetDateColumn selects the column bucketed into month labels.
func (s *Session) SetDateColumn(column string) {
	if s.dateColumn != column {
		s.dateColumn = column
		s.dirty = true
	}
}

// SetPreviewColumn selects the column aggregated into the value
// distribution. The distribution is computed on demand, so no recompute
// flag is needed.
func (s *Session) SetPreviewColumn(column string) {
	s.previewColumn = column
}

// SetMonthFilter sets the active month filter label.
func (s *Session) SetMonthFilter(month string) {
	s.monthFilter = month
}

// SetCategoryFilter sets the active category filter.
func (s *Session) SetCategoryFilter(category string) {
	s.categoryFilter = category
}

// ProcessedRows returns the classified and bucketed rows, recomputing them
// when the table, rules, or date column changed since the last call.
func (s *Session) ProcessedRows() []models.ProcessedRow {
	if s.dirty {
		s.recompute()
	}
	return s.processed
}

// Months returns the distinct month labels seen in the current data,
// sorted chronologically. The Unknown sentinel is never included.
func (s *Session) Months() []string {
	if s.dirty {
		s.recompute()
	}
	return s.months
}

// Analysis aggregates the processed rows under the active month filter and
// preview column.
func (s *Session) Analysis() models.AnalysisResult {
	return aggregator.Aggregate(s.ProcessedRows(), s.monthFilter, s.previewColumn, s.ruleSet.Rules())
}

// FilteredRows applies the active month and category filters.
func (s *Session) FilteredRows() []models.ProcessedRow {
	return aggregator.Filter(s.ProcessedRows(), s.monthFilter, s.categoryFilter)
}

// ExportText serializes the filtered rows to delimited text.
func (s *Session) ExportText() string {
	return exporter.Export(s.FilteredRows(), s.table.Headers)
}

// ExportFilename suggests a filename for the current category filter.
func (s *Session) ExportFilename() string {
	return exporter.SuggestedFilename(s.categoryFilter)
}

// recompute rebuilds every processed row from scratch. Derived fields are
// pure functions of (row, rules, date column); a full rebuild keeps them
// consistent with all current inputs.
func (s *Session) recompute() {
	ruleList := s.ruleSet.Rules()
	activeColumns := classifier.ActiveScanColumns(s.table.Headers)
	bucketer := datebucket.New()

	processed := make([]models.ProcessedRow, 0, len(s.table.Rows))
	others := 0
	unknown := 0
	for _, row := range s.table.Rows {
		result := classifier.Classify(row, s.table.Headers, activeColumns, ruleList)

		monthYear := models.MonthUnknown
		if s.dateColumn != "" {
			monthYear = bucketer.Bucket(row[s.dateColumn])
		}

		if result.Category == models.CategoryOthers {
			others++
		}
		if monthYear == models.MonthUnknown {
			unknown++
		}

		processed = append(processed, models.ProcessedRow{
			Row:             row,
			Category:        result.Category,
			MatchedKeywords: result.MatchedKeywords,
			MonthYear:       monthYear,
		})
	}

	s.processed = processed
	s.months = bucketer.Months()
	s.dirty = false

	s.logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(processed)},
		logging.Field{Key: "others", Value: others},
		logging.Field{Key: "unknown_dates", Value: unknown},
		logging.Field{Key: "months", Value: len(s.months)},
	).Info("Processed rows")
}
