package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile       = "file_path"
	FieldRule       = "rule"
	FieldRuleID     = "rule_id"
	FieldCategory   = "category"
	FieldKeyword    = "keyword"
	FieldColumn     = "column"
	FieldMonth      = "month"
	FieldCount      = "count"
	FieldOperation  = "operation"
	FieldError      = "error"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
