package models

// Row maps header names to cell values for one parsed record. Headers
// missing from a ragged row are present with an empty value.
type Row map[string]string

// ParsedTable is the result of parsing a delimited upload: the trimmed
// header list plus the ordered data rows.
type ParsedTable struct {
	Headers []string
	Rows    []Row
}

// IsEmpty reports whether the table holds no data rows.
func (t *ParsedTable) IsEmpty() bool {
	return t == nil || len(t.Rows) == 0
}
