// Package textparser turns raw delimited text into a header list and an
// ordered sequence of row mappings.
//
// The scanner is deliberately lenient: malformed quoting and ragged rows
// never produce an error. An unterminated quote simply accumulates to end of
// input, missing trailing fields default to the empty string and extra
// fields beyond the header count are dropped. Callers never need an error
// path for structural problems in uploaded data.
package textparser

import (
	"strings"

	"fjacquet/testimony-csv/internal/models"
)

// Parse scans text into a ParsedTable. The first kept row becomes the
// trimmed header list; each subsequent row is zipped positionally against
// the headers.
//
// Scanning rules:
//   - a double quote toggles quoting, except a doubled quote inside a quoted
//     field which emits one literal quote;
//   - a comma outside quotes ends the field;
//   - a line terminator outside quotes ends the row, with CRLF counting as
//     one terminator;
//   - a completed row is discarded only when it has exactly one field and
//     that field is empty (blank trailing lines);
//   - any trailing partial row at end of input is flushed under the same
//     discard rule.
//
// Duplicate header names collide on the later occurrence: the rightmost
// column with a given name wins when rows are zipped (last-write-wins).
func Parse(text string) *models.ParsedTable {
	records := scan(text)
	if len(records) == 0 {
		return &models.ParsedTable{}
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]models.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(models.Row, len(headers))
		for i, header := range headers {
			if i < len(record) {
				row[header] = strings.TrimSpace(record[i])
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}

	return &models.ParsedTable{Headers: headers, Rows: rows}
}

// scan splits text into raw field records, applying the quoting and
// row-discard rules. Field values are not trimmed here; trimming happens
// when rows are zipped against headers.
func scan(text string) [][]string {
	var (
		records  [][]string
		current  []string
		field    strings.Builder
		inQuotes bool
	)

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				field.WriteRune('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			current = append(current, field.String())
			field.Reset()
		case (ch == '\n' || ch == '\r') && !inQuotes:
			if ch == '\r' && i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
			current = append(current, field.String())
			field.Reset()
			if keepRecord(current) {
				records = append(records, current)
			}
			current = nil
		default:
			field.WriteRune(ch)
		}
	}

	// Flush the trailing partial row, same discard rule as above.
	current = append(current, field.String())
	if keepRecord(current) {
		records = append(records, current)
	}

	return records
}

// keepRecord rejects only single-field empty records, which guards against
// blank trailing lines without dropping legitimately sparse rows.
func keepRecord(record []string) bool {
	return len(record) != 1 || record[0] != ""
}
