package textparser

import (
	"testing"

	"fjacquet/testimony-csv/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBasic(t *testing.T) {
	table := Parse("Name,Detail\nAlice,I was healed\nBob,New job")

	assert.Equal(t, []string{"Name", "Detail"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Alice", table.Rows[0]["Name"])
	assert.Equal(t, "I was healed", table.Rows[0]["Detail"])
	assert.Equal(t, "Bob", table.Rows[1]["Name"])
}

func TestParseQuoting(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Comma inside quotes", "Detail\n\"healed, fully\"", "healed, fully"},
		{"Newline inside quotes", "Detail\n\"line one\nline two\"", "line one\nline two"},
		{"Doubled quote literal", "Detail\n\"she said \"\"amen\"\"\"", `she said "amen"`},
		{"Unterminated quote accumulates to end", "Detail\n\"no closing quote", "no closing quote"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			table := Parse(tc.input)
			require.Len(t, table.Rows, 1)
			assert.Equal(t, tc.expected, table.Rows[0]["Detail"])
		})
	}
}

func TestParseLineEndings(t *testing.T) {
	// CRLF counts as a single terminator, lone CR ends a row too.
	table := Parse("A,B\r\n1,2\r3,4\n")

	require.Len(t, table.Rows, 2)
	assert.Equal(t, "1", table.Rows[0]["A"])
	assert.Equal(t, "3", table.Rows[1]["A"])
	assert.Equal(t, "4", table.Rows[1]["B"])
}

func TestParseRaggedRows(t *testing.T) {
	table := Parse("A,B,C\n1,2\n1,2,3,4")

	require.Len(t, table.Rows, 2)
	// Missing trailing fields default to empty.
	assert.Equal(t, models.Row{"A": "1", "B": "2", "C": ""}, table.Rows[0])
	// Extra fields beyond the header count are dropped.
	assert.Equal(t, models.Row{"A": "1", "B": "2", "C": "3"}, table.Rows[1])
}

func TestParseBlankLines(t *testing.T) {
	// Blank lines are single-field empty records and get dropped; a row of
	// empty fields with a comma is kept.
	table := Parse("A,B\n\n1,2\n,\n\n")

	require.Len(t, table.Rows, 2)
	assert.Equal(t, models.Row{"A": "1", "B": "2"}, table.Rows[0])
	assert.Equal(t, models.Row{"A": "", "B": ""}, table.Rows[1])
}

func TestParseTrailingPartialRow(t *testing.T) {
	// No trailing newline: the last row is still flushed.
	table := Parse("A,B\n1,2")

	require.Len(t, table.Rows, 1)
	assert.Equal(t, "2", table.Rows[0]["B"])
}

func TestParseHeaderTrimming(t *testing.T) {
	table := Parse(" Name , Detail \nAlice,  spaced value  ")

	assert.Equal(t, []string{"Name", "Detail"}, table.Headers)
	require.Len(t, table.Rows, 1)
	// Cell values are trimmed when zipped against headers.
	assert.Equal(t, "spaced value", table.Rows[0]["Detail"])
}

func TestParseDuplicateHeaders(t *testing.T) {
	// Rightmost column with a duplicated name wins (last-write-wins).
	table := Parse("Name,Name\nfirst,second")

	assert.Equal(t, []string{"Name", "Name"}, table.Headers)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "second", table.Rows[0]["Name"])
}

func TestParseEmptyInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty string", ""},
		{"Only newlines", "\n\n\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			table := Parse(tc.input)
			assert.Empty(t, table.Headers)
			assert.True(t, table.IsEmpty())
		})
	}
}

func TestParseHeaderOnly(t *testing.T) {
	table := Parse("A,B,C\n")

	assert.Equal(t, []string{"A", "B", "C"}, table.Headers)
	assert.True(t, table.IsEmpty())
}
