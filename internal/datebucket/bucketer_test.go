package datebucket

import (
	"testing"

	"fjacquet/testimony-csv/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestBucket(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"ISO date", "2025-01-15", "January 2025"},
		{"JavaScript toString", "Sun Apr 06 2025 10:00:00", "April 2025"},
		{"With timezone tail", "Sun Apr 06 2025 10:00:00 GMT+0100 (West Africa Standard Time)", "April 2025"},
		{"Empty value", "", models.MonthUnknown},
		{"Unparsable value", "not a date", models.MonthUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := New()
			assert.Equal(t, tc.expected, b.Bucket(tc.input))
		})
	}
}

func TestMonthsDistinctAndSorted(t *testing.T) {
	b := New()
	b.Bucket("2025-04-06")
	b.Bucket("2024-12-25")
	b.Bucket("2025-04-20") // same bucket as the first
	b.Bucket("2025-01-15")
	b.Bucket("garbage") // Unknown, never collected

	assert.Equal(t, []string{"December 2024", "January 2025", "April 2025"}, b.Months())
}

func TestMonthsUnknownNeverCollected(t *testing.T) {
	b := New()
	b.Bucket("")
	b.Bucket("still not a date")

	assert.Empty(t, b.Months())
}

func TestMonthsEmptyBucketer(t *testing.T) {
	assert.Empty(t, New().Months())
}
