// Package datebucket normalizes date column values into month/year labels
// and collects the distinct labels seen, sorted chronologically.
package datebucket

import (
	"sort"
	"time"

	"fjacquet/testimony-csv/internal/dateutils"
	"fjacquet/testimony-csv/internal/models"
)

// Bucketer buckets raw date values into "January 2006" style labels while
// collecting the distinct set of labels produced. Values that fail to parse
// bucket to the Unknown sentinel, which is never added to the distinct set.
type Bucketer struct {
	seen  map[string]struct{}
	order []string
}

// New creates an empty Bucketer.
func New() *Bucketer {
	return &Bucketer{seen: make(map[string]struct{})}
}

// Bucket normalizes one raw value into its month label and records the
// label. Empty values, unparsable dates, and a missing date column all
// degrade to the Unknown sentinel rather than an error.
func (b *Bucketer) Bucket(rawValue string) string {
	t, err := dateutils.ParseDateString(rawValue)
	if err != nil {
		return models.MonthUnknown
	}

	label := dateutils.ToMonthYear(t)
	if _, ok := b.seen[label]; !ok {
		b.seen[label] = struct{}{}
		b.order = append(b.order, label)
	}
	return label
}

// Months returns the distinct labels collected so far, sorted ascending by
// re-parsing each label as a date. Labels that fail to re-parse compare as
// the zero time, which sorts them first consistently instead of erroring.
func (b *Bucketer) Months() []string {
	months := append([]string(nil), b.order...)
	sort.SliceStable(months, func(i, j int) bool {
		return labelTime(months[i]).Before(labelTime(months[j]))
	})
	return months
}

func labelTime(label string) time.Time {
	t, err := dateutils.ParseDateString(label)
	if err != nil {
		return time.Time{}
	}
	return t
}
