// Package dateutils provides common date parsing operations used throughout the application.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO       = "2006-01-02"
	DateLayoutEuropean  = "02.01.2006"
	DateLayoutUS        = "01/02/2006"
	DateLayoutFull      = "2006-01-02 15:04:05"
	DateLayoutMonthYear = "January 2006"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)

	// JavaScript Date.toString() exports carry a "GMT+0200 (Central European
	// Summer Time)" tail that time.Parse has no stable layout for. It is
	// stripped before format matching.
	timezoneTailRe = regexp.MustCompile(`\s*GMT[+-]\d{4}(\s*\(.*\))?$`)
)

// commonFormats is the list of formats tried in order when parsing a raw
// date value. Survey and form exports are inconsistent, so the list covers
// ISO, US, European and the verbose weekday forms produced by spreadsheet
// and JavaScript tooling.
var commonFormats = []string{
	DateLayoutISO,
	DateLayoutFull,
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"Mon Jan 02 2006 15:04:05",
	"Mon Jan 2 2006 15:04:05",
	"Mon Jan 02 2006",
	"Mon Jan 2 2006",
	time.RFC1123,
	time.RFC1123Z,
	time.ANSIC,
	DateLayoutUS,
	"01/02/2006 15:04:05",
	"02.01.2006",
	"02/01/2006",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 January 2006",
	"02 Jan 2006",
	DateLayoutMonthYear, // month bucket labels must re-parse through this list
	"Jan 2006",
}

// CleanDateString trims and normalizes a raw date value before parsing:
// surrounding whitespace is removed, runs of whitespace collapse to one
// space, and a JavaScript timezone tail is dropped.
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	dateStr = whitespaceRe.ReplaceAllString(dateStr, " ")
	dateStr = timezoneTailRe.ReplaceAllString(dateStr, "")
	return dateStr
}

// ParseDateString attempts to parse a date string using the common format
// list. Returns an error when no format matches; callers in the pipeline
// downgrade that to the Unknown sentinel rather than surfacing it.
func ParseDateString(dateStr string) (time.Time, error) {
	cleanDate := CleanDateString(dateStr)
	if cleanDate == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	for _, format := range commonFormats {
		if t, err := time.Parse(format, cleanDate); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToMonthYear formats a time as a month bucket label, e.g. "April 2025".
func ToMonthYear(date time.Time) string {
	return date.Format(DateLayoutMonthYear)
}
