// Package dateutils provides common date operations used throughout the application.
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
	DateLayoutUS        = "01/02/2006"
	DateLayoutFull      = "2006-01-02 15:04:05"
	DateLayoutWithMonth = "2-Jan-2006"
	MonthLayout         = "2006-01"
)

// CommonFormats is the ordered list of layouts tried when parsing bank export
// dates. More specific layouts come first so ambiguous values resolve the
// same way on every run.
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutFull,
	DateLayoutUS,
	DateLayoutWithMonth,
	"02-Jan-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2006/01/02",
	"01-02-2006",
	"2006-01-02T15:04:05",
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// ParseDate attempts to parse a date string using multiple common formats.
// Returns the parsed time and the layout that matched.
func ParseDate(dateStr string) (time.Time, string, error) {
	dateStr = CleanDateString(dateStr)
	if dateStr == "" {
		return time.Time{}, "", fmt.Errorf("empty date string")
	}

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, format, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// CleanDateString trims and collapses internal whitespace in a date string.
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	return whitespaceRe.ReplaceAllString(dateStr, " ")
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD).
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// MonthKey returns the YYYY-MM bucket a date belongs to.
func MonthKey(date time.Time) string {
	return date.Format(MonthLayout)
}

// WeekdayName returns the full English weekday name for a date.
func WeekdayName(date time.Time) string {
	return date.Weekday().String()
}

// DaysBetween returns the absolute number of whole days between two dates.
func DaysBetween(a, b time.Time) int {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return int(diff.Hours() / 24)
}
