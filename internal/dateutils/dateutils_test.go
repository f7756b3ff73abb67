package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name       string
		dateStr    string
		expectedOk bool
		expectedY  int
		expectedM  time.Month
		expectedD  int
	}{
		{"ISO format", "2024-01-15", true, 2024, time.January, 15},
		{"US format", "01/15/2024", true, 2024, time.January, 15},
		{"Full timestamp", "2024-01-15 10:30:45", true, 2024, time.January, 15},
		{"With month name", "15-Jan-2024", true, 2024, time.January, 15},
		{"Slash ISO", "2024/01/15", true, 2024, time.January, 15},
		{"Extra whitespace", "  2024-01-15  ", true, 2024, time.January, 15},
		{"Empty string", "", false, 0, 0, 0},
		{"Invalid format", "not a date", false, 0, 0, 0},
		{"Numeric noise", "N/A", false, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, _, err := ParseDate(tc.dateStr)

			if tc.expectedOk {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedY, date.Year())
				assert.Equal(t, tc.expectedM, date.Month())
				assert.Equal(t, tc.expectedD, date.Day())
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestToISODate(t *testing.T) {
	date := time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-02-05", ToISODate(date))
}

func TestMonthKey(t *testing.T) {
	date := time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-02", MonthKey(date))
}

func TestWeekdayName(t *testing.T) {
	// 2024-01-02 was a Tuesday.
	date := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Tuesday", WeekdayName(date))
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 3, DaysBetween(a, b))
	assert.Equal(t, 3, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))
}
