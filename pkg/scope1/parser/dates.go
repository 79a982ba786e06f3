package parser

import (
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// DefaultDateLayouts lists the textual date layouts tried, in order, when a
// date arrives as text rather than as a date-formatted cell.
var DefaultDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01-02-2006",
	"01-02-06",
	"1/2/06",
	// Day-first layouts only match what the month-first ones above reject.
	"02/01/2006",
	"2/1/2006",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02-01-2006",
	"2-1-2006",
	"02.01.2006",
	"02-Jan-2006",
	"2-Jan-2006",
	"02-Jan-06",
	"2 Jan 2006",
	"02 January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// TruncateDay discards the time-of-day of t, keeping its calendar date in UTC.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDateText parses a textual date against layouts (DefaultDateLayouts
// when nil) and returns the calendar date.
func ParseDateText(s string, layouts []string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if layouts == nil {
		layouts = DefaultDateLayouts
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return TruncateDay(t), true
		}
	}
	return time.Time{}, false
}

// SerialToDate converts an Excel serial day number to a timestamp.
// Non-positive serials are rejected.
func SerialToDate(serial float64, date1904 bool) (time.Time, bool) {
	if serial <= 0 {
		return time.Time{}, false
	}
	t, err := excelize.ExcelDateToTime(serial, date1904)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
