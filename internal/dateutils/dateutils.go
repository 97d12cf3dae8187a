// Package dateutils provides the date parsing and formatting used for statement exports.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date layouts used by the application
const (
	DateLayoutUS   = "01/02/2006"
	DateLayoutLong = "January 02, 2006"
)

// MondayFirst lists the weekdays in report order.
var MondayFirst = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

var whitespace = regexp.MustCompile(`\s+`)

// CleanDateString trims the value and collapses inner whitespace.
func CleanDateString(dateStr string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// ParseDate parses dateStr with layout, DateLayoutUS when layout is empty.
// The result is a UTC calendar date.
func ParseDate(dateStr, layout string) (time.Time, error) {
	if layout == "" {
		layout = DateLayoutUS
	}
	clean := CleanDateString(dateStr)
	if clean == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	t, err := time.Parse(layout, clean)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date %q with layout %q: %w", dateStr, layout, err)
	}
	return t, nil
}

// FormatLong formats a date as "January 02, 2006".
func FormatLong(date time.Time) string {
	return date.Format(DateLayoutLong)
}

// WeekdayIndex returns the Monday-first position of day: Monday is 0, Sunday is 6.
func WeekdayIndex(day time.Weekday) int {
	return (int(day) + 6) % 7
}
