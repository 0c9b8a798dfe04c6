// Package time contains time related helpers and the service-request date formats
package time

import "time"

// DayLayout is the CLI date argument format (MM/DD/YYYY)
const DayLayout = "01/02/2006"

// CreatedLayout is the record timestamp format (MM/DD/YYYY hh:mm:ss AM/PM, 12-hour clock)
const CreatedLayout = "01/02/2006 03:04:05 PM"

// ParseCreated parses a record timestamp. The false return is a per-record
// skip signal, not an error: callers drop the row and move on
func ParseCreated(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(CreatedLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseDay parses a CLI day argument (DayLayout). Failure here is an
// argument error, unlike ParseCreated
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayLayout, s)
}

// EndOfDay returns 23:59:59 on t's calendar day
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
