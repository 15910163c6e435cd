package domain

import (
	"errors"
	"time"
)

// ErrInvalidDate reports a date string that is not a well-formed
// fixed-width YYYY-MM-DD calendar date.
var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// Date is a calendar date without a time component, held in fixed-width
// YYYY-MM-DD form. The fixed width makes lexical comparison equivalent to
// chronological comparison, which the persistence layer relies on when
// range-filtering the scheduled_date column. The zero value is not a valid
// date and means "unscheduled". Construct through ParseDate.
type Date string

const dateLayout = "2006-01-02"

// ParseDate validates s as a YYYY-MM-DD date. Only the canonical
// zero-padded form is accepted; anything else returns ErrInvalidDate.
func ParseDate(s string) (Date, error) {
	if len(s) != len(dateLayout) {
		return "", ErrInvalidDate
	}
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", ErrInvalidDate
	}
	return Date(s), nil
}

// MustDate is ParseDate for literals in tests and seed data.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) String() string { return string(d) }

// IsZero reports whether d is the unscheduled zero value.
func (d Date) IsZero() bool { return d == "" }

// Time returns the date at midnight UTC. Callers must only pass validated
// dates; a zero or malformed Date yields the time zero value.
func (d Date) Time() time.Time {
	t, _ := time.Parse(dateLayout, string(d))
	return t
}

// Weekday returns the day of week for d.
func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }

// IsWeekday reports whether d falls on Monday through Friday. Weekend
// dates are never schedulable.
func (d Date) IsWeekday() bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// Next returns the following calendar day.
func (d Date) Next() Date {
	return Date(d.Time().AddDate(0, 0, 1).Format(dateLayout))
}

// Before and After compare chronologically. Fixed-width form makes this a
// plain string comparison.
func (d Date) Before(other Date) bool { return d < other }
func (d Date) After(other Date) bool  { return d > other }

// WeekdaysBetween enumerates every weekday in the closed range
// [start, end] in ascending order. Weekend days are skipped entirely, not
// represented as empty entries. An inverted range yields nil.
func WeekdaysBetween(start, end Date) []Date {
	if start.After(end) {
		return nil
	}
	var days []Date
	for d := start; !d.After(end); d = d.Next() {
		if d.IsWeekday() {
			days = append(days, d)
		}
	}
	return days
}
