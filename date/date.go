// Package date provides a calendar date with day granularity.
package date

import "time"

// DisplayFormat is the day/month/year format used in reports.
const DisplayFormat = "02/01/2006"

// Date represent a date with no lower than day granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date in the local time zone.
func Today() Date { return New(time.Now().Date()) }

// Display formats the date as day/month/year (e.g. 07/03/2025).
func (d Date) Display() string { return d.time().Format(DisplayFormat) }
