package calendar

import "time"

// Holes is the set of three board cells (col, row) excluded from packing
// for a given date: the month cell, the day cell and the weekday cell.
type Holes struct {
	Month, Day, Weekday Cell
}

// Cell is a (col, row) coordinate on the 9x6 board (9 rows, 6 columns).
type Cell struct {
	Col, Row int
}

var weekdayCells = [7]Cell{
	time.Sunday:    {5, 8},
	time.Monday:    {3, 7},
	time.Tuesday:   {4, 7},
	time.Wednesday: {5, 7},
	time.Thursday:  {2, 8},
	time.Friday:    {3, 8},
	time.Saturday:  {4, 8},
}

// HolesFor computes the three excluded cells for a date, per the fixed
// month/day/weekday mapping table.
func HolesFor(date time.Time) Holes {
	m := int(date.Month())
	d := date.Day()
	return Holes{
		Month:   Cell{Col: (m - 1) % 6, Row: (m - 1) / 6},
		Day:     Cell{Col: (d - 1) % 6, Row: (d-1)/6 + 2},
		Weekday: weekdayCells[date.Weekday()],
	}
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
