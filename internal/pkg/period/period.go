// Package period holds the calendar helpers shared by attendance and payroll:
// month-name parsing for the wire contract, month lengths and ordering of
// (month, year) pairs.
package period

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Period identifies one payroll month.
type Period struct {
	Month time.Month
	Year  int
}

// New builds a Period from a month number.
func New(month int, year int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("invalid month %d", month)
	}
	if year < 1 {
		return Period{}, fmt.Errorf("invalid year %d", year)
	}
	return Period{Month: time.Month(month), Year: year}, nil
}

// Parse accepts a full month name ("January"), a three-letter abbreviation
// or a month number, as the attendance summary table stores the month by name.
func Parse(month string, year int) (Period, error) {
	m, err := ParseMonth(month)
	if err != nil {
		return Period{}, err
	}
	return New(int(m), year)
}

// ParseMonth resolves a month name or number.
func ParseMonth(s string) (time.Month, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("invalid month %q", s)
		}
		return time.Month(n), nil
	}
	for m := time.January; m <= time.December; m++ {
		name := m.String()
		if strings.EqualFold(s, name) || strings.EqualFold(s, name[:3]) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("invalid month %q", s)
}

// MonthName is the wire representation of the month.
func (p Period) MonthName() string {
	return p.Month.String()
}

// Days returns the number of calendar days in the month.
func (p Period) Days() int {
	return time.Date(p.Year, p.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Start returns the first day of the month in loc.
func (p Period) Start(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, loc)
}

// End returns the first instant after the month in loc.
func (p Period) End(loc *time.Location) time.Time {
	return p.Start(loc).AddDate(0, 1, 0)
}

// Before reports whether p is strictly earlier than q.
func (p Period) Before(q Period) bool {
	if p.Year != q.Year {
		return p.Year < q.Year
	}
	return p.Month < q.Month
}

// Of returns the period containing t.
func Of(t time.Time) Period {
	return Period{Month: t.Month(), Year: t.Year()}
}

func (p Period) String() string {
	return fmt.Sprintf("%s %d", p.MonthName(), p.Year)
}
