// ABOUTME: Month is a (year, month) calendar pair used to partition journal history
// ABOUTME: Provides ordering and arithmetic for the condensation window
package models

import (
	"fmt"
	"time"
)

// Month identifies a calendar month
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Before reports whether m is strictly earlier than other
func (m Month) Before(other Month) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

// AddMonths returns the month n months after m (n may be negative)
func (m Month) AddMonths(n int) Month {
	t := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	return MonthOf(t)
}

// First returns the first calendar day of the month as YYYY-MM-DD
func (m Month) First() string {
	return fmt.Sprintf("%04d-%02d-01", m.Year, int(m.Month))
}

// Last returns the last calendar day of the month as YYYY-MM-DD
func (m Month) Last() string {
	t := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1)
	return t.Format(DateLayout)
}

// String renders the month as "January 2024"
func (m Month) String() string {
	return fmt.Sprintf("%s %d", m.Month.String(), m.Year)
}
