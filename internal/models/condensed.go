// ABOUTME: CondensedBlock is the monthly summary that replaces a month's daily entries
// ABOUTME: At most one block exists per (year, month); blocks are never deleted
package models

import "time"

// CondensedBlock represents one condensed month of journal history
type CondensedBlock struct {
	Year        int        `json:"year"`
	Month       time.Month `json:"month"`
	Summary     string     `json:"summary"`
	SourceCount int        `json:"source_count"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CalendarMonth returns the block's (year, month) pair
func (b *CondensedBlock) CalendarMonth() Month {
	return Month{Year: b.Year, Month: b.Month}
}
