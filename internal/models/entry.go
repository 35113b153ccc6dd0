// ABOUTME: JournalEntry is one dated free-text entry, multiple allowed per day
// ABOUTME: Entries stay editable until their month is condensed away
package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-date format used throughout the store.
// Dates are local-timezone calendar days, not instants.
const DateLayout = "2006-01-02"

// JournalEntry represents a single journal entry
type JournalEntry struct {
	ID            string    `json:"id"`
	Date          string    `json:"date"` // YYYY-MM-DD
	Text          string    `json:"text"`
	SessionOrigin bool      `json:"session_origin,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewJournalEntry creates a validated entry for the given calendar date
func NewJournalEntry(date, text string, sessionOrigin bool) (*JournalEntry, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("entry text cannot be empty")
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid entry date %q: %w", date, err)
	}
	return &JournalEntry{
		ID:            generateEntryID(),
		Date:          date,
		Text:          text,
		SessionOrigin: sessionOrigin,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// Month returns the calendar month the entry belongs to
func (e *JournalEntry) Month() (Month, error) {
	t, err := time.Parse(DateLayout, e.Date)
	if err != nil {
		return Month{}, fmt.Errorf("invalid entry date %q: %w", e.Date, err)
	}
	return MonthOf(t), nil
}

func generateEntryID() string {
	return fmt.Sprintf("entry_%s_%s", time.Now().Format("20060102_150405"), uuid.New().String()[:8])
}
