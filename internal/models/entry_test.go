// ABOUTME: Tests for journal entry construction and validation
// ABOUTME: Dates must be valid calendar days; text must be non-empty
package models

import (
	"strings"
	"testing"
	"time"
)

func TestNewJournalEntry(t *testing.T) {
	entry, err := NewJournalEntry("2024-03-15", "a good day", false)
	if err != nil {
		t.Fatalf("NewJournalEntry() error: %v", err)
	}
	if !strings.HasPrefix(entry.ID, "entry_") {
		t.Errorf("entry ID %q missing prefix", entry.ID)
	}
	if entry.Date != "2024-03-15" {
		t.Errorf("entry date = %q", entry.Date)
	}
	if entry.SessionOrigin {
		t.Error("entry should not be session-origin")
	}
	if entry.CreatedAt.IsZero() {
		t.Error("entry missing creation timestamp")
	}
}

func TestNewJournalEntryValidation(t *testing.T) {
	if _, err := NewJournalEntry("2024-03-15", "   ", false); err == nil {
		t.Error("accepted blank text")
	}
	if _, err := NewJournalEntry("not-a-date", "text", false); err == nil {
		t.Error("accepted malformed date")
	}
	if _, err := NewJournalEntry("2024-02-30", "text", false); err == nil {
		t.Error("accepted impossible calendar day")
	}
}

func TestJournalEntryMonth(t *testing.T) {
	entry, err := NewJournalEntry("2024-03-15", "text", true)
	if err != nil {
		t.Fatalf("NewJournalEntry() error: %v", err)
	}
	m, err := entry.Month()
	if err != nil {
		t.Fatalf("Month() error: %v", err)
	}
	if m != (Month{2024, time.March}) {
		t.Errorf("Month() = %v, want March 2024", m)
	}
}

func TestEntryIDUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		entry, err := NewJournalEntry("2024-03-15", "text", false)
		if err != nil {
			t.Fatalf("NewJournalEntry() error: %v", err)
		}
		if seen[entry.ID] {
			t.Fatalf("duplicate entry ID %q", entry.ID)
		}
		seen[entry.ID] = true
	}
}
