// ABOUTME: Journal entry storage operations
// ABOUTME: Entries are keyed by calendar date; bodies are sealed at rest
package store

import (
	"fmt"
	"time"

	"github.com/solace-app/solace/internal/models"
)

// EntryStore handles journal entry persistence
type EntryStore struct {
	h *handle
}

// Create persists a new journal entry and returns its ID
func (s *EntryStore) Create(date, text string, sessionOrigin bool) (string, error) {
	entry, err := models.NewJournalEntry(date, text, sessionOrigin)
	if err != nil {
		return "", err
	}

	sealed, err := s.h.encrypt(entry.Text)
	if err != nil {
		return "", err
	}

	s.h.mu.Lock()
	defer s.h.mu.Unlock()

	origin := 0
	if entry.SessionOrigin {
		origin = 1
	}
	_, err = s.h.db.Exec(`
		INSERT INTO journal_entries (id, entry_date, body, session_origin, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, entry.ID, entry.Date, sealed, origin, entry.CreatedAt)
	if err != nil {
		return "", fmt.Errorf("failed to insert entry: %w", err)
	}

	return entry.ID, nil
}

// Update replaces the text of an existing daily entry.
// Entries absorbed by condensation no longer exist, so only loose
// entries can ever be reached here.
func (s *EntryStore) Update(id, text string) error {
	sealed, err := s.h.encrypt(text)
	if err != nil {
		return err
	}

	s.h.mu.Lock()
	defer s.h.mu.Unlock()

	result, err := s.h.db.Exec(`UPDATE journal_entries SET body = ? WHERE id = ?`, sealed, id)
	if err != nil {
		return fmt.Errorf("failed to update entry: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("entry not found: %s", id)
	}
	return nil
}

// ListRange retrieves entries with from <= date <= to, chronological.
// Ties within a day break by creation time, then ID, so ordering is stable.
func (s *EntryStore) ListRange(from, to string) ([]models.JournalEntry, error) {
	rows, err := s.h.db.Query(`
		SELECT id, entry_date, body, session_origin, created_at
		FROM journal_entries
		WHERE entry_date >= ? AND entry_date <= ?
		ORDER BY entry_date ASC, created_at ASC, id ASC
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []models.JournalEntry
	for rows.Next() {
		var (
			entry  models.JournalEntry
			sealed string
			origin int
		)
		if err := rows.Scan(&entry.ID, &entry.Date, &sealed, &origin, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entry.Text, err = s.h.decrypt(sealed)
		if err != nil {
			return nil, err
		}
		entry.SessionOrigin = origin != 0
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// ListMonth retrieves all entries for one calendar month, chronological
func (s *EntryStore) ListMonth(m models.Month) ([]models.JournalEntry, error) {
	return s.ListRange(m.First(), m.Last())
}

// MonthsBefore returns the distinct months with loose entries strictly
// older than cutoff, oldest first
func (s *EntryStore) MonthsBefore(cutoff models.Month) ([]models.Month, error) {
	rows, err := s.h.db.Query(`
		SELECT DISTINCT substr(entry_date, 1, 7) AS ym
		FROM journal_entries
		WHERE ym < ?
		ORDER BY ym ASC
	`, fmt.Sprintf("%04d-%02d", cutoff.Year, int(cutoff.Month)))
	if err != nil {
		return nil, fmt.Errorf("failed to query entry months: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var months []models.Month
	for rows.Next() {
		var ym string
		if err := rows.Scan(&ym); err != nil {
			return nil, fmt.Errorf("failed to scan month: %w", err)
		}
		t, err := time.Parse("2006-01", ym)
		if err != nil {
			return nil, fmt.Errorf("%w: bad entry date prefix %q", ErrIntegrity, ym)
		}
		months = append(months, models.MonthOf(t))
	}

	return months, rows.Err()
}
