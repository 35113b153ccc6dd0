// ABOUTME: Therapist notes storage with optimistic concurrency
// ABOUTME: Compare-and-swap on the revision number instead of locks
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/solace-app/solace/internal/models"
)

// NotesStore handles therapist notes persistence
type NotesStore struct {
	h *handle
}

// Get retrieves the current notes, returning nil if none exist yet
func (s *NotesStore) Get() (*models.TherapistNotes, error) {
	var (
		sealed string
		notes  models.TherapistNotes
	)
	err := s.h.db.QueryRow(`SELECT notes, revision, updated_on FROM therapist_notes WHERE id = 1`).
		Scan(&sealed, &notes.Revision, &notes.UpdatedOn)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}

	notes.Text, err = s.h.decrypt(sealed)
	if err != nil {
		return nil, err
	}
	return &notes, nil
}

// Update replaces the notes text if expectedRevision matches the stored
// revision. Returns the new revision, or ErrConcurrentModification when the
// caller's revision is stale; the stored notes are left untouched in that
// case. A vault with no notes yet has revision 0.
func (s *NotesStore) Update(text string, expectedRevision int64) (int64, error) {
	sealed, err := s.h.encrypt(text)
	if err != nil {
		return 0, err
	}
	today := time.Now().Format(models.DateLayout)
	newRevision := expectedRevision + 1

	s.h.mu.Lock()
	defer s.h.mu.Unlock()

	if expectedRevision == 0 {
		_, err = s.h.db.Exec(`
			INSERT INTO therapist_notes (id, notes, revision, updated_on)
			VALUES (1, ?, 1, ?)
		`, sealed, today)
		if err != nil {
			// The row already exists: someone wrote revision >= 1 first.
			var current int64
			if scanErr := s.h.db.QueryRow(`SELECT revision FROM therapist_notes WHERE id = 1`).Scan(&current); scanErr == nil {
				return 0, ErrConcurrentModification
			}
			return 0, fmt.Errorf("failed to create notes: %w", err)
		}
		return 1, nil
	}

	result, err := s.h.db.Exec(`
		UPDATE therapist_notes
		SET notes = ?, revision = ?, updated_on = ?
		WHERE id = 1 AND revision = ?
	`, sealed, newRevision, today, expectedRevision)
	if err != nil {
		return 0, fmt.Errorf("failed to update notes: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrConcurrentModification
	}
	return newRevision, nil
}
