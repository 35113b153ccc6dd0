// ABOUTME: User profile storage operations
// ABOUTME: Singleton row holding a sealed JSON document with merge-on-upsert
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/solace-app/solace/internal/models"
)

// ProfileStore handles user profile persistence
type ProfileStore struct {
	h *handle
}

// Get retrieves the profile, returning nil if none has been written yet
func (s *ProfileStore) Get() (*models.Profile, error) {
	var (
		sealed    string
		updatedAt time.Time
	)
	err := s.h.db.QueryRow(`SELECT data, updated_at FROM profile WHERE id = 1`).
		Scan(&sealed, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query profile: %w", err)
	}

	data, err := s.h.decrypt(sealed)
	if err != nil {
		return nil, err
	}

	var profile models.Profile
	if err := json.Unmarshal([]byte(data), &profile); err != nil {
		return nil, fmt.Errorf("%w: undecodable profile record", ErrIntegrity)
	}
	profile.LastUpdated = updatedAt
	return &profile, nil
}

// Upsert merges the populated fields of partial into the stored profile.
// The profile is created lazily on first write; empty fields never clobber
// existing values.
func (s *ProfileStore) Upsert(partial *models.Profile) error {
	current, err := s.Get()
	if err != nil {
		return err
	}
	if current == nil {
		current = &models.Profile{}
	}
	current.Merge(partial)

	data, err := json.Marshal(current)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	sealed, err := s.h.encrypt(string(data))
	if err != nil {
		return err
	}

	s.h.mu.Lock()
	defer s.h.mu.Unlock()

	_, err = s.h.db.Exec(`
		INSERT INTO profile (id, data, updated_at)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at
	`, sealed, current.LastUpdated)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}
