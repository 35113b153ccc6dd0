// ABOUTME: Vault metadata bookkeeping beyond the crypto fields
// ABOUTME: Tracks the last condensation run so repeat passes can short-circuit
package store

import "fmt"

// MetaStore handles the vault metadata row
type MetaStore struct {
	h *handle
}

// LastCondenseRun returns the date (YYYY-MM-DD) of the last completed
// condensation pass, or "" if none has run
func (s *MetaStore) LastCondenseRun() (string, error) {
	var date string
	err := s.h.db.QueryRow(`SELECT last_condense_run FROM vault_meta WHERE id = 1`).Scan(&date)
	if err != nil {
		return "", fmt.Errorf("failed to read last condense run: %w", err)
	}
	return date, nil
}

// SetLastCondenseRun records the date of a completed condensation pass
func (s *MetaStore) SetLastCondenseRun(date string) error {
	s.h.mu.Lock()
	defer s.h.mu.Unlock()

	_, err := s.h.db.Exec(`UPDATE vault_meta SET last_condense_run = ? WHERE id = 1`, date)
	if err != nil {
		return fmt.Errorf("failed to record condense run: %w", err)
	}
	return nil
}
