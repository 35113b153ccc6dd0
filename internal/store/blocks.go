// ABOUTME: Condensed block storage and the atomic condense transaction
// ABOUTME: Block insert and source entry deletion commit together or not at all
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/solace-app/solace/internal/models"
)

// BlockStore handles condensed block persistence
type BlockStore struct {
	h *handle
}

// Exists reports whether a condensed block exists for the month
func (s *BlockStore) Exists(m models.Month) (bool, error) {
	var one int
	err := s.h.db.QueryRow(`SELECT 1 FROM condensed_blocks WHERE year = ? AND month = ?`,
		m.Year, int(m.Month)).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query block: %w", err)
	}
	return true, nil
}

// Get retrieves the block for a month, returning nil if none exists
func (s *BlockStore) Get(m models.Month) (*models.CondensedBlock, error) {
	var (
		block  models.CondensedBlock
		month  int
		sealed string
	)
	err := s.h.db.QueryRow(`
		SELECT year, month, summary, source_count, created_at
		FROM condensed_blocks
		WHERE year = ? AND month = ?
	`, m.Year, int(m.Month)).Scan(&block.Year, &month, &sealed, &block.SourceCount, &block.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query block: %w", err)
	}

	block.Month = time.Month(month)
	block.Summary, err = s.h.decrypt(sealed)
	if err != nil {
		return nil, err
	}
	return &block, nil
}

// ListBefore retrieves all blocks strictly older than cutoff, oldest first
func (s *BlockStore) ListBefore(cutoff models.Month) ([]models.CondensedBlock, error) {
	rows, err := s.h.db.Query(`
		SELECT year, month, summary, source_count, created_at
		FROM condensed_blocks
		WHERE year < ? OR (year = ? AND month < ?)
		ORDER BY year ASC, month ASC
	`, cutoff.Year, cutoff.Year, int(cutoff.Month))
	if err != nil {
		return nil, fmt.Errorf("failed to query blocks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return s.scanBlocks(rows)
}

// ListAll retrieves every block, oldest first
func (s *BlockStore) ListAll() ([]models.CondensedBlock, error) {
	rows, err := s.h.db.Query(`
		SELECT year, month, summary, source_count, created_at
		FROM condensed_blocks
		ORDER BY year ASC, month ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query blocks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return s.scanBlocks(rows)
}

// Condense atomically creates the block for a month and deletes its source
// entries. A crash mid-operation rolls back to the pre-condense state: either
// the block exists and the entries are gone, or neither happened.
func (s *BlockStore) Condense(m models.Month, summary string, entryIDs []string) error {
	if len(entryIDs) == 0 {
		return fmt.Errorf("refusing to condense %s with no source entries", m)
	}
	sealed, err := s.h.encrypt(summary)
	if err != nil {
		return err
	}

	s.h.mu.Lock()
	defer s.h.mu.Unlock()

	tx, err := s.h.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin condense transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`
		INSERT INTO condensed_blocks (year, month, summary, source_count, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, m.Year, int(m.Month), sealed, len(entryIDs), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to insert block for %s: %w", m, err)
	}

	for _, id := range entryIDs {
		result, err := tx.Exec(`DELETE FROM journal_entries WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete entry %s: %w", id, err)
		}
		n, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("%w: entry %s vanished during condensation", ErrIntegrity, id)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit condense transaction: %w", err)
	}
	return nil
}

func (s *BlockStore) scanBlocks(rows *sql.Rows) ([]models.CondensedBlock, error) {
	var blocks []models.CondensedBlock
	for rows.Next() {
		var (
			block  models.CondensedBlock
			month  int
			sealed string
		)
		if err := rows.Scan(&block.Year, &month, &sealed, &block.SourceCount, &block.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan block: %w", err)
		}
		block.Month = time.Month(month)
		summary, err := s.h.decrypt(sealed)
		if err != nil {
			return nil, err
		}
		block.Summary = summary
		blocks = append(blocks, block)
	}
	return blocks, rows.Err()
}
