// ABOUTME: Vault unlock/lock and the entity store facade
// ABOUTME: All reads and writes pass through the password-derived cipher
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/solace-app/solace/internal/vault"
)

// ErrConcurrentModification signals a stale notes revision.
// The caller must reload and retry; nothing was overwritten.
var ErrConcurrentModification = errors.New("store: concurrent modification")

// ErrIntegrity signals inconsistent stored data, surfaced but never auto-corrected
var ErrIntegrity = errors.New("store: data integrity fault")

// handle bundles the open database with the unlocked cipher.
// The mutex serializes all mutating operations (single-writer discipline).
type handle struct {
	db     *DB
	cipher *vault.Cipher
	mu     sync.Mutex
}

func (h *handle) encrypt(plaintext string) (string, error) {
	return h.cipher.Encrypt(plaintext)
}

func (h *handle) decrypt(sealed string) (string, error) {
	return h.cipher.Decrypt(sealed)
}

// Store is the unlocked vault. It is the only owner of the entities;
// all mutations go through its sub-stores.
type Store struct {
	h       *handle
	Entries *EntryStore
	Profile *ProfileStore
	Notes   *NotesStore
	Blocks  *BlockStore
	Meta    *MetaStore
}

// Unlock opens the vault at path with the given password.
// A wrong password fails with vault.ErrAuthentication and exposes nothing.
// First unlock initializes the vault (salt, verifier, schema version).
func Unlock(path, password string) (*Store, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	return unlock(db, password)
}

// UnlockInMemory creates an in-memory vault (for testing)
func UnlockInMemory(password string) (*Store, error) {
	db, err := openInMemoryDB()
	if err != nil {
		return nil, err
	}
	return unlock(db, password)
}

func unlock(db *DB, password string) (*Store, error) {
	var (
		version  int
		salt     []byte
		verifier string
	)
	err := db.QueryRow(`SELECT schema_version, kdf_salt, verifier FROM vault_meta WHERE id = 1`).
		Scan(&version, &salt, &verifier)

	var cipher *vault.Cipher
	switch {
	case err == sql.ErrNoRows:
		cipher, err = initVault(db, password)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
	case err != nil:
		_ = db.Close()
		return nil, fmt.Errorf("failed to read vault metadata: %w", err)
	default:
		if version > SchemaVersion {
			_ = db.Close()
			return nil, fmt.Errorf("vault schema version %d is newer than supported %d", version, SchemaVersion)
		}
		cipher, err = vault.Open(password, salt)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		if err := vault.CheckVerifier(cipher, verifier); err != nil {
			cipher.Zero()
			_ = db.Close()
			return nil, err
		}
	}

	h := &handle{db: db, cipher: cipher}
	return &Store{
		h:       h,
		Entries: &EntryStore{h: h},
		Profile: &ProfileStore{h: h},
		Notes:   &NotesStore{h: h},
		Blocks:  &BlockStore{h: h},
		Meta:    &MetaStore{h: h},
	}, nil
}

// initVault writes the metadata row for a brand-new vault
func initVault(db *DB, password string) (*vault.Cipher, error) {
	salt, err := vault.NewSalt()
	if err != nil {
		return nil, err
	}
	cipher, err := vault.Open(password, salt)
	if err != nil {
		return nil, err
	}
	verifier, err := vault.SealVerifier(cipher)
	if err != nil {
		cipher.Zero()
		return nil, err
	}

	_, err = db.Exec(`
		INSERT INTO vault_meta (id, schema_version, kdf_salt, verifier, last_condense_run)
		VALUES (1, ?, ?, ?, '')
	`, SchemaVersion, salt, verifier)
	if err != nil {
		cipher.Zero()
		return nil, fmt.Errorf("failed to initialize vault: %w", err)
	}

	return cipher, nil
}

// Lock wipes the key material and closes the database
func (s *Store) Lock() error {
	s.h.cipher.Zero()
	return s.h.db.Close()
}

// Path returns the vault file path
func (s *Store) Path() string {
	return s.h.db.Path()
}
