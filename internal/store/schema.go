// ABOUTME: SQLite schema for the vault database
// ABOUTME: Entity tables plus the vault metadata singleton row
package store

// Schema contains all SQL statements for database initialization.
// Text columns marked "sealed" hold encrypted base64 payloads; dates and
// counters stay plaintext so range scans and uniqueness checks work in SQL.
const Schema = `
-- Vault metadata singleton: KDF salt, password verifier, bookkeeping
CREATE TABLE IF NOT EXISTS vault_meta (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    schema_version INTEGER NOT NULL,
    kdf_salt BLOB NOT NULL,
    verifier TEXT NOT NULL,
    last_condense_run TEXT NOT NULL DEFAULT ''
);

-- User profile singleton (sealed JSON document)
CREATE TABLE IF NOT EXISTS profile (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    data TEXT NOT NULL,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Therapist notes singleton with monotonically increasing revision
CREATE TABLE IF NOT EXISTS therapist_notes (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    notes TEXT NOT NULL,
    revision INTEGER NOT NULL,
    updated_on TEXT NOT NULL
);

-- Daily journal entries (sealed body, plaintext calendar date)
CREATE TABLE IF NOT EXISTS journal_entries (
    id TEXT PRIMARY KEY,
    entry_date TEXT NOT NULL,
    body TEXT NOT NULL,
    session_origin INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Monthly condensed blocks, at most one per (year, month)
CREATE TABLE IF NOT EXISTS condensed_blocks (
    year INTEGER NOT NULL,
    month INTEGER NOT NULL,
    summary TEXT NOT NULL,
    source_count INTEGER NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (year, month)
);

CREATE INDEX IF NOT EXISTS idx_entries_date ON journal_entries(entry_date);
`

// SchemaVersion is the current schema version recorded in vault_meta
const SchemaVersion = 1
