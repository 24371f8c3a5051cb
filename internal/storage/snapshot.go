// Package storage implements the persistence partition: the narrow subset
// of store state written to local durable storage so the UI can render
// immediately on reload, before the remote session is confirmed.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/festaperfeita/festa/internal/types"
)

// snapshotKey is the fixed key the partition lives under. Collections are
// deliberately excluded so a stale local cache can never diverge from the
// gateway's copy.
const snapshotKey = "festa-perfeita-storage"

// Snapshot is the full persisted state: the authentication flag and the
// cached profile, nothing else.
type Snapshot struct {
	IsAuthenticated bool               `json:"isAuthenticated"`
	User            *types.UserProfile `json:"user"`
}

// SnapshotStore persists Snapshots in a local sqlite key/value table.
type SnapshotStore struct {
	db *sql.DB
}

// Open opens (creating if needed) the sqlite database at path and ensures
// the kv schema exists.
func Open(path string) (*SnapshotStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
        key TEXT PRIMARY KEY,
        value BLOB NOT NULL
    );`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure snapshot schema: %w", err)
	}
	return &SnapshotStore{db: db}, nil
}

// Save serializes snap under the fixed storage key, replacing any previous
// value.
func (s *SnapshotStore) Save(ctx context.Context, snap Snapshot) error {
	value, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
        INSERT INTO kv (key, value) VALUES (?, ?)
        ON CONFLICT(key) DO UPDATE SET value = excluded.value
    `, snapshotKey, value)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Load returns the stored snapshot, or nil when none has been saved yet.
func (s *SnapshotStore) Load(ctx context.Context) (*Snapshot, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, snapshotKey).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(value, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

// Clear removes the stored snapshot.
func (s *SnapshotStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, snapshotKey); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SnapshotStore) Close() error {
	return s.db.Close()
}
