package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/KaiyzerCal/mythos-nexus/internal/engine"
)

// SnapshotRepo persists whole-state documents. It satisfies engine.Gateway.
type SnapshotRepo struct {
	db *sql.DB
}

func NewSnapshotRepo(db *sql.DB) *SnapshotRepo {
	return &SnapshotRepo{db: db}
}

// SaveSnapshot upserts the document stored under key.
func (r *SnapshotRepo) SaveSnapshot(ctx context.Context, key string, version int, payload []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO snapshots (key, version, payload, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET version = excluded.version, payload = excluded.payload, updated_at = excluded.updated_at
	`, key, version, payload, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("snapshot save: %w", err)
	}
	return nil
}

// LoadSnapshot reads the document stored under key. Returns
// engine.ErrNoSnapshot when nothing has been persisted yet.
func (r *SnapshotRepo) LoadSnapshot(ctx context.Context, key string) ([]byte, error) {
	row := r.db.QueryRowContext(ctx, `SELECT payload FROM snapshots WHERE key = ?`, key)

	var payload []byte
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, engine.ErrNoSnapshot
		}
		return nil, fmt.Errorf("snapshot load: %w", err)
	}
	return payload, nil
}
