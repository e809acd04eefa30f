package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/KaiyzerCal/mythos-nexus/internal/engine"
)

func newTestRepo(t *testing.T) *SnapshotRepo {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return NewSnapshotRepo(db)
}

func TestLoadSnapshotMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.LoadSnapshot(context.Background(), engine.SnapshotKey)
	if !errors.Is(err, engine.ErrNoSnapshot) {
		t.Fatalf("err = %v, want ErrNoSnapshot", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	payload := []byte(`{"version":2,"character":{"level":4}}`)
	if err := repo.SaveSnapshot(ctx, engine.SnapshotKey, engine.SnapshotVersion, payload); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.LoadSnapshot(ctx, engine.SnapshotKey)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("payload = %s, want %s", got, payload)
	}
}

func TestSaveSnapshotOverwrites(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.SaveSnapshot(ctx, engine.SnapshotKey, engine.SnapshotVersion, []byte(`{"v":1}`)); err != nil {
		t.Fatalf("save 1: %v", err)
	}
	if err := repo.SaveSnapshot(ctx, engine.SnapshotKey, engine.SnapshotVersion, []byte(`{"v":2}`)); err != nil {
		t.Fatalf("save 2: %v", err)
	}

	got, err := repo.LoadSnapshot(ctx, engine.SnapshotKey)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `{"v":2}` {
		t.Fatalf("payload = %s, want latest write", got)
	}
}
