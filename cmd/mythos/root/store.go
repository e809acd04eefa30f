package root

import (
	"context"

	"github.com/KaiyzerCal/mythos-nexus/internal/config"
	"github.com/KaiyzerCal/mythos-nexus/internal/engine"
	"github.com/KaiyzerCal/mythos-nexus/internal/remote"
	"github.com/KaiyzerCal/mythos-nexus/internal/seed"
	"github.com/KaiyzerCal/mythos-nexus/internal/storage"
)

// openStore wires config, sqlite gateway, optional remote mirror and the
// compiled-in defaults into a loaded engine store.
func openStore(ctx context.Context) (*engine.Store, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	path := cfg.DBPath
	if path == "" {
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, nil, err
		}
	}

	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}

	opts := []engine.Option{}
	if mirror := remote.New(cfg.RemoteBaseURL, cfg.RemoteToken); mirror.Configured() {
		opts = append(opts, engine.WithMirror(mirror))
	}

	store := engine.Open(ctx, storage.NewSnapshotRepo(db), seed.Defaults(), opts...)

	// Close first: it runs deferred grants and drains pending writes, both of
	// which still need the database.
	cleanup := func() {
		store.Close()
		_ = db.Close()
	}
	return store, cleanup, nil
}

// openRemote builds the mirror client alone, for explicit sync commands.
func openRemote() (*remote.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return remote.New(cfg.RemoteBaseURL, cfg.RemoteToken), nil
}
