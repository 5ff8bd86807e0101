package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/cordial-dev/cordial/internal/config"
	"github.com/cordial-dev/cordial/internal/store"
	"github.com/cordial-dev/cordial/internal/store/migrations"
	srvErrors "github.com/cordial-dev/cordial/pkg/errors"
)

// Directory owns the guest store and the pool behind it for the life of the process.
type Directory struct {
	store *store.Store
}

// NewDirectory builds the directory described by cfg: an embedded DuckDB
// database, or PostgreSQL reached through the DB_* environment variables.
func NewDirectory(ctx context.Context, cfg config.Database) (*Directory, error) {
	if cfg.Engine == config.EngineDuckDB {
		return NewEmbeddedDirectory(ctx, cfg)
	}

	profile, err := config.ProfileFromEnvironment()
	if err != nil {
		return nil, err
	}
	return NewPostgresDirectory(ctx, cfg, profile)
}

// NewPostgresDirectory bootstraps the profile's database according to
// cfg.Bootstrap and wraps the resulting pool.
func NewPostgresDirectory(ctx context.Context, cfg config.Database, profile *config.Profile) (*Directory, error) {
	zap.S().Named("directory").Infow("connecting", "profile", profile, "bootstrap", cfg.Bootstrap)

	server, err := profile.ConnConfig(false)
	if err != nil {
		return nil, err
	}

	b := NewBootstrap(
		store.NewPostgresAdmin(server, profile.Database),
		func() (*store.Pool, error) { return profile.OpenPool(poolOptions(cfg)...) },
		cfg.ConnectTimeout,
	)

	var pool *store.Pool
	if cfg.Bootstrap == config.BootstrapDevelopment {
		pool, err = b.Development(ctx)
	} else {
		pool, err = b.Existing(ctx)
	}
	if err != nil {
		return nil, err
	}
	return NewDirectoryFromPool(pool), nil
}

// NewEmbeddedDirectory opens the DuckDB database at cfg.Path and migrates it.
func NewEmbeddedDirectory(ctx context.Context, cfg config.Database) (*Directory, error) {
	db, err := store.NewDB(cfg.Path)
	if err != nil {
		return nil, srvErrors.NewConnectionError("open embedded database", err)
	}
	pool := store.NewPool(db, poolOptions(cfg)...)

	if err := migrations.Run(ctx, db); err != nil {
		pool.Close()
		return nil, srvErrors.NewStoreError("migrate database", err)
	}
	zap.S().Named("directory").Infow("embedded database ready", "path", cfg.Path)
	return NewDirectoryFromPool(pool), nil
}

func NewDirectoryFromPool(pool *store.Pool) *Directory {
	return &Directory{store: store.NewStore(pool)}
}

func (d *Directory) Guests() *store.GuestStore {
	return d.store.Guests()
}

func (d *Directory) Pool() *store.Pool {
	return d.store.Pool()
}

func (d *Directory) Close() error {
	return d.store.Close()
}

func poolOptions(cfg config.Database) []store.PoolOption {
	return []store.PoolOption{
		store.WithMaxConnections(cfg.MaxConnections),
		store.WithAcquireTimeout(cfg.AcquireTimeout),
	}
}
