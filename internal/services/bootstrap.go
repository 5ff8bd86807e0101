package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/cordial-dev/cordial/internal/store"
	"github.com/cordial-dev/cordial/internal/store/migrations"
	srvErrors "github.com/cordial-dev/cordial/pkg/errors"
)

// DatabaseAdmin runs server-level operations for the target database.
type DatabaseAdmin interface {
	Ping(ctx context.Context) error
	DropDatabase(ctx context.Context) error
	CreateDatabase(ctx context.Context) error
}

// PoolOpener opens a lazy pool on the target database.
type PoolOpener func() (*store.Pool, error)

// Bootstrap prepares the target database and hands back a ready pool.
//
// Development is destructive: it drops and recreates the database. It must
// never run against a database holding data worth keeping, and two
// development bootstraps against the same server race each other.
type Bootstrap struct {
	admin          DatabaseAdmin
	open           PoolOpener
	connectTimeout time.Duration
}

func NewBootstrap(admin DatabaseAdmin, open PoolOpener, connectTimeout time.Duration) *Bootstrap {
	return &Bootstrap{
		admin:          admin,
		open:           open,
		connectTimeout: connectTimeout,
	}
}

// Development drops the database if it exists, creates it, applies every
// migration on a short-lived pool and returns the long-lived pool.
func (b *Bootstrap) Development(ctx context.Context) (*store.Pool, error) {
	log := zap.S().Named("bootstrap")

	if err := b.waitForServer(ctx); err != nil {
		return nil, err
	}

	if err := b.admin.DropDatabase(ctx); err != nil {
		log.Warnw("failed to drop database, continuing", "error", err)
	}

	if err := b.admin.CreateDatabase(ctx); err != nil {
		return nil, err
	}
	log.Infow("database created")

	if err := b.migrate(ctx); err != nil {
		return nil, err
	}

	return b.open()
}

// Existing connects to a database that is already there and applies any
// pending migrations. It never drops or creates anything.
func (b *Bootstrap) Existing(ctx context.Context) (*store.Pool, error) {
	if err := b.waitForServer(ctx); err != nil {
		return nil, err
	}

	pool, err := b.open()
	if err != nil {
		return nil, err
	}
	if err := migrations.Run(ctx, pool.DB()); err != nil {
		pool.Close()
		return nil, srvErrors.NewStoreError("migrate database", err)
	}
	return pool, nil
}

func (b *Bootstrap) migrate(ctx context.Context) error {
	pool, err := b.open()
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := migrations.Run(ctx, pool.DB()); err != nil {
		return srvErrors.NewStoreError("migrate database", err)
	}
	return nil
}

func (b *Bootstrap) waitForServer(ctx context.Context) error {
	log := zap.S().Named("bootstrap")

	_, err := backoff.Retry(ctx,
		func() (struct{}, error) {
			err := b.admin.Ping(ctx)
			if isAuthFailure(err) {
				return struct{}{}, backoff.Permanent(err)
			}
			return struct{}{}, err
		},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(b.connectTimeout),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.Infow("database server not ready", "error", err, "retry_in", next)
		}),
	)
	if err != nil {
		return srvErrors.NewConnectionError("wait for database server", err)
	}
	return nil
}

// isAuthFailure reports whether the server rejected the credentials
// (SQLSTATE class 28). Retrying cannot fix that.
func isAuthFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "28")
}
