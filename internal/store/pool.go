package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	srvErrors "github.com/cordial-dev/cordial/pkg/errors"
)

const (
	DefaultMaxConnections = 5
	DefaultAcquireTimeout = 3 * time.Second
)

type PoolOption func(*Pool)

func WithMaxConnections(n int) PoolOption {
	return func(p *Pool) {
		if n > 0 {
			p.maxConnections = n
		}
	}
}

func WithAcquireTimeout(d time.Duration) PoolOption {
	return func(p *Pool) {
		if d > 0 {
			p.acquireTimeout = d
		}
	}
}

// Pool is a bounded set of reusable connections. It never dials on creation:
// connections are established on first use.
type Pool struct {
	db             *sql.DB
	maxConnections int
	acquireTimeout time.Duration
}

func NewPool(db *sql.DB, opts ...PoolOption) *Pool {
	p := &Pool{
		db:             db,
		maxConnections: DefaultMaxConnections,
		acquireTimeout: DefaultAcquireTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	db.SetMaxOpenConns(p.maxConnections)
	db.SetMaxIdleConns(p.maxConnections)
	return p
}

// OpenPool opens a lazy pool for the given driver and data source name.
func OpenPool(driver, dsn string, opts ...PoolOption) (*Pool, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, srvErrors.NewConnectionError("open pool", err)
	}
	return NewPool(db, opts...), nil
}

// Acquire hands out one connection for a single unit of work. Callers must
// Close the connection to return it to the pool. Waiting longer than the
// acquire timeout fails with a pool-timeout connection error.
func (p *Pool) Acquire(ctx context.Context) (*sql.Conn, error) {
	acquireCtx, cancel := context.WithTimeout(ctx, p.acquireTimeout)
	defer cancel()

	conn, err := p.db.Conn(acquireCtx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, srvErrors.NewPoolTimeoutError(p.acquireTimeout)
		}
		return nil, srvErrors.NewConnectionError("acquire connection", err)
	}
	return conn, nil
}

// Version asks the database server for its version string.
func (p *Pool) Version(ctx context.Context) (string, error) {
	conn, err := p.Acquire(ctx)
	if err != nil {
		return "", err
	}
	defer conn.Close()

	var version string
	if err := NewQueryInterceptor(conn).QueryRowContext(ctx, queryServerVersion).Scan(&version); err != nil {
		return "", srvErrors.NewStoreError("query server version", err)
	}
	return version, nil
}

func (p *Pool) MaxConnections() int {
	return p.maxConnections
}

func (p *Pool) AcquireTimeout() time.Duration {
	return p.acquireTimeout
}

func (p *Pool) DB() *sql.DB {
	return p.db
}

func (p *Pool) Close() error {
	return p.db.Close()
}
