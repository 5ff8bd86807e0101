package store

import (
	"context"
	"database/sql"

	"go.uber.org/zap"
)

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// QueryInterceptor logs every statement at debug level before handing it to
// the underlying connection.
type QueryInterceptor struct {
	q querier
}

func NewQueryInterceptor(q querier) QueryInterceptor {
	return QueryInterceptor{q: q}
}

func (i QueryInterceptor) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	zap.S().Named("store").Debugw("query", "sql", query, "args", len(args))
	return i.q.QueryContext(ctx, query, args...)
}

func (i QueryInterceptor) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	zap.S().Named("store").Debugw("query row", "sql", query, "args", len(args))
	return i.q.QueryRowContext(ctx, query, args...)
}

func (i QueryInterceptor) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	zap.S().Named("store").Debugw("exec", "sql", query, "args", len(args))
	return i.q.ExecContext(ctx, query, args...)
}
