package store

import (
	"context"

	"github.com/jackc/pgx/v5"

	srvErrors "github.com/cordial-dev/cordial/pkg/errors"
)

// PostgresAdmin runs server-level statements for one target database on
// short-lived connections that have no database of their own selected.
type PostgresAdmin struct {
	server   *pgx.ConnConfig
	database string
}

func NewPostgresAdmin(server *pgx.ConnConfig, database string) *PostgresAdmin {
	return &PostgresAdmin{server: server, database: database}
}

func (a *PostgresAdmin) Database() string {
	return a.database
}

// Ping opens and closes one server connection.
func (a *PostgresAdmin) Ping(ctx context.Context) error {
	conn, err := pgx.ConnectConfig(ctx, a.server.Copy())
	if err != nil {
		return srvErrors.NewConnectionError("connect to server", err)
	}
	defer conn.Close(ctx)

	if err := conn.Ping(ctx); err != nil {
		return srvErrors.NewConnectionError("ping server", err)
	}
	return nil
}

// DropDatabase drops the target database. It fails when the database does not exist.
func (a *PostgresAdmin) DropDatabase(ctx context.Context) error {
	return a.exec(ctx, "drop database", "DROP DATABASE "+pgx.Identifier{a.database}.Sanitize())
}

func (a *PostgresAdmin) CreateDatabase(ctx context.Context) error {
	return a.exec(ctx, "create database", "CREATE DATABASE "+pgx.Identifier{a.database}.Sanitize())
}

func (a *PostgresAdmin) exec(ctx context.Context, op, statement string) error {
	conn, err := pgx.ConnectConfig(ctx, a.server.Copy())
	if err != nil {
		return srvErrors.NewConnectionError("connect to server", err)
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, statement); err != nil {
		return srvErrors.NewStoreError(op, err)
	}
	return nil
}
