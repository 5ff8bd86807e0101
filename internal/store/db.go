package store

import (
	"database/sql"

	_ "github.com/duckdb/duckdb-go/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	DriverDuckDB   = "duckdb"
	DriverPostgres = "pgx"
)

// NewDB opens an embedded DuckDB database at path. ":memory:" keeps it in memory
// for the lifetime of the returned handle.
func NewDB(path string) (*sql.DB, error) {
	return sql.Open(DriverDuckDB, path)
}
