// Package store implements the data access layer for cordial.
//
// Guests live in a single table. The same statements run against PostgreSQL
// (through pgx) and against an embedded DuckDB database, which is used for
// local runs and for tests.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                         Store (facade)                          │
//	├─────────────────────────────────────────────────────────────────┤
//	│                  GuestStore  (Crud[models.Guest])               │
//	│                              ▼                                  │
//	│                            guests                               │
//	├─────────────────────────────────────────────────────────────────┤
//	│                 Pool (max 5 connections, 3s acquire)            │
//	└─────────────────────────────────────────────────────────────────┘
//
// # Tables
//
// Created by LOCAL MIGRATIONS (internal/store/migrations/sql/):
//
//	┌────────────────────┬─────────────────────────────────────────────┐
//	│  Table             │  Purpose                                    │
//	├────────────────────┼─────────────────────────────────────────────┤
//	│  guests            │  id, name, hash, seq (insertion order)      │
//	│  schema_migrations │  Migration version tracking                 │
//	└────────────────────┴─────────────────────────────────────────────┘
//
// # Pool
//
// Pool wraps *sql.DB. Creating it never dials; connections are opened on first
// use. Every store operation follows the same shape:
//
//	conn := pool.Acquire(ctx)      // waits at most the acquire timeout
//	defer conn.Close()             // returned on every path
//	one statement through QueryInterceptor
//
// A caller that cannot get a connection in time receives a connection error
// for which errors.IsPoolTimeoutError reports true.
//
// # GuestStore
//
// Statements are built with squirrel using $n placeholders. Identifiers are
// bound as text and cast to UUID in SQL; ids are read back as VARCHAR so the
// same scan works on both engines.
//
// Methods:
//   - Get(ctx, id)      → NotFound on zero rows, StoreError on more than one
//   - GetAll(ctx)       → every guest ordered by seq
//   - Create(ctx, g)    → INSERT ... RETURNING
//   - Update(ctx, g)    → returns g as given, zero matched rows is not an error
//   - Delete(ctx, g)    → idempotent
//
// # PostgresAdmin
//
// Runs DROP DATABASE and CREATE DATABASE for the development bootstrap on
// single connections opened without a database selected.
package store
