// Package services implements the business logic layer for cordial.
//
// It turns configuration into a ready guest store and hosts the operations
// that are more than a single store call.
//
// # Service Dependency Graph
//
//	cmd/cordial (serve, bootstrap, seed)
//	    │
//	    ▼
//	Services Layer
//	    ├── Directory ──► Bootstrap ──► DatabaseAdmin, migrations
//	    │       └──────► Store (GuestStore, Pool)
//	    └── Seeder ─────► Crud[Guest], Improv, Scheduler
//
// # Directory
//
// Directory owns the Store for the life of the process. It is built in one of
// three ways:
//
//	┌──────────────────────────┬───────────────────────────────────────────┐
//	│ Constructor              │ Database                                  │
//	├──────────────────────────┼───────────────────────────────────────────┤
//	│ NewPostgresDirectory     │ PostgreSQL, Bootstrap = "development":    │
//	│                          │ drop, create, migrate                     │
//	│ NewPostgresDirectory     │ PostgreSQL, Bootstrap = "existing":       │
//	│                          │ connect, apply pending migrations         │
//	│ NewEmbeddedDirectory     │ DuckDB file or :memory:, migrate          │
//	└──────────────────────────┴───────────────────────────────────────────┘
//
// NewDirectory picks between them from config.Database and, for PostgreSQL,
// resolves the connection profile from the environment.
//
// # Bootstrap
//
// Development bootstrap, in order:
//
//  1. Wait for the server with exponential backoff, bounded by ConnectTimeout.
//     Failure is a connection error.
//  2. Drop the target database. Failure is logged and ignored (the database
//     usually does not exist on first run).
//  3. Create the target database on a server-level connection. Failure is fatal.
//  4. Open a short-lived pool on the new database, run migrations, close it.
//  5. Open the long-lived pool that the Directory keeps.
//
// Every previous row is lost. Two development bootstraps against the same
// server at the same time race each other; this is not guarded against.
//
// # Seeder
//
// Seeder creates N improvised guests through a Scheduler[models.Guest] with a
// fixed number of workers. The pool bounds how many inserts actually run at
// once; extra workers wait on Acquire.
//
// Usage:
//
//	dir, err := services.NewDirectory(ctx, cfg.Database)
//	seeder := services.NewSeeder(dir.Guests(), improv.New(true), 4)
//	created, err := seeder.Seed(ctx, 100)
package services
