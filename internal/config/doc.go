// Package config defines cordial's runtime configuration and the connection
// profile used to reach PostgreSQL.
//
// # Configuration Structure
//
//	Configuration
//	├── Server         - HTTP server settings
//	├── Database       - Engine, bootstrap mode and pool bounds
//	├── LogFormat      - Logging format
//	└── LogLevel       - Logging verbosity
//
// Values are resolved in this order, later wins: struct defaults
// (creasty/defaults), config file, CORDIAL_* environment variables, flags.
// Keys use the flag names, e.g. --database.acquire-timeout or
// CORDIAL_DATABASE_ACQUIRE_TIMEOUT.
//
// # Server Configuration
//
//	┌──────────────────┬─────────┬────────────────────────────────────────┐
//	│ Field            │ Default │ Description                            │
//	├──────────────────┼─────────┼────────────────────────────────────────┤
//	│ ServerMode       │ "dev"   │ Server mode: "prod" or "dev"           │
//	│ HTTPPort         │ 8000    │ HTTP server listen port                │
//	│ AllowedOrigins   │ ["*"]   │ Access-Control-Allow-Origin values     │
//	│ ShutdownTimeout  │ 10s     │ Graceful shutdown budget               │
//	└──────────────────┴─────────┴────────────────────────────────────────┘
//
// # Database Configuration
//
//	┌─────────────────┬───────────────┬──────────────────────────────────────┐
//	│ Field           │ Default       │ Description                          │
//	├─────────────────┼───────────────┼──────────────────────────────────────┤
//	│ Engine          │ "postgres"    │ "postgres" or "duckdb" (embedded)    │
//	│ Bootstrap       │ "development" │ "development" drops and recreates    │
//	│                 │               │ the database, "existing" connects    │
//	│ Path            │ ":memory:"    │ DuckDB file, engine=duckdb only      │
//	│ MaxConnections  │ 5             │ Pool size                            │
//	│ AcquireTimeout  │ 3s            │ Maximum wait for a free connection   │
//	│ ConnectTimeout  │ 30s           │ Maximum wait for the server at start │
//	└─────────────────┴───────────────┴──────────────────────────────────────┘
//
// # Code Generation
//
// Option helpers and DebugMap are generated by optgen from the debugmap tags:
//
//	//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server Database
//
// Every field is `debugmap:"visible"`; nothing secret lives in Configuration.
//
// # Connection Profile
//
// PostgreSQL credentials are not part of Configuration. They are read by
// ProfileFromEnvironment from DB_USERNAME, DB_PASSWORD, DB_HOST and DB_NAME,
// optionally loaded from a .env file. The port is 5432 and TLS is preferred but
// not required.
//
// The password is a Secret: it prints as [REDACTED] through fmt, JSON and zap,
// and only Reveal returns it.
package config
