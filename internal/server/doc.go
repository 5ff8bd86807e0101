// Package server provides the HTTP server for cordial.
//
// # Architecture Overview
//
//	┌───────────────────────────────────────────────────────────────┐
//	│                         HTTP Server                           │
//	│                     HTTP :8000 (no TLS)                       │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Middleware Stack                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  Ginzap (request logging, "http" logger)                │  │
//	│  │  RecoveryWithZap (panic recovery with stack)            │  │
//	│  │  CORS (preflight, allowed origins)                      │  │
//	│  │  Metrics (request count and latency per route)          │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	├───────────────────────────────────────────────────────────────┤
//	│                         Router (/)                            │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  /metrics (Prometheus)                                  │  │
//	│  │  Handlers (registered via callback)                     │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	└───────────────────────────────────────────────────────────────┘
//
// # Server Modes
//
// Development Mode (ServerMode = "dev"): Gin runs in debug mode.
// Production Mode (ServerMode = "prod"): Gin runs in release mode.
//
// # Server Lifecycle
//
//	srv := server.NewServer(cfg, metrics, func(router gin.IRouter) {
//	    v1.RegisterHandlersWithOptions(router, h, v1.GinServerOptions{ErrorHandler: h.RespondError})
//	})
//
//	// Blocks until ctx is cancelled, then shuts down gracefully
//	err := srv.Start(ctx)
//
// # Metrics
//
// Metrics owns a private Prometheus registry with Go runtime, process, HTTP
// and, once RegisterPool is called, database pool collectors
// (go_sql_*{db_name="cordial"}).
package server
