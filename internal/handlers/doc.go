// Package handlers implements the HTTP API layer for cordial.
//
// Handlers delegate persistence to a store.Crud[models.Guest] and name and
// password generation to pkg/improv. They only parse requests and shape
// responses.
//
// # Handler Structure
//
// All handlers are methods on a single Handler struct:
//
//	type Handler struct {
//	    guests      store.Crud[models.Guest]
//	    versions    VersionReporter
//	    allowOrigin string
//	}
//
// The Handler implements v1.ServerInterface, enabling route registration via:
//
//	v1.RegisterHandlersWithOptions(router, h, v1.GinServerOptions{ErrorHandler: h.RespondError})
//
// # API Endpoints
//
//	┌────────┬──────────────────┬──────────────────────────────────────────┐
//	│ Method │ Endpoint         │ Description                              │
//	├────────┼──────────────────┼──────────────────────────────────────────┤
//	│ GET    │ /health          │ 200, empty body, no database access      │
//	│ GET    │ /book            │ Server version as text (errors too)      │
//	│ GET    │ /guests          │ All guests, insertion order              │
//	│ POST   │ /guests          │ Create the guest in the body             │
//	│ GET    │ /guests/{id}     │ One guest                                │
//	│ PUT    │ /guests/{id}     │ Overwrite, echoes the body               │
//	│ DELETE │ /guests/{id}     │ Delete, empty body                       │
//	│ GET    │ /improv/name     │ Plain made-up name                       │
//	│ GET    │ /improv/name/num │ Numbered made-up name                    │
//	│ GET    │ /improv/pass     │ Password, default policy                 │
//	│ POST   │ /improv/pass     │ Password, policy from the body           │
//	│ GET    │ /improv/guest    │ Made-up guest, not stored                │
//	└────────┴──────────────────┴──────────────────────────────────────────┘
//
// PUT and DELETE take the guest in the body; a body id different from the
// path id is rejected.
//
// # Responses
//
// Every response carries Access-Control-Allow-Origin. Text bodies are
// text/plain; charset=utf-8, guests are JSON {"id", "name", "hash"}.
//
// # Error Handling
//
// RespondError is the only place a failure becomes a response. statusFor
// reports 400 for every failure, including a missing guest and a pool
// timeout; the body is the error message.
package handlers
