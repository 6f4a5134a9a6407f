// Package toasthttp exposes a toast.Center over HTTP.
//
// The facade is transport glue only: all notification semantics stay in the
// toast package, and visual rendering stays with whatever consumes the
// stream. Endpoints:
//
//	GET    /toasts                  active collection snapshot
//	POST   /toasts                  show a notification, returns its id
//	POST   /toasts/templates/{name} show from a named template
//	DELETE /toasts/{id}             dismiss one (204 even when absent)
//	DELETE /toasts                  dismiss all
//	GET    /toasts/stream           SSE relay of the change feed
//
// # Usage
//
//	center := toast.NewCenter()
//	svc := toasthttp.NewService(center, toasthttp.WithLogger(log))
//
//	srv := httpserver.New(httpserver.WithAddr(":8080"))
//	_ = srv.Run(ctx, svc.Router())
//
// The stream sends one SSE event per state change (shown, dismissed, expired,
// cleared) with a JSON payload carrying the affected toast and a snapshot of
// the active collection after the change.
package toasthttp
