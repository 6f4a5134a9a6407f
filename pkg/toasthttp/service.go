package toasthttp

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/toastkit/toastkit/toast"
)

const defaultHeartbeat = 25 * time.Second

// Service exposes one toast.Center over HTTP: JSON endpoints for the five
// container operations plus an SSE relay of the change feed.
type Service struct {
	center    *toast.Center
	logger    *slog.Logger
	heartbeat time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger for the Service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithHeartbeat sets the SSE keep-alive comment interval.
// Non-positive values are ignored.
func WithHeartbeat(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.heartbeat = d
		}
	}
}

// NewService creates an HTTP facade over the given center.
// Panics on a nil center to enforce fail-fast composition.
func NewService(center *toast.Center, opts ...Option) *Service {
	if center == nil {
		panic("toasthttp: nil center")
	}

	s := &Service{
		center:    center,
		logger:    slog.Default(),
		heartbeat: defaultHeartbeat,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Router returns the chi router for the facade:
//
//	GET    /toasts                  active collection snapshot
//	POST   /toasts                  show a notification
//	POST   /toasts/templates/{name} show from a named template
//	DELETE /toasts/{id}             dismiss one (idempotent)
//	DELETE /toasts                  dismiss all
//	GET    /toasts/stream           SSE change feed
func (s *Service) Router() chi.Router {
	r := chi.NewRouter()

	r.Route("/toasts", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Post("/", s.handleShow)
		r.Post("/templates/{name}", s.handleShowTemplate)
		r.Delete("/", s.handleDismissAll)
		r.Delete("/{id}", s.handleDismiss)
		r.Get("/stream", s.handleStream)
	})

	return r
}
