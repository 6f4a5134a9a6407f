package toasthttp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/toastkit/toastkit/pkg/logger"
	"github.com/toastkit/toastkit/toast"
)

// streamEvent is the wire shape of one change-feed event.
type streamEvent struct {
	Kind   toast.EventKind `json:"kind"`
	Toast  *toastDTO       `json:"toast,omitempty"`
	Active []toastDTO      `json:"active"`
}

// handleStream relays the center's change feed as Server-Sent Events.
// The subscription lives exactly as long as the request context; periodic
// comment lines keep intermediaries from closing idle connections.
func (s *Service) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		s.respondError(w, http.StatusInternalServerError, "streaming_unsupported", "response writer does not support flushing", nil)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	sub := s.center.Subscribe(r.Context())
	defer sub.Close()

	heartbeat := time.NewTicker(s.heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case ev, open := <-sub.Events():
			if !open {
				return
			}

			payload := streamEvent{Kind: ev.Kind, Active: toDTOs(ev.Active)}
			if ev.Toast != nil {
				dto := toDTO(*ev.Toast)
				payload.Toast = &dto
			}

			data, err := json.Marshal(payload)
			if err != nil {
				s.logger.Error("failed to marshal stream event", logger.Error(err))
				continue
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Kind, data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
