package toasthttp

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/toastkit/toastkit/pkg/logger"
	"github.com/toastkit/toastkit/toast"
)

// response is the standard JSON response envelope.
type response struct {
	Code  string         `json:"code,omitempty"`
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *errorDetail   `json:"error,omitempty"`
}

// errorDetail contains error information.
type errorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

// toastDTO is the wire representation of a notification. Durations cross the
// wire as integer milliseconds.
type toastDTO struct {
	ID         string     `json:"id"`
	Type       toast.Type `json:"type"`
	Title      string     `json:"title"`
	Message    string     `json:"message,omitempty"`
	DurationMS int64      `json:"duration_ms"`
	CreatedAt  time.Time  `json:"created_at"`
}

func toDTO(n toast.Notification) toastDTO {
	return toastDTO{
		ID:         n.ID,
		Type:       n.Type,
		Title:      n.Title,
		Message:    n.Message,
		DurationMS: n.Duration.Milliseconds(),
		CreatedAt:  n.CreatedAt,
	}
}

func toDTOs(ns []toast.Notification) []toastDTO {
	dtos := make([]toastDTO, len(ns))
	for i, n := range ns {
		dtos[i] = toDTO(n)
	}
	return dtos
}

func (s *Service) respond(w http.ResponseWriter, status int, body response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", logger.Error(err))
	}
}

func (s *Service) respondError(w http.ResponseWriter, status int, code, message string, details map[string][]string) {
	s.respond(w, status, response{
		Code: code,
		Error: &errorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}
