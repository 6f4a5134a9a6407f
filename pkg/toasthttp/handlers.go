package toasthttp

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/toastkit/toastkit/pkg/logger"
	"github.com/toastkit/toastkit/toast"
)

// showRequest is the body of POST /toasts.
type showRequest struct {
	Type       toast.Type `json:"type"`
	Title      string     `json:"title"`
	Message    string     `json:"message"`
	DurationMS int64      `json:"duration_ms"`
}

// shownResponse carries the generated id back to the caller.
type shownResponse struct {
	ID string `json:"id"`
}

func (s *Service) handleList(w http.ResponseWriter, r *http.Request) {
	active := s.center.Notifications()
	s.respond(w, http.StatusOK, response{
		Code: "ok",
		Data: toDTOs(active),
		Meta: map[string]any{
			"count":       len(active),
			"position":    s.center.Position(),
			"max_visible": s.center.MaxVisible(),
		},
	})
}

func (s *Service) handleShow(w http.ResponseWriter, r *http.Request) {
	var req showRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid_body", "request body is not valid JSON", nil)
		return
	}

	details := make(map[string][]string)
	if !req.Type.Valid() {
		details["type"] = []string{"must be one of: info, success, warning, error"}
	}
	if req.Title == "" {
		details["title"] = []string{"is required"}
	}
	if len(details) > 0 {
		s.respondError(w, http.StatusUnprocessableEntity, "validation_error", "invalid notification spec", details)
		return
	}

	id := s.center.Show(toast.Spec{
		Type:     req.Type,
		Title:    req.Title,
		Message:  req.Message,
		Duration: time.Duration(req.DurationMS) * time.Millisecond,
	})

	s.logger.Debug("toast shown", logger.ToastID(id), logger.Event(string(req.Type)))
	s.respond(w, http.StatusCreated, response{Code: "created", Data: shownResponse{ID: id}})
}

func (s *Service) handleShowTemplate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	// Params body is optional; templates without placeholders take none.
	params := toast.Params{}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil && !errors.Is(err, io.EOF) {
		s.respondError(w, http.StatusBadRequest, "invalid_body", "params must be a JSON object of strings", nil)
		return
	}

	id, err := s.center.ShowTemplate(toast.TemplateID(name), params)
	if err != nil {
		switch {
		case errors.Is(err, toast.ErrTemplateNotFound):
			s.respondError(w, http.StatusNotFound, "template_not_found", err.Error(), nil)
		case errors.Is(err, toast.ErrCenterClosed):
			s.respondError(w, http.StatusServiceUnavailable, "center_closed", err.Error(), nil)
		default:
			s.respondError(w, http.StatusInternalServerError, "internal_error", err.Error(), nil)
		}
		return
	}

	s.logger.Debug("toast shown from template", logger.ToastID(id), logger.Template(name))
	s.respond(w, http.StatusCreated, response{Code: "created", Data: shownResponse{ID: id}})
}

// handleDismiss always answers 204: dismissal of an unknown id is an
// expected race, not a failure.
func (s *Service) handleDismiss(w http.ResponseWriter, r *http.Request) {
	s.center.Dismiss(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleDismissAll(w http.ResponseWriter, r *http.Request) {
	s.center.DismissAll()
	w.WriteHeader(http.StatusNoContent)
}
