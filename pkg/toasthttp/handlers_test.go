package toasthttp_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toastkit/toastkit/pkg/toasthttp"
	"github.com/toastkit/toastkit/toast"
)

type envelope struct {
	Code  string          `json:"code"`
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Error *envelopeError  `json:"error"`
}

type envelopeError struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details"`
}

func newTestService(t *testing.T, opts ...toast.Option) (*toast.Center, http.Handler) {
	t.Helper()
	center := toast.NewCenter(opts...)
	t.Cleanup(func() { _ = center.Close() })
	return center, toasthttp.NewService(center).Router()
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestHandleShow(t *testing.T) {
	center, h := newTestService(t)

	rec, env := doJSON(t, h, http.MethodPost, "/toasts", `{
		"type": "success",
		"title": "Done",
		"message": "Saved",
		"duration_ms": 4000
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "created", env.Code)

	var data struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.ID)

	active := center.Notifications()
	require.Len(t, active, 1)
	assert.Equal(t, data.ID, active[0].ID)
	assert.Equal(t, toast.TypeSuccess, active[0].Type)
}

func TestHandleShow_Validation(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantField  string
	}{
		{
			name:       "unknown type",
			body:       `{"type": "fatal", "title": "Boom"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantField:  "type",
		},
		{
			name:       "missing title",
			body:       `{"type": "info"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantField:  "title",
		},
		{
			name:       "malformed json",
			body:       `{not json`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			center, h := newTestService(t)

			rec, env := doJSON(t, h, http.MethodPost, "/toasts", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			require.NotNil(t, env.Error)
			if tt.wantField != "" {
				assert.Contains(t, env.Error.Details, tt.wantField)
			}
			assert.Empty(t, center.Notifications())
		})
	}
}

func TestHandleList(t *testing.T) {
	center, h := newTestService(t, toast.WithPosition(toast.PositionBottomRight))

	center.Info("First", "", 0)
	center.Error("Second", "Broken", 0)

	rec, env := doJSON(t, h, http.MethodGet, "/toasts", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), env.Meta["count"])
	assert.Equal(t, "bottom-right", env.Meta["position"])
	assert.Equal(t, float64(5), env.Meta["max_visible"])

	var data []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data, 2)
	assert.Equal(t, "First", data[0]["title"])
	assert.Equal(t, "Second", data[1]["title"])
}

func TestHandleDismiss(t *testing.T) {
	center, h := newTestService(t)

	id := center.Info("First", "", 0)
	center.Info("Second", "", 0)

	rec, _ := doJSON(t, h, http.MethodDelete, "/toasts/"+id, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Len(t, center.Notifications(), 1)

	// Unknown id is still 204: dismissal is idempotent
	rec, _ = doJSON(t, h, http.MethodDelete, "/toasts/"+id, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Len(t, center.Notifications(), 1)
}

func TestHandleDismissAll(t *testing.T) {
	center, h := newTestService(t)

	center.Info("First", "", 0)
	center.Info("Second", "", 0)

	rec, _ := doJSON(t, h, http.MethodDelete, "/toasts", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, center.Notifications())
}

func TestHandleShowTemplate(t *testing.T) {
	center, h := newTestService(t)

	rec, env := doJSON(t, h, http.MethodPost, "/toasts/templates/purchase_succeeded", `{"item": "Season 2"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var data struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))

	active := center.Notifications()
	require.Len(t, active, 1)
	assert.Equal(t, data.ID, active[0].ID)
	assert.Equal(t, "You now own Season 2.", active[0].Message)
}

func TestHandleShowTemplate_NoBody(t *testing.T) {
	center, h := newTestService(t)

	rec, _ := doJSON(t, h, http.MethodPost, "/toasts/templates/network_error", "")

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, center.Notifications(), 1)
	assert.Equal(t, "Network error", center.Notifications()[0].Title)
}

func TestHandleShowTemplate_NotFound(t *testing.T) {
	center, h := newTestService(t)

	rec, env := doJSON(t, h, http.MethodPost, "/toasts/templates/nonexistent", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "template_not_found", env.Error.Code)
	assert.Empty(t, center.Notifications())
}

func TestNewService_PanicsOnNilCenter(t *testing.T) {
	assert.Panics(t, func() {
		toasthttp.NewService(nil)
	})
}
