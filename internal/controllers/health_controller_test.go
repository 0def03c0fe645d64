package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticClients int

func (c staticClients) ClientCount() int { return int(c) }

func TestHealth_ReturnsOK(t *testing.T) {
	h := newHarness(t)
	hc := NewHealthController(h.svc, staticClients(3))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "0s", resp["uptime"])
	assert.Contains(t, resp, "uptime_seconds")
	assert.Equal(t, true, resp["camera_active"])
	assert.Equal(t, "idle", resp["session_phase"])
	assert.Equal(t, float64(3), resp["clients"])
}

func TestHealth_MethodNotAllowed(t *testing.T) {
	h := newHarness(t)
	hc := NewHealthController(h.svc, staticClients(0))

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "GET", rr.Header().Get("Allow"))
}

func TestHealth_ReflectsSession(t *testing.T) {
	h := newHarness(t)
	hc := NewHealthController(h.svc, staticClients(0))
	h.completeSession(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp["session_phase"])
	assert.Equal(t, float64(2), resp["photos"])
}
