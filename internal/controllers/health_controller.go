package controllers

import (
	"net/http"
	"photobooth/internal/services"
	"time"
)

// ClientCounter reports connected notification clients.
type ClientCounter interface {
	ClientCount() int
}

type HealthController struct {
	service   services.PhotoboothServiceInterface
	clients   ClientCounter
	startTime time.Time
}

type healthResponse struct {
	Status        string  `json:"status"`
	Uptime        string  `json:"uptime"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	CameraActive  bool    `json:"camera_active"`
	SessionPhase  string  `json:"session_phase"`
	Photos        int     `json:"photos"`
	Clients       int     `json:"clients"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	st := hc.service.Status()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:        "ok",
		Uptime:        uptime.Truncate(time.Second).String(),
		UptimeSeconds: uptime.Seconds(),
		CameraActive:  hc.service.CameraState().Active,
		SessionPhase:  string(st.Phase),
		Photos:        st.Taken,
		Clients:       hc.clients.ClientCount(),
	})
}

func NewHealthController(service services.PhotoboothServiceInterface, clients ClientCounter) *HealthController {
	return &HealthController{
		service:   service,
		clients:   clients,
		startTime: time.Now(),
	}
}
