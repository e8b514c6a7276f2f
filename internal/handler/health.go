package handler

import (
	"net/http"
	"os"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status     string `json:"status"`
	Version    string `json:"version"`
	Recipients int    `json:"recipients"`
}

// Health returns the health status of the service
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := "healthy"

	// A present but unreadable recipient file degrades the service: reads
	// silently return an empty list and alerts would refuse to send.
	if _, err := os.Stat(h.store.Path()); err != nil && !os.IsNotExist(err) {
		status = "degraded"
	}

	resp := HealthResponse{
		Status:     status,
		Version:    "0.1.0",
		Recipients: len(h.store.Load()),
	}

	if status != "healthy" {
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
