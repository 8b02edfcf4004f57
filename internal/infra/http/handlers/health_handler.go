package handlers

import (
	"net/http"
	"time"
)

type HealthHandler struct {
	EmailProvider string
	Version       string
	StartTime     time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(emailProvider, version string) *HealthHandler {
	return &HealthHandler{
		EmailProvider: emailProvider,
		Version:       version,
		StartTime:     time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	status := "healthy"
	if h.EmailProvider != "" {
		deps["email"] = h.EmailProvider + " configured"
	} else {
		deps["email"] = "not configured"
		status = "degraded"
	}

	response := HealthResponse{
		Status:       status,
		Version:      h.Version,
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	}

	code := http.StatusOK
	if status == "degraded" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, response)
}
