package handler

import (
	"net/http"
	"time"
)

// healthResponse is the body of GET /api/health.
type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// GetHealth handles GET /api/health.
// It returns HTTP 200 with the current server time whenever the process is up.
func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	})
}
