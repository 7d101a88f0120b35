package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// errorResponse is the wire shape of every failure body: {"error": "..."}.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the wire shape of bodiless-success confirmations,
// e.g. delete and reset: {"message": "..."}.
type messageResponse struct {
	Message string `json:"message"`
}

// writeJSON encodes data as the response body with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeError writes an errorResponse with the given status code.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
