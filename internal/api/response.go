package api

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
)

type errorResponse struct {
	Error string `json:"error"`
}

type resultErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// writeJSON buffers the encoding so a failure can still produce a clean 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		slog.Error("JSON encode failed", "error", err)
		writeErrorFallback(w, http.StatusInternalServerError, msgServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Error("Write response failed", "error", err)
	}
}

// writeError writes {"error": ...}. 5xx causes are logged, never shown.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, public := classify(err)
	logFailure(r, status, err)
	writeJSON(w, status, errorResponse{Error: public})
}

// writeResultError is writeError for the device-facing routes, whose bodies
// also carry success:false.
func writeResultError(w http.ResponseWriter, r *http.Request, err error) {
	status, public := classify(err)
	logFailure(r, status, err)
	writeJSON(w, status, resultErrorResponse{Success: false, Error: public})
}

func logFailure(r *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "Request failed", "path", r.URL.Path, "status", status, "error", err)
		return
	}
	slog.InfoContext(r.Context(), "Request rejected", "path", r.URL.Path, "status", status, "error", err)
}

func writeErrorFallback(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(message))
}
