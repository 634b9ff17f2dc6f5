package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Machine tokens carried in the code field of every error response.
const (
	CodeInvalidInput       = "INVALID_INPUT"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeRateLimited        = "RATE_LIMITED"
	CodeNotFound           = "NOT_FOUND"
	CodeNotConfigured      = "NOT_CONFIGURED"
	CodeUpstreamError      = "UPSTREAM_ERROR"
	CodeStorageError       = "STORAGE_ERROR"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string, code string) {
	writeJSON(w, status, errorResponse{Error: message, Code: code})
}

// writeStorageError logs the underlying failure in detail and hands the
// client only a generic message plus code.
func writeStorageError(w http.ResponseWriter, action string, err error) {
	slog.Error("Failed to "+action, "error", err)
	writeError(w, http.StatusInternalServerError, "Something went wrong, please try again", CodeStorageError)
}
