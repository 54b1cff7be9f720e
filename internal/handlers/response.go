package handlers

import (
	"encoding/json"
	"net/http"
)

// Response is the uniform JSON envelope every endpoint returns.
// Count is a pointer so a zero count still serializes.
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Records interface{} `json:"records,omitempty"`
	Count   *int64      `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Response{Status: "error", Message: message})
}

// writeValidationError reports per-field violations under data.
func writeValidationError(w http.ResponseWriter, fields map[string][]string) {
	writeJSON(w, http.StatusBadRequest, Response{
		Status:  "error",
		Message: "Validation error",
		Data:    fields,
	})
}

func countOf(n int64) *int64 {
	return &n
}
