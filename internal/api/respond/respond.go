// Package respond provides the JSON envelopes the API speaks.
package respond

import (
	"encoding/json"
	"net/http"
)

// WriteMessage writes the {"message": ...} success envelope.
func WriteMessage(w http.ResponseWriter, message string) {
	WriteJSONObject(w, http.StatusOK, map[string]interface{}{"message": message})
}

// WriteError writes the {"error": ...} envelope. Failures are signaled by
// body shape at HTTP 200, not by status code; existing consumers inspect the
// body, so the framing is part of the API contract.
func WriteError(w http.ResponseWriter, message string) {
	WriteJSONObject(w, http.StatusOK, map[string]interface{}{"error": message})
}

// WriteJSONObject marshals a Go value to JSON and writes it with the given
// status.
func WriteJSONObject(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
