package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data and writes it to the response with the given
// status code and a "Content-Type: application/json" header. Peer envelope
// routes reply with bare statuses, so in practice this serves the version
// endpoint and any JSON error payloads.
//
// If marshaling fails it responds with 500 and returns a wrapped error;
// otherwise it returns the number of body bytes written.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
