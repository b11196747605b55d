package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data and writes it as the response body with the given
// status code and an "application/json" content type.
//
// The status code is committed only after marshaling succeeds; a marshal
// failure responds with a plain 500 instead, so a half-written envelope never
// reaches the client. The returned int is the number of body bytes written.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "response serialization failed", http.StatusInternalServerError)
		return 0, fmt.Errorf("response serialization failed: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
