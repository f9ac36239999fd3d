package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError answers with the API's JSON error body,
// {"error":{"code":...,"message":...}}, so clients see the same shape whether
// a request was stopped here or by a handler.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}
